package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"rangebar/internal/ui/input/types"
)

// IndexMode edits one of the two index fields. Tab jumps to the other field;
// the text typed so far stays as a draft until enter commits both.
type IndexMode struct {
	textInputMode TextInputMode
	other         types.Mode
}

func NewLeftIndexMode(ti *textinput.Model) *IndexMode {
	return &IndexMode{
		textInputMode: NewTextInputMode(types.ModeEditLeft, "left-index", "Left index: ", ti),
		other:         types.ModeEditRight,
	}
}

func NewRightIndexMode(ti *textinput.Model) *IndexMode {
	return &IndexMode{
		textInputMode: NewTextInputMode(types.ModeEditRight, "right-index", "Right index: ", ti),
		other:         types.ModeEditLeft,
	}
}

func (m *IndexMode) Name() string {
	return m.textInputMode.Name()
}

func (m *IndexMode) Prompt() string {
	return m.textInputMode.Prompt()
}

func (m *IndexMode) Enter(ctx types.Context) []types.Action {
	return m.textInputMode.Enter(ctx)
}

func (m *IndexMode) Exit(ctx types.Context) []types.Action {
	return m.textInputMode.Exit(ctx)
}

func (m *IndexMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.String() == "tab" {
		data := ctx.LeftText()
		if m.other == types.ModeEditRight {
			data = ctx.RightText()
		}
		return []types.Action{types.ChangeModeAction{Mode: m.other, Data: data}}, true
	}
	return m.textInputMode.HandleKey(msg, ctx)
}
