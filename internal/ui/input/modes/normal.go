package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rangebar/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.PrevParam):
		return []types.Action{types.FocusParamAction{Delta: -1}}, true

	case key.Matches(msg, m.keys.NextParam):
		return []types.Action{types.FocusParamAction{Delta: 1}}, true

	case key.Matches(msg, m.keys.Decrease):
		return []types.Action{types.StepParamAction{Delta: -1}}, true

	case key.Matches(msg, m.keys.Increase):
		return []types.Action{types.StepParamAction{Delta: 1}}, true

	case key.Matches(msg, m.keys.FastDown):
		return []types.Action{types.StepParamAction{Delta: -types.FastStep}}, true

	case key.Matches(msg, m.keys.FastUp):
		return []types.Action{types.StepParamAction{Delta: types.FastStep}}, true

	case key.Matches(msg, m.keys.EditLeft):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeEditLeft, Data: ctx.LeftText()}}, true

	case key.Matches(msg, m.keys.EditRight):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeEditRight, Data: ctx.RightText()}}, true

	case key.Matches(msg, m.keys.Activate):
		return []types.Action{types.ToggleActiveAction{}}, true

	case key.Matches(msg, m.keys.Save):
		return []types.Action{types.SaveConfigAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
