package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the normal mode bindings
type KeyMap struct {
	PrevParam key.Binding
	NextParam key.Binding
	Decrease  key.Binding
	Increase  key.Binding
	FastDown  key.Binding
	FastUp    key.Binding
	EditLeft  key.Binding
	EditRight key.Binding
	Activate  key.Binding
	Save      key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// FastStep is how many slider steps the fast bindings move
const FastStep = 5

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevParam: key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev slider")),
		NextParam: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next slider")),
		Decrease:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease")),
		Increase:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase")),
		FastDown:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H", "decrease ×5")),
		FastUp:    key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("L", "increase ×5")),
		EditLeft:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "edit left index")),
		EditRight: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "edit right index")),
		Activate:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle bar")),
		Save:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save config")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextParam, k.Increase, k.EditLeft, k.EditRight, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevParam, k.NextParam, k.Decrease, k.Increase, k.FastDown, k.FastUp},
		{k.EditLeft, k.EditRight, k.Activate},
		{k.Save, k.Help, k.Quit},
	}
}

// EditKeyMap lists the bindings active while an index field is edited
type EditKeyMap struct {
	Commit key.Binding
	Switch key.Binding
	Cancel key.Binding
}

// DefaultEditKeyMap returns the stock edit bindings
func DefaultEditKeyMap() EditKeyMap {
	return EditKeyMap{
		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Switch: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "other index")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap
func (k EditKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Switch, k.Cancel}
}

// FullHelp implements help.KeyMap
func (k EditKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
