package types

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // Initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode // Which field the text belongs to
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Parameter slider actions
type FocusParamAction struct {
	Delta int // -1 previous slider, +1 next slider
}

func (a FocusParamAction) Type() string { return "focus_param" }

type StepParamAction struct {
	Delta int // slider steps, negative moves down
}

func (a StepParamAction) Type() string { return "step_param" }

// Bar actions
type ToggleActiveAction struct{}

func (a ToggleActiveAction) Type() string { return "toggle_active" }

type SaveConfigAction struct{}

func (a SaveConfigAction) Type() string { return "save_config" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
