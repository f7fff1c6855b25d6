package types

// Page navigation actions
type NextPageAction struct{}

func (a NextPageAction) Type() string { return "next_page" }

type PreviousPageAction struct{}

func (a PreviousPageAction) Type() string { return "previous_page" }

type GotoPageAction struct {
	Number int
}

func (a GotoPageAction) Type() string { return "goto_page" }

type StepChunkAction struct {
	Delta int // -1 for left, +1 for right
}

func (a StepChunkAction) Type() string { return "step_chunk" }

type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

// History actions
type UpdateHistoryCursorAction struct {
	Offset int
}

func (a UpdateHistoryCursorAction) Type() string { return "update_history_cursor" }

type LoadHistoryAction struct {
	Offset int
	Number int // page at Offset when the cursor was committed
}

func (a LoadHistoryAction) Type() string { return "load_history" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Message box actions
type DismissMessageAction struct{}

func (a DismissMessageAction) Type() string { return "dismiss_message" }

// Pager actions
type ViewPageAction struct{}

func (a ViewPageAction) Type() string { return "view_page" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
