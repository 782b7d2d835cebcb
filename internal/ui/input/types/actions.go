package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

// Story actions
type RemoveItemAction struct {
	ID string
}

func (a RemoveItemAction) Type() string { return "remove_item" }

type RetryAction struct{}

func (a RetryAction) Type() string { return "retry" }

type RecentSearchAction struct {
	Query string
}

func (a RecentSearchAction) Type() string { return "recent_search" }

type OpenDetailsAction struct {
	ID string
}

func (a OpenDetailsAction) Type() string { return "open_details" }

// Sort actions
type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

type ReverseSortAction struct{}

func (a ReverseSortAction) Type() string { return "reverse_sort" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
