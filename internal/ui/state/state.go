package state

import "hnstories/internal/stories"

// AppState contains the UI state that is not owned by the session
type AppState struct {
	// Selection state
	SelectedIndex int    // currently selected row in the visible list
	SelectedID    string // story id under the cursor, kept across re-sorts

	// UI state
	ViewportOffset int // offset for scrolling
	ViewportHeight int // available height for the story list
	StatusMessage  string
	StatusIsError  bool
	InPagerMode    bool // an external pager owns the terminal

	// Sort state
	Sort    stories.SortMode
	Reverse bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ViewportHeight: 20, // Default
	}
}

// SetStatus sets the status bar message
func (s *AppState) SetStatus(msg string, isError bool) {
	s.StatusMessage = msg
	s.StatusIsError = isError
}

// ClearStatus clears the status bar message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}

// CycleSort advances to the next sort mode
func (s *AppState) CycleSort() {
	s.Sort = s.Sort.Next()
}

// ToggleReverse flips the sort direction
func (s *AppState) ToggleReverse() {
	s.Reverse = !s.Reverse
}
