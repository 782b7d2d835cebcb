package input

import (
	"hnstories/internal/domain"
	"hnstories/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State   *state.AppState
	Visible []domain.Item
	Query   string
	Recent  []string
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the total number of visible items
func (c *ModelContext) TotalItems() int {
	return len(c.Visible)
}

// CurrentItemID returns the id of the story under the cursor
func (c *ModelContext) CurrentItemID() string {
	idx := c.CurrentIndex()
	if idx < 0 || idx >= len(c.Visible) {
		return ""
	}
	return c.Visible[idx].ID
}

// SearchQuery returns the current search query
func (c *ModelContext) SearchQuery() string {
	return c.Query
}

// RecentSearches returns remembered searches, newest first
func (c *ModelContext) RecentSearches() []string {
	return c.Recent
}
