package stories

import "hnstories/internal/domain"

// State is the canonical fetch state of a story list. The zero value is the
// initial state: no data, not loading, no error.
type State struct {
	Data      []domain.Item
	IsLoading bool
	IsError   bool
}

// Find returns the item with the given id
func (s State) Find(id string) (domain.Item, bool) {
	for _, item := range s.Data {
		if item.ID == id {
			return item, true
		}
	}
	return domain.Item{}, false
}
