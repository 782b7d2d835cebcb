package stories

import "hnstories/internal/domain"

// Event is a transition input for Apply. The set of variants is closed:
// only the types declared in this file implement it.
type Event interface {
	Name() string
	event()
}

// FetchInit is dispatched right before a new request is issued
type FetchInit struct{}

// FetchSuccess carries the payload of the latest request
type FetchSuccess struct {
	Items []domain.Item
}

// FetchFailure is dispatched when the latest request failed
type FetchFailure struct {
	Err error
}

// RemoveItem drops a single story from the list
type RemoveItem struct {
	ID string
}

func (FetchInit) Name() string    { return "FETCH_INIT" }
func (FetchSuccess) Name() string { return "FETCH_SUCCESS" }
func (FetchFailure) Name() string { return "FETCH_FAILURE" }
func (RemoveItem) Name() string   { return "REMOVE_ITEM" }

func (FetchInit) event()    {}
func (FetchSuccess) event() {}
func (FetchFailure) event() {}
func (RemoveItem) event()   {}
