package stories

import (
	"github.com/cockroachdb/errors"

	"hnstories/internal/domain"
)

// Apply folds ev into s and returns the new state. The input state and
// its Data slice are never modified.
//
// An event Apply does not know is a programming error and panics with an
// assertion failure.
func Apply(s State, ev Event) State {
	switch e := ev.(type) {
	case FetchInit:
		return State{Data: s.Data, IsLoading: true, IsError: false}

	case FetchSuccess:
		return State{Data: cloneItems(e.Items), IsLoading: false, IsError: false}

	case FetchFailure:
		return State{Data: s.Data, IsLoading: false, IsError: true}

	case RemoveItem:
		return State{Data: without(s.Data, e.ID), IsLoading: s.IsLoading, IsError: s.IsError}

	default:
		panic(errors.AssertionFailedf("stories: unhandled event %T", ev))
	}
}

func cloneItems(items []domain.Item) []domain.Item {
	out := make([]domain.Item, len(items))
	copy(out, items)
	return out
}

// without returns items minus the element with the given id. When the id is
// absent the original slice is returned as is.
func without(items []domain.Item, id string) []domain.Item {
	idx := -1
	for i, item := range items {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return items
	}

	out := make([]domain.Item, 0, len(items)-1)
	out = append(out, items[:idx]...)
	for _, item := range items[idx+1:] {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}
