package stories

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hnstories/internal/domain"
)

func sampleItems() []domain.Item {
	return []domain.Item{
		{ID: "0", Title: "React", URL: "https://react.js.org/", Author: "Jordan Walke", NumComments: 3, Points: 4},
		{ID: "1", Title: "Redux", URL: "https://redux.js.org/", Author: "Dan Abramov, Andrew Clark", NumComments: 2, Points: 5},
	}
}

func sampleStates() []State {
	return []State{
		{},
		{Data: sampleItems()},
		{Data: sampleItems(), IsLoading: true},
		{Data: sampleItems(), IsError: true},
		{Data: []domain.Item{{ID: "7", Title: "Go"}}, IsLoading: true, IsError: true},
	}
}

func TestApply_FetchInit(t *testing.T) {
	for _, s := range sampleStates() {
		next := Apply(s, FetchInit{})
		assert.Equal(t, s.Data, next.Data)
		assert.True(t, next.IsLoading)
		assert.False(t, next.IsError)
	}
}

func TestApply_FetchSuccessReplacesData(t *testing.T) {
	payload := []domain.Item{{ID: "42", Title: "Bubble Tea"}}
	for _, s := range sampleStates() {
		next := Apply(s, FetchSuccess{Items: payload})
		assert.Equal(t, payload, next.Data)
		assert.False(t, next.IsLoading)
		assert.False(t, next.IsError)
	}
}

func TestApply_FetchSuccessCopiesPayload(t *testing.T) {
	payload := sampleItems()
	next := Apply(State{}, FetchSuccess{Items: payload})

	payload[0].Title = "changed"
	assert.Equal(t, "React", next.Data[0].Title)
}

func TestApply_FetchFailureKeepsData(t *testing.T) {
	for _, s := range sampleStates() {
		next := Apply(s, FetchFailure{Err: errors.New("boom")})
		assert.Equal(t, s.Data, next.Data)
		assert.False(t, next.IsLoading)
		assert.True(t, next.IsError)
	}
}

func TestApply_RemoveItem(t *testing.T) {
	items := []domain.Item{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}

	tests := []struct {
		name string
		id   string
		want []string
	}{
		{name: "first", id: "a", want: []string{"b", "c", "d"}},
		{name: "middle", id: "c", want: []string{"a", "b", "d"}},
		{name: "last", id: "d", want: []string{"a", "b", "c"}},
		{name: "absent", id: "zzz", want: []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{Data: items, IsLoading: true, IsError: true}
			next := Apply(s, RemoveItem{ID: tt.id})

			ids := make([]string, 0, len(next.Data))
			for _, item := range next.Data {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.want, ids)
			assert.True(t, next.IsLoading)
			assert.True(t, next.IsError)
			_, found := next.Find(tt.id)
			assert.False(t, found)
		})
	}

	// the input slice must stay intact
	assert.Len(t, items, 4)
	assert.Equal(t, "a", items[0].ID)
}

func TestApply_RemoveAbsentIsNoop(t *testing.T) {
	s := State{Data: sampleItems()}
	once := Apply(s, RemoveItem{ID: "0"})
	twice := Apply(once, RemoveItem{ID: "0"})
	assert.Equal(t, once, twice)
}

type bogusEvent struct{}

func (bogusEvent) Name() string { return "BOGUS" }
func (bogusEvent) event()       {}

func TestApply_UnknownEventPanics(t *testing.T) {
	assert.Panics(t, func() { Apply(State{}, bogusEvent{}) })
	assert.Panics(t, func() { Apply(State{}, nil) })
	assert.Panics(t, func() { Apply(State{}, &FetchInit{}) })

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.HasAssertionFailure(err))
	}()
	Apply(State{}, bogusEvent{})
}

func TestApply_Scenario(t *testing.T) {
	s := State{}
	assert.Equal(t, State{}, s)

	s = Apply(s, FetchInit{})
	assert.Empty(t, s.Data)
	assert.True(t, s.IsLoading)
	assert.False(t, s.IsError)

	s = Apply(s, FetchSuccess{Items: sampleItems()})
	assert.False(t, s.IsLoading)
	require.Len(t, s.Data, 2)

	s = Apply(s, RemoveItem{ID: "0"})
	require.Len(t, s.Data, 1)
	assert.Equal(t, "1", s.Data[0].ID)
}
