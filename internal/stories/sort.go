package stories

import (
	"sort"
	"strings"

	"hnstories/internal/domain"
)

// SortMode represents different sort modes
type SortMode int

const (
	SortNone SortMode = iota
	SortTitle
	SortAuthor
	SortComments
	SortPoints
)

var sortModeNames = map[SortMode]string{
	SortNone:     "none",
	SortTitle:    "title",
	SortAuthor:   "author",
	SortComments: "comments",
	SortPoints:   "points",
}

func (m SortMode) String() string {
	if name, ok := sortModeNames[m]; ok {
		return name
	}
	return "none"
}

// Next cycles to the following sort mode
func (m SortMode) Next() SortMode {
	if m >= SortPoints || m < SortNone {
		return SortNone
	}
	return m + 1
}

// Sort returns a sorted copy of items. Ties keep source order. Title and
// author sort ascending, comments and points descending; reverse flips the
// result.
func Sort(items []domain.Item, mode SortMode, reverse bool) []domain.Item {
	out := cloneItems(items)

	switch mode {
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	case SortAuthor:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Author) < strings.ToLower(out[j].Author)
		})
	case SortComments:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].NumComments > out[j].NumComments
		})
	case SortPoints:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Points > out[j].Points
		})
	}

	if reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
