package stories

import (
	"strings"

	"hnstories/internal/domain"
)

// Project returns the stories whose title contains query, ignoring case, in
// their original order. An empty query matches everything. items is not
// modified and the result is never nil.
func Project(items []domain.Item, query string) []domain.Item {
	out := make([]domain.Item, 0, len(items))
	if query == "" {
		return append(out, items...)
	}

	needle := strings.ToLower(query)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), needle) {
			out = append(out, item)
		}
	}
	return out
}
