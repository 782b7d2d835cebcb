// Package hn provides the remote story sources: the Algolia Hacker News
// search API and a static in-memory list for offline use.
package hn

import (
	"context"

	"hnstories/internal/domain"
)

// Source resolves one search query into a list of stories. Implementations
// must be safe for concurrent use; every call runs in its own goroutine.
type Source interface {
	Search(ctx context.Context, query string) ([]domain.Item, error)
}
