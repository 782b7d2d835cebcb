package hn

import (
	"context"
	"time"

	"hnstories/internal/domain"
	"hnstories/internal/stories"
)

// Static serves a fixed list of stories, filtered by title the same way
// the list view filters
type Static struct {
	items   []domain.Item
	latency time.Duration
}

// NewStatic creates a static source. latency delays every answer.
func NewStatic(items []domain.Item, latency time.Duration) *Static {
	cp := make([]domain.Item, len(items))
	copy(cp, items)
	return &Static{items: cp, latency: latency}
}

// Search returns the stories whose title contains query
func (s *Static) Search(ctx context.Context, query string) ([]domain.Item, error) {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return stories.Project(s.items, query), nil
}
