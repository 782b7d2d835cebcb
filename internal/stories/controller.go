package stories

import "hnstories/internal/domain"

// Ticket identifies one issued request
type Ticket struct {
	Seq   uint64
	Query string
}

// Controller tags every issued request with a sequence number and decides
// whether a resolution may be folded into state. Only the outcome of the most
// recent request wins; anything older is discarded, never applied.
type Controller struct {
	latest    uint64
	pending   bool
	discarded int
}

// NewController creates a controller with nothing issued
func NewController() *Controller {
	return &Controller{}
}

// Begin issues a new request for query. An empty query issues nothing.
func (c *Controller) Begin(query string) (Ticket, bool) {
	if query == "" {
		return Ticket{}, false
	}
	c.latest++
	c.pending = true
	return Ticket{Seq: c.latest, Query: query}, true
}

// Settle turns a resolution into the event to apply. It reports false when
// the ticket is stale (a newer request was issued, or it already settled);
// the caller must then drop the outcome.
func (c *Controller) Settle(t Ticket, items []domain.Item, err error) (Event, bool) {
	if t.Seq != c.latest || !c.pending {
		c.discarded++
		return nil, false
	}
	c.pending = false
	if err != nil {
		return FetchFailure{Err: err}, true
	}
	return FetchSuccess{Items: items}, true
}

// Latest returns the sequence number of the most recently issued request
func (c *Controller) Latest() uint64 {
	return c.latest
}

// Pending reports whether the latest request is still outstanding
func (c *Controller) Pending() bool {
	return c.pending
}

// Discarded returns how many stale resolutions were dropped
func (c *Controller) Discarded() int {
	return c.discarded
}
