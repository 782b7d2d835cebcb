// Package session hosts the story list for one view. It owns the fetch
// state, the current search term and the request controller, and turns
// user intents into state transitions and asynchronous searches.
//
// A Session has a single writer: every method must be called from the same
// goroutine, normally the bubbletea update loop. Searches run in tea.Cmd
// goroutines and come back as FetchResultMsg values passed to Handle.
package session

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"hnstories/internal/domain"
	"hnstories/internal/eventbus"
	"hnstories/internal/hn"
	"hnstories/internal/store"
	"hnstories/internal/stories"
)

// Keys used in the KV store
const (
	QueryKey  = "search"
	RecentKey = "recent"
)

// MaxRecent is how many submitted searches are remembered
const MaxRecent = 5

// Options configures a Session
type Options struct {
	// DefaultQuery is used when nothing is stored
	DefaultQuery string
	// Query, when set, replaces the stored search term
	Query string
}

// FetchResultMsg carries the outcome of one search back into the update loop
type FetchResultMsg struct {
	Ticket stories.Ticket
	Items  []domain.Item
	Err    error
}

// Session is the view boundary around the story state
type Session struct {
	ctx    context.Context
	cancel context.CancelFunc

	source hn.Source
	kv     store.KV
	bus    eventbus.EventBus
	logger *zap.SugaredLogger

	state  stories.State
	query  string
	ctrl   *stories.Controller
	recent []string
}

// New creates a session and reads the stored search term. bus and logger
// may be nil.
func New(opts Options, source hn.Source, kv store.KV, bus eventbus.EventBus, logger *zap.SugaredLogger) *Session {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	ctx, cancel := context.WithCancel(context.Background())

	s := &Session{
		ctx:    ctx,
		cancel: cancel,
		source: source,
		kv:     kv,
		bus:    bus,
		logger: logger,
		ctrl:   stories.NewController(),
	}

	s.query = opts.DefaultQuery
	if stored, ok := s.read(QueryKey); ok {
		s.query = stored
	}
	if opts.Query != "" {
		s.query = opts.Query
		s.persist(QueryKey, s.query)
	}

	if raw, ok := s.read(RecentKey); ok && raw != "" {
		s.recent = strings.Split(raw, "\n")
		if len(s.recent) > MaxRecent {
			s.recent = s.recent[:MaxRecent]
		}
	}

	return s
}

// Init issues the first search for the current term
func (s *Session) Init() tea.Cmd {
	return s.fetch()
}

// OnQueryChange replaces the search term, stores it and searches for it. An
// empty term is stored but searches nothing and leaves the state alone.
func (s *Session) OnQueryChange(q string) tea.Cmd {
	s.query = q
	s.persist(QueryKey, q)
	s.publish(eventbus.QueryChangedEvent{Query: q})
	return s.fetch()
}

// Commit remembers the current term as a recent search
func (s *Session) Commit() {
	q := strings.TrimSpace(s.query)
	if q == "" {
		return
	}

	recent := []string{q}
	for _, r := range s.recent {
		if r != q && len(recent) < MaxRecent {
			recent = append(recent, r)
		}
	}
	s.recent = recent
	s.persist(RecentKey, strings.Join(recent, "\n"))
}

// OnRemove drops the story with the given id
func (s *Session) OnRemove(id string) {
	item, found := s.state.Find(id)
	s.state = stories.Apply(s.state, stories.RemoveItem{ID: id})
	if found {
		s.publish(eventbus.ItemRemovedEvent{ID: id, Title: item.Title})
	}
}

// Handle folds msg into the state when it is a search result. It reports
// whether msg was consumed, including results dropped as stale.
func (s *Session) Handle(msg tea.Msg) bool {
	res, ok := msg.(FetchResultMsg)
	if !ok {
		return false
	}

	ev, fresh := s.ctrl.Settle(res.Ticket, res.Items, res.Err)
	if !fresh {
		s.logger.Debugw("discarding stale search result",
			"query", res.Ticket.Query,
			"seq", res.Ticket.Seq,
			"latest", s.ctrl.Latest())
		s.publish(eventbus.FetchDiscardedEvent{
			Query:  res.Ticket.Query,
			Seq:    res.Ticket.Seq,
			Latest: s.ctrl.Latest(),
		})
		return true
	}

	s.state = stories.Apply(s.state, ev)

	if res.Err != nil {
		s.logger.Warnw("search failed", "query", res.Ticket.Query, "error", res.Err)
		s.publish(eventbus.FetchFailedEvent{Query: res.Ticket.Query, Seq: res.Ticket.Seq, Err: res.Err})
	} else {
		s.publish(eventbus.FetchSucceededEvent{Query: res.Ticket.Query, Seq: res.Ticket.Seq, Count: len(s.state.Data)})
	}
	return true
}

// Close stops waiting on searches still in flight
func (s *Session) Close() {
	s.cancel()
}

// State returns the current fetch state
func (s *Session) State() stories.State { return s.state }

// Query returns the current search term
func (s *Session) Query() string { return s.query }

// Visible returns the stories matching the current term
func (s *Session) Visible() []domain.Item {
	return stories.Project(s.state.Data, s.query)
}

// Recent returns remembered searches, newest first
func (s *Session) Recent() []string {
	out := make([]string, len(s.recent))
	copy(out, s.recent)
	return out
}

// Discarded returns how many stale results were dropped
func (s *Session) Discarded() int { return s.ctrl.Discarded() }

func (s *Session) fetch() tea.Cmd {
	ticket, ok := s.ctrl.Begin(s.query)
	if !ok {
		return nil
	}

	s.state = stories.Apply(s.state, stories.FetchInit{})
	s.logger.Debugw("search issued", "query", ticket.Query, "seq", ticket.Seq)
	s.publish(eventbus.FetchStartedEvent{Query: ticket.Query, Seq: ticket.Seq})

	return search(s.ctx, s.source, ticket)
}

// search runs one adapter call. A panic in the adapter becomes a failure.
func search(ctx context.Context, source hn.Source, ticket stories.Ticket) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = FetchResultMsg{Ticket: ticket, Err: errors.Newf("search panicked: %v", r)}
			}
		}()
		items, err := source.Search(ctx, ticket.Query)
		return FetchResultMsg{Ticket: ticket, Items: items, Err: err}
	}
}

func (s *Session) read(key string) (string, bool) {
	if s.kv == nil {
		return "", false
	}
	v, ok, err := s.kv.Get(key)
	if err != nil {
		s.logger.Warnw("failed to read stored value", "key", key, "error", err)
		return "", false
	}
	return v, ok
}

func (s *Session) persist(key, value string) {
	if s.kv == nil {
		return
	}
	if err := s.kv.Set(key, value); err != nil {
		s.logger.Warnw("failed to store value", "key", key, "error", err)
	}
}

func (s *Session) publish(ev eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(ev)
	}
}
