package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryChanged   EventType = "QueryChanged"
	EventFetchStarted   EventType = "FetchStarted"
	EventFetchSucceeded EventType = "FetchSucceeded"
	EventFetchFailed    EventType = "FetchFailed"
	EventFetchDiscarded EventType = "FetchDiscarded"
	EventItemRemoved    EventType = "ItemRemoved"
	EventError          EventType = "Error"
	EventConfigSaved    EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryChangedEvent is emitted when the search term changes
type QueryChangedEvent struct {
	Query string
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// FetchStartedEvent is emitted when a search request is issued
type FetchStartedEvent struct {
	Query string
	Seq   uint64
}

func (e FetchStartedEvent) Type() EventType { return EventFetchStarted }

// FetchSucceededEvent is emitted when the latest search resolved
type FetchSucceededEvent struct {
	Query string
	Seq   uint64
	Count int
}

func (e FetchSucceededEvent) Type() EventType { return EventFetchSucceeded }

// FetchFailedEvent is emitted when the latest search failed
type FetchFailedEvent struct {
	Query string
	Seq   uint64
	Err   error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// FetchDiscardedEvent is emitted when a late response for an older search is dropped
type FetchDiscardedEvent struct {
	Query  string
	Seq    uint64
	Latest uint64
}

func (e FetchDiscardedEvent) Type() EventType { return EventFetchDiscarded }

// ItemRemovedEvent is emitted when the user removes a story from the list
type ItemRemovedEvent struct {
	ID    string
	Title string
}

func (e ItemRemovedEvent) Type() EventType { return EventItemRemoved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
