package ui

import (
	"hnstories/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pauseRenderingMsg signals that an external pager owns the terminal
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals that the pager returned the terminal
type resumeRenderingMsg struct{}

// readyMsg is sent once after the first layout
type readyMsg struct{}
