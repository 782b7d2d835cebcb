package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hnstories/internal/eventbus"
	"hnstories/internal/ui/state"
)

// StatusTimeout is how long a status message stays visible
const StatusTimeout = 4 * time.Second

// ClearStatusMsg asks the model to clear the status line
type ClearStatusMsg struct{}

// EventHandler turns domain events into status bar updates. It never
// touches story state; the session owns that.
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.FetchSucceededEvent:
		h.state.SetStatus(fmt.Sprintf("%d stories for %q", e.Count, e.Query), false)

	case eventbus.FetchFailedEvent:
		h.state.SetStatus(fmt.Sprintf("Search for %q failed: %v", e.Query, e.Err), true)

	case eventbus.ItemRemovedEvent:
		h.state.SetStatus(fmt.Sprintf("Removed %q", e.Title), false)

	case eventbus.ErrorEvent:
		if e.Err != nil {
			h.state.SetStatus(fmt.Sprintf("Error: %s: %v", e.Message, e.Err), true)
		} else {
			h.state.SetStatus(fmt.Sprintf("Error: %s", e.Message), true)
		}

	default:
		return nil
	}

	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg { return ClearStatusMsg{} })
}
