package handlers

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"texttv/internal/eventbus"
	"texttv/internal/ui/state"
)

// EventHandler handles domain events and updates state
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
	case eventbus.PageSearchEvent:
		// Searches publish from the command goroutine; a late event after
		// the command finished must not bring the notice back.
		h.state.SetSearching(e.Skipped, e.Direction)

	case eventbus.PageLoadedEvent:
		h.state.StatusMessage = ""

	case eventbus.PageFailedEvent:
		log.Printf("ui: page %d failed: %v", e.Number, e.Err)

	case eventbus.ErrorEvent:
		log.Printf("ui: error: %s: %v", e.Message, e.Err)
		h.state.StatusMessage = e.Message

	case eventbus.ConfigSavedEvent:
		log.Printf("ui: config saved to %s", e.Path)
	}

	return nil
}
