package ui

import (
	"time"

	"texttv/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// splashDoneMsg ends the welcome banner
type splashDoneMsg struct{}

// clockTickMsg redraws the header clock
type clockTickMsg time.Time

// pagerDoneMsg is sent when the external pager has returned the terminal
type pagerDoneMsg struct {
	what string
	err  error
}
