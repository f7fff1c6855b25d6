package state

import (
	"texttv/internal/domain"
	"texttv/internal/navigation"
)

// AppState contains all the application state the UI renders from
type AppState struct {
	// Engine state as of the last completed operation
	Snapshot navigation.Snapshot

	// Operation state
	Busy            bool             // an engine operation is in flight
	Op              string           // name of the in-flight operation
	Searching       int              // last page skipped by a running search, 0 when none
	SearchDirection domain.Direction // direction of the running search

	// UI state
	Splash          bool   // welcome box is showing
	HistorySelected int    // cursor offset while browsing history
	StatusMessage   string // transient status line text
	PagerOpen       bool   // an external pager owns the terminal
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{Splash: true}
}

// BeginOp marks an engine operation as started
func (s *AppState) BeginOp(op string) {
	s.Busy = true
	s.Op = op
	s.Searching = 0
}

// EndOp records the result of the finished operation
func (s *AppState) EndOp(snap navigation.Snapshot) {
	s.Busy = false
	s.Op = ""
	s.Searching = 0
	s.Snapshot = snap
}

// SetSearching records a search step; ignored when nothing is in flight
func (s *AppState) SetSearching(skipped int, dir domain.Direction) {
	if !s.Busy {
		return
	}
	s.Searching = skipped
	s.SearchDirection = dir
}

// HasMessage reports whether an error message is waiting to be dismissed
func (s *AppState) HasMessage() bool {
	return s.Snapshot.Message != ""
}

// CurrentPage returns the page number on screen, 0 before the first load
func (s *AppState) CurrentPage() int {
	if !s.Snapshot.HasPage {
		return 0
	}
	return s.Snapshot.Page.Number
}
