package input

import (
	"texttv/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// CurrentPage returns the page number on screen
func (c *ModelContext) CurrentPage() int {
	return c.State.CurrentPage()
}

// ChunkIndex returns the visible chunk
func (c *ModelContext) ChunkIndex() int {
	return c.State.Snapshot.ChunkIndex
}

// ChunkCount returns how many chunks the current page has
func (c *ModelContext) ChunkCount() int {
	if c.State.Snapshot.ChunkCount < 1 {
		return 1
	}
	return c.State.Snapshot.ChunkCount
}

// RecentHistory returns the browsable history, newest first
func (c *ModelContext) RecentHistory() []int {
	return c.State.Snapshot.Recent
}

// HasMessage reports whether an error message is showing
func (c *ModelContext) HasMessage() bool {
	return c.State.HasMessage()
}
