package history

import (
	"errors"
	"fmt"
	"sync"
)

// DefaultLimit is how many recent entries can be browsed
const DefaultLimit = 10

// ErrOutOfRange is returned when a selection offset is outside the browsable window
var ErrOutOfRange = errors.New("history offset out of range")

// Log is the append-only list of visited page numbers, oldest first.
// Consecutive duplicates are never stored.
type Log struct {
	mu      sync.RWMutex
	entries []int
	limit   int
}

// NewLog creates a log whose browsable window holds limit entries.
// A non-positive limit uses DefaultLimit.
func NewLog(limit int) *Log {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Log{limit: limit}
}

// Record appends number unless it equals the newest entry.
// It reports whether the log grew.
func (l *Log) Record(number int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n := len(l.entries); n > 0 && l.entries[n-1] == number {
		return false
	}
	l.entries = append(l.entries, number)
	return true
}

// Len returns the total number of entries
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Limit returns the size of the browsable window
func (l *Log) Limit() int {
	return l.limit
}

// Last returns the newest entry
func (l *Log) Last() (int, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.entries) == 0 {
		return 0, false
	}
	return l.entries[len(l.entries)-1], true
}

// Recent returns up to limit entries, newest first.
// A non-positive limit uses the log's browsable window.
func (l *Log) Recent(limit int) []int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if limit <= 0 {
		limit = l.limit
	}
	n := min(limit, len(l.entries))
	out := make([]int, n)
	for i := range out {
		out[i] = l.entries[len(l.entries)-1-i]
	}
	return out
}

// Select returns the entry offset steps back from the newest one
func (l *Log) Select(offset int) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if offset < 0 || offset >= min(l.limit, len(l.entries)) {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, offset)
	}
	return l.entries[len(l.entries)-1-offset], nil
}
