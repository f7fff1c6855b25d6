// Package navigation owns the current page, the visible chunk, the last
// user-facing error and the page history, and implements the page
// stepping rules of the teletext viewer.
package navigation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"texttv/internal/chunk"
	"texttv/internal/domain"
	"texttv/internal/eventbus"
	"texttv/internal/history"
	"texttv/internal/source"
)

const (
	// ForwardLimit is the last number a next-page search tries before wrapping to FirstPage
	ForwardLimit = 900
	// BackwardWrap is where a previous-page search continues after passing FirstPage
	BackwardWrap = 899
)

// ErrNoContent is returned when a backward search has tried every candidate
var ErrNoContent = fmt.Errorf("%w: no page with content found", source.ErrEmptyPage)

// Snapshot is a consistent copy of the engine state for rendering
type Snapshot struct {
	HasPage    bool
	Page       domain.Page
	Layout     chunk.Layout
	ChunkIndex int
	ChunkCount int
	Message    string // last user-facing error, empty when none
	Recent     []int  // newest first, at most the history limit
	HistoryLen int
}

// Engine is the page navigation state machine
type Engine struct {
	mu         sync.RWMutex
	source     source.Source
	bus        eventbus.EventBus
	history    *history.Log
	start      int
	page       *domain.Page
	layout     chunk.Layout
	chunkIndex int
	lastErr    error
	message    string
}

// Option configures an Engine
type Option func(*Engine)

// WithBus publishes navigation events on bus
func WithBus(bus eventbus.EventBus) Option {
	return func(e *Engine) { e.bus = bus }
}

// WithHistory uses log as the page history
func WithHistory(log *history.Log) Option {
	return func(e *Engine) {
		if log != nil {
			e.history = log
		}
	}
}

// WithStartPage sets the page used before anything has loaded
func WithStartPage(number int) Option {
	return func(e *Engine) { e.start = number }
}

// New creates an engine reading pages from src
func New(src source.Source, opts ...Option) *Engine {
	e := &Engine{
		source:  src,
		history: history.NewLog(history.DefaultLimit),
		start:   domain.FirstPage,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Current returns the current page number, or the start page if none has loaded
func (e *Engine) Current() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.page == nil {
		return e.start
	}
	return e.page.Number
}

// History returns the page history log
func (e *Engine) History() *history.Log {
	return e.history
}

// LastError returns the error behind the current message, if any
func (e *Engine) LastError() error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lastErr
}

// ClearError dismisses the current message
func (e *Engine) ClearError() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastErr = nil
	e.message = ""
}

// LoadPage makes number the current page.
//
// An empty page is returned to the caller and leaves all state untouched.
// Invalid numbers and transport failures are recorded as the current
// message and LoadPage returns nil. Cancellation is returned as is.
func (e *Engine) LoadPage(ctx context.Context, number int) error {
	if err := source.ValidateNumber(number); err != nil {
		e.fail(number, err)
		return nil
	}

	text, err := e.source.Fetch(ctx, number)
	if err != nil {
		if source.IsEmpty(err) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		e.fail(number, err)
		return nil
	}

	e.apply(number, text)
	return nil
}

// GotoPage loads a page the user typed. An empty page leaves the view unchanged.
func (e *Engine) GotoPage(ctx context.Context, number int) error {
	e.ClearError()
	err := e.LoadPage(ctx, number)
	if source.IsEmpty(err) {
		log.Printf("navigation: goto %d: %v", number, err)
	}
	return err
}

// SelectHistory loads the history entry offset steps back from the newest
func (e *Engine) SelectHistory(ctx context.Context, offset int) error {
	number, err := e.history.Select(offset)
	if err != nil {
		return err
	}
	e.ClearError()
	return e.LoadPage(ctx, number)
}

// NextPage walks forward from the current page to the next page with
// content. Past ForwardLimit it loads FirstPage directly.
func (e *Engine) NextPage(ctx context.Context) error {
	e.ClearError()
	for n := e.Current() + 1; n <= ForwardLimit; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := e.LoadPage(ctx, n)
		if !source.IsEmpty(err) {
			return err
		}
		e.publish(domain.PageSearchEvent{Skipped: n, Direction: domain.Forward})
	}
	return e.LoadPage(ctx, domain.FirstPage)
}

// PreviousPage walks backward from the current page to the previous page
// with content. Below FirstPage the walk continues at BackwardWrap. Every
// candidate is tried at most once.
func (e *Engine) PreviousPage(ctx context.Context) error {
	e.ClearError()
	tried := make(map[int]bool)
	n := e.Current() - 1
	for {
		if n < domain.FirstPage {
			n = BackwardWrap
		}
		if tried[n] {
			return ErrNoContent
		}
		tried[n] = true

		if err := ctx.Err(); err != nil {
			return err
		}
		err := e.LoadPage(ctx, n)
		if !source.IsEmpty(err) {
			return err
		}
		e.publish(domain.PageSearchEvent{Skipped: n, Direction: domain.Backward})
		n--
	}
}

// Start loads the start page. If it is empty the next page with content is
// loaded instead.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.RLock()
	start := e.start
	e.mu.RUnlock()

	err := e.LoadPage(ctx, start)
	if !source.IsEmpty(err) {
		return err
	}
	log.Printf("navigation: start page %d is empty, searching forward", start)
	return e.NextPage(ctx)
}

// Reload refetches the current page, bypassing any cache
func (e *Engine) Reload(ctx context.Context) error {
	number := e.Current()
	if inv, ok := e.source.(source.Invalidator); ok {
		inv.Invalidate(number)
	}
	e.ClearError()

	e.mu.RLock()
	chunkIndex := e.chunkIndex
	e.mu.RUnlock()

	if err := e.LoadPage(ctx, number); err != nil {
		return err
	}

	// Stay on the same chunk when the page still has it
	e.mu.Lock()
	if e.page != nil && e.page.Number == number && chunkIndex < e.layout.ChunkCount() {
		e.chunkIndex = chunkIndex
	}
	e.mu.Unlock()
	return nil
}

// StepChunk moves the visible chunk by delta within bounds.
// It reports whether the chunk changed.
func (e *Engine) StepChunk(delta int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.chunkIndex + delta
	if next < 0 || next >= e.layout.ChunkCount() {
		return false
	}
	e.chunkIndex = next
	return true
}

// Snapshot copies the state needed to draw the screen
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s := Snapshot{
		Layout:     e.layout,
		ChunkIndex: e.chunkIndex,
		ChunkCount: e.layout.ChunkCount(),
		Message:    e.message,
		Recent:     e.history.Recent(e.history.Limit()),
		HistoryLen: e.history.Len(),
	}
	if e.page != nil {
		s.HasPage = true
		s.Page = *e.page
	}
	return s
}

func (e *Engine) apply(number int, text string) {
	layout := chunk.Split(text)

	e.mu.Lock()
	e.page = &domain.Page{Number: number, Text: text}
	e.layout = layout
	e.chunkIndex = 0
	e.lastErr = nil
	e.message = ""
	e.mu.Unlock()

	e.publish(domain.PageLoadedEvent{Number: number, Lines: layout.LineCount(), Chunks: layout.ChunkCount()})
	if e.history.Record(number) {
		e.publish(domain.HistoryChangedEvent{Number: number, Len: e.history.Len()})
	}
}

func (e *Engine) fail(number int, err error) {
	var pe *source.PageError
	if !errors.As(err, &pe) {
		pe = &source.PageError{Kind: source.KindTransport, Number: number, Err: err}
	}
	log.Printf("navigation: page %d: %v", number, err)

	msg := pe.UserMessage()
	e.mu.Lock()
	e.lastErr = pe
	e.message = msg
	e.mu.Unlock()

	e.publish(domain.PageFailedEvent{Number: number, Message: msg, Err: pe})
}

func (e *Engine) publish(event domain.DomainEvent) {
	if e.bus != nil {
		e.bus.Publish(event)
	}
}
