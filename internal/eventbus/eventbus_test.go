package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, b EventBus, eventType EventType) (func() []DomainEvent, func()) {
	t.Helper()
	var mu sync.Mutex
	var got []DomainEvent
	unsub := b.Subscribe(eventType, func(e DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e)
	})
	return func() []DomainEvent {
		mu.Lock()
		defer mu.Unlock()
		out := make([]DomainEvent, len(got))
		copy(out, got)
		return out
	}, unsub
}

func TestPublishDeliversInOrder(t *testing.T) {
	b := New()
	defer b.Close()

	events, _ := collect(t, b, EventPageSearch)
	for n := 101; n <= 105; n++ {
		b.Publish(PageSearchEvent{Skipped: n})
	}

	require.Eventually(t, func() bool { return len(events()) == 5 }, time.Second, 5*time.Millisecond)
	for i, e := range events() {
		assert.Equal(t, 101+i, e.(PageSearchEvent).Skipped)
	}
}

func TestSubscribeFiltersByType(t *testing.T) {
	b := New()
	defer b.Close()

	loaded, _ := collect(t, b, EventPageLoaded)
	b.Publish(PageSearchEvent{Skipped: 1})
	b.Publish(PageLoadedEvent{Number: 100})

	require.Eventually(t, func() bool { return len(loaded()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 100, loaded()[0].(PageLoadedEvent).Number)
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	defer b.Close()

	first, unsub := collect(t, b, EventPageLoaded)
	second, _ := collect(t, b, EventPageLoaded)
	unsub()

	b.Publish(PageLoadedEvent{Number: 200})
	require.Eventually(t, func() bool { return len(second()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Empty(t, first())
}

func TestHandlerPanicDoesNotStopDispatch(t *testing.T) {
	b := New()
	defer b.Close()

	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	got, _ := collect(t, b, EventError)

	b.Publish(ErrorEvent{Message: "x"})
	require.Eventually(t, func() bool { return len(got()) == 1 }, time.Second, 5*time.Millisecond)
}

func TestPublishAfterClose(t *testing.T) {
	b := New()
	b.Close()
	assert.NotPanics(t, func() { b.Publish(PageLoadedEvent{Number: 100}) })
	assert.NotPanics(t, b.Close)
}
