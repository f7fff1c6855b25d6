package source

import (
	"context"
	"log"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedSource keeps recently fetched page text in memory.
// Only successful fetches are cached; empty pages are always refetched.
type CachedSource struct {
	next  Source
	cache *expirable.LRU[int, string]
	debug bool
}

// NewCachedSource wraps next with an LRU of size entries that expire after ttl.
// A non-positive ttl disables expiry.
func NewCachedSource(next Source, size int, ttl time.Duration, debug bool) *CachedSource {
	if size <= 0 {
		size = 64
	}
	if ttl < 0 {
		ttl = 0
	}
	return &CachedSource{
		next:  next,
		cache: expirable.NewLRU[int, string](size, nil, ttl),
		debug: debug,
	}
}

// Fetch returns the cached text or fetches it from the wrapped source
func (c *CachedSource) Fetch(ctx context.Context, number int) (string, error) {
	if text, ok := c.cache.Get(number); ok {
		if c.debug {
			log.Printf("source: cache hit for %d", number)
		}
		return text, nil
	}

	text, err := c.next.Fetch(ctx, number)
	if err != nil {
		return "", err
	}
	c.cache.Add(number, text)
	return text, nil
}

// Invalidate drops a page so the next fetch goes to the wrapped source
func (c *CachedSource) Invalidate(number int) {
	c.cache.Remove(number)
}

// Len returns the number of cached pages
func (c *CachedSource) Len() int {
	return c.cache.Len()
}
