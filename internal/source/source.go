// Package source fetches teletext pages and turns them into plain page text.
//
// Every implementation fails with a *PageError: KindInvalidPage for numbers
// outside 100..999, KindEmptyPage when the page has no content, and
// KindTransport when it could not be retrieved at all.
package source

import "context"

// Source produces the text of a page
type Source interface {
	Fetch(ctx context.Context, number int) (string, error)
}

// Invalidator is implemented by sources that keep a cache
type Invalidator interface {
	Invalidate(number int)
}
