package history

// State of a Browser
type State int

const (
	Idle State = iota
	Browsing
)

func (s State) String() string {
	if s == Browsing {
		return "browsing"
	}
	return "idle"
}

// Browser tracks the selection while the user walks the history bar.
// Offset 0 is the newest entry, shown leftmost.
type Browser struct {
	state   State
	offset  int
	entries []int
}

// NewBrowser returns an idle browser
func NewBrowser() *Browser {
	return &Browser{}
}

// Begin starts browsing the given newest-first entries.
// With no entries the browser stays idle and Begin returns false.
func (b *Browser) Begin(entries []int) bool {
	b.offset = 0
	b.entries = append(b.entries[:0], entries...)
	if len(b.entries) == 0 {
		b.state = Idle
		return false
	}
	b.state = Browsing
	return true
}

// Left moves the selection towards the newest entry
func (b *Browser) Left() int {
	if b.state == Browsing && b.offset > 0 {
		b.offset--
	}
	return b.offset
}

// Right moves the selection towards older entries
func (b *Browser) Right() int {
	if b.state == Browsing && b.offset < len(b.entries)-1 {
		b.offset++
	}
	return b.offset
}

// Commit ends browsing and returns the selected page number
func (b *Browser) Commit() (int, bool) {
	if b.state != Browsing {
		return 0, false
	}
	page := b.entries[b.offset]
	b.reset()
	return page, true
}

// Cancel ends browsing without a selection
func (b *Browser) Cancel() {
	b.reset()
}

func (b *Browser) reset() {
	b.state = Idle
	b.offset = 0
	b.entries = b.entries[:0]
}

// State returns the current state
func (b *Browser) State() State { return b.state }

// Selected returns the current offset
func (b *Browser) Selected() int { return b.offset }

// Entries returns the entries being browsed, newest first
func (b *Browser) Entries() []int { return b.entries }
