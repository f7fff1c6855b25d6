// Package chunk splits teletext page text into the two-column views
// shown on screen.
//
// A long page is read as consecutive blocks of LinesPerChunk lines. Each
// block is shown as ColumnHeight rows, the first half of the block in the
// left column and the second half in the right column.
package chunk

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	ColumnHeight   = 23
	ColumnWidth    = 40
	LinesPerChunk  = 2 * ColumnHeight
	CountDivisor   = 47 // chunk count uses 47 while stepping uses 46
	ShortPageLines = 27 // pages with fewer lines are shown as one block
)

// Row is one rendered body row, both columns padded to ColumnWidth
type Row struct {
	Left  string
	Right string
}

// String joins both columns
func (r Row) String() string {
	return r.Left + r.Right
}

// Layout is the line view of a page's text
type Layout struct {
	lines []string
}

// Split breaks text on "\n". The line count is always the number of
// separators plus one, so a trailing newline yields a trailing empty line.
func Split(text string) Layout {
	return Layout{lines: strings.Split(text, "\n")}
}

// LineCount returns the number of lines; zero for an empty layout
func (l Layout) LineCount() int {
	return len(l.lines)
}

// IsShort reports whether the page is rendered as a single block
func (l Layout) IsShort() bool {
	return len(l.lines) < ShortPageLines
}

// ChunkCount returns the number of chunk views, at least 1
func (l Layout) ChunkCount() int {
	if l.IsShort() {
		return 1
	}
	n := (len(l.lines) + CountDivisor - 1) / CountDivisor
	if n < 1 {
		return 1
	}
	return n
}

// Lines returns a copy of the page lines
func (l Layout) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Block returns the lines of a short page, drawn top to bottom without columns
func (l Layout) Block() []string {
	return l.Lines()
}

// Rows returns the ColumnHeight rows of the chunk at index.
// Missing lines render as blank padding.
func (l Layout) Rows(index int) []Row {
	if index < 0 {
		index = 0
	}
	start := index * LinesPerChunk
	rows := make([]Row, ColumnHeight)
	for i := range rows {
		rows[i] = Row{
			Left:  pad(l.line(start + i)),
			Right: pad(l.line(start + i + ColumnHeight)),
		}
	}
	return rows
}

func (l Layout) line(i int) string {
	if i < 0 || i >= len(l.lines) {
		return ""
	}
	return l.lines[i]
}

// pad right-pads to ColumnWidth cells; longer lines are left as is
func pad(s string) string {
	return runewidth.FillRight(s, ColumnWidth)
}
