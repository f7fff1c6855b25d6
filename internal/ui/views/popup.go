package views

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// MessageWrap is the width error text is wrapped to
const MessageWrap = 40

// Box is a centred message box
type Box struct {
	Title  string
	Lines  []string
	Prompt string // extra line under the text, e.g. the dismiss hint
	Scheme Scheme
}

// NewMessageBox wraps text to MessageWrap columns
func NewMessageBox(title, text, prompt string, scheme Scheme) Box {
	wrapped := wordwrap.String(text, MessageWrap)
	return Box{
		Title:  title,
		Lines:  strings.Split(wrapped, "\n"),
		Prompt: prompt,
		Scheme: scheme,
	}
}

// Bounds returns the position and size of b when centred on a width x height surface
func (b Box) Bounds(width, height int) (x, y, w, h int) {
	w = 0
	for _, l := range b.Lines {
		if lw := runewidth.StringWidth(l); lw > w {
			w = lw
		}
	}
	w += 2
	if tw := runewidth.StringWidth(b.Title) + 4; tw > w {
		w = tw
	}
	if pw := runewidth.StringWidth(b.Prompt) + 2; b.Prompt != "" && pw > w {
		w = pw
	}

	h = len(b.Lines) + 3
	if b.Prompt != "" {
		h += 2
	}

	x = width/2 - w/2
	y = height/2 - h/2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y, w, h
}

// PopupRenderer draws message boxes over the page
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{styles: styles}
}

// Draw paints b centred on s
func (pr *PopupRenderer) Draw(s Surface, b Box) {
	width, height := s.Size()
	x, y, w, h := b.Bounds(width, height)

	s.SetColor(b.Scheme.Fg, b.Scheme.Bg)
	blank := strings.Repeat(" ", w)
	for row := y; row < y+h; row++ {
		s.WriteAt(x, row, blank)
	}

	s.WriteAt(x+1, y, padCenter(fmt.Sprintf(" %s ", b.Title), w-2, '_'))
	for i, line := range b.Lines {
		s.WriteAt(x+1, y+2+i, line)
	}
	if b.Prompt != "" {
		s.WriteAt(x+1, y+3+len(b.Lines), padCenter(b.Prompt, w-2, ' '))
	}
}

// padCenter centres str in width cells filled with pad. Wider strings are returned unchanged.
func padCenter(str string, width int, pad rune) string {
	sw := runewidth.StringWidth(str)
	if sw >= width {
		return str
	}
	left := width/2 - sw/2
	right := width - sw - left
	p := string(pad)
	return strings.Repeat(p, left) + str + strings.Repeat(p, right)
}
