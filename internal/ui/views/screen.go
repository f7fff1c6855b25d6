package views

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Surface is a fixed size character grid the renderer draws on
type Surface interface {
	// Clear blanks every cell in the page colours
	Clear()
	// SetColor sets the colours used by subsequent writes
	SetColor(fg, bg Color)
	// WriteRow writes cols one after another from the start of row
	WriteRow(row int, cols ...string)
	// WriteAt writes text from column x of row y and returns the column after it
	WriteAt(x, y int, text string) int
	// Size returns the grid width and height in cells
	Size() (int, int)
}

type cell struct {
	r    rune
	fg   Color
	bg   Color
	cont bool // right half of a wide rune
}

// Screen is the in-memory Surface. Render turns it into terminal output.
type Screen struct {
	width  int
	height int
	cells  [][]cell
	scheme Scheme
	styles *Styles
}

// NewScreen creates a blank screen of the given size
func NewScreen(width, height int, styles *Styles) *Screen {
	if styles == nil {
		styles = NewStyles()
	}
	s := &Screen{
		width:  width,
		height: height,
		styles: styles,
		cells:  make([][]cell, height),
	}
	for y := range s.cells {
		s.cells[y] = make([]cell, width)
	}
	s.Clear()
	return s
}

func (s *Screen) Clear() {
	s.scheme = s.styles.Page
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = cell{r: ' ', fg: s.scheme.Fg, bg: s.scheme.Bg}
		}
	}
}

func (s *Screen) SetColor(fg, bg Color) {
	s.scheme = Scheme{Fg: fg, Bg: bg}
}

func (s *Screen) WriteRow(row int, cols ...string) {
	x := 0
	for _, col := range cols {
		x = s.WriteAt(x, row, col)
	}
}

func (s *Screen) WriteAt(x, y int, text string) int {
	if y < 0 || y >= s.height {
		return x
	}
	for _, r := range text {
		if r == '\n' {
			break
		}
		if r < ' ' {
			r = ' '
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > s.width {
			return s.width
		}
		if x >= 0 {
			s.cells[y][x] = cell{r: r, fg: s.scheme.Fg, bg: s.scheme.Bg}
			if w == 2 {
				s.cells[y][x+1] = cell{fg: s.scheme.Fg, bg: s.scheme.Bg, cont: true}
			} else if x+1 < s.width && s.cells[y][x+1].cont {
				// overwrote the left half of a wide rune
				s.cells[y][x+1] = cell{r: ' ', fg: s.scheme.Fg, bg: s.scheme.Bg}
			}
		}
		x += w
	}
	return x
}

func (s *Screen) Size() (int, int) {
	return s.width, s.height
}

// Row returns the text of row y without colours
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	var b strings.Builder
	for _, c := range s.cells[y] {
		if !c.cont {
			b.WriteRune(c.r)
		}
	}
	return b.String()
}

// Text returns every row without colours, joined by newlines
func (s *Screen) Text() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}

// SchemeAt returns the colours of the cell at x, y
func (s *Screen) SchemeAt(x, y int) Scheme {
	if y < 0 || y >= s.height || x < 0 || x >= s.width {
		return Scheme{}
	}
	c := s.cells[y][x]
	return Scheme{Fg: c.fg, Bg: c.bg}
}

// Render returns the screen as styled terminal output, one run per colour change
func (s *Screen) Render() string {
	var out strings.Builder
	var run strings.Builder
	for y, row := range s.cells {
		if y > 0 {
			out.WriteByte('\n')
		}
		if len(row) == 0 {
			continue
		}
		current := Scheme{Fg: row[0].fg, Bg: row[0].bg}
		for _, c := range row {
			sc := Scheme{Fg: c.fg, Bg: c.bg}
			if sc != current {
				out.WriteString(s.styles.Style(current).Render(run.String()))
				run.Reset()
				current = sc
			}
			if !c.cont {
				run.WriteRune(c.r)
			}
		}
		out.WriteString(s.styles.Style(current).Render(run.String()))
		run.Reset()
	}
	return out.String()
}
