package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Color is an index into the 16 colour console palette
type Color int

// Palette, in console order
const (
	Black Color = iota
	DarkBlue
	DarkGreen
	DarkCyan
	DarkRed
	DarkMagenta
	DarkYellow
	Gray
	DarkGray
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
	White
)

// ansi maps the console palette onto ANSI colour numbers
var ansi = [...]string{
	Black:       "0",
	DarkBlue:    "4",
	DarkGreen:   "2",
	DarkCyan:    "6",
	DarkRed:     "1",
	DarkMagenta: "5",
	DarkYellow:  "3",
	Gray:        "7",
	DarkGray:    "8",
	Blue:        "12",
	Green:       "10",
	Cyan:        "14",
	Red:         "9",
	Magenta:     "13",
	Yellow:      "11",
	White:       "15",
}

// Lipgloss returns the terminal colour for c
func (c Color) Lipgloss() lipgloss.Color {
	if c < Black || int(c) >= len(ansi) {
		return lipgloss.Color(ansi[White])
	}
	return lipgloss.Color(ansi[c])
}

// Scheme is a foreground/background pair
type Scheme struct {
	Fg Color
	Bg Color
}

// Styles contains the colour schemes of each screen element
type Styles struct {
	Page     Scheme
	Header   Scheme
	Prompt   Scheme
	Footer   Scheme
	History  Scheme
	Selected Scheme
	Error    Scheme
	Welcome  Scheme
	Info     Scheme

	cache map[Scheme]lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Page:     Scheme{White, Black},
		Header:   Scheme{Black, White},
		Prompt:   Scheme{White, Black},
		Footer:   Scheme{DarkRed, White},
		History:  Scheme{Black, White},
		Selected: Scheme{White, Black},
		Error:    Scheme{White, DarkRed},
		Welcome:  Scheme{Black, Yellow},
		Info:     Scheme{Black, White},
		cache:    make(map[Scheme]lipgloss.Style),
	}
}

// Style returns the lipgloss style drawing a run in scheme s
func (st *Styles) Style(s Scheme) lipgloss.Style {
	if style, ok := st.cache[s]; ok {
		return style
	}
	style := lipgloss.NewStyle().
		Foreground(s.Fg.Lipgloss()).
		Background(s.Bg.Lipgloss())
	st.cache[s] = style
	return style
}
