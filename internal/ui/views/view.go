package views

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"texttv/internal/chunk"
	"texttv/internal/domain"
)

// Screen geometry
const (
	ScreenWidth  = 80
	ScreenHeight = 28

	headerRow = 0
	bodyRow   = 1
	barRow    = 26 // multipage hint, history bar or status
	footerRow = 27
)

// Texts shown by the renderer
const (
	ServiceName   = "SVT Text"
	MultipageHint = "Använd piltangenterna (vänster/höger) för att bläddra i sidan"
	HistoryPrefix = " Historik: "
	ErrorTitle    = "Felmeddelande"
	ErrorPrompt   = "(tryck Escape)"
	WelcomeTitle  = "Välkommen!"
	WelcomeText   = "SVT Text-TV i terminalen\n\nTangenterna visas längst ned\n\nwww.svt.se/texttv"
	SearchTitle   = "Info"
	SearchNext    = "Söker nästa sida..."
	SearchPrev    = "Söker föregående sida..."
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	HasPage    bool
	PageNumber int
	Category   string
	Layout     chunk.Layout
	ChunkIndex int
	ChunkCount int
	Clock      string

	GotoActive bool
	GotoInput  string

	HistoryActive   bool
	History         []int
	HistorySelected int

	Message         string
	Splash          bool
	Searching       bool
	SearchDirection domain.Direction
	SpinnerFrame    string
	StatusMessage   string

	Footer string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the colour schemes in use
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	return r.Screen(state).Render()
}

// Screen draws state on a fresh screen sized for the terminal
func (r *Renderer) Screen(state ViewState) *Screen {
	width := state.Width
	if width < ScreenWidth {
		width = ScreenWidth
	}
	s := NewScreen(width, ScreenHeight, r.styles)
	r.Draw(s, state)
	return s
}

// Draw paints state on s
func (r *Renderer) Draw(s Surface, state ViewState) {
	s.Clear()

	if state.HasPage {
		r.drawHeader(s, state)
		r.drawBody(s, state)
	}

	switch {
	case state.HistoryActive:
		r.drawHistory(s, state)
	case state.StatusMessage != "":
		r.drawBar(s, r.styles.Footer, state.StatusMessage)
	case state.HasPage && state.ChunkCount > 1:
		r.drawBar(s, r.styles.Footer, MultipageHint)
	}

	r.drawFooter(s, state)

	switch {
	case state.Splash:
		r.popupRender.Draw(s, Box{
			Title:  WelcomeTitle,
			Lines:  strings.Split(WelcomeText, "\n"),
			Scheme: r.styles.Welcome,
		})
	case state.Message != "":
		r.popupRender.Draw(s, NewMessageBox(ErrorTitle, state.Message, ErrorPrompt, r.styles.Error))
	case state.Searching:
		text := SearchNext
		if state.SearchDirection == domain.Backward {
			text = SearchPrev
		}
		if state.SpinnerFrame != "" {
			text = state.SpinnerFrame + " " + text
		}
		r.popupRender.Draw(s, Box{
			Title:  SearchTitle,
			Lines:  []string{text},
			Scheme: r.styles.Info,
		})
	}
}

func (r *Renderer) drawHeader(s Surface, state ViewState) {
	width, _ := s.Size()

	left := fmt.Sprintf(" %d - %s", state.PageNumber, state.Category)
	if state.ChunkCount > 1 {
		left += fmt.Sprintf(" %d/%d", state.ChunkIndex+1, state.ChunkCount)
	}
	right := ""
	if state.Clock != "" {
		right = state.Clock + " "
	}
	center := padCenter(ServiceName, width-runewidth.StringWidth(left)-runewidth.StringWidth(right), ' ')

	s.SetColor(r.styles.Header.Fg, r.styles.Header.Bg)
	s.WriteRow(headerRow, runewidth.FillRight(left+center+right, width))

	if state.GotoActive {
		// the prompt replaces the page number
		s.SetColor(r.styles.Prompt.Fg, r.styles.Prompt.Bg)
		s.WriteAt(1, headerRow, runewidth.FillRight(state.GotoInput, 3))
	}
}

func (r *Renderer) drawBody(s Surface, state ViewState) {
	s.SetColor(r.styles.Page.Fg, r.styles.Page.Bg)

	if state.Layout.IsShort() {
		for i, line := range state.Layout.Block() {
			row := bodyRow + i
			if row > barRow {
				break
			}
			s.WriteRow(row, line)
		}
		return
	}

	for i, row := range state.Layout.Rows(state.ChunkIndex) {
		s.WriteRow(bodyRow+i, row.Left, row.Right)
	}
}

func (r *Renderer) drawBar(s Surface, scheme Scheme, text string) {
	width, _ := s.Size()
	s.SetColor(scheme.Fg, scheme.Bg)
	s.WriteRow(barRow, padCenter(text, width, ' '))
}

func (r *Renderer) drawHistory(s Surface, state ViewState) {
	width, _ := s.Size()
	normal, selected := r.styles.History, r.styles.Selected

	s.SetColor(normal.Fg, normal.Bg)
	s.WriteRow(barRow, strings.Repeat(" ", width))
	x := s.WriteAt(0, barRow, HistoryPrefix)
	for i, n := range state.History {
		if i == state.HistorySelected {
			s.SetColor(selected.Fg, selected.Bg)
		}
		x = s.WriteAt(x, barRow, fmt.Sprintf("%d", n))
		s.SetColor(normal.Fg, normal.Bg)
		x = s.WriteAt(x, barRow, "  ")
	}
}

func (r *Renderer) drawFooter(s Surface, state ViewState) {
	width, _ := s.Size()
	s.SetColor(r.styles.Footer.Fg, r.styles.Footer.Bg)
	s.WriteRow(footerRow, padCenter(state.Footer, width, ' '))
}
