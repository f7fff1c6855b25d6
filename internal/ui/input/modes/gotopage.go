package modes

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"texttv/internal/ui/input/types"
)

// GotoMode reads a page number typed over the header
type GotoMode struct {
	TextInputMode
}

func NewGotoMode(ti *textinput.Model) *GotoMode {
	return &GotoMode{TextInputMode: NewTextInputMode(types.ModeGoto, "goto", ti)}
}

func (m *GotoMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type != tea.KeyEnter {
		return m.handleCommon(msg)
	}

	back := types.ChangeModeAction{Mode: types.ModeNormal}
	number, ok := ParsePageNumber(m.Value())
	if !ok || number == ctx.CurrentPage() {
		return []types.Action{back}, true
	}
	return []types.Action{types.GotoPageAction{Number: number}, back}, true
}

// ParsePageNumber interprets prompt input. Blank input reports false.
// Anything that is not an integer becomes 0, which the engine rejects as
// an invalid page.
func ParsePageNumber(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, true
	}
	return n, true
}
