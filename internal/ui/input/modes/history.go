package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"texttv/internal/history"
	"texttv/internal/ui/input/types"
)

// HistoryMode walks the history bar. Left is newer, right is older.
type HistoryMode struct {
	browser *history.Browser
}

func NewHistoryMode() *HistoryMode {
	return &HistoryMode{browser: history.NewBrowser()}
}

func (m *HistoryMode) Name() string {
	return "history"
}

func (m *HistoryMode) Enter(ctx types.Context) []types.Action {
	m.browser.Begin(ctx.RecentHistory())
	return []types.Action{types.UpdateHistoryCursorAction{Offset: 0}}
}

func (m *HistoryMode) Exit(ctx types.Context) []types.Action {
	m.browser.Cancel()
	return nil
}

// Selected returns the cursor offset
func (m *HistoryMode) Selected() int {
	return m.browser.Selected()
}

func (m *HistoryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyLeft:
		return []types.Action{types.UpdateHistoryCursorAction{Offset: m.browser.Left()}}, true

	case tea.KeyRight:
		return []types.Action{types.UpdateHistoryCursorAction{Offset: m.browser.Right()}}, true

	case tea.KeyEnter:
		offset := m.browser.Selected()
		page, ok := m.browser.Commit()
		if !ok {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
		}
		return []types.Action{
			types.LoadHistoryAction{Offset: offset, Number: page},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case tea.KeyEsc:
		m.browser.Cancel()
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	// Everything else is swallowed while the bar is open
	return nil, true
}
