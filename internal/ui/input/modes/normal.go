package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"texttv/internal/ui/input/types"
)

// NormalMode handles keys while a page is on screen. Whether the arrow
// keys step chunks depends only on the page having more than one chunk.
type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQ):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Left):
		if ctx.ChunkCount() > 1 {
			return []types.Action{types.StepChunkAction{Delta: -1}}, true
		}
		return nil, false

	case key.Matches(msg, m.keys.Right):
		if ctx.ChunkCount() > 1 {
			return []types.Action{types.StepChunkAction{Delta: 1}}, true
		}
		return nil, false

	case key.Matches(msg, m.keys.Goto):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoto}}, true

	case key.Matches(msg, m.keys.History):
		if len(ctx.RecentHistory()) == 0 {
			return nil, false
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHistory}}, true

	case key.Matches(msg, m.keys.Next):
		return []types.Action{types.NextPageAction{}}, true

	case key.Matches(msg, m.keys.Previous):
		return []types.Action{types.PreviousPageAction{}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Reload):
		return []types.Action{types.ReloadAction{}}, true

	case key.Matches(msg, m.keys.View):
		return []types.Action{types.ViewPageAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
