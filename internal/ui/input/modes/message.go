package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"texttv/internal/ui/input/types"
)

// MessageMode holds the error box on screen until Escape
type MessageMode struct{}

func NewMessageMode() *MessageMode {
	return &MessageMode{}
}

func (m *MessageMode) Name() string {
	return "message"
}

func (m *MessageMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *MessageMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *MessageMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyEsc:
		return []types.Action{
			types.DismissMessageAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return nil, true
}
