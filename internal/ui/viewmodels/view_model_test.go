package viewmodels

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/stretchr/testify/assert"

	"texttv/internal/chunk"
	"texttv/internal/config"
	"texttv/internal/domain"
	"texttv/internal/navigation"
	inputtypes "texttv/internal/ui/input/types"
	"texttv/internal/ui/state"
)

func loadedState(number int, text string) *state.AppState {
	st := state.NewAppState()
	layout := chunk.Split(text)
	st.EndOp(navigation.Snapshot{
		HasPage:    true,
		Page:       domain.Page{Number: number, Text: text},
		Layout:     layout,
		ChunkCount: layout.ChunkCount(),
		Recent:     []int{number},
		HistoryLen: 1,
	})
	st.Splash = false
	return st
}

func TestFooterMatchesKeyHelp(t *testing.T) {
	vm := NewViewModel(state.NewAppState(), nil, inputtypes.DefaultKeyMap())
	assert.Equal(t,
		"g Gå till :: b Föregående sida :: n Nästa sida :: h Historik :: q Avsluta",
		vm.Footer())
}

func TestBuildViewStateFromSnapshot(t *testing.T) {
	st := loadedState(377, "hej")
	vm := NewViewModel(st, config.DefaultConfig(), inputtypes.DefaultKeyMap())
	fixed := time.Date(2026, 10, 18, 12, 30, 0, 0, time.UTC)
	vm.SetClock(func() time.Time { return fixed })
	vm.SetDimensions(90, 30)

	vs := vm.BuildViewState()
	assert.True(t, vs.HasPage)
	assert.Equal(t, 377, vs.PageNumber)
	assert.Equal(t, "Sport", vs.Category)
	assert.Equal(t, 1, vs.ChunkCount)
	assert.Equal(t, "2026-10-18 12:30:00", vs.Clock)
	assert.Equal(t, 90, vs.Width)
	assert.False(t, vs.Splash)
	assert.False(t, vs.GotoActive)
	assert.Empty(t, vs.GotoInput)
}

func TestClockCanBeDisabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.ShowClock = false
	vm := NewViewModel(loadedState(100, "x"), cfg, inputtypes.DefaultKeyMap())
	assert.Empty(t, vm.BuildViewState().Clock)
}

func TestModesReachTheView(t *testing.T) {
	st := loadedState(100, "x")
	vm := NewViewModel(st, nil, inputtypes.DefaultKeyMap())

	ti := textinput.New()
	ti.SetValue("12")
	vm.UpdateTextInput(ti)
	vm.SetMode(inputtypes.ModeGoto)
	vs := vm.BuildViewState()
	assert.True(t, vs.GotoActive)
	assert.Equal(t, "12", vs.GotoInput)

	st.HistorySelected = 0
	vm.SetMode(inputtypes.ModeHistory)
	vs = vm.BuildViewState()
	assert.True(t, vs.HistoryActive)
	assert.False(t, vs.GotoActive)
	assert.Empty(t, vs.GotoInput)
	assert.Equal(t, []int{100}, vs.History)
}

func TestSearchingOnlyWhileBusy(t *testing.T) {
	st := loadedState(100, "x")
	vm := NewViewModel(st, nil, inputtypes.DefaultKeyMap())

	st.SetSearching(101, domain.Forward)
	assert.False(t, vm.BuildViewState().Searching)

	st.BeginOp("next")
	st.SetSearching(101, domain.Forward)
	vs := vm.BuildViewState()
	assert.True(t, vs.Searching)
	assert.Equal(t, domain.Forward, vs.SearchDirection)

	st.EndOp(st.Snapshot)
	assert.False(t, vm.BuildViewState().Searching)
}
