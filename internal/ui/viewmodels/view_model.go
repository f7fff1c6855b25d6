package viewmodels

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"texttv/internal/config"
	inputtypes "texttv/internal/ui/input/types"
	"texttv/internal/ui/state"
	"texttv/internal/ui/views"
)

// ClockFormat is the layout of the header clock
const ClockFormat = "2006-01-02 15:04:05"

// FooterSeparator separates the key hints in the footer
const FooterSeparator = " :: "

// NewFooterHelp returns a help model rendering plain short help joined by FooterSeparator
func NewFooterHelp() help.Model {
	h := help.New()
	h.ShortSeparator = FooterSeparator
	plain := lipgloss.NewStyle()
	h.Styles = help.Styles{
		ShortKey:       plain,
		ShortDesc:      plain,
		ShortSeparator: plain,
		Ellipsis:       plain,
		FullKey:        plain,
		FullDesc:       plain,
		FullSeparator:  plain,
	}
	return h
}

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	config    *config.Config
	width     int
	height    int
	help      help.Model
	bindings  []key.Binding
	mode      inputtypes.Mode
	textInput string
	spinner   string
	now       func() time.Time
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, keys inputtypes.KeyMap) *ViewModel {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &ViewModel{
		state:    appState,
		config:   cfg,
		help:     NewFooterHelp(),
		bindings: keys.ShortHelp(),
		now:      time.Now,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetMode sets the current input mode
func (vm *ViewModel) SetMode(mode inputtypes.Mode) {
	vm.mode = mode
}

// UpdateTextInput updates the goto prompt text
func (vm *ViewModel) UpdateTextInput(ti textinput.Model) {
	vm.textInput = ti.Value()
}

// SetSpinner records the current spinner frame
func (vm *ViewModel) SetSpinner(s spinner.Model) {
	vm.spinner = s.View()
}

// SetClock replaces the time source of the header clock
func (vm *ViewModel) SetClock(now func() time.Time) {
	vm.now = now
}

// Footer returns the key help line
func (vm *ViewModel) Footer() string {
	return vm.help.ShortHelpView(vm.bindings)
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	snap := vm.state.Snapshot
	vs := views.ViewState{
		Width:           vm.width,
		Height:          vm.height,
		HasPage:         snap.HasPage,
		Layout:          snap.Layout,
		ChunkIndex:      snap.ChunkIndex,
		ChunkCount:      snap.ChunkCount,
		GotoActive:      vm.mode == inputtypes.ModeGoto,
		HistoryActive:   vm.mode == inputtypes.ModeHistory,
		History:         snap.Recent,
		HistorySelected: vm.state.HistorySelected,
		Message:         snap.Message,
		Splash:          vm.state.Splash,
		Searching:       vm.state.Busy && vm.state.Searching != 0,
		SearchDirection: vm.state.SearchDirection,
		SpinnerFrame:    vm.spinner,
		StatusMessage:   vm.state.StatusMessage,
		Footer:          vm.Footer(),
	}

	if snap.HasPage {
		vs.PageNumber = snap.Page.Number
		vs.Category = snap.Page.Category().String()
	}
	if vs.GotoActive {
		vs.GotoInput = vm.textInput
	}
	if vm.config.UI.ShowClock && vm.now != nil {
		vs.Clock = vm.now().Format(ClockFormat)
	}
	return vs
}
