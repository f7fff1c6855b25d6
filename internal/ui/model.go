package ui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"texttv/internal/config"
	"texttv/internal/eventbus"
	"texttv/internal/navigation"
	"texttv/internal/ui/commands"
	"texttv/internal/ui/handlers"
	"texttv/internal/ui/input"
	inputtypes "texttv/internal/ui/input/types"
	"texttv/internal/ui/state"
	"texttv/internal/ui/viewmodels"
	"texttv/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state
	engine *navigation.Engine

	// UI-specific state not in AppState
	width   int
	height  int
	spinner spinner.Model

	// Handlers
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	helpRender   *HelpRenderer
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model driving engine
func NewModel(ctx context.Context, bus eventbus.EventBus, cfg *config.Config, engine *navigation.Engine) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	appState := state.NewAppState()
	appState.Splash = cfg.UI.SplashDuration() > 0

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		engine:       engine,
		spinner:      spinner.New(spinner.WithSpinner(spinner.Line)),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		pager:        NewPagerOps(),
	}

	m.eventHandler = handlers.NewEventHandler(appState)
	m.cmdExecutor = commands.NewExecutor(ctx, appState, engine)
	m.helpRender = NewHelpRenderer(m.inputHandler.Keys())
	m.viewModel = viewmodels.NewViewModel(appState, cfg, m.inputHandler.Keys())
	m.viewModel.SetSpinner(m.spinner)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if m.pager != nil {
		m.pager.SetProgram(p)
	}
}

// Init shows the welcome box and loads the start page behind it
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.cmdExecutor.ExecuteStart(), m.spinner.Tick}
	if m.state.Splash {
		cmds = append(cmds, tea.Tick(m.config.UI.SplashDuration(), func(time.Time) tea.Msg {
			return splashDoneMsg{}
		}))
	}
	if m.config.UI.ShowClock {
		cmds = append(cmds, clockTick())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case commands.DoneMsg:
		return m, m.handleDone(msg)

	default:
		// Handle non-keyboard messages
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			if ti := m.inputHandler.TextInput(); ti != nil {
				m.viewModel.UpdateTextInput(*ti)
			}
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// handleKey routes a key through the input handler unless the screen is locked
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.Busy || m.state.Splash || m.state.PagerOpen {
		keys := m.inputHandler.Keys()
		if key.Matches(msg, keys.ForceQ) || (key.Matches(msg, keys.Quit) && m.inputHandler.CurrentMode() != inputtypes.ModeMessage) {
			return m, tea.Quit
		}
		return m, nil
	}

	m.state.StatusMessage = ""
	ctx := &input.ModelContext{State: m.state}

	actions, cmd := m.inputHandler.HandleKey(msg, ctx)

	cmds := []tea.Cmd{}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}

	m.syncInput()
	return m, tea.Batch(cmds...)
}

// handleDone records the outcome of an engine operation
func (m *Model) handleDone(msg commands.DoneMsg) tea.Cmd {
	m.state.EndOp(m.engine.Snapshot())
	m.state.HistorySelected = 0
	if msg.Err != nil {
		log.Printf("ui: %s finished: %v", msg.Op, msg.Err)
	}

	if m.state.HasMessage() {
		ctx := &input.ModelContext{State: m.state}
		var cmds []tea.Cmd
		for _, action := range m.inputHandler.ChangeMode(inputtypes.ModeMessage, ctx) {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		m.syncInput()
		return tea.Batch(cmds...)
	}
	return nil
}

// syncInput copies the input handler's mode and prompt into the view model
func (m *Model) syncInput() {
	m.viewModel.SetMode(m.inputHandler.CurrentMode())
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}
}

// processAction executes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %T", action)
	switch a := action.(type) {
	case inputtypes.NextPageAction:
		return m.cmdExecutor.ExecuteNextPage()

	case inputtypes.PreviousPageAction:
		return m.cmdExecutor.ExecutePreviousPage()

	case inputtypes.GotoPageAction:
		return m.cmdExecutor.ExecuteGotoPage(a.Number)

	case inputtypes.StepChunkAction:
		if m.engine.StepChunk(a.Delta) {
			m.state.Snapshot = m.engine.Snapshot()
		}

	case inputtypes.ReloadAction:
		if m.state.Snapshot.HasPage {
			return m.cmdExecutor.ExecuteReload()
		}

	case inputtypes.UpdateHistoryCursorAction:
		m.state.HistorySelected = a.Offset

	case inputtypes.LoadHistoryAction:
		m.state.HistorySelected = 0
		if a.Number == m.state.CurrentPage() {
			return nil
		}
		return m.cmdExecutor.ExecuteLoadHistory(a.Offset)

	case inputtypes.UpdateTextAction, inputtypes.CancelTextAction:
		// the prompt is read back from the input handler in syncInput

	case inputtypes.DismissMessageAction:
		m.engine.ClearError()
		m.state.Snapshot = m.engine.Snapshot()

	case inputtypes.ViewPageAction:
		if !m.state.Snapshot.HasPage {
			return nil
		}
		m.state.PagerOpen = true
		return m.pager.Show("page", RenderPageContent(m.state.Snapshot.Page))

	case inputtypes.ToggleHelpAction:
		m.state.PagerOpen = true
		return m.pager.Show("help", m.helpRender.RenderHelpContent())

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		// Process domain events
		cmd := m.eventHandler.HandleEvent(msg.Event)
		return m, cmd

	case splashDoneMsg:
		m.state.Splash = false
		return m, nil

	case clockTickMsg:
		if !m.config.UI.ShowClock {
			return m, nil
		}
		return m, clockTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.viewModel.SetSpinner(m.spinner)
		return m, cmd

	case pagerDoneMsg:
		m.state.PagerOpen = false
		if msg.err != nil {
			log.Printf("%s pager failed: %v", msg.what, msg.err)
			m.state.StatusMessage = "Kunde inte visa sidan"
		}
		return m, nil

	default:
		return m, nil
	}
}

// View renders the screen
func (m *Model) View() string {
	if m.width == 0 {
		return "Laddar..."
	}
	m.syncInput()
	return m.renderer.Render(m.viewModel.BuildViewState())
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}
