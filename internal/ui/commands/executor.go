package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"texttv/internal/navigation"
	"texttv/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(ctx context.Context, state *state.AppState, engine *navigation.Engine) *Executor {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Executor{
		ctx: &CommandContext{
			Ctx:    ctx,
			State:  state,
			Engine: engine,
		},
	}
}

// ExecuteStart creates and executes a start command
func (e *Executor) ExecuteStart() tea.Cmd {
	return NewStartCommand(e.ctx).Execute()
}

// ExecuteNextPage creates and executes a next page command
func (e *Executor) ExecuteNextPage() tea.Cmd {
	return NewNextPageCommand(e.ctx).Execute()
}

// ExecutePreviousPage creates and executes a previous page command
func (e *Executor) ExecutePreviousPage() tea.Cmd {
	return NewPreviousPageCommand(e.ctx).Execute()
}

// ExecuteGotoPage creates and executes a goto command
func (e *Executor) ExecuteGotoPage(number int) tea.Cmd {
	return NewGotoPageCommand(e.ctx, number).Execute()
}

// ExecuteLoadHistory creates and executes a history selection command
func (e *Executor) ExecuteLoadHistory(offset int) tea.Cmd {
	return NewLoadHistoryCommand(e.ctx, offset).Execute()
}

// ExecuteReload creates and executes a reload command
func (e *Executor) ExecuteReload() tea.Cmd {
	return NewReloadCommand(e.ctx).Execute()
}
