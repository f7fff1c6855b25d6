package commands

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"texttv/internal/navigation"
	"texttv/internal/ui/state"
)

// Operation names reported in DoneMsg
const (
	OpStart    = "start"
	OpNext     = "next"
	OpPrevious = "previous"
	OpGoto     = "goto"
	OpHistory  = "history"
	OpReload   = "reload"
)

// DoneMsg is delivered when an engine operation has finished
type DoneMsg struct {
	Op  string
	Err error
}

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Ctx    context.Context
	State  *state.AppState
	Engine *navigation.Engine
}

// engineCommand runs one engine call off the UI goroutine
type engineCommand struct {
	ctx *CommandContext
	op  string
	run func(context.Context, *navigation.Engine) error
}

// Execute marks the state busy and returns the blocking call as a tea.Cmd
func (c *engineCommand) Execute() tea.Cmd {
	c.ctx.State.BeginOp(c.op)
	ctx, engine, op, run := c.ctx.Ctx, c.ctx.Engine, c.op, c.run
	return func() tea.Msg {
		err := run(ctx, engine)
		if err != nil {
			log.Printf("commands: %s: %v", op, err)
		}
		return DoneMsg{Op: op, Err: err}
	}
}

// NewStartCommand loads the start page
func NewStartCommand(ctx *CommandContext) Command {
	return &engineCommand{ctx: ctx, op: OpStart, run: func(c context.Context, e *navigation.Engine) error {
		return e.Start(c)
	}}
}

// NewNextPageCommand searches forward for the next page
func NewNextPageCommand(ctx *CommandContext) Command {
	return &engineCommand{ctx: ctx, op: OpNext, run: func(c context.Context, e *navigation.Engine) error {
		return e.NextPage(c)
	}}
}

// NewPreviousPageCommand searches backward for the previous page
func NewPreviousPageCommand(ctx *CommandContext) Command {
	return &engineCommand{ctx: ctx, op: OpPrevious, run: func(c context.Context, e *navigation.Engine) error {
		return e.PreviousPage(c)
	}}
}

// NewGotoPageCommand jumps to a typed page number
func NewGotoPageCommand(ctx *CommandContext, number int) Command {
	return &engineCommand{ctx: ctx, op: OpGoto, run: func(c context.Context, e *navigation.Engine) error {
		return e.GotoPage(c, number)
	}}
}

// NewLoadHistoryCommand loads a history entry
func NewLoadHistoryCommand(ctx *CommandContext, offset int) Command {
	return &engineCommand{ctx: ctx, op: OpHistory, run: func(c context.Context, e *navigation.Engine) error {
		return e.SelectHistory(c, offset)
	}}
}

// NewReloadCommand refetches the current page
func NewReloadCommand(ctx *CommandContext) Command {
	return &engineCommand{ctx: ctx, op: OpReload, run: func(c context.Context, e *navigation.Engine) error {
		return e.Reload(c)
	}}
}
