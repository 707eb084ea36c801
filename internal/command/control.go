package command

import (
	"strings"

	"github.com/nikbrunner/bizbook/internal/errors"
)

// UndoCommand reverts the last applied change.
type UndoCommand struct{ readOnly }

// NewUndo creates an UndoCommand.
func NewUndo() *UndoCommand { return &UndoCommand{} }

func (c *UndoCommand) Execute(ctx *Context) (Result, error) {
	return ctx.History.Undo(ctx.Store)
}

// RedoCommand re-applies the last reverted change.
type RedoCommand struct{ readOnly }

// NewRedo creates a RedoCommand.
func NewRedo() *RedoCommand { return &RedoCommand{} }

func (c *RedoCommand) Execute(ctx *Context) (Result, error) {
	return ctx.History.Redo(ctx)
}

// HelpCommand asks the host to show the help window.
type HelpCommand struct{ readOnly }

// NewHelp creates a HelpCommand.
func NewHelp() *HelpCommand { return &HelpCommand{} }

func (c *HelpCommand) Execute(*Context) (Result, error) {
	return Result{Feedback: "Opened help window.", ShowHelp: true}, nil
}

// ManCommand prints the manual for one command, or a summary of all.
type ManCommand struct {
	readOnly
	word string
}

// NewMan creates a ManCommand. An empty word lists every command.
func NewMan(word string) *ManCommand { return &ManCommand{word: word} }

func (c *ManCommand) Execute(*Context) (Result, error) {
	if c.word != "" {
		usage, ok := Lookup(c.word)
		if !ok {
			return Result{}, errors.NewUnknownCommand(c.word)
		}
		return Result{Feedback: usage}, nil
	}

	var b strings.Builder
	b.WriteString("Available commands:")
	for _, e := range Manual() {
		b.WriteString("\n  ")
		b.WriteString(e.Summary())
	}
	return Result{Feedback: b.String()}, nil
}

// ExitCommand asks the host to terminate.
type ExitCommand struct{ readOnly }

// NewExit creates an ExitCommand.
func NewExit() *ExitCommand { return &ExitCommand{} }

func (c *ExitCommand) Execute(*Context) (Result, error) {
	return Result{Feedback: "Exiting Address Book as requested ...", Exit: true}, nil
}
