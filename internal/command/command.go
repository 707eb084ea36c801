// Package command implements the address book commands and the undo/redo
// history that replays them.
package command

import (
	"github.com/nikbrunner/bizbook/internal/model"
)

// Command words.
const (
	WordAdd    = "add"
	WordEdit   = "edit"
	WordDelete = "delete"
	WordList   = "list"
	WordFind   = "find"
	WordClear  = "clear"
	WordStats  = "stats"
	WordBiz    = "biz"
	WordUnbiz  = "unbiz"
	WordUndo   = "undo"
	WordRedo   = "redo"
	WordHelp   = "help"
	WordMan    = "man"
	WordExit   = "exit"
)

// Context is what a command executes against. One Context exists per
// running address book; it is passed explicitly, never shared globally.
type Context struct {
	Store   *model.Store
	History *History
}

// NewContext creates a Context over store with an empty history.
func NewContext(store *model.Store) *Context {
	return &Context{Store: store, History: NewHistory()}
}

// Result is the outcome of a successful command.
type Result struct {
	Feedback string
	ShowHelp bool
	Exit     bool
}

// Command is a parsed, validated unit of work.
type Command interface {
	// Execute runs the command. On error the store is left unchanged.
	Execute(ctx *Context) (Result, error)
	// IsMutable reports whether Execute changes the persisted content of the
	// store. Only mutable commands are recorded in the history.
	IsMutable() bool
}

// Undoable is a mutable command that can revert its last Execute.
type Undoable interface {
	Command
	// Undo restores the state captured by the last successful Execute. It
	// fails with an illegal-state error if there is nothing to restore.
	Undo(store *model.Store) (Result, error)
}

// mutable is embedded by commands that change the store.
type mutable struct{}

func (mutable) IsMutable() bool { return true }

// readOnly is embedded by commands that leave the store content unchanged.
type readOnly struct{}

func (readOnly) IsMutable() bool { return false }
