package command

import (
	"github.com/nikbrunner/bizbook/internal/model"
)

// ClearCommand removes every person.
type ClearCommand struct {
	mutable
	cleared *[]model.Person
}

// NewClear creates a ClearCommand.
func NewClear() *ClearCommand {
	return &ClearCommand{}
}

func (c *ClearCommand) Execute(ctx *Context) (Result, error) {
	persons := ctx.Store.Persons()
	ctx.Store.SetPersons(nil)
	c.cleared = &persons
	return Result{Feedback: "Address book has been cleared!"}, nil
}

func (c *ClearCommand) Undo(store *model.Store) (Result, error) {
	if c.cleared == nil {
		return Result{}, errNothingToRestore()
	}
	store.SetPersons(*c.cleared)
	c.cleared = nil
	return Result{Feedback: "Address book has been restored"}, nil
}
