package command

import (
	"fmt"

	"github.com/nikbrunner/bizbook/internal/errors"
	"github.com/nikbrunner/bizbook/internal/model"
)

// AddCommand adds a person to the address book.
type AddCommand struct {
	mutable
	toAdd model.Person
	added *model.Person
}

// NewAdd creates an AddCommand for p.
func NewAdd(p model.Person) *AddCommand {
	return &AddCommand{toAdd: p}
}

func (c *AddCommand) Execute(ctx *Context) (Result, error) {
	if ctx.Store.HasPerson(c.toAdd) {
		return Result{}, errors.NewDuplicatePerson()
	}
	if err := ctx.Store.AddPerson(c.toAdd); err != nil {
		return Result{}, err
	}
	p := c.toAdd
	c.added = &p
	return Result{Feedback: fmt.Sprintf("New person added: %s", p)}, nil
}

func (c *AddCommand) Undo(store *model.Store) (Result, error) {
	if c.added == nil {
		return Result{}, errNothingToRestore()
	}
	if _, err := store.DeletePerson(*c.added); err != nil {
		return Result{}, err
	}
	p := *c.added
	c.added = nil
	return Result{Feedback: fmt.Sprintf("Removed added person: %s", p)}, nil
}

func errNothingToRestore() error {
	return errors.NewIllegalState("undo failed: nothing to restore")
}
