package command

import (
	"fmt"

	"github.com/nikbrunner/bizbook/internal/errors"
	"github.com/nikbrunner/bizbook/internal/model"
)

// DeleteCommand deletes the person at a 1-based index of the filtered list.
type DeleteCommand struct {
	mutable
	index   int
	target  *model.Person // resolved by the first Execute, kept for redo
	deleted *deletedPerson
}

type deletedPerson struct {
	person   model.Person
	position int // in the full list
}

// NewDelete creates a DeleteCommand for a 1-based index.
func NewDelete(index int) *DeleteCommand {
	return &DeleteCommand{index: index}
}

func (c *DeleteCommand) Execute(ctx *Context) (Result, error) {
	target, err := resolveTarget(ctx.Store, c.index, c.target)
	if err != nil {
		return Result{}, err
	}
	pos, err := ctx.Store.DeletePerson(target)
	if err != nil {
		return Result{}, err
	}
	c.target = &target
	c.deleted = &deletedPerson{person: target, position: pos}
	return Result{Feedback: fmt.Sprintf("Deleted Person: %s", target)}, nil
}

func (c *DeleteCommand) Undo(store *model.Store) (Result, error) {
	if c.deleted == nil {
		return Result{}, errNothingToRestore()
	}
	d := *c.deleted
	if err := store.InsertPerson(d.position, d.person); err != nil {
		return Result{}, err
	}
	c.deleted = nil
	return Result{Feedback: fmt.Sprintf("Restored Person: %s", d.person)}, nil
}

// personAt resolves a 1-based index against the filtered list.
func personAt(store *model.Store, index int) (model.Person, error) {
	shown := store.FilteredPersons()
	if index < 1 || index > len(shown) {
		return model.Person{}, errors.NewInvalidIndex(index)
	}
	return shown[index-1], nil
}

// resolveTarget returns the person a command acts on. The index is only
// consulted until the command has run once; afterwards the same person is
// used again, whatever the filter shows by then.
func resolveTarget(store *model.Store, index int, resolved *model.Person) (model.Person, error) {
	if resolved != nil {
		return *resolved, nil
	}
	return personAt(store, index)
}
