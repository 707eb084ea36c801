package command

import (
	"github.com/nikbrunner/bizbook/internal/errors"
	"github.com/nikbrunner/bizbook/internal/model"
)

// History holds executed mutable commands for undo and redo. Commands move
// between the applied and reverted stacks and are never copied. Both stacks
// are unbounded and live only as long as the process.
type History struct {
	applied  []Command
	reverted []Command
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{}
}

// Record pushes a freshly executed command. Mutable commands invalidate
// everything that could have been redone.
func (h *History) Record(c Command) {
	if !c.IsMutable() {
		return
	}
	h.applied = append(h.applied, c)
	h.reverted = nil
}

// Undo reverts the most recently applied command and moves it to the
// reverted stack.
func (h *History) Undo(store *model.Store) (Result, error) {
	if len(h.applied) == 0 {
		return Result{}, errors.NewNothingToUndo()
	}
	c := h.applied[len(h.applied)-1]
	h.applied = h.applied[:len(h.applied)-1]

	u, ok := c.(Undoable)
	if !ok || !c.IsMutable() {
		return Result{}, errors.NewNotUndoable()
	}
	res, err := u.Undo(store)
	if err != nil {
		h.applied = append(h.applied, c)
		return Result{}, err
	}
	h.reverted = append(h.reverted, c)
	return Result{Feedback: "Undo successful: " + res.Feedback}, nil
}

// Redo re-executes the most recently reverted command and moves it back to
// the applied stack. Unlike Record, Redo leaves the rest of the reverted
// stack intact so successive redos keep working.
func (h *History) Redo(ctx *Context) (Result, error) {
	if len(h.reverted) == 0 {
		return Result{}, errors.NewNothingToRedo()
	}
	c := h.reverted[len(h.reverted)-1]
	h.reverted = h.reverted[:len(h.reverted)-1]

	res, err := c.Execute(ctx)
	if err != nil {
		h.reverted = append(h.reverted, c)
		return Result{}, err
	}
	h.applied = append(h.applied, c)
	return Result{Feedback: "Redo successful: " + res.Feedback}, nil
}

// UndoSize returns how many commands can be undone.
func (h *History) UndoSize() int {
	return len(h.applied)
}

// RedoSize returns how many commands can be redone.
func (h *History) RedoSize() int {
	return len(h.reverted)
}
