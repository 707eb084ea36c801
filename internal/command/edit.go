package command

import (
	"fmt"

	"github.com/nikbrunner/bizbook/internal/errors"
	"github.com/nikbrunner/bizbook/internal/model"
)

// TagMode selects how an edit changes a person's tags.
type TagMode int

const (
	TagsKeep    TagMode = iota // leave tags unchanged
	TagsReplace                // t/: replace the whole set, empty clears
	TagsAdd                    // at/: add to the set
	TagsDelete                 // dt/: remove from the set
)

// EditDescriptor holds the fields to change. Nil fields are left as they are.
type EditDescriptor struct {
	Name    *model.Name
	Phone   *model.Phone
	Email   *model.Email
	Address *model.Address
	TagMode TagMode
	Tags    []model.Tag
}

// IsAnyFieldEdited reports whether the descriptor changes anything.
func (d EditDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil || d.TagMode != TagsKeep
}

// Apply returns a copy of p with the descriptor's changes. Deleting a tag
// the person does not carry is an error.
func (d EditDescriptor) Apply(p model.Person) (model.Person, error) {
	edited := p
	if d.Name != nil {
		edited.Name = *d.Name
	}
	if d.Phone != nil {
		edited.Phone = *d.Phone
	}
	if d.Email != nil {
		edited.Email = *d.Email
	}
	if d.Address != nil {
		edited.Address = *d.Address
	}

	switch d.TagMode {
	case TagsReplace:
		edited = edited.WithTags(d.Tags)
	case TagsAdd:
		tags := append(append([]model.Tag(nil), p.Tags...), d.Tags...)
		edited = edited.WithTags(tags)
	case TagsDelete:
		for _, t := range d.Tags {
			if !p.HasTag(t) {
				return model.Person{}, errors.NewTagNotFound(t.Name)
			}
		}
		var kept []model.Tag
		for _, t := range p.Tags {
			if !tagIn(d.Tags, t) {
				kept = append(kept, t)
			}
		}
		edited = edited.WithTags(kept)
	}
	return edited, nil
}

func tagIn(tags []model.Tag, t model.Tag) bool {
	return model.Person{Tags: tags}.HasTag(t)
}

// EditCommand edits the person at a 1-based index of the filtered list and
// resets the filter to show everyone.
type EditCommand struct {
	mutable
	index    int
	desc     EditDescriptor
	target   *model.Person // resolved by the first Execute, kept for redo
	snapshot *editSnapshot
}

type editSnapshot struct {
	original model.Person
	edited   model.Person
	filter   model.Filter
}

// NewEdit creates an EditCommand.
func NewEdit(index int, desc EditDescriptor) *EditCommand {
	return &EditCommand{index: index, desc: desc}
}

func (c *EditCommand) Execute(ctx *Context) (Result, error) {
	target, err := resolveTarget(ctx.Store, c.index, c.target)
	if err != nil {
		return Result{}, err
	}
	edited, err := c.desc.Apply(target)
	if err != nil {
		return Result{}, err
	}
	if !target.IsSamePerson(edited) && ctx.Store.HasPerson(edited) {
		return Result{}, errors.NewDuplicatePerson()
	}

	prior := ctx.Store.Filter()
	if err := ctx.Store.SetPerson(target, edited); err != nil {
		return Result{}, err
	}
	ctx.Store.SetFilter(model.ShowAll())
	c.target = &target
	c.snapshot = &editSnapshot{original: target, edited: edited, filter: prior}
	return Result{Feedback: fmt.Sprintf("Edited Person: %s", edited)}, nil
}

func (c *EditCommand) Undo(store *model.Store) (Result, error) {
	if c.snapshot == nil {
		return Result{}, errNothingToRestore()
	}
	s := *c.snapshot
	if err := store.SetPerson(s.edited, s.original); err != nil {
		return Result{}, err
	}
	store.SetFilter(s.filter)
	c.snapshot = nil
	return Result{Feedback: fmt.Sprintf("Restored Person: %s", s.original)}, nil
}
