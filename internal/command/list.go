package command

import (
	"fmt"

	"github.com/nikbrunner/bizbook/internal/model"
)

// FolderAction is the folder side effect of a list command.
type FolderAction int

const (
	FolderNone   FolderAction = iota
	FolderSave                // sf/
	FolderDelete              // df/
)

// ListCommand shows every person, or the persons carrying all given tags.
// With a folder action it also saves or deletes the folder for those tags,
// which makes it mutable.
type ListCommand struct {
	tags     []model.Tag
	action   FolderAction
	snapshot *listSnapshot
}

type listSnapshot struct {
	filter   model.Filter
	folder   model.TagFolder
	position int
}

// NewList creates a ListCommand.
func NewList(tags []model.Tag, action FolderAction) *ListCommand {
	return &ListCommand{tags: tags, action: action}
}

func (c *ListCommand) IsMutable() bool {
	return c.action != FolderNone
}

func (c *ListCommand) Execute(ctx *Context) (Result, error) {
	store := ctx.Store
	prior := store.Filter()

	switch c.action {
	case FolderSave:
		folder, err := store.SaveFolder(c.tags)
		if err != nil {
			return Result{}, err
		}
		store.SetFilter(model.TagFilter(c.tags))
		c.snapshot = &listSnapshot{filter: prior, folder: folder}
		return Result{Feedback: fmt.Sprintf("Saved folder %q\n%s", folder.DisplayName, listedMessage(store))}, nil

	case FolderDelete:
		folder, pos, err := store.DeleteFolder(c.tags)
		if err != nil {
			return Result{}, err
		}
		store.SetFilter(model.ShowAll())
		c.snapshot = &listSnapshot{filter: prior, folder: folder, position: pos}
		return Result{Feedback: fmt.Sprintf("Deleted folder %q\n%s", folder.DisplayName, listedMessage(store))}, nil
	}

	if len(c.tags) == 0 {
		store.SetFilter(model.ShowAll())
	} else {
		store.SetFilter(model.TagFilter(c.tags))
	}
	return Result{Feedback: listedMessage(store)}, nil
}

func (c *ListCommand) Undo(store *model.Store) (Result, error) {
	if c.snapshot == nil {
		return Result{}, errNothingToRestore()
	}
	s := *c.snapshot

	var feedback string
	switch c.action {
	case FolderSave:
		store.RemoveFolder(s.folder.Key())
		feedback = fmt.Sprintf("Removed folder %q", s.folder.DisplayName)
	case FolderDelete:
		store.InsertFolder(s.position, s.folder)
		feedback = fmt.Sprintf("Restored folder %q", s.folder.DisplayName)
	}
	store.SetFilter(s.filter)
	c.snapshot = nil
	return Result{Feedback: feedback}, nil
}

func listedMessage(store *model.Store) string {
	f := store.Filter()
	if f.IsShowAll() {
		return "Listed all persons"
	}
	return fmt.Sprintf("%d persons listed! (%s)", len(store.FilteredPersons()), f)
}
