package command

import (
	"fmt"
	"strings"

	"github.com/nikbrunner/bizbook/internal/errors"
	"github.com/nikbrunner/bizbook/internal/model"
)

// BizCommand declares a business feature, replacing any earlier declaration
// of the same name in place.
type BizCommand struct {
	mutable
	feature model.Feature
	prior   *priorFeature
}

type priorFeature struct {
	feature  model.Feature
	declared bool
}

// NewBiz creates a BizCommand.
func NewBiz(f model.Feature) *BizCommand {
	return &BizCommand{feature: f}
}

func (c *BizCommand) Execute(ctx *Context) (Result, error) {
	prev, declared := ctx.Store.Feature(c.feature.Name)
	ctx.Store.DeclareFeature(c.feature)
	c.prior = &priorFeature{feature: prev, declared: declared}
	if declared {
		return Result{Feedback: fmt.Sprintf("Business feature updated: %s", c.feature)}, nil
	}
	return Result{Feedback: fmt.Sprintf("Business feature declared: %s", c.feature)}, nil
}

func (c *BizCommand) Undo(store *model.Store) (Result, error) {
	if c.prior == nil {
		return Result{}, errNothingToRestore()
	}
	p := *c.prior
	if p.declared {
		store.DeclareFeature(p.feature)
	} else if _, _, err := store.RemoveFeature(c.feature.Name); err != nil {
		return Result{}, err
	}
	c.prior = nil
	return Result{Feedback: fmt.Sprintf("Reverted business feature %s", c.feature.Name)}, nil
}

// UnbizCommand removes the named business features, or all of them when no
// name is given.
type UnbizCommand struct {
	mutable
	names   []string
	removed *[]removedFeature
}

type removedFeature struct {
	feature  model.Feature
	position int
}

// NewUnbiz creates an UnbizCommand.
func NewUnbiz(names []string) *UnbizCommand {
	return &UnbizCommand{names: names}
}

func (c *UnbizCommand) Execute(ctx *Context) (Result, error) {
	store := ctx.Store
	targets, err := c.targets(store)
	if err != nil {
		return Result{}, err
	}

	removed := make([]removedFeature, 0, len(targets))
	names := make([]string, 0, len(targets))
	for _, name := range targets {
		f, pos, err := store.RemoveFeature(name)
		if err != nil {
			return Result{}, errors.NewInternal(err)
		}
		removed = append(removed, removedFeature{feature: f, position: pos})
		names = append(names, f.Name)
	}
	c.removed = &removed
	return Result{Feedback: "Business features removed: " + strings.Join(names, ", ")}, nil
}

// targets validates every name before anything is removed.
func (c *UnbizCommand) targets(store *model.Store) ([]string, error) {
	if len(c.names) == 0 {
		features := store.Features()
		if len(features) == 0 {
			return nil, errors.NewFeatureNotDeclared("")
		}
		names := make([]string, len(features))
		for i, f := range features {
			names[i] = f.Name
		}
		return names, nil
	}

	var names []string
	seen := make(map[string]bool)
	for _, name := range c.names {
		f, ok := store.Feature(name)
		if !ok {
			return nil, errors.NewFeatureNotDeclared(name)
		}
		if seen[f.Key()] {
			continue
		}
		seen[f.Key()] = true
		names = append(names, f.Name)
	}
	return names, nil
}

func (c *UnbizCommand) Undo(store *model.Store) (Result, error) {
	if c.removed == nil {
		return Result{}, errNothingToRestore()
	}
	removed := *c.removed
	for i := len(removed) - 1; i >= 0; i-- {
		store.InsertFeature(removed[i].position, removed[i].feature)
	}
	c.removed = nil
	return Result{Feedback: fmt.Sprintf("Restored %d business feature(s)", len(removed))}, nil
}
