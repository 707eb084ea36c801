package command

import (
	"fmt"
	"strings"
)

// StatsCommand summarises persons per folder and business feature.
type StatsCommand struct {
	readOnly
}

// NewStats creates a StatsCommand.
func NewStats() *StatsCommand {
	return &StatsCommand{}
}

func (c *StatsCommand) Execute(ctx *Context) (Result, error) {
	store := ctx.Store
	persons := store.Persons()

	var b strings.Builder
	fmt.Fprintf(&b, "Persons: %d (%d shown)", len(persons), len(store.FilteredPersons()))

	if folders := store.Folders(); len(folders) > 0 {
		b.WriteString("\nFolders:")
		for _, f := range folders {
			fmt.Fprintf(&b, "\n  %s: %d", f.DisplayName, f.Count)
		}
	}

	if features := store.Features(); len(features) > 0 {
		b.WriteString("\nBusiness features:")
		for _, f := range features {
			n := 0
			for _, p := range persons {
				if f.Covers(p) {
					n++
				}
			}
			fmt.Fprintf(&b, "\n  %s: %d", f, n)
		}
	}
	return Result{Feedback: b.String()}, nil
}
