package command

import (
	"fmt"

	"github.com/nikbrunner/bizbook/internal/model"
)

// FindCommand shows the persons whose name contains any keyword.
type FindCommand struct {
	readOnly
	keywords []string
}

// NewFind creates a FindCommand.
func NewFind(keywords []string) *FindCommand {
	return &FindCommand{keywords: keywords}
}

func (c *FindCommand) Execute(ctx *Context) (Result, error) {
	ctx.Store.SetFilter(model.KeywordFilter(c.keywords))
	return Result{Feedback: fmt.Sprintf("%d persons listed!", len(ctx.Store.FilteredPersons()))}, nil
}
