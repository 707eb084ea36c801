package parser_test

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/bizbook/internal/command"
	"github.com/nikbrunner/bizbook/internal/errors"
	"github.com/nikbrunner/bizbook/internal/model"
	"github.com/nikbrunner/bizbook/internal/parser"
)

const validAdd = "add n/Amy Bee p/11111111 e/amy@example.com a/Block 312, Amy Street 1 t/friends"

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		code errors.ErrorCode
	}{
		{"blank", "   ", errors.ErrInvalidFormat},
		{"unknown word", "launch rockets", errors.ErrUnknownCommand},
		{"add missing phone", "add n/Amy e/amy@example.com a/street", errors.ErrInvalidFormat},
		{"add with preamble", "add hello n/Amy p/111 e/amy@example.com a/street", errors.ErrInvalidFormat},
		{"add repeated name", "add n/Amy n/Bob p/111 e/amy@example.com a/street", errors.ErrDuplicatePrefix},
		{"add bad phone", "add n/Amy p/abc e/amy@example.com a/street", errors.ErrConstraintViolation},
		{"add empty tag", "add n/Amy p/111 e/amy@example.com a/street t/", errors.ErrConstraintViolation},
		{"delete no index", "delete", errors.ErrInvalidFormat},
		{"delete zero", "delete 0", errors.ErrInvalidFormat},
		{"delete signed", "delete +1", errors.ErrInvalidFormat},
		{"edit no fields", "edit 1", errors.ErrInvalidFormat},
		{"edit bad index", "edit x n/Bob", errors.ErrInvalidFormat},
		{"edit mixed tag modes", "edit 1 t/a at/b", errors.ErrInvalidFormat},
		{"edit repeated phone", "edit 1 p/123 p/456", errors.ErrDuplicatePrefix},
		{"edit bad email", "edit 1 e/not-an-email", errors.ErrConstraintViolation},
		{"list with preamble", "list friends", errors.ErrInvalidFormat},
		{"list save without tags", "list sf/", errors.ErrInvalidFormat},
		{"list save and delete", "list t/a sf/ df/", errors.ErrInvalidFormat},
		{"list folder with value", "list t/a sf/name", errors.ErrInvalidFormat},
		{"find nothing", "find   ", errors.ErrInvalidFormat},
		{"biz without feature", "biz t/vendor", errors.ErrInvalidFormat},
		{"biz repeated feature", "biz f/a f/b", errors.ErrDuplicatePrefix},
		{"biz bad name", "biz f/bulk orders", errors.ErrConstraintViolation},
		{"unbiz preamble", "unbiz supplier", errors.ErrInvalidFormat},
		{"man unknown", "man launch", errors.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.line)
			assert.Assert(t, err != nil)
			assert.Check(t, errors.Is(err, tt.code), "got %v", err)
			assert.Equal(t, errors.KindOf(err), errors.KindParse)
		})
	}
}

func TestParse_UsageIncludedInFormatErrors(t *testing.T) {
	_, err := parser.Parse("delete abc")
	assert.ErrorContains(t, err, "Invalid command format!")
	assert.ErrorContains(t, err, command.DeleteUsage)
}

func TestParse_ConstraintMessageEchoed(t *testing.T) {
	_, err := parser.Parse("add n/Amy p/12 e/amy@example.com a/street")
	assert.Error(t, err, model.PhoneConstraints)
}

func TestParse_NoArgCommandsIgnoreTrailingText(t *testing.T) {
	for _, line := range []string{"clear now", "undo 3", "redo x", "stats all", "help me", "exit please"} {
		c, err := parser.Parse(line)
		assert.NilError(t, err, line)
		assert.Check(t, c != nil)
	}
}

func TestParse_Mutability(t *testing.T) {
	tests := []struct {
		line    string
		mutable bool
	}{
		{validAdd, true},
		{"delete 1", true},
		{"edit 1 n/Bob", true},
		{"clear", true},
		{"biz f/supplier t/vendor", true},
		{"unbiz", true},
		{"list t/a sf/", true},
		{"list t/a df/", true},
		{"list t/a", false},
		{"list", false},
		{"find amy", false},
		{"stats", false},
		{"undo", false},
		{"redo", false},
		{"help", false},
		{"man add", false},
		{"exit", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			c, err := parser.Parse(tt.line)
			assert.NilError(t, err)
			assert.Equal(t, c.IsMutable(), tt.mutable)
		})
	}
}

func TestParse_AddExecutes(t *testing.T) {
	ctx := command.NewContext(model.NewStore(nil))
	run(t, ctx, validAdd)

	persons := ctx.Store.Persons()
	assert.Assert(t, is.Len(persons, 1))
	p := persons[0]
	assert.Equal(t, p.Name, model.Name("Amy Bee"))
	assert.Equal(t, p.Address, model.Address("Block 312, Amy Street 1"))
	assert.DeepEqual(t, p.Tags, []model.Tag{{Name: "friends"}})
}

func TestParse_EditTagModes(t *testing.T) {
	ctx := command.NewContext(model.NewStore(nil))
	run(t, ctx, "add n/Amy p/111 e/amy@example.com a/street t/friends t/vip")

	run(t, ctx, "edit 1 at/owesMoney")
	assert.Equal(t, tagString(ctx), "[friends][owesMoney][vip]")

	run(t, ctx, "edit 1 dt/vip dt/FRIENDS")
	assert.Equal(t, tagString(ctx), "[owesMoney]")

	run(t, ctx, "edit 1 t/a t/b")
	assert.Equal(t, tagString(ctx), "[a][b]")

	run(t, ctx, "edit 1 t/")
	assert.Equal(t, tagString(ctx), "")
}

func TestParse_ManWord(t *testing.T) {
	ctx := command.NewContext(model.NewStore(nil))

	res := run(t, ctx, "man edit")
	assert.Equal(t, res.Feedback, command.EditUsage)

	res = run(t, ctx, "man")
	assert.Check(t, is.Contains(res.Feedback, "unbiz"))
}

func TestParseIndex(t *testing.T) {
	n, err := parser.ParseIndex(" 12 ")
	assert.NilError(t, err)
	assert.Equal(t, n, 12)

	for _, s := range []string{"", "0", "-1", "1.5", "one", "99999999999999999999"} {
		_, err := parser.ParseIndex(s)
		assert.Check(t, err != nil, s)
	}
}

func TestCommandWord(t *testing.T) {
	assert.Equal(t, parser.CommandWord("  edit 1 n/Bob"), "edit")
	assert.Equal(t, parser.CommandWord("undo"), "undo")
}

func run(t *testing.T, ctx *command.Context, line string) command.Result {
	t.Helper()
	c, err := parser.Parse(line)
	assert.NilError(t, err, line)
	res, err := c.Execute(ctx)
	assert.NilError(t, err, line)
	ctx.History.Record(c)
	return res
}

func tagString(ctx *command.Context) string {
	var s string
	for _, tag := range ctx.Store.Persons()[0].Tags {
		s += tag.String()
	}
	return s
}
