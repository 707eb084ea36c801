package command_test

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/bizbook/internal/command"
	"github.com/nikbrunner/bizbook/internal/errors"
	"github.com/nikbrunner/bizbook/internal/model"
)

func tags(names ...string) []model.Tag {
	out := make([]model.Tag, len(names))
	for i, n := range names {
		out[i] = model.Tag{Name: n}
	}
	return out
}

func person(name string, tagNames ...string) model.Person {
	return model.NewPerson(model.NewPersonParams{
		Name:    model.Name(name),
		Phone:   "94351253",
		Email:   "contact@example.com",
		Address: "123, Jurong West Ave 6, #08-111",
		Tags:    tags(tagNames...),
	})
}

func strPtr[T ~string](s T) *T { return &s }

// snapshot is the persisted content of a store plus its filter. Auto-folders
// are derived and may outlive the tag that created them.
type snapshot struct {
	Book   *model.AddressBook
	Filter model.Filter
}

func capture(s *model.Store) snapshot {
	return snapshot{Book: s.AddressBook(), Filter: s.Filter()}
}

func assertState(t *testing.T, got, want snapshot) {
	t.Helper()
	assert.DeepEqual(t, got, want, cmpopts.EquateEmpty())
}

// assertFolderCounts checks every folder count against a recount.
func assertFolderCounts(t *testing.T, s *model.Store) {
	t.Helper()
	for _, f := range s.Folders() {
		want := 0
		for _, p := range s.Persons() {
			if p.HasAllTags(f.QueryTags) {
				want++
			}
		}
		assert.Check(t, f.Count == want, "folder %q: count %d, want %d", f.DisplayName, f.Count, want)
	}
}

// seeded returns a context with three persons, a saved composite folder and
// one declared feature. The filter shows only friends.
func seeded(t *testing.T) *command.Context {
	t.Helper()
	store := model.NewStore(&model.AddressBook{
		Persons: []model.Person{
			person("Alice Pauline", "friends"),
			person("Benson Meier", "friends", "owesMoney"),
			person("Carl Kurz", "vendor"),
		},
		Folders:  []model.SavedFolder{{DisplayName: "friends & owesmoney", QueryTags: []string{"friends", "owesmoney"}}},
		Features: []model.Feature{model.NewFeature("supplier", tags("vendor"))},
	})
	store.SetFilter(model.TagFilter(tags("friends")))
	return command.NewContext(store)
}

func mutableCommands() map[string]func() command.Command {
	return map[string]func() command.Command{
		"add":    func() command.Command { return command.NewAdd(person("Daniel Meier", "friends", "new")) },
		"delete": func() command.Command { return command.NewDelete(2) },
		"edit fields": func() command.Command {
			return command.NewEdit(1, command.EditDescriptor{Name: strPtr[model.Name]("Alice Tan"), Phone: strPtr[model.Phone]("999")})
		},
		"edit add tags": func() command.Command {
			return command.NewEdit(1, command.EditDescriptor{TagMode: command.TagsAdd, Tags: tags("vip")})
		},
		"edit drop tags": func() command.Command {
			return command.NewEdit(2, command.EditDescriptor{TagMode: command.TagsDelete, Tags: tags("owesMoney")})
		},
		"clear":         func() command.Command { return command.NewClear() },
		"biz new":       func() command.Command { return command.NewBiz(model.NewFeature("lender", tags("owesMoney"))) },
		"biz redeclare": func() command.Command { return command.NewBiz(model.NewFeature("Supplier", tags("wholesale"))) },
		"unbiz named":   func() command.Command { return command.NewUnbiz([]string{"supplier"}) },
		"unbiz all":     func() command.Command { return command.NewUnbiz(nil) },
		"list save":     func() command.Command { return command.NewList(tags("vendor", "friends"), command.FolderSave) },
		"list delete":   func() command.Command { return command.NewList(tags("friends", "owesMoney"), command.FolderDelete) },
	}
}

func TestMutableCommands_ExecuteThenUndoRestoresState(t *testing.T) {
	for name, build := range mutableCommands() {
		t.Run(name, func(t *testing.T) {
			ctx := seeded(t)
			before := capture(ctx.Store)

			c := build()
			assert.Check(t, c.IsMutable())
			_, err := c.Execute(ctx)
			assert.NilError(t, err)
			ctx.History.Record(c)

			_, err = ctx.History.Undo(ctx.Store)
			assert.NilError(t, err)
			assertState(t, capture(ctx.Store), before)
			assertFolderCounts(t, ctx.Store)

			_, err = ctx.History.Undo(ctx.Store)
			assert.Check(t, errors.Is(err, errors.ErrNothingToUndo))
		})
	}
}

func TestMutableCommands_RedoReproducesExecute(t *testing.T) {
	for name, build := range mutableCommands() {
		t.Run(name, func(t *testing.T) {
			ctx := seeded(t)

			c := build()
			_, err := c.Execute(ctx)
			assert.NilError(t, err)
			ctx.History.Record(c)
			after := capture(ctx.Store)

			_, err = ctx.History.Undo(ctx.Store)
			assert.NilError(t, err)
			_, err = ctx.History.Redo(ctx)
			assert.NilError(t, err)
			assertState(t, capture(ctx.Store), after)
			assertFolderCounts(t, ctx.Store)
		})
	}
}

func TestUndo_BeforeExecuteIsIllegalState(t *testing.T) {
	store := model.NewStore(nil)
	for name, build := range mutableCommands() {
		c, ok := build().(command.Undoable)
		assert.Assert(t, ok, name)

		_, err := c.Undo(store)
		assert.Check(t, errors.Is(err, errors.ErrIllegalState), name)
		assert.Check(t, errors.KindOf(err) == errors.KindFatal, name)
	}
}

func TestUndo_SnapshotConsumedOnce(t *testing.T) {
	ctx := seeded(t)
	c := command.NewAdd(person("Daniel Meier"))
	_, err := c.Execute(ctx)
	assert.NilError(t, err)

	_, err = c.Undo(ctx.Store)
	assert.NilError(t, err)
	_, err = c.Undo(ctx.Store)
	assert.Check(t, errors.Is(err, errors.ErrIllegalState))
}

func TestAdd_DuplicateLeavesStoreUnchanged(t *testing.T) {
	ctx := seeded(t)
	before := capture(ctx.Store)

	_, err := command.NewAdd(person("alice  PAULINE")).Execute(ctx)
	assert.Check(t, errors.Is(err, errors.ErrDuplicatePerson))
	assertState(t, capture(ctx.Store), before)
}

func TestDelete_IndexIsIntoFilteredList(t *testing.T) {
	ctx := seeded(t)

	_, err := command.NewDelete(3).Execute(ctx)
	assert.Check(t, errors.Is(err, errors.ErrInvalidIndex), "only two friends are shown")

	_, err = command.NewDelete(2).Execute(ctx)
	assert.NilError(t, err)
	for _, p := range ctx.Store.Persons() {
		assert.Check(t, p.Name != "Benson Meier")
	}
}

func TestDelete_UndoRestoresPosition(t *testing.T) {
	ctx := seeded(t)
	ctx.Store.SetFilter(model.ShowAll())

	c := command.NewDelete(2)
	_, err := c.Execute(ctx)
	assert.NilError(t, err)
	ctx.History.Record(c)
	_, err = ctx.History.Undo(ctx.Store)
	assert.NilError(t, err)

	assert.Equal(t, ctx.Store.Persons()[1].Name, model.Name("Benson Meier"))
}

func TestEdit_Errors(t *testing.T) {
	ctx := seeded(t)
	before := capture(ctx.Store)

	_, err := command.NewEdit(1, command.EditDescriptor{Name: strPtr[model.Name]("Benson Meier")}).Execute(ctx)
	assert.Check(t, errors.Is(err, errors.ErrDuplicatePerson))

	_, err = command.NewEdit(1, command.EditDescriptor{TagMode: command.TagsDelete, Tags: tags("vip")}).Execute(ctx)
	assert.Check(t, errors.Is(err, errors.ErrTagNotFound))

	_, err = command.NewEdit(9, command.EditDescriptor{Phone: strPtr[model.Phone]("123")}).Execute(ctx)
	assert.Check(t, errors.Is(err, errors.ErrInvalidIndex))

	assertState(t, capture(ctx.Store), before)
}

func TestEdit_ResetsFilter(t *testing.T) {
	ctx := seeded(t)

	_, err := command.NewEdit(1, command.EditDescriptor{TagMode: command.TagsReplace}).Execute(ctx)
	assert.NilError(t, err)
	assert.Check(t, ctx.Store.Filter().IsShowAll())

	f, ok := ctx.Store.Folder("friends")
	assert.Assert(t, ok)
	assert.Equal(t, f.Count, 1)
}

func TestList_FolderActions(t *testing.T) {
	ctx := seeded(t)

	_, err := command.NewList(tags("Owesmoney", "FRIENDS"), command.FolderSave).Execute(ctx)
	assert.Check(t, errors.Is(err, errors.ErrFolderExists))

	_, err = command.NewList(tags("friends"), command.FolderDelete).Execute(ctx)
	assert.Check(t, errors.Is(err, errors.ErrFolderInUse))

	_, err = command.NewList(tags("nobody"), command.FolderDelete).Execute(ctx)
	assert.Check(t, errors.Is(err, errors.ErrFolderNotFound))

	_, err = command.NewList(tags("friends", "owesMoney"), command.FolderDelete).Execute(ctx)
	assert.NilError(t, err)
	assert.Check(t, ctx.Store.Filter().IsShowAll())
	_, ok := ctx.Store.Folder("friends|owesmoney")
	assert.Check(t, !ok)
}

func TestList_FilterOnly(t *testing.T) {
	ctx := seeded(t)

	res, err := command.NewList(nil, command.FolderNone).Execute(ctx)
	assert.NilError(t, err)
	assert.Equal(t, res.Feedback, "Listed all persons")
	assert.Check(t, is.Len(ctx.Store.FilteredPersons(), 3))

	_, err = command.NewList(tags("friends", "owesMoney"), command.FolderNone).Execute(ctx)
	assert.NilError(t, err)
	assert.Check(t, is.Len(ctx.Store.FilteredPersons(), 1))
}

func TestFind_WholeWordKeywords(t *testing.T) {
	ctx := seeded(t)

	res, err := command.NewFind([]string{"meier", "kurz"}).Execute(ctx)
	assert.NilError(t, err)
	assert.Equal(t, res.Feedback, "2 persons listed!")

	_, err = command.NewFind([]string{"Mei"}).Execute(ctx)
	assert.NilError(t, err)
	assert.Check(t, is.Len(ctx.Store.FilteredPersons(), 0))
}

func TestUnbiz_ValidatesBeforeRemoving(t *testing.T) {
	ctx := seeded(t)
	before := capture(ctx.Store)

	_, err := command.NewUnbiz([]string{"supplier", "ghost"}).Execute(ctx)
	assert.Check(t, errors.Is(err, errors.ErrFeatureNotDeclared))
	assertState(t, capture(ctx.Store), before)

	_, err = command.NewUnbiz(nil).Execute(ctx)
	assert.NilError(t, err)
	_, err = command.NewUnbiz(nil).Execute(ctx)
	assert.Check(t, errors.Is(err, errors.ErrFeatureNotDeclared))
}

func TestStats(t *testing.T) {
	ctx := seeded(t)

	res, err := command.NewStats().Execute(ctx)
	assert.NilError(t, err)
	assert.Check(t, is.Contains(res.Feedback, "Persons: 3 (2 shown)"))
	assert.Check(t, is.Contains(res.Feedback, "friends & owesmoney: 1"))
	assert.Check(t, is.Contains(res.Feedback, "supplier [vendor]: 1"))
}

func TestControlCommands(t *testing.T) {
	ctx := seeded(t)

	res, err := command.NewHelp().Execute(ctx)
	assert.NilError(t, err)
	assert.Check(t, res.ShowHelp)

	res, err = command.NewExit().Execute(ctx)
	assert.NilError(t, err)
	assert.Check(t, res.Exit)

	_, err = command.NewUndo().Execute(ctx)
	assert.Check(t, errors.Is(err, errors.ErrNothingToUndo))

	_, err = command.NewRedo().Execute(ctx)
	assert.Check(t, errors.Is(err, errors.ErrNothingToRedo))
}
