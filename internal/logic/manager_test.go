package logic_test

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/bizbook/internal/errors"
	"github.com/nikbrunner/bizbook/internal/logic"
	"github.com/nikbrunner/bizbook/internal/model"
	"github.com/nikbrunner/bizbook/internal/storage"
)

const addAmy = "add n/Amy Bee p/11111111 e/amy@example.com a/Block 312, Amy Street 1 t/friends"

type failingStorage struct{}

func (failingStorage) Load() (*model.AddressBook, error) { return model.NewAddressBook(), nil }
func (failingStorage) Save(*model.AddressBook) error     { return stderrors.New("disk full") }

func TestManager_PersistsChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addressbook.json")
	s := storage.NewJSONStorage(path)

	m, err := logic.Load(s, nil)
	assert.NilError(t, err)

	res, err := m.Execute(addAmy)
	assert.NilError(t, err)
	assert.Check(t, is.Contains(res.Feedback, "New person added: Amy Bee"))

	_, err = m.Execute("biz f/social t/friends")
	assert.NilError(t, err)
	_, err = m.Execute("list t/friends t/vip sf/")
	assert.NilError(t, err)

	book, err := s.Load()
	assert.NilError(t, err)
	assert.Check(t, is.Len(book.Persons, 1))
	assert.Check(t, is.Len(book.Features, 1))
	assert.Check(t, is.Len(book.Folders, 1))
}

func TestManager_UndoIsPersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addressbook.json")
	s := storage.NewJSONStorage(path)
	m := logic.NewManager(logic.ManagerParams{Storage: s})

	_, err := m.Execute(addAmy)
	assert.NilError(t, err)
	_, err = m.Execute("undo")
	assert.NilError(t, err)

	book, err := s.Load()
	assert.NilError(t, err)
	assert.Check(t, is.Len(book.Persons, 0))
	assert.Equal(t, m.History().RedoSize(), 1)
}

func TestManager_ParseErrorLeavesStoreUntouched(t *testing.T) {
	m := logic.NewManager(logic.ManagerParams{})
	before := m.Store().Version()

	_, err := m.Execute("add n/Amy")
	assert.Check(t, errors.KindOf(err) == errors.KindParse)
	assert.Equal(t, m.Store().Version(), before)
	assert.Equal(t, m.History().UndoSize(), 0)
}

func TestManager_ReadOnlyCommandsAreNotRecorded(t *testing.T) {
	m := logic.NewManager(logic.ManagerParams{})

	_, err := m.Execute(addAmy)
	assert.NilError(t, err)
	for _, line := range []string{"list", "find amy", "stats", "help", "man"} {
		_, err := m.Execute(line)
		assert.NilError(t, err, line)
	}
	assert.Equal(t, m.History().UndoSize(), 1)
}

func TestManager_StorageFailure(t *testing.T) {
	m := logic.NewManager(logic.ManagerParams{Storage: failingStorage{}})

	_, err := m.Execute(addAmy)
	assert.Check(t, errors.Is(err, errors.ErrStorage))
	assert.ErrorContains(t, err, "disk full")

	// The change stays in memory and can still be undone.
	assert.Check(t, is.Len(m.Store().Persons(), 1))
	assert.Equal(t, m.History().UndoSize(), 1)
}

func TestManager_EndToEnd(t *testing.T) {
	m := logic.NewManager(logic.ManagerParams{})
	friends := func() int {
		f, ok := m.Store().Folder("friends")
		assert.Assert(t, ok)
		return f.Count
	}

	for _, line := range []string{
		"add n/Bob Choo p/22222222 e/bob@example.com a/Block 123, Bobby Street 3",
		addAmy,
		"list t/friends",
	} {
		_, err := m.Execute(line)
		assert.NilError(t, err, line)
	}
	shown := m.Store().FilteredPersons()
	assert.Assert(t, is.Len(shown, 1))
	assert.Equal(t, shown[0].Name, model.Name("Amy Bee"))
	assert.Equal(t, friends(), 1)

	_, err := m.Execute("delete 1")
	assert.NilError(t, err)
	assert.Equal(t, friends(), 0)

	_, err = m.Execute("undo")
	assert.NilError(t, err)
	assert.Equal(t, friends(), 1)
	assert.Equal(t, m.Store().Persons()[1].Name, model.Name("Amy Bee"))

	_, err = m.Execute("redo")
	assert.NilError(t, err)
	assert.Equal(t, friends(), 0)

	_, err = m.Execute("redo")
	assert.Check(t, errors.Is(err, errors.ErrNothingToRedo))
}
