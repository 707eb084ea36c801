package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nikbrunner/bizbook/internal/config"
	"github.com/nikbrunner/bizbook/internal/model"
	"github.com/nikbrunner/bizbook/internal/storage"
)

func samplePerson(name string, tags ...string) model.Person {
	ts := make([]model.Tag, len(tags))
	for i, t := range tags {
		ts[i] = model.Tag{Name: t}
	}
	return model.NewPerson(model.NewPersonParams{
		Name:    model.Name(name),
		Phone:   "87652533",
		Email:   "cornelia@example.com",
		Address: "10th street",
		Tags:    ts,
	})
}

func sampleBook() *model.AddressBook {
	book := model.NewAddressBook()
	book.Persons = append(book.Persons,
		samplePerson("Alice Pauline", "friends"),
		samplePerson("Benson Meier", "owesMoney", "friends"),
	)
	book.Folders = append(book.Folders, model.SavedFolder{
		DisplayName: "friends & owesmoney",
		QueryTags:   []string{"friends", "owesmoney"},
	})
	book.Features = append(book.Features, model.NewFeature("lender", []model.Tag{{Name: "owesMoney"}}))
	return book
}

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "addressbook.json")

	s := storage.NewJSONStorage(path)
	if err := s.Save(sampleBook()); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("data file was not created")
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	if len(loaded.Persons) != 2 {
		t.Fatalf("expected 2 persons, got %d", len(loaded.Persons))
	}
	if !loaded.Persons[1].Equal(sampleBook().Persons[1]) {
		t.Errorf("person mismatch: got %v", loaded.Persons[1])
	}
	if len(loaded.Folders) != 1 || loaded.Folders[0].DisplayName != "friends & owesmoney" {
		t.Errorf("unexpected folders: %+v", loaded.Folders)
	}
	if len(loaded.Features) != 1 || !loaded.Features[0].Equal(sampleBook().Features[0]) {
		t.Errorf("unexpected features: %+v", loaded.Features)
	}
}

func TestJSONStorage_LoadNonexistent(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nonexistent.json")

	s := storage.NewJSONStorage(path)
	book, err := s.Load()
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	if len(book.Persons) != 0 || len(book.Folders) != 0 || len(book.Features) != 0 {
		t.Error("expected empty address book for missing file")
	}
}

func TestJSONStorage_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "dir", "addressbook.json")

	s := storage.NewJSONStorage(path)
	if err := s.Save(model.NewAddressBook()); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("data file was not created in nested directory")
	}
}

func TestJSONStorage_PreservesOrder(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "addressbook.json")

	book := model.NewAddressBook()
	for _, name := range []string{"Zed", "Amy", "Kim"} {
		book.Persons = append(book.Persons, samplePerson(name))
	}

	s := storage.NewJSONStorage(path)
	if err := s.Save(book); err != nil {
		t.Fatalf("failed to save: %v", err)
	}
	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	for i, want := range []string{"Zed", "Amy", "Kim"} {
		if string(loaded.Persons[i].Name) != want {
			t.Errorf("position %d: got %q, want %q", i, loaded.Persons[i].Name, want)
		}
	}
}

func TestJSONStorage_RejectsInvalidData(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "invalid phone",
			content: `{"persons":[{"name":"Amy","phone":"+65","email":"amy@example.com","address":"x"}]}`,
			errMsg:  model.PhoneConstraints,
		},
		{
			name: "duplicate person",
			content: `{"persons":[
				{"name":"Amy","phone":"123","email":"amy@example.com","address":"x"},
				{"name":"AMY","phone":"456","email":"amy@example.com","address":"y"}]}`,
			errMsg: "duplicate person",
		},
		{
			name:    "invalid feature",
			content: `{"features":[{"name":"has space"}]}`,
			errMsg:  model.FeatureConstraints,
		},
		{
			name:    "not json",
			content: `{`,
			errMsg:  "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "addressbook.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write: %v", err)
			}

			_, err := storage.NewJSONStorage(path).Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error %q does not mention %q", err, tt.errMsg)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	tmpDir := t.TempDir()

	s, err := storage.Open(config.StorageConfig{Backend: config.BackendJSON, Path: filepath.Join(tmpDir, "a.json")})
	if err != nil {
		t.Fatalf("failed to open json: %v", err)
	}
	if _, ok := s.(*storage.JSONStorage); !ok {
		t.Errorf("expected JSONStorage, got %T", s)
	}

	s, err = storage.Open(config.StorageConfig{Backend: config.BackendSQLite, Path: filepath.Join(tmpDir, "a.db")})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if _, ok := s.(*storage.SQLiteStorage); !ok {
		t.Errorf("expected SQLiteStorage, got %T", s)
	}
	if err := storage.Close(s); err != nil {
		t.Errorf("failed to close: %v", err)
	}

	if _, err := storage.Open(config.StorageConfig{Backend: "csv"}); err == nil {
		t.Error("expected error for unknown backend")
	}
}
