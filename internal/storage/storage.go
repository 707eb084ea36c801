package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nikbrunner/bizbook/internal/config"
	"github.com/nikbrunner/bizbook/internal/model"
)

// Storage defines the interface for persisting the address book.
type Storage interface {
	Load() (*model.AddressBook, error)
	Save(book *model.AddressBook) error
}

// JSONStorage implements Storage using a JSON file.
type JSONStorage struct {
	path string
}

// NewJSONStorage creates a new JSONStorage with the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the storage file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// jsonAddressBook is the on-disk document. Persons and features are stored
// as plain strings and validated on load.
type jsonAddressBook struct {
	Persons  []jsonPerson        `json:"persons"`
	Folders  []model.SavedFolder `json:"folders"`
	Features []jsonFeature       `json:"features"`
}

type jsonPerson struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
	Address string   `json:"address"`
	Tags    []string `json:"tags"`
}

type jsonFeature struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

// Load reads the address book from the JSON file.
// Returns an empty address book if the file doesn't exist.
func (s *JSONStorage) Load() (*model.AddressBook, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewAddressBook(), nil
		}
		return nil, err
	}

	var doc jsonAddressBook
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}

	book := model.NewAddressBook()
	for i, jp := range doc.Persons {
		p, err := toPerson(jp.Name, jp.Phone, jp.Email, jp.Address, jp.Tags)
		if err != nil {
			return nil, fmt.Errorf("person %d: %w", i+1, err)
		}
		book.Persons = append(book.Persons, p)
	}
	if err := checkDuplicates(book.Persons); err != nil {
		return nil, err
	}
	for i, jf := range doc.Features {
		f, err := toFeature(jf.Name, jf.Tags)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i+1, err)
		}
		book.Features = append(book.Features, f)
	}
	book.Folders = append(book.Folders, doc.Folders...)

	return book, nil
}

// Save writes the address book to the JSON file.
// Creates the directory if it doesn't exist.
func (s *JSONStorage) Save(book *model.AddressBook) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	doc := jsonAddressBook{
		Persons:  make([]jsonPerson, 0, len(book.Persons)),
		Folders:  make([]model.SavedFolder, 0, len(book.Folders)),
		Features: make([]jsonFeature, 0, len(book.Features)),
	}
	for _, p := range book.Persons {
		doc.Persons = append(doc.Persons, jsonPerson{
			Name:    string(p.Name),
			Phone:   string(p.Phone),
			Email:   string(p.Email),
			Address: string(p.Address),
			Tags:    tagNames(p.Tags),
		})
	}
	doc.Folders = append(doc.Folders, book.Folders...)
	for _, f := range book.Features {
		doc.Features = append(doc.Features, jsonFeature{Name: f.Name, Tags: tagNames(f.Tags)})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// Open opens the backend selected in cfg.
func Open(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return NewSQLiteStorage(cfg.Path)
	case config.BackendJSON, "":
		return NewJSONStorage(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Close releases s if the backend holds resources.
func Close(s Storage) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// toPerson validates stored field values the same way command input is
// validated, so a hand-edited file cannot smuggle in bad data.
func toPerson(name, phone, email, address string, tags []string) (model.Person, error) {
	n, err := model.ParseName(name)
	if err != nil {
		return model.Person{}, err
	}
	ph, err := model.ParsePhone(phone)
	if err != nil {
		return model.Person{}, err
	}
	e, err := model.ParseEmail(email)
	if err != nil {
		return model.Person{}, err
	}
	a, err := model.ParseAddress(address)
	if err != nil {
		return model.Person{}, err
	}
	ts, err := model.ParseTags(tags)
	if err != nil {
		return model.Person{}, err
	}
	return model.NewPerson(model.NewPersonParams{Name: n, Phone: ph, Email: e, Address: a, Tags: ts}), nil
}

func toFeature(name string, tags []string) (model.Feature, error) {
	n, err := model.ParseFeatureName(name)
	if err != nil {
		return model.Feature{}, err
	}
	ts, err := model.ParseTags(tags)
	if err != nil {
		return model.Feature{}, err
	}
	return model.NewFeature(n, ts), nil
}

func checkDuplicates(persons []model.Person) error {
	for i := range persons {
		for j := i + 1; j < len(persons); j++ {
			if persons[i].IsSamePerson(persons[j]) {
				return fmt.Errorf("persons list contains duplicate person(s): %s", persons[j].Name)
			}
		}
	}
	return nil
}

func tagNames(tags []model.Tag) []string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}
	return names
}
