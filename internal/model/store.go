package model

import (
	"github.com/nikbrunner/bizbook/internal/errors"
)

// Store is the in-memory record store: the authoritative person list, the
// filtered view over it, the derived tag-folder index and the business
// feature declarations. Every mutation bumps Version.
type Store struct {
	persons  []Person
	filter   Filter
	folders  *FolderIndex
	features []Feature
	version  uint64
}

// NewStore creates a Store from persisted state. A nil book yields an empty
// store.
func NewStore(book *AddressBook) *Store {
	s := &Store{folders: NewFolderIndex()}
	if book == nil {
		return s
	}
	s.persons = append([]Person(nil), book.Persons...)
	s.folders.Restore(book.Folders)
	for _, f := range book.Features {
		if _, ok := s.featureIndex(f.Name); ok {
			continue
		}
		s.features = append(s.features, f)
	}
	s.folders.Refresh(s.persons)
	return s
}

// Version increases on every change to persons, folders or features.
func (s *Store) Version() uint64 {
	return s.version
}

// AddressBook returns a snapshot of the persisted state.
func (s *Store) AddressBook() *AddressBook {
	book := NewAddressBook()
	book.Persons = append(book.Persons, s.persons...)
	book.Folders = append(book.Folders, s.folders.Saved()...)
	book.Features = append(book.Features, s.features...)
	return book
}

// === Persons ===

// Persons returns a copy of every person in order.
func (s *Store) Persons() []Person {
	return append([]Person(nil), s.persons...)
}

// FilteredPersons returns the persons that pass the current filter.
func (s *Store) FilteredPersons() []Person {
	var result []Person
	for _, p := range s.persons {
		if s.filter.Matches(p) {
			result = append(result, p)
		}
	}
	return result
}

// Filter returns the current filter.
func (s *Store) Filter() Filter {
	return s.filter
}

// SetFilter replaces the current filter.
func (s *Store) SetFilter(f Filter) {
	s.filter = f
}

// HasPerson reports whether a person with the same identity as p exists.
func (s *Store) HasPerson(p Person) bool {
	for _, existing := range s.persons {
		if existing.IsSamePerson(p) {
			return true
		}
	}
	return false
}

// AddPerson appends p. The person must not already exist.
func (s *Store) AddPerson(p Person) error {
	if s.HasPerson(p) {
		return errors.NewDuplicatePerson()
	}
	s.persons = append(s.persons, p)
	s.changed()
	return nil
}

// InsertPerson puts p at position i of the full list, clamped to its bounds.
func (s *Store) InsertPerson(i int, p Person) error {
	if s.HasPerson(p) {
		return errors.NewDuplicatePerson()
	}
	if i < 0 {
		i = 0
	}
	if i > len(s.persons) {
		i = len(s.persons)
	}
	s.persons = append(s.persons, Person{})
	copy(s.persons[i+1:], s.persons[i:])
	s.persons[i] = p
	s.changed()
	return nil
}

// DeletePerson removes the person equal to p and returns its former position.
func (s *Store) DeletePerson(p Person) (int, error) {
	i := s.indexOf(p)
	if i < 0 {
		return -1, errors.NewIllegalState("person to delete is not in the address book")
	}
	s.persons = append(s.persons[:i], s.persons[i+1:]...)
	s.changed()
	return i, nil
}

// SetPerson replaces target with edited in place. edited must not duplicate
// any person other than target.
func (s *Store) SetPerson(target, edited Person) error {
	i := s.indexOf(target)
	if i < 0 {
		return errors.NewIllegalState("person to replace is not in the address book")
	}
	if !target.IsSamePerson(edited) && s.HasPerson(edited) {
		return errors.NewDuplicatePerson()
	}
	s.persons[i] = edited
	s.changed()
	return nil
}

// SetPersons replaces the whole person list.
func (s *Store) SetPersons(persons []Person) {
	s.persons = append([]Person(nil), persons...)
	s.changed()
}

func (s *Store) indexOf(p Person) int {
	for i, existing := range s.persons {
		if existing.Equal(p) {
			return i
		}
	}
	return -1
}

// === Folders ===

// Folders returns every tag folder with current counts.
func (s *Store) Folders() []TagFolder {
	return s.folders.All()
}

// Folder returns the folder with the given key.
func (s *Store) Folder(key string) (TagFolder, bool) {
	return s.folders.Get(key)
}

// SaveFolder creates a user folder for tags.
func (s *Store) SaveFolder(tags []Tag) (TagFolder, error) {
	if _, err := s.folders.Save(tags); err != nil {
		return TagFolder{}, err
	}
	s.changed()
	folder, _ := s.folders.Get(FolderKey(tags))
	return folder, nil
}

// DeleteFolder removes the folder for tags and returns it with its former
// position. A single-tag folder whose tag is still in use cannot be deleted.
func (s *Store) DeleteFolder(tags []Tag) (TagFolder, int, error) {
	key := FolderKey(tags)
	folder, ok := s.folders.Get(key)
	if !ok {
		return TagFolder{}, -1, errors.NewFolderNotFound(FolderDisplayName(tags))
	}
	if !folder.IsComposite() && folder.Count > 0 {
		return TagFolder{}, -1, errors.NewFolderInUse(folder.DisplayName, folder.Count)
	}
	folder, i, _ := s.folders.Remove(key)
	s.changed()
	return folder, i, nil
}

// InsertFolder puts a previously removed folder back at position i.
func (s *Store) InsertFolder(i int, folder TagFolder) {
	s.folders.Insert(i, folder)
	s.changed()
}

// RemoveFolder deletes the folder with key without usage checks.
func (s *Store) RemoveFolder(key string) {
	if _, _, ok := s.folders.Remove(key); ok {
		s.changed()
	}
}

// === Features ===

// Features returns every feature declaration in order.
func (s *Store) Features() []Feature {
	return append([]Feature(nil), s.features...)
}

// Feature returns the declaration for name, ignoring case.
func (s *Store) Feature(name string) (Feature, bool) {
	i, ok := s.featureIndex(name)
	if !ok {
		return Feature{}, false
	}
	return s.features[i], true
}

// DeclareFeature adds f, or replaces an existing declaration of the same
// name in place.
func (s *Store) DeclareFeature(f Feature) {
	if i, ok := s.featureIndex(f.Name); ok {
		s.features[i] = f
	} else {
		s.features = append(s.features, f)
	}
	s.version++
}

// RemoveFeature deletes the declaration for name and returns it with its
// former position.
func (s *Store) RemoveFeature(name string) (Feature, int, error) {
	i, ok := s.featureIndex(name)
	if !ok {
		return Feature{}, -1, errors.NewFeatureNotDeclared(name)
	}
	f := s.features[i]
	s.features = append(s.features[:i], s.features[i+1:]...)
	s.version++
	return f, i, nil
}

// InsertFeature puts f at position i, clamped to bounds.
func (s *Store) InsertFeature(i int, f Feature) {
	if i < 0 {
		i = 0
	}
	if i > len(s.features) {
		i = len(s.features)
	}
	s.features = append(s.features, Feature{})
	copy(s.features[i+1:], s.features[i:])
	s.features[i] = f
	s.version++
}

func (s *Store) featureIndex(name string) (int, bool) {
	key := Feature{Name: name}.Key()
	for i, f := range s.features {
		if f.Key() == key {
			return i, true
		}
	}
	return -1, false
}

// changed is the single refresh point after any person or folder mutation.
func (s *Store) changed() {
	s.folders.Refresh(s.persons)
	s.version++
}
