package model

// AddressBook is the persisted state: persons in order, user-saved
// folders, and business feature declarations.
type AddressBook struct {
	Persons  []Person      `json:"persons"`
	Folders  []SavedFolder `json:"folders"`
	Features []Feature     `json:"features"`
}

// NewAddressBook creates an empty AddressBook with initialized slices.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		Persons:  []Person{},
		Folders:  []SavedFolder{},
		Features: []Feature{},
	}
}

// HasPerson reports whether a person with the same identity exists.
func (b *AddressBook) HasPerson(p Person) bool {
	for _, existing := range b.Persons {
		if existing.IsSamePerson(p) {
			return true
		}
	}
	return false
}

// ImportMerge appends persons, skipping any that duplicate an existing or
// earlier imported person. Returns counts of added and skipped persons.
func (b *AddressBook) ImportMerge(persons []Person) (added, skipped int) {
	for _, p := range persons {
		if b.HasPerson(p) {
			skipped++
			continue
		}
		b.Persons = append(b.Persons, p)
		added++
	}
	return added, skipped
}

// MergeFolders appends saved folders not already present by key.
func (b *AddressBook) MergeFolders(folders []SavedFolder) int {
	index := NewFolderIndex()
	index.Restore(b.Folders)
	before := index.Len()
	index.Restore(folders)
	b.Folders = index.Saved()
	return index.Len() - before
}

// MergeFeatures appends feature declarations whose name is not yet declared.
func (b *AddressBook) MergeFeatures(features []Feature) int {
	added := 0
	for _, f := range features {
		declared := false
		for _, existing := range b.Features {
			if existing.Key() == f.Key() {
				declared = true
				break
			}
		}
		if declared {
			continue
		}
		b.Features = append(b.Features, f)
		added++
	}
	return added
}
