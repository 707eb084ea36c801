package model

import (
	"sort"
	"strings"

	"github.com/nikbrunner/bizbook/internal/errors"
)

// folderKeySep joins query tag keys into a folder key.
const folderKeySep = "|"

// TagFolder is a sidebar entry counting the persons that carry all of its
// query tags. Count is derived and recomputed on every refresh.
type TagFolder struct {
	DisplayName string
	QueryTags   []Tag // sorted by key
	Count       int
	UserCreated bool
}

// Key returns the folder's normalized identity.
func (f TagFolder) Key() string {
	return FolderKey(f.QueryTags)
}

// IsComposite reports whether the folder queries more than one tag.
func (f TagFolder) IsComposite() bool {
	return len(f.QueryTags) > 1
}

// SavedFolder is the persisted form of a user-created folder.
type SavedFolder struct {
	DisplayName string   `json:"displayName"`
	QueryTags   []string `json:"queryTags"`
}

// FolderKey returns the case-insensitive, sorted, pipe-joined key for a tag
// set. Blank and repeated tags are ignored.
func FolderKey(tags []Tag) string {
	keys := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		k := strings.TrimSpace(t.Key())
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, folderKeySep)
}

// FolderDisplayName returns the sidebar label for a tag set: the tag itself
// for one tag, or the lower-cased tags joined with " & " for several.
func FolderDisplayName(tags []Tag) string {
	tags = normalizeTags(tags)
	if len(tags) == 1 {
		return tags[0].Name
	}
	return strings.Join(tagKeys(tags), " & ")
}

// NewTagFolder creates a folder for tags with a normalized query.
func NewTagFolder(tags []Tag, userCreated bool) TagFolder {
	query := normalizeTags(tags)
	return TagFolder{
		DisplayName: FolderDisplayName(query),
		QueryTags:   query,
		UserCreated: userCreated,
	}
}

// FolderIndex keeps one folder per distinct tag in use plus user-declared
// folders, in creation order. At most one folder exists per key.
type FolderIndex struct {
	folders []TagFolder
	byKey   map[string]int
}

// NewFolderIndex creates an empty index.
func NewFolderIndex() *FolderIndex {
	return &FolderIndex{byKey: make(map[string]int)}
}

// All returns a copy of every folder in order.
func (x *FolderIndex) All() []TagFolder {
	out := make([]TagFolder, len(x.folders))
	copy(out, x.folders)
	return out
}

// Len returns the number of folders.
func (x *FolderIndex) Len() int {
	return len(x.folders)
}

// Get returns the folder with the given key.
func (x *FolderIndex) Get(key string) (TagFolder, bool) {
	i, ok := x.byKey[key]
	if !ok {
		return TagFolder{}, false
	}
	return x.folders[i], true
}

// Refresh creates an auto-folder for every tag on persons that has none yet,
// then recomputes every folder's count. Folders are never removed here.
func (x *FolderIndex) Refresh(persons []Person) {
	for _, p := range persons {
		for _, t := range p.Tags {
			if _, ok := x.byKey[t.Key()]; ok {
				continue
			}
			x.append(NewTagFolder([]Tag{t}, false))
		}
	}
	for i := range x.folders {
		count := 0
		for _, p := range persons {
			if p.HasAllTags(x.folders[i].QueryTags) {
				count++
			}
		}
		x.folders[i].Count = count
	}
}

// Save adds a user folder for tags. The caller refreshes counts afterwards.
func (x *FolderIndex) Save(tags []Tag) (TagFolder, error) {
	folder := NewTagFolder(tags, true)
	if len(folder.QueryTags) == 0 {
		return TagFolder{}, errors.NewIllegalState("a folder needs at least one tag")
	}
	if _, ok := x.byKey[folder.Key()]; ok {
		return TagFolder{}, errors.NewFolderExists(folder.DisplayName)
	}
	x.append(folder)
	return folder, nil
}

// Remove deletes the folder with key, returning it and its former position.
func (x *FolderIndex) Remove(key string) (TagFolder, int, bool) {
	i, ok := x.byKey[key]
	if !ok {
		return TagFolder{}, -1, false
	}
	folder := x.folders[i]
	x.folders = append(x.folders[:i], x.folders[i+1:]...)
	x.reindex()
	return folder, i, true
}

// Insert puts folder back at position i. An existing folder with the same
// key is replaced in place instead.
func (x *FolderIndex) Insert(i int, folder TagFolder) {
	if j, ok := x.byKey[folder.Key()]; ok {
		x.folders[j] = folder
		return
	}
	if i < 0 {
		i = 0
	}
	if i > len(x.folders) {
		i = len(x.folders)
	}
	x.folders = append(x.folders, TagFolder{})
	copy(x.folders[i+1:], x.folders[i:])
	x.folders[i] = folder
	x.reindex()
}

// Restore loads saved folder definitions. Entries without a valid tag and
// entries whose key already exists are skipped.
func (x *FolderIndex) Restore(saved []SavedFolder) {
	for _, s := range saved {
		var tags []Tag
		for _, raw := range s.QueryTags {
			tag, err := ParseTag(raw)
			if err != nil {
				continue
			}
			tags = append(tags, tag)
		}
		if len(tags) == 0 {
			continue
		}
		folder := NewTagFolder(tags, true)
		if _, ok := x.byKey[folder.Key()]; ok {
			continue
		}
		if name := strings.TrimSpace(s.DisplayName); name != "" {
			folder.DisplayName = name
		}
		x.append(folder)
	}
}

// Saved returns the user-created folders in their persisted form.
func (x *FolderIndex) Saved() []SavedFolder {
	var saved []SavedFolder
	for _, f := range x.folders {
		if !f.UserCreated {
			continue
		}
		saved = append(saved, SavedFolder{
			DisplayName: f.DisplayName,
			QueryTags:   tagKeys(f.QueryTags),
		})
	}
	return saved
}

func (x *FolderIndex) append(folder TagFolder) {
	x.byKey[folder.Key()] = len(x.folders)
	x.folders = append(x.folders, folder)
}

func (x *FolderIndex) reindex() {
	x.byKey = make(map[string]int, len(x.folders))
	for i, f := range x.folders {
		x.byKey[f.Key()] = i
	}
}
