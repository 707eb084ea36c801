package model

import (
	"regexp"
	"sort"
	"strings"

	"github.com/nikbrunner/bizbook/internal/errors"
)

// TagConstraints is shown when a tag name is rejected.
const TagConstraints = "Tags names should be alphanumeric"

var tagRegex = regexp.MustCompile(`^[\p{L}\p{N}]+$`)

// Tag is a short label on a person. Tags compare case-insensitively but
// keep the casing they were created with for display.
type Tag struct {
	Name string `json:"name"`
}

// ParseTag trims and validates a tag name.
func ParseTag(s string) (Tag, error) {
	s = strings.TrimSpace(s)
	if !tagRegex.MatchString(s) {
		return Tag{}, errors.NewConstraintViolation(TagConstraints)
	}
	return Tag{Name: s}, nil
}

// ParseTags validates every name, returning the first failure.
func ParseTags(names []string) ([]Tag, error) {
	tags := make([]Tag, 0, len(names))
	for _, n := range names {
		tag, err := ParseTag(n)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// Key returns the case-folded identity of the tag.
func (t Tag) Key() string {
	return strings.ToLower(t.Name)
}

// Equal reports whether two tags are the same ignoring case.
func (t Tag) Equal(other Tag) bool {
	return t.Key() == other.Key()
}

func (t Tag) String() string {
	return "[" + t.Name + "]"
}

// normalizeTags drops case-insensitive duplicates (first spelling wins) and
// sorts by key.
func normalizeTags(tags []Tag) []Tag {
	seen := make(map[string]bool, len(tags))
	result := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if seen[t.Key()] {
			continue
		}
		seen[t.Key()] = true
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Key() < result[j].Key()
	})
	return result
}

// containsTag reports whether tags holds t, ignoring case.
func containsTag(tags []Tag, t Tag) bool {
	for _, x := range tags {
		if x.Equal(t) {
			return true
		}
	}
	return false
}

// tagKeys returns the keys of tags in order.
func tagKeys(tags []Tag) []string {
	keys := make([]string, len(tags))
	for i, t := range tags {
		keys[i] = t.Key()
	}
	return keys
}
