package model

import (
	"strings"
)

// Filter selects which persons the filtered view shows. The zero value
// shows everyone. A person must match at least one keyword (when keywords
// are set) and carry every tag (when tags are set).
type Filter struct {
	Keywords []string
	Tags     []Tag
}

// ShowAll returns the filter that matches every person.
func ShowAll() Filter {
	return Filter{}
}

// KeywordFilter matches persons whose name contains any keyword as a whole
// word, ignoring case.
func KeywordFilter(keywords []string) Filter {
	return Filter{Keywords: append([]string(nil), keywords...)}
}

// TagFilter matches persons carrying every tag.
func TagFilter(tags []Tag) Filter {
	return Filter{Tags: normalizeTags(tags)}
}

// IsShowAll reports whether f matches every person.
func (f Filter) IsShowAll() bool {
	return len(f.Keywords) == 0 && len(f.Tags) == 0
}

// Matches reports whether p passes the filter.
func (f Filter) Matches(p Person) bool {
	if len(f.Keywords) > 0 && !nameHasAnyWord(p.Name, f.Keywords) {
		return false
	}
	return p.HasAllTags(f.Tags)
}

// Equal reports whether two filters select the same persons by definition.
func (f Filter) Equal(other Filter) bool {
	if len(f.Keywords) != len(other.Keywords) || len(f.Tags) != len(other.Tags) {
		return false
	}
	for i := range f.Keywords {
		if !strings.EqualFold(f.Keywords[i], other.Keywords[i]) {
			return false
		}
	}
	for i := range f.Tags {
		if !f.Tags[i].Equal(other.Tags[i]) {
			return false
		}
	}
	return true
}

func (f Filter) String() string {
	if f.IsShowAll() {
		return "all persons"
	}
	var parts []string
	if len(f.Keywords) > 0 {
		parts = append(parts, "name has any of ["+strings.Join(f.Keywords, ", ")+"]")
	}
	if len(f.Tags) > 0 {
		parts = append(parts, "tagged "+strings.Join(tagKeys(f.Tags), " & "))
	}
	return strings.Join(parts, ", ")
}

func nameHasAnyWord(name Name, keywords []string) bool {
	words := strings.Fields(string(name))
	for _, k := range keywords {
		for _, w := range words {
			if strings.EqualFold(w, k) {
				return true
			}
		}
	}
	return false
}
