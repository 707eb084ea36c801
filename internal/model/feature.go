package model

import (
	"regexp"
	"strings"

	"github.com/nikbrunner/bizbook/internal/errors"
)

// FeatureConstraints is shown when a feature name is rejected.
const FeatureConstraints = "Feature names should only contain alphanumeric characters and hyphens, and it should not be blank"

var featureRegex = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N}\-]*$`)

// Feature declares a business feature and the tags that mark a person as
// having it, e.g. "supplier" marked by [vendor] or [wholesale].
type Feature struct {
	Name string `json:"name"`
	Tags []Tag  `json:"tags"`
}

// ParseFeatureName trims and validates a feature name.
func ParseFeatureName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !featureRegex.MatchString(s) {
		return "", errors.NewConstraintViolation(FeatureConstraints)
	}
	return s, nil
}

// NewFeature creates a Feature with normalized tags.
func NewFeature(name string, tags []Tag) Feature {
	return Feature{Name: name, Tags: normalizeTags(tags)}
}

// Key returns the case-folded identity of the feature.
func (f Feature) Key() string {
	return strings.ToLower(f.Name)
}

// Equal reports whether two declarations are identical.
func (f Feature) Equal(other Feature) bool {
	if f.Key() != other.Key() || len(f.Tags) != len(other.Tags) {
		return false
	}
	for i := range f.Tags {
		if !f.Tags[i].Equal(other.Tags[i]) {
			return false
		}
	}
	return true
}

// Covers reports whether p carries any of the feature's tags.
func (f Feature) Covers(p Person) bool {
	return p.HasAnyTag(f.Tags)
}

func (f Feature) String() string {
	if len(f.Tags) == 0 {
		return f.Name
	}
	var b strings.Builder
	b.WriteString(f.Name)
	b.WriteString(" ")
	for _, t := range f.Tags {
		b.WriteString(t.String())
	}
	return b.String()
}
