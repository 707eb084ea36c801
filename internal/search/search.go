package search

import (
	"github.com/sahilm/fuzzy"

	"github.com/nikbrunner/bizbook/internal/model"
)

// SearchResult represents a fuzzy search match.
type SearchResult struct {
	Person         model.Person
	Position       int // in the searched slice
	MatchedIndexes []int
	Score          int
}

// personNames implements fuzzy.Source over person names.
type personNames []model.Person

func (pn personNames) String(i int) string {
	return string(pn[i].Name)
}

func (pn personNames) Len() int {
	return len(pn)
}

// FuzzySearchPersons searches persons by name using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearchPersons(persons []model.Person, query string) []SearchResult {
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, personNames(persons))

	results := make([]SearchResult, len(matches))
	for i, m := range matches {
		results[i] = SearchResult{
			Person:         persons[m.Index],
			Position:       m.Index,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
