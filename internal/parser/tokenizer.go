package parser

import (
	"sort"
	"strings"

	"github.com/nikbrunner/bizbook/internal/errors"
)

// Prefix marks the start of an argument segment, e.g. "n/".
type Prefix string

// Prefixes understood by the command parsers.
const (
	PrefixName       Prefix = "n/"
	PrefixPhone      Prefix = "p/"
	PrefixEmail      Prefix = "e/"
	PrefixAddress    Prefix = "a/"
	PrefixTag        Prefix = "t/"
	PrefixAddTag     Prefix = "at/"
	PrefixDeleteTag  Prefix = "dt/"
	PrefixFeature    Prefix = "f/"
	PrefixSaveFolder Prefix = "sf/"
	PrefixDropFolder Prefix = "df/"
)

func (p Prefix) String() string {
	return string(p)
}

// ArgumentMap is the result of tokenizing command arguments: the preamble
// before the first prefix, and every prefix occurrence in input order.
type ArgumentMap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the trimmed text before the first recognised prefix.
func (m ArgumentMap) Preamble() string {
	return m.preamble
}

// Value returns the last value given for p, trimmed.
func (m ArgumentMap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return strings.TrimSpace(vs[len(vs)-1]), true
}

// AllValues returns every value given for p in input order, trimmed.
func (m ArgumentMap) AllValues(p Prefix) []string {
	vs := m.values[p]
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = strings.TrimSpace(v)
	}
	return out
}

// Has reports whether p occurred at least once.
func (m ArgumentMap) Has(p Prefix) bool {
	return len(m.values[p]) > 0
}

// Count returns how many times p occurred.
func (m ArgumentMap) Count(p Prefix) int {
	return len(m.values[p])
}

// HasDuplicate reports whether p occurred more than once.
func (m ArgumentMap) HasDuplicate(p Prefix) bool {
	return len(m.values[p]) > 1
}

// VerifyNoDuplicates returns a DUPLICATE_PREFIX error naming every given
// prefix that occurred more than once.
func (m ArgumentMap) VerifyNoDuplicates(prefixes ...Prefix) error {
	var dups []string
	for _, p := range prefixes {
		if m.HasDuplicate(p) {
			dups = append(dups, string(p))
		}
	}
	if len(dups) > 0 {
		return errors.NewDuplicatePrefix(dups)
	}
	return nil
}

type occurrence struct {
	prefix Prefix
	start  int
}

// Tokenize splits args into segments introduced by the given prefixes.
//
// Prefixes are found by exact literal search, leftmost first. A candidate
// that starts inside a prefix literal already accepted is ignored, so t/
// never matches the tail of at/ or dt/. At the same position the longer
// literal wins. Tokenize never fails.
func Tokenize(args string, prefixes ...Prefix) ArgumentMap {
	m := ArgumentMap{values: make(map[Prefix][]string)}

	found := findOccurrences(args, prefixes)
	if len(found) == 0 {
		m.preamble = strings.TrimSpace(args)
		return m
	}

	m.preamble = strings.TrimSpace(args[:found[0].start])
	for i, occ := range found {
		end := len(args)
		if i+1 < len(found) {
			end = found[i+1].start
		}
		value := args[occ.start+len(occ.prefix) : end]
		m.values[occ.prefix] = append(m.values[occ.prefix], value)
	}
	return m
}

func findOccurrences(args string, prefixes []Prefix) []occurrence {
	var candidates []occurrence
	for _, p := range prefixes {
		if p == "" {
			continue
		}
		for from := 0; from < len(args); {
			i := strings.Index(args[from:], string(p))
			if i < 0 {
				break
			}
			candidates = append(candidates, occurrence{prefix: p, start: from + i})
			from += i + 1
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].start != candidates[j].start {
			return candidates[i].start < candidates[j].start
		}
		return len(candidates[i].prefix) > len(candidates[j].prefix)
	})

	var accepted []occurrence
	end := 0
	for _, c := range candidates {
		if c.start < end {
			continue
		}
		accepted = append(accepted, c)
		end = c.start + len(c.prefix)
	}
	return accepted
}
