package tui

import (
	"strconv"
	"strings"

	"github.com/nikbrunner/bizbook/internal/model"
)

// Row is one numbered entry of the displayed person list. Number is the
// one-based index commands such as delete and edit refer to.
type Row struct {
	Number int
	Person model.Person
}

// rows numbers the filtered persons.
func rows(persons []model.Person) []Row {
	out := make([]Row, len(persons))
	for i, p := range persons {
		out[i] = Row{Number: i + 1, Person: p}
	}
	return out
}

// Label returns "N. Name".
func (r Row) Label() string {
	return strconv.Itoa(r.Number) + ". " + string(r.Person.Name)
}

// Detail returns the contact fields on one line.
func (r Row) Detail() string {
	return strings.Join([]string{
		string(r.Person.Phone),
		string(r.Person.Email),
		string(r.Person.Address),
	}, "  ")
}

// Tags returns the person's tags as "[a] [b]".
func (r Row) Tags() string {
	parts := make([]string, len(r.Person.Tags))
	for i, t := range r.Person.Tags {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
