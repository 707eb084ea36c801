// Package picker is a small TUI for choosing one person from search results
// and one of their contact fields to copy.
package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/bizbook/internal/config"
	"github.com/nikbrunner/bizbook/internal/model"
	"github.com/nikbrunner/bizbook/internal/search"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			MarginBottom(1)
)

// Picker lists search results and lets the user pick a person and the
// field (phone or email) to copy.
type Picker struct {
	results   []search.SearchResult
	query     string
	field     string
	cursor    int
	selected  bool
	cancelled bool
	width     int
	height    int
}

// New creates a Picker. field is config.CopyPhone or config.CopyEmail; any
// other value falls back to phone.
func New(results []search.SearchResult, query, field string) Picker {
	if field != config.CopyEmail {
		field = config.CopyPhone
	}
	return Picker{
		results: results,
		query:   query,
		field:   field,
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit
		case tea.KeyEnter:
			p.selected = true
			return p, tea.Quit
		case tea.KeyDown:
			p.move(1)
			return p, nil
		case tea.KeyUp:
			p.move(-1)
			return p, nil
		case tea.KeyTab:
			p.toggleField()
			return p, nil
		}

		if msg.Type == tea.KeyRunes {
			switch string(msg.Runes) {
			case "j":
				p.move(1)
			case "k":
				p.move(-1)
			case "q":
				p.cancelled = true
				return p, tea.Quit
			}
		}
	}

	return p, nil
}

func (p *Picker) move(delta int) {
	next := p.cursor + delta
	if next < 0 || next >= len(p.results) {
		return
	}
	p.cursor = next
}

func (p *Picker) toggleField() {
	if p.field == config.CopyPhone {
		p.field = config.CopyEmail
	} else {
		p.field = config.CopyPhone
	}
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Search: %s (%d results)", p.query, len(p.results))))
	b.WriteString("\n\n")

	for i, result := range p.results {
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		person := result.Person
		detail := fmt.Sprintf("%s  %s", person.Phone, person.Email)
		if len(person.Tags) > 0 {
			detail += "  " + tagList(person.Tags)
		}

		b.WriteString(fmt.Sprintf("%s%s\n", cursor, style.Render(string(person.Name))))
		b.WriteString(fmt.Sprintf("   %s\n", detailStyle.Render(detail)))
	}

	b.WriteString("\n")
	b.WriteString("Copy: " + fieldStyle.Render(p.field) + "\n")
	b.WriteString(detailStyle.Render("j/k: move  Tab: phone/email  Enter: copy  q/Esc: cancel"))

	return b.String()
}

func tagList(tags []model.Tag) string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = "[" + t.Name + "]"
	}
	return strings.Join(names, " ")
}

// Field returns the contact field currently chosen for copying.
func (p Picker) Field() string {
	return p.field
}

// SelectedPerson returns the selected person, or nil if cancelled.
func (p Picker) SelectedPerson() *model.Person {
	if p.cancelled || !p.selected {
		return nil
	}
	if p.cursor < len(p.results) {
		person := p.results[p.cursor].Person
		return &person
	}
	return nil
}

// SelectedValue returns the chosen field of the selected person.
func (p Picker) SelectedValue() (string, bool) {
	person := p.SelectedPerson()
	if person == nil {
		return "", false
	}
	if p.field == config.CopyEmail {
		return string(person.Email), true
	}
	return string(person.Phone), true
}

// Select marks the item under the cursor as chosen without running the
// picker.
func (p Picker) Select() Picker {
	p.selected = true
	return p
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
