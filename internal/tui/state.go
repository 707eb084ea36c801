package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/nikbrunner/bizbook/internal/tui/layout"
)

// RecallState holds previously entered command lines for up/down recall.
type RecallState struct {
	lines []string
	limit int
	pos   int    // len(lines) when not browsing
	draft string // text typed before browsing started
}

// NewRecallState creates a RecallState keeping at most limit lines.
func NewRecallState(limit int) RecallState {
	return RecallState{limit: limit}
}

// Push appends an entered line and stops browsing. Repeating the most
// recent line does not add a second entry.
func (r *RecallState) Push(line string) {
	if n := len(r.lines); n == 0 || r.lines[n-1] != line {
		r.lines = append(r.lines, line)
	}
	if r.limit > 0 && len(r.lines) > r.limit {
		r.lines = r.lines[len(r.lines)-r.limit:]
	}
	r.pos = len(r.lines)
	r.draft = ""
}

// Prev steps back to an older line. current is the input text, kept as the
// draft when browsing starts. Returns false at the oldest line.
func (r *RecallState) Prev(current string) (string, bool) {
	if r.pos == 0 {
		return "", false
	}
	if r.pos == len(r.lines) {
		r.draft = current
	}
	r.pos--
	return r.lines[r.pos], true
}

// Next steps forward to a newer line, ending at the draft. Returns false when
// not browsing.
func (r *RecallState) Next() (string, bool) {
	if r.pos >= len(r.lines) {
		return "", false
	}
	r.pos++
	if r.pos == len(r.lines) {
		return r.draft, true
	}
	return r.lines[r.pos], true
}

// Len returns the number of recallable lines.
func (r *RecallState) Len() int {
	return len(r.lines)
}

// Feedback is the text shown in the result box after a command.
type Feedback struct {
	Text    string
	IsError bool
}

// newCommandInput creates the command box input.
func newCommandInput(cfg layout.LayoutConfig) textinput.Model {
	input := textinput.New()
	input.Placeholder = "Enter command here..."
	input.Prompt = "> "
	input.CharLimit = cfg.Input.CommandCharLimit
	input.Focus()
	return input
}
