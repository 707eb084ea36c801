package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "up", "enter")
	Desc string // Short description (e.g., "recall", "run")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for the status bar: "enter:run up/down:recall"
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	if len(allHints) == 0 {
		return ""
	}

	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// renderHintsInline renders hints in inline format for the help overlay: "esc close  ctrl+c quit"
func (a App) renderHintsInline(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Action []Hint // Command box hints (enter, up/down)
	Nav    []Hint // List scrolling hints
	System []Hint // System hints (f1, ctrl+c)
}

// All returns all hints flattened in display order: Action + Nav + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Action)+len(h.Nav)+len(h.System))
	result = append(result, h.Action...)
	result = append(result, h.Nav...)
	result = append(result, h.System...)
	return result
}

// bindingHint converts a key binding's help text into a Hint.
func bindingHint(b key.Binding) Hint {
	h := b.Help()
	return Hint{Key: h.Key, Desc: h.Desc}
}

// getContextualHints returns the hints for the current screen.
func (a App) getContextualHints() HintSet {
	if a.helpVisible {
		return HintSet{
			System: []Hint{
				bindingHint(a.keys.CloseHelp),
				bindingHint(a.keys.Quit),
			},
		}
	}

	return HintSet{
		Action: []Hint{
			bindingHint(a.keys.Submit),
			{Key: "up/down", Desc: "recall"},
		},
		Nav: []Hint{
			{Key: "pgup/pgdn", Desc: "scroll"},
		},
		System: []Hint{
			bindingHint(a.keys.Help),
			bindingHint(a.keys.Quit),
		},
	}
}
