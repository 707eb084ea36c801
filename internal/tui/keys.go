package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the command box host.
type KeyMap struct {
	Submit     key.Binding
	RecallPrev key.Binding
	RecallNext key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Help       key.Binding
	CloseHelp  key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings. Printable keys all go to
// the command box, so bindings use non-printing keys only.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		RecallPrev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("up", "previous command"),
		),
		RecallNext: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("down", "next command"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		CloseHelp: key.NewBinding(
			key.WithKeys("esc", "f1", "enter"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
