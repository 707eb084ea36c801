package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App           lipgloss.Style
	Pane          lipgloss.Style
	CommandBox    lipgloss.Style
	CommandError  lipgloss.Style
	Title         lipgloss.Style
	Index         lipgloss.Style
	Name          lipgloss.Style
	Detail        lipgloss.Style
	Tag           lipgloss.Style
	Folder        lipgloss.Style
	FolderUser    lipgloss.Style
	Count         lipgloss.Style
	Feedback      lipgloss.Style
	FeedbackError lipgloss.Style
	Help          lipgloss.Style
	Empty         lipgloss.Style
	HintKey       lipgloss.Style // Key portion of hints (e.g., "enter", "up")
	HintDesc      lipgloss.Style // Description portion of hints (e.g., "run")
	Status        lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}  // inactive borders
	failure := lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"}

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(border).
			Padding(0, 1),

		CommandBox: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		CommandError: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(failure).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Index: lipgloss.NewStyle().
			Foreground(subtle),

		Name: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		Detail: lipgloss.NewStyle().
			Foreground(subtle),

		Tag: lipgloss.NewStyle().
			Foreground(accent),

		Folder: lipgloss.NewStyle().
			Foreground(primary),

		FolderUser: lipgloss.NewStyle().
			Foreground(accent),

		Count: lipgloss.NewStyle().
			Foreground(subtle),

		Feedback: lipgloss.NewStyle().
			Foreground(primary),

		FeedbackError: lipgloss.NewStyle().
			Foreground(failure).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 0),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),

		HintKey: lipgloss.NewStyle().
			Foreground(subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),

		Status: lipgloss.NewStyle().
			Foreground(subtle).
			PaddingLeft(1),
	}
}
