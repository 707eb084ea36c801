package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Pane     PaneConfig
	Feedback FeedbackConfig
	Modal    ModalConfig
	Input    InputConfig
	Text     TextConfig
}

// PaneConfig holds dimensions of the sidebar and person list panes.
type PaneConfig struct {
	// HeightReduction is subtracted from terminal height for pane content.
	// Accounts for: app padding (1) + command box (3) + pane borders (2) + status bar (1) = 7.
	// The feedback box height is subtracted separately.
	HeightReduction int

	// MinHeight is the minimum pane height.
	MinHeight int

	// WidthOffset is subtracted from terminal width before splitting.
	// Accounts for app padding (4) and the borders of both panes (4).
	WidthOffset int

	// DefaultSidebarPercent is used when no sidebar width is configured.
	DefaultSidebarPercent int

	// MinSidebarWidth and MaxSidebarWidth clamp the folder sidebar.
	MinSidebarWidth int
	MaxSidebarWidth int

	// MinListWidth is the minimum width of the person list.
	MinListWidth int

	// ContentPadding is subtracted from pane width for row rendering.
	ContentPadding int

	// LinesPerPerson is the number of rows one person takes in the list.
	LinesPerPerson int
}

// FeedbackConfig holds result display configuration.
type FeedbackConfig struct {
	// Lines is the number of text lines shown in the feedback box.
	Lines int
}

// ModalConfig holds help overlay configuration.
type ModalConfig struct {
	// DefaultWidthPercent is the overlay width as percentage of terminal width.
	DefaultWidthPercent int

	// MinWidth is the minimum overlay width in characters.
	MinWidth int

	// MaxWidth is the maximum overlay width in characters.
	MaxWidth int

	// HelpWordColumnWidth is the width of the command word column.
	HelpWordColumnWidth int
}

// InputConfig holds command box configuration.
type InputConfig struct {
	CommandCharLimit int

	// RecallLimit is how many entered command lines are kept for up/down recall.
	RecallLimit int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Pane: PaneConfig{
			HeightReduction:       7, // app padding (1) + command box (3) + pane borders (2) + status bar (1)
			MinHeight:             4,
			WidthOffset:           8,
			DefaultSidebarPercent: 30,
			MinSidebarWidth:       16,
			MaxSidebarWidth:       48,
			MinListWidth:          24,
			ContentPadding:        2,
			LinesPerPerson:        2,
		},
		Feedback: FeedbackConfig{
			Lines: 3,
		},
		Modal: ModalConfig{
			DefaultWidthPercent: 70,
			MinWidth:            40,
			MaxWidth:            110,
			HelpWordColumnWidth: 8,
		},
		Input: InputConfig{
			CommandCharLimit: 1000,
			RecallLimit:      100,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
