package layout

// PaneLayout holds calculated pane widths.
type PaneLayout struct {
	SidebarWidth int
	ListWidth    int
}

// FeedbackHeight is the rendered height of the feedback box including its
// border.
func FeedbackHeight(cfg FeedbackConfig) int {
	return cfg.Lines + 2
}

// CalculatePaneHeight computes the content height for the sidebar and list.
// Returns at least MinHeight.
func CalculatePaneHeight(terminalHeight int, cfg LayoutConfig) int {
	height := terminalHeight - cfg.Pane.HeightReduction - FeedbackHeight(cfg.Feedback)
	if height < cfg.Pane.MinHeight {
		return cfg.Pane.MinHeight
	}
	return height
}

// CalculatePaneWidth splits the terminal width between the folder sidebar
// and the person list. sidebarPercent outside 1..90 uses the default.
func CalculatePaneWidth(terminalWidth, sidebarPercent int, cfg PaneConfig) PaneLayout {
	if sidebarPercent <= 0 || sidebarPercent > 90 {
		sidebarPercent = cfg.DefaultSidebarPercent
	}

	available := terminalWidth - cfg.WidthOffset
	sidebar := available * sidebarPercent / 100
	if sidebar < cfg.MinSidebarWidth {
		sidebar = cfg.MinSidebarWidth
	}
	if sidebar > cfg.MaxSidebarWidth {
		sidebar = cfg.MaxSidebarWidth
	}

	list := available - sidebar
	if list < cfg.MinListWidth {
		list = cfg.MinListWidth
	}

	return PaneLayout{
		SidebarWidth: sidebar,
		ListWidth:    list,
	}
}

// CalculateItemWidth computes the width available for row content.
func CalculateItemWidth(paneWidth int, cfg PaneConfig) int {
	width := paneWidth - cfg.ContentPadding
	if width < 1 {
		return 1
	}
	return width
}

// CalculateVisibleHeight computes the visible line count in a pane.
func CalculateVisibleHeight(paneHeight, headerLines int) int {
	height := paneHeight - headerLines
	if height < 1 {
		return 1
	}
	return height
}

// CalculateVisiblePersons computes how many persons fit in the list pane.
func CalculateVisiblePersons(paneHeight, headerLines int, cfg PaneConfig) int {
	lines := CalculateVisibleHeight(paneHeight, headerLines)
	per := cfg.LinesPerPerson
	if per < 1 {
		per = 1
	}
	if lines < per {
		return 1
	}
	return lines / per
}

// ClampScrollOffset keeps a scroll offset within the range that still fills
// the viewport.
func ClampScrollOffset(offset, total, viewportHeight int) int {
	if total <= viewportHeight || offset < 0 {
		return 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		return maxOffset
	}

	return offset
}
