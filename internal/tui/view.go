package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/bizbook/internal/command"
	"github.com/nikbrunner/bizbook/internal/model"
	"github.com/nikbrunner/bizbook/internal/tui/layout"
)

// listHeaderLines is the person list title line.
const listHeaderLines = 1

// renderView stacks the command box, feedback box, panes and status bar.
func (a App) renderView() string {
	if a.helpVisible {
		return a.renderHelpOverlay()
	}

	contentWidth := a.width - 4 // app padding left + right

	commandBox := a.renderCommandBox(contentWidth)
	feedbackBox := a.renderFeedbackBox(contentWidth)

	paneHeight := layout.CalculatePaneHeight(a.height, a.layoutConfig)
	panes := layout.CalculatePaneWidth(a.width, a.sidebarPercent, a.layoutConfig.Pane)
	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.renderSidebar(panes.SidebarWidth, paneHeight),
		a.renderPersonList(panes.ListWidth, paneHeight),
	)

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, commandBox, feedbackBox, columns, a.renderStatusBar(contentWidth)),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderCommandBox renders the input, bordered in red after a failed command.
func (a App) renderCommandBox(width int) string {
	style := a.styles.CommandBox
	if a.feedback.IsError {
		style = a.styles.CommandError
	}
	return style.Width(boxWidth(width)).Render(a.input.View())
}

// renderFeedbackBox renders the last result, wrapped to a fixed line count.
func (a App) renderFeedbackBox(width int) string {
	lineCount := a.layoutConfig.Feedback.Lines
	textWidth := boxWidth(width) - 2 // horizontal padding

	lines, _ := layout.WrapText(a.feedback.Text, textWidth, lineCount, a.layoutConfig.Text)
	for len(lines) < lineCount {
		lines = append(lines, "")
	}

	style := a.styles.Feedback
	if a.feedback.IsError {
		style = a.styles.FeedbackError
	}
	for i, l := range lines {
		lines[i] = style.Render(l)
	}

	return a.styles.Pane.Width(boxWidth(width)).Render(strings.Join(lines, "\n"))
}

// renderSidebar lists tag folders with live counts, then business features.
func (a App) renderSidebar(width, height int) string {
	store := a.manager.Store()
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)
	textCfg := a.layoutConfig.Text

	var lines []string
	lines = append(lines, a.styles.Title.Render("Folders"))

	folders := store.Folders()
	if len(folders) == 0 {
		lines = append(lines, a.styles.Empty.Render("  No folders"))
	}
	for _, f := range folders {
		prefix, style := "  ", a.styles.Folder
		if f.UserCreated {
			prefix, style = "* ", a.styles.FolderUser
		}
		suffix := " (" + strconv.Itoa(f.Count) + ")"
		text, _ := layout.TruncateWithPrefixSuffix(f.DisplayName, itemWidth, prefix, suffix, textCfg)
		lines = append(lines, style.Render(text))
	}

	features := store.Features()
	if len(features) > 0 {
		lines = append(lines, "", a.styles.Title.Render("Business features"))
		persons := store.Persons()
		for _, f := range features {
			suffix := " (" + strconv.Itoa(coveredCount(f, persons)) + ")"
			text, _ := layout.TruncateWithPrefixSuffix(f.String(), itemWidth, "  ", suffix, textCfg)
			lines = append(lines, a.styles.Tag.Render(text))
		}
	}

	if len(lines) > height {
		lines = lines[:height]
	}

	return a.styles.Pane.
		Width(width).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

// renderPersonList renders the numbered filtered persons from the scroll
// offset, two lines per person.
func (a App) renderPersonList(width, height int) string {
	store := a.manager.Store()
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)
	textCfg := a.layoutConfig.Text

	shown := rows(store.FilteredPersons())
	header := a.styles.Title.Render("Persons") +
		a.styles.Count.Render(fmt.Sprintf(" (%d of %d)", len(shown), len(store.Persons())))

	lines := []string{header}
	if len(shown) == 0 {
		lines = append(lines, a.styles.Empty.Render("No persons to show"))
	}

	visible := layout.CalculateVisiblePersons(height, listHeaderLines, a.layoutConfig.Pane)
	start, end := layout.CalculateVisibleListItems(visible, a.scroll, len(shown))
	for _, r := range shown[start:end] {
		label, truncated := layout.TruncateText(r.Label(), itemWidth, textCfg)
		line := a.styles.Name.Render(label)
		if tags := r.Tags(); tags != "" && !truncated {
			room := itemWidth - layout.VisibleLength(label) - 1
			if room > 0 {
				tags, _ = layout.TruncateText(tags, room, textCfg)
				line += " " + a.styles.Tag.Render(tags)
			}
		}
		detail, _ := layout.TruncateText("   "+r.Detail(), itemWidth, textCfg)
		lines = append(lines, line, a.styles.Detail.Render(detail))
	}

	return a.styles.Pane.
		Width(width).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

// renderStatusBar shows the active filter and the key hints.
func (a App) renderStatusBar(width int) string {
	filter := "Showing " + a.manager.Store().Filter().String()
	hints := a.renderHints(a.getContextualHints())

	gap := width - layout.VisibleLength(filter) - layout.VisibleLength(hints) - 2
	if gap < 2 {
		return a.styles.Status.Render(filter)
	}
	return a.styles.Status.Render(filter) + strings.Repeat(" ", gap) + hints
}

// renderHelpOverlay lists every command with its one-line summary.
func (a App) renderHelpOverlay() string {
	modalStyle := lipgloss.NewStyle().
		Padding(1, 2)

	modalWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal.DefaultWidthPercent, a.layoutConfig.Modal)
	wordWidth := a.layoutConfig.Modal.HelpWordColumnWidth
	summaryWidth := modalWidth - wordWidth - 2

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Commands") + "\n\n")
	for _, e := range command.Manual() {
		summary := strings.TrimPrefix(e.Summary(), e.Word+": ")
		summary, _ = layout.TruncateText(summary, summaryWidth, a.layoutConfig.Text)
		word := lipgloss.NewStyle().Width(wordWidth).Render(e.Word)
		b.WriteString(word + "  " + summary + "\n")
	}
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("Type " + command.WordMan + " <command> for its full usage."))
	b.WriteString("\n")
	b.WriteString(a.renderHintsInline(a.getContextualHints().All()))

	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Left,
		lipgloss.Top,
		modalStyle.Render(b.String()),
	)
}

// boxWidth converts an outer width into a lipgloss Width for a bordered box.
func boxWidth(outer int) int {
	w := outer - 2
	if w < 1 {
		return 1
	}
	return w
}

func coveredCount(f model.Feature, persons []model.Person) int {
	n := 0
	for _, p := range persons {
		if f.Covers(p) {
			n++
		}
	}
	return n
}
