package tui_test

import (
	"strings"
	"testing"

	"gotest.tools/v3/golden"

	"github.com/nikbrunner/bizbook/internal/tui"
	"github.com/nikbrunner/bizbook/internal/tui/layout"
)

// render strips styling and the trailing padding lipgloss.Place adds, so
// golden files hold only visible text.
func render(app tui.App) string {
	lines := strings.Split(layout.StripANSI(app.View()), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

func TestView_EmptyState_100x24(t *testing.T) {
	app := typeText(newApp().WithDimensions(100, 24), "list")

	golden.Assert(t, render(app), "golden/empty_state_100x24.golden")
}

func TestView_PersonsAndFeatures_100x24(t *testing.T) {
	app := newApp().WithDimensions(100, 24)
	app, _ = submit(app, addAmy)
	app, _ = submit(app, "biz f/supplier t/vendor")
	app = typeText(app, "list")

	golden.Assert(t, render(app), "golden/persons_and_features_100x24.golden")
}

func TestView_HelpOverlay_120x40(t *testing.T) {
	app := newApp().WithDimensions(120, 40)
	app, _ = submit(app, "help")

	golden.Assert(t, render(app), "golden/help_overlay_120x40.golden")
}

func TestView_SavedFolderFilter(t *testing.T) {
	app := newApp().WithDimensions(120, 30)
	app, _ = submit(app, addAmy)
	app, _ = submit(app, "list t/friends t/vip sf/")

	out := render(app)
	for _, want := range []string{
		"* friends & vip (0)",
		"Showing tagged friends & vip",
		"Persons (0 of 1)",
		"No persons to show",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}

func TestView_FeedbackIsShown(t *testing.T) {
	app := newApp().WithDimensions(120, 30)
	app, _ = submit(app, "undo")

	out := render(app)
	if !strings.Contains(out, "There is nothing to undo") {
		t.Errorf("expected undo failure in view:\n%s", out)
	}
}
