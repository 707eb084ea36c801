package tui_test

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/bizbook/internal/logic"
	"github.com/nikbrunner/bizbook/internal/model"
	"github.com/nikbrunner/bizbook/internal/tui"
)

const addAmy = "add n/Amy Bee p/11111111 e/amy@example.com a/Block 312, Amy Street 1 t/friends"

func newApp() tui.App {
	return tui.NewApp(tui.AppParams{Manager: logic.NewManager(logic.ManagerParams{})})
}

func typeText(app tui.App, s string) tui.App {
	updated, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return updated.(tui.App)
}

func press(app tui.App, k tea.KeyType) (tui.App, tea.Cmd) {
	updated, cmd := app.Update(tea.KeyMsg{Type: k})
	return updated.(tui.App), cmd
}

func submit(app tui.App, line string) (tui.App, tea.Cmd) {
	return press(typeText(app, line), tea.KeyEnter)
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

type failingStorage struct{}

func (failingStorage) Load() (*model.AddressBook, error) { return model.NewAddressBook(), nil }
func (failingStorage) Save(*model.AddressBook) error     { return stderrors.New("disk full") }

func TestApp_SubmitRunsCommand(t *testing.T) {
	app := newApp()

	app, _ = submit(app, addAmy)

	if got := app.Feedback().Text; got != "New person added: "+app.Manager().Store().Persons()[0].String() {
		t.Errorf("unexpected feedback %q", got)
	}
	if app.Feedback().IsError {
		t.Error("expected success feedback")
	}
	if app.Input() != "" {
		t.Errorf("expected input to be cleared, got %q", app.Input())
	}
	if n := len(app.Manager().Store().Persons()); n != 1 {
		t.Errorf("expected 1 person, got %d", n)
	}
}

func TestApp_FailedCommandKeepsInput(t *testing.T) {
	app := newApp()

	app, _ = submit(app, "add n/Amy")

	if !app.Feedback().IsError {
		t.Error("expected error feedback")
	}
	if app.Input() != "add n/Amy" {
		t.Errorf("expected input to be kept, got %q", app.Input())
	}
}

func TestApp_BlankSubmitIsIgnored(t *testing.T) {
	app := newApp()

	app, _ = submit(app, "   ")

	if app.Feedback().Text != "" {
		t.Errorf("expected no feedback, got %q", app.Feedback().Text)
	}
}

func TestApp_StorageFailureIsReported(t *testing.T) {
	app := tui.NewApp(tui.AppParams{
		Manager: logic.NewManager(logic.ManagerParams{Storage: failingStorage{}}),
	})

	app, _ = submit(app, addAmy)

	fb := app.Feedback()
	if !fb.IsError {
		t.Error("expected error feedback")
	}
	if !strings.Contains(fb.Text, "New person added") || !strings.Contains(fb.Text, "disk full") {
		t.Errorf("expected result and storage error, got %q", fb.Text)
	}
	if app.Input() != "" {
		t.Errorf("expected input to be cleared, got %q", app.Input())
	}
}

func TestApp_HelpCommandOpensOverlay(t *testing.T) {
	app := newApp()

	app, _ = submit(app, "help")
	if !app.HelpVisible() {
		t.Fatal("expected help overlay after help command")
	}

	// Typing while the overlay is open does nothing.
	app = typeText(app, "x")
	if app.Input() != "" {
		t.Errorf("expected input untouched while help is open, got %q", app.Input())
	}

	app, _ = press(app, tea.KeyEsc)
	if app.HelpVisible() {
		t.Error("expected esc to close help")
	}
}

func TestApp_F1TogglesHelp(t *testing.T) {
	app := newApp()

	app, _ = press(app, tea.KeyF1)
	if !app.HelpVisible() {
		t.Fatal("expected f1 to open help")
	}
	app, _ = press(app, tea.KeyF1)
	if app.HelpVisible() {
		t.Error("expected f1 to close help")
	}
}

func TestApp_ExitCommandQuits(t *testing.T) {
	app := newApp()

	_, cmd := submit(app, "exit")

	if !isQuit(cmd) {
		t.Error("expected quit command after exit")
	}
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := newApp()

	_, cmd := press(app, tea.KeyCtrlC)

	if !isQuit(cmd) {
		t.Error("expected quit command after ctrl+c")
	}
}

func TestApp_RecallPreviousCommands(t *testing.T) {
	app := newApp()
	app, _ = submit(app, "list")
	app, _ = submit(app, "stats")

	steps := []struct {
		key  tea.KeyType
		want string
	}{
		{tea.KeyUp, "stats"},
		{tea.KeyUp, "list"},
		{tea.KeyUp, "list"}, // oldest stays
		{tea.KeyDown, "stats"},
		{tea.KeyDown, ""}, // back to the empty draft
	}
	for i, s := range steps {
		app, _ = press(app, s.key)
		if app.Input() != s.want {
			t.Errorf("step %d: input = %q, want %q", i, app.Input(), s.want)
		}
	}
}

func TestApp_RecallKeepsDraft(t *testing.T) {
	app := newApp()
	app, _ = submit(app, "list")
	app = typeText(app, "fin")

	app, _ = press(app, tea.KeyUp)
	if app.Input() != "list" {
		t.Errorf("expected recalled line, got %q", app.Input())
	}
	app, _ = press(app, tea.KeyDown)
	if app.Input() != "fin" {
		t.Errorf("expected draft to be restored, got %q", app.Input())
	}
}

func TestApp_RecallIncludesFailedCommands(t *testing.T) {
	app := newApp()
	app, _ = submit(app, "add n/Amy")
	app, _ = press(app, tea.KeyEnter) // resubmit the kept text

	app, _ = press(app, tea.KeyUp)
	if app.Input() != "add n/Amy" {
		t.Errorf("expected failed line to be recallable, got %q", app.Input())
	}
}

func TestApp_ScrollPersonList(t *testing.T) {
	m := logic.NewManager(logic.ManagerParams{})
	for i := 0; i < 12; i++ {
		line := fmt.Sprintf("add n/Person %d p/9000%04d e/p%d@example.com a/Street %d", i, i, i, i)
		if _, err := m.Execute(line); err != nil {
			t.Fatalf("%s: %v", line, err)
		}
	}
	// 24 rows leave room for five persons.
	app := tui.NewApp(tui.AppParams{Manager: m}).WithDimensions(120, 24)

	app, _ = press(app, tea.KeyPgDown)
	if app.Scroll() != 5 {
		t.Errorf("after pgdown, scroll = %d, want 5", app.Scroll())
	}
	app, _ = press(app, tea.KeyPgDown)
	if app.Scroll() != 7 {
		t.Errorf("after second pgdown, scroll = %d, want 7 (last page)", app.Scroll())
	}
	app, _ = press(app, tea.KeyPgUp)
	if app.Scroll() != 2 {
		t.Errorf("after pgup, scroll = %d, want 2", app.Scroll())
	}

	app, _ = submit(app, "list")
	if app.Scroll() != 0 {
		t.Errorf("expected scroll reset after a command, got %d", app.Scroll())
	}
}
