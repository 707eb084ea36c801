package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/bizbook/internal/errors"
	"github.com/nikbrunner/bizbook/internal/logger"
	"github.com/nikbrunner/bizbook/internal/logic"
	"github.com/nikbrunner/bizbook/internal/tui/layout"
)

// App is the main bubbletea model: a command box over the person list and
// the tag-folder sidebar.
type App struct {
	manager      *logic.Manager
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig
	log          *logger.Logger

	input    textinput.Model
	recall   RecallState
	feedback Feedback

	helpVisible    bool
	scroll         int // first visible person
	sidebarPercent int

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Manager      *logic.Manager
	Keys         *KeyMap              // optional, uses default if nil
	Styles       *Styles              // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
	// SidebarWidthPercent is the share of the width given to folders.
	// Zero uses the layout default.
	SidebarWidthPercent int
	Logger              *logger.Logger
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	cfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		cfg = *params.LayoutConfig
	}

	log := params.Logger
	if log == nil {
		log = logger.Nop()
	}

	manager := params.Manager
	if manager == nil {
		manager = logic.NewManager(logic.ManagerParams{Logger: log})
	}

	return App{
		manager:        manager,
		keys:           keys,
		styles:         styles,
		layoutConfig:   cfg,
		log:            log.WithComponent("tui"),
		input:          newCommandInput(cfg),
		recall:         NewRecallState(cfg.Input.RecallLimit),
		sidebarPercent: params.SidebarWidthPercent,
		width:          80,
		height:         24,
	}
}

// WithDimensions returns a copy of the app sized to width x height.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// Input returns the current command box text.
func (a App) Input() string {
	return a.input.Value()
}

// Feedback returns the result of the last command.
func (a App) Feedback() Feedback {
	return a.feedback
}

// HelpVisible reports whether the help overlay is shown.
func (a App) HelpVisible() bool {
	return a.helpVisible
}

// Scroll returns the index of the first visible person.
func (a App) Scroll() int {
	return a.scroll
}

// Manager returns the logic manager the app drives.
func (a App) Manager() *logic.Manager {
	return a.manager
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.scroll = a.clampScroll(a.scroll)
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}

		if a.helpVisible {
			if key.Matches(msg, a.keys.CloseHelp) {
				a.helpVisible = false
			}
			return a, nil
		}

		switch {
		case key.Matches(msg, a.keys.Submit):
			return a.submit()

		case key.Matches(msg, a.keys.RecallPrev):
			if line, ok := a.recall.Prev(a.input.Value()); ok {
				a.setInput(line)
			}
			return a, nil

		case key.Matches(msg, a.keys.RecallNext):
			if line, ok := a.recall.Next(); ok {
				a.setInput(line)
			}
			return a, nil

		case key.Matches(msg, a.keys.ScrollUp):
			a.scroll = a.clampScroll(a.scroll - a.visiblePersons())
			return a, nil

		case key.Matches(msg, a.keys.ScrollDown):
			a.scroll = a.clampScroll(a.scroll + a.visiblePersons())
			return a, nil

		case key.Matches(msg, a.keys.Help):
			a.helpVisible = true
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submit runs the command box text. A rejected command keeps its text so it
// can be corrected; anything else clears the box.
func (a App) submit() (tea.Model, tea.Cmd) {
	line := a.input.Value()
	if strings.TrimSpace(line) == "" {
		return a, nil
	}
	a.recall.Push(line)

	res, err := a.manager.Execute(line)
	switch {
	case err == nil:
		a.feedback = Feedback{Text: res.Feedback}
	case errors.Is(err, errors.ErrStorage):
		// The command ran; only persisting it failed.
		a.feedback = Feedback{Text: res.Feedback + "\n" + err.Error(), IsError: true}
	default:
		a.feedback = Feedback{Text: err.Error(), IsError: true}
		return a, nil
	}

	a.input.Reset()
	a.scroll = 0

	if res.ShowHelp {
		a.helpVisible = true
	}
	if res.Exit {
		a.log.Info().Msg("exit requested")
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) setInput(line string) {
	a.input.SetValue(line)
	a.input.CursorEnd()
}

func (a App) visiblePersons() int {
	paneHeight := layout.CalculatePaneHeight(a.height, a.layoutConfig)
	return layout.CalculateVisiblePersons(paneHeight, listHeaderLines, a.layoutConfig.Pane)
}

func (a App) clampScroll(offset int) int {
	total := len(a.manager.Store().FilteredPersons())
	return layout.ClampScrollOffset(offset, total, a.visiblePersons())
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
