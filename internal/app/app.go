// Package app wires the screens into the root Bubble Tea program.
package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/misaki/drillbox/internal/catalog"
	"github.com/misaki/drillbox/internal/quiz"
	"github.com/misaki/drillbox/internal/router"
	"github.com/misaki/drillbox/internal/screens/home"
	"github.com/misaki/drillbox/internal/screens/session"
	"github.com/misaki/drillbox/internal/store"
	"github.com/misaki/drillbox/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Catalog  *catalog.Catalog
	Progress store.ProgressRepo
	Events   store.EventRepo

	// StartGame jumps straight into a session for the given game id,
	// skipping the catalog menu. Empty means start at the menu.
	StartGame string
	StartMode quiz.Mode
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	width    int
	height   int
	startCmd tea.Cmd
}

// newAppModel creates the model with the home screen at the bottom of
// the stack, plus an optional initial session on top.
func newAppModel(opts Options) (AppModel, error) {
	homeScreen := home.New(opts.Catalog, opts.Progress, opts.Events)
	r := router.New(homeScreen)

	m := AppModel{router: r}

	if opts.StartGame != "" {
		game, err := opts.Catalog.Get(opts.StartGame)
		if err != nil {
			return AppModel{}, err
		}
		mode := opts.StartMode
		if mode == "" {
			mode = quiz.ModePractice
		}
		scr, err := session.New(game, mode, opts.Progress, opts.Events)
		if err != nil {
			return AppModel{}, err
		}
		m.startCmd = r.Push(scr)
	}

	return m, nil
}

func (m AppModel) Init() tea.Cmd {
	return m.startCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, m.router.Pop()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()

	title := ""
	if active != nil {
		title = active.Title()
	}
	status := ""
	if sp, ok := active.(router.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(title, status, m.width)

	hints := []layout.KeyHint{}
	if hp, ok := active.(router.KeyHintProvider); ok {
		hints = append(hints, hp.KeyHints()...)
	} else if m.router.Depth() > 1 {
		hints = append(hints, layout.KeyHint{Key: "esc", Description: "back"})
	}
	hints = append(hints, layout.KeyHint{Key: "ctrl+c", Description: "quit"})
	footer := layout.RenderFooter(hints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
