// Package home is the game catalog screen, the root of the TUI.
package home

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/misaki/drillbox/internal/catalog"
	"github.com/misaki/drillbox/internal/quiz"
	"github.com/misaki/drillbox/internal/router"
	"github.com/misaki/drillbox/internal/screens/session"
	"github.com/misaki/drillbox/internal/screens/settings"
	"github.com/misaki/drillbox/internal/store"
	"github.com/misaki/drillbox/internal/ui/components"
	"github.com/misaki/drillbox/internal/ui/layout"
	"github.com/misaki/drillbox/internal/ui/theme"
)

// Model is the home screen: a menu of games plus settings and quit.
type Model struct {
	catalog  *catalog.Catalog
	progress store.ProgressRepo
	events   store.EventRepo

	menu  components.Menu
	games []catalog.Game
}

// New builds the home screen.
func New(cat *catalog.Catalog, progress store.ProgressRepo, events store.EventRepo) *Model {
	m := &Model{
		catalog:  cat,
		progress: progress,
		events:   events,
		games:    cat.Games(),
	}

	items := make([]components.MenuItem, 0, len(m.games)+2)
	for _, g := range m.games {
		game := g
		detail := game.Description
		if game.Grade != "" {
			detail = fmt.Sprintf("%s (grade %s)", detail, game.Grade)
		}
		items = append(items, components.MenuItem{
			Label:  game.Title,
			Detail: detail,
			Action: func() tea.Cmd { return m.start(game, quiz.ModePractice) },
		})
	}
	items = append(items,
		components.MenuItem{
			Label: "Settings",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushMsg{Screen: settings.New(m.progress)}
				}
			},
		},
		components.MenuItem{
			Label:  "Quit",
			Action: func() tea.Cmd { return tea.Quit },
		},
	)

	m.menu = components.NewMenu(items)
	return m
}

// Init returns nil.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Title returns the screen name for the header.
func (m *Model) Title() string {
	return "Pick a game"
}

// KeyHints lists the footer bindings.
func (m *Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "move"},
		{Key: "enter", Description: "practice"},
		{Key: "d", Description: "daily mission"},
		{Key: "q", Description: "quit"},
	}
}

// Update handles menu navigation plus the daily-mission shortcut.
func (m *Model) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "d":
			if m.menu.Selected < len(m.games) {
				return m, m.start(m.games[m.menu.Selected], quiz.ModeDaily)
			}
			return m, nil
		case "q":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

// start pushes a session screen for the game. A game that can't build
// an engine is a catalog bug; the menu just stays put.
func (m *Model) start(game catalog.Game, mode quiz.Mode) tea.Cmd {
	scr, err := session.New(game, mode, m.progress, m.events)
	if err != nil {
		return nil
	}
	return func() tea.Msg {
		return router.PushMsg{Screen: scr}
	}
}

// refreshDaily updates each game's detail line with today's mission
// progress. Reads go through the absorbing progress repo, so a broken
// database just shows no badge.
func (m *Model) refreshDaily() {
	ctx := context.Background()
	for i, g := range m.games {
		detail := g.Description
		if g.Grade != "" {
			detail = fmt.Sprintf("%s (grade %s)", detail, g.Grade)
		}
		goal := g.DailyGoal
		if goal == 0 {
			goal = quiz.DefaultDailyGoal
		}
		if rec := m.progress.LoadDaily(ctx, g.ID); rec.Done > 0 {
			badge := fmt.Sprintf("daily %d/%d", rec.Done, goal)
			if rec.Done >= goal {
				badge = "daily done ★"
			}
			detail = fmt.Sprintf("%s ⋅ %s", detail, badge)
		}
		m.menu.Items[i].Detail = detail
	}
}

// View renders the menu centered in the content area.
func (m *Model) View(width, height int) string {
	m.refreshDaily()

	body := theme.Title.Render("What do you want to play?") + "\n\n"
	body += m.menu.View()

	card := theme.Card.Width(64).Align(lipgloss.Left).Render(body)
	return layout.Center(card, width, height)
}
