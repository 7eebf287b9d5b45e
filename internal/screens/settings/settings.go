// Package settings edits the persisted preferences.
package settings

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/misaki/drillbox/internal/router"
	"github.com/misaki/drillbox/internal/store"
	"github.com/misaki/drillbox/internal/ui/layout"
	"github.com/misaki/drillbox/internal/ui/theme"
)

// Model is the settings screen.
type Model struct {
	progress store.ProgressRepo
	sound    bool
	ctx      context.Context
}

// New builds the settings screen with the current preferences loaded.
func New(progress store.ProgressRepo) *Model {
	ctx := context.Background()
	return &Model{
		progress: progress,
		sound:    progress.LoadSound(ctx),
		ctx:      ctx,
	}
}

// Init returns nil.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Title returns the screen name for the header.
func (m *Model) Title() string {
	return "Settings"
}

// KeyHints lists the footer bindings.
func (m *Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "enter", Description: "toggle"},
		{Key: "esc", Description: "back"},
	}
}

// Update toggles the sound preference.
func (m *Model) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", " ":
			m.sound = !m.sound
			m.progress.SaveSound(m.ctx, m.sound)
		}
	}
	return m, nil
}

// View renders the preference list.
func (m *Model) View(width, height int) string {
	state := theme.Bad.Render("off")
	if m.sound {
		state = theme.Good.Render("on")
	}

	body := theme.Title.Render("Settings") + "\n\n"
	body += theme.Selected.Render("  ▸ Sound  ") + state + "\n\n"
	body += theme.Hint.Render("Rings the terminal bell on answers")

	card := theme.Card.Width(44).Align(lipgloss.Center).Render(body)
	return layout.Center(card, width, height)
}
