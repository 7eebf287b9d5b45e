// Package summary shows the end-of-session score card.
package summary

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/misaki/drillbox/internal/router"
	"github.com/misaki/drillbox/internal/ui/layout"
	"github.com/misaki/drillbox/internal/ui/theme"
)

// Model is the session summary screen.
type Model struct {
	gameTitle   string
	correct     int
	total       int
	bestStreak  int
	goalReached bool
}

// New builds a summary screen from final session counters.
func New(gameTitle string, correct, total, bestStreak int, goalReached bool) *Model {
	return &Model{
		gameTitle:   gameTitle,
		correct:     correct,
		total:       total,
		bestStreak:  bestStreak,
		goalReached: goalReached,
	}
}

// Init returns nil.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Title returns the screen name for the header.
func (m *Model) Title() string {
	return "Well done!"
}

// KeyHints lists the footer bindings.
func (m *Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "enter", Description: "back to games"}}
}

// Update returns to the catalog on enter or esc.
func (m *Model) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return m, func() tea.Msg { return router.PopMsg{} }
		}
	}
	return m, nil
}

// View renders the score card.
func (m *Model) View(width, height int) string {
	body := theme.Title.Render(m.gameTitle) + "\n\n"

	if m.goalReached {
		body += theme.Good.Render("★ Daily mission complete! ★") + "\n\n"
	}

	body += theme.Body.Render(fmt.Sprintf("Correct answers:  %d / %d", m.correct, m.total)) + "\n"
	body += theme.Body.Render(fmt.Sprintf("Best streak:      %d", m.bestStreak)) + "\n"

	card := theme.Card.Width(40).Align(lipgloss.Center).Render(body)
	return layout.Center(card, width, height)
}
