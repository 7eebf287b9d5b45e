package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/misaki/drillbox/internal/ui/theme"
)

// ProgressBar renders daily-mission progress as a segmented bar.
type ProgressBar struct {
	Done  int
	Goal  int
	Width int
}

// NewProgressBar creates a progress bar of the given width in cells.
func NewProgressBar(done, goal, width int) ProgressBar {
	if width <= 0 {
		width = 20
	}
	return ProgressBar{Done: done, Goal: goal, Width: width}
}

// View renders the bar with a done/goal label.
func (p ProgressBar) View() string {
	if p.Goal <= 0 {
		return ""
	}

	done := p.Done
	if done > p.Goal {
		done = p.Goal
	}
	filled := done * p.Width / p.Goal

	bar := lipgloss.NewStyle().Foreground(theme.Success).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", p.Width-filled))

	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(" %d/%d", done, p.Goal))

	return bar + label
}
