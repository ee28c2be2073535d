package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/slotask/internal/config"
)

type styles struct {
	scheme config.ColorScheme

	title    lipgloss.Style
	subtle   lipgloss.Style
	errLine  lipgloss.Style
	status   lipgloss.Style
	board    lipgloss.Style
	selBoard lipgloss.Style
	card     lipgloss.Style
	selCard  lipgloss.Style
}

func newStyles(c config.ColorScheme) styles {
	s := styles{scheme: c}

	s.title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Title))
	s.subtle = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Subtle))
	s.errLine = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Error))
	s.status = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Accent))

	s.board = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.BoardBorder)).
		Padding(0, 1)
	s.selBoard = s.board.BorderForeground(lipgloss.Color(c.SelectedBorder))

	s.card = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Normal))
	s.selCard = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.SelectedBorder))

	return s
}

func (s styles) priority(p string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.scheme.PriorityColor(p)))
}
