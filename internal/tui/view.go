package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/slotask/internal/models"
)

const (
	defaultBoardWidth = 28
	minBoardWidth     = 18
)

// View renders the boards side by side with a status line and key help
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.WindowTitle = "slotask - " + m.title
	view.Content = m.render()
	return view
}

func (m Model) render() string {
	var b strings.Builder

	header := m.styles.title.Render(m.title)
	if m.snap.Stale {
		header += " " + m.styles.errLine.Render("(may be out of date, press "+m.keys.Reload.Help().Key+" to reload)")
	}
	b.WriteString(header + "\n")

	if len(m.snap.Boards) == 0 {
		b.WriteString(m.styles.subtle.Render("No boards yet") + "\n")
	} else {
		width := m.boardWidth()
		columns := make([]string, len(m.snap.Boards))
		for i := range m.snap.Boards {
			columns[i] = m.renderBoard(i, width)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...) + "\n")
	}

	switch {
	case m.form != nil:
		name := "a removed board"
		if i := m.snap.BoardIndex(m.draft.boardID); i >= 0 {
			name = m.snap.Boards[i].Name
		}
		b.WriteString(m.styles.status.Render("New card on "+name) + "\n")
		b.WriteString(m.form.View() + "\n")
		b.WriteString(m.styles.subtle.Render(m.keys.Save.Help().Key+" save, "+m.keys.Cancel.Help().Key+" cancel") + "\n")
	case m.err != nil:
		b.WriteString(m.styles.errLine.Render(m.err.Error()) + "\n")
	case m.status != "":
		b.WriteString(m.styles.status.Render(m.status) + "\n")
	default:
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) boardWidth() int {
	if m.width == 0 {
		return defaultBoardWidth
	}
	// 4 columns of border and padding per board
	return max(minBoardWidth, m.width/len(m.snap.Boards)-4)
}

func (m Model) renderBoard(i, width int) string {
	bd := m.snap.Boards[i]
	cards := m.snap.CardsOn(bd.ID)

	lines := []string{m.styles.title.Render(fmt.Sprintf("%s (%d)", bd.Name, len(cards)))}
	if len(cards) == 0 {
		lines = append(lines, m.styles.subtle.Render("empty"))
	}
	for j, c := range cards {
		lines = append(lines, m.renderCard(c, i == m.boardIdx && j == m.cardIdx))
	}

	style := m.styles.board
	if i == m.boardIdx {
		style = m.styles.selBoard
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) renderCard(c models.Card, selected bool) string {
	label := fmt.Sprintf("#%d %s", c.ID, c.Title)
	priority := m.styles.priority(string(c.Priority)).Render("●")
	if selected {
		return m.styles.selCard.Render("> "+label) + " " + priority
	}
	return m.styles.card.Render("  "+label) + " " + priority
}
