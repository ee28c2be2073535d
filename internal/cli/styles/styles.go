// Package styles renders human-readable CLI output with lipgloss
package styles

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/slotask/internal/board"
	"github.com/thenoetrevino/slotask/internal/config"
	"github.com/thenoetrevino/slotask/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Board columns in the board view
	BoardStyle lipgloss.Style
	BoardWidth = 28

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Priority:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Comments"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	scheme config.ColorScheme
)

func init() {
	Init(*config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	scheme = colors

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	BoardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.BoardBorder)).
		Padding(0, 1).
		Width(BoardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.PriorityLow))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Error))
}

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// Field renders "Label: value"
func Field(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// Success renders a one-line confirmation
func Success(format string, args ...any) string {
	return SuccessStyle.Render("✓") + " " + fmt.Sprintf(format, args...)
}

// RenderPriority renders a priority name in its scheme color
func RenderPriority(p models.Priority) string {
	return ColoredText(string(p), scheme.PriorityColor(string(p)))
}

// RenderTags renders tags as "[tag]" chips
func RenderTags(tags []string) string {
	chips := make([]string, len(tags))
	for i, tag := range tags {
		chips[i] = ColoredText("["+tag+"]", scheme.Accent)
	}
	return strings.Join(chips, " ")
}

// RenderCardLine renders a card as one line of a list
func RenderCardLine(c models.Card) string {
	line := fmt.Sprintf("#%d %s %s", c.ID, c.Title, RenderPriority(c.Priority))
	if len(c.Tags) > 0 {
		line += " " + RenderTags(c.Tags)
	}
	return line
}

// RenderCardDetail renders a card with its comments inside a bordered box
func RenderCardDetail(d *models.CardDetail) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("#%d %s", d.ID, d.Title)) + "\n\n")
	b.WriteString(Field("Board", fmt.Sprintf("%s (position %d)", d.BoardName, d.Position)) + "\n")
	b.WriteString(Field("Priority", RenderPriority(d.Priority)) + "\n")
	if d.DueDate != nil {
		b.WriteString(Field("Due", d.DueDate.Format(time.DateOnly)) + "\n")
	}
	if len(d.Tags) > 0 {
		b.WriteString(Field("Tags", RenderTags(d.Tags)) + "\n")
	}
	if d.Description != "" {
		b.WriteString(SectionStyle.Render("Description") + "\n")
		b.WriteString(ValueStyle.Render(d.Description) + "\n")
	}
	if len(d.Comments) > 0 {
		b.WriteString(SectionStyle.Render(fmt.Sprintf("Comments (%d)", len(d.Comments))) + "\n")
		for _, c := range d.Comments {
			b.WriteString(SubtitleStyle.Render(c.AuthorID+" · "+c.CreatedAt.Format(time.DateTime)) + "\n")
			b.WriteString(ValueStyle.Render(c.Content) + "\n")
		}
	}
	return CardStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderBoard lays out every board of a snapshot side by side
func RenderBoard(projectName string, snap board.Snapshot) string {
	header := TitleStyle.Render(projectName)
	if snap.Stale {
		header += " " + ErrorStyle.Render("(may be out of date)")
	}
	if len(snap.Boards) == 0 {
		return header + "\n" + SubtitleStyle.Render("No boards yet")
	}

	columns := make([]string, len(snap.Boards))
	for i, b := range snap.Boards {
		cards := snap.CardsOn(b.ID)
		lines := []string{TitleStyle.Render(fmt.Sprintf("%s (%d)", b.Name, len(cards)))}
		if len(cards) == 0 {
			lines = append(lines, SubtitleStyle.Render("empty"))
		}
		for _, c := range cards {
			lines = append(lines, RenderCardLine(c))
		}
		columns[i] = BoardStyle.Render(strings.Join(lines, "\n"))
	}

	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}
