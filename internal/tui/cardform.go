package tui

import (
	"errors"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/slotask/internal/board"
	"github.com/thenoetrevino/slotask/internal/config"
	"github.com/thenoetrevino/slotask/internal/models"
)

const descriptionLines = 4

// cardDraft holds the values bound to the new card form
type cardDraft struct {
	boardID     int
	title       string
	description string
	priority    models.Priority
	confirm     bool
}

func (d *cardDraft) fields() models.CardFields {
	return models.CardFields{
		Title:       strings.TrimSpace(d.title),
		Description: strings.TrimSpace(d.description),
		Priority:    d.priority,
	}
}

func requireTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("title is required")
	}
	return nil
}

// newCardForm builds the form opened by the new card key. Every field writes
// through to d.
func newCardForm(d *cardDraft, c config.ColorScheme) *huh.Form {
	priorities := make([]huh.Option[models.Priority], 0, len(models.Priorities))
	for _, p := range models.Priorities {
		priorities = append(priorities, huh.NewOption(string(p), p))
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter card title...").
			CharLimit(board.MaxCardTitleLength).
			Validate(requireTitle).
			Value(&d.title),
		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Enter card description...").
			CharLimit(5000).
			Lines(descriptionLines).
			Value(&d.description),
		huh.NewSelect[models.Priority]().
			Key("priority").
			Title("Priority").
			Options(priorities...).
			Value(&d.priority),
		huh.NewConfirm().
			Key("confirm").
			Title("Create this card?").
			Affirmative("Yes").
			Negative("No").
			Value(&d.confirm),
	))
	return form.
		WithKeyMap(formKeyMap()).
		WithTheme(formTheme(c)).
		WithShowHelp(false)
}

// formKeyMap adds shift+enter to the newline keys of text fields
func formKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter / alt+enter / ctrl+j", "new line"),
	)
	return km
}

func formTheme(c config.ColorScheme) huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		accent := lipgloss.Color(c.Accent)
		subtle := lipgloss.Color(c.Subtle)
		normal := lipgloss.Color(c.Normal)
		errColor := lipgloss.Color(c.Error)

		t.Focused.Base = t.Focused.Base.BorderForeground(accent)
		t.Focused.Title = t.Focused.Title.Foreground(lipgloss.Color(c.Title)).Bold(true)
		t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errColor)
		t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errColor)
		t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accent)
		t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(lipgloss.Color(c.SelectedBorder))
		t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(normal)
		t.Focused.FocusedButton = t.Focused.FocusedButton.
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accent).
			Bold(true)
		t.Focused.BlurredButton = t.Focused.BlurredButton.
			Foreground(normal).
			Background(subtle)
		t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(subtle)
		t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(accent)

		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(subtle)
		return t
	})
}
