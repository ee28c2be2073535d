package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/slotask/internal/config"
)

// keyMap binds the configured keys. Arrow keys always work for navigation.
type keyMap struct {
	PrevBoard key.Binding
	NextBoard key.Binding
	PrevCard  key.Binding
	NextCard  key.Binding

	MoveLeft  key.Binding
	MoveRight key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding

	NewCard key.Binding
	Reload  key.Binding
	Help    key.Binding
	Quit    key.Binding

	Save   key.Binding
	Cancel key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		PrevBoard: key.NewBinding(key.WithKeys(km.PrevBoard, "left"), key.WithHelp(km.PrevBoard+"/←", "prev board")),
		NextBoard: key.NewBinding(key.WithKeys(km.NextBoard, "right"), key.WithHelp(km.NextBoard+"/→", "next board")),
		PrevCard:  key.NewBinding(key.WithKeys(km.PrevCard, "up"), key.WithHelp(km.PrevCard+"/↑", "prev card")),
		NextCard:  key.NewBinding(key.WithKeys(km.NextCard, "down"), key.WithHelp(km.NextCard+"/↓", "next card")),

		MoveLeft:  key.NewBinding(key.WithKeys(km.MoveCardLeft), key.WithHelp(km.MoveCardLeft, "move to prev board")),
		MoveRight: key.NewBinding(key.WithKeys(km.MoveCardRight), key.WithHelp(km.MoveCardRight, "move to next board")),
		MoveUp:    key.NewBinding(key.WithKeys(km.MoveCardUp), key.WithHelp(km.MoveCardUp, "move up")),
		MoveDown:  key.NewBinding(key.WithKeys(km.MoveCardDown), key.WithHelp(km.MoveCardDown, "move down")),

		NewCard: key.NewBinding(key.WithKeys(km.NewCard), key.WithHelp(km.NewCard, "new card")),
		Reload:  key.NewBinding(key.WithKeys(km.Reload), key.WithHelp(km.Reload, "reload")),
		Help:    key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:    key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),

		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MoveLeft, k.MoveRight, k.NewCard, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevBoard, k.NextBoard, k.PrevCard, k.NextCard},
		{k.MoveLeft, k.MoveRight, k.MoveUp, k.MoveDown},
		{k.NewCard, k.Reload, k.Help, k.Quit},
	}
}
