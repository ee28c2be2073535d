// Package tui implements the interactive board viewer. It renders the
// snapshots published by a board engine and turns key presses into engine
// operations.
package tui

import (
	"context"
	"errors"
	"fmt"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/slotask/internal/board"
	"github.com/thenoetrevino/slotask/internal/config"
	"github.com/thenoetrevino/slotask/internal/models"
)

var errNoBoards = errors.New("no boards yet; create one with 'slotask board create'")

// snapshotMsg carries a snapshot published by the engine
type snapshotMsg board.Snapshot

// opDoneMsg reports the end of an engine operation started by a key press
type opDoneMsg struct {
	snap     board.Snapshot
	err      error
	status   string
	selectID int
}

// Model is the bubbletea model of the board viewer
type Model struct {
	ctx     context.Context
	engine  *board.Engine
	title   string
	keys    keyMap
	styles  styles
	help    help.Model
	updates <-chan board.Snapshot

	snap     board.Snapshot
	boardIdx int
	cardIdx  int
	selected int // card under the cursor, 0 when its board is empty

	form    *huh.Form // new card form, nil when closed
	draft   *cardDraft
	pending int
	status  string
	err     error
	width   int
}

// New creates a viewer over engine. The subscription ends with ctx.
func New(ctx context.Context, engine *board.Engine, title string, cfg *config.Config) Model {
	m := Model{
		ctx:     ctx,
		engine:  engine,
		title:   title,
		keys:    newKeyMap(cfg.KeyMappings),
		styles:  newStyles(cfg.ColorScheme),
		help:    help.New(),
		updates: engine.Subscribe(ctx),
		snap:    engine.Snapshot(),
	}
	m.follow()
	return m
}

// Init starts listening for engine snapshots
func (m Model) Init() tea.Cmd {
	return waitForSnapshot(m.updates)
}

func waitForSnapshot(ch <-chan board.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotMsg(snap)
	}
}

// Update handles window, snapshot and key messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.SetWidth(msg.Width)
		return m, nil

	case snapshotMsg:
		m.apply(board.Snapshot(msg))
		return m, waitForSnapshot(m.updates)

	case opDoneMsg:
		m.pending--
		if msg.selectID != 0 {
			m.selected = msg.selectID
		}
		m.apply(msg.snap)
		m.err = msg.err
		m.status = ""
		if msg.err == nil {
			m.status = msg.status
		}
		return m, nil

	case tea.KeyPressMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.handleKey(msg)
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.PrevBoard):
		m.focusBoard(m.boardIdx - 1)
	case key.Matches(msg, m.keys.NextBoard):
		m.focusBoard(m.boardIdx + 1)
	case key.Matches(msg, m.keys.PrevCard):
		m.selectAt(m.cardIdx - 1)
	case key.Matches(msg, m.keys.NextCard):
		m.selectAt(m.cardIdx + 1)
	case key.Matches(msg, m.keys.MoveLeft):
		return m.moveAcross(-1)
	case key.Matches(msg, m.keys.MoveRight):
		return m.moveAcross(1)
	case key.Matches(msg, m.keys.MoveUp):
		return m.moveWithin(-1)
	case key.Matches(msg, m.keys.MoveDown):
		return m.moveWithin(1)
	case key.Matches(msg, m.keys.NewCard):
		if len(m.snap.Boards) == 0 {
			m.err = errNoBoards
			return m, nil
		}
		m.err = nil
		m.draft = &cardDraft{
			boardID:  m.snap.Boards[m.boardIdx].ID,
			priority: models.DefaultPriority,
			confirm:  true,
		}
		m.form = newCardForm(m.draft, m.styles.scheme)
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Reload):
		m.pending++
		return m, m.run(func() (string, int, error) {
			return "Reloaded", 0, m.engine.Load(m.ctx)
		})
	}
	return m, nil
}

// updateForm forwards msg to the new card form. Esc discards the form and
// the save key submits it from any field.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(k, m.keys.Cancel):
			m.closeForm()
			return m, nil
		case key.Matches(k, m.keys.Save):
			if requireTitle(m.draft.title) != nil {
				return m, nil
			}
			m.draft.confirm = true
			return m.submitCard()
		}
	}

	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.submitCard()
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

// submitCard closes the form and creates the drafted card when it was
// confirmed with a title
func (m Model) submitCard() (tea.Model, tea.Cmd) {
	draft := m.draft
	m.closeForm()

	fields := draft.fields()
	if !draft.confirm || fields.Title == "" {
		return m, nil
	}

	m.pending++
	return m, m.run(func() (string, int, error) {
		card, err := m.engine.CreateCard(m.ctx, draft.boardID, fields)
		return fmt.Sprintf("Created #%d", card.ID), card.ID, err
	})
}

func (m *Model) closeForm() {
	m.form = nil
	m.draft = nil
}

// moveAcross moves the selected card to the neighbouring board, keeping its
// row when the destination is long enough
func (m Model) moveAcross(delta int) (tea.Model, tea.Cmd) {
	dest := m.boardIdx + delta
	if m.selected == 0 || dest < 0 || dest >= len(m.snap.Boards) {
		return m, nil
	}
	destBoard := m.snap.Boards[dest]
	index := min(m.cardIdx, len(m.snap.CardsOn(destBoard.ID)))
	return m.move(destBoard.ID, index, fmt.Sprintf("Moved #%d to %s", m.selected, destBoard.Name))
}

func (m Model) moveWithin(delta int) (tea.Model, tea.Cmd) {
	index := m.cardIdx + delta
	if m.selected == 0 || index < 0 || index >= len(m.currentCards()) {
		return m, nil
	}
	return m.move(m.snap.Boards[m.boardIdx].ID, index, "")
}

func (m Model) move(destBoardID, destIndex int, status string) (tea.Model, tea.Cmd) {
	// Commands are built from the snapshot on screen, so wait for the
	// previous operation to land first
	if m.pending > 0 {
		return m, nil
	}
	cmd, ok := m.snap.MoveCommandFor(m.selected, destBoardID, destIndex)
	if !ok {
		return m, nil
	}

	m.pending++
	m.err = nil
	m.status = "Saving..."
	return m, m.run(func() (string, int, error) {
		return status, 0, m.engine.Move(m.ctx, cmd)
	})
}

// run executes op off the update loop and reports back with the engine's
// snapshot at the time it finished
func (m Model) run(op func() (status string, selectID int, err error)) tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		status, selectID, err := op()
		if err != nil {
			selectID = 0
		}
		return opDoneMsg{snap: engine.Snapshot(), err: err, status: status, selectID: selectID}
	}
}

// apply installs snap unless a newer one is already on screen
func (m *Model) apply(snap board.Snapshot) {
	if snap.Version < m.snap.Version {
		return
	}
	m.snap = snap
	m.follow()
}

// follow puts the cursor back on the selected card, or clamps it when the
// card is gone
func (m *Model) follow() {
	if len(m.snap.Boards) == 0 {
		m.boardIdx, m.cardIdx, m.selected = 0, 0, 0
		return
	}
	if m.selected != 0 {
		if boardID, index, ok := m.snap.FindCard(m.selected); ok {
			m.boardIdx = m.snap.BoardIndex(boardID)
			m.cardIdx = index
			return
		}
	}
	m.boardIdx = max(0, min(m.boardIdx, len(m.snap.Boards)-1))
	m.selectAt(m.cardIdx)
}

func (m *Model) focusBoard(index int) {
	if index < 0 || index >= len(m.snap.Boards) {
		return
	}
	m.boardIdx = index
	m.selectAt(m.cardIdx)
}

func (m *Model) selectAt(index int) {
	cards := m.currentCards()
	if len(cards) == 0 {
		m.cardIdx, m.selected = 0, 0
		return
	}
	m.cardIdx = max(0, min(index, len(cards)-1))
	m.selected = cards[m.cardIdx].ID
}

func (m Model) currentCards() []models.Card {
	if len(m.snap.Boards) == 0 {
		return nil
	}
	return m.snap.CardsOn(m.snap.Boards[m.boardIdx].ID)
}

// Selected returns the ID of the card under the cursor, or 0
func (m Model) Selected() int {
	return m.selected
}
