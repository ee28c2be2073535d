package tui

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/slotask/internal/board"
	"github.com/thenoetrevino/slotask/internal/config"
	"github.com/thenoetrevino/slotask/internal/database"
	"github.com/thenoetrevino/slotask/internal/models"
	"github.com/thenoetrevino/slotask/internal/testutil"
)

type fixture struct {
	db    *sql.DB
	todo  int
	done  int
	cards []int
	m     Model
}

// setupModel builds a viewer over Todo [a b c] and an empty Done board
func setupModel(t *testing.T) *fixture {
	t.Helper()
	db := testutil.SetupTestDB(t)
	projectID := testutil.CreateTestProject(t, db, "Viewer")
	f := &fixture{db: db}
	f.todo = testutil.CreateTestBoard(t, db, projectID, "Todo")
	f.done = testutil.CreateTestBoard(t, db, projectID, "Done")
	for _, title := range []string{"a", "b", "c"} {
		f.cards = append(f.cards, testutil.CreateTestCard(t, db, f.todo, title))
	}

	engine := board.New(database.NewRepository(db), projectID)
	if err := engine.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	f.m = New(ctx, engine, "Viewer", config.Default())
	return f
}

func keyPress(s string) tea.KeyPressMsg {
	r := []rune(s)[0]
	return tea.KeyPressMsg(tea.Key{Code: r, Text: s})
}

// send delivers msg and runs the resulting command once, feeding its
// message back into the model
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd == nil {
		return m
	}
	if done, ok := cmd().(opDoneMsg); ok {
		next, _ = m.Update(done)
		m = next.(Model)
	}
	return m
}

func cardIDs(m Model, boardID int) []int {
	var ids []int
	for _, c := range m.snap.CardsOn(boardID) {
		ids = append(ids, c.ID)
	}
	return ids
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNew_SelectsFirstCard(t *testing.T) {
	f := setupModel(t)
	if f.m.Selected() != f.cards[0] {
		t.Errorf("Selected() = %d, want %d", f.m.Selected(), f.cards[0])
	}
}

func TestNavigation(t *testing.T) {
	f := setupModel(t)
	m := f.m

	m = send(t, m, keyPress("j"))
	m = send(t, m, keyPress("j"))
	if m.Selected() != f.cards[2] {
		t.Errorf("after jj Selected() = %d, want %d", m.Selected(), f.cards[2])
	}

	m = send(t, m, keyPress("j"))
	if m.Selected() != f.cards[2] {
		t.Errorf("cursor should stop at the last card, got %d", m.Selected())
	}

	m = send(t, m, tea.KeyPressMsg(tea.Key{Code: tea.KeyRight}))
	if m.boardIdx != 1 || m.Selected() != 0 {
		t.Errorf("on empty Done board: boardIdx = %d, Selected() = %d", m.boardIdx, m.Selected())
	}

	m = send(t, m, keyPress("l"))
	if m.boardIdx != 1 {
		t.Errorf("cursor should stop at the last board, boardIdx = %d", m.boardIdx)
	}

	m = send(t, m, keyPress("h"))
	if m.boardIdx != 0 || m.Selected() != f.cards[0] {
		t.Errorf("back on Todo: boardIdx = %d, Selected() = %d", m.boardIdx, m.Selected())
	}
}

func TestMoveCardToNextBoard(t *testing.T) {
	f := setupModel(t)
	m := send(t, f.m, keyPress("j"))

	m = send(t, m, keyPress("L"))
	if m.err != nil {
		t.Fatalf("move error = %v", m.err)
	}
	if !equalIDs(cardIDs(m, f.done), []int{f.cards[1]}) {
		t.Errorf("Done = %v, want [%d]", cardIDs(m, f.done), f.cards[1])
	}
	if !equalIDs(cardIDs(m, f.todo), []int{f.cards[0], f.cards[2]}) {
		t.Errorf("Todo = %v", cardIDs(m, f.todo))
	}
	if m.boardIdx != 1 || m.Selected() != f.cards[1] {
		t.Errorf("cursor should follow the card: boardIdx = %d, Selected() = %d", m.boardIdx, m.Selected())
	}

	boardID, pos := testutil.CardPosition(t, f.db, f.cards[1])
	if boardID != f.done || pos != 0 {
		t.Errorf("stored position = (%d, %d), want (%d, 0)", boardID, pos, f.done)
	}
	if !strings.Contains(m.status, "Done") {
		t.Errorf("status = %q, want it to name the destination", m.status)
	}
}

func TestMoveCardWithinBoard(t *testing.T) {
	f := setupModel(t)

	m := send(t, f.m, keyPress("J"))
	want := []int{f.cards[1], f.cards[0], f.cards[2]}
	if !equalIDs(cardIDs(m, f.todo), want) {
		t.Errorf("Todo = %v, want %v", cardIDs(m, f.todo), want)
	}
	if m.cardIdx != 1 {
		t.Errorf("cardIdx = %d, want 1", m.cardIdx)
	}

	m = send(t, m, keyPress("K"))
	m = send(t, m, keyPress("K"))
	if !equalIDs(cardIDs(m, f.todo), f.cards) {
		t.Errorf("Todo = %v, want %v", cardIDs(m, f.todo), f.cards)
	}
	if m.cardIdx != 0 {
		t.Errorf("cardIdx = %d, want 0 after moving past the top", m.cardIdx)
	}
}

func TestMoveFromEdgeIsIgnored(t *testing.T) {
	f := setupModel(t)
	next, cmd := f.m.Update(keyPress("H"))
	if cmd != nil {
		t.Error("moving left from the first board should not start an operation")
	}
	if next.(Model).pending != 0 {
		t.Error("pending should stay 0")
	}
}

func TestMoveWhilePendingIsIgnored(t *testing.T) {
	f := setupModel(t)
	next, cmd := f.m.Update(keyPress("L"))
	if cmd == nil {
		t.Fatal("expected a move command")
	}
	_, second := next.(Model).Update(keyPress("L"))
	if second != nil {
		t.Error("a second move should wait for the first one to finish")
	}
}

func TestMoveFailureSnapsBack(t *testing.T) {
	f := setupModel(t)
	_, err := f.db.ExecContext(context.Background(), `
		CREATE TRIGGER reject_moves BEFORE UPDATE OF position ON cards
		BEGIN SELECT RAISE(ABORT, 'disk I/O error'); END`)
	if err != nil {
		t.Fatalf("failed to create trigger: %v", err)
	}

	m := send(t, f.m, keyPress("L"))
	if !errors.Is(m.err, board.ErrMoveNotPersisted) {
		t.Fatalf("err = %v, want ErrMoveNotPersisted", m.err)
	}
	if !equalIDs(cardIDs(m, f.todo), f.cards) {
		t.Errorf("Todo = %v, want the stored order %v", cardIDs(m, f.todo), f.cards)
	}
	if len(cardIDs(m, f.done)) != 0 {
		t.Errorf("Done = %v, want empty", cardIDs(m, f.done))
	}
	if m.boardIdx != 0 || m.Selected() != f.cards[0] {
		t.Errorf("cursor should return with the card: boardIdx = %d, Selected() = %d", m.boardIdx, m.Selected())
	}
	if !strings.Contains(m.View().Content, "could not be saved") {
		t.Error("view should show the failure")
	}
}

var ctrlS = tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl})

// openCardForm moves to board index boardIdx and opens the new card form
func openCardForm(t *testing.T, m Model, boardIdx int) Model {
	t.Helper()
	for range boardIdx {
		m = send(t, m, keyPress("l"))
	}
	next, cmd := m.Update(keyPress("n"))
	m = next.(Model)
	if m.form == nil || m.draft == nil {
		t.Fatal("n should open the card form")
	}
	if cmd == nil {
		t.Error("opening the form should initialise it")
	}
	return m
}

func TestNewCard(t *testing.T) {
	f := setupModel(t)
	m := openCardForm(t, f.m, 1)
	if m.draft.priority != models.DefaultPriority || !m.draft.confirm {
		t.Errorf("draft = %+v, want default priority and confirm", *m.draft)
	}
	view := m.View().Content
	for _, want := range []string{"New card on Done", "Title", "Priority"} {
		if !strings.Contains(view, want) {
			t.Errorf("form view missing %q", want)
		}
	}

	m.draft.title = "  Write docs "
	m.draft.description = "Cover the move command\n"
	m.draft.priority = models.PriorityHigh
	m = send(t, m, ctrlS)
	if m.form != nil {
		t.Error("saving should close the form")
	}
	if m.err != nil {
		t.Fatalf("create error = %v", m.err)
	}

	done := m.snap.CardsOn(f.done)
	if len(done) != 1 || done[0].Title != "Write docs" {
		t.Fatalf("Done = %+v, want one card titled 'Write docs'", done)
	}
	if done[0].Description != "Cover the move command" {
		t.Errorf("Description = %q", done[0].Description)
	}
	if done[0].Priority != models.PriorityHigh {
		t.Errorf("Priority = %q, want high", done[0].Priority)
	}
	if m.Selected() != done[0].ID {
		t.Errorf("Selected() = %d, want the new card %d", m.Selected(), done[0].ID)
	}
	if !strings.Contains(m.status, "Created") {
		t.Errorf("status = %q", m.status)
	}
}

func TestNewCard_SaveNeedsTitle(t *testing.T) {
	f := setupModel(t)
	m := openCardForm(t, f.m, 0)
	m.draft.title = "   "

	next, cmd := m.Update(ctrlS)
	m = next.(Model)
	if m.form == nil || cmd != nil {
		t.Error("saving without a title should keep the form open")
	}
}

func TestNewCard_DeclinedConfirmCreatesNothing(t *testing.T) {
	f := setupModel(t)
	m := openCardForm(t, f.m, 0)
	m.draft.title = "never saved"
	m.draft.confirm = false
	m.form.State = huh.StateCompleted

	next, cmd := m.Update(tea.FocusMsg{})
	m = next.(Model)
	if m.form != nil || cmd != nil {
		t.Error("a completed form should close without creating a card")
	}
	if got := len(m.snap.CardsOn(f.todo)); got != 3 {
		t.Errorf("Todo has %d cards, want 3", got)
	}
}

func TestNewCard_EscapeCancels(t *testing.T) {
	f := setupModel(t)
	m := openCardForm(t, f.m, 0)
	m.draft.title = "never saved"

	next, cmd := m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}))
	m = next.(Model)
	if m.form != nil || cmd != nil {
		t.Error("esc should close the form without creating a card")
	}
	if got := len(m.snap.CardsOn(f.todo)); got != 3 {
		t.Errorf("Todo has %d cards, want 3", got)
	}
}

func TestNewCard_ValidationRejectsBlankTitle(t *testing.T) {
	if err := requireTitle(" \t"); err == nil {
		t.Error("blank title should not validate")
	}
	if err := requireTitle("ok"); err != nil {
		t.Errorf("requireTitle(ok) = %v", err)
	}
}

func TestReloadPicksUpExternalChanges(t *testing.T) {
	f := setupModel(t)
	testutil.CreateTestCard(t, f.db, f.done, "from elsewhere")

	m := send(t, f.m, keyPress("r"))
	if m.err != nil {
		t.Fatalf("reload error = %v", m.err)
	}
	if got := len(m.snap.CardsOn(f.done)); got != 1 {
		t.Errorf("Done has %d cards after reload, want 1", got)
	}
	if m.status != "Reloaded" {
		t.Errorf("status = %q, want Reloaded", m.status)
	}
}

func TestSnapshotSubscription(t *testing.T) {
	f := setupModel(t)
	cmd := f.m.Init()
	if cmd == nil {
		t.Fatal("Init() should listen for snapshots")
	}

	if _, err := f.m.engine.CreateBoard(context.Background(), "Review"); err != nil {
		t.Fatalf("CreateBoard() error = %v", err)
	}

	msg, ok := cmd().(snapshotMsg)
	if !ok {
		t.Fatal("expected a snapshot message")
	}
	next, again := f.m.Update(msg)
	m := next.(Model)
	if len(m.snap.Boards) != 3 {
		t.Errorf("boards = %d, want 3", len(m.snap.Boards))
	}
	if again == nil {
		t.Error("the model should keep listening")
	}
}

func TestOlderSnapshotIgnored(t *testing.T) {
	f := setupModel(t)
	old := f.m.snap
	m := send(t, f.m, keyPress("L"))

	next, _ := m.Update(snapshotMsg(old))
	m = next.(Model)
	if len(m.snap.CardsOn(f.done)) != 1 {
		t.Error("an older snapshot must not replace a newer one")
	}
}

func TestView(t *testing.T) {
	f := setupModel(t)
	v := f.m.View()
	if !v.AltScreen {
		t.Error("View should use the alternate screen")
	}
	for _, want := range []string{"Viewer", "Todo (3)", "Done (0)", "#1 a", "empty"} {
		if !strings.Contains(v.Content, want) {
			t.Errorf("View missing %q", want)
		}
	}

	next, _ := f.m.Update(keyPress("?"))
	full := next.(Model).View().Content
	if !strings.Contains(full, "move to next board") {
		t.Error("? should show the full help")
	}
}

func TestQuit(t *testing.T) {
	f := setupModel(t)
	_, cmd := f.m.Update(keyPress("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
