// Package board implements the ordering engine that keeps card and board
// positions dense while cards are dragged between boards.
package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/thenoetrevino/slotask/internal/events"
	"github.com/thenoetrevino/slotask/internal/models"
)

// Engine owns the in-memory arrangement of one project's boards and cards.
// All operations are serialized; each holds the engine lock until its store
// calls return.
type Engine struct {
	projectID int
	store     Store
	publisher events.EventPublisher
	logger    *slog.Logger

	mu      sync.Mutex
	boards  []models.Board
	cards   map[int][]models.Card
	version uint64
	stale   bool

	subMu sync.Mutex
	subs  map[chan Snapshot]struct{}
}

// New creates an engine for projectID. Call Load before use.
func New(store Store, projectID int, opts ...Option) *Engine {
	e := &Engine{
		projectID: projectID,
		store:     store,
		logger:    slog.Default(),
		cards:     make(map[int][]models.Card),
		subs:      make(map[chan Snapshot]struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ProjectID returns the project this engine manages
func (e *Engine) ProjectID() int {
	return e.projectID
}

// Load replaces the in-memory state with the store's. On error the previous
// state is kept.
func (e *Engine) Load(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loadLocked(ctx)
}

func (e *Engine) loadLocked(ctx context.Context) error {
	boardRows, err := e.store.ListBoards(ctx, e.projectID)
	if err != nil {
		return fmt.Errorf("failed to load boards for project %d: %w", e.projectID, err)
	}

	boards := make([]models.Board, len(boardRows))
	ids := make([]int, len(boardRows))
	for i, b := range boardRows {
		boards[i] = *b
		ids[i] = b.ID
	}

	cardRows, err := e.store.ListCards(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load cards for project %d: %w", e.projectID, err)
	}

	cards := make(map[int][]models.Card, len(boards))
	for _, id := range ids {
		cards[id] = []models.Card{}
	}
	for _, c := range cardRows {
		if _, ok := cards[c.BoardID]; !ok {
			continue
		}
		cards[c.BoardID] = append(cards[c.BoardID], c.Clone())
	}

	e.boards = boards
	e.cards = cards
	e.stale = false
	e.commitLocked()
	return nil
}

// Move relocates a card. The new arrangement is committed and broadcast
// before it is persisted; if persisting fails the engine reloads from the
// store and returns an error wrapping ErrMoveNotPersisted.
func (e *Engine) Move(ctx context.Context, cmd MoveCommand) error {
	if cmd.IsNoOp() {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	src, srcKnown := e.cardsOf(cmd.SourceBoardID)
	dst, dstKnown := e.cardsOf(cmd.DestBoardID)
	if err := cmd.validate(src, dst, srcKnown, dstKnown); err != nil {
		return err
	}

	prevSrc, prevDst := src, dst
	plan := planMove(cmd, src, dst)
	e.cards[cmd.SourceBoardID] = plan.src
	e.cards[cmd.DestBoardID] = plan.dst
	e.commitLocked()

	writeErr := e.persist(ctx, plan.writes)
	e.publishChange()
	if writeErr == nil {
		return nil
	}

	e.logger.Error("failed to persist card move",
		"error", writeErr,
		"project_id", e.projectID,
		"card_id", cmd.CardID,
		"writes", len(plan.writes))

	moveErr := fmt.Errorf("%w: %w", ErrMoveNotPersisted, writeErr)
	if reloadErr := e.loadLocked(ctx); reloadErr != nil {
		e.logger.Error("failed to reload board after move failure",
			"error", reloadErr,
			"project_id", e.projectID)
		e.cards[cmd.SourceBoardID] = prevSrc
		e.cards[cmd.DestBoardID] = prevDst
		e.stale = true
		e.commitLocked()
		return errors.Join(moveErr, reloadErr)
	}
	return moveErr
}

func (e *Engine) persist(ctx context.Context, writes []models.CardPosition) error {
	if batcher, ok := e.store.(PositionBatcher); ok {
		return batcher.ApplyCardPositions(ctx, writes)
	}
	for _, w := range writes {
		if err := e.store.UpdateCardPosition(ctx, w.CardID, w.BoardID, w.Position); err != nil {
			return err
		}
	}
	return nil
}

// CreateBoard appends a new board to the project
func (e *Engine) CreateBoard(ctx context.Context, name string) (models.Board, error) {
	name, err := validateBoardName(name)
	if err != nil {
		return models.Board{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	created, err := e.store.InsertBoard(ctx, e.projectID, name, len(e.boards))
	if err != nil {
		return models.Board{}, fmt.Errorf("failed to create board: %w", err)
	}

	e.boards = append(e.boards, *created)
	e.cards[created.ID] = []models.Card{}
	e.commitLocked()
	e.publishChange()
	return *created, nil
}

// RenameBoard changes a board's name; its position is untouched
func (e *Engine) RenameBoard(ctx context.Context, boardID int, name string) error {
	name, err := validateBoardName(name)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.boardIndex(boardID)
	if idx < 0 {
		return ErrUnknownBoard
	}

	if err := e.store.UpdateBoardName(ctx, boardID, name); err != nil {
		return fmt.Errorf("failed to rename board: %w", err)
	}

	e.boards[idx].Name = name
	e.commitLocked()
	e.publishChange()
	return nil
}

// CreateCard appends a new card to the end of a board
func (e *Engine) CreateCard(ctx context.Context, boardID int, fields models.CardFields) (models.Card, error) {
	fields, err := validateCardFields(fields)
	if err != nil {
		return models.Card{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	cards, ok := e.cardsOf(boardID)
	if !ok {
		return models.Card{}, ErrUnknownBoard
	}

	created, err := e.store.InsertCard(ctx, boardID, fields, len(cards))
	if err != nil {
		return models.Card{}, fmt.Errorf("failed to create card: %w", err)
	}
	card := created.Clone()
	if card.Tags == nil {
		card.Tags = []string{}
	}

	e.cards[boardID] = append(cloneCards(cards), card)
	e.commitLocked()
	e.publishChange()
	return card.Clone(), nil
}

// Snapshot returns a deep copy of the current arrangement
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	boards := make([]models.Board, len(e.boards))
	copy(boards, e.boards)

	cards := make(map[int][]models.Card, len(e.cards))
	for id, list := range e.cards {
		cards[id] = cloneCards(list)
	}

	return Snapshot{
		ProjectID: e.projectID,
		Boards:    boards,
		Cards:     cards,
		Version:   e.version,
		Stale:     e.stale,
	}
}

// Subscribe returns a channel that receives the newest snapshot after every
// state change. A slow reader only sees the latest one. The channel is
// closed when ctx is done.
func (e *Engine) Subscribe(ctx context.Context) <-chan Snapshot {
	ch := make(chan Snapshot, 1)

	e.subMu.Lock()
	e.subs[ch] = struct{}{}
	e.subMu.Unlock()

	go func() {
		<-ctx.Done()
		e.subMu.Lock()
		delete(e.subs, ch)
		close(ch)
		e.subMu.Unlock()
	}()

	return ch
}

// commitLocked bumps the version and hands a snapshot to every subscriber
func (e *Engine) commitLocked() {
	e.version++

	e.subMu.Lock()
	defer e.subMu.Unlock()
	for ch := range e.subs {
		// Drop an unread snapshot so the buffer always holds the newest
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- e.snapshotLocked():
		default:
		}
	}
}

func (e *Engine) publishChange() {
	if e.publisher == nil {
		return
	}
	ev := events.Event{Type: events.EventDatabaseChanged, ProjectID: e.projectID}
	if err := events.PublishWithRetry(e.publisher, ev, 3); err != nil {
		e.logger.Debug("board change event dropped", "error", err, "project_id", e.projectID)
	}
}

func (e *Engine) cardsOf(boardID int) ([]models.Card, bool) {
	if e.boardIndex(boardID) < 0 {
		return nil, false
	}
	return e.cards[boardID], true
}

func (e *Engine) boardIndex(boardID int) int {
	for i, b := range e.boards {
		if b.ID == boardID {
			return i
		}
	}
	return -1
}

func validateBoardName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyBoardName
	}
	if utf8.RuneCountInString(name) > MaxBoardNameLength {
		return "", ErrBoardNameTooLong
	}
	return name, nil
}

func validateCardFields(fields models.CardFields) (models.CardFields, error) {
	fields.Title = strings.TrimSpace(fields.Title)
	if fields.Title == "" {
		return fields, ErrEmptyCardTitle
	}
	if utf8.RuneCountInString(fields.Title) > MaxCardTitleLength {
		return fields, ErrCardTitleTooLong
	}
	if fields.Priority == "" {
		fields.Priority = models.DefaultPriority
	}
	if !fields.Priority.Valid() {
		return fields, ErrInvalidPriority
	}
	return fields, nil
}
