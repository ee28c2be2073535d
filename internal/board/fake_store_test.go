package board

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"

	"github.com/thenoetrevino/slotask/internal/models"
)

var errStoreDown = errors.New("store unavailable")

// fakeStore is an in-memory Store with failure injection
type fakeStore struct {
	mu     sync.Mutex
	nextID int
	boards map[int]*models.Board
	cards  map[int]*models.Card

	// failWriteAt makes the n-th UpdateCardPosition call (1-based) fail; 0 disables
	failWriteAt int
	writes      int
	writeLog    []models.CardPosition

	failLoads   bool
	failInserts bool

	// breakLoadsOnWriteFailure turns on failLoads when a write fails
	breakLoadsOnWriteFailure bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextID: 1,
		boards: make(map[int]*models.Board),
		cards:  make(map[int]*models.Card),
	}
}

func (f *fakeStore) addBoard(projectID int, name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	pos := 0
	for _, b := range f.boards {
		if b.ProjectID == projectID {
			pos++
		}
	}
	f.boards[id] = &models.Board{ID: id, ProjectID: projectID, Name: name, Position: pos}
	return id
}

func (f *fakeStore) addCard(boardID int, title string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	pos := 0
	for _, c := range f.cards {
		if c.BoardID == boardID {
			pos++
		}
	}
	f.cards[id] = &models.Card{ID: id, BoardID: boardID, Title: title, Priority: models.DefaultPriority, Position: pos, Tags: []string{}}
	return id
}

func (f *fakeStore) ListBoards(_ context.Context, projectID int) ([]*models.Board, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failLoads {
		return nil, errStoreDown
	}
	var out []*models.Board
	for _, b := range f.boards {
		if b.ProjectID == projectID {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeStore) ListCards(_ context.Context, boardIDs []int) ([]*models.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failLoads {
		return nil, errStoreDown
	}
	var out []*models.Card
	for _, c := range f.cards {
		if slices.Contains(boardIDs, c.BoardID) {
			cp := c.Clone()
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BoardID != out[j].BoardID {
			return out[i].BoardID < out[j].BoardID
		}
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeStore) UpdateCardPosition(_ context.Context, cardID, boardID, position int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if f.failWriteAt > 0 && f.writes == f.failWriteAt {
		if f.breakLoadsOnWriteFailure {
			f.failLoads = true
		}
		return errStoreDown
	}
	c, ok := f.cards[cardID]
	if !ok {
		return errors.New("no such card")
	}
	c.BoardID = boardID
	c.Position = position
	f.writeLog = append(f.writeLog, models.CardPosition{CardID: cardID, BoardID: boardID, Position: position})
	return nil
}

func (f *fakeStore) InsertBoard(_ context.Context, projectID int, name string, position int) (*models.Board, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failInserts {
		return nil, errStoreDown
	}
	id := f.nextID
	f.nextID++
	b := &models.Board{ID: id, ProjectID: projectID, Name: name, Position: position}
	f.boards[id] = b
	cp := *b
	return &cp, nil
}

func (f *fakeStore) InsertCard(_ context.Context, boardID int, fields models.CardFields, position int) (*models.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failInserts {
		return nil, errStoreDown
	}
	id := f.nextID
	f.nextID++
	c := &models.Card{
		ID:          id,
		BoardID:     boardID,
		Title:       fields.Title,
		Description: fields.Description,
		Priority:    fields.Priority,
		Position:    position,
		DueDate:     fields.DueDate,
	}
	f.cards[id] = c
	cp := c.Clone()
	return &cp, nil
}

func (f *fakeStore) UpdateBoardName(_ context.Context, boardID int, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.boards[boardID]
	if !ok {
		return errors.New("no such board")
	}
	b.Name = name
	return nil
}

// storedOrder returns card IDs on a board ordered by stored position
func (f *fakeStore) storedOrder(boardID int) []int {
	cards, _ := f.ListCards(context.Background(), []int{boardID})
	ids := make([]int, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

// batchStore applies position writes atomically
type batchStore struct {
	*fakeStore
	batches  int
	failNext bool
}

func (b *batchStore) ApplyCardPositions(ctx context.Context, updates []models.CardPosition) error {
	b.batches++
	if b.failNext {
		return errStoreDown
	}
	for _, u := range updates {
		if err := b.fakeStore.UpdateCardPosition(ctx, u.CardID, u.BoardID, u.Position); err != nil {
			return err
		}
	}
	return nil
}
