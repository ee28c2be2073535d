package board

import (
	"context"

	"github.com/thenoetrevino/slotask/internal/models"
)

// Store is the persistence the engine needs. *database.Repository satisfies it.
type Store interface {
	ListBoards(ctx context.Context, projectID int) ([]*models.Board, error)
	ListCards(ctx context.Context, boardIDs []int) ([]*models.Card, error)
	UpdateCardPosition(ctx context.Context, cardID, boardID, position int) error
	InsertBoard(ctx context.Context, projectID int, name string, position int) (*models.Board, error)
	InsertCard(ctx context.Context, boardID int, fields models.CardFields, position int) (*models.Card, error)
	UpdateBoardName(ctx context.Context, boardID int, name string) error
}

// PositionBatcher is implemented by stores that can apply a whole
// renumbering atomically. The engine prefers it over sequential writes.
type PositionBatcher interface {
	ApplyCardPositions(ctx context.Context, updates []models.CardPosition) error
}
