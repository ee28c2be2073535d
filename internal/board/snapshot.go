package board

import "github.com/thenoetrevino/slotask/internal/models"

// Snapshot is an immutable copy of a project's boards and cards.
// Cards are keyed by board ID and ordered by position.
type Snapshot struct {
	ProjectID int                   `json:"project_id"`
	Boards    []models.Board        `json:"boards"`
	Cards     map[int][]models.Card `json:"cards"`
	Version   uint64                `json:"version"`
	// Stale is set when a failed move could not be followed by a reload,
	// so the board may not match the store.
	Stale bool `json:"stale"`
}

// CardsOn returns the cards of a board in display order
func (s Snapshot) CardsOn(boardID int) []models.Card {
	return s.Cards[boardID]
}

// BoardIndex returns the display index of a board, or -1
func (s Snapshot) BoardIndex(boardID int) int {
	for i, b := range s.Boards {
		if b.ID == boardID {
			return i
		}
	}
	return -1
}

// FindCard locates a card by ID
func (s Snapshot) FindCard(cardID int) (boardID, index int, ok bool) {
	for _, b := range s.Boards {
		for i, c := range s.Cards[b.ID] {
			if c.ID == cardID {
				return b.ID, i, true
			}
		}
	}
	return 0, 0, false
}

// MoveCommandFor builds the command that moves cardID to destIndex on
// destBoardID, taking the source from the snapshot. A negative destIndex
// means the end of the destination board.
func (s Snapshot) MoveCommandFor(cardID, destBoardID, destIndex int) (MoveCommand, bool) {
	srcBoard, srcIndex, ok := s.FindCard(cardID)
	if !ok {
		return MoveCommand{}, false
	}
	if destIndex < 0 {
		destIndex = len(s.Cards[destBoardID])
		if destBoardID == srcBoard {
			destIndex--
		}
	}
	return MoveCommand{
		CardID:        cardID,
		SourceBoardID: srcBoard,
		SourceIndex:   srcIndex,
		DestBoardID:   destBoardID,
		DestIndex:     destIndex,
	}, true
}

// TotalCards counts cards across all boards
func (s Snapshot) TotalCards() int {
	n := 0
	for _, cards := range s.Cards {
		n += len(cards)
	}
	return n
}

func cloneCards(cards []models.Card) []models.Card {
	out := make([]models.Card, len(cards))
	for i, c := range cards {
		out[i] = c.Clone()
	}
	return out
}
