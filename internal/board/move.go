package board

import (
	"slices"

	"github.com/thenoetrevino/slotask/internal/models"
)

// MoveCommand is the drag-end payload: which card, where it was seen, and
// where it was dropped.
type MoveCommand struct {
	CardID        int `json:"card_id"`
	SourceBoardID int `json:"source_board_id"`
	SourceIndex   int `json:"source_index"`
	DestBoardID   int `json:"dest_board_id"`
	DestIndex     int `json:"dest_index"`
}

// IsNoOp reports whether the card is dropped exactly where it was picked up
func (m MoveCommand) IsNoOp() bool {
	return m.SourceBoardID == m.DestBoardID && m.SourceIndex == m.DestIndex
}

// crossBoard reports whether the card changes boards
func (m MoveCommand) crossBoard() bool {
	return m.SourceBoardID != m.DestBoardID
}

// validate checks the command against the current arrangement
func (m MoveCommand) validate(src, dst []models.Card, srcKnown, dstKnown bool) error {
	if !srcKnown || !dstKnown {
		return ErrUnknownBoard
	}
	if m.SourceIndex < 0 || m.SourceIndex >= len(src) || src[m.SourceIndex].ID != m.CardID {
		return ErrStaleMove
	}

	upper := len(dst)
	if !m.crossBoard() {
		upper = len(src) - 1
	}
	if m.DestIndex < 0 || m.DestIndex > upper {
		return ErrIndexOutOfRange
	}
	return nil
}

// movePlan is the outcome of splicing a card: the new card lists for the
// touched boards and the position writes needed to persist them.
type movePlan struct {
	src    []models.Card
	dst    []models.Card
	writes []models.CardPosition
}

// planMove splices the card out of src and into dst and renumbers both.
// src and dst are not modified. For a same-board move dst is ignored and the
// result is in plan.src (plan.dst aliases it).
func planMove(m MoveCommand, src, dst []models.Card) movePlan {
	oldPos := make(map[int]int, len(src)+len(dst))
	for _, c := range src {
		oldPos[c.ID] = c.Position
	}
	for _, c := range dst {
		oldPos[c.ID] = c.Position
	}

	newSrc := cloneCards(src)
	card := newSrc[m.SourceIndex]
	newSrc = slices.Delete(newSrc, m.SourceIndex, m.SourceIndex+1)
	card.BoardID = m.DestBoardID

	var newDst []models.Card
	if m.crossBoard() {
		newDst = slices.Insert(cloneCards(dst), m.DestIndex, card)
		renumber(newSrc)
	} else {
		newSrc = slices.Insert(newSrc, m.DestIndex, card)
		newDst = newSrc
	}
	renumber(newDst)

	moved := newDst[m.DestIndex]
	writes := []models.CardPosition{{CardID: moved.ID, BoardID: moved.BoardID, Position: moved.Position}}
	writes = appendChanged(writes, newDst, oldPos, moved.ID)
	if m.crossBoard() {
		writes = appendChanged(writes, newSrc, oldPos, moved.ID)
	}

	return movePlan{src: newSrc, dst: newDst, writes: writes}
}

func renumber(cards []models.Card) {
	for i := range cards {
		cards[i].Position = i
	}
}

// appendChanged adds a write for every sibling whose stored position differs
// from its new one
func appendChanged(writes []models.CardPosition, cards []models.Card, oldPos map[int]int, skipID int) []models.CardPosition {
	for _, c := range cards {
		if c.ID == skipID {
			continue
		}
		if old, ok := oldPos[c.ID]; ok && old == c.Position {
			continue
		}
		writes = append(writes, models.CardPosition{CardID: c.ID, BoardID: c.BoardID, Position: c.Position})
	}
	return writes
}
