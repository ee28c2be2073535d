// Package failure sorts domain errors into the few kinds the CLI and the
// HTTP API report differently.
package failure

import (
	"errors"

	"github.com/thenoetrevino/slotask/internal/board"
	cardservice "github.com/thenoetrevino/slotask/internal/services/card"
	linkservice "github.com/thenoetrevino/slotask/internal/services/link"
	noteservice "github.com/thenoetrevino/slotask/internal/services/note"
	projectservice "github.com/thenoetrevino/slotask/internal/services/project"
)

// Kind is the category of a failed operation
type Kind int

const (
	Internal Kind = iota
	Validation
	NotFound
	Conflict
	NotPersisted
)

var kinds = []struct {
	kind Kind
	errs []error
}{
	// Checked first: a failed move also wraps the store error
	{NotPersisted, []error{board.ErrMoveNotPersisted}},
	{NotFound, []error{
		projectservice.ErrProjectNotFound,
		cardservice.ErrCardNotFound,
		cardservice.ErrTagNotFound,
		noteservice.ErrNoteNotFound,
		linkservice.ErrLinkNotFound,
		board.ErrUnknownBoard,
	}},
	{Conflict, []error{
		board.ErrStaleMove,
		cardservice.ErrDuplicateTag,
		projectservice.ErrAlreadyInvited,
	}},
	{Validation, []error{
		board.ErrIndexOutOfRange,
		board.ErrEmptyBoardName,
		board.ErrBoardNameTooLong,
		board.ErrEmptyCardTitle,
		board.ErrCardTitleTooLong,
		board.ErrInvalidPriority,
		projectservice.ErrEmptyName,
		projectservice.ErrNameTooLong,
		projectservice.ErrInvalidColor,
		projectservice.ErrDescriptionTooLong,
		projectservice.ErrInvalidProjectID,
		projectservice.ErrInvalidEmail,
		projectservice.ErrInvalidRole,
		cardservice.ErrInvalidCardID,
		cardservice.ErrEmptyTitle,
		cardservice.ErrTitleTooLong,
		cardservice.ErrInvalidPriority,
		cardservice.ErrEmptyTag,
		cardservice.ErrTagTooLong,
		cardservice.ErrEmptyComment,
		cardservice.ErrCommentTooLong,
		noteservice.ErrInvalidNoteID,
		noteservice.ErrInvalidProjectID,
		noteservice.ErrEmptyTitle,
		noteservice.ErrTitleTooLong,
		linkservice.ErrInvalidLinkID,
		linkservice.ErrInvalidProjectID,
		linkservice.ErrEmptyTitle,
		linkservice.ErrInvalidURL,
	}},
}

// Classify returns the kind of err; unrecognised errors are Internal
func Classify(err error) Kind {
	for _, k := range kinds {
		for _, target := range k.errs {
			if errors.Is(err, target) {
				return k.kind
			}
		}
	}
	return Internal
}

// Code is the machine-readable error code used in JSON output
func (k Kind) Code() string {
	switch k {
	case Validation:
		return "VALIDATION_ERROR"
	case NotFound:
		return "NOT_FOUND"
	case Conflict:
		return "CONFLICT"
	case NotPersisted:
		return "NOT_PERSISTED"
	default:
		return "INTERNAL_ERROR"
	}
}

func (k Kind) String() string {
	return k.Code()
}
