package board

import "errors"

// Validation errors. None of these reach the store.
var (
	ErrUnknownBoard     = errors.New("board is not part of this project")
	ErrStaleMove        = errors.New("card is no longer at the source index")
	ErrIndexOutOfRange  = errors.New("destination index out of range")
	ErrEmptyBoardName   = errors.New("board name cannot be empty")
	ErrBoardNameTooLong = errors.New("board name cannot exceed 50 characters")
	ErrEmptyCardTitle   = errors.New("card title cannot be empty")
	ErrCardTitleTooLong = errors.New("card title cannot exceed 255 characters")
	ErrInvalidPriority  = errors.New("invalid priority (must be: low, medium, high, urgent)")
)

// ErrMoveNotPersisted is returned when a move was shown optimistically but a
// store write failed. The engine has already reloaded from the store.
var ErrMoveNotPersisted = errors.New("move could not be saved; board reloaded")

// Limits on user supplied names
const (
	MaxBoardNameLength = 50
	MaxCardTitleLength = 255
)
