package note

import "errors"

// Note-related errors
var (
	ErrInvalidNoteID    = errors.New("invalid note ID")
	ErrInvalidProjectID = errors.New("invalid project ID")
	ErrEmptyTitle       = errors.New("note title cannot be empty")
	ErrTitleTooLong     = errors.New("note title cannot exceed 255 characters")
	ErrNoteNotFound     = errors.New("note not found")
)
