package card

import "errors"

// Card-related errors
var (
	// Validation errors
	ErrInvalidCardID   = errors.New("invalid card ID")
	ErrEmptyTitle      = errors.New("card title cannot be empty")
	ErrTitleTooLong    = errors.New("card title cannot exceed 255 characters")
	ErrInvalidPriority = errors.New("invalid priority (must be: low, medium, high, urgent)")
	ErrEmptyTag        = errors.New("tag cannot be empty")
	ErrTagTooLong      = errors.New("tag cannot exceed 50 characters")

	// Business logic errors
	ErrCardNotFound = errors.New("card not found")
	ErrDuplicateTag = errors.New("card already has this tag")
	ErrTagNotFound  = errors.New("card does not have this tag")

	// Comment validation errors
	ErrEmptyComment   = errors.New("comment cannot be empty")
	ErrCommentTooLong = errors.New("comment cannot exceed 1000 characters")
)
