package link

import "errors"

// Link-related errors
var (
	ErrInvalidLinkID    = errors.New("invalid link ID")
	ErrInvalidProjectID = errors.New("invalid project ID")
	ErrEmptyTitle       = errors.New("link title cannot be empty")
	ErrInvalidURL       = errors.New("link URL must be an absolute http or https URL")
	ErrLinkNotFound     = errors.New("link not found")
)
