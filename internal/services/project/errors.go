package project

import "errors"

// Domain errors for project service
var (
	// Validation errors
	ErrEmptyName          = errors.New("project name cannot be empty")
	ErrNameTooLong        = errors.New("project name cannot exceed 100 characters")
	ErrInvalidColor       = errors.New("project color must be a hex code like #7D56F4")
	ErrDescriptionTooLong = errors.New("project description cannot exceed 1000 characters")
	ErrInvalidProjectID   = errors.New("invalid project ID")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidRole        = errors.New("invalid role (must be: editor, viewer)")

	// Business logic errors
	ErrProjectNotFound = errors.New("project not found")
	ErrAlreadyInvited  = errors.New("email has already been invited to this project")
)
