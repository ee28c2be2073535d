package cli

import (
	"errors"

	"github.com/thenoetrevino/slotask/internal/failure"
)

// Exit codes for CLI commands, following Unix conventions.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error: database or daemon failures and
	// anything that fits no other category, including a move that could not
	// be saved.
	ExitError = 1

	// ExitUsage indicates incorrect command usage, e.g. no project selected.
	ExitUsage = 2

	// ExitNotFound indicates a project, board, card, note or link does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates the request conflicts with current data, such as
	// a move issued against an arrangement that has since changed.
	ExitDataErr = 4

	// ExitValidation indicates input failed validation rules.
	ExitValidation = 5
)

// CommandError carries the process exit code for a failed command
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code for an error returned by a command
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	return ExitError
}

func exitCodeFor(kind failure.Kind) int {
	switch kind {
	case failure.Validation:
		return ExitValidation
	case failure.NotFound:
		return ExitNotFound
	case failure.Conflict:
		return ExitDataErr
	default:
		return ExitError
	}
}
