package events

import (
	"errors"
	"os"
	"syscall"
)

// ErrQueueFull is returned by SendEvent when the outbound queue is saturated
var ErrQueueFull = errors.New("event queue full")

// ErrNotConnected is returned when writing before Connect succeeded
var ErrNotConnected = errors.New("not connected to daemon")

// ErrClientClosed is returned when using a closed client
var ErrClientClosed = errors.New("event client closed")

// ErrorCode represents daemon-related error types.
type ErrorCode int

const (
	ErrSocketNotFound ErrorCode = iota
	ErrSocketPermission
	ErrDaemonNotRunning
	ErrConnectionRefused
)

// DaemonError represents a structured daemon error with context.
type DaemonError struct {
	Code    ErrorCode
	Message string
	Hint    string
}

// Error implements the error interface.
func (e *DaemonError) Error() string {
	if e.Hint != "" {
		return e.Message + ". " + e.Hint
	}
	return e.Message
}

// ClassifyDaemonError maps common dial errors to a DaemonError with a hint.
func ClassifyDaemonError(err error) *DaemonError {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, os.ErrNotExist):
		return &DaemonError{
			Code:    ErrSocketNotFound,
			Message: "Socket file not found",
			Hint:    "Start the daemon: slotaskd",
		}
	case errors.Is(err, os.ErrPermission):
		return &DaemonError{
			Code:    ErrSocketPermission,
			Message: "Permission denied",
			Hint:    "Check ~/.slotask/ permissions: chmod 700 ~/.slotask/",
		}
	case errors.Is(err, syscall.ECONNREFUSED):
		return &DaemonError{
			Code:    ErrConnectionRefused,
			Message: "Connection refused",
			Hint:    "The daemon may have crashed. Restart it: slotaskd",
		}
	}

	return &DaemonError{
		Code:    ErrDaemonNotRunning,
		Message: "Daemon not running",
		Hint:    "Start the daemon: slotaskd",
	}
}
