package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/slotask/internal/board"
	"github.com/thenoetrevino/slotask/internal/failure"
)

// errBadRequest marks malformed input caught before any service call
var errBadRequest = errors.New("bad request")

// APIError is the error body of a failed request
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func statusFor(kind failure.Kind) int {
	switch kind {
	case failure.Validation:
		return http.StatusBadRequest
	case failure.NotFound:
		return http.StatusNotFound
	case failure.Conflict:
		return http.StatusConflict
	case failure.NotPersisted:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, err error) {
	status, apiErr := classify(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err, "path", c.FullPath())
	}
	c.JSON(status, gin.H{"success": false, "error": apiErr})
}

// respondBoardError is respondError for board mutations; the current
// arrangement goes along so the caller can redraw.
func respondBoardError(c *gin.Context, err error, snap board.Snapshot) {
	status, apiErr := classify(err)
	c.JSON(status, gin.H{"success": false, "error": apiErr, "board": snap})
}

func classify(err error) (int, APIError) {
	if errors.Is(err, errBadRequest) {
		return http.StatusBadRequest, APIError{Code: "INVALID_INPUT", Message: err.Error()}
	}
	kind := failure.Classify(err)
	status := statusFor(kind)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	return status, APIError{Code: kind.Code(), Message: msg}
}

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

// idParam parses a positive integer path parameter
func idParam(c *gin.Context, name string) (int, error) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, badRequest("invalid %s %q", name, raw)
	}
	return id, nil
}
