package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/slotask/internal/board"
	cardservice "github.com/thenoetrevino/slotask/internal/services/card"
)

func newTestFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, ErrOut: &errOut}, &out, &errOut
}

func TestOutputFormatter_SuccessModes(t *testing.T) {
	item := Item{Value: map[string]int{"id": 7}, ID: 7, Text: "created #7"}

	f, out, _ := newTestFormatter(true, false)
	require.NoError(t, f.Success(item))
	var decoded struct {
		Success bool           `json:"success"`
		Data    map[string]int `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.True(t, decoded.Success)
	assert.Equal(t, 7, decoded.Data["id"])

	f, out, _ = newTestFormatter(false, true)
	require.NoError(t, f.Success(item))
	assert.Equal(t, "7\n", out.String())

	f, out, _ = newTestFormatter(false, false)
	require.NoError(t, f.Success(item))
	assert.Equal(t, "created #7\n", out.String())
}

func TestOutputFormatter_QuietList(t *testing.T) {
	f, out, _ := newTestFormatter(false, true)
	require.NoError(t, f.Success(List{Values: []int{}, IDList: []int{3, 1, 2}}))
	assert.Equal(t, "3\n1\n2\n", out.String())
}

func TestOutputFormatter_QuietWithoutIDFallsBack(t *testing.T) {
	f, out, _ := newTestFormatter(false, true)
	require.NoError(t, f.Success(struct{ Name string }{"x"}))
	assert.Contains(t, out.String(), "Name:x")
}

func TestOutputFormatter_Fail(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantExit int
	}{
		{"not found", fmt.Errorf("card 4: %w", cardservice.ErrCardNotFound), "NOT_FOUND", ExitNotFound},
		{"validation", board.ErrIndexOutOfRange, "VALIDATION_ERROR", ExitValidation},
		{"stale", board.ErrStaleMove, "CONFLICT", ExitDataErr},
		{"not persisted", fmt.Errorf("%w: %w", board.ErrMoveNotPersisted, errors.New("locked")), "NOT_PERSISTED", ExitError},
		{"usage", Usage(ErrNoProject, "set it"), "USAGE_ERROR", ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newTestFormatter(true, false)
			err := f.Fail(tt.err)

			assert.Equal(t, tt.wantExit, ExitCode(err))

			var decoded struct {
				Success bool `json:"success"`
				Error   struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
			assert.False(t, decoded.Success)
			assert.Equal(t, tt.wantCode, decoded.Error.Code)
		})
	}
}

func TestOutputFormatter_HumanErrorGoesToStderr(t *testing.T) {
	f, out, errOut := newTestFormatter(false, false)
	require.NoError(t, f.ErrorWithSuggestion("NOT_FOUND", "project 9 not found", "slotask project list"))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "project 9 not found")
	assert.Contains(t, errOut.String(), "Suggestion: slotask project list")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("plain")))
	assert.Equal(t, ExitNotFound, ExitCode(fmt.Errorf("wrapped: %w", &CommandError{Code: ExitNotFound, Err: errors.New("x")})))
}
