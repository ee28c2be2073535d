package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/cli/styles"
	"github.com/thenoetrevino/slotask/internal/failure"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out    io.Writer
	ErrOut io.Writer
}

// Human is implemented by command results that know how to print themselves
type Human interface {
	Human() string
}

// IDLister is implemented by list results for quiet mode
type IDLister interface {
	IDs() []int
}

// NewFormatter reads --json and --quiet from cmd
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

// Success outputs a successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		switch v := data.(type) {
		case IDLister:
			for _, id := range v.IDs() {
				fmt.Fprintf(f.Out, "%d\n", id)
			}
			return nil
		case interface{ GetID() int }:
			fmt.Fprintf(f.Out, "%d\n", v.GetID())
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(f.Out).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	if h, ok := data.(Human); ok {
		_, err := fmt.Fprintln(f.Out, h.Human())
		return err
	}
	_, err := fmt.Fprintf(f.Out, "%+v\n", data)
	return err
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.Out).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.ErrOut, "%s %s\n", styles.ErrorStyle.Render("Error:"), message)
	if suggestion != "" {
		fmt.Fprintf(f.ErrOut, "Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err in the current mode and returns it wrapped with the
// exit code matching its kind.
func (f *OutputFormatter) Fail(err error) error {
	var usage *UsageError
	if errors.As(err, &usage) {
		return f.FailUsage(usage.Err, usage.Suggestion)
	}

	kind := failure.Classify(err)
	f.report(kind.Code(), err.Error(), "")
	return &CommandError{Code: exitCodeFor(kind), Err: err}
}

// FailUsage reports a usage problem with a suggestion
func (f *OutputFormatter) FailUsage(err error, suggestion string) error {
	f.report("USAGE_ERROR", err.Error(), suggestion)
	return &CommandError{Code: ExitUsage, Err: err}
}

func (f *OutputFormatter) report(code, message, suggestion string) {
	if err := f.ErrorWithSuggestion(code, message, suggestion); err != nil {
		slog.Error("failed to format error message", "error", err)
	}
}
