// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/cli"
)

// RunFunc executes one command against an initialized CLI. The returned
// value is handed to the output formatter.
type RunFunc func(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error)

// Command wraps common command execution logic and returns a cobra RunE.
// Errors are printed in the selected output mode and come back as
// *cli.CommandError carrying the exit code.
func Command(run RunFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		formatter := cli.NewFormatter(cmd)

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			return &cli.CommandError{Code: cli.ExitError, Err: err}
		}
		defer func() {
			if err := cliInstance.Close(); err != nil {
				slog.Error("Error closing CLI", "error", err)
			}
		}()

		result, err := run(ctx, cliInstance, cmd, args)
		if err != nil {
			return formatter.Fail(err)
		}

		return formatter.Success(result)
	}
}
