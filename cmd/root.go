// Package cmd assembles the slotask command tree
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/cli/board"
	"github.com/thenoetrevino/slotask/internal/cli/card"
	"github.com/thenoetrevino/slotask/internal/cli/link"
	"github.com/thenoetrevino/slotask/internal/cli/note"
	"github.com/thenoetrevino/slotask/internal/cli/project"
	"github.com/thenoetrevino/slotask/internal/cli/serve"
	"github.com/thenoetrevino/slotask/internal/cli/styles"
	"github.com/thenoetrevino/slotask/internal/cli/tutorial"
	"github.com/thenoetrevino/slotask/internal/cli/use"
	"github.com/thenoetrevino/slotask/internal/cli/viewer"
	"github.com/thenoetrevino/slotask/internal/config"
	"github.com/thenoetrevino/slotask/internal/logging"
)

// NewRootCmd builds the slotask command tree
func NewRootCmd() *cobra.Command {
	var logFile io.Closer

	rootCmd := &cobra.Command{
		Use:   "slotask",
		Short: "SloTask - a kanban board for the terminal",
		Long: `SloTask keeps projects as ordered boards of cards.

Cards can be moved between boards from the command line, the board
viewer (slotask tui) or the HTTP API (slotask serve). Every client
sees the same order once a move is saved.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			styles.Init(cfg.ColorScheme)

			logFile, err = logging.Init(cfg.LogPath, cfg.LogLevel)
			if err != nil {
				// Commands still work without a log file
				slog.Debug("logging to file disabled", "error", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logFile != nil {
				_ = logFile.Close()
			}
		},
	}

	rootCmd.AddCommand(project.ProjectCmd())
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(card.CardCmd())
	rootCmd.AddCommand(note.NoteCmd())
	rootCmd.AddCommand(link.LinkCmd())
	rootCmd.AddCommand(use.UseCmd())
	rootCmd.AddCommand(serve.ServeCmd())
	rootCmd.AddCommand(viewer.TuiCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())

	return rootCmd
}

// Execute runs the command tree with ctx
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
