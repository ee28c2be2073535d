// Package viewer holds the command that opens the interactive board viewer
//
// e.g., slotask tui --project 1
package viewer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/cli"
	"github.com/thenoetrevino/slotask/internal/tui"
)

// TuiCmd returns the tui command
func TuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive board viewer",
		Long: `Open a project's boards in the terminal.

Navigate with the arrow keys or h/j/k/l, move the selected card with
H/L (between boards) and K/J (within a board). Press ? for all keys.`,
		Args: cobra.NoArgs,
		RunE: runTui,
	}

	cli.AddProjectFlag(cmd)
	return cmd
}

func runTui(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	formatter := cli.NewFormatter(cmd)

	projectID, err := cli.ProjectFromFlags(cmd)
	if err != nil {
		return formatter.Fail(err)
	}

	c, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	project, err := c.App.ProjectService.GetProjectByID(ctx, projectID)
	if err != nil {
		return formatter.Fail(err)
	}
	engine, err := c.App.OpenBoard(ctx, projectID)
	if err != nil {
		return formatter.Fail(err)
	}

	if ec := c.App.EventClient(); ec != nil {
		if err := ec.Subscribe(projectID); err != nil {
			slog.Warn("failed to subscribe to project events", "error", err, "project_id", projectID)
		}
		go func() {
			if err := c.App.WatchEvents(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Warn("stopped watching daemon events", "error", err)
			}
		}()
	}

	model := tui.New(ctx, engine, project.Name, c.Config)
	if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
		return formatter.Fail(fmt.Errorf("error running board viewer: %w", err))
	}
	return nil
}
