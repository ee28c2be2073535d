// Package serve holds the command that exposes the board API over HTTP
//
// e.g., slotask serve --addr 127.0.0.1:8420
package serve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/cli"
	"github.com/thenoetrevino/slotask/internal/web"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board API over HTTP",
		Long: `Serve the board API over HTTP until interrupted.

Moves made through the API are published to the daemon, and changes
published by other clients reload the served boards.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (defaults to http_addr from the config)")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := cli.NewFormatter(cmd)

	c, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = c.Config.HTTPAddr
	}

	go func() {
		if err := c.App.WatchEvents(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Warn("stopped watching daemon events", "error", err)
		}
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s\n", addr)
	server := web.NewServer(c.App, web.WithLogger(slog.Default().With("component", "http")))
	if err := server.ListenAndServe(ctx, addr); err != nil {
		return formatter.Fail(err)
	}
	return nil
}
