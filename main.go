package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/slotask/cmd"
	"github.com/thenoetrevino/slotask/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cmd.Execute(ctx)
	cancel()

	// Command failures are already reported; cobra's own errors (unknown
	// command, bad flags) are not
	var cmdErr *cli.CommandError
	if err != nil && !errors.As(err, &cmdErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.ExitCode(err))
}
