package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/slotask/internal/config"
	"github.com/thenoetrevino/slotask/internal/daemon"
	"github.com/thenoetrevino/slotask/internal/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// The daemon runs under a supervisor, so it logs to stderr
	logger := logging.Setup(os.Stderr, cfg.LogLevel)

	server, err := daemon.NewServer(cfg.SocketPath, daemon.WithLogger(logger))
	if err != nil {
		logger.Error("failed to create daemon", "error", err)
		os.Exit(1)
	}

	logger.Info("slotaskd starting", "socket_path", cfg.SocketPath, "pid", os.Getpid())

	if err := server.Start(ctx); err != nil {
		logger.Error("daemon error", "error", err)
		os.Exit(1)
	}

	logger.Info("slotaskd shut down gracefully")
}
