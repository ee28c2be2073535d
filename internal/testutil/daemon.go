package testutil

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/slotask/internal/daemon"
	"github.com/thenoetrevino/slotask/internal/events"
)

// SetupTestDaemon starts a daemon on a temporary socket and stops it at
// cleanup. Returns the server and socket path.
func SetupTestDaemon(t *testing.T) (*daemon.Server, string) {
	t.Helper()

	socketPath := filepath.Join(t.TempDir(), "slotask.sock")
	server, err := daemon.NewServer(socketPath,
		daemon.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		t.Fatalf("Failed to create test daemon: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		if err := server.Start(ctx); err != nil {
			t.Logf("Server error: %v", err)
		}
		close(done)
	}()

	t.Cleanup(func() {
		cancel()
		if err := server.Shutdown(); err != nil {
			t.Logf("Warning: daemon shutdown error during cleanup: %v", err)
		}
		<-done
	})

	return server, socketPath
}

// SetupTestClient creates an event client connected to socketPath and
// subscribed to projectID. Cleanup is automatic.
func SetupTestClient(t *testing.T, socketPath string, projectID int) *events.Client {
	t.Helper()

	client := events.NewClient(socketPath, events.WithDebounce(10*time.Millisecond))
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Logf("Warning: client close error during cleanup: %v", err)
		}
	})

	// Remembered and sent with the connect handshake
	_ = client.Subscribe(projectID)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect test client: %v", err)
	}

	return client
}

// WaitForCondition polls condition until it holds or timeout passes
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration, description string) bool {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Logf("Timeout waiting for condition: %s", description)
	return false
}
