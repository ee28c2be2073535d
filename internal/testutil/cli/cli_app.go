package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/app"
	slotaskcli "github.com/thenoetrevino/slotask/internal/cli"
)

// ExecuteCLICommand executes a CLI command against testApp and returns what
// it wrote to stdout. Human-mode errors go to stderr and are not included.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	stdout, _, err := ExecuteCLICommandWithStderr(t, testApp, cmd, args)
	return stdout, err
}

// ExecuteCLICommandWithStderr is ExecuteCLICommand returning stderr as well
func ExecuteCLICommandWithStderr(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	ctx := slotaskcli.WithApp(context.Background(), testApp)
	err := cmd.ExecuteContext(ctx)

	return stdout.String(), stderr.String(), err
}
