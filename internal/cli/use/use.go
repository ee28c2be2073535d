// Package use holds all cli commands related to setting contextual information
// e.g., slotask use ...
package use

import (
	"github.com/spf13/cobra"
)

// UseCmd returns the use parent command
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use",
		Short: "Manage contextual settings for the current shell",
		Long: `Set context that applies to subsequent commands so you do not have to
repeat --project on every call.

Examples:
  eval $(slotask use project 3)       # Use project 3
  eval $(slotask use project --clear) # Clear project context
  slotask use project --show          # Show current project`,
	}

	cmd.AddCommand(ProjectCmd())

	return cmd
}
