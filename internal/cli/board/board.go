// Package board holds the cli commands that create, rename and list boards
//
// e.g., slotask board ...
package board

import (
	"github.com/spf13/cobra"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage the boards (columns) of a project",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}
