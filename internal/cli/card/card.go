// Package card holds all cli commands related to cards
//
// e.g., slotask card ...
package card

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/cli"
)

// CardCmd returns the card parent command
func CardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Create, move and edit cards",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(TagCmd())
	cmd.AddCommand(UntagCmd())
	cmd.AddCommand(CommentCmd())

	return cmd
}

func parseCardID(arg string) (int, error) {
	id, err := cli.ParseID(arg, "card")
	if err != nil {
		return 0, cli.Usage(err, "Use 'slotask board list' or 'slotask project show' to find card IDs")
	}
	return id, nil
}
