package card

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/cli"
	"github.com/thenoetrevino/slotask/internal/cli/handler"
	"github.com/thenoetrevino/slotask/internal/cli/styles"
)

// MoveCmd returns the card move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <card-id>",
		Short: "Move a card within its board or to another board",
		Long: `Move a card to an index on a board. Without --to the card stays on its
board; without --index it goes to the bottom. Every card on the affected
boards is renumbered so positions stay 0..N-1.

Examples:
  slotask card move 7 --to=3            # bottom of board 3
  slotask card move 7 --to=3 --index=0  # top of board 3
  slotask card move 7 --index=2         # reorder within its board
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runMove),
	}

	cmd.Flags().Int("to", 0, "Destination board ID (default: the card's board)")
	cmd.Flags().Int("index", -1, "Destination index, 0 is the top (default: bottom)")

	cli.AddOutputFlags(cmd)
	return cmd
}

type moveResult struct {
	CardID   int `json:"card_id"`
	BoardID  int `json:"board_id"`
	Position int `json:"position"`
}

func runMove(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error) {
	cardID, err := parseCardID(args[0])
	if err != nil {
		return nil, err
	}
	destBoardID, _ := cmd.Flags().GetInt("to")
	destIndex, _ := cmd.Flags().GetInt("index")

	if destBoardID == 0 {
		current, err := c.App.CardService.GetCardDetail(ctx, cardID)
		if err != nil {
			return nil, err
		}
		destBoardID = current.BoardID
	}

	snap, err := c.App.MoveCard(ctx, cardID, destBoardID, destIndex)
	if err != nil {
		return nil, err
	}

	boardID, index, _ := snap.FindCard(cardID)
	res := moveResult{CardID: cardID, BoardID: boardID, Position: index}
	name := snap.Boards[snap.BoardIndex(boardID)].Name
	return cli.Item{
		Value: res,
		ID:    cardID,
		Text:  styles.Success("Card %d is now at position %d on '%s'", cardID, index, name),
	}, nil
}
