package card

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/cli"
	"github.com/thenoetrevino/slotask/internal/cli/handler"
	"github.com/thenoetrevino/slotask/internal/cli/styles"
)

// ShowCmd returns the card show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <card-id>",
		Short: "Show a card with its comments",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(runShow),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(ctx context.Context, c *cli.CLI, _ *cobra.Command, args []string) (any, error) {
	cardID, err := parseCardID(args[0])
	if err != nil {
		return nil, err
	}

	detail, err := c.App.CardService.GetCardDetail(ctx, cardID)
	if err != nil {
		return nil, err
	}
	return cli.Item{Value: detail, ID: detail.ID, Text: styles.RenderCardDetail(detail)}, nil
}
