package card

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/slotask/internal/cli"
	"github.com/thenoetrevino/slotask/internal/cli/handler"
	"github.com/thenoetrevino/slotask/internal/cli/styles"
)

// TagCmd returns the card tag subcommand
func TagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag <card-id> <tag>",
		Short: "Add a tag to a card",
		Args:  cobra.ExactArgs(2),
		RunE:  handler.Command(runTag),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runTag(ctx context.Context, c *cli.CLI, _ *cobra.Command, args []string) (any, error) {
	cardID, err := parseCardID(args[0])
	if err != nil {
		return nil, err
	}

	card, err := c.App.CardService.AddTag(ctx, cardID, args[1])
	if err != nil {
		return nil, err
	}
	refreshAfterEdit(ctx, c, card)

	return cli.Item{Value: card, ID: card.ID, Text: styles.Success("Card %d tags: %s", card.ID, styles.RenderTags(card.Tags))}, nil
}

// UntagCmd returns the card untag subcommand
func UntagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "untag <card-id> <tag>",
		Short: "Remove a tag from a card",
		Args:  cobra.ExactArgs(2),
		RunE:  handler.Command(runUntag),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runUntag(ctx context.Context, c *cli.CLI, _ *cobra.Command, args []string) (any, error) {
	cardID, err := parseCardID(args[0])
	if err != nil {
		return nil, err
	}

	card, err := c.App.CardService.RemoveTag(ctx, cardID, args[1])
	if err != nil {
		return nil, err
	}
	refreshAfterEdit(ctx, c, card)

	return cli.Item{Value: card, ID: card.ID, Text: styles.Success("Removed '%s' from card %d", args[1], card.ID)}, nil
}
