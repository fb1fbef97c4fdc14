package card

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	cardservice "github.com/thenoetrevino/kanban/internal/services/card"
)

// MoveCmd returns the card move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a card within or across columns",
		Long: `Move a card into a column and set that column's card order.

--order is the desired order of the target column's cards. Cards listed from
other columns move along; a moved card that is not listed goes to the bottom.

Examples:
  # Move card 4 to the bottom of column 2
  kanban card move --id=4 --to=2

  # Move card 4 to the top of column 2, which already holds 7 and 9
  kanban card move --id=4 --to=2 --order=4,7,9
`,
		RunE: runMove,
	}

	cmd.Flags().Int("id", 0, "Card ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().Int("to", 0, "Target column ID (required)")
	if err := cmd.MarkFlagRequired("to"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().IntSlice("order", nil, "Desired card order of the target column")

	cli.AddOutputFlags(cmd, true)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewOutputFormatter(cmd)

	cardID, _ := cmd.Flags().GetInt("id")
	targetID, _ := cmd.Flags().GetInt("to")
	order, _ := cmd.Flags().GetIntSlice("order")

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return cli.HandleError(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	card, err := cliInstance.App.CardService.MoveCard(ctx, cardservice.MoveCardRequest{
		CardID:         cardID,
		TargetColumnID: targetID,
		OrderedCardIDs: order,
	})
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	return formatter.Success(card,
		fmt.Sprintf("✓ Card %d moved to column %d, position %d", card.ID, card.ColumnID, card.PositionIndex))
}
