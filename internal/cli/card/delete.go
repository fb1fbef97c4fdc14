package card

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// DeleteCmd returns the card delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a card",
		Long: `Delete a card by ID (requires confirmation unless --force or --quiet).

Examples:
  kanban card delete --id=4
  kanban card delete --id=4 --force
`,
		RunE: runDelete,
	}

	cmd.Flags().Int("id", 0, "Card ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd, true)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewOutputFormatter(cmd)

	cardID, _ := cmd.Flags().GetInt("id")
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return cli.HandleError(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	card, err := cliInstance.App.CardService.GetCard(ctx, cardID)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	if !force && !formatter.Quiet && !formatter.JSON {
		if !cli.Confirm(cmd, fmt.Sprintf("Delete card #%d '%s'?", card.ID, card.Title)) {
			fmt.Fprintln(formatter.Writer(), "Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.CardService.DeleteCard(ctx, cardID); err != nil {
		return cli.HandleError(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.JSONData(map[string]any{"card_id": cardID})
	}

	fmt.Fprintf(formatter.Writer(), "✓ Card %d deleted successfully\n", cardID)
	return nil
}
