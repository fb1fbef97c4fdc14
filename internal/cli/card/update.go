package card

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
	cardservice "github.com/thenoetrevino/kanban/internal/services/card"
)

// UpdateCmd returns the card update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a card's content",
		Long: `Update a card's title, description or label. Only the flags given are changed.

Examples:
  kanban card update --id=4 --title="Fix login bug (prod)"
  kanban card update --id=4 --label-color="#0f0"
  kanban card update --id=4 --clear-label
`,
		RunE: runUpdate,
	}

	cmd.Flags().Int("id", 0, "Card ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (Markdown)")
	cmd.Flags().String("label-color", "", "New label color as CSS hex")
	cmd.Flags().Bool("clear-label", false, "Remove the card's label")
	cmd.MarkFlagsMutuallyExclusive("label-color", "clear-label")

	cli.AddOutputFlags(cmd, true)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewOutputFormatter(cmd)

	cardID, _ := cmd.Flags().GetInt("id")
	req := cardservice.UpdateCardRequest{CardID: cardID}

	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		req.Title = &title
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		req.Description = &description
	}
	if cmd.Flags().Changed("label-color") {
		color, _ := cmd.Flags().GetString("label-color")
		req.LabelColor = models.Present(color)
	}
	if clearLabel, _ := cmd.Flags().GetBool("clear-label"); clearLabel {
		req.LabelColor = models.Null[string]()
	}

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return cli.HandleError(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	card, err := cliInstance.App.CardService.UpdateCard(ctx, req)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	return formatter.Success(card, fmt.Sprintf("✓ Card %d updated successfully", card.ID))
}
