package card

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	cardservice "github.com/thenoetrevino/kanban/internal/services/card"
)

// CreateCmd returns the card create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new card",
		Long: `Create a card at the bottom of a column.

Examples:
  # Create a card (human-readable output)
  kanban card create --column=1 --title="Fix login bug"

  # With a description and label
  kanban card create --column=1 --title="Fix login bug" \
    --description="Repro: log in twice" --label-color="#ff0000"

  # Quiet mode for bash capture
  CARD_ID=$(kanban card create --column=1 --title="Fix login bug" --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().Int("column", 0, "Column ID (required)")
	if err := cmd.MarkFlagRequired("column"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("title", "", "Card title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Card description (Markdown)")
	cmd.Flags().String("label-color", "", "Label color as CSS hex (#fff or #ffffff)")

	cli.AddOutputFlags(cmd, true)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewOutputFormatter(cmd)

	columnID, _ := cmd.Flags().GetInt("column")
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")

	var labelColor *string
	if cmd.Flags().Changed("label-color") {
		color, _ := cmd.Flags().GetString("label-color")
		labelColor = &color
	}

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return cli.HandleError(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	card, err := cliInstance.App.CardService.CreateCard(ctx, cardservice.CreateCardRequest{
		ColumnID:    columnID,
		Title:       title,
		Description: description,
		LabelColor:  labelColor,
	})
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	return formatter.Success(card,
		fmt.Sprintf("✓ Card '%s' created successfully (ID: %d, column %d, position %d)", card.Title, card.ID, card.ColumnID, card.PositionIndex))
}
