package card

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ShowCmd returns the card show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show card details",
		Long: `Show a card with its column, label and Markdown-rendered description.

Examples:
  kanban card show --id=4
  kanban card show --id=4 --json
`,
		RunE: runShow,
	}

	cmd.Flags().Int("id", 0, "Card ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cli.AddOutputFlags(cmd, true)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewOutputFormatter(cmd)

	cardID, _ := cmd.Flags().GetInt("id")

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return cli.HandleError(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	card, err := cliInstance.App.CardService.GetCard(ctx, cardID)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(card, "")
	}

	column, err := cliInstance.App.ColumnService.GetColumn(ctx, card.ColumnID)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	_, err = fmt.Fprintln(formatter.Writer(), renderCard(card, column))
	return err
}

func renderCard(card *models.Card, column *models.Column) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d: %s", card.ID, card.Title)))
	content.WriteString("\n\n")

	content.WriteString(fmt.Sprintf("%s %s  %s %s\n",
		styles.LabelStyle.Render("Column:"),
		styles.ValueStyle.Render(column.Title),
		styles.LabelStyle.Render("Position:"),
		styles.ValueStyle.Render(fmt.Sprintf("%d of %d", card.PositionIndex+1, len(column.Cards))),
	))

	if swatch := styles.LabelSwatch(card.LabelColor); swatch != "" {
		content.WriteString(fmt.Sprintf("%s %s\n", styles.LabelStyle.Render("Label:"), swatch))
	}

	content.WriteString(fmt.Sprintf("%s %s\n",
		styles.LabelStyle.Render("Created:"),
		styles.SubtitleStyle.Render(card.CreatedAt.Local().Format("Jan 2, 2006 3:04 PM")),
	))
	content.WriteString(fmt.Sprintf("%s %s\n",
		styles.LabelStyle.Render("Updated:"),
		styles.SubtitleStyle.Render(card.UpdatedAt.Local().Format("Jan 2, 2006 3:04 PM")),
	))

	content.WriteString(styles.SectionStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(styles.RenderMarkdown(card.Description, styles.CardWidth-6))

	return styles.RenderCard(content.String())
}
