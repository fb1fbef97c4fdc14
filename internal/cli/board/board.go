// Package board renders the whole board from the command line.
package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/models"
)

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show every column with its cards",
		Long: `Print the board: columns left to right, cards top to bottom.

Examples:
  kanban board
  kanban board --json
`,
		RunE: runBoard,
	}

	cli.AddOutputFlags(cmd, false)

	return cmd
}

func runBoard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewOutputFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return cli.HandleError(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	columns, err := cliInstance.App.ColumnService.ListColumns(ctx)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	if formatter.JSON {
		board := make([]models.ColumnWithCards, 0, len(columns))
		for _, col := range columns {
			board = append(board, col.WithCards())
		}
		return formatter.JSONData(board)
	}

	_, err = fmt.Fprintln(formatter.Writer(), Render(columns))
	return err
}

// Render lays the columns out side by side
func Render(columns []*models.Column) string {
	if len(columns) == 0 {
		return styles.SubtitleStyle.Render("The board has no columns. Create one with: kanban column create --title=\"To Do\"")
	}

	rendered := make([]string, 0, len(columns))
	for _, col := range columns {
		rendered = append(rendered, renderColumn(col))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderColumn(col *models.Column) string {
	var b strings.Builder

	header := fmt.Sprintf("%s (%d)", cli.Truncate(col.Title, styles.ColumnWidth-8), len(col.Cards))
	b.WriteString(styles.ColumnHeaderStyle.Render(header))
	b.WriteString("\n")

	if len(col.Cards) == 0 {
		b.WriteString(styles.SubtitleStyle.Italic(true).Render("empty"))
	}
	for i, card := range col.Cards {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderCard(card))
	}

	return styles.ColumnStyle.Render(b.String())
}

func renderCard(card *models.Card) string {
	line := styles.SubtitleStyle.Render(fmt.Sprintf("#%d", card.ID)) + " " + styles.ValueStyle.Render(card.Title)
	if swatch := styles.LabelSwatch(card.LabelColor); swatch != "" {
		line += "\n" + swatch
	}
	return styles.BoardCardStyle.Render(line)
}
