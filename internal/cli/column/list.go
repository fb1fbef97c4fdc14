package column

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List columns",
		Long: `List all columns on the board (in order).

Examples:
  # Human-readable list
  kanban column list

  # JSON output for agents (columns include their cards)
  kanban column list --json

  # Quiet mode (one ID per line)
  kanban column list --quiet
`,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd, true)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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

	out := formatter.Writer()

	if formatter.Quiet {
		for _, col := range columns {
			fmt.Fprintf(out, "%d\n", col.ID)
		}
		return nil
	}

	if formatter.JSON {
		board := make([]models.ColumnWithCards, 0, len(columns))
		for _, col := range columns {
			board = append(board, col.WithCards())
		}
		return formatter.JSONData(board)
	}

	if len(columns) == 0 {
		fmt.Fprintln(out, "No columns found")
		return nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.SubtitleStyle).
		Headers("ID", "POS", "TITLE", "CARDS")
	for _, col := range columns {
		t.Row(
			strconv.Itoa(col.ID),
			strconv.Itoa(col.PositionIndex),
			cli.Truncate(col.Title, 40),
			strconv.Itoa(len(col.Cards)),
		)
	}
	_, err = fmt.Fprintln(out, t.Render())
	return err
}
