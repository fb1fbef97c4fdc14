package column

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// ReorderCmd returns the column reorder subcommand
func ReorderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder <column-id>...",
		Short: "Reorder the board's columns",
		Long: `Place columns in the given order. Columns left out keep their relative
order after the named ones; unknown IDs are ignored.

Examples:
  kanban column reorder 3 1 2
  kanban column reorder 3,1,2 --json
`,
		RunE: runReorder,
	}

	cli.AddOutputFlags(cmd, false)

	return cmd
}

func runReorder(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewOutputFormatter(cmd)

	ids, err := cli.ParseIDs(args, "column")
	if err != nil {
		return cli.UsageError(formatter, "%v", err)
	}

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return cli.HandleError(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	if err := cliInstance.App.ColumnService.ReorderColumns(ctx, ids); err != nil {
		return cli.HandleError(formatter, err)
	}

	columns, err := cliInstance.App.ColumnService.ListColumns(ctx)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	order := make([]int, 0, len(columns))
	titles := make([]string, 0, len(columns))
	for _, col := range columns {
		order = append(order, col.ID)
		titles = append(titles, col.Title)
	}

	if formatter.JSON {
		return formatter.JSONData(map[string]any{"status": "ok", "order": order})
	}

	fmt.Fprintf(formatter.Writer(), "✓ Columns reordered: %s\n", strings.Join(titles, " → "))
	return nil
}
