package column

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// UpdateCmd returns the column update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rename a column",
		Long: `Rename an existing column.

Examples:
  kanban column update --id=2 --title="Doing"
  kanban column update --id=2 --title="Doing" --json
`,
		RunE: runUpdate,
	}

	// Required flags
	cmd.Flags().Int("id", 0, "Column ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("title", "", "New column title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cli.AddOutputFlags(cmd, true)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewOutputFormatter(cmd)

	columnID, _ := cmd.Flags().GetInt("id")
	title, _ := cmd.Flags().GetString("title")

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return cli.HandleError(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	column, err := cliInstance.App.ColumnService.UpdateColumn(ctx, columnID, title)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	return formatter.Success(column, fmt.Sprintf("✓ Column %d renamed to '%s'", column.ID, column.Title))
}
