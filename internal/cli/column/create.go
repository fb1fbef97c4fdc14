package column

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// CreateCmd returns the column create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new column",
		Long: `Create a new column at the right end of the board.

Examples:
  # Create column (human-readable output)
  kanban column create --title="Review"

  # JSON output for agents
  kanban column create --title="Review" --json

  # Quiet mode for bash capture
  COLUMN_ID=$(kanban column create --title="Review" --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Column title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cli.AddOutputFlags(cmd, true)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewOutputFormatter(cmd)

	title, _ := cmd.Flags().GetString("title")

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return cli.HandleError(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	column, err := cliInstance.App.ColumnService.CreateColumn(ctx, title)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	return formatter.Success(column,
		fmt.Sprintf("✓ Column '%s' created successfully (ID: %d, position %d)", column.Title, column.ID, column.PositionIndex))
}
