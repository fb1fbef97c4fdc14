package column

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a column",
		Long: `Delete a column by ID (requires confirmation unless --force or --quiet).

Warning: Deleting a column also deletes every card in it.

Examples:
  # Delete with confirmation
  kanban column delete --id=1

  # Skip confirmation
  kanban column delete --id=1 --force
`,
		RunE: runDelete,
	}

	// Required flags
	cmd.Flags().Int("id", 0, "Column ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd, true)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewOutputFormatter(cmd)

	columnID, _ := cmd.Flags().GetInt("id")
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return cli.HandleError(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	// Get column details for confirmation
	column, err := cliInstance.App.ColumnService.GetColumn(ctx, columnID)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	if !force && !formatter.Quiet && !formatter.JSON {
		prompt := fmt.Sprintf("Delete column #%d '%s' and its %d card(s)?", column.ID, column.Title, len(column.Cards))
		if !cli.Confirm(cmd, prompt) {
			fmt.Fprintln(formatter.Writer(), "Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.ColumnService.DeleteColumn(ctx, columnID); err != nil {
		return cli.HandleError(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.JSONData(map[string]any{"column_id": columnID})
	}

	fmt.Fprintf(formatter.Writer(), "✓ Column %d deleted successfully\n", columnID)
	return nil
}
