package commands

import (
	"github.com/spf13/cobra"

	"github.com/spendscope-dev/spendscope/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "spendscope",
		Short:   "Credit card spending analysis",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newDashboardCommand())
	rootCmd.AddCommand(newMonthlyCommand())
	rootCmd.AddCommand(newTransactionsCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newCategoriesCommand())
	rootCmd.AddCommand(newClassifyCommand())

	return rootCmd
}
