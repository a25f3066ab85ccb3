package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendscope-dev/spendscope/internal/ledger"
)

func newTransactionsCommand() *cobra.Command {
	var flags sessionFlags
	var sortBy string
	var ascending bool
	var limit int

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, txns, err := flags.session(cmd)
			if err != nil {
				return err
			}

			var field ledger.SortField
			switch sortBy {
			case "date":
				field = ledger.SortByDate
			case "description":
				field = ledger.SortByDescription
			case "amount":
				field = ledger.SortByAmount
			default:
				return fmt.Errorf("unknown sort field %q (want date, description, or amount)", sortBy)
			}
			ledger.Sort(txns, field, ascending)

			if limit > 0 && limit < len(txns) {
				txns = txns[:limit]
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-12s %-44s %-24s %10s\n", "DATE", "DESCRIPTION", "CATEGORY", "AMOUNT")
			for _, t := range txns {
				name := engine.DisplayCategory(t.Category)
				cfg := engine.DisplayConfig(name)
				display := fmt.Sprintf("%s %s", cfg.Icon, name)
				fmt.Fprintf(out, "%-12s %-44s %-24s %10s\n",
					t.Date.Format("2006-01-02"), t.Description, display, money(t.Amount))
			}
			fmt.Fprintf(out, "\n%d transactions\n", len(txns))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&sortBy, "sort", "date", "sort field: date, description, or amount")
	cmd.Flags().BoolVar(&ascending, "asc", false, "sort ascending instead of descending")
	cmd.Flags().IntVar(&limit, "limit", 0, "show at most this many rows (0 for all)")
	return cmd
}
