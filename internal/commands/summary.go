package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/spendscope-dev/spendscope/internal/report"
)

func newSummaryCommand() *cobra.Command {
	var flags sessionFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show headline spending stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, svc, txns, err := flags.session(cmd)
			if err != nil {
				return err
			}

			s := report.Summarize(txns, time.Now())
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, headingStyle.Render("Spending Summary"))
			fmt.Fprintf(out, "  Total spend:    %s\n", totalStyle.Render(money(s.Total)))
			fmt.Fprintf(out, "  This month:     %s\n", money(s.ThisMonth))
			fmt.Fprintf(out, "  Transactions:   %d\n", s.Count)
			fmt.Fprintf(out, "  Categories:     %d\n", s.CategoryCount)

			counts := svc.CountBySource()
			if len(counts) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, headingStyle.Render("Statements"))
				for _, source := range svc.Sources() {
					fmt.Fprintf(out, "  %-40s %d transactions\n", source, counts[source])
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
