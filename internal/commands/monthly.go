package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendscope-dev/spendscope/internal/report"
)

func newMonthlyCommand() *cobra.Command {
	var flags sessionFlags
	var withTxns bool

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Show the month-by-month spending breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, txns, err := flags.session(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			stats := report.MonthlyTotals(txns)

			fmt.Fprintln(out, headingStyle.Render("Monthly Spending"))
			fmt.Fprintf(out, "  Average %s   High %s   Low %s\n\n",
				money(stats.Average), highStyle.Render(money(stats.Highest)), lowStyle.Render(money(stats.Lowest)))

			for _, m := range report.MonthlyBreakdown(txns, engine) {
				style := bandStyle(stats.Band(m.Total))
				pct := stats.PercentVsAverage(m.Total)
				fmt.Fprintf(out, "%s  %s  %s\n",
					headingStyle.Render(m.Key), style.Render(money(m.Total)),
					mutedStyle.Render(fmt.Sprintf("%d txns, %+.0f%% vs average", m.Count, pct)))

				for _, c := range m.Categories {
					catStyle := categoryStyle(c.Config.Color)
					fmt.Fprintf(out, "  %s %-28s %10s  %5.1f%%\n",
						c.Config.Icon, catStyle.Render(c.Name), money(c.Total), c.Percent)
					for _, sub := range c.SubCategories {
						fmt.Fprintf(out, "      %-28s %10s  %s\n",
							sub.Name, money(sub.Total), mutedStyle.Render(fmt.Sprintf("%d txns", sub.Count)))
					}
					if withTxns {
						for _, t := range c.Transactions {
							fmt.Fprintf(out, "      %s  %-40s %10s\n",
								t.Date.Format("2006-01-02"), t.Description, money(t.Amount))
						}
					}
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&withTxns, "transactions", false, "list each month's transactions per category")
	return cmd
}
