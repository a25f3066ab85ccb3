package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/spendscope-dev/spendscope/internal/report"
)

const (
	dashboardMerchants    = 10
	dashboardRecent       = 10
	categoryMerchants     = 3
	categoryMonthlyMonths = 6
)

func newDashboardCommand() *cobra.Command {
	var flags sessionFlags
	var granularity string
	var detail bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the full spending dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, txns, err := flags.session(cmd)
			if err != nil {
				return err
			}

			var gran report.Granularity
			switch granularity {
			case "daily":
				gran = report.Daily
			case "weekly":
				gran = report.Weekly
			case "monthly":
				gran = report.Monthly
			default:
				return fmt.Errorf("unknown granularity %q (want daily, weekly, or monthly)", granularity)
			}

			now := time.Now()
			out := cmd.OutOrStdout()

			s := report.Summarize(txns, now)
			fmt.Fprintf(out, "%s   %s spent across %d transactions (%s this month)\n\n",
				headingStyle.Render("Dashboard"), totalStyle.Render(money(s.Total)), s.Count, money(s.ThisMonth))

			buckets := report.TimeBuckets(txns, gran)
			if len(buckets) > 0 {
				fmt.Fprintln(out, headingStyle.Render("Spending Over Time"))
				var maxBucket float64
				for _, b := range buckets {
					if v, _ := b.Total.Float64(); v > maxBucket {
						maxBucket = v
					}
				}
				for _, b := range buckets {
					v, _ := b.Total.Float64()
					fmt.Fprintf(out, "  %-12s %10s  %s\n", b.Key, money(b.Total), bar(v, maxBucket))
				}
				fmt.Fprintln(out)
			}

			rollups := report.CategoryRollups(txns, engine, report.ByAmount)

			// Categories. Subscriptions gets its own section below.
			fmt.Fprintln(out, headingStyle.Render("Categories"))
			var maxTotal float64
			for _, r := range rollups {
				if v, _ := r.Total.Float64(); v > maxTotal {
					maxTotal = v
				}
			}
			for _, r := range rollups {
				if r.Name == "Subscriptions" {
					continue
				}
				v, _ := r.Total.Float64()
				style := categoryStyle(r.Config.Color)
				fmt.Fprintf(out, "  %s %-28s %10s  %5.1f%%  %s %s\n",
					r.Config.Icon, style.Render(r.Name), money(r.Total), r.Percent,
					style.Render(bar(v, maxTotal)),
					mutedStyle.Render(fmt.Sprintf("avg %s/mo", money(r.MonthlyAverage))))
				for _, sub := range r.SubCategories {
					fmt.Fprintf(out, "      %-28s %10s  %s\n",
						sub.Name, money(sub.Total), mutedStyle.Render(fmt.Sprintf("%d txns", sub.Count)))
				}
				if detail {
					monthly := r.Monthly
					if len(monthly) > categoryMonthlyMonths {
						monthly = monthly[:categoryMonthlyMonths]
					}
					for _, m := range monthly {
						fmt.Fprintf(out, "      %s%-21s %10s\n", mutedStyle.Render("• "), m.Key, money(m.Total))
					}
					for _, m := range report.TopMerchants(r.Merchants, categoryMerchants) {
						fmt.Fprintf(out, "      %s%-21s %10s\n", mutedStyle.Render("@ "), m.Name, money(m.Total))
					}
				}
			}

			subs := report.SubscriptionReport(txns, now)
			if subs.Total.IsPositive() {
				fmt.Fprintln(out)
				fmt.Fprintf(out, "%s   %s total\n", headingStyle.Render("Subscriptions"), totalStyle.Render(money(subs.Total)))
				for _, m := range subs.Months {
					marker := " "
					if m.Key == subs.CurrentMonth {
						marker = "*"
					}
					fmt.Fprintf(out, "  %s %s  %10s\n", marker, m.Key, money(m.Total))
				}
				for _, m := range subs.Merchants {
					fmt.Fprintf(out, "    %-32s %10s  %s\n",
						m.Name, money(m.Total), mutedStyle.Render(fmt.Sprintf("%d txns", m.Count)))
				}
			}

			merchants := report.TopMerchants(report.MerchantRollups(txns), dashboardMerchants)
			if len(merchants) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, headingStyle.Render("Top Merchants"))
				for _, m := range merchants {
					fmt.Fprintf(out, "  %-32s %10s  %s\n",
						m.Name, money(m.Total), mutedStyle.Render(fmt.Sprintf("%d txns", m.Count)))
				}
			}

			recent := report.Recent(txns, dashboardRecent)
			if len(recent) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, headingStyle.Render("Recent Transactions"))
				for _, t := range recent {
					display := engine.DisplayCategory(t.Category)
					cfg := engine.DisplayConfig(display)
					fmt.Fprintf(out, "  %s  %-40s %10s  %s %s\n",
						t.Date.Format("2006-01-02"), t.Description, money(t.Amount),
						cfg.Icon, categoryStyle(cfg.Color).Render(display))
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&granularity, "granularity", "monthly", "spending-over-time bucket size: daily, weekly, or monthly")
	cmd.Flags().BoolVar(&detail, "detail", false, "show per-category monthly and merchant breakdowns")
	return cmd
}
