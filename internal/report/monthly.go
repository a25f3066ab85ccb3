package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/spendscope-dev/spendscope/internal/model"
	"github.com/spendscope-dev/spendscope/internal/rules"
)

// MonthCategory is one display category's slice of a month.
type MonthCategory struct {
	Name          string
	Config        rules.Config
	Total         decimal.Decimal
	Percent       float64 // of the month's total
	SubCategories []SubCategory       // descending total; empty unless grouped
	Transactions  []model.Transaction // date descending
}

// MonthBreakdown is one month of the monthly view: total, count, and the
// display categories sorted by descending spend.
type MonthBreakdown struct {
	Key        string // "YYYY-MM"
	Total      decimal.Decimal
	Count      int
	Categories []MonthCategory
}

type monthAccum struct {
	total    decimal.Decimal
	count    int
	catTotal map[string]decimal.Decimal
	catTxns  map[string][]model.Transaction
	catOrder []string
	subTotal map[string]map[string]decimal.Decimal
	subCount map[string]map[string]int
	subOrder map[string][]string
}

// MonthlyBreakdown groups txns by month and display category, months
// most-recent-first, categories by descending total with first-seen
// order breaking ties.
func MonthlyBreakdown(txns []model.Transaction, engine *rules.Engine) []MonthBreakdown {
	accums := make(map[string]*monthAccum)
	var monthKeys []string

	for _, t := range txns {
		key := t.MonthKey()
		acc, ok := accums[key]
		if !ok {
			acc = &monthAccum{
				total:    decimal.Zero,
				catTotal: make(map[string]decimal.Decimal),
				catTxns:  make(map[string][]model.Transaction),
				subTotal: make(map[string]map[string]decimal.Decimal),
				subCount: make(map[string]map[string]int),
				subOrder: make(map[string][]string),
			}
			accums[key] = acc
			monthKeys = append(monthKeys, key)
		}

		display := engine.DisplayCategory(t.Category)
		if _, seen := acc.catTotal[display]; !seen {
			acc.catOrder = append(acc.catOrder, display)
		}
		acc.total = acc.total.Add(t.Amount)
		acc.count++
		acc.catTotal[display] = acc.catTotal[display].Add(t.Amount)
		acc.catTxns[display] = append(acc.catTxns[display], t)

		if display != t.Category {
			if acc.subTotal[display] == nil {
				acc.subTotal[display] = make(map[string]decimal.Decimal)
				acc.subCount[display] = make(map[string]int)
			}
			if _, seen := acc.subTotal[display][t.Category]; !seen {
				acc.subOrder[display] = append(acc.subOrder[display], t.Category)
			}
			acc.subTotal[display][t.Category] = acc.subTotal[display][t.Category].Add(t.Amount)
			acc.subCount[display][t.Category]++
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(monthKeys)))

	months := make([]MonthBreakdown, 0, len(monthKeys))
	for _, key := range monthKeys {
		acc := accums[key]
		mb := MonthBreakdown{Key: key, Total: acc.total, Count: acc.count}

		for _, name := range acc.catOrder {
			mc := MonthCategory{
				Name:   name,
				Config: engine.DisplayConfig(name),
				Total:  acc.catTotal[name],
			}
			if !acc.total.IsZero() {
				mc.Percent, _ = mc.Total.Div(acc.total).Mul(decimal.NewFromInt(100)).Float64()
			}
			for _, sub := range acc.subOrder[name] {
				mc.SubCategories = append(mc.SubCategories, SubCategory{
					Name:  sub,
					Total: acc.subTotal[name][sub],
					Count: acc.subCount[name][sub],
				})
			}
			sort.SliceStable(mc.SubCategories, func(i, j int) bool {
				return mc.SubCategories[i].Total.GreaterThan(mc.SubCategories[j].Total)
			})

			mc.Transactions = append(mc.Transactions, acc.catTxns[name]...)
			sort.SliceStable(mc.Transactions, func(i, j int) bool {
				return mc.Transactions[i].Date.After(mc.Transactions[j].Date)
			})

			mb.Categories = append(mb.Categories, mc)
		}

		sort.SliceStable(mb.Categories, func(i, j int) bool {
			return mb.Categories[i].Total.GreaterThan(mb.Categories[j].Total)
		})
		months = append(months, mb)
	}
	return months
}
