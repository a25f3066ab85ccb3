package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/spendscope-dev/spendscope/internal/model"
	"github.com/spendscope-dev/spendscope/internal/rules"
)

// SortOrder selects rollup ordering: by descending total or by name.
type SortOrder string

const (
	ByAmount SortOrder = "amount"
	ByName   SortOrder = "name"
)

// MerchantTotal is the spend accumulated under one normalized merchant.
type MerchantTotal struct {
	Name  string
	Total decimal.Decimal
	Count int
}

// SubCategory is the spend of one underlying category inside a grouped
// display category.
type SubCategory struct {
	Name  string
	Total decimal.Decimal
	Count int
}

// CategoryRollup aggregates one display category: total, share of grand
// total, per-month and per-merchant sub-totals, and, for display groups,
// the underlying category breakdown.
type CategoryRollup struct {
	Name           string
	Config         rules.Config
	Total          decimal.Decimal
	Count          int
	Percent        float64 // of the set's grand total
	MonthlyAverage decimal.Decimal
	Monthly        []Bucket        // most recent month first
	Merchants      []MerchantTotal // descending total
	SubCategories  []SubCategory   // descending total; empty unless grouped
}

type rollupAccum struct {
	total     decimal.Decimal
	count     int
	monthly   map[string]decimal.Decimal
	merchants *merchantAccum
	subTotal  map[string]decimal.Decimal
	subCount  map[string]int
	subOrder  []string
}

// CategoryRollups groups txns by display category. Percentages are
// relative to the grand total of txns, so the rollup totals always sum
// back to it. Sort ties keep first-seen order.
func CategoryRollups(txns []model.Transaction, engine *rules.Engine, order SortOrder) []CategoryRollup {
	grand := decimal.Zero
	for _, t := range txns {
		grand = grand.Add(t.Amount)
	}

	accums := make(map[string]*rollupAccum)
	var names []string

	for _, t := range txns {
		display := engine.DisplayCategory(t.Category)
		acc, ok := accums[display]
		if !ok {
			acc = &rollupAccum{
				total:     decimal.Zero,
				monthly:   make(map[string]decimal.Decimal),
				merchants: newMerchantAccum(),
				subTotal:  make(map[string]decimal.Decimal),
				subCount:  make(map[string]int),
			}
			accums[display] = acc
			names = append(names, display)
		}

		acc.total = acc.total.Add(t.Amount)
		acc.count++

		monthKey := t.MonthKey()
		acc.monthly[monthKey] = acc.monthly[monthKey].Add(t.Amount)

		acc.merchants.add(NormalizeMerchant(t.Description), t.Amount)

		// Sub-category breakdown only exists where grouping changed the label.
		if display != t.Category {
			if _, seen := acc.subTotal[t.Category]; !seen {
				acc.subOrder = append(acc.subOrder, t.Category)
			}
			acc.subTotal[t.Category] = acc.subTotal[t.Category].Add(t.Amount)
			acc.subCount[t.Category]++
		}
	}

	rollups := make([]CategoryRollup, 0, len(names))
	for _, name := range names {
		acc := accums[name]
		r := CategoryRollup{
			Name:      name,
			Config:    engine.DisplayConfig(name),
			Total:     acc.total,
			Count:     acc.count,
			Monthly:   monthBuckets(acc.monthly),
			Merchants: acc.merchants.sorted(),
		}
		if !grand.IsZero() {
			r.Percent, _ = acc.total.Div(grand).Mul(decimal.NewFromInt(100)).Float64()
		}
		if months := len(acc.monthly); months > 0 {
			r.MonthlyAverage = acc.total.Div(decimal.NewFromInt(int64(months)))
		} else {
			r.MonthlyAverage = decimal.Zero
		}
		for _, sub := range acc.subOrder {
			r.SubCategories = append(r.SubCategories, SubCategory{
				Name:  sub,
				Total: acc.subTotal[sub],
				Count: acc.subCount[sub],
			})
		}
		sort.SliceStable(r.SubCategories, func(i, j int) bool {
			return r.SubCategories[i].Total.GreaterThan(r.SubCategories[j].Total)
		})
		rollups = append(rollups, r)
	}

	switch order {
	case ByName:
		sort.SliceStable(rollups, func(i, j int) bool { return rollups[i].Name < rollups[j].Name })
	default:
		sort.SliceStable(rollups, func(i, j int) bool {
			return rollups[i].Total.GreaterThan(rollups[j].Total)
		})
	}
	return rollups
}

// MerchantRollups groups txns by normalized merchant name, descending by
// total with first-seen order breaking ties.
func MerchantRollups(txns []model.Transaction) []MerchantTotal {
	acc := newMerchantAccum()
	for _, t := range txns {
		acc.add(NormalizeMerchant(t.Description), t.Amount)
	}
	return acc.sorted()
}

// TopMerchants returns at most n entries of a merchant rollup.
func TopMerchants(merchants []MerchantTotal, n int) []MerchantTotal {
	if n > len(merchants) {
		n = len(merchants)
	}
	out := make([]MerchantTotal, n)
	copy(out, merchants[:n])
	return out
}

// merchantAccum accumulates per-merchant totals preserving first-seen
// order for stable tie-breaks.
type merchantAccum struct {
	totals map[string]decimal.Decimal
	counts map[string]int
	order  []string
}

func newMerchantAccum() *merchantAccum {
	return &merchantAccum{
		totals: make(map[string]decimal.Decimal),
		counts: make(map[string]int),
	}
}

func (a *merchantAccum) add(name string, amount decimal.Decimal) {
	if _, seen := a.totals[name]; !seen {
		a.order = append(a.order, name)
	}
	a.totals[name] = a.totals[name].Add(amount)
	a.counts[name]++
}

func (a *merchantAccum) sorted() []MerchantTotal {
	out := make([]MerchantTotal, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, MerchantTotal{Name: name, Total: a.totals[name], Count: a.counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total.GreaterThan(out[j].Total) })
	return out
}

// monthBuckets converts a month-key total map into a most-recent-first
// bucket list.
func monthBuckets(totals map[string]decimal.Decimal) []Bucket {
	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	buckets := make([]Bucket, 0, len(keys))
	for _, k := range keys {
		buckets = append(buckets, Bucket{Key: k, Total: totals[k]})
	}
	return buckets
}
