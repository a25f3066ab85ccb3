// Package report computes dashboard aggregates over a transaction set.
// Every function takes an already-filtered slice and returns plain data;
// rendering belongs to the caller. Empty input always yields zero totals
// and empty slices, never an error.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendscope-dev/spendscope/internal/model"
)

// Summary is the headline stat row: grand total, counts, and the
// current-calendar-month subtotal.
type Summary struct {
	Total         decimal.Decimal
	Count         int
	CategoryCount int
	ThisMonth     decimal.Decimal
}

// Summarize computes the headline stats. The current month is the one
// containing now, matched by month and year.
func Summarize(txns []model.Transaction, now time.Time) Summary {
	s := Summary{Total: decimal.Zero, ThisMonth: decimal.Zero}
	categories := make(map[string]struct{})

	for _, t := range txns {
		s.Total = s.Total.Add(t.Amount)
		s.Count++
		categories[t.Category] = struct{}{}
		if t.Date.Month() == now.Month() && t.Date.Year() == now.Year() {
			s.ThisMonth = s.ThisMonth.Add(t.Amount)
		}
	}
	s.CategoryCount = len(categories)
	return s
}

// Recent returns the first n transactions of txns (callers pass a
// date-descending slice, so these are the newest).
func Recent(txns []model.Transaction, n int) []model.Transaction {
	if n > len(txns) {
		n = len(txns)
	}
	out := make([]model.Transaction, n)
	copy(out, txns[:n])
	return out
}
