package report

import (
	"github.com/shopspring/decimal"

	"github.com/spendscope-dev/spendscope/internal/model"
)

// Band buckets a month's spend relative to the observed range, used to
// color-code months (low third, middle third, high third).
type Band int

const (
	BandLow Band = iota
	BandMid
	BandHigh
)

// MonthlyStats summarizes spend across all months present in a set.
type MonthlyStats struct {
	Months  []Bucket // ascending month keys
	Average decimal.Decimal
	Highest decimal.Decimal
	Lowest  decimal.Decimal
}

// MonthlyTotals computes per-month totals and their average/extremes.
// An empty set yields zero stats and no months.
func MonthlyTotals(txns []model.Transaction) MonthlyStats {
	stats := MonthlyStats{
		Average: decimal.Zero,
		Highest: decimal.Zero,
		Lowest:  decimal.Zero,
	}

	stats.Months = TimeBuckets(txns, Monthly)
	if len(stats.Months) == 0 {
		return stats
	}

	sum := decimal.Zero
	stats.Highest = stats.Months[0].Total
	stats.Lowest = stats.Months[0].Total
	for _, m := range stats.Months {
		sum = sum.Add(m.Total)
		if m.Total.GreaterThan(stats.Highest) {
			stats.Highest = m.Total
		}
		if m.Total.LessThan(stats.Lowest) {
			stats.Lowest = m.Total
		}
	}
	stats.Average = sum.Div(decimal.NewFromInt(int64(len(stats.Months))))
	return stats
}

// Band places a month total in the low/mid/high third of the observed
// range. A flat range (highest == lowest) is all low.
func (s MonthlyStats) Band(total decimal.Decimal) Band {
	span, _ := s.Highest.Sub(s.Lowest).Float64()
	if span == 0 {
		span = 1
	}
	v, _ := total.Sub(s.Lowest).Float64()
	ratio := v / span
	switch {
	case ratio < 1.0/3:
		return BandLow
	case ratio < 2.0/3:
		return BandMid
	default:
		return BandHigh
	}
}

// PercentVsAverage returns how far a month total sits from the average,
// in percent (positive = above average). Zero average yields zero.
func (s MonthlyStats) PercentVsAverage(total decimal.Decimal) float64 {
	if s.Average.IsZero() {
		return 0
	}
	pct, _ := total.Sub(s.Average).Div(s.Average).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}
