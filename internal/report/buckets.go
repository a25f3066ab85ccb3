package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendscope-dev/spendscope/internal/model"
)

// Granularity selects the time-bucket size for spend-over-time totals.
type Granularity string

const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
)

// Bucket is one time bucket and its spend total.
type Bucket struct {
	Key   string
	Total decimal.Decimal
}

// TimeBuckets sums amounts per time bucket at the given granularity,
// returned in ascending key order (keys are built so lexical order is
// the display order).
func TimeBuckets(txns []model.Transaction, g Granularity) []Bucket {
	totals := make(map[string]decimal.Decimal)
	for _, t := range txns {
		key := bucketKey(t.Date, g)
		totals[key] = totals[key].Add(t.Amount)
	}

	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buckets := make([]Bucket, 0, len(keys))
	for _, k := range keys {
		buckets = append(buckets, Bucket{Key: k, Total: totals[k]})
	}
	return buckets
}

func bucketKey(date time.Time, g Granularity) string {
	switch g {
	case Weekly:
		return weekKey(date)
	case Monthly:
		return date.Format("2006-01")
	default:
		return date.Format("2006-01-02")
	}
}

// weekKey labels the week containing date by its start day (the previous
// Sunday): year, week-of-month of that Sunday, and its month, for example
// "2024-W01-03". Not ISO week numbering; kept as the dashboard's
// established bucketing.
func weekKey(date time.Time) string {
	weekStart := date.AddDate(0, 0, -int(date.Weekday()))
	weekOfMonth := (weekStart.Day() + 6) / 7
	return fmt.Sprintf("%04d-W%02d-%02d", weekStart.Year(), weekOfMonth, int(weekStart.Month()))
}

// reverse flips a bucket slice in place, for most-recent-first display.
func reverse(buckets []Bucket) {
	for i, j := 0, len(buckets)-1; i < j; i, j = i+1, j-1 {
		buckets[i], buckets[j] = buckets[j], buckets[i]
	}
}
