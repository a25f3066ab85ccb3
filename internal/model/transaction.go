package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single classified spend parsed from a statement CSV.
// It is immutable once created: the category assigned at parse time is
// never recomputed, and aggregation only reads from it.
type Transaction struct {
	ID          string          // "{source}-{index}", index counts emitted rows per file
	Date        time.Time       // day granularity, midnight UTC
	Description string          // trimmed merchant/memo text
	Amount      decimal.Decimal // debit amount, always > 0
	Category    string          // rule label or "Other"
	Source      string          // originating file identifier
}

// MonthKey returns the transaction's month bucket, e.g. "2024-03".
func (t Transaction) MonthKey() string {
	return t.Date.Format("2006-01")
}

// DayKey returns the transaction's day bucket, e.g. "2024-03-07".
func (t Transaction) DayKey() string {
	return t.Date.Format("2006-01-02")
}
