package ledger

import (
	"strings"
	"time"

	"github.com/spendscope-dev/spendscope/internal/model"
)

// Filter is a transient transaction query. Each criterion applies only
// when set; set criteria are ANDed. Filtering never mutates the source
// transactions.
type Filter struct {
	From     time.Time // inclusive, start of day; zero = unbounded
	To       time.Time // inclusive through end of day; zero = unbounded
	Search   string    // case-insensitive substring of description or category
	Category string    // exact category equality
}

// Match reports whether t satisfies every set criterion.
func (f Filter) Match(t model.Transaction) bool {
	if !f.From.IsZero() && t.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && t.Date.After(endOfDay(f.To)) {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Description), needle) &&
			!strings.Contains(strings.ToLower(t.Category), needle) {
			return false
		}
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	return true
}

// endOfDay extends a date bound to 23:59:59.999 so a transaction dated on
// the bound day is included regardless of time-of-day.
func endOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999e6, d.Location())
}
