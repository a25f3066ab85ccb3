package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendscope-dev/spendscope/internal/model"
)

// subscriptionCategory is the underlying category the subscription view
// tracks. Matching is on the raw per-transaction label, not the display
// category.
const subscriptionCategory = "Subscriptions"

// subscriptionTopN caps the merchant breakdown.
const subscriptionTopN = 12

// Subscriptions is the recurring-spend section: total, month timeline,
// and the biggest subscription merchants.
type Subscriptions struct {
	Total        decimal.Decimal
	Months       []Bucket // most recent first
	CurrentMonth string   // month key containing now, for highlighting
	Merchants    []MerchantTotal
}

// SubscriptionReport aggregates the Subscriptions-category slice of txns.
func SubscriptionReport(txns []model.Transaction, now time.Time) Subscriptions {
	var subs []model.Transaction
	for _, t := range txns {
		if t.Category == subscriptionCategory {
			subs = append(subs, t)
		}
	}

	total := decimal.Zero
	for _, t := range subs {
		total = total.Add(t.Amount)
	}

	months := TimeBuckets(subs, Monthly)
	reverse(months)

	return Subscriptions{
		Total:        total,
		Months:       months,
		CurrentMonth: now.Format("2006-01"),
		Merchants:    TopMerchants(MerchantRollups(subs), subscriptionTopN),
	}
}
