package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendscope-dev/spendscope/internal/model"
)

func TestSubscriptionReport(t *testing.T) {
	txns := []model.Transaction{
		txn(date(2024, 1, 3), "NETFLIX.COM", "Subscriptions", "16.99"),
		txn(date(2024, 2, 3), "NETFLIX.COM", "Subscriptions", "16.99"),
		txn(date(2024, 2, 10), "SPOTIFY", "Subscriptions", "10.99"),
		txn(date(2024, 2, 12), "GROCERY MART", "Groceries", "80.00"),
	}

	subs := SubscriptionReport(txns, date(2024, 2, 20))
	assert.True(t, subs.Total.Equal(dec("44.97")))
	assert.Equal(t, "2024-02", subs.CurrentMonth)

	// Most recent month first; the grocery spend does not leak in.
	require.Len(t, subs.Months, 2)
	assert.Equal(t, "2024-02", subs.Months[0].Key)
	assert.True(t, subs.Months[0].Total.Equal(dec("27.98")))
	assert.Equal(t, "2024-01", subs.Months[1].Key)

	require.Len(t, subs.Merchants, 2)
	assert.Equal(t, "NETFLIX.COM", subs.Merchants[0].Name)
	assert.Equal(t, 2, subs.Merchants[0].Count)
}

func TestSubscriptionReport_MatchesRawLabelOnly(t *testing.T) {
	// A grouped or differently-labeled category is not a subscription
	// even if the merchant looks like one.
	txns := []model.Transaction{
		txn(date(2024, 1, 3), "NETFLIX.COM", "Other", "16.99"),
	}

	subs := SubscriptionReport(txns, date(2024, 1, 20))
	assert.True(t, subs.Total.IsZero())
	assert.Empty(t, subs.Months)
	assert.Empty(t, subs.Merchants)
}
