package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendscope-dev/spendscope/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func txn(id string, d time.Time, desc, category, amount string) model.Transaction {
	return model.Transaction{
		ID:          id,
		Date:        d,
		Description: desc,
		Category:    category,
		Amount:      dec(amount),
		Source:      "test.csv",
	}
}

func TestAdd_SortsDateDescending(t *testing.T) {
	svc := NewService()
	added := svc.Add("test.csv", []model.Transaction{
		txn("a-0", date(2024, 1, 10), "OLD", "Other", "1.00"),
		txn("a-1", date(2024, 3, 5), "NEW", "Other", "2.00"),
		txn("a-2", date(2024, 2, 1), "MID", "Other", "3.00"),
	})
	require.Equal(t, 3, added)

	all := svc.All()
	require.Len(t, all, 3)
	assert.Equal(t, "NEW", all[0].Description)
	assert.Equal(t, "MID", all[1].Description)
	assert.Equal(t, "OLD", all[2].Description)
}

func TestAdd_DeduplicatesByID(t *testing.T) {
	svc := NewService()
	batch := []model.Transaction{
		txn("a-0", date(2024, 1, 10), "SPEND", "Other", "1.00"),
		txn("a-1", date(2024, 1, 11), "SPEND", "Other", "2.00"),
	}
	require.Equal(t, 2, svc.Add("test.csv", batch))

	// Re-adding the same file is a no-op.
	assert.Equal(t, 0, svc.Add("test.csv", batch))
	assert.Equal(t, 2, svc.Len())
}

func TestAdd_EqualDatesKeepInsertionOrder(t *testing.T) {
	svc := NewService()
	svc.Add("test.csv", []model.Transaction{
		txn("a-0", date(2024, 1, 10), "FIRST", "Other", "1.00"),
		txn("a-1", date(2024, 1, 10), "SECOND", "Other", "2.00"),
	})

	all := svc.All()
	assert.Equal(t, "FIRST", all[0].Description)
	assert.Equal(t, "SECOND", all[1].Description)
}

func TestSourcesAndCounts(t *testing.T) {
	svc := NewService()
	svc.Add("jan.csv", []model.Transaction{
		{ID: "jan.csv-0", Date: date(2024, 1, 5), Source: "jan.csv", Amount: dec("1")},
	})
	svc.Add("feb.csv", []model.Transaction{
		{ID: "feb.csv-0", Date: date(2024, 2, 5), Source: "feb.csv", Amount: dec("1")},
		{ID: "feb.csv-1", Date: date(2024, 2, 6), Source: "feb.csv", Amount: dec("1")},
	})

	assert.Equal(t, []string{"jan.csv", "feb.csv"}, svc.Sources())
	assert.Equal(t, map[string]int{"jan.csv": 1, "feb.csv": 2}, svc.CountBySource())
}

func TestCategories_SortedDistinct(t *testing.T) {
	svc := NewService()
	svc.Add("test.csv", []model.Transaction{
		txn("a-0", date(2024, 1, 1), "x", "Groceries", "1"),
		txn("a-1", date(2024, 1, 2), "y", "Amazon", "1"),
		txn("a-2", date(2024, 1, 3), "z", "Groceries", "1"),
	})

	assert.Equal(t, []string{"Amazon", "Groceries"}, svc.Categories())
}

func TestClear(t *testing.T) {
	svc := NewService()
	svc.Add("test.csv", []model.Transaction{txn("a-0", date(2024, 1, 1), "x", "Other", "1")})
	svc.Clear()

	assert.Equal(t, 0, svc.Len())
	assert.Empty(t, svc.Sources())

	// Cleared IDs can be re-added.
	assert.Equal(t, 1, svc.Add("test.csv", []model.Transaction{txn("a-0", date(2024, 1, 1), "x", "Other", "1")}))
}
