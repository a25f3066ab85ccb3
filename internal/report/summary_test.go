package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendscope-dev/spendscope/internal/model"
	"github.com/spendscope-dev/spendscope/internal/rules"
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

func txn(d time.Time, desc, category, amount string) model.Transaction {
	return model.Transaction{
		ID:          desc + "-" + amount,
		Date:        d,
		Description: desc,
		Category:    category,
		Amount:      dec(amount),
		Source:      "test.csv",
	}
}

// testEngine builds a small schema with one display group so grouping
// paths are exercised without the full default table.
func testEngine(t *testing.T) *rules.Engine {
	t.Helper()
	engine, err := rules.NewEngine(rules.Schema{
		Rules: []rules.Rule{
			{Label: "Pizza", Keywords: []string{"pizza"}, Color: "#16a34a", Icon: "🍕", Priority: 85},
			{Label: "Sushi", Keywords: []string{"sushi"}, Color: "#dc2626", Icon: "🍣", Priority: 85},
			{Label: "Groceries", Keywords: []string{"grocery"}, Color: "#84cc16", Icon: "🛒", Priority: 78},
			{Label: "Subscriptions", Keywords: []string{"netflix"}, Color: "#8b5cf6", Icon: "🔄", Priority: 88},
		},
		Groups: []rules.Group{
			{Name: "Dining", Children: []string{"Pizza", "Sushi"}, Color: "#f43f5e", Icon: "🍽️"},
		},
	})
	require.NoError(t, err)
	return engine
}

func TestSummarize(t *testing.T) {
	now := date(2024, 3, 20)
	txns := []model.Transaction{
		txn(date(2024, 3, 5), "PIZZA PLACE", "Pizza", "20.00"),
		txn(date(2024, 3, 10), "GROCERY MART", "Groceries", "80.00"),
		txn(date(2024, 2, 5), "SUSHI BAR", "Sushi", "45.00"),
	}

	s := Summarize(txns, now)
	assert.True(t, s.Total.Equal(dec("145.00")))
	assert.True(t, s.ThisMonth.Equal(dec("100.00")))
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 3, s.CategoryCount)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, date(2024, 3, 20))
	assert.True(t, s.Total.IsZero())
	assert.True(t, s.ThisMonth.IsZero())
	assert.Equal(t, 0, s.Count)
	assert.Equal(t, 0, s.CategoryCount)
}

func TestRecent(t *testing.T) {
	txns := []model.Transaction{
		txn(date(2024, 3, 10), "A", "Other", "1"),
		txn(date(2024, 3, 9), "B", "Other", "1"),
		txn(date(2024, 3, 8), "C", "Other", "1"),
	}

	recent := Recent(txns, 2)
	require.Len(t, recent, 2)
	assert.Equal(t, "A", recent[0].Description)
	assert.Equal(t, "B", recent[1].Description)

	assert.Len(t, Recent(txns, 10), 3)
	assert.Empty(t, Recent(nil, 5))
}
