package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spendscope-dev/spendscope/internal/model"
)

func TestSort_ByAmount(t *testing.T) {
	txns := []model.Transaction{
		txn("a-0", date(2024, 1, 1), "MID", "Other", "5.00"),
		txn("a-1", date(2024, 1, 2), "BIG", "Other", "20.00"),
		txn("a-2", date(2024, 1, 3), "SMALL", "Other", "1.00"),
	}

	Sort(txns, SortByAmount, false)
	assert.Equal(t, "BIG", txns[0].Description)
	assert.Equal(t, "SMALL", txns[2].Description)

	Sort(txns, SortByAmount, true)
	assert.Equal(t, "SMALL", txns[0].Description)
	assert.Equal(t, "BIG", txns[2].Description)
}

func TestSort_ByDescription(t *testing.T) {
	txns := []model.Transaction{
		txn("a-0", date(2024, 1, 1), "banana", "Other", "1"),
		txn("a-1", date(2024, 1, 2), "apple", "Other", "1"),
	}

	Sort(txns, SortByDescription, true)
	assert.Equal(t, "apple", txns[0].Description)
}

func TestSort_DescendingKeepsTieOrder(t *testing.T) {
	txns := []model.Transaction{
		txn("a-0", date(2024, 1, 5), "FIRST", "Other", "3.00"),
		txn("a-1", date(2024, 1, 5), "SECOND", "Other", "3.00"),
		txn("a-2", date(2024, 1, 5), "THIRD", "Other", "3.00"),
	}

	// Equal keys must not reverse under descending sort.
	Sort(txns, SortByAmount, false)
	assert.Equal(t, "FIRST", txns[0].Description)
	assert.Equal(t, "SECOND", txns[1].Description)
	assert.Equal(t, "THIRD", txns[2].Description)

	Sort(txns, SortByDate, false)
	assert.Equal(t, "FIRST", txns[0].Description)
}
