package ledger

import (
	"sort"
	"strings"

	"github.com/spendscope-dev/spendscope/internal/model"
)

// SortField names a sortable transaction column.
type SortField string

const (
	SortByDate        SortField = "date"
	SortByDescription SortField = "description"
	SortByAmount      SortField = "amount"
)

// Sort orders txns in place by field. Ties keep their existing order.
func Sort(txns []model.Transaction, field SortField, ascending bool) {
	sort.SliceStable(txns, func(i, j int) bool {
		var less bool
		switch field {
		case SortByDescription:
			less = strings.Compare(txns[i].Description, txns[j].Description) < 0
		case SortByAmount:
			less = txns[i].Amount.LessThan(txns[j].Amount)
		default:
			less = txns[i].Date.Before(txns[j].Date)
		}
		if ascending {
			return less
		}
		return !less && !equalField(txns[i], txns[j], field)
	})
}

func equalField(a, b model.Transaction, field SortField) bool {
	switch field {
	case SortByDescription:
		return a.Description == b.Description
	case SortByAmount:
		return a.Amount.Equal(b.Amount)
	default:
		return a.Date.Equal(b.Date)
	}
}
