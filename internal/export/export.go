// Package export renders a transaction set as normalized CSV for
// download: M/D/YYYY date, quoted description, category, and the amount
// fixed to two decimals. Writing the bytes somewhere is the caller's job.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spendscope-dev/spendscope/internal/model"
)

// Header is the export CSV header row.
const Header = "Date,Description,Category,Amount"

// Write renders txns in their given order.
func Write(w io.Writer, txns []model.Transaction) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, t := range txns {
		row := strings.Join([]string{
			FormatDate(t.Date),
			`"` + t.Description + `"`,
			t.Category,
			t.Amount.StringFixed(2),
		}, ",")
		if _, err := fmt.Fprintln(w, row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	return nil
}

// FormatDate renders a date as M/D/YYYY, the statement-native format.
func FormatDate(date time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(date.Month()), date.Day(), date.Year())
}

// FileName returns the default export file name for a given day, e.g.
// "spending-export-3-7-2024.csv".
func FileName(now time.Time) string {
	return fmt.Sprintf("spending-export-%d-%d-%d.csv",
		int(now.Month()), now.Day(), now.Year())
}
