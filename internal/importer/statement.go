package importer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendscope-dev/spendscope/internal/model"
	"github.com/spendscope-dev/spendscope/internal/rules"
)

// CardParser parses credit-card account activity CSVs with the column
// order date, description, debit, credit (extra trailing columns ignored).
// Rows that are not clean spends are skipped, never errors: statement
// files routinely carry header and footer noise, and payments/credits are
// out of scope by policy.
type CardParser struct {
	engine *rules.Engine
}

const (
	cardMinFields = 4
	colDate       = 0
	colDesc       = 1
	colDebit      = 2
	colCredit     = 3
)

// NewCardParser creates a parser that classifies rows with engine.
func NewCardParser(engine *rules.Engine) *CardParser {
	return &CardParser{engine: engine}
}

// Format returns the parser name.
func (p *CardParser) Format() string { return "card" }

// Parse reads statement text and returns the spend transactions, in file
// order. Transaction IDs are "{source}-{n}" where n counts emitted rows,
// so re-parsing the same file always reproduces the same IDs.
func (p *CardParser) Parse(r io.Reader, source string) ([]model.Transaction, error) {
	var txns []model.Transaction

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := SplitLine(line)
		if len(fields) < cardMinFields {
			continue
		}

		date, ok := parseCardDate(fields[colDate])
		if !ok {
			continue
		}

		debit := parseAmount(fields[colDebit])
		credit := parseAmount(fields[colCredit])

		// Spend-only policy: drop zero debits and anything with a credit.
		if debit.IsZero() || !credit.IsZero() {
			continue
		}

		desc := strings.TrimSpace(fields[colDesc])
		txns = append(txns, model.Transaction{
			ID:          fmt.Sprintf("%s-%d", source, len(txns)),
			Date:        date,
			Description: desc,
			Amount:      debit,
			Category:    p.engine.Classify(desc),
			Source:      source,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading statement: %w", err)
	}

	return txns, nil
}

// parseCardDate parses M/D/YYYY with 1- or 2-digit month and day. The
// date must name a real calendar day; time.Date normalizes out-of-range
// components, so the result is checked back against the inputs.
func parseCardDate(s string) (time.Time, bool) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return time.Time{}, false
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, false
	}
	return date, true
}

// parseAmount parses a decimal field, defaulting to zero when empty or
// unparseable.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
