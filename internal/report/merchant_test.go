package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMerchant(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"STARBUCKS #123 *AB12C", "STARBUCKS #123"},
		{"SOME SHOP -", "SOME SHOP"},
		{"TOO   MANY    SPACES", "TOO MANY SPACES"},
		{"UBER* EATS CANADA", "Uber Eats"},
		{"UBER CANADA/UBERTRIP", "Uber"},
		{"COSTCO INSTACART DELIVERY", "Costco (Instacart)"},
		{"AMZN MKTP CA", "Amazon"},
		{"AMAZON.CA PRIME", "Amazon"},
		{"DOORDASH*SUBWAY", "DoorDash"},
		{"PLAIN MERCHANT", "PLAIN MERCHANT"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeMerchant(tt.in), "input %q", tt.in)
	}
}
