package report

import (
	"regexp"
	"strings"
)

var (
	posRefSuffix = regexp.MustCompile(`(?i)\*[A-Z0-9]+$`)
	trailingDash = regexp.MustCompile(`\s*-\s*$`)
	spaceRuns    = regexp.MustCompile(`\s+`)
)

// NormalizeMerchant derives a merchant name from a raw description:
// trailing POS reference suffixes like "*AB123" and trailing dashes are
// stripped, whitespace is collapsed, then a fixed set of brand spellings
// is unified. The special-case list is deliberately small and static;
// extending it is a data change here, not a matching-engine change.
func NormalizeMerchant(description string) string {
	name := posRefSuffix.ReplaceAllString(description, "")
	name = trailingDash.ReplaceAllString(name, "")
	name = spaceRuns.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)

	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "uber") && strings.Contains(lower, "eats"):
		return "Uber Eats"
	case strings.Contains(lower, "uber canada") || strings.Contains(lower, "uber holdings"):
		return "Uber"
	case strings.Contains(lower, "costco") && strings.Contains(lower, "instacart"):
		return "Costco (Instacart)"
	case strings.Contains(lower, "amazon") || strings.Contains(lower, "amzn"):
		return "Amazon"
	case strings.Contains(lower, "doordash"):
		return "DoorDash"
	}
	return name
}
