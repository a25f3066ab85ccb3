package importer

import "strings"

// SplitLine tokenizes one CSV line into trimmed fields. A double quote
// toggles quoted mode; commas split fields only outside quotes. An
// unterminated quote is not an error, the rest of the line stays in the
// current field. A trailing comma yields an extra empty field so a
// "4 fields, last empty" row stays distinguishable from a 3-field row.
func SplitLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))

	if strings.HasSuffix(line, ",") {
		fields = append(fields, "")
	}

	return fields
}
