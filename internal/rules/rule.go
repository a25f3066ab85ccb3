package rules

// Rule is one entry in the category schema.
type Rule struct {
	Label    string
	Keywords []string  // case-insensitive substrings
	Patterns []Matcher // checked before keywords, against the raw description
	Excludes []Matcher // any hit vetoes the whole rule
	Color    string    // hex color for presentation
	Icon     string
	Priority int // higher is evaluated first; ties keep declaration order
}

// Group maps child category labels to one parent display label. Grouping
// applies only at aggregation/display time; the per-transaction category
// keeps the child label.
type Group struct {
	Name     string
	Children []string
	Color    string
	Icon     string
}

// Schema is the full category configuration: ordered rules plus display
// groups. Declaration order of Rules is significant for priority ties.
type Schema struct {
	Rules  []Rule
	Groups []Group
}

// Config is the presentation metadata for a label.
type Config struct {
	Color string
	Icon  string
}

// DefaultConfig is used for labels the schema does not know, including
// the "Other" sentinel.
var DefaultConfig = Config{Color: "#64748b", Icon: "📌"}
