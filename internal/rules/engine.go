package rules

import (
	"fmt"
	"sort"
	"strings"
)

// Other is the sentinel label for descriptions no rule matches.
const Other = "Other"

// Engine classifies free-text descriptions into category labels and answers
// display-grouping lookups. It is immutable after construction.
type Engine struct {
	ordered []Rule // priority desc, declaration order within a tier
	byLabel map[string]Rule
	groups  []Group
	byGroup map[string]Group
	parent  map[string]string // child label -> group name
}

// NewEngine validates a schema and builds a classification engine.
// Labels must be unique and a child category may belong to at most one group.
func NewEngine(schema Schema) (*Engine, error) {
	e := &Engine{
		ordered: make([]Rule, len(schema.Rules)),
		byLabel: make(map[string]Rule, len(schema.Rules)),
		groups:  schema.Groups,
		byGroup: make(map[string]Group, len(schema.Groups)),
		parent:  make(map[string]string),
	}

	copy(e.ordered, schema.Rules)
	for _, r := range schema.Rules {
		if r.Label == "" {
			return nil, fmt.Errorf("rule with empty label")
		}
		if _, dup := e.byLabel[r.Label]; dup {
			return nil, fmt.Errorf("duplicate category label %q", r.Label)
		}
		e.byLabel[r.Label] = r
	}

	for _, g := range schema.Groups {
		if _, dup := e.byGroup[g.Name]; dup {
			return nil, fmt.Errorf("duplicate group %q", g.Name)
		}
		e.byGroup[g.Name] = g
		for _, child := range g.Children {
			if owner, taken := e.parent[child]; taken {
				return nil, fmt.Errorf("category %q in both group %q and %q", child, owner, g.Name)
			}
			e.parent[child] = g.Name
		}
	}

	// Stable: equal priorities keep schema declaration order.
	sort.SliceStable(e.ordered, func(i, j int) bool {
		return e.ordered[i].Priority > e.ordered[j].Priority
	})

	return e, nil
}

// Classify returns the label of the first qualifying rule, or Other.
// Rules are scanned by descending priority; within a rule, exclude patterns
// veto first, then patterns win over keywords.
func (e *Engine) Classify(description string) string {
	lower := strings.ToLower(description)

rules:
	for _, r := range e.ordered {
		for _, ex := range r.Excludes {
			if ex.Match(description) {
				continue rules
			}
		}
		for _, p := range r.Patterns {
			if p.Match(description) {
				return r.Label
			}
		}
		for _, kw := range r.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return r.Label
			}
		}
	}
	return Other
}

// Rules returns the rules in evaluation order.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.ordered))
	copy(out, e.ordered)
	return out
}

// Lookup returns the rule for a label.
func (e *Engine) Lookup(label string) (Rule, bool) {
	r, ok := e.byLabel[label]
	return r, ok
}

// DisplayCategory returns the parent group name when label is a registered
// child, otherwise the label unchanged.
func (e *Engine) DisplayCategory(label string) string {
	if parent, ok := e.parent[label]; ok {
		return parent
	}
	return label
}

// DisplayConfig returns presentation metadata for a display label: the
// group's if label names a group, else the rule's own, else the neutral
// default.
func (e *Engine) DisplayConfig(label string) Config {
	if g, ok := e.byGroup[label]; ok {
		return Config{Color: g.Color, Icon: g.Icon}
	}
	if r, ok := e.byLabel[label]; ok {
		return Config{Color: r.Color, Icon: r.Icon}
	}
	return DefaultConfig
}

// IsGroup reports whether name is a display group.
func (e *Engine) IsGroup(name string) bool {
	_, ok := e.byGroup[name]
	return ok
}

// Children returns the child labels of a group, or nil.
func (e *Engine) Children(group string) []string {
	g, ok := e.byGroup[group]
	if !ok {
		return nil
	}
	out := make([]string, len(g.Children))
	copy(out, g.Children)
	return out
}
