package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type ruleYAML struct {
	Label    string   `yaml:"label"`
	Priority int      `yaml:"priority"`
	Keywords []string `yaml:"keywords,omitempty"`
	Patterns []string `yaml:"patterns,omitempty"`
	Excludes []string `yaml:"excludes,omitempty"`
	Color    string   `yaml:"color,omitempty"`
	Icon     string   `yaml:"icon,omitempty"`
}

type groupYAML struct {
	Name     string   `yaml:"name"`
	Children []string `yaml:"children"`
	Color    string   `yaml:"color,omitempty"`
	Icon     string   `yaml:"icon,omitempty"`
}

type schemaYAML struct {
	Rules  []ruleYAML  `yaml:"rules"`
	Groups []groupYAML `yaml:"groups,omitempty"`
}

// Load reads a category schema from a YAML file and compiles its patterns.
func Load(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("reading schema: %w", err)
	}

	var raw schemaYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Schema{}, fmt.Errorf("parsing schema: %w", err)
	}

	var schema Schema
	for _, r := range raw.Rules {
		patterns, err := compilePatterns(r.Patterns)
		if err != nil {
			return Schema{}, fmt.Errorf("rule %q: %w", r.Label, err)
		}
		excludes, err := compilePatterns(r.Excludes)
		if err != nil {
			return Schema{}, fmt.Errorf("rule %q: %w", r.Label, err)
		}
		schema.Rules = append(schema.Rules, Rule{
			Label:    r.Label,
			Keywords: r.Keywords,
			Patterns: patterns,
			Excludes: excludes,
			Color:    r.Color,
			Icon:     r.Icon,
			Priority: r.Priority,
		})
	}
	for _, g := range raw.Groups {
		schema.Groups = append(schema.Groups, Group(g))
	}
	return schema, nil
}

// Save writes a schema to a YAML file.
func Save(path string, schema Schema) error {
	raw := schemaYAML{}
	for _, r := range schema.Rules {
		raw.Rules = append(raw.Rules, ruleYAML{
			Label:    r.Label,
			Priority: r.Priority,
			Keywords: r.Keywords,
			Patterns: patternStrings(r.Patterns),
			Excludes: patternStrings(r.Excludes),
			Color:    r.Color,
			Icon:     r.Icon,
		})
	}
	for _, g := range schema.Groups {
		raw.Groups = append(raw.Groups, groupYAML(g))
	}

	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshaling schema: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing schema: %w", err)
	}
	return nil
}

func patternStrings(matchers []Matcher) []string {
	if len(matchers) == 0 {
		return nil
	}
	out := make([]string, len(matchers))
	for i, m := range matchers {
		out[i] = m.String()
	}
	return out
}
