package rules

import (
	"fmt"
	"regexp"
)

// Matcher tests a raw transaction description against one pattern. The
// engine only depends on this interface, not on the regexp representation.
type Matcher interface {
	Match(description string) bool
	String() string
}

type regexMatcher struct {
	expr string
	re   *regexp.Regexp
}

func (m regexMatcher) Match(description string) bool { return m.re.MatchString(description) }
func (m regexMatcher) String() string                { return m.expr }

// NewPattern compiles a case-insensitive pattern matcher.
func NewPattern(expr string) (Matcher, error) {
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", expr, err)
	}
	return regexMatcher{expr: expr, re: re}, nil
}

// MustPattern is NewPattern for the built-in schema table. Panics on a bad
// expression, which can only happen at process start.
func MustPattern(expr string) Matcher {
	m, err := NewPattern(expr)
	if err != nil {
		panic(err)
	}
	return m
}

func compilePatterns(exprs []string) ([]Matcher, error) {
	if len(exprs) == 0 {
		return nil, nil
	}
	matchers := make([]Matcher, 0, len(exprs))
	for _, expr := range exprs {
		m, err := NewPattern(expr)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}
	return matchers, nil
}
