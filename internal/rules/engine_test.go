package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultSchema())
	require.NoError(t, err)
	return engine
}

func TestClassify_DeliveryBeatsRideshare(t *testing.T) {
	engine := defaultEngine(t)

	// "uber" alone is rideshare vocabulary, but the delivery tier has
	// higher priority.
	assert.Equal(t, "Uber Eats", engine.Classify("UBER* EATS CANADA"))
	assert.Equal(t, "Uber Eats", engine.Classify("UBER CANADA/UBEREATS"))
	assert.Equal(t, "Rideshare", engine.Classify("UBER CANADA/UBERTRIP"))
}

func TestClassify_ExcludeVetoesOneRuleOnly(t *testing.T) {
	engine := defaultEngine(t)

	// The Rideshare exclude on "eats" stops Rideshare, not the engine.
	assert.Equal(t, "Uber Eats", engine.Classify("UBEREATS TORONTO"))

	// "wok box" is vetoed by Chinese Restaurants but plain wok is not.
	assert.NotEqual(t, "Chinese Restaurants", engine.Classify("WOK BOX VANCOUVER BC"))
	assert.Equal(t, "Chinese Restaurants", engine.Classify("MONGOLIAN WOK HOUSE"))
}

func TestClassify_KeywordsAreCaseInsensitive(t *testing.T) {
	engine := defaultEngine(t)

	assert.Equal(t, "Cafes & Coffee", engine.Classify("STARBUCKS #1234 VANCOUVER"))
	assert.Equal(t, "Cafes & Coffee", engine.Classify("starbucks coffee"))
	assert.Equal(t, "Groceries", engine.Classify("COSTCO WHOLESALE W550"))
}

func TestClassify_Unmatched(t *testing.T) {
	engine := defaultEngine(t)

	assert.Equal(t, Other, engine.Classify("XYZZY PLUGH 42"))
	assert.Equal(t, Other, engine.Classify(""))
}

func TestClassify_PriorityTieKeepsDeclarationOrder(t *testing.T) {
	schema := Schema{Rules: []Rule{
		{Label: "First", Keywords: []string{"shared"}, Priority: 50},
		{Label: "Second", Keywords: []string{"shared"}, Priority: 50},
	}}
	engine, err := NewEngine(schema)
	require.NoError(t, err)

	assert.Equal(t, "First", engine.Classify("shared term"))
}

func TestClassify_HigherPriorityWins(t *testing.T) {
	schema := Schema{Rules: []Rule{
		{Label: "Low", Keywords: []string{"term"}, Priority: 10},
		{Label: "High", Keywords: []string{"term"}, Priority: 90},
	}}
	engine, err := NewEngine(schema)
	require.NoError(t, err)

	assert.Equal(t, "High", engine.Classify("some term here"))
}

func TestNewEngine_RejectsDuplicateLabels(t *testing.T) {
	schema := Schema{Rules: []Rule{
		{Label: "Dup", Keywords: []string{"a"}, Priority: 10},
		{Label: "Dup", Keywords: []string{"b"}, Priority: 20},
	}}
	_, err := NewEngine(schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Dup")
}

func TestNewEngine_RejectsChildInTwoGroups(t *testing.T) {
	schema := Schema{
		Rules: []Rule{{Label: "Pizza", Keywords: []string{"pizza"}, Priority: 10}},
		Groups: []Group{
			{Name: "Dining", Children: []string{"Pizza"}},
			{Name: "Takeout", Children: []string{"Pizza"}},
		},
	}
	_, err := NewEngine(schema)
	require.Error(t, err)
}

func TestDisplayCategory(t *testing.T) {
	engine := defaultEngine(t)

	// Grouped categories roll up to their group name.
	assert.Equal(t, "Restaurants", engine.DisplayCategory("Japanese Restaurants"))
	assert.Equal(t, "Restaurants", engine.DisplayCategory("Fast Food"))

	// Ungrouped categories display as themselves, including repeat
	// application of the mapping.
	assert.Equal(t, "Groceries", engine.DisplayCategory("Groceries"))
	assert.Equal(t, "Restaurants", engine.DisplayCategory("Restaurants"))
	assert.Equal(t, Other, engine.DisplayCategory(Other))
}

func TestDisplayConfig(t *testing.T) {
	engine := defaultEngine(t)

	// A group name resolves to the group's config, a plain label to the
	// rule's own.
	grpCfg := engine.DisplayConfig("Restaurants")
	assert.Equal(t, "🍽️", grpCfg.Icon)
	japCfg := engine.DisplayConfig("Japanese Restaurants")
	assert.Equal(t, "🍣", japCfg.Icon)

	// Unknown labels fall back to the default config.
	assert.Equal(t, DefaultConfig, engine.DisplayConfig("Nonexistent"))
}

func TestEngine_Children(t *testing.T) {
	engine := defaultEngine(t)

	children := engine.Children("Restaurants")
	assert.Contains(t, children, "Japanese Restaurants")
	assert.Contains(t, children, "Fast Food")
	assert.True(t, engine.IsGroup("Restaurants"))
	assert.False(t, engine.IsGroup("Groceries"))
}

func TestRules_OrderedByPriority(t *testing.T) {
	engine := defaultEngine(t)

	rules := engine.Rules()
	require.NotEmpty(t, rules)
	for i := 1; i < len(rules); i++ {
		assert.GreaterOrEqual(t, rules[i-1].Priority, rules[i].Priority)
	}
}
