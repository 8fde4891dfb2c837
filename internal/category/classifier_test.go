package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTokens(t *testing.T) {
	tests := []struct {
		name     string
		taxonomy string
		expected []string
	}{
		{"pipe separated", "Scuba Diving|Water Sports", []string{"Scuba Diving", "Water Sports"}},
		{"comma separated", "Play, Eat", []string{"Play", "Eat"}},
		{"mixed separators", "Play|Eat,Stay", []string{"Play", "Eat", "Stay"}},
		{"single token", "Restaurants", []string{"Restaurants"}},
		{"empty", "", []string{}},
		{"blank tokens dropped", "Play,,|, Eat ", []string{"Play", "Eat"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitTokens(tt.taxonomy))
		})
	}
}

func TestClassifier_Matches(t *testing.T) {
	tests := []struct {
		name      string
		requested []string
		mode      MatchMode
		taxonomy  string
		expected  bool
	}{
		{"no filter includes everything", nil, MatchContains, "Scuba Diving", true},
		{"no filter includes empty taxonomy", []string{}, MatchContains, "", true},
		{"contains match", []string{"Scuba Diving"}, MatchContains, "Scuba Diving|Water Sports", true},
		{"contains is case-insensitive", []string{"scuba diving"}, MatchContains, "Scuba Diving", true},
		{"contains matches partial token", []string{"Diving"}, MatchContains, "Scuba Diving", true},
		{"contains miss", []string{"Restaurants"}, MatchContains, "Scuba Diving", false},
		{"exact match", []string{"Scuba Diving"}, MatchExact, "Scuba Diving|Water Sports", true},
		{"exact is case-insensitive", []string{"scuba diving"}, MatchExact, "Scuba Diving", true},
		{"exact rejects partial token", []string{"Diving"}, MatchExact, "Scuba Diving", false},
		{"any requested name suffices", []string{"Restaurants", "Water Sports"}, MatchContains, "Scuba Diving|Water Sports", true},
		{"empty taxonomy never matches a filter", []string{"Restaurants"}, MatchContains, "", false},
		{"blank requested names ignored", []string{" ", ""}, MatchContains, "Scuba Diving", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(tt.requested, tt.mode)
			assert.Equal(t, tt.expected, c.Matches(tt.taxonomy))
		})
	}
}

// Filtering is a pure membership test: applying the same filter to its own
// output changes nothing.
func TestClassifier_Idempotent(t *testing.T) {
	c := NewClassifier([]string{"Play"}, MatchContains)
	taxonomies := []string{"Play|Eat", "Stay", "Play", "", "Eat,Play"}

	var once []string
	for _, tax := range taxonomies {
		if c.Matches(tax) {
			once = append(once, tax)
		}
	}

	var twice []string
	for _, tax := range once {
		if c.Matches(tax) {
			twice = append(twice, tax)
		}
	}

	assert.Equal(t, once, twice)
}

func TestParseMatchMode(t *testing.T) {
	assert.Equal(t, MatchExact, ParseMatchMode("exact"))
	assert.Equal(t, MatchExact, ParseMatchMode("EXACT"))
	assert.Equal(t, MatchContains, ParseMatchMode("contains"))
	assert.Equal(t, MatchContains, ParseMatchMode(""))
	assert.Equal(t, MatchContains, ParseMatchMode("anything else"))
}
