// Package category decides which export rows belong to a requested category
// set and maps taxonomy names to directory term IDs.
package category

import "strings"

// MatchMode selects how a requested category name is compared against the
// tokens of a record's composite taxonomy string.
type MatchMode string

const (
	// MatchContains includes a record when any taxonomy token contains the
	// requested name, case-insensitively. This is the default and matches
	// how the site's export was filtered historically.
	MatchContains MatchMode = "contains"

	// MatchExact includes a record only when a taxonomy token equals the
	// requested name, case-insensitively.
	MatchExact MatchMode = "exact"
)

// ParseMatchMode maps a config value to a MatchMode, defaulting to contains.
func ParseMatchMode(s string) MatchMode {
	if strings.EqualFold(s, string(MatchExact)) {
		return MatchExact
	}
	return MatchContains
}

// Classifier tests composite taxonomy strings against a requested set of
// category names. A nil or empty requested set includes everything.
type Classifier struct {
	requested []string
	mode      MatchMode
}

// NewClassifier builds a classifier for the given requested names. Names are
// trimmed; blank entries are dropped.
func NewClassifier(requested []string, mode MatchMode) *Classifier {
	cleaned := make([]string, 0, len(requested))
	for _, name := range requested {
		if name = strings.TrimSpace(name); name != "" {
			cleaned = append(cleaned, name)
		}
	}
	return &Classifier{requested: cleaned, mode: mode}
}

// SplitTokens decomposes a composite taxonomy string into its trimmed
// constituent names. The export encodes lists with either pipes or commas.
func SplitTokens(taxonomy string) []string {
	fields := strings.FieldsFunc(taxonomy, func(r rune) bool {
		return r == '|' || r == ','
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Matches reports whether a record with the given taxonomy string belongs to
// the requested set. A record matching several requested names still matches
// exactly once; this is a membership test, not a join.
func (c *Classifier) Matches(taxonomy string) bool {
	if len(c.requested) == 0 {
		return true
	}

	tokens := SplitTokens(taxonomy)
	for _, want := range c.requested {
		for _, token := range tokens {
			if c.tokenMatches(token, want) {
				return true
			}
		}
	}
	return false
}

func (c *Classifier) tokenMatches(token, want string) bool {
	if c.mode == MatchExact {
		return strings.EqualFold(token, want)
	}
	return strings.Contains(strings.ToLower(token), strings.ToLower(want))
}
