package category

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// FallbackID is the "Uncategorized" term on the destination site, assigned to
// any name missing from the mapping file.
const FallbackID = 2040

// ErrMappingMalformed reports a mapping file that is not the expected shape.
var ErrMappingMalformed = errors.New("term mapping malformed")

// Mapping resolves category and tag names to destination term IDs. The
// on-disk form is a JSON object with "categories" and "tags" name-to-ID maps.
type Mapping struct {
	Categories map[string]int `json:"categories"`
	Tags       map[string]int `json:"tags"`

	// Unmapped collects names that fell back to FallbackID, for the
	// end-of-run operator report.
	Unmapped map[string]struct{} `json:"-"`
}

// LoadMapping reads the term mapping file. Unlike the address cache the
// mapping is required whenever IDs are emitted, so a missing file is an error.
func LoadMapping(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("category: failed to read mapping %s: %w", path, err)
	}

	var m Mapping
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("category: %w: %s: %v", ErrMappingMalformed, path, err)
	}
	if m.Categories == nil {
		return nil, fmt.Errorf("category: %w: %s: missing categories map", ErrMappingMalformed, path)
	}
	m.Unmapped = map[string]struct{}{}
	return &m, nil
}

// CategoryIDs encodes the categories of one record as the destination import
// format: ",ID1,ID2," with order-preserving dedup, or "" when the input holds
// no names. Lookup tries the exact name, then its title-cased form, then
// falls back to FallbackID.
func (m *Mapping) CategoryIDs(taxonomy string) string {
	return m.encodeIDs(SplitTokens(taxonomy), m.Categories)
}

// TagIDs encodes the tags of one record. The export encodes tag lists with
// pipes only, and tag names may legitimately contain commas, so unlike
// categories no comma splitting happens here. When no tag mappings are
// defined at all, tags encode to "" rather than a string of fallback IDs.
func (m *Mapping) TagIDs(taxonomy string) string {
	if len(m.Tags) == 0 {
		return ""
	}
	return m.encodeIDs(pipeTokens(taxonomy), m.Tags)
}

// pipeTokens splits a pipe-delimited list into trimmed names.
func pipeTokens(taxonomy string) []string {
	var tokens []string
	for _, part := range strings.Split(taxonomy, "|") {
		if part = strings.TrimSpace(part); part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

func (m *Mapping) encodeIDs(names []string, terms map[string]int) string {
	if len(names) == 0 {
		return ""
	}

	ids := make([]string, 0, len(names))
	seen := map[int]struct{}{}
	for _, name := range names {
		id, ok := terms[name]
		if !ok {
			id, ok = terms[titleCase(name)]
		}
		if !ok {
			id = FallbackID
			if m.Unmapped != nil {
				m.Unmapped[name] = struct{}{}
			}
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, fmt.Sprint(id))
	}

	return "," + strings.Join(ids, ",") + ","
}

// titleCase uppercases the first letter of each space-separated word,
// mirroring how the mapping file capitalizes term names.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// FirstID extracts the first term ID from an encoded ID string, used for the
// default_category column. Empty or unparsable input yields FallbackID.
func FirstID(encoded string) string {
	for _, part := range strings.Split(strings.Trim(encoded, ","), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, err := fmt.Sscanf(part, "%d", new(int)); err == nil {
			return part
		}
	}
	return fmt.Sprint(FallbackID)
}
