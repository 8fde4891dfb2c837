// Package addrcache loads and serves the human-curated business-name to
// street-address mapping merged into transformed rows.
package addrcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrMalformed reports a cache file that exists but is not a flat
// string-to-string JSON object. This is deliberately fatal: silently falling
// back to an empty cache would suppress all address enrichment and mask
// data-entry errors.
var ErrMalformed = errors.New("address cache malformed")

// Cache is a read-only business-name to street-address lookup table.
// Lookups are exact and case-sensitive: keys must match the business-name
// column of the export byte for byte. No trimming or normalization is applied,
// a near-miss must stay a miss rather than attach the wrong address.
type Cache struct {
	addresses map[string]string

	// Warning is set when the cache file was absent or empty and the run
	// degraded to an empty cache.
	Warning bool
}

// Empty returns a cache with no entries, used when enrichment is disabled.
func Empty() Cache {
	return Cache{addresses: map[string]string{}}
}

// Load reads the address cache from a JSON file.
//
// A missing or empty file is not an error: enrichment is optional and the
// returned cache is empty with Warning set. A file that cannot be parsed as a
// flat string-to-string object is a hard error wrapping ErrMalformed.
// If the JSON object repeats a key, the last value wins.
func Load(path string) (Cache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Cache{addresses: map[string]string{}, Warning: true}, nil
		}
		return Cache{}, fmt.Errorf("addrcache: failed to read %s: %w", path, err)
	}

	if len(data) == 0 {
		return Cache{addresses: map[string]string{}, Warning: true}, nil
	}

	var addresses map[string]string
	if err := json.Unmarshal(data, &addresses); err != nil {
		return Cache{}, fmt.Errorf("addrcache: %w: %s: %v", ErrMalformed, path, err)
	}

	return Cache{addresses: addresses}, nil
}

// Lookup returns the street address cached for the exact business name.
func (c Cache) Lookup(name string) (string, bool) {
	address, ok := c.addresses[name]
	return address, ok
}

// Len reports how many addresses were loaded, for operator visibility.
func (c Cache) Len() int {
	return len(c.addresses)
}
