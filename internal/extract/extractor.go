// Package extract produces the deduplicated business worklist used for
// manual address research.
package extract

import (
	"fmt"
	"io"

	"geodir-transform/internal/models"
)

// WorklistHeader is the first line of the worklist file. Column order is a
// contract with whoever researches the addresses.
const WorklistHeader = "Business Name|Location|Phone|Website"

// Businesses scans the full record set and returns one listing per distinct
// business name. The first occurrence wins and first-seen order is kept, so
// two runs over the same export diff cleanly. Records without a name are
// skipped, there is nothing to research.
func Businesses(records []models.RawRecord) []models.BusinessListing {
	seen := map[string]struct{}{}
	var listings []models.BusinessListing

	for _, record := range records {
		name := record.Title
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		website := record.Website
		if website == "" {
			website = record.SiteURL
		}

		listings = append(listings, models.BusinessListing{
			Name:     name,
			Location: record.Location,
			Phone:    record.Phone,
			Website:  website,
		})
	}

	return listings
}

// WriteWorklist renders listings as pipe-delimited text for human
// consumption.
func WriteWorklist(w io.Writer, listings []models.BusinessListing) error {
	if _, err := fmt.Fprintln(w, WorklistHeader); err != nil {
		return fmt.Errorf("extract: failed to write worklist header: %w", err)
	}
	for _, l := range listings {
		if _, err := fmt.Fprintf(w, "%s|%s|%s|%s\n", l.Name, l.Location, l.Phone, l.Website); err != nil {
			return fmt.Errorf("extract: failed to write worklist row: %w", err)
		}
	}
	return nil
}
