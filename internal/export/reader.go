// Package export reads directory-export files and writes the GeoDirectory
// import CSV.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"geodir-transform/internal/models"
)

// ErrMissingColumn reports a column requested by name that the export does
// not carry.
var ErrMissingColumn = errors.New("column not found")

// Table is an export file in memory: a header row plus data rows. Field
// access goes through header names, so the producer is free to reorder or add
// columns.
type Table struct {
	Headers []string
	Rows    [][]string

	index map[string]int
}

func newTable(headers []string, rows [][]string) Table {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return Table{Headers: headers, Rows: rows, index: index}
}

// ReadTable loads an export file, dispatching on extension. Spreadsheet
// exports (.xlsx) and CSV exports carry the same logical columns.
func ReadTable(path string) (Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path)
	}
	return readCSV(path)
}

func readCSV(path string) (Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("export: failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	headers, err := reader.Read()
	if err != nil {
		return Table{}, fmt.Errorf("export: failed to read header of %s: %w", path, err)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("export: failed to read row of %s: %w", path, err)
		}
		rows = append(rows, row)
	}

	return newTable(headers, rows), nil
}

func readXLSX(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("export: failed to open %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return Table{}, fmt.Errorf("export: no sheets in %s", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, fmt.Errorf("export: failed to read sheet %s of %s: %w", sheet, path, err)
	}
	if len(rows) == 0 {
		return Table{}, fmt.Errorf("export: empty sheet %s in %s", sheet, path)
	}

	return newTable(rows[0], rows[1:]), nil
}

// field returns the trimmed cell under the named column for one row, or ""
// when the column is absent or the row is short. Malformed rows degrade to
// empty fields rather than failing the run.
func (t Table) field(row []string, column string) string {
	i, ok := t.index[strings.ToLower(column)]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Records converts the table into typed raw records using the export's
// column names.
func (t Table) Records() []models.RawRecord {
	records := make([]models.RawRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		records = append(records, models.RawRecord{
			ID:           t.field(row, "id"),
			Title:        t.field(row, "Title"),
			Content:      t.field(row, "Content"),
			Status:       t.field(row, "Status"),
			AuthorID:     t.field(row, "Author ID"),
			Date:         t.field(row, "Date"),
			ModifiedDate: t.field(row, "Post Modified Date"),
			Categories:   t.field(row, "Categories"),
			Tags:         t.field(row, "Tags"),

			Location: t.field(row, "acf_location"),
			Phone:    t.field(row, "acf_phone"),
			Email:    t.field(row, "acf_email"),
			Website:  t.field(row, "acf_website"),
			SiteURL:  t.field(row, "website_url"),

			Images:        t.field(row, "images"),
			Slider:        t.field(row, "slider"),
			FixedImage:    t.field(row, "acf_fixed_image"),
			SpotlightLink: t.field(row, "acf_spotlight_link"),
			ImageAlign:    t.field(row, "image_alignment"),
			Layout:        t.field(row, "acf_template_layout"),

			Facebook:    t.field(row, "acf_facebook"),
			Twitter:     t.field(row, "acf_twitter"),
			Instagram:   t.field(row, "acf_instagram"),
			Pinterest:   t.field(row, "acf_pinterest"),
			YouTube:     t.field(row, "acf_you_tube"),
			LinkedIn:    t.field(row, "acf_linked_in"),
			TripAdvisor: t.field(row, "acf_trip_advisor"),
			Yelp:        t.field(row, "acf_yelp"),

			OtherSocialLabel: t.field(row, "acf_other_social_label"),
			OtherSocialURL:   t.field(row, "acf_other_social_url"),
			OtherSocialIcon:  t.field(row, "acf_other_social_icon"),

			TabsFilter: t.field(row, "acf_tabs_filter"),
			Tab1Name:   t.field(row, "acf_tab_1_name"),
		})
	}
	return records
}

// UniqueValues lists the sorted distinct values of one column, splitting
// comma-separated cells, for operator taxonomy discovery.
func (t Table) UniqueValues(column string) ([]string, error) {
	if _, ok := t.index[strings.ToLower(column)]; !ok {
		return nil, fmt.Errorf("export: %w: %q (available: %s)",
			ErrMissingColumn, column, strings.Join(t.Headers, ", "))
	}

	set := map[string]struct{}{}
	for _, row := range t.Rows {
		value := t.field(row, column)
		if value == "" {
			continue
		}
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				set[part] = struct{}{}
			}
		}
	}

	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)
	return values, nil
}
