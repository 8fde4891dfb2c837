package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"geodir-transform/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteImportCSV_HeaderOnlyForZeroRecords(t *testing.T) {
	var out strings.Builder
	require.NoError(t, WriteImportCSV(&out, nil))

	lines, err := csv.NewReader(strings.NewReader(out.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, importColumns, lines[0])
}

func TestWriteImportCSV_FieldPlacement(t *testing.T) {
	record := models.OutputRecord{
		ID:              "101",
		Title:           "Cane Bay Dive Shop",
		Status:          "publish",
		Author:          "1",
		PostType:        "gd_listing_new",
		CategoryIDs:     ",2044,",
		DefaultCategory: "2044",
		Featured:        "0",
		Street:          "10 Cane Bay",
		City:            "St. Croix",
		Region:          "VI",
		Country:         "United States",
		Latitude:        "17.7717",
		Longitude:       "-64.8078",
		Location:        "Cane Bay",
		Phone:           "340-773-1234",
	}

	var out strings.Builder
	require.NoError(t, WriteImportCSV(&out, []models.OutputRecord{record}))

	lines, err := csv.NewReader(strings.NewReader(out.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 2)

	header, row := lines[0], lines[1]
	require.Len(t, row, len(header))

	at := func(column string) string {
		for i, h := range header {
			if h == column {
				return row[i]
			}
		}
		t.Fatalf("column %q missing from header", column)
		return ""
	}

	assert.Equal(t, "Cane Bay Dive Shop", at("post_title"))
	assert.Equal(t, "10 Cane Bay", at("street"))
	assert.Equal(t, "", at("street2"))
	assert.Equal(t, "St. Croix", at("city"))
	assert.Equal(t, "VI", at("region"))
	assert.Equal(t, "United States", at("country"))
	assert.Equal(t, "", at("zip"))
	assert.Equal(t, ",2044,", at("post_category"))
	assert.Equal(t, "2044", at("default_category"))
	assert.Equal(t, "17.7717", at("latitude"))
	assert.Equal(t, "340-773-1234", at("phone"))
}
