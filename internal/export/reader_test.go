package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = `id,Title,Categories,acf_location,acf_phone,acf_website,website_url,Tags
1, Cane Bay Dive Shop ,Scuba Diving,Cane Bay,340-773-1234,canebay.com,,Beachfront
2,Savant,"Eat, Play",Christiansted,,,savant.com,
3,Short Row
`

func writeSampleCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

func TestReadTable_CSV(t *testing.T) {
	table, err := ReadTable(writeSampleCSV(t))
	require.NoError(t, err)

	records := table.Records()
	require.Len(t, records, 3)

	// Fields are trimmed and looked up by header name regardless of order.
	assert.Equal(t, "Cane Bay Dive Shop", records[0].Title)
	assert.Equal(t, "Scuba Diving", records[0].Categories)
	assert.Equal(t, "Cane Bay", records[0].Location)
	assert.Equal(t, "canebay.com", records[0].Website)
	assert.Equal(t, "Beachfront", records[0].Tags)

	assert.Equal(t, "Eat, Play", records[1].Categories)
	assert.Equal(t, "savant.com", records[1].SiteURL)

	// Ragged rows degrade to empty fields, the record still participates.
	assert.Equal(t, "Short Row", records[2].Title)
	assert.Equal(t, "", records[2].Categories)
	assert.Equal(t, "", records[2].Location)
}

func TestReadTable_MissingColumnsYieldEmptyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thin.csv")
	require.NoError(t, os.WriteFile(path, []byte("Title\nSavant\n"), 0o644))

	table, err := ReadTable(path)
	require.NoError(t, err)

	records := table.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "Savant", records[0].Title)
	assert.Equal(t, "", records[0].Phone)
	assert.Equal(t, "", records[0].Categories)
}

func TestReadTable_MissingFile(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestReadTable_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"id", "Title", "Categories", "acf_location"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"1", "Cane Bay Dive Shop", "Scuba Diving", "Cane Bay"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"2", "Savant", "Eat", "Christiansted"}))
	require.NoError(t, f.SaveAs(path))

	table, err := ReadTable(path)
	require.NoError(t, err)

	records := table.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "Cane Bay Dive Shop", records[0].Title)
	assert.Equal(t, "Scuba Diving", records[0].Categories)
	assert.Equal(t, "Savant", records[1].Title)
	assert.Equal(t, "Christiansted", records[1].Location)
}

// CSV and XLSX exports carrying the same cells produce the same records.
func TestReadTable_FormatsAgree(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(csvPath,
		[]byte("id,Title,acf_phone\n1,Savant,340-713-8666\n"), 0o644))

	xlsxPath := filepath.Join(dir, "export.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"id", "Title", "acf_phone"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"1", "Savant", "340-713-8666"}))
	require.NoError(t, f.SaveAs(xlsxPath))

	fromCSV, err := ReadTable(csvPath)
	require.NoError(t, err)
	fromXLSX, err := ReadTable(xlsxPath)
	require.NoError(t, err)

	assert.Equal(t, fromCSV.Records(), fromXLSX.Records())
}

func TestUniqueValues(t *testing.T) {
	table, err := ReadTable(writeSampleCSV(t))
	require.NoError(t, err)

	values, err := table.UniqueValues("Categories")
	require.NoError(t, err)
	assert.Equal(t, []string{"Eat", "Play", "Scuba Diving"}, values)
}

func TestUniqueValues_UnknownColumn(t *testing.T) {
	table, err := ReadTable(writeSampleCSV(t))
	require.NoError(t, err)

	_, err = table.UniqueValues("Nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "Title")
}
