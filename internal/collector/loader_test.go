package collector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = `"Date","Price","Open","High","Low","Vol.","Change %"
"03-01-2020","41,464.61","41,634.61","41,636.02","41,348.12","12.41K","-0.39%"
"02-01-2020","41,626.64","41,340.27","41,649.29","41,328.51","10.94K","0.77%"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCSVLoader_Load(t *testing.T) {
	path := writeFile(t, "prices.csv", sampleCSV)

	tbl, err := NewCSVLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, tbl.Source)
	assert.Equal(t, []string{"Date", "Price", "Open", "High", "Low", "Vol.", "Change %"}, tbl.Header)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "41,464.61", tbl.Rows[0][1])
	assert.Equal(t, "-0.39%", tbl.Rows[0][6])
}

func TestCSVLoader_BOMAndShortRows(t *testing.T) {
	path := writeFile(t, "bom.csv", "\ufeffDate, Price ,Change %\n01-01-2020,100\n")

	tbl, err := NewCSVLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Price", "Change %"}, tbl.Header)
	assert.Equal(t, [][]string{{"01-01-2020", "100", ""}}, tbl.Rows)
}

func TestCSVLoader_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Sensex25years.csv")

	tbl, err := NewCSVLoader().Load(path)
	assert.Nil(t, tbl)
	assert.ErrorIs(t, err, ErrInputNotFound)
	assert.Contains(t, err.Error(), "Sensex25years.csv")
}

func TestCSVLoader_MissingColumn(t *testing.T) {
	path := writeFile(t, "nochange.csv", "Date,Price\n01-01-2020,100\n")

	_, err := NewCSVLoader().Load(path)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "Change %")
}

func TestCSVLoader_Empty(t *testing.T) {
	path := writeFile(t, "empty.csv", "")

	_, err := NewCSVLoader().Load(path)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestXLSXLoader_Load(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]interface{}{
		{"Date", "Price", "Change %", "Vol."},
		{"02-01-2020", "41,626.64", "0.77%", "10.94K"},
		{"03-01-2020", "41,464.61", "-0.39%"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "prices.xlsx")
	require.NoError(t, f.SaveAs(path))

	tbl, err := NewXLSXLoader("").Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Price", "Change %", "Vol."}, tbl.Header)
	assert.Equal(t, [][]string{
		{"02-01-2020", "41,626.64", "0.77%", "10.94K"},
		{"03-01-2020", "41,464.61", "-0.39%", ""},
	}, tbl.Rows)
}

func TestXLSXLoader_MissingFile(t *testing.T) {
	_, err := NewXLSXLoader("").Load(filepath.Join(t.TempDir(), "gone.xlsx"))
	assert.ErrorIs(t, err, ErrInputNotFound)
}

func TestLoaderFor(t *testing.T) {
	assert.Equal(t, "csv", LoaderFor("Sensex25years.csv", "").Name())
	assert.Equal(t, "csv", LoaderFor("prices.txt", "").Name())
	assert.Equal(t, "xlsx", LoaderFor("prices.XLSX", "Data").Name())
}
