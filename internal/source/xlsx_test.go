package source

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func writeWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Leads")
	require.NoError(t, err)
	for _, r := range rows {
		row := sheet.AddRow()
		for _, v := range r {
			row.AddCell().Value = v
		}
	}
	path := filepath.Join(t.TempDir(), "leads.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestXLSXReader_Read(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"Company", "Website", "Location"},
		{"Acme Snacks", "http://acme.example", "Fresno, CA"},
		{"", "", ""},
		{"Best Foods", "http://best.example", ""},
	})

	set, err := NewXLSXReader(path).Read(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Company", "Website", "Location"}, set.Header)
	require.Len(t, set.Leads, 2) // blank row skipped
	assert.Equal(t, "Acme Snacks", set.Leads[0].Company)
	assert.Equal(t, "Fresno, CA", set.Leads[0].Location)
	assert.Equal(t, "Best Foods", set.Leads[1].Company)
}

func TestXLSXReader_MissingColumn(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"Company", "Location"},
		{"Acme", "Fresno, CA"},
	})

	_, err := NewXLSXReader(path).Read(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Website")
}

func TestXLSXReader_MissingFile(t *testing.T) {
	_, err := NewXLSXReader(filepath.Join(t.TempDir(), "nope.xlsx")).Read(context.Background())
	assert.Error(t, err)
}
