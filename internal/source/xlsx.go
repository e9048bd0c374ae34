package source

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/outreach-cli/internal/model"
)

// XLSXReader reads leads from the first sheet of a local .xlsx workbook,
// for teams that hand over raw spreadsheet exports instead of CSV links.
type XLSXReader struct {
	path string
}

// NewXLSXReader creates a reader over a local .xlsx path.
func NewXLSXReader(path string) *XLSXReader {
	return &XLSXReader{path: path}
}

// Read parses the first sheet into a LeadSet. The first row is the header.
func (x *XLSXReader) Read(_ context.Context) (*model.LeadSet, error) {
	f, err := xlsx.OpenFile(x.path)
	if err != nil {
		return nil, eris.Wrap(err, "source: open xlsx")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.Errorf("source: %s has no sheets", x.path)
	}

	sheet := f.Sheets[0]
	if len(sheet.Rows) == 0 {
		return nil, eris.New("source: empty document")
	}

	header := rowToStrings(sheet.Rows[0])
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if err := requireColumns(header); err != nil {
		return nil, err
	}

	set := &model.LeadSet{Header: header}
	for _, row := range sheet.Rows[1:] {
		cells := rowToStrings(row)
		if allEmpty(cells) {
			continue
		}
		set.Leads = append(set.Leads, leadFromRecord(header, cells))
	}

	return set, nil
}

func rowToStrings(row *xlsx.Row) []string {
	out := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		out[i] = cell.String()
	}
	return out
}

func allEmpty(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
