package source

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/outreach-cli/internal/model"
)

// ParseLeads reads a CSV document into a LeadSet. The first row is the
// header; a leading UTF-8 BOM is tolerated. Company and Website columns
// are required, everything else is optional and carried through verbatim.
func ParseLeads(r io.Reader) (*model.LeadSet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable fields

	header, err := reader.Read()
	if err == io.EOF {
		return nil, eris.New("source: empty document")
	}
	if err != nil {
		return nil, eris.Wrap(err, "source: read header")
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	if err := requireColumns(header); err != nil {
		return nil, err
	}

	set := &model.LeadSet{Header: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "source: read row")
		}
		set.Leads = append(set.Leads, leadFromRecord(header, record))
	}

	return set, nil
}

func requireColumns(header []string) error {
	have := make(map[string]bool, len(header))
	for _, col := range header {
		have[col] = true
	}
	for _, col := range []string{model.ColCompany, model.ColWebsite} {
		if !have[col] {
			return eris.Errorf("source: missing required column %q", col)
		}
	}
	return nil
}

func leadFromRecord(header, record []string) model.Lead {
	var lead model.Lead
	for i, col := range header {
		if i >= len(record) {
			break
		}
		val := strings.TrimSpace(record[i])
		switch col {
		case model.ColCompany:
			lead.Company = val
		case model.ColWebsite:
			lead.Website = val
		case model.ColContactName:
			lead.ContactName = val
		case model.ColContactEmail:
			lead.ContactEmail = val
		case model.ColLocation:
			lead.Location = val
		default:
			if lead.Extra == nil {
				lead.Extra = make(map[string]string)
			}
			lead.Extra[col] = val
		}
	}
	return lead
}

// FileReader reads a local CSV file.
type FileReader struct {
	path string
}

// NewFileReader creates a reader over a local CSV path.
func NewFileReader(path string) *FileReader {
	return &FileReader{path: path}
}

// Read parses the file into a LeadSet.
func (f *FileReader) Read(_ context.Context) (*model.LeadSet, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, eris.Wrap(err, "source: open csv")
	}
	defer func() { _ = file.Close() }()

	return ParseLeads(file)
}
