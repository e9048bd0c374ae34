// Package output serializes enriched leads to the result table.
package output

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/outreach-cli/internal/model"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Writer emits the enrichment result CSV. Input columns come first in
// their original order, enrichment columns are appended.
type Writer struct {
	// BOM prefixes the file with a UTF-8 byte-order mark so spreadsheet
	// applications import it cleanly.
	BOM bool
	// Extended adds the EmailFound and LocationGuess columns.
	Extended bool
}

// Columns returns the output header for the given input header.
func (w *Writer) Columns(inputHeader []string) []string {
	cols := make([]string, 0, len(inputHeader)+6)
	cols = append(cols, inputHeader...)
	cols = append(cols, model.ColPhone, model.ColProfile, model.ColTailoredEmail, model.ColScrapeError)
	if w.Extended {
		cols = append(cols, model.ColEmailFound, model.ColLocationGuess)
	}
	return cols
}

// WriteTo streams the result table to out.
func (w *Writer) WriteTo(out io.Writer, inputHeader []string, rows []model.EnrichedLead) error {
	if w.BOM {
		if _, err := out.Write(utf8BOM); err != nil {
			return eris.Wrap(err, "output: write bom")
		}
	}

	cw := csv.NewWriter(out)
	if err := cw.Write(w.Columns(inputHeader)); err != nil {
		return eris.Wrap(err, "output: write header")
	}

	for _, row := range rows {
		record := make([]string, 0, len(inputHeader)+6)
		for _, col := range inputHeader {
			record = append(record, row.Field(col))
		}
		record = append(record, row.Phone, row.Profile, row.TailoredEmail, row.ScrapeError)
		if w.Extended {
			record = append(record, row.EmailFound, row.LocationGuess)
		}
		if err := cw.Write(record); err != nil {
			return eris.Wrap(err, "output: write row")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "output: flush")
	}
	return nil
}

// WriteFile writes the result table to path, truncating any existing file.
func (w *Writer) WriteFile(path string, inputHeader []string, rows []model.EnrichedLead) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "output: create file")
	}
	defer func() { _ = f.Close() }()

	if err := w.WriteTo(f, inputHeader, rows); err != nil {
		return err
	}

	zap.L().Info("output: results written",
		zap.String("path", path),
		zap.Int("rows", len(rows)),
	)
	return nil
}
