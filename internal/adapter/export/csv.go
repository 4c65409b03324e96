// Package export renders transaction histories for external consumers.
package export

import (
	"encoding/csv"
	"io"

	"github.com/iho/pocketbook/internal/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

var csvHeader = []string{"Timestamp", "Type", "Amount", "Category"}

// CSVExporter writes a history as CSV, one row per transaction in
// insertion order. Category labels round-trip verbatim.
type CSVExporter struct{}

// NewCSVExporter creates a new CSVExporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Export writes the header row followed by the full history.
func (e *CSVExporter) Export(w io.Writer, history []domain.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, tx := range history {
		record := []string{
			tx.Timestamp.UTC().Format(timestampLayout),
			string(tx.Kind),
			tx.Amount.String(),
			string(tx.Category),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
