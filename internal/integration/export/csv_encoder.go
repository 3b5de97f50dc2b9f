package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/club-ledger/backend/internal/application/adapter"
	"github.com/club-ledger/backend/internal/domain/entity"
)

// CSVEncoder writes one header line followed by one line per transaction.
type CSVEncoder struct {
	locale Locale
}

var _ adapter.ExportEncoder = (*CSVEncoder)(nil)

// NewCSVEncoder creates a CSV encoder with headers in the given locale.
func NewCSVEncoder(locale Locale) *CSVEncoder {
	return &CSVEncoder{locale: locale}
}

func (e *CSVEncoder) Format() string      { return "csv" }
func (e *CSVEncoder) ContentType() string { return "text/csv; charset=utf-8" }
func (e *CSVEncoder) Extension() string   { return "csv" }

// Encode writes the document. Fields containing separators, quotes or newlines are quoted.
func (e *CSVEncoder) Encode(w io.Writer, doc adapter.ExportDocument) error {
	h := headersFor(e.locale)
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{h.Date, h.Category, h.Section, h.Description, h.Amount}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range doc.Rows {
		record := []string{
			row.Transaction.Date.Format(entity.DateLayout),
			row.CategoryName,
			row.SectionName,
			row.Transaction.Description,
			row.Transaction.Amount.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", row.Transaction.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
