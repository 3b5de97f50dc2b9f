package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/club-ledger/backend/internal/application/adapter"
)

const xlsxDateLayout = "02/01/2006"

// XLSXEncoder writes a workbook with a single sheet named after the year.
type XLSXEncoder struct {
	locale Locale
}

var _ adapter.ExportEncoder = (*XLSXEncoder)(nil)

// NewXLSXEncoder creates an XLSX encoder with headers in the given locale.
func NewXLSXEncoder(locale Locale) *XLSXEncoder {
	return &XLSXEncoder{locale: locale}
}

func (e *XLSXEncoder) Format() string { return "xlsx" }
func (e *XLSXEncoder) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (e *XLSXEncoder) Extension() string { return "xlsx" }

// Encode writes the workbook. Dates are dd/mm/yyyy text and amounts are numeric cells.
func (e *XLSXEncoder) Encode(w io.Writer, doc adapter.ExportDocument) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	sheet := strconv.Itoa(doc.Year)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	h := headersFor(e.locale)
	header := []interface{}{h.Date, h.Category, h.Section, h.Description, h.Amount + " (€)"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range doc.Rows {
		amount, _ := row.Transaction.Amount.Round(2).Float64()
		values := []interface{}{
			row.Transaction.Date.Format(xlsxDateLayout),
			row.CategoryName,
			row.SectionName,
			row.Transaction.Description,
			amount,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row.Transaction.ID, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
