package report

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/club-ledger/backend/internal/application/adapter"
	domainerror "github.com/club-ledger/backend/internal/domain/error"
)

// ExportTransactionsInput represents the input for a yearly export.
type ExportTransactionsInput struct {
	Year      int
	SectionID *uint
	Format    string
}

// ExportTransactionsOutput is a fully encoded export file.
type ExportTransactionsOutput struct {
	FileName    string
	ContentType string
	Body        []byte
	RowCount    int
}

// ExportTransactionsUseCase selects a year of transactions and encodes them.
type ExportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	encoders        map[string]adapter.ExportEncoder
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	encoders ...adapter.ExportEncoder,
) *ExportTransactionsUseCase {
	byFormat := make(map[string]adapter.ExportEncoder, len(encoders))
	for _, e := range encoders {
		byFormat[e.Format()] = e
	}
	return &ExportTransactionsUseCase{
		transactionRepo: transactionRepo,
		encoders:        byFormat,
	}
}

// Execute produces the export. The document is encoded into memory first, so a failing
// row never results in a truncated file.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	encoder, ok := uc.encoders[strings.ToLower(input.Format)]
	if !ok {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeUnsupportedExportFormat,
			fmt.Sprintf("unsupported export format %q", input.Format),
			domainerror.ErrUnsupportedExportFormat,
		)
	}

	start, end, err := YearRange(input.Year)
	if err != nil {
		return nil, err
	}

	rows, err := uc.transactionRepo.FindDetailed(ctx, adapter.TransactionFilter{
		StartDate: start,
		EndDate:   end,
		SectionID: normalizeSection(input.SectionID),
	})
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportInternalError,
			"failed to load transactions for export",
			err,
		)
	}

	var buf bytes.Buffer
	if err := encoder.Encode(&buf, adapter.ExportDocument{Year: input.Year, Rows: rows}); err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeExportEncoding,
			"failed to encode export",
			fmt.Errorf("%w: %v", domainerror.ErrExportEncoding, err),
		)
	}

	slog.InfoContext(ctx, "Export produced",
		"year", input.Year,
		"format", encoder.Format(),
		"rows", len(rows),
		"bytes", buf.Len(),
	)

	return &ExportTransactionsOutput{
		FileName:    fmt.Sprintf("budget_%d.%s", input.Year, encoder.Extension()),
		ContentType: encoder.ContentType(),
		Body:        buf.Bytes(),
		RowCount:    len(rows),
	}, nil
}
