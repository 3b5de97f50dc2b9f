// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/club-ledger/backend/internal/application/adapter"
	"github.com/club-ledger/backend/internal/domain/entity"
	domainerror "github.com/club-ledger/backend/internal/domain/error"
)

// amountScale is the number of decimal places stored for amounts.
const amountScale = 2

// RecordTransactionInput carries the raw form values of a new transaction.
type RecordTransactionInput struct {
	Date        string
	CategoryID  string
	SectionID   string
	Amount      string
	Description string
}

// RecordTransactionOutput represents the output of transaction recording.
type RecordTransactionOutput struct {
	Transaction *entity.Transaction
}

// RecordTransactionUseCase validates and atomically persists a transaction.
type RecordTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.SummaryCache
}

// NewRecordTransactionUseCase creates a new RecordTransactionUseCase instance.
func NewRecordTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	cache adapter.SummaryCache,
) *RecordTransactionUseCase {
	return &RecordTransactionUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Execute performs the transaction recording.
func (uc *RecordTransactionUseCase) Execute(ctx context.Context, input RecordTransactionInput) (*RecordTransactionOutput, error) {
	// Required fields
	for _, f := range []struct{ name, value string }{
		{"date", input.Date},
		{"category_id", input.CategoryID},
		{"section_id", input.SectionID},
		{"amount", input.Amount},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeMissingTransactionFields,
				fmt.Sprintf("%s is required", f.name),
				domainerror.ErrMissingTransactionField,
			)
		}
	}

	date, err := time.Parse(entity.DateLayout, strings.TrimSpace(input.Date))
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date must be in YYYY-MM-DD format",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	categoryID, err := parseID("category_id", input.CategoryID)
	if err != nil {
		return nil, err
	}
	sectionID, err := parseID("section_id", input.SectionID)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(input.Amount))
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be a decimal number",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	tx := entity.NewTransaction(
		date,
		amount.Round(amountScale),
		strings.TrimSpace(input.Description),
		categoryID,
		sectionID,
	)

	if err := uc.transactionRepo.CreateChecked(ctx, tx); err != nil {
		switch {
		case errors.Is(err, domainerror.ErrCategoryNotFound):
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				fmt.Sprintf("category %d not found", categoryID),
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		case errors.Is(err, domainerror.ErrSectionNotFound):
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnSectionNotFound,
				fmt.Sprintf("section %d not found", sectionID),
				domainerror.ErrSectionNotFoundForTransaction,
			)
		default:
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionInternalError,
				"failed to record transaction",
				err,
			)
		}
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx); err != nil {
			slog.WarnContext(ctx, "Failed to invalidate summary cache", "error", err)
		}
	}

	slog.InfoContext(ctx, "Transaction recorded",
		"transaction_id", tx.ID,
		"date", tx.Date.Format(entity.DateLayout),
		"category_id", tx.CategoryID,
		"section_id", tx.SectionID,
		"amount", tx.Amount.StringFixed(amountScale),
	)

	return &RecordTransactionOutput{Transaction: tx}, nil
}

func parseID(field, raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidReferenceID,
			fmt.Sprintf("%s must be a positive integer", field),
			domainerror.ErrInvalidReferenceID,
		)
	}
	return uint(id), nil
}
