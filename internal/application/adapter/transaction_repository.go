// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/club-ledger/backend/internal/domain/entity"
)

// TransactionFilter selects transactions by inclusive date range and optional section.
type TransactionFilter struct {
	StartDate time.Time
	EndDate   time.Time
	SectionID *uint
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// CreateChecked inserts a transaction inside one database transaction after verifying
	// that its category and section exist. Nothing is written when a reference is missing.
	CreateChecked(ctx context.Context, transaction *entity.Transaction) error

	// SumByKind returns the sum of amounts per category kind for the filter.
	// Kinds without matching rows are absent from the result.
	SumByKind(ctx context.Context, filter TransactionFilter) ([]entity.KindTotal, error)

	// FindDetailed returns transactions matching the filter joined with their category and
	// section names, ordered by date ascending then id ascending.
	FindDetailed(ctx context.Context, filter TransactionFilter) ([]*entity.TransactionDetail, error)

	// FindRecent returns the most recent transactions, newest first.
	FindRecent(ctx context.Context, limit int) ([]*entity.TransactionDetail, error)
}
