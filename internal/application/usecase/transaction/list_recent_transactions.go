package transaction

import (
	"context"

	"github.com/club-ledger/backend/internal/application/adapter"
	"github.com/club-ledger/backend/internal/domain/entity"
	domainerror "github.com/club-ledger/backend/internal/domain/error"
)

const (
	// DefaultRecentLimit is used when no limit is requested.
	DefaultRecentLimit = 15
	// MaxRecentLimit caps the number of rows returned.
	MaxRecentLimit = 100
)

// ListRecentTransactionsInput represents the input for listing recent transactions.
type ListRecentTransactionsInput struct {
	Limit int
}

// ListRecentTransactionsOutput represents the output of listing recent transactions.
type ListRecentTransactionsOutput struct {
	Transactions []*entity.TransactionDetail
}

// ListRecentTransactionsUseCase returns the latest transactions, newest first.
type ListRecentTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListRecentTransactionsUseCase creates a new ListRecentTransactionsUseCase instance.
func NewListRecentTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListRecentTransactionsUseCase {
	return &ListRecentTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute lists the most recent transactions.
func (uc *ListRecentTransactionsUseCase) Execute(ctx context.Context, input ListRecentTransactionsInput) (*ListRecentTransactionsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	rows, err := uc.transactionRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionInternalError,
			"failed to list recent transactions",
			err,
		)
	}

	return &ListRecentTransactionsOutput{Transactions: rows}, nil
}
