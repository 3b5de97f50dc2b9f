package cache

import (
	"context"

	"github.com/club-ledger/backend/internal/application/adapter"
	"github.com/club-ledger/backend/internal/domain/entity"
)

// NoopSummaryCache never stores anything. Used when Redis is disabled.
type NoopSummaryCache struct{}

var _ adapter.SummaryCache = NoopSummaryCache{}

// Get always misses.
func (NoopSummaryCache) Get(context.Context, adapter.TransactionFilter) (adapter.SummaryLookup, error) {
	return adapter.SummaryLookup{}, nil
}

// Set discards the summary.
func (NoopSummaryCache) Set(context.Context, adapter.TransactionFilter, int64, *entity.PeriodSummary) error {
	return nil
}

// Invalidate does nothing.
func (NoopSummaryCache) Invalidate(context.Context) error {
	return nil
}
