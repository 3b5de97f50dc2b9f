// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/club-ledger/backend/internal/domain/entity"
)

// SummaryLookup is the outcome of a cache read. Generation identifies the cache state the
// read observed; Summary is nil on a miss.
type SummaryLookup struct {
	Summary    *entity.PeriodSummary
	Generation int64
}

// Hit reports whether the lookup found a summary.
func (l SummaryLookup) Hit() bool {
	return l.Summary != nil
}

// SummaryCache stores computed period summaries between writes.
type SummaryCache interface {
	// Get returns the cached summary for the filter together with the current generation.
	Get(ctx context.Context, filter TransactionFilter) (SummaryLookup, error)

	// Set stores a summary computed after a Get that observed generation. Nothing is stored
	// when the cache has been invalidated since, so totals read before a write never outlive it.
	Set(ctx context.Context, filter TransactionFilter, generation int64, summary *entity.PeriodSummary) error

	// Invalidate drops every cached summary. Called after each recorded transaction.
	Invalidate(ctx context.Context) error
}
