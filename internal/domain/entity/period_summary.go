// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodSummary holds the aggregated totals for a date range.
// It is derived on demand and never persisted.
type PeriodSummary struct {
	Start     time.Time
	End       time.Time
	SectionID *uint
	Incomes   decimal.Decimal
	Expenses  decimal.Decimal
	Net       decimal.Decimal
}

// NewPeriodSummary builds a summary from the two buckets. Net is always incomes minus expenses.
func NewPeriodSummary(start, end time.Time, sectionID *uint, incomes, expenses decimal.Decimal) *PeriodSummary {
	return &PeriodSummary{
		Start:     start,
		End:       end,
		SectionID: sectionID,
		Incomes:   incomes,
		Expenses:  expenses,
		Net:       incomes.Sub(expenses),
	}
}

// KindTotal is the raw sum of amounts for one category kind.
type KindTotal struct {
	Kind  CategoryKind
	Total decimal.Decimal
}

// SectionComparison is one row of the per-section yearly comparison.
type SectionComparison struct {
	SectionID   uint
	SectionName string
	Incomes     decimal.Decimal
	Expenses    decimal.Decimal
	Net         decimal.Decimal
}
