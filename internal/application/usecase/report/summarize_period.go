package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/club-ledger/backend/internal/application/adapter"
	"github.com/club-ledger/backend/internal/domain/entity"
	domainerror "github.com/club-ledger/backend/internal/domain/error"
)

// SummarizePeriodInput represents an inclusive date range with an optional section filter.
type SummarizePeriodInput struct {
	StartDate time.Time
	EndDate   time.Time
	SectionID *uint
}

// SummarizePeriodUseCase computes income, expense and net totals for a date range.
type SummarizePeriodUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.SummaryCache
}

// NewSummarizePeriodUseCase creates a new SummarizePeriodUseCase instance.
// The cache may be nil.
func NewSummarizePeriodUseCase(
	transactionRepo adapter.TransactionRepository,
	cache adapter.SummaryCache,
) *SummarizePeriodUseCase {
	return &SummarizePeriodUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Month summarizes one calendar month.
func (uc *SummarizePeriodUseCase) Month(ctx context.Context, year, month int, sectionID *uint) (*entity.PeriodSummary, error) {
	start, end, err := MonthRange(year, month)
	if err != nil {
		return nil, err
	}
	return uc.Execute(ctx, SummarizePeriodInput{StartDate: start, EndDate: end, SectionID: sectionID})
}

// Year summarizes January 1st through December 31st.
func (uc *SummarizePeriodUseCase) Year(ctx context.Context, year int, sectionID *uint) (*entity.PeriodSummary, error) {
	start, end, err := YearRange(year)
	if err != nil {
		return nil, err
	}
	return uc.Execute(ctx, SummarizePeriodInput{StartDate: start, EndDate: end, SectionID: sectionID})
}

// Execute summarizes an arbitrary inclusive date range.
// A range that matches no rows, or a section that does not exist, yields zero totals.
func (uc *SummarizePeriodUseCase) Execute(ctx context.Context, input SummarizePeriodInput) (*entity.PeriodSummary, error) {
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"start and end dates are required",
			domainerror.ErrInvalidDateRange,
		)
	}

	filter := adapter.TransactionFilter{
		StartDate: entity.CalendarDay(input.StartDate),
		EndDate:   entity.CalendarDay(input.EndDate),
		SectionID: normalizeSection(input.SectionID),
	}
	if filter.EndDate.Before(filter.StartDate) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not be before start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	// cacheable stays false when the read failed, since the generation is then unknown.
	var (
		cacheable  bool
		generation int64
	)
	if uc.cache != nil {
		lookup, err := uc.cache.Get(ctx, filter)
		switch {
		case err != nil:
			slog.WarnContext(ctx, "Summary cache read failed", "error", err)
		case lookup.Hit():
			return lookup.Summary, nil
		default:
			cacheable = true
			generation = lookup.Generation
		}
	}

	totals, err := uc.transactionRepo.SumByKind(ctx, filter)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportInternalError,
			"failed to summarize period",
			fmt.Errorf("sum by kind: %w", err),
		)
	}

	incomes, expenses := decimal.Zero, decimal.Zero
	for _, t := range totals {
		switch t.Kind {
		case entity.CategoryKindIncome:
			incomes = incomes.Add(t.Total)
		case entity.CategoryKindExpense:
			expenses = expenses.Add(t.Total)
		default:
			slog.WarnContext(ctx, "Ignoring totals for unknown category kind", "kind", t.Kind)
		}
	}

	summary := entity.NewPeriodSummary(filter.StartDate, filter.EndDate, filter.SectionID, incomes, expenses)

	if cacheable {
		if err := uc.cache.Set(ctx, filter, generation, summary); err != nil {
			slog.WarnContext(ctx, "Summary cache write failed", "error", err)
		}
	}

	return summary, nil
}
