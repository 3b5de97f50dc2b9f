package report

import (
	"context"

	"github.com/club-ledger/backend/internal/application/adapter"
	"github.com/club-ledger/backend/internal/domain/entity"
	domainerror "github.com/club-ledger/backend/internal/domain/error"
)

// DefaultRecentLimit is the number of recent transactions shown on the dashboard.
const DefaultRecentLimit = 15

// GetDashboardInput represents the input for the dashboard.
// Zero Year or Month fall back to the current date.
type GetDashboardInput struct {
	Year        int
	Month       int
	SectionID   *uint
	RecentLimit int
}

// GetDashboardOutput bundles everything the overview page renders.
type GetDashboardOutput struct {
	Year         int
	Month        int
	SectionID    *uint
	MonthSummary *entity.PeriodSummary
	YearSummary  *entity.PeriodSummary
	Recent       []*entity.TransactionDetail
	Categories   []*entity.Category
	Sections     []*entity.Section
}

// GetDashboardUseCase assembles the month and year summaries with the latest entries.
type GetDashboardUseCase struct {
	summarizer      *SummarizePeriodUseCase
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	sectionRepo     adapter.SectionRepository
	clock           adapter.Clock
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	summarizer *SummarizePeriodUseCase,
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	sectionRepo adapter.SectionRepository,
	clock adapter.Clock,
) *GetDashboardUseCase {
	if clock == nil {
		clock = adapter.SystemClock{}
	}
	return &GetDashboardUseCase{
		summarizer:      summarizer,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		sectionRepo:     sectionRepo,
		clock:           clock,
	}
}

// Execute builds the dashboard.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	now := uc.clock.Now()
	if input.Year == 0 {
		input.Year = now.Year()
	}
	if input.Month == 0 {
		input.Month = int(now.Month())
	}
	sectionID := normalizeSection(input.SectionID)

	monthSummary, err := uc.summarizer.Month(ctx, input.Year, input.Month, sectionID)
	if err != nil {
		return nil, err
	}
	yearSummary, err := uc.summarizer.Year(ctx, input.Year, sectionID)
	if err != nil {
		return nil, err
	}

	limit := input.RecentLimit
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	recent, err := uc.transactionRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, domainerror.NewReportError(domainerror.ErrCodeReportInternalError, "failed to load recent transactions", err)
	}

	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewReportError(domainerror.ErrCodeReportInternalError, "failed to load categories", err)
	}
	sections, err := uc.sectionRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewReportError(domainerror.ErrCodeReportInternalError, "failed to load sections", err)
	}

	return &GetDashboardOutput{
		Year:         input.Year,
		Month:        input.Month,
		SectionID:    sectionID,
		MonthSummary: monthSummary,
		YearSummary:  yearSummary,
		Recent:       recent,
		Categories:   categories,
		Sections:     sections,
	}, nil
}
