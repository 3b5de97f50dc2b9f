package report

import (
	"context"
	"fmt"

	"github.com/club-ledger/backend/internal/application/adapter"
	"github.com/club-ledger/backend/internal/domain/entity"
	domainerror "github.com/club-ledger/backend/internal/domain/error"
)

// CompareSectionsOutput holds one row per section for a year.
type CompareSectionsOutput struct {
	Year int
	Rows []entity.SectionComparison
}

// CompareSectionsUseCase runs the yearly summary once per section.
type CompareSectionsUseCase struct {
	sectionRepo adapter.SectionRepository
	summarizer  *SummarizePeriodUseCase
}

// NewCompareSectionsUseCase creates a new CompareSectionsUseCase instance.
func NewCompareSectionsUseCase(
	sectionRepo adapter.SectionRepository,
	summarizer *SummarizePeriodUseCase,
) *CompareSectionsUseCase {
	return &CompareSectionsUseCase{
		sectionRepo: sectionRepo,
		summarizer:  summarizer,
	}
}

// Execute returns the per-section totals in stored section order. No grand total is computed.
func (uc *CompareSectionsUseCase) Execute(ctx context.Context, year int) (*CompareSectionsOutput, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}

	sections, err := uc.sectionRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportInternalError,
			"failed to list sections",
			err,
		)
	}

	rows := make([]entity.SectionComparison, 0, len(sections))
	for _, s := range sections {
		sectionID := s.ID
		summary, err := uc.summarizer.Year(ctx, year, &sectionID)
		if err != nil {
			return nil, fmt.Errorf("summarize section %d: %w", s.ID, err)
		}
		rows = append(rows, entity.SectionComparison{
			SectionID:   s.ID,
			SectionName: s.Name,
			Incomes:     summary.Incomes,
			Expenses:    summary.Expenses,
			Net:         summary.Net,
		})
	}

	return &CompareSectionsOutput{
		Year: year,
		Rows: rows,
	}, nil
}
