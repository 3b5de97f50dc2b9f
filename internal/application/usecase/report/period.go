// Package report contains the summarization, comparison, dashboard and export use cases.
package report

import (
	"fmt"
	"time"

	domainerror "github.com/club-ledger/backend/internal/domain/error"
)

const (
	minYear = 1
	maxYear = 9999
)

// MonthRange returns the first and last calendar day of the given month.
// The last day is derived from calendar arithmetic, so 28, 29, 30 and 31 day months
// and leap years are handled.
func MonthRange(year, month int) (start, end time.Time, err error) {
	if err := validateYear(year); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonth,
			fmt.Sprintf("month must be between 1 and 12, got %d", month),
			domainerror.ErrInvalidMonth,
		)
	}

	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end, nil
}

// YearRange returns January 1st and December 31st of the given year.
func YearRange(year int) (start, end time.Time, err error) {
	if err := validateYear(year); err != nil {
		return time.Time{}, time.Time{}, err
	}

	start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return start, end, nil
}

func validateYear(year int) error {
	if year < minYear || year > maxYear {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidYear,
			fmt.Sprintf("year must be between %d and %d, got %d", minYear, maxYear, year),
			domainerror.ErrInvalidYear,
		)
	}
	return nil
}

// normalizeSection treats a zero section id as "all sections".
func normalizeSection(sectionID *uint) *uint {
	if sectionID == nil || *sectionID == 0 {
		return nil
	}
	id := *sectionID
	return &id
}
