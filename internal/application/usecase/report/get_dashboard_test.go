package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func TestGetDashboard(t *testing.T) {
	store := newFakeStore()
	for i := 1; i <= 20; i++ {
		store.add(uint(i), time.Date(2024, 6, i, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), "10", 1, 1)
	}
	store.add(21, "2024-01-05", "-5", 2, 2)

	summarizer := NewSummarizePeriodUseCase(store, nil)
	clock := fixedClock(time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC))
	uc := NewGetDashboardUseCase(summarizer, store, fakeCategories{store}, store, clock)

	out, err := uc.Execute(context.Background(), GetDashboardInput{})
	require.NoError(t, err)

	assert.Equal(t, 2024, out.Year)
	assert.Equal(t, 6, out.Month)
	assert.Equal(t, "200.00", out.MonthSummary.Incomes.StringFixed(2))
	assert.Equal(t, "0.00", out.MonthSummary.Expenses.StringFixed(2))
	assert.Equal(t, "205.00", out.YearSummary.Net.StringFixed(2))

	require.Len(t, out.Recent, DefaultRecentLimit)
	assert.Equal(t, uint(20), out.Recent[0].Transaction.ID, "newest first")
	assert.Len(t, out.Categories, 2)
	assert.Len(t, out.Sections, 2)
}

func TestGetDashboard_InvalidMonth(t *testing.T) {
	store := newFakeStore()
	uc := NewGetDashboardUseCase(NewSummarizePeriodUseCase(store, nil), store, fakeCategories{store}, store, nil)

	_, err := uc.Execute(context.Background(), GetDashboardInput{Year: 2024, Month: 14})
	assert.Error(t, err)
}
