package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/club-ledger/backend/internal/application/adapter"
	domainerror "github.com/club-ledger/backend/internal/domain/error"
	"github.com/club-ledger/backend/internal/integration/cache"
)

func TestSummarizePeriod_Month(t *testing.T) {
	store := newFakeStore()
	store.add(1, "2024-02-01", "100.10", 1, 1)
	store.add(2, "2024-02-29", "50", 1, 2)
	store.add(3, "2024-02-15", "-30.05", 2, 1)
	store.add(4, "2024-03-01", "999", 1, 1)
	store.add(5, "2024-01-31", "999", 2, 1)

	uc := NewSummarizePeriodUseCase(store, nil)

	summary, err := uc.Month(context.Background(), 2024, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, "150.10", summary.Incomes.StringFixed(2))
	assert.Equal(t, "-30.05", summary.Expenses.StringFixed(2))
	assert.Equal(t, "180.15", summary.Net.StringFixed(2), "net is incomes minus expenses without sign coercion")
	assert.True(t, summary.End.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
}

func TestSummarizePeriod_SectionFilter(t *testing.T) {
	store := newFakeStore()
	store.add(1, "2024-05-01", "100", 1, 1)
	store.add(2, "2024-05-02", "70", 1, 2)
	store.add(3, "2024-05-03", "20", 2, 2)

	uc := NewSummarizePeriodUseCase(store, nil)
	ctx := context.Background()

	section := uint(2)
	summary, err := uc.Year(ctx, 2024, &section)
	require.NoError(t, err)
	assert.Equal(t, "70.00", summary.Incomes.StringFixed(2))
	assert.Equal(t, "20.00", summary.Expenses.StringFixed(2))
	assert.Equal(t, "50.00", summary.Net.StringFixed(2))

	zero := uint(0)
	all, err := uc.Year(ctx, 2024, &zero)
	require.NoError(t, err)
	assert.Nil(t, all.SectionID, "section 0 means all sections")
	assert.Equal(t, "170.00", all.Incomes.StringFixed(2))

	missing := uint(77)
	none, err := uc.Year(ctx, 2024, &missing)
	require.NoError(t, err)
	assert.True(t, none.Incomes.IsZero())
	assert.True(t, none.Expenses.IsZero())
	assert.True(t, none.Net.IsZero())
}

func TestSummarizePeriod_EmptyRangeIsZero(t *testing.T) {
	uc := NewSummarizePeriodUseCase(newFakeStore(), nil)

	summary, err := uc.Year(context.Background(), 1999, nil)
	require.NoError(t, err)
	assert.Equal(t, "0.00", summary.Incomes.StringFixed(2))
	assert.Equal(t, "0.00", summary.Expenses.StringFixed(2))
	assert.Equal(t, "0.00", summary.Net.StringFixed(2))
}

func TestSummarizePeriod_Validation(t *testing.T) {
	uc := NewSummarizePeriodUseCase(newFakeStore(), nil)
	ctx := context.Background()

	_, err := uc.Execute(ctx, SummarizePeriodInput{
		StartDate: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerror.ErrInvalidDateRange)
	assert.True(t, domainerror.IsValidationError(err))

	_, err = uc.Execute(ctx, SummarizePeriodInput{})
	assert.ErrorIs(t, err, domainerror.ErrInvalidDateRange)

	_, err = uc.Month(ctx, 2024, 13, nil)
	assert.ErrorIs(t, err, domainerror.ErrInvalidMonth)

	single, err := uc.Execute(ctx, SummarizePeriodInput{
		StartDate: time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err, "times of day are ignored")
	assert.True(t, single.Start.Equal(single.End))
}

func TestSummarizePeriod_Cache(t *testing.T) {
	store := newFakeStore()
	store.add(1, "2024-05-01", "100", 1, 1)
	memCache := newMemoryCache()
	uc := NewSummarizePeriodUseCase(store, memCache)
	ctx := context.Background()

	first, err := uc.Year(ctx, 2024, nil)
	require.NoError(t, err)
	second, err := uc.Year(ctx, 2024, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, store.sumCalls)
	assert.Equal(t, 1, memCache.hits)
	assert.True(t, first.Net.Equal(second.Net))

	t.Run("cache failures fall back to the store", func(t *testing.T) {
		memCache.getErr = errors.New("connection refused")
		summary, err := uc.Year(ctx, 2024, nil)
		require.NoError(t, err)
		assert.Equal(t, "100.00", summary.Incomes.StringFixed(2))
		assert.Equal(t, 2, store.sumCalls)
	})
}

func TestSummarizePeriod_WriteDuringSumIsNotCached(t *testing.T) {
	ctx := context.Background()

	caches := map[string]func(t *testing.T) adapter.SummaryCache{
		"memory": func(*testing.T) adapter.SummaryCache { return newMemoryCache() },
		"redis": func(t *testing.T) adapter.SummaryCache {
			mr := miniredis.RunT(t)
			client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
			t.Cleanup(func() { _ = client.Close() })
			return cache.NewRedisSummaryCache(client, time.Minute)
		},
	}

	for name, newCache := range caches {
		t.Run(name, func(t *testing.T) {
			summaryCache := newCache(t)
			store := newFakeStore()
			store.duringSum = func() {
				// A transaction commits after the totals were read.
				store.add(1, "2024-03-10", "500", 1, 1)
				require.NoError(t, summaryCache.Invalidate(ctx))
			}
			uc := NewSummarizePeriodUseCase(store, summaryCache)

			stale, err := uc.Month(ctx, 2024, 3, nil)
			require.NoError(t, err)
			assert.Equal(t, "0.00", stale.Incomes.StringFixed(2))

			fresh, err := uc.Month(ctx, 2024, 3, nil)
			require.NoError(t, err)
			assert.Equal(t, "500.00", fresh.Incomes.StringFixed(2))
			assert.Equal(t, 2, store.sumCalls)

			cached, err := uc.Month(ctx, 2024, 3, nil)
			require.NoError(t, err)
			assert.Equal(t, "500.00", cached.Incomes.StringFixed(2))
			assert.Equal(t, 2, store.sumCalls, "the fresh result is cached")
		})
	}
}

func TestSummarizePeriod_StoreError(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("database is locked")

	_, err := NewSummarizePeriodUseCase(store, nil).Year(context.Background(), 2024, nil)
	require.Error(t, err)

	var reportErr *domainerror.ReportError
	require.ErrorAs(t, err, &reportErr)
	assert.Equal(t, domainerror.ErrCodeReportInternalError, reportErr.Code)
}
