// Package cache implements the summary cache backed by Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/club-ledger/backend/internal/application/adapter"
	"github.com/club-ledger/backend/internal/domain/entity"
)

const (
	keyPrefix     = "ledger:summary"
	generationKey = keyPrefix + ":generation"
)

var errStaleGeneration = errors.New("summary cache generation changed")

// redisSummaryCache implements adapter.SummaryCache. Entries are namespaced by a
// generation counter, so invalidation is a single INCR and stale keys expire by TTL.
type redisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSummaryCache creates a Redis backed summary cache.
func NewRedisSummaryCache(client *redis.Client, ttl time.Duration) adapter.SummaryCache {
	return &redisSummaryCache{
		client: client,
		ttl:    ttl,
	}
}

type cachedSummary struct {
	Start     string          `json:"start"`
	End       string          `json:"end"`
	SectionID *uint           `json:"section_id,omitempty"`
	Incomes   decimal.Decimal `json:"incomes"`
	Expenses  decimal.Decimal `json:"expenses"`
	Net       decimal.Decimal `json:"net"`
}

// Get returns the cached summary for the filter and the generation it was looked up under.
func (c *redisSummaryCache) Get(ctx context.Context, filter adapter.TransactionFilter) (adapter.SummaryLookup, error) {
	generation, err := readGeneration(ctx, c.client)
	if err != nil {
		return adapter.SummaryLookup{}, err
	}
	lookup := adapter.SummaryLookup{Generation: generation}

	raw, err := c.client.Get(ctx, summaryKey(generation, filter)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return lookup, nil
		}
		return adapter.SummaryLookup{}, fmt.Errorf("failed to read summary cache: %w", err)
	}

	var cached cachedSummary
	if err := json.Unmarshal(raw, &cached); err != nil {
		return adapter.SummaryLookup{}, fmt.Errorf("failed to decode cached summary: %w", err)
	}

	start, err := time.Parse(entity.DateLayout, cached.Start)
	if err != nil {
		return adapter.SummaryLookup{}, fmt.Errorf("failed to decode cached summary start: %w", err)
	}
	end, err := time.Parse(entity.DateLayout, cached.End)
	if err != nil {
		return adapter.SummaryLookup{}, fmt.Errorf("failed to decode cached summary end: %w", err)
	}

	lookup.Summary = &entity.PeriodSummary{
		Start:     start,
		End:       end,
		SectionID: cached.SectionID,
		Incomes:   cached.Incomes,
		Expenses:  cached.Expenses,
		Net:       cached.Net,
	}
	return lookup, nil
}

// Set stores the summary under generation, provided it is still the current one.
// The generation key is watched, so an Invalidate racing with the write aborts it.
func (c *redisSummaryCache) Set(
	ctx context.Context,
	filter adapter.TransactionFilter,
	generation int64,
	summary *entity.PeriodSummary,
) error {
	payload, err := json.Marshal(cachedSummary{
		Start:     summary.Start.Format(entity.DateLayout),
		End:       summary.End.Format(entity.DateLayout),
		SectionID: summary.SectionID,
		Incomes:   summary.Incomes,
		Expenses:  summary.Expenses,
		Net:       summary.Net,
	})
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readGeneration(ctx, tx)
		if err != nil {
			return err
		}
		if current != generation {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, summaryKey(generation, filter), payload, c.ttl)
			return nil
		})
		return err
	}, generationKey)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, errStaleGeneration), errors.Is(err, redis.TxFailedErr):
		slog.DebugContext(ctx, "Skipped caching a summary computed before the last write",
			"generation", generation,
		)
		return nil
	default:
		return fmt.Errorf("failed to write summary cache: %w", err)
	}
}

// Invalidate bumps the generation so every existing entry becomes unreachable.
func (c *redisSummaryCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate summary cache: %w", err)
	}
	return nil
}

// getter is satisfied by both *redis.Client and *redis.Tx.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readGeneration(ctx context.Context, client getter) (int64, error) {
	generation, err := client.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("failed to read cache generation: %w", err)
	}
	return generation, nil
}

func summaryKey(generation int64, filter adapter.TransactionFilter) string {
	section := "all"
	if filter.SectionID != nil {
		section = strconv.FormatUint(uint64(*filter.SectionID), 10)
	}

	return fmt.Sprintf("%s:%d:%s:%s:%s",
		keyPrefix,
		generation,
		filter.StartDate.Format(entity.DateLayout),
		filter.EndDate.Format(entity.DateLayout),
		section,
	)
}
