// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/club-ledger/backend/config"
	"github.com/club-ledger/backend/internal/application/adapter"
	"github.com/club-ledger/backend/internal/application/usecase/report"
	"github.com/club-ledger/backend/internal/application/usecase/taxonomy"
	"github.com/club-ledger/backend/internal/application/usecase/transaction"
	"github.com/club-ledger/backend/internal/infra/server/router"
	"github.com/club-ledger/backend/internal/integration/cache"
	"github.com/club-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/club-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/club-ledger/backend/internal/integration/export"
	"github.com/club-ledger/backend/internal/integration/persistence"
)

// UseCases groups the application use cases shared by the HTTP server and the CLI.
type UseCases struct {
	RecordTransaction      *transaction.RecordTransactionUseCase
	ListRecentTransactions *transaction.ListRecentTransactionsUseCase
	SummarizePeriod        *report.SummarizePeriodUseCase
	GetDashboard           *report.GetDashboardUseCase
	CompareSections        *report.CompareSectionsUseCase
	ExportTransactions     *report.ExportTransactionsUseCase
	ListCategories         *taxonomy.ListCategoriesUseCase
	ListSections           *taxonomy.ListSectionsUseCase
}

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	UseCases    *UseCases
	Router      *router.Router
	RateLimiter *middleware.RateLimiter
}

// Options overrides collaborators, mainly for tests.
type Options struct {
	Redis *redis.Client
	Clock adapter.Clock
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) (*Injector, error) {
	clock := opts.Clock
	if clock == nil {
		clock = adapter.SystemClock{}
	}

	// Create repositories
	categoryRepo := persistence.NewCategoryRepository(db)
	sectionRepo := persistence.NewSectionRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)

	// Create summary cache
	redisClient := opts.Redis
	if redisClient == nil && cfg.Redis.Enabled {
		client, err := newRedisClient(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		redisClient = client
	}
	var summaryCache adapter.SummaryCache = cache.NoopSummaryCache{}
	if redisClient != nil {
		summaryCache = cache.NewRedisSummaryCache(redisClient, cfg.Redis.SummaryTTL)
	}

	// Create encoders
	locale := export.ParseLocale(cfg.Export.Locale)
	encoders := []adapter.ExportEncoder{
		export.NewCSVEncoder(locale),
		export.NewXLSXEncoder(locale),
	}

	// Create use cases
	summarize := report.NewSummarizePeriodUseCase(transactionRepo, summaryCache)
	useCases := &UseCases{
		RecordTransaction:      transaction.NewRecordTransactionUseCase(transactionRepo, summaryCache),
		ListRecentTransactions: transaction.NewListRecentTransactionsUseCase(transactionRepo),
		SummarizePeriod:        summarize,
		GetDashboard:           report.NewGetDashboardUseCase(summarize, transactionRepo, categoryRepo, sectionRepo, clock),
		CompareSections:        report.NewCompareSectionsUseCase(sectionRepo, summarize),
		ExportTransactions:     report.NewExportTransactionsUseCase(transactionRepo, encoders...),
		ListCategories:         taxonomy.NewListCategoriesUseCase(categoryRepo),
		ListSections:           taxonomy.NewListSectionsUseCase(sectionRepo),
	}

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, redisHealthChecker(redisClient))

	taxonomyController := controller.NewTaxonomyController(useCases.ListCategories, useCases.ListSections)
	transactionController := controller.NewTransactionController(useCases.RecordTransaction, useCases.ListRecentTransactions)
	reportController := controller.NewReportController(
		useCases.SummarizePeriod,
		useCases.GetDashboard,
		useCases.CompareSections,
		useCases.ExportTransactions,
		string(locale),
		clock,
	)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RecordLimit, cfg.RateLimit.RecordWindow)

	r := router.NewRouter(healthController, taxonomyController, transactionController, reportController, rateLimiter)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Redis:       redisClient,
		UseCases:    useCases,
		Router:      r,
		RateLimiter: rateLimiter,
	}, nil
}

// Close releases the Redis connection, if any.
func (i *Injector) Close() error {
	if i.Redis == nil {
		return nil
	}
	return i.Redis.Close()
}

func newRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	opts.DB = cfg.DB

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		// The cache is optional; summaries fall back to the database on every error.
		slog.Warn("Redis is unreachable, summaries will not be cached until it recovers", "error", err)
	} else {
		slog.Info("Redis connection established", "addr", opts.Addr, "db", opts.DB)
	}
	return client, nil
}

func redisHealthChecker(client *redis.Client) func() bool {
	if client == nil {
		return nil
	}
	return func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return client.Ping(ctx).Err() == nil
	}
}
