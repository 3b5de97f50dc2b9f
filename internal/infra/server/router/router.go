// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/club-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/club-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	taxonomyController    *controller.TaxonomyController
	transactionController *controller.TransactionController
	reportController      *controller.ReportController
	recordRateLimiter     *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	taxonomyController *controller.TaxonomyController,
	transactionController *controller.TransactionController,
	reportController *controller.ReportController,
	recordRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		taxonomyController:    taxonomyController,
		transactionController: transactionController,
		reportController:      reportController,
		recordRateLimiter:     recordRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestID())

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		v1.GET("/categories", r.taxonomyController.ListCategories)
		v1.GET("/sections", r.taxonomyController.ListSections)

		transactions := v1.Group("/transactions")
		{
			transactions.GET("/recent", r.transactionController.ListRecent)
			if r.recordRateLimiter != nil {
				transactions.POST("", r.recordRateLimiter.Middleware(), r.transactionController.Record)
			} else {
				transactions.POST("", r.transactionController.Record)
			}
		}

		summaries := v1.Group("/summaries")
		{
			summaries.GET("/month", r.reportController.MonthSummary)
			summaries.GET("/year", r.reportController.YearSummary)
		}

		v1.GET("/dashboard", r.reportController.Dashboard)
		v1.GET("/reports/sections", r.reportController.CompareSections)

		exports := v1.Group("/exports")
		{
			exports.GET("/csv", r.reportController.ExportCSV)
			exports.GET("/xlsx", r.reportController.ExportXLSX)
		}
	}
}
