package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/club-ledger/backend/internal/application/adapter"
	"github.com/club-ledger/backend/internal/application/usecase/report"
	"github.com/club-ledger/backend/internal/integration/entrypoint/dto"
)

// ReportController handles summary, dashboard, comparison and export endpoints.
type ReportController struct {
	summarizeUseCase *report.SummarizePeriodUseCase
	dashboardUseCase *report.GetDashboardUseCase
	compareUseCase   *report.CompareSectionsUseCase
	exportUseCase    *report.ExportTransactionsUseCase
	locale           string
	clock            adapter.Clock
}

// NewReportController creates a new report controller instance.
func NewReportController(
	summarizeUseCase *report.SummarizePeriodUseCase,
	dashboardUseCase *report.GetDashboardUseCase,
	compareUseCase *report.CompareSectionsUseCase,
	exportUseCase *report.ExportTransactionsUseCase,
	locale string,
	clock adapter.Clock,
) *ReportController {
	if clock == nil {
		clock = adapter.SystemClock{}
	}
	return &ReportController{
		summarizeUseCase: summarizeUseCase,
		dashboardUseCase: dashboardUseCase,
		compareUseCase:   compareUseCase,
		exportUseCase:    exportUseCase,
		locale:           locale,
		clock:            clock,
	}
}

// MonthSummary handles GET /summaries/month requests.
func (c *ReportController) MonthSummary(ctx *gin.Context) {
	year, err := queryYear(ctx, 0)
	if err != nil {
		respondError(ctx, err)
		return
	}
	month, err := queryMonth(ctx, 0)
	if err != nil {
		respondError(ctx, err)
		return
	}
	sectionID, err := querySectionID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	summary, err := c.summarizeUseCase.Month(ctx.Request.Context(), year, month, sectionID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// YearSummary handles GET /summaries/year requests.
func (c *ReportController) YearSummary(ctx *gin.Context) {
	year, err := queryYear(ctx, 0)
	if err != nil {
		respondError(ctx, err)
		return
	}
	sectionID, err := querySectionID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	summary, err := c.summarizeUseCase.Year(ctx.Request.Context(), year, sectionID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// Dashboard handles GET /dashboard requests. Year and month default to today.
func (c *ReportController) Dashboard(ctx *gin.Context) {
	now := c.clock.Now()

	year, err := queryYear(ctx, now.Year())
	if err != nil {
		respondError(ctx, err)
		return
	}
	month, err := queryMonth(ctx, int(now.Month()))
	if err != nil {
		respondError(ctx, err)
		return
	}
	sectionID, err := querySectionID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), report.GetDashboardInput{
		Year:      year,
		Month:     month,
		SectionID: sectionID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// CompareSections handles GET /reports/sections requests.
func (c *ReportController) CompareSections(ctx *gin.Context) {
	year, err := queryYear(ctx, c.clock.Now().Year())
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.compareUseCase.Execute(ctx.Request.Context(), year)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSectionComparisonResponse(output, c.locale))
}

// ExportCSV handles GET /exports/csv requests.
func (c *ReportController) ExportCSV(ctx *gin.Context) {
	c.export(ctx, "csv")
}

// ExportXLSX handles GET /exports/xlsx requests.
func (c *ReportController) ExportXLSX(ctx *gin.Context) {
	c.export(ctx, "xlsx")
}

func (c *ReportController) export(ctx *gin.Context, format string) {
	year, err := queryYear(ctx, c.clock.Now().Year())
	if err != nil {
		respondError(ctx, err)
		return
	}
	sectionID, err := querySectionID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), report.ExportTransactionsInput{
		Year:      year,
		SectionID: sectionID,
		Format:    format,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", output.FileName))
	ctx.Data(http.StatusOK, output.ContentType, output.Body)
}
