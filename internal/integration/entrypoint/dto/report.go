package dto

import (
	"github.com/club-ledger/backend/internal/application/usecase/report"
	"github.com/club-ledger/backend/internal/domain/entity"
)

// SummaryResponse represents a period summary. Amounts are fixed two-decimal strings.
type SummaryResponse struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	SectionID *uint  `json:"section_id"`
	Incomes   string `json:"incomes"`
	Expenses  string `json:"expenses"`
	Net       string `json:"net"`
}

// DashboardResponse represents the overview page data.
type DashboardResponse struct {
	Year        int                   `json:"year"`
	Month       int                   `json:"month"`
	SectionID   *uint                 `json:"section_id"`
	MonthTotals SummaryResponse       `json:"month_summary"`
	YearTotals  SummaryResponse       `json:"year_summary"`
	Recent      []TransactionResponse `json:"recent"`
	Categories  []CategoryResponse    `json:"categories"`
	Sections    []SectionResponse     `json:"sections"`
}

// ChartSeries is one bar series of a chart dataset.
type ChartSeries struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

// ChartDataset is a bar chart payload: one label per section, three series.
type ChartDataset struct {
	Labels   []string      `json:"labels"`
	Datasets []ChartSeries `json:"datasets"`
}

// SectionComparisonRow represents one section in the comparison report.
type SectionComparisonRow struct {
	SectionID   uint   `json:"section_id"`
	SectionName string `json:"section_name"`
	Incomes     string `json:"incomes"`
	Expenses    string `json:"expenses"`
	Net         string `json:"net"`
}

// SectionComparisonResponse represents the per-section yearly comparison.
type SectionComparisonResponse struct {
	Year  int                    `json:"year"`
	Rows  []SectionComparisonRow `json:"rows"`
	Chart ChartDataset           `json:"chart"`
}

var seriesLabels = map[string][3]string{
	"el": {"Έσοδα", "Έξοδα", "Καθαρό"},
	"en": {"Incomes", "Expenses", "Net"},
}

// ToSummaryResponse converts a domain PeriodSummary to a SummaryResponse DTO.
func ToSummaryResponse(s *entity.PeriodSummary) SummaryResponse {
	return SummaryResponse{
		Start:     s.Start.Format(entity.DateLayout),
		End:       s.End.Format(entity.DateLayout),
		SectionID: s.SectionID,
		Incomes:   s.Incomes.StringFixed(2),
		Expenses:  s.Expenses.StringFixed(2),
		Net:       s.Net.StringFixed(2),
	}
}

// ToDashboardResponse converts the dashboard output to a DashboardResponse DTO.
func ToDashboardResponse(out *report.GetDashboardOutput) DashboardResponse {
	recent := make([]TransactionResponse, len(out.Recent))
	for i, d := range out.Recent {
		recent[i] = ToTransactionDetailResponse(d)
	}
	return DashboardResponse{
		Year:        out.Year,
		Month:       out.Month,
		SectionID:   out.SectionID,
		MonthTotals: ToSummaryResponse(out.MonthSummary),
		YearTotals:  ToSummaryResponse(out.YearSummary),
		Recent:      recent,
		Categories:  ToCategoryListResponse(out.Categories).Categories,
		Sections:    ToSectionListResponse(out.Sections).Sections,
	}
}

// ToSectionComparisonResponse shapes the comparison rows and the chart dataset.
// Unknown locales fall back to Greek series labels.
func ToSectionComparisonResponse(out *report.CompareSectionsOutput, locale string) SectionComparisonResponse {
	labels, ok := seriesLabels[locale]
	if !ok {
		labels = seriesLabels["el"]
	}

	rows := make([]SectionComparisonRow, len(out.Rows))
	chart := ChartDataset{
		Labels: make([]string, len(out.Rows)),
		Datasets: []ChartSeries{
			{Label: labels[0], Data: make([]float64, len(out.Rows))},
			{Label: labels[1], Data: make([]float64, len(out.Rows))},
			{Label: labels[2], Data: make([]float64, len(out.Rows))},
		},
	}

	for i, r := range out.Rows {
		rows[i] = SectionComparisonRow{
			SectionID:   r.SectionID,
			SectionName: r.SectionName,
			Incomes:     r.Incomes.StringFixed(2),
			Expenses:    r.Expenses.StringFixed(2),
			Net:         r.Net.StringFixed(2),
		}
		chart.Labels[i] = r.SectionName
		chart.Datasets[0].Data[i] = r.Incomes.InexactFloat64()
		chart.Datasets[1].Data[i] = r.Expenses.InexactFloat64()
		chart.Datasets[2].Data[i] = r.Net.InexactFloat64()
	}

	return SectionComparisonResponse{
		Year:  out.Year,
		Rows:  rows,
		Chart: chart,
	}
}
