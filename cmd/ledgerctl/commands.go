package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/club-ledger/backend/internal/application/usecase/report"
	"github.com/club-ledger/backend/internal/application/usecase/transaction"
	"github.com/club-ledger/backend/internal/domain/entity"
	"github.com/club-ledger/backend/internal/integration/persistence"
)

type seedCmd struct{}

func (c *seedCmd) Run(rt *runtime) error {
	result, err := persistence.SeedDefaults(rt.ctx, rt.database.DB())
	if err != nil {
		return err
	}
	fmt.Fprintf(rt.out, "seeded %d categories, %d sections\n", result.Categories, result.Sections)
	return nil
}

type recordCmd struct {
	Date        string `required:"" help:"Transaction date (YYYY-MM-DD)."`
	Category    uint   `required:"" help:"Category id."`
	Section     uint   `required:"" help:"Section id."`
	Amount      string `required:"" help:"Signed amount, e.g. 120.50 or -40."`
	Description string `help:"Free text description."`
}

func (c *recordCmd) Run(rt *runtime) error {
	out, err := rt.injector.UseCases.RecordTransaction.Execute(rt.ctx, transaction.RecordTransactionInput{
		Date:        c.Date,
		CategoryID:  strconv.FormatUint(uint64(c.Category), 10),
		SectionID:   strconv.FormatUint(uint64(c.Section), 10),
		Amount:      c.Amount,
		Description: c.Description,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(rt.out, "recorded transaction %d\n", out.Transaction.ID)
	return nil
}

type summaryCmd struct {
	Year    int  `required:"" help:"Year to summarize."`
	Month   int  `help:"Month (1-12). Omit for the whole year."`
	Section uint `help:"Section id. Omit or 0 for all sections."`
}

func (c *summaryCmd) Run(rt *runtime) error {
	// 0 is passed through; the summarizer treats it as every section
	section := &c.Section

	var (
		summary *entity.PeriodSummary
		err     error
	)
	if c.Month != 0 {
		summary, err = rt.injector.UseCases.SummarizePeriod.Month(rt.ctx, c.Year, c.Month, section)
	} else {
		summary, err = rt.injector.UseCases.SummarizePeriod.Year(rt.ctx, c.Year, section)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(rt.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "period\t%s .. %s\n", summary.Start.Format(entity.DateLayout), summary.End.Format(entity.DateLayout))
	fmt.Fprintf(w, "incomes\t%s\n", summary.Incomes.StringFixed(2))
	fmt.Fprintf(w, "expenses\t%s\n", summary.Expenses.StringFixed(2))
	fmt.Fprintf(w, "net\t%s\n", summary.Net.StringFixed(2))
	return w.Flush()
}

type compareCmd struct {
	Year int `required:"" help:"Year to compare."`
}

func (c *compareCmd) Run(rt *runtime) error {
	out, err := rt.injector.UseCases.CompareSections.Execute(rt.ctx, c.Year)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(rt.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "section\tincomes\texpenses\tnet\t")
	for _, row := range out.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
			row.SectionName,
			row.Incomes.StringFixed(2),
			row.Expenses.StringFixed(2),
			row.Net.StringFixed(2),
		)
	}
	return w.Flush()
}

type exportCmd struct {
	Year    int    `required:"" help:"Year to export."`
	Section uint   `help:"Section id. Omit or 0 for all sections."`
	Format  string `enum:"csv,xlsx" default:"csv" help:"Output format (csv, xlsx)."`
	Out     string `help:"Output file. Defaults to budget_<year>.<ext>."`
}

func (c *exportCmd) Run(rt *runtime) error {
	out, err := rt.injector.UseCases.ExportTransactions.Execute(rt.ctx, report.ExportTransactionsInput{
		Year:      c.Year,
		SectionID: &c.Section,
		Format:    c.Format,
	})
	if err != nil {
		return err
	}

	path := c.Out
	if path == "" {
		path = out.FileName
	}
	if err := os.WriteFile(path, out.Body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(rt.out, "wrote %d rows to %s\n", out.RowCount, path)
	return nil
}
