package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/club-ledger/backend/internal/application/adapter"
	"github.com/club-ledger/backend/internal/domain/entity"
)

type fakeStore struct {
	categories []*entity.Category
	sections   []*entity.Section
	rows       []*entity.TransactionDetail
	sumCalls   int
	err        error
	// duringSum runs inside SumByKind before totals are read.
	duringSum func()
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		categories: []*entity.Category{
			{ID: 1, Name: "Συνδρομές", Kind: entity.CategoryKindIncome},
			{ID: 2, Name: "Προπονητές", Kind: entity.CategoryKindExpense},
		},
		sections: []*entity.Section{
			{ID: 1, Name: "Ανδρών"},
			{ID: 2, Name: "Γυναικών"},
		},
	}
}

func (s *fakeStore) add(id uint, date string, amount string, categoryID, sectionID uint) {
	d, _ := parseDay(date)
	var cat *entity.Category
	for _, c := range s.categories {
		if c.ID == categoryID {
			cat = c
		}
	}
	var sec *entity.Section
	for _, x := range s.sections {
		if x.ID == sectionID {
			sec = x
		}
	}
	s.rows = append(s.rows, &entity.TransactionDetail{
		Transaction: &entity.Transaction{
			ID:         id,
			Date:       d,
			Amount:     mustDecimal(amount),
			CategoryID: categoryID,
			SectionID:  sectionID,
		},
		CategoryName: cat.Name,
		CategoryKind: cat.Kind,
		SectionName:  sec.Name,
	})
}

func (s *fakeStore) match(filter adapter.TransactionFilter) []*entity.TransactionDetail {
	var out []*entity.TransactionDetail
	for _, r := range s.rows {
		if r.Transaction.Date.Before(filter.StartDate) || r.Transaction.Date.After(filter.EndDate) {
			continue
		}
		if filter.SectionID != nil && r.Transaction.SectionID != *filter.SectionID {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s *fakeStore) CreateChecked(context.Context, *entity.Transaction) error {
	return errors.New("not implemented")
}

func (s *fakeStore) SumByKind(_ context.Context, filter adapter.TransactionFilter) ([]entity.KindTotal, error) {
	s.sumCalls++
	if s.err != nil {
		return nil, s.err
	}
	rows := s.match(filter)
	if s.duringSum != nil {
		hook := s.duringSum
		s.duringSum = nil
		hook()
	}
	totals := map[entity.CategoryKind]entity.KindTotal{}
	for _, r := range rows {
		kt := totals[r.CategoryKind]
		kt.Kind = r.CategoryKind
		kt.Total = kt.Total.Add(r.Transaction.Amount)
		totals[r.CategoryKind] = kt
	}
	out := make([]entity.KindTotal, 0, len(totals))
	for _, kt := range totals {
		out = append(out, kt)
	}
	return out, nil
}

func (s *fakeStore) FindDetailed(_ context.Context, filter adapter.TransactionFilter) ([]*entity.TransactionDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := s.match(filter)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Transaction, out[j].Transaction
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.ID < b.ID
	})
	return out, nil
}

func (s *fakeStore) FindRecent(_ context.Context, limit int) ([]*entity.TransactionDetail, error) {
	out := append([]*entity.TransactionDetail(nil), s.rows...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Transaction, out[j].Transaction
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.ID > b.ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakeStore) FindAll(context.Context) ([]*entity.Section, error) {
	return s.sections, nil
}

func (s *fakeStore) FindByID(_ context.Context, id uint) (*entity.Section, error) {
	for _, x := range s.sections {
		if x.ID == id {
			return x, nil
		}
	}
	return nil, errors.New("not found")
}

type fakeCategories struct{ store *fakeStore }

func (f fakeCategories) FindAll(context.Context) ([]*entity.Category, error) {
	return f.store.categories, nil
}

func (f fakeCategories) FindByKind(_ context.Context, kind entity.CategoryKind) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.store.categories {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f fakeCategories) FindByID(_ context.Context, id uint) (*entity.Category, error) {
	for _, c := range f.store.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errors.New("not found")
}

type memoryCache struct {
	entries    map[string]*entity.PeriodSummary
	generation int64
	getErr     error
	hits       int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]*entity.PeriodSummary{}}
}

func cacheKey(f adapter.TransactionFilter) string {
	section := "all"
	if f.SectionID != nil {
		section = fmt.Sprint(*f.SectionID)
	}
	return f.StartDate.Format(entity.DateLayout) + ":" + f.EndDate.Format(entity.DateLayout) + ":" + section
}

func (c *memoryCache) Get(_ context.Context, f adapter.TransactionFilter) (adapter.SummaryLookup, error) {
	if c.getErr != nil {
		return adapter.SummaryLookup{}, c.getErr
	}
	s, ok := c.entries[cacheKey(f)]
	if ok {
		c.hits++
	}
	return adapter.SummaryLookup{Summary: s, Generation: c.generation}, nil
}

func (c *memoryCache) Set(_ context.Context, f adapter.TransactionFilter, generation int64, s *entity.PeriodSummary) error {
	if generation != c.generation {
		return nil
	}
	c.entries[cacheKey(f)] = s
	return nil
}

func (c *memoryCache) Invalidate(context.Context) error {
	c.generation++
	c.entries = map[string]*entity.PeriodSummary{}
	return nil
}

type failingEncoder struct{}

func (failingEncoder) Format() string      { return "csv" }
func (failingEncoder) ContentType() string { return "text/csv" }
func (failingEncoder) Extension() string   { return "csv" }
func (failingEncoder) Encode(w io.Writer, _ adapter.ExportDocument) error {
	_, _ = w.Write([]byte("Date,"))
	return errors.New("disk full")
}

type lineEncoder struct{}

func (lineEncoder) Format() string      { return "csv" }
func (lineEncoder) ContentType() string { return "text/csv" }
func (lineEncoder) Extension() string   { return "csv" }
func (lineEncoder) Encode(w io.Writer, doc adapter.ExportDocument) error {
	for _, r := range doc.Rows {
		if _, err := io.WriteString(w, r.Transaction.Date.Format(entity.DateLayout)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func parseDay(s string) (time.Time, error) {
	return time.Parse(entity.DateLayout, s)
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
