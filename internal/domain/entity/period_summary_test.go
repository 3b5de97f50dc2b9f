package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewPeriodSummary_NetIsIncomesMinusExpenses(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		incomes  string
		expenses string
		net      string
	}{
		{name: "positive net", incomes: "500", expenses: "120.50", net: "379.5"},
		{name: "negative net", incomes: "10", expenses: "40", net: "-30"},
		{name: "empty period", incomes: "0", expenses: "0", net: "0"},
		{name: "negative amounts are not coerced", incomes: "-20", expenses: "5", net: "-25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewPeriodSummary(start, end, nil,
				decimal.RequireFromString(tt.incomes),
				decimal.RequireFromString(tt.expenses),
			)
			assert.True(t, s.Net.Equal(decimal.RequireFromString(tt.net)), "net = %s", s.Net)
			assert.True(t, s.Net.Equal(s.Incomes.Sub(s.Expenses)))
		})
	}
}

func TestDefaults(t *testing.T) {
	var incomes, expenses int
	for _, c := range DefaultCategories() {
		switch c.Kind {
		case CategoryKindIncome:
			incomes++
		case CategoryKindExpense:
			expenses++
		default:
			t.Fatalf("unexpected kind %q", c.Kind)
		}
	}
	assert.Equal(t, 4, incomes)
	assert.Equal(t, 5, expenses)
	assert.Len(t, DefaultSections(), 3)
}

func TestNewTransaction_TruncatesToCalendarDay(t *testing.T) {
	loc := time.FixedZone("EET", 2*60*60)
	txn := NewTransaction(time.Date(2024, 3, 10, 23, 30, 0, 0, loc), decimal.NewFromInt(1), "", 1, 1)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), txn.Date)
}
