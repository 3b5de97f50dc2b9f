package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/club-ledger/backend/internal/application/adapter"
	"github.com/club-ledger/backend/internal/domain/entity"
)

func detail(id uint, date string, amount string, description, category, section string) *entity.TransactionDetail {
	d, _ := time.Parse(entity.DateLayout, date)
	return &entity.TransactionDetail{
		Transaction: &entity.Transaction{
			ID:          id,
			Date:        d,
			Amount:      decimal.RequireFromString(amount),
			Description: description,
		},
		CategoryName: category,
		SectionName:  section,
	}
}

func sampleDocument() adapter.ExportDocument {
	return adapter.ExportDocument{
		Year: 2024,
		Rows: []*entity.TransactionDetail{
			detail(1, "2024-01-05", "100", "Jan fees", "Συνδρομές", "Ανδρών"),
			detail(2, "2024-02-10", "-40.5", "Coach, February", "Προπονητές", "Ανδρών"),
		},
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in   string
		want Locale
	}{
		{"en", LocaleEnglish},
		{" EN ", LocaleEnglish},
		{"el", LocaleGreek},
		{"", LocaleGreek},
		{"fr", LocaleGreek},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLocale(tt.in))
		})
	}
}

func TestCSVEncoder_EnglishRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVEncoder(LocaleEnglish).Encode(&buf, sampleDocument()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Category,Section,Description,Amount", lines[0])
	assert.Equal(t, "2024-01-05,Συνδρομές,Ανδρών,Jan fees,100.00", lines[1])
	assert.Equal(t, `2024-02-10,Προπονητές,Ανδρών,"Coach, February",-40.50`, lines[2])
}

func TestCSVEncoder_EmptyYearHasOnlyHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVEncoder(LocaleGreek).Encode(&buf, adapter.ExportDocument{Year: 2023}))
	assert.Equal(t, "Ημερομηνία,Κατηγορία,Τμήμα,Περιγραφή,Ποσό\n", buf.String())
}

func TestCSVEncoder_Metadata(t *testing.T) {
	e := NewCSVEncoder(LocaleGreek)
	assert.Equal(t, "csv", e.Format())
	assert.Equal(t, "csv", e.Extension())
	assert.True(t, strings.HasPrefix(e.ContentType(), "text/csv"))
}

func TestXLSXEncoder_Workbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewXLSXEncoder(LocaleEnglish).Encode(&buf, sampleDocument()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"2024"}, f.GetSheetList())

	rows, err := f.GetRows("2024")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Date", "Category", "Section", "Description", "Amount (€)"}, rows[0])
	assert.Equal(t, "05/01/2024", rows[1][0])
	assert.Equal(t, "10/02/2024", rows[2][0])

	cellType, err := f.GetCellType("2024", "E3")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, cellType)
	assert.NotEqual(t, excelize.CellTypeInlineString, cellType)

	raw, err := f.GetCellValue("2024", "E3", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "-40.5", raw)
}

func TestXLSXEncoder_GreekHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewXLSXEncoder(LocaleGreek).Encode(&buf, adapter.ExportDocument{Year: 2025}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("2025")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ποσό (€)", rows[0][4])
}
