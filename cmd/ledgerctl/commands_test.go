package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/club-ledger/backend/config"
)

func newTestRuntime(t *testing.T) (*runtime, *bytes.Buffer) {
	t.Helper()

	cfg := config.Load()
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.URL = "file:" + filepath.Join(t.TempDir(), "ledger.db") + "?_pragma=foreign_keys(1)"
	cfg.Database.MaxOpenConns = 1
	cfg.Database.MaxIdleConns = 1
	cfg.Redis.Enabled = false
	cfg.Export.Locale = "en"
	cfg.RateLimit.RecordLimit = 10
	cfg.RateLimit.RecordWindow = time.Minute

	var out bytes.Buffer
	rt, err := newRuntime(context.Background(), cfg, &out)
	require.NoError(t, err)
	t.Cleanup(rt.close)
	return rt, &out
}

func run(t *testing.T, rt *runtime, out *bytes.Buffer, args ...string) string {
	t.Helper()

	var c ledgerCLI
	parser, err := kong.New(&c, kong.Name("ledgerctl"), kong.Exit(func(int) { t.Fatalf("ledgerctl exited on %v", args) }))
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	require.NoError(t, err)

	out.Reset()
	require.NoError(t, kctx.Run(rt))
	return out.String()
}

// summaryFields reads "label  value" lines into a map.
func summaryFields(output string) map[string]string {
	fields := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		parts := strings.Fields(line)
		if len(parts) >= 2 {
			fields[parts[0]] = strings.Join(parts[1:], " ")
		}
	}
	return fields
}

func TestLedgerctl(t *testing.T) {
	rt, out := newTestRuntime(t)

	assert.Equal(t, "seeded 9 categories, 3 sections\n", run(t, rt, out, "seed"))
	assert.Equal(t, "seeded 0 categories, 0 sections\n", run(t, rt, out, "seed"), "seeding twice is a no-op")

	// Seeded ids: categories 1-4 income, 5-9 expense; sections 1-3.
	assert.Equal(t, "recorded transaction 1\n",
		run(t, rt, out, "record", "--date", "2024-03-05", "--category", "1", "--section", "1", "--amount", "200", "--description", "fees"))
	run(t, rt, out, "record", "--date", "2024-03-20", "--category", "5", "--section", "2", "--amount", "75.50")
	run(t, rt, out, "record", "--date", "2024-07-01", "--category", "3", "--section", "2", "--amount", "40")

	t.Run("summary with section 0 covers every section", func(t *testing.T) {
		fields := summaryFields(run(t, rt, out, "summary", "--year", "2024", "--section", "0"))
		assert.Equal(t, "2024-01-01 .. 2024-12-31", fields["period"])
		assert.Equal(t, "240.00", fields["incomes"])
		assert.Equal(t, "75.50", fields["expenses"])
		assert.Equal(t, "164.50", fields["net"])

		omitted := summaryFields(run(t, rt, out, "summary", "--year", "2024"))
		assert.Equal(t, fields, omitted)
	})

	t.Run("summary for one section and month", func(t *testing.T) {
		fields := summaryFields(run(t, rt, out, "summary", "--year", "2024", "--month", "3", "--section", "2"))
		assert.Equal(t, "2024-03-01 .. 2024-03-31", fields["period"])
		assert.Equal(t, "0.00", fields["incomes"])
		assert.Equal(t, "75.50", fields["expenses"])
		assert.Equal(t, "-75.50", fields["net"])
	})

	t.Run("summary rejects an invalid month", func(t *testing.T) {
		var c ledgerCLI
		parser, err := kong.New(&c)
		require.NoError(t, err)
		kctx, err := parser.Parse([]string{"summary", "--year", "2024", "--month", "13"})
		require.NoError(t, err)
		assert.Error(t, kctx.Run(rt))
	})

	t.Run("compare lists sections in stored order", func(t *testing.T) {
		lines := strings.Split(strings.TrimSpace(run(t, rt, out, "compare", "--year", "2024")), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, []string{"section", "incomes", "expenses", "net"}, strings.Fields(lines[0]))
		assert.Equal(t, []string{"Ανδρών", "200.00", "0.00", "200.00"}, strings.Fields(lines[1]))
		assert.Equal(t, []string{"Γυναικών", "40.00", "75.50", "-35.50"}, strings.Fields(lines[2]))
		assert.Equal(t, []string{"Ακαδημίες", "0.00", "0.00", "0.00"}, strings.Fields(lines[3]))
	})

	t.Run("export writes the csv file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "budget.csv")
		assert.Equal(t, "wrote 2 rows to "+path+"\n",
			run(t, rt, out, "export", "--year", "2024", "--section", "2", "--out", path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t,
			"Date,Category,Section,Description,Amount\n"+
				"2024-03-20,Προπονητές,Γυναικών,,75.50\n"+
				"2024-07-01,Χορηγίες,Γυναικών,,40.00\n",
			string(data))
	})
}
