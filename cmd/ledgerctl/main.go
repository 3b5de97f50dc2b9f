// Package main is the operator command line for the club ledger.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/club-ledger/backend/config"
	"github.com/club-ledger/backend/internal/infra/db"
	"github.com/club-ledger/backend/internal/infra/dependency"
)

// runtime holds the shared state handed to every command.
type runtime struct {
	ctx      context.Context
	cfg      *config.Config
	database *db.Database
	injector *dependency.Injector
	out      io.Writer
}

type ledgerCLI struct {
	Database string `help:"Override DATABASE_URL." env:"DATABASE_URL"`
	Verbose  bool   `short:"v" help:"Log at debug level."`

	Seed    seedCmd    `cmd:"" help:"Insert the default categories and sections into empty tables."`
	Record  recordCmd  `cmd:"" help:"Record a transaction."`
	Summary summaryCmd `cmd:"" help:"Print the income, expense and net totals of a month or year."`
	Compare compareCmd `cmd:"" help:"Print the yearly totals of every section."`
	Export  exportCmd  `cmd:"" help:"Write a year of transactions to a CSV or XLSX file."`
}

var cli ledgerCLI

func main() {
	_ = godotenv.Load()

	kctx := kong.Parse(&cli,
		kong.Name("ledgerctl"),
		kong.Description("Sports club ledger operator tool."),
		kong.UsageOnError(),
	)

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	rt, err := open()
	kctx.FatalIfErrorf(err)
	defer rt.close()

	kctx.FatalIfErrorf(kctx.Run(rt))
}

func open() (*runtime, error) {
	cfg := config.Load()
	if cli.Database != "" {
		cfg.Database.URL = cli.Database
	}
	return newRuntime(context.Background(), cfg, os.Stdout)
}

// newRuntime connects to the configured database, migrates it and wires the use cases.
func newRuntime(ctx context.Context, cfg *config.Config, out io.Writer) (*runtime, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(); err != nil {
		_ = database.Close()
		return nil, err
	}

	injector, err := dependency.NewInjector(cfg, database.DB(), dependency.Options{})
	if err != nil {
		_ = database.Close()
		return nil, err
	}

	return &runtime{
		ctx:      ctx,
		cfg:      cfg,
		database: database,
		injector: injector,
		out:      out,
	}, nil
}

func (r *runtime) close() {
	if err := r.injector.Close(); err != nil {
		slog.Warn("Failed to close redis connection", "error", err)
	}
	if err := r.database.Close(); err != nil {
		slog.Warn("Failed to close database", "error", err)
	}
}
