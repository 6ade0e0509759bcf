// Command sheencheck verifies contest stats and sheen of a record dump.
//
// Usage:
//
//	go run ./cmd/sheencheck records.yaml
//	go run ./cmd/sheencheck -fix suggest -workers 8 records.yaml
//
// Exit code is 1 when any record is invalid or the run fails.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/sheencheck/internal/config"
	"github.com/udisondev/sheencheck/internal/contest"
	"github.com/udisondev/sheencheck/internal/data"
	"github.com/udisondev/sheencheck/internal/db"
	"github.com/udisondev/sheencheck/internal/legality"
)

const ConfigPath = "config/sheencheck.yaml"

var errInvalidRecords = errors.New("invalid records found")

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, errInvalidRecords) {
			slog.Error("fatal", "err", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sheencheck", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "path to config file (default $SHEENCHECK_CONFIG or "+ConfigPath+")")
	fix := fs.String("fix", "", "rewrite contest stats before checking: suggest|max")
	workers := fs.Int("workers", -1, "parallel workers, 0 = GOMAXPROCS (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one records file, got %d args", fs.NArg())
	}

	path := *cfgPath
	if path == "" {
		path = ConfigPath
		if p := os.Getenv("SHEENCHECK_CONFIG"); p != "" {
			path = p
		}
	}
	cfg, err := config.LoadChecker(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *fix != "" {
		cfg.Fix = *fix
	}
	if *workers >= 0 {
		cfg.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating flags: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	entries, err := data.LoadRecords(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("loading records: %w", err)
	}
	slog.Info("records loaded", "file", fs.Arg(0), "count", len(entries))

	if cfg.Fix != "" {
		applyFix(entries, cfg.Fix)
		slog.Info("contest stats rewritten", "mode", cfg.Fix)
	}

	reports, err := legality.VerifyAll(ctx, entries, cfg.Workers)
	if err != nil {
		return err
	}

	if cfg.Database.Enabled {
		if err := persist(ctx, cfg.Database, reports); err != nil {
			return err
		}
	}

	sum := legality.Summarize(reports)
	slog.Info("verification finished",
		"total", sum.Total,
		"invalid", sum.Invalid,
		"by_policy", sum.ByPolicy)

	for _, r := range reports {
		for _, f := range r.Findings {
			fmt.Printf("record %d: %s: %s\n", r.RecordID, f.Code, f.Message)
		}
	}

	if sum.Invalid > 0 {
		return errInvalidRecords
	}
	return nil
}

func applyFix(entries []legality.Entry, mode string) {
	for _, e := range entries {
		switch mode {
		case config.FixSuggest:
			contest.SetSuggestedStats(e.Record, e.Encounter)
		case config.FixMax:
			contest.SetMaxStats(e.Record, e.Encounter)
		}
	}
}

func persist(ctx context.Context, cfg config.DatabaseConfig, reports []legality.Report) error {
	database, err := db.New(ctx, cfg.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, cfg.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	if err := database.Reports().SaveAll(ctx, reports); err != nil {
		return fmt.Errorf("saving reports: %w", err)
	}
	slog.Info("reports saved", "count", len(reports))
	return nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
