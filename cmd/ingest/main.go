// Command ingest loads scraped dictionary JSON trees into the database.
// It is intended to be run offline, not as part of the main server.
//
// Flags:
//
//	--data-dir  root of the scraped data tree (default: config value)
//	--dry-run   parse everything without writing to the database
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/vernala/vernala-backend/internal/adapter/postgres"
	"github.com/vernala/vernala-backend/internal/adapter/postgres/word"
	"github.com/vernala/vernala-backend/internal/app"
	"github.com/vernala/vernala-backend/internal/config"
	"github.com/vernala/vernala-backend/internal/ingest"
)

func main() {
	dataDirFlag := flag.String("data-dir", "", "root of the scraped data tree (overrides config)")
	dryRunFlag := flag.Bool("dry-run", false, "parse everything without writing to the database")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	dataDir := cfg.Ingest.DataDir
	if *dataDirFlag != "" {
		dataDir = *dataDirFlag
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := ingest.NewPipeline(logger, word.New(pool), postgres.NewTxManager(pool), ingest.Config{
		DataDir: dataDir,
		DryRun:  *dryRunFlag,
	})

	stats, err := pipeline.Run(ctx)
	if err != nil {
		logger.Error("ingest failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("ingest completed",
		slog.Int("files", stats.Files),
		slog.Int("entries", stats.Entries),
		slog.Int("words_created", stats.WordsCreated),
		slog.Int("edges_created", stats.EdgesCreated),
		slog.Int("skipped_rows", stats.SkippedRows),
	)
}
