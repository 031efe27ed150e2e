// Command stats prints store contents as a table: one row per language
// plus aggregate totals. Useful as a quick check after an ingest run.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/rodaine/table"

	"github.com/vernala/vernala-backend/internal/adapter/postgres"
	"github.com/vernala/vernala-backend/internal/adapter/postgres/word"
	"github.com/vernala/vernala-backend/internal/config"
	"github.com/vernala/vernala-backend/internal/domain"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	repo := word.New(pool)

	counts, err := repo.LanguageCounts(ctx)
	if err != nil {
		log.Fatalf("language counts: %v", err)
	}
	stats, err := repo.Stats(ctx)
	if err != nil {
		log.Fatalf("store stats: %v", err)
	}

	tbl := table.New("Code", "Name", "Role", "Words")
	for _, c := range counts {
		tbl.AddRow(c.LanguageCode, domain.DisplayName(c.LanguageCode), domain.RoleFor(c.LanguageCode), c.WordCount)
	}
	tbl.Print()

	fmt.Printf("\nTotal words: %d\nTotal translations: %d\nLanguages: %d\n",
		stats.TotalWords, stats.TotalTranslations, stats.Languages)
}
