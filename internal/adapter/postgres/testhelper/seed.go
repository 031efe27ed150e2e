package testhelper

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedWord inserts a word row directly and returns its id. A nil link
// seeds an English/French-style word; African-language words carry one.
func SeedWord(t *testing.T, pool *pgxpool.Pool, word, normalized, languageCode string, webonaryLink *string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO words (word, word_normalized, language_code, webonary_link)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		word, normalized, languageCode, webonaryLink,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: seed word %q: %v", word, err)
	}
	return id
}

// SeedEdge inserts a directed translation edge between two seeded words.
func SeedEdge(t *testing.T, pool *pgxpool.Pool, sourceWordID, targetWordID int64) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO translations (source_word_id, target_word_id) VALUES ($1, $2)`,
		sourceWordID, targetWordID,
	)
	if err != nil {
		t.Fatalf("testhelper: seed edge %d -> %d: %v", sourceWordID, targetWordID, err)
	}
}

// Link is a convenience for seeding nullable webonary links.
func Link(s string) *string { return &s }
