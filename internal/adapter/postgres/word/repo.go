// Package word implements the lexical store's write path and language
// aggregates using PostgreSQL. Words and edges are immutable once created;
// both upserts are idempotent so an interrupted ingestion run can simply
// be re-run.
package word

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/vernala/vernala-backend/internal/adapter/postgres"
	"github.com/vernala/vernala-backend/internal/domain"
)

// Repo provides word and translation-edge persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const selectWordIDSQL = `
SELECT id FROM words
WHERE word = $1
  AND language_code = $2
  AND webonary_link IS NOT DISTINCT FROM $3`

const insertWordSQL = `
INSERT INTO words (word, word_normalized, language_code, webonary_link)
VALUES ($1, $2, $3, $4)
ON CONFLICT ON CONSTRAINT words_word_lang_link_key DO NOTHING
RETURNING id`

const insertEdgeSQL = `
INSERT INTO translations (source_word_id, target_word_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

// Upsert returns the id of the existing word matching the
// (word, language, link) triple exactly — NULL links compare equal — or
// inserts a new row. The created flag reports whether a row was inserted.
func (r *Repo) Upsert(ctx context.Context, word, languageCode string, webonaryLink *string) (int64, bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var id int64
	err := querier.QueryRow(ctx, selectWordIDSQL, word, languageCode, webonaryLink).Scan(&id)
	if err == nil {
		return id, false, nil
	}
	if mapped := postgres.MapError(err, "find word"); !isNotFound(mapped) {
		return 0, false, mapped
	}

	err = querier.QueryRow(ctx, insertWordSQL,
		word, domain.NormalizeWord(word), languageCode, webonaryLink,
	).Scan(&id)
	if err == nil {
		return id, true, nil
	}

	// Concurrent insert hit the unique constraint: the RETURNING clause
	// yields no row, so re-read the winner.
	if mapped := postgres.MapError(err, "insert word"); !isNotFound(mapped) {
		return 0, false, mapped
	}
	if err := querier.QueryRow(ctx, selectWordIDSQL, word, languageCode, webonaryLink).Scan(&id); err != nil {
		return 0, false, postgres.MapError(err, "re-read word after conflict")
	}
	return id, false, nil
}

// UpsertEdge creates the directed edge if absent. A duplicate edge is a
// no-op, not an error; the created flag reports whether a row was inserted.
func (r *Repo) UpsertEdge(ctx context.Context, sourceWordID, targetWordID int64) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, insertEdgeSQL, sourceWordID, targetWordID)
	if err != nil {
		return false, postgres.MapError(err, "insert edge")
	}
	return tag.RowsAffected() == 1, nil
}

const languageCountsSQL = `
SELECT language_code, COUNT(*) AS word_count
FROM words
GROUP BY language_code
ORDER BY language_code`

// LanguageCounts returns the per-language word counts for every distinct
// language code present in the store, ordered by code.
func (r *Repo) LanguageCounts(ctx context.Context) ([]domain.LanguageCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, languageCountsSQL)
	if err != nil {
		return nil, postgres.MapError(err, "count languages")
	}
	defer rows.Close()

	counts := []domain.LanguageCount{}
	for rows.Next() {
		var c domain.LanguageCount
		if err := rows.Scan(&c.LanguageCode, &c.WordCount); err != nil {
			return nil, postgres.MapError(err, "count languages")
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "count languages")
	}

	return counts, nil
}

const statsSQL = `
SELECT
    (SELECT COUNT(*) FROM words)                          AS total_words,
    (SELECT COUNT(*) FROM translations)                   AS total_translations,
    (SELECT COUNT(DISTINCT language_code) FROM words)     AS languages`

// Stats returns aggregate counts over the whole store.
func (r *Repo) Stats(ctx context.Context) (*domain.StoreStats, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var stats domain.StoreStats
	err := querier.QueryRow(ctx, statsSQL).
		Scan(&stats.TotalWords, &stats.TotalTranslations, &stats.Languages)
	if err != nil {
		return nil, postgres.MapError(err, "store stats")
	}

	return &stats, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
