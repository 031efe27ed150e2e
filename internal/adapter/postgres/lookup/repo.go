// Package lookup implements the translation query engine over PostgreSQL.
// One engine serves both lookup directions: the physical join shape, the
// parameter set, and the link column are all chosen from the query's
// direction and match mode before a single SQL string is built.
package lookup

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/vernala/vernala-backend/internal/adapter/postgres"
	"github.com/vernala/vernala-backend/internal/domain"
)

// psql builds queries with $1-style placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo executes translation lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new lookup repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Translations runs the lookup described by q and returns role-normalized
// results: source_word always corresponds to the caller's input word, and
// webonary_link always comes from the African-language endpoint, whichever
// physical edge column it lives on. Results are ordered by the target-role
// surface form in code-point order and capped at q.Limit.
//
// An invalid match mode or direction is rejected before any SQL is built
// or executed. An empty result set is not an error.
func (r *Repo) Translations(ctx context.Context, q domain.TranslationQuery) ([]domain.TranslationResult, error) {
	sql, args, err := buildQuery(q)
	if err != nil {
		return nil, err
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "lookup translations")
	}
	defer rows.Close()

	results := []domain.TranslationResult{}
	for rows.Next() {
		var res domain.TranslationResult
		if err := rows.Scan(
			&res.SourceWord,
			&res.SourceLanguage,
			&res.TargetWord,
			&res.TargetLanguage,
			&res.WebonaryLink,
		); err != nil {
			return nil, postgres.MapError(err, "lookup translations")
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "lookup translations")
	}

	return results, nil
}

// buildQuery assembles the direction- and match-dependent SELECT.
//
// Edges are stored once, directionally: source_word_id is always the
// English/French side, target_word_id the African-language side. A forward
// lookup walks the edge as stored; a reverse lookup binds the caller's
// word to the stored target column and surfaces the link from the source
// role (which is the African-language word in that frame).
func buildQuery(q domain.TranslationQuery) (string, []any, error) {
	if !q.Match.IsValid() {
		return "", nil, domain.NewValidationError("match",
			fmt.Sprintf("invalid match mode %q, must be one of: exact, prefix, contains", q.Match))
	}
	if !q.Direction.IsValid() {
		return "", nil, domain.NewValidationError("direction",
			fmt.Sprintf("invalid direction %q", q.Direction))
	}

	var srcJoin, dstJoin, linkCol string
	switch q.Direction {
	case domain.DirectionForward:
		srcJoin = "t.source_word_id"
		dstJoin = "t.target_word_id"
		linkCol = "dst.webonary_link"
	case domain.DirectionReverse:
		srcJoin = "t.target_word_id"
		dstJoin = "t.source_word_id"
		linkCol = "src.webonary_link"
	}

	builder := psql.Select(
		"src.word AS source_word",
		"src.language_code AS source_language",
		"dst.word AS target_word",
		"dst.language_code AS target_language",
		linkCol+" AS webonary_link",
	).
		From("words src").
		Join("translations t ON src.id = " + srcJoin).
		Join("words dst ON dst.id = " + dstJoin).
		Where(sq.Eq{"src.language_code": q.SourceLang}).
		Where(wordPredicate(q.Match, domain.NormalizeWord(q.Word))).
		OrderBy(`dst.word COLLATE "C" ASC`).
		Limit(uint64(q.Limit))

	if q.TargetLang != nil {
		builder = builder.Where(sq.Eq{"dst.language_code": *q.TargetLang})
	}

	return builder.ToSql()
}

// wordPredicate translates a match mode into the condition applied to the
// source-role normalized form. Prefix and contains escape LIKE wildcards
// in the user's word so it is always matched literally.
func wordPredicate(match domain.MatchMode, normalized string) sq.Sqlizer {
	switch match {
	case domain.MatchPrefix:
		return sq.Like{"src.word_normalized": escapeLike(normalized) + "%"}
	case domain.MatchContains:
		return sq.Like{"src.word_normalized": "%" + escapeLike(normalized) + "%"}
	default:
		return sq.Eq{"src.word_normalized": normalized}
	}
}

// escapeLike escapes the LIKE metacharacters %, _, and the escape
// character itself (backslash, the PostgreSQL default).
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
