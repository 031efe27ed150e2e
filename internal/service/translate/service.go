package translate

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/vernala/vernala-backend/internal/domain"
)

type lookupRepo interface {
	Translations(ctx context.Context, q domain.TranslationQuery) ([]domain.TranslationResult, error)
}

type languageRepo interface {
	LanguageCounts(ctx context.Context) ([]domain.LanguageCount, error)
}

// Service validates translation requests and runs them through the
// query engine.
type Service struct {
	lookup lookupRepo
	langs  languageRepo
	log    *slog.Logger
}

// NewService creates a new Translate service.
func NewService(log *slog.Logger, lookup lookupRepo, langs languageRepo) *Service {
	return &Service{
		lookup: lookup,
		langs:  langs,
		log:    log.With("service", "translate"),
	}
}

// Request carries the raw lookup parameters as parsed by the transport
// layer. Match is the raw mode string; Limit 0 means unset.
type Request struct {
	SourceLang string
	Word       string
	TargetLang *string
	Match      string
	Limit      int
}

// Result is a resolved lookup: the normalized query that ran plus its
// matches in deterministic order.
type Result struct {
	Query        domain.TranslationQuery
	Translations []domain.TranslationResult
}

// Translate validates the request, derives the lookup direction from
// the source language, and executes the query. Validation failures are
// returned as domain.ValidationError before any lookup runs.
func (s *Service) Translate(ctx context.Context, req Request) (*Result, error) {
	match, err := domain.ParseMatchMode(req.Match)
	if err != nil {
		return nil, err
	}

	word := strings.TrimSpace(req.Word)
	if word == "" {
		return nil, domain.NewValidationError("word", "must not be empty")
	}
	if utf8.RuneCountInString(word) > domain.MaxWordLength {
		return nil, domain.NewValidationError("word",
			fmt.Sprintf("must be at most %d characters", domain.MaxWordLength))
	}

	sourceLang := strings.ToLower(strings.TrimSpace(req.SourceLang))
	if err := checkCodeShape("source_lang", sourceLang); err != nil {
		return nil, err
	}

	var targetLang *string
	if req.TargetLang != nil {
		code := strings.ToLower(strings.TrimSpace(*req.TargetLang))
		if err := checkCodeShape("target_lang", code); err != nil {
			return nil, err
		}
		targetLang = &code
	}

	limit, err := validateLimit(req.Limit)
	if err != nil {
		return nil, err
	}

	// Codes are checked against the languages actually present in the
	// store, so the error message can list real options.
	known, err := s.knownCodes(ctx)
	if err != nil {
		return nil, err
	}
	if !known[sourceLang] {
		return nil, domain.NewValidationError("source_lang",
			unsupportedMessage("source", sourceLang, known))
	}
	if targetLang != nil && !known[*targetLang] {
		return nil, domain.NewValidationError("target_lang",
			unsupportedMessage("target", *targetLang, known))
	}

	query := domain.TranslationQuery{
		SourceLang: sourceLang,
		Word:       word,
		TargetLang: targetLang,
		Match:      match,
		Limit:      limit,
		Direction:  domain.DirectionFor(sourceLang),
	}

	results, err := s.lookup.Translations(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("translate %q (%s): %w", word, sourceLang, err)
	}

	s.log.DebugContext(ctx, "translate lookup",
		"word", word,
		"source_lang", sourceLang,
		"direction", string(query.Direction),
		"results", len(results),
	)

	return &Result{Query: query, Translations: results}, nil
}

func (s *Service) knownCodes(ctx context.Context) (map[string]bool, error) {
	counts, err := s.langs.LanguageCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load language codes: %w", err)
	}
	known := make(map[string]bool, len(counts))
	for _, c := range counts {
		known[c.LanguageCode] = true
	}
	return known, nil
}

func checkCodeShape(field, code string) error {
	if n := len(code); n < 2 || n > 3 {
		return domain.NewValidationError(field, "must be a 2-3 letter language code")
	}
	return nil
}

func unsupportedMessage(role, code string, known map[string]bool) string {
	codes := make([]string, 0, len(known))
	for c := range known {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return fmt.Sprintf("Unsupported %s language: %s. Valid codes: %s",
		role, code, strings.Join(codes, ", "))
}

// validateLimit treats 0 as unset. Out-of-range values are rejected
// rather than clamped, matching the request contract.
func validateLimit(limit int) (int, error) {
	switch {
	case limit == 0:
		return domain.DefaultLookupLimit, nil
	case limit < 1 || limit > domain.MaxLookupLimit:
		return 0, domain.NewValidationError("limit",
			fmt.Sprintf("must be between 1 and %d", domain.MaxLookupLimit))
	default:
		return limit, nil
	}
}
