package language

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/vernala/vernala-backend/internal/domain"
)

type wordRepo interface {
	LanguageCounts(ctx context.Context) ([]domain.LanguageCount, error)
	Stats(ctx context.Context) (*domain.StoreStats, error)
}

// Service exposes the languages known to the store and aggregate
// counts over it.
type Service struct {
	words wordRepo
	log   *slog.Logger
}

// NewService creates a new Language service.
func NewService(log *slog.Logger, words wordRepo) *Service {
	return &Service{
		words: words,
		log:   log.With("service", "language"),
	}
}

// List returns every language present in the store, annotated with its
// display name, lookup role, and word count, sorted by code.
func (s *Service) List(ctx context.Context) ([]domain.LanguageInfo, error) {
	counts, err := s.words.LanguageCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}

	infos := make([]domain.LanguageInfo, 0, len(counts))
	for _, c := range counts {
		infos = append(infos, domain.LanguageInfo{
			Code:      c.LanguageCode,
			Name:      domain.DisplayName(c.LanguageCode),
			Role:      domain.RoleFor(c.LanguageCode),
			WordCount: c.WordCount,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Code < infos[j].Code })

	return infos, nil
}

// Stats returns aggregate word, translation, and language counts.
func (s *Service) Stats(ctx context.Context) (*domain.StoreStats, error) {
	stats, err := s.words.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("store stats: %w", err)
	}
	return stats, nil
}
