package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vernala/vernala-backend/internal/domain"
)

type wordRepo interface {
	Upsert(ctx context.Context, word, languageCode string, webonaryLink *string) (int64, bool, error)
	UpsertEdge(ctx context.Context, sourceWordID, targetWordID int64) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// sourceDirs maps the scraped subfolder name to the headword field
// inside its JSON files and the language code the headwords get.
var sourceDirs = []struct {
	dir       string
	sourceKey string
	code      string
}{
	{dir: "en", sourceKey: "english", code: "en"},
	{dir: "fr", sourceKey: "french", code: "fr"},
}

// Config controls one ingest run.
type Config struct {
	// DataDir is the scraped_data root: one folder per language key,
	// each with en/ and fr/ letter files.
	DataDir string
	// DryRun parses everything but writes nothing.
	DryRun bool
}

// Stats aggregates the outcome of an ingest run.
type Stats struct {
	Files        int
	Entries      int
	SkippedRows  int
	WordsCreated int
	EdgesCreated int
}

// Pipeline walks a scraped_data tree and loads it into the store. Runs
// are idempotent: re-ingesting the same tree creates nothing new.
type Pipeline struct {
	words wordRepo
	tx    txManager
	log   *slog.Logger
	cfg   Config
}

// NewPipeline creates a new ingest pipeline.
func NewPipeline(log *slog.Logger, words wordRepo, tx txManager, cfg Config) *Pipeline {
	return &Pipeline{
		words: words,
		tx:    tx,
		log:   log.With("component", "ingest"),
		cfg:   cfg,
	}
}

// Run ingests every language folder under the data directory. Folders
// whose name is not in the language registry are skipped with a
// warning. Each letter file loads in its own transaction, so a failure
// mid-tree leaves previously loaded files intact.
func (p *Pipeline) Run(ctx context.Context) (*Stats, error) {
	dirs, err := os.ReadDir(p.cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("read data dir: %w", err)
	}

	stats := &Stats{}
	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}
		languageKey := dir.Name()
		langCfg, ok := domain.Registry[strings.ToLower(languageKey)]
		if !ok {
			p.log.Warn("skipping unknown language folder", "folder", languageKey)
			continue
		}
		if err := p.ingestLanguage(ctx, languageKey, langCfg, stats); err != nil {
			return stats, err
		}
	}

	p.log.Info("ingest finished",
		"files", stats.Files,
		"entries", stats.Entries,
		"skipped_rows", stats.SkippedRows,
		"words_created", stats.WordsCreated,
		"edges_created", stats.EdgesCreated,
		"dry_run", p.cfg.DryRun,
	)
	return stats, nil
}

func (p *Pipeline) ingestLanguage(ctx context.Context, languageKey string, langCfg domain.LanguageConfig, stats *Stats) error {
	for _, src := range sourceDirs {
		dir := filepath.Join(p.cfg.DataDir, languageKey, src.dir)
		files, err := filepath.Glob(filepath.Join(dir, "*.json"))
		if err != nil {
			return fmt.Errorf("glob %s: %w", dir, err)
		}
		if len(files) == 0 {
			p.log.Debug("no letter files", "language", languageKey, "source", src.dir)
			continue
		}
		sort.Strings(files)

		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := ParseFile(file, src.sourceKey, languageKey)
			if err != nil {
				return fmt.Errorf("parse %s: %w", file, err)
			}

			stats.Files++
			stats.Entries += len(result.Entries)
			stats.SkippedRows += result.Skipped

			if p.cfg.DryRun {
				continue
			}

			err = p.tx.RunInTx(ctx, func(txCtx context.Context) error {
				return p.loadEntries(txCtx, result.Entries, src.code, langCfg.Code, stats)
			})
			if err != nil {
				return fmt.Errorf("load %s: %w", file, err)
			}

			p.log.Debug("loaded letter file",
				"file", filepath.Base(file),
				"language", languageKey,
				"source", src.dir,
				"entries", len(result.Entries),
			)
		}
	}
	return nil
}

func (p *Pipeline) loadEntries(ctx context.Context, entries []Entry, sourceCode, targetCode string, stats *Stats) error {
	for _, entry := range entries {
		srcID, created, err := p.words.Upsert(ctx, entry.SourceWord, sourceCode, nil)
		if err != nil {
			return fmt.Errorf("upsert %q (%s): %w", entry.SourceWord, sourceCode, err)
		}
		if created {
			stats.WordsCreated++
		}

		for _, gloss := range entry.Glosses {
			var link *string
			if gloss.Link != "" {
				link = &gloss.Link
			}
			dstID, created, err := p.words.Upsert(ctx, gloss.Word, targetCode, link)
			if err != nil {
				return fmt.Errorf("upsert %q (%s): %w", gloss.Word, targetCode, err)
			}
			if created {
				stats.WordsCreated++
			}

			edgeCreated, err := p.words.UpsertEdge(ctx, srcID, dstID)
			if err != nil {
				return fmt.Errorf("upsert edge %d->%d: %w", srcID, dstID, err)
			}
			if edgeCreated {
				stats.EdgesCreated++
			}
		}
	}
	return nil
}
