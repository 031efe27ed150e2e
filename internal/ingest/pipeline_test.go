package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

type wordRepoMock struct {
	UpsertFunc     func(ctx context.Context, word, languageCode string, webonaryLink *string) (int64, bool, error)
	UpsertEdgeFunc func(ctx context.Context, sourceWordID, targetWordID int64) (bool, error)

	upserts int
	edges   int
}

func (m *wordRepoMock) Upsert(ctx context.Context, word, languageCode string, webonaryLink *string) (int64, bool, error) {
	m.upserts++
	if m.UpsertFunc == nil {
		return int64(m.upserts), true, nil
	}
	return m.UpsertFunc(ctx, word, languageCode, webonaryLink)
}

func (m *wordRepoMock) UpsertEdge(ctx context.Context, sourceWordID, targetWordID int64) (bool, error) {
	m.edges++
	if m.UpsertEdgeFunc == nil {
		return true, nil
	}
	return m.UpsertEdgeFunc(ctx, sourceWordID, targetWordID)
}

type txManagerMock struct {
	runs int
	err  error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(context.Context) error) error {
	m.runs++
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

// writeTree lays out a minimal scraped_data directory.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	return root
}

const letterA = `[
	{"english": "abandon", "ngiemboon": [
		{"word": "ńnyé", "link": "https://example.org/l1"},
		{"word": "ńkʉ́e", "link": "https://example.org/l2"}
	]}
]`

const letterB = `[
	{"english": "bee", "ngiemboon": [{"word": "ǹzʉ̂", "link": ""}]}
]`

func TestPipeline_Run(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"ngiemboon/en/a.json": letterA,
		"ngiemboon/en/b.json": letterB,
	})

	words := &wordRepoMock{}
	tx := &txManagerMock{}
	var seen []string
	words.UpsertFunc = func(_ context.Context, word, code string, link *string) (int64, bool, error) {
		linkStr := "<nil>"
		if link != nil {
			linkStr = *link
		}
		seen = append(seen, fmt.Sprintf("%s/%s/%s", code, word, linkStr))
		return int64(len(seen)), true, nil
	}

	p := NewPipeline(slog.Default(), words, tx, Config{DataDir: root})
	stats, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if stats.Files != 2 || stats.Entries != 2 {
		t.Errorf("stats = %+v, want 2 files / 2 entries", stats)
	}
	if stats.WordsCreated != 5 || stats.EdgesCreated != 3 {
		t.Errorf("stats = %+v, want 5 words / 3 edges", stats)
	}
	if tx.runs != 2 {
		t.Errorf("tx runs = %d, want one per file", tx.runs)
	}

	// Headwords get the en code and no link; glosses get the registry
	// code with their link, empty mapped to nil.
	want := []string{
		"en/abandon/<nil>",
		"nnh/ńnyé/https://example.org/l1",
		"nnh/ńkʉ́e/https://example.org/l2",
		"en/bee/<nil>",
		"nnh/ǹzʉ̂/<nil>",
	}
	if len(seen) != len(want) {
		t.Fatalf("upserts = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("upsert[%d] = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestPipeline_SkipsUnknownLanguageFolder(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"klingon/en/a.json":   letterA,
		"ngiemboon/en/b.json": letterB,
	})

	words := &wordRepoMock{}
	p := NewPipeline(slog.Default(), words, &txManagerMock{}, Config{DataDir: root})

	stats, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Files != 1 {
		t.Errorf("Files = %d, want 1 (klingon folder skipped)", stats.Files)
	}
	if words.upserts != 2 {
		t.Errorf("upserts = %d, want 2", words.upserts)
	}
}

func TestPipeline_DryRunWritesNothing(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"ngiemboon/en/a.json": letterA,
	})

	words := &wordRepoMock{}
	tx := &txManagerMock{}
	p := NewPipeline(slog.Default(), words, tx, Config{DataDir: root, DryRun: true})

	stats, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Files != 1 || stats.Entries != 1 {
		t.Errorf("dry run should still count: %+v", stats)
	}
	if words.upserts != 0 || words.edges != 0 || tx.runs != 0 {
		t.Errorf("dry run wrote: %d upserts, %d edges, %d tx", words.upserts, words.edges, tx.runs)
	}
}

func TestPipeline_IdempotentRerunCreatesNothing(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"ngiemboon/en/a.json": letterA,
	})

	// Everything already present in the store.
	words := &wordRepoMock{
		UpsertFunc: func(context.Context, string, string, *string) (int64, bool, error) {
			return 1, false, nil
		},
		UpsertEdgeFunc: func(context.Context, int64, int64) (bool, error) {
			return false, nil
		},
	}
	p := NewPipeline(slog.Default(), words, &txManagerMock{}, Config{DataDir: root})

	stats, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.WordsCreated != 0 || stats.EdgesCreated != 0 {
		t.Errorf("rerun created words=%d edges=%d, want 0/0", stats.WordsCreated, stats.EdgesCreated)
	}
	if stats.Entries != 1 {
		t.Errorf("Entries = %d, want 1", stats.Entries)
	}
}

func TestPipeline_RepoErrorAborts(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"ngiemboon/en/a.json": letterA,
	})

	wantErr := errors.New("connection refused")
	words := &wordRepoMock{
		UpsertFunc: func(context.Context, string, string, *string) (int64, bool, error) {
			return 0, false, wantErr
		},
	}
	p := NewPipeline(slog.Default(), words, &txManagerMock{}, Config{DataDir: root})

	_, err := p.Run(context.Background())
	if !errors.Is(err, wantErr) {
		t.Errorf("Run error = %v, want wrapped %v", err, wantErr)
	}
}

func TestPipeline_MissingDataDir(t *testing.T) {
	t.Parallel()

	p := NewPipeline(slog.Default(), &wordRepoMock{}, &txManagerMock{},
		Config{DataDir: filepath.Join(t.TempDir(), "nope")})
	if _, err := p.Run(context.Background()); err == nil {
		t.Error("expected error for missing data dir")
	}
}
