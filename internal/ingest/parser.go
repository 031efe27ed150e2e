// Package ingest loads scraped dictionary JSON files into the lexical
// store. Parsing is pure: file path in, entries out, no database
// dependencies.
package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Gloss is one African-language rendering of a source word, with its
// dictionary entry link.
type Gloss struct {
	Word string `json:"word"`
	Link string `json:"link"`
}

// Entry pairs one English or French headword with its glosses.
type Entry struct {
	SourceWord string
	Glosses    []Gloss
}

// ParseResult holds the entries of one scraped letter file.
type ParseResult struct {
	Entries []Entry
	// Skipped counts records dropped for a missing headword or an
	// empty gloss list.
	Skipped int
}

// ParseFile reads one scraped letter file. sourceKey is the headword
// field ("english" or "french"); languageKey is the field carrying the
// gloss list, which matches the scraped folder name ("ngiemboon").
func ParseFile(path, sourceKey, languageKey string) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var records []map[string]json.RawMessage
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return ParseResult{}, fmt.Errorf("decode JSON: %w", err)
	}

	var result ParseResult
	for _, rec := range records {
		entry, ok := parseRecord(rec, sourceKey, languageKey)
		if !ok {
			result.Skipped++
			continue
		}
		result.Entries = append(result.Entries, entry)
	}
	return result, nil
}

func parseRecord(rec map[string]json.RawMessage, sourceKey, languageKey string) (Entry, bool) {
	rawWord, ok := rec[sourceKey]
	if !ok {
		return Entry{}, false
	}
	var sourceWord string
	if err := json.Unmarshal(rawWord, &sourceWord); err != nil {
		return Entry{}, false
	}
	sourceWord = strings.TrimSpace(sourceWord)
	if sourceWord == "" {
		return Entry{}, false
	}

	rawGlosses, ok := rec[languageKey]
	if !ok {
		return Entry{}, false
	}
	var glosses []Gloss
	if err := json.Unmarshal(rawGlosses, &glosses); err != nil {
		return Entry{}, false
	}

	kept := glosses[:0]
	for _, g := range glosses {
		g.Word = strings.TrimSpace(g.Word)
		g.Link = strings.TrimSpace(g.Link)
		if g.Word == "" {
			continue
		}
		kept = append(kept, g)
	}
	if len(kept) == 0 {
		return Entry{}, false
	}

	return Entry{SourceWord: sourceWord, Glosses: kept}, true
}
