package domain

import "time"

// Word is a single lexical item in one language, stored exactly as scraped.
// Identity is the (Word, LanguageCode, WebonaryLink) triple: the same
// surface string with a different link is a distinct homograph entry.
type Word struct {
	ID             int64
	Word           string
	WordNormalized string
	LanguageCode   string
	WebonaryLink   *string
	CreatedAt      time.Time
}

// TranslationEdge is a directed relation between two stored words, recorded
// exactly as scraped: the source word is glossed by the target word. There
// is no implicit inverse edge.
type TranslationEdge struct {
	SourceWordID int64
	TargetWordID int64
}
