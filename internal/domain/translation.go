package domain

// Lookup limit bounds enforced at the service boundary.
const (
	DefaultLookupLimit = 10
	MaxLookupLimit     = 100

	MaxWordLength = 100
)

// TranslationQuery is an immutable lookup specification. Direction is
// derived from SourceLang, never supplied by the caller. Modifications go
// through WithTarget/WithLimit, which return copies, so a query value can
// be reused across differently-scoped lookups.
type TranslationQuery struct {
	SourceLang string
	Word       string
	TargetLang *string
	Match      MatchMode
	Limit      int
	Direction  Direction
}

// WithTarget returns a copy of the query restricted to one target language.
func (q TranslationQuery) WithTarget(targetLang string) TranslationQuery {
	q.TargetLang = &targetLang
	return q
}

// WithLimit returns a copy of the query with a different result cap.
func (q TranslationQuery) WithLimit(limit int) TranslationQuery {
	q.Limit = limit
	return q
}

// TranslationResult is one matching edge, role-normalized to the query's
// own frame: SourceWord always corresponds to the caller's input word
// regardless of which physical edge column was walked. WebonaryLink is the
// link of the African-language word in the pair, whichever role it plays.
type TranslationResult struct {
	SourceWord     string  `json:"source_word"`
	SourceLanguage string  `json:"source_language"`
	TargetWord     string  `json:"target_word"`
	TargetLanguage string  `json:"target_language"`
	WebonaryLink   *string `json:"webonary_link"`
}

// LanguageInfo describes one language present in the store.
type LanguageInfo struct {
	Code      string       `json:"code"`
	Name      string       `json:"name"`
	Role      LanguageRole `json:"type"`
	WordCount int          `json:"word_count"`
}

// StoreStats are aggregate counts over the lexical store.
type StoreStats struct {
	TotalWords        int `json:"total_words"`
	TotalTranslations int `json:"total_translations"`
	Languages         int `json:"languages"`
}

// LanguageCount is the raw per-language aggregate returned by the store.
type LanguageCount struct {
	LanguageCode string
	WordCount    int
}
