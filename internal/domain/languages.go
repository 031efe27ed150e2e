package domain

import "strings"

// LanguageConfig describes one scraped dictionary in the language registry.
type LanguageConfig struct {
	// Code is the ISO 639-3 code stored in the database.
	Code string
	// Name is the human-readable display name.
	Name string
	// BrowsePath is the webonary.org path fragment the scraper walks.
	BrowsePath string
}

// Registry maps the internal language key (the scraped_data folder name)
// to its configuration. Codes present in the store but absent here still
// work everywhere; only the display name falls back to the uppercased code.
var Registry = map[string]LanguageConfig{
	"ngiemboon": {
		Code:       "nnh",
		Name:       "Ngiemboon",
		BrowsePath: "ngiemboon/browse/browse-english/",
	},
	"bafut": {
		Code:       "bfd",
		Name:       "Bafut",
		BrowsePath: "bafut/browse/browse-english/",
	},
}

// IsSourceLanguage reports whether the code is one of the hardcoded
// source languages (English, French). Every other code present in the
// store is an African target language. This is the single classification
// rule; direction derivation, language listing, and validation messages
// all go through it.
func IsSourceLanguage(code string) bool {
	return code == "en" || code == "fr"
}

// RoleFor classifies a language code as source or target.
func RoleFor(code string) LanguageRole {
	if IsSourceLanguage(code) {
		return RoleSource
	}
	return RoleTarget
}

// DirectionFor derives the lookup direction from the query's source
// language: edges are stored English/French -> African, so a lookup rooted
// at an African-language word has to walk them in reverse.
func DirectionFor(sourceLang string) Direction {
	if IsSourceLanguage(sourceLang) {
		return DirectionForward
	}
	return DirectionReverse
}

// DisplayName resolves a human-readable name for a language code. English
// and French are fixed; other codes are looked up in the registry and fall
// back to the uppercased code when unknown.
func DisplayName(code string) string {
	switch code {
	case "en":
		return "English"
	case "fr":
		return "French"
	}
	for _, cfg := range Registry {
		if cfg.Code == code {
			return cfg.Name
		}
	}
	return strings.ToUpper(code)
}
