package domain

import "strings"

// NormalizeWord prepares a surface form for storage and matching:
// leading/trailing whitespace is trimmed and the result is lowercased.
// Diacritics, tone marks, hyphens, and apostrophes are preserved, since
// they are significant in the African-language orthographies.
//
// The same function is applied to stored words at ingestion time and to
// query words at lookup time, so exact matching is case-insensitive by
// construction.
func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
