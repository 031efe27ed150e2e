package domain

import "fmt"

// MatchMode is the string-comparison semantics applied to the normalized
// query word.
type MatchMode string

const (
	MatchExact    MatchMode = "exact"
	MatchPrefix   MatchMode = "prefix"
	MatchContains MatchMode = "contains"
)

func (m MatchMode) String() string { return string(m) }

func (m MatchMode) IsValid() bool {
	switch m {
	case MatchExact, MatchPrefix, MatchContains:
		return true
	}
	return false
}

// ParseMatchMode converts a raw string into a MatchMode. An empty string
// defaults to MatchExact; anything else invalid is a ValidationError.
func ParseMatchMode(raw string) (MatchMode, error) {
	if raw == "" {
		return MatchExact, nil
	}
	m := MatchMode(raw)
	if !m.IsValid() {
		return "", NewValidationError("match",
			fmt.Sprintf("invalid match mode %q, must be one of: exact, prefix, contains", raw))
	}
	return m, nil
}

// Direction is the physical orientation of a lookup relative to how
// translation edges are stored. Edges are always recorded as
// English/French word -> African-language word; a forward lookup walks
// them as stored, a reverse lookup walks them from the target side.
type Direction string

const (
	DirectionForward Direction = "forward"
	DirectionReverse Direction = "reverse"
)

func (d Direction) String() string { return string(d) }

func (d Direction) IsValid() bool {
	switch d {
	case DirectionForward, DirectionReverse:
		return true
	}
	return false
}

// LanguageRole classifies a language code: source languages (English,
// French) are the ones dictionary entries are browsed by, target languages
// are the African languages being documented.
type LanguageRole string

const (
	RoleSource LanguageRole = "source"
	RoleTarget LanguageRole = "target"
)

func (r LanguageRole) String() string { return string(r) }
