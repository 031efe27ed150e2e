package domain

import "testing"

func TestRoleFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want LanguageRole
	}{
		{"en", RoleSource},
		{"fr", RoleSource},
		{"nnh", RoleTarget},
		{"bfd", RoleTarget},
		{"xyz", RoleTarget}, // unknown codes are targets by definition
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()
			if got := RoleFor(tt.code); got != tt.want {
				t.Errorf("RoleFor(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestDirectionFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want Direction
	}{
		{"en", DirectionForward},
		{"fr", DirectionForward},
		{"nnh", DirectionReverse},
		{"bfd", DirectionReverse},
		{"xyz", DirectionReverse},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()
			if got := DirectionFor(tt.code); got != tt.want {
				t.Errorf("DirectionFor(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want string
	}{
		{"en", "English"},
		{"fr", "French"},
		{"nnh", "Ngiemboon"},
		{"bfd", "Bafut"},
		{"xyz", "XYZ"}, // not in registry: uppercased code fallback
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()
			if got := DisplayName(tt.code); got != tt.want {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestTranslationQuery_Immutability(t *testing.T) {
	t.Parallel()

	base := TranslationQuery{
		SourceLang: "en",
		Word:       "abandon",
		Match:      MatchExact,
		Limit:      10,
		Direction:  DirectionForward,
	}

	scoped := base.WithTarget("nnh").WithLimit(50)

	if base.TargetLang != nil {
		t.Errorf("WithTarget mutated the original query: %v", *base.TargetLang)
	}
	if base.Limit != 10 {
		t.Errorf("WithLimit mutated the original query: %d", base.Limit)
	}
	if scoped.TargetLang == nil || *scoped.TargetLang != "nnh" {
		t.Errorf("scoped query target = %v, want nnh", scoped.TargetLang)
	}
	if scoped.Limit != 50 {
		t.Errorf("scoped query limit = %d, want 50", scoped.Limit)
	}
}
