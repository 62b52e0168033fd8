package filter

import "testing"

func TestKeywordSetMatchesAny(t *testing.T) {
	ks := NewKeywordSet([]string{"Fan Experience", "CTO"}, false)

	tests := []struct {
		name     string
		texts    []string
		expected bool
	}{
		{"multi-word phrase matches contiguously", []string{"head of fan experience team"}, true},
		{"tokens apart do not match", []string{"fan of the experience"}, false},
		{"second text matches", []string{"nothing here", "cto wanted"}, true},
		{"empty texts", []string{"", ""}, false},
		{"no match", []string{"backend developer"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ks.MatchesAny(tt.texts...)
			if got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestKeywordSetAccentFolding(t *testing.T) {
	plain := NewKeywordSet([]string{"can tho"}, false)
	folded := NewKeywordSet([]string{"can tho"}, true)

	if plain.MatchesAny("làm việc tại cần thơ") {
		t.Error("literal matching must not fold accents")
	}
	if !folded.MatchesAny("làm việc tại cần thơ") {
		t.Error("fold_accents matching should strip combining marks")
	}
}
