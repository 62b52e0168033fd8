package filter

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name:     "lowercases",
			in:       "Senior Sales Engineer",
			expected: "senior sales engineer",
		},
		{
			name:     "folds hyphen",
			in:       "Solutions-Engineer",
			expected: "solutions engineer",
		},
		{
			name:     "folds slash",
			in:       "Solutions/Engineer",
			expected: "solutions engineer",
		},
		{
			name:     "spaced hyphen keeps surrounding spaces",
			in:       "Senior Solutions Engineer - AI Platform",
			expected: "senior solutions engineer   ai platform",
		},
		{
			name:     "empty input",
			in:       "",
			expected: "",
		},
		{
			name:     "other punctuation untouched",
			in:       "CTO (Remote, US)",
			expected: "cto (remote, us)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Senior Solutions Engineer - AI Platform",
		"Pre-Sales/Post-Sales Lead",
		"",
		"already normalized text",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
