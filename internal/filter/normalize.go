package filter

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases s and folds hyphens and slashes to single spaces so
// "Solutions-Engineer" and "Solutions/Engineer" both read "solutions engineer".
// Everything else is left untouched. Idempotent.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "/", " ")
	return s
}

// stripAccents removes combining marks: "Cần Thơ" -> "Can Tho".
// Only applied when a profile opts into fold_accents.
func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
