package filter

import "strings"

// KeywordSet matches whole phrases as case-insensitive substrings.
// Phrases are lowercased once at build time but deliberately NOT
// hyphen-folded or stemmed: "solution engineer" does not match
// "solutions engineer", and a hyphenated phrase only matches text that
// kept its hyphen.
type KeywordSet struct {
	phrases     []string
	foldAccents bool
}

func NewKeywordSet(phrases []string, foldAccents bool) KeywordSet {
	lowered := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.ToLower(p)
		if foldAccents {
			p = stripAccents(p)
		}
		if p == "" {
			continue
		}
		lowered = append(lowered, p)
	}
	return KeywordSet{phrases: lowered, foldAccents: foldAccents}
}

// MatchesAny reports whether any phrase appears in any of the given texts.
// Texts must already be lowercased by the caller; accent folding is applied
// here when the set was built with it.
func (ks KeywordSet) MatchesAny(texts ...string) bool {
	for _, text := range texts {
		if text == "" {
			continue
		}
		if ks.foldAccents {
			text = stripAccents(text)
		}
		for _, phrase := range ks.phrases {
			if strings.Contains(text, phrase) {
				return true
			}
		}
	}
	return false
}
