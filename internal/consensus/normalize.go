package consensus

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// normalizeTitle canonicalizes a title for comparison: NFKC normalization,
// lowercase, non-alphanumeric/non-whitespace runes stripped, internal
// whitespace collapsed to single spaces, trimmed.
func normalizeTitle(s string) string {
	s = strings.ToLower(norm.NFKC.String(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// tokenSet splits a normalized title into its unique whitespace-separated
// tokens.
func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// similarity is the Jaccard index of two token sets: |a ∩ b| / |a ∪ b|.
// Two empty sets are not similar; empty titles never reach this point anyway.
func similarity(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}
