package matching

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize lower-cases s and drops everything that is not an ASCII letter or digit.
// Compatibility forms (full-width Latin, ligatures) are folded first, so
// "Level-1 (1A) مستوى أول" and "ＬＥＶＥＬ1" both become "level11a" and "level1".
func Normalize(s string) string {
	return fold(s, nil)
}

// NormalizeTiming is Normalize that also keeps time punctuation (':', '.', '-'),
// so "9:00" and "900" stay distinct.
func NormalizeTiming(s string) string {
	return fold(s, isTimePunct)
}

func isTimePunct(r rune) bool {
	return r == ':' || r == '.' || r == '-'
}

func fold(s string, keep func(rune) bool) string {
	if s == "" {
		return ""
	}
	s = norm.NFKC.String(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case keep != nil && keep(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}
