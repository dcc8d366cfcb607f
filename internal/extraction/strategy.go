// Package extraction derives candidate facts (name, years of experience, current position,
// education) from resume text. Each fact is found by an ordered chain of heuristics:
// the first layer that finds something wins, and a sentinel is returned when none does.
package extraction

import (
	"strings"
	"unicode"
)

// strategy is one layer of a fallback chain. ok is false when the layer found nothing.
type strategy func(lines []string) (value string, ok bool)

// firstMatch runs the strategies in order and returns the first non-empty result
func firstMatch(lines []string, strategies ...strategy) (string, bool) {
	for _, s := range strategies {
		if value, ok := s(lines); ok && value != "" {
			return value, true
		}
	}
	return "", false
}

// tokens splits s into lower-cased words of letters and digits
func tokens(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// hasToken reports whether any token of line is in set
func hasToken(line string, set map[string]bool) bool {
	for _, tok := range tokens(line) {
		if set[tok] {
			return true
		}
	}
	return false
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// contactWords mark lines that carry contact details rather than profile facts
var contactWords = wordSet("email", "mail", "phone", "mobile", "tel", "linkedin", "github")

func isContactLine(line string) bool {
	return strings.Contains(line, "@") || hasToken(line, contactWords)
}
