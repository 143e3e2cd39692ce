package calc

import (
	"regexp"
	"strings"
	"unicode"
)

// RE2 has no lookahead, so "not followed by" is spelled as a negated class or end of input.
var divisionByZeroPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/0(?:[^0-9.]|$)`),
	regexp.MustCompile(`/0\.0+(?:[^0-9]|$)`),
	regexp.MustCompile(`/\(0+\)`),
	regexp.MustCompile(`/\(0\.0+\)`),
}

// LooksLikeDivisionByZero reports whether the expression divides by a literal zero.
// It is a textual fast path only: "/(1-1)" does not match and is caught while evaluating.
func LooksLikeDivisionByZero(expression string) bool {
	compact := stripSpace(expression)
	for _, p := range divisionByZeroPatterns {
		if p.MatchString(compact) {
			return true
		}
	}
	return false
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
