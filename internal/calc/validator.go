package calc

import (
	"strings"
)

var bannedSequences = []string{"//", "**"}

// Validate is the fast structural pre-filter run before tokenizing.
// It does not guarantee the expression is grammatical: "+*3" passes here
// and is rejected by the parser.
func Validate(expression string) error {
	if strings.TrimSpace(expression) == "" {
		return newError(KindEmptyOrBlank, -1, "expression is empty")
	}

	for i, ch := range expression {
		if !isAllowedChar(ch) {
			return newError(KindIllegalCharacter, i, "illegal character %q", ch)
		}
	}

	depth := 0
	for i := 0; i < len(expression); i++ {
		switch expression[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return newError(KindUnbalancedParentheses, i, "unexpected closing parenthesis")
			}
		}
	}
	if depth != 0 {
		return newError(KindUnbalancedParentheses, -1, "unbalanced parentheses: %d unclosed", depth)
	}

	for _, seq := range bannedSequences {
		if i := strings.Index(expression, seq); i >= 0 {
			return newError(KindBannedSequence, i, "banned sequence %q", seq)
		}
	}

	return nil
}

func isAllowedChar(ch rune) bool {
	switch {
	case ch >= '0' && ch <= '9':
		return true
	case ch == '+', ch == '-', ch == '*', ch == '/', ch == '.', ch == '(', ch == ')', ch == ' ':
		return true
	default:
		return false
	}
}
