package token

import "fmt"

type Type int

const (
	EOF Type = iota
	NUMBER
	PLUS
	MINUS
	STAR
	SLASH
	LPAREN
	RPAREN
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case NUMBER:
		return "NUMBER"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case STAR:
		return "STAR"
	case SLASH:
		return "SLASH"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// IsAdditive reports whether the type is a '+' or '-' operator.
func (t Type) IsAdditive() bool {
	return t == PLUS || t == MINUS
}

// IsMultiplicative reports whether the type is a '*' or '/' operator.
func (t Type) IsMultiplicative() bool {
	return t == STAR || t == SLASH
}

// Token represents a lexical token with its type, literal value and
// byte offset in the source expression.
type Token struct {
	Type  Type
	Value string
	Pos   int
}

func (t Token) String() string {
	if t.Type == EOF {
		return "end of expression"
	}
	return fmt.Sprintf("%q at %d", t.Value, t.Pos)
}
