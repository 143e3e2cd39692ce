package token

import (
	"strings"
	"unicode/utf8"
)

type ArithTokenizer struct {
	input string
	pos   int
}

func NewArithTokenizer() *ArithTokenizer {
	return &ArithTokenizer{}
}

// Tokenize converts the input string into a slice of Tokens ending with EOF.
// Example: Input: `3 + 4 * (2 - 1.5)`
//
// Consecutive digits and decimal points form one NUMBER. Whitespace separates
// numerals and is otherwise ignored, so "3 4" yields two NUMBER tokens.
func (t *ArithTokenizer) Tokenize(input string) ([]Token, error) {
	t.input = input
	t.pos = 0

	var tokens []Token

	for t.pos < len(t.input) {
		ch, size := utf8.DecodeRuneInString(t.input[t.pos:])
		switch {
		case isNumeralChar(ch):
			tok, err := t.readNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case ch == '+':
			tokens = append(tokens, t.single(PLUS))
		case ch == '-':
			tokens = append(tokens, t.single(MINUS))
		case ch == '*':
			tokens = append(tokens, t.single(STAR))
		case ch == '/':
			tokens = append(tokens, t.single(SLASH))
		case ch == '(':
			tokens = append(tokens, t.single(LPAREN))
		case ch == ')':
			tokens = append(tokens, t.single(RPAREN))
		case ch == ' ':
			t.pos += size
		default:
			return nil, &Error{Pos: t.pos, Value: string(ch), Err: ErrInvalidCharacter}
		}
	}

	tokens = append(tokens, Token{Type: EOF, Pos: len(t.input)})
	return tokens, nil
}

func (t *ArithTokenizer) single(typ Type) Token {
	tok := Token{Type: typ, Value: t.input[t.pos : t.pos+1], Pos: t.pos}
	t.pos++
	return tok
}

func (t *ArithTokenizer) readNumber() (Token, error) {
	start := t.pos
	for t.pos < len(t.input) && isNumeralChar(rune(t.input[t.pos])) {
		t.pos++
	}

	value := t.input[start:t.pos]
	if strings.Count(value, ".") > 1 {
		return Token{}, &Error{Pos: start, Value: value, Reason: "too many decimal points", Err: ErrInvalidNumber}
	}

	return Token{Type: NUMBER, Value: value, Pos: start}, nil
}

func isNumeralChar(ch rune) bool {
	return (ch >= '0' && ch <= '9') || ch == '.'
}
