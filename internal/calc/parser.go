package calc

import (
	"errors"
	"math"
	"strconv"

	"github.com/DjordjeVuckovic/safe-calc/internal/token"
)

// parser is a recursive-descent evaluator over an immutable token slice.
//
//	Expression := Term (('+' | '-') Term)*
//	Term       := Factor (('*' | '/') Factor)*
//	Factor     := Number | '(' Expression ')' | '-' Factor | '+' Factor
type parser struct {
	tokens   []token.Token
	pos      int
	depth    int
	maxDepth int
}

func newParser(tokens []token.Token, maxDepth int) *parser {
	return &parser{tokens: tokens, maxDepth: maxDepth}
}

// parse evaluates the whole token stream; anything left before EOF is an error.
func (p *parser) parse() (float64, error) {
	v, err := p.parseExpression()
	if err != nil {
		return 0, err
	}

	if tok := p.peek(); tok.Type != token.EOF {
		return 0, newError(KindTrailingTokens, tok.Pos, "unexpected trailing %s", tok.Value)
	}

	return v, nil
}

func (p *parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Type: token.EOF}
	}
	return p.tokens[p.pos]
}

// next consumes one token. EOF is never consumed past.
func (p *parser) next() token.Token {
	tok := p.peek()
	if tok.Type != token.EOF {
		p.pos++
	}
	return tok
}

func (p *parser) parseExpression() (float64, error) {
	result, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for p.peek().Type.IsAdditive() {
		op := p.next()
		rhs, err := p.parseTerm()
		if err != nil {
			return 0, err
		}

		if op.Type == token.PLUS {
			result += rhs
		} else {
			result -= rhs
		}
	}

	return result, nil
}

func (p *parser) parseTerm() (float64, error) {
	result, err := p.parseFactor()
	if err != nil {
		return 0, err
	}

	for p.peek().Type.IsMultiplicative() {
		op := p.next()
		rhs, err := p.parseFactor()
		if err != nil {
			return 0, err
		}

		if op.Type == token.STAR {
			result *= rhs
			continue
		}
		if rhs == 0 {
			return 0, newError(KindDivisionByZero, op.Pos, "division by zero")
		}
		result /= rhs
	}

	return result, nil
}

func (p *parser) parseFactor() (float64, error) {
	tok := p.next()

	switch tok.Type {
	case token.NUMBER:
		return parseNumber(tok)
	case token.LPAREN:
		if err := p.enter(tok); err != nil {
			return 0, err
		}
		defer p.leave()

		v, err := p.parseExpression()
		if err != nil {
			return 0, err
		}
		if closing := p.next(); closing.Type != token.RPAREN {
			return 0, newError(KindMismatchedParentheses, closing.Pos,
				"expected ')' to close '(' at position %d, found %s", tok.Pos, describe(closing))
		}
		return v, nil
	case token.MINUS, token.PLUS:
		if err := p.enter(tok); err != nil {
			return 0, err
		}
		defer p.leave()

		v, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		if tok.Type == token.MINUS {
			return -v, nil
		}
		return v, nil
	case token.RPAREN:
		return 0, newError(KindMismatchedParentheses, tok.Pos, "unexpected ')'")
	case token.EOF:
		return 0, newError(KindInvalidNumber, tok.Pos, "unexpected end of expression")
	default:
		return 0, newError(KindInvalidNumber, tok.Pos, "expected a number, found %q", tok.Value)
	}
}

func (p *parser) enter(tok token.Token) error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return newError(KindNestingTooDeep, tok.Pos, "nesting deeper than %d levels", p.maxDepth)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func parseNumber(tok token.Token) (float64, error) {
	v, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && math.IsInf(v, 0) {
			return 0, newError(KindInvalidResult, tok.Pos, "number %s is out of range", tok.Value)
		}
		return 0, newError(KindInvalidNumber, tok.Pos, "invalid number %q", tok.Value)
	}
	return v, nil
}

func describe(tok token.Token) string {
	if tok.Type == token.EOF {
		return "end of expression"
	}
	return strconv.Quote(tok.Value)
}
