// Package calc evaluates arithmetic expressions over + - * / and parentheses
// without executing the input as code.
package calc

import (
	"errors"
	"fmt"
	"math"

	"github.com/DjordjeVuckovic/safe-calc/internal/token"
)

const DefaultMaxDepth = 256

// Engine runs the validation and evaluation pipeline. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	maxDepth     int
	staticDivChk bool
}

type Option func(*Engine)

// WithMaxDepth bounds nesting of parentheses and unary operators.
// Values <= 0 disable the limit.
func WithMaxDepth(depth int) Option {
	return func(e *Engine) {
		e.maxDepth = depth
	}
}

// WithStaticDivisionCheck toggles the textual division-by-zero fast path.
// The check performed while evaluating always runs.
func WithStaticDivisionCheck(enabled bool) Option {
	return func(e *Engine) {
		e.staticDivChk = enabled
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		maxDepth:     DefaultMaxDepth,
		staticDivChk: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = New()

// Evaluate evaluates expression with the default engine.
func Evaluate(expression string) (float64, error) {
	return defaultEngine.Evaluate(expression)
}

// Evaluate validates expression and computes its value. Every failure is an *Error.
func (e *Engine) Evaluate(expression string) (float64, error) {
	if err := Validate(expression); err != nil {
		return 0, err
	}

	if e.staticDivChk && LooksLikeDivisionByZero(expression) {
		return 0, newError(KindDivisionByZero, -1, "division by zero")
	}

	tokens, err := Tokenize(expression)
	if err != nil {
		return 0, err
	}

	return e.EvaluateTokens(tokens)
}

// EvaluateTokens parses and evaluates an already tokenized expression.
// The slice is not modified.
func (e *Engine) EvaluateTokens(tokens []token.Token) (float64, error) {
	result, err := newParser(tokens, e.maxDepth).parse()
	if err != nil {
		return 0, err
	}

	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, newError(KindInvalidResult, -1, "result is not a finite number")
	}

	return result, nil
}

// Tokenize splits expression into tokens, translating lexical failures into *Error.
func Tokenize(expression string) ([]token.Token, error) {
	tokens, err := token.NewArithTokenizer().Tokenize(expression)
	if err == nil {
		return tokens, nil
	}

	var te *token.Error
	if !errors.As(err, &te) {
		return nil, &Error{Kind: KindUnknown, Pos: -1, Message: err.Error(), Err: err}
	}

	kind := KindIllegalCharacter
	if errors.Is(err, token.ErrInvalidNumber) {
		kind = KindInvalidNumber
	}
	msg := fmt.Sprintf("%s %q", te.Err, te.Value)
	if te.Reason != "" {
		msg += ": " + te.Reason
	}
	return nil, &Error{Kind: kind, Pos: te.Pos, Message: msg, Err: err}
}
