package calc

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies why an expression was rejected.
type Kind int

const (
	KindUnknown Kind = iota
	KindEmptyOrBlank
	KindIllegalCharacter
	KindUnbalancedParentheses
	KindBannedSequence
	KindInvalidNumber
	KindMismatchedParentheses
	KindTrailingTokens
	KindDivisionByZero
	KindInvalidResult
	KindNestingTooDeep
)

func (k Kind) String() string {
	switch k {
	case KindEmptyOrBlank:
		return "EmptyOrBlank"
	case KindIllegalCharacter:
		return "IllegalCharacter"
	case KindUnbalancedParentheses:
		return "UnbalancedParentheses"
	case KindBannedSequence:
		return "BannedSequence"
	case KindInvalidNumber:
		return "InvalidNumber"
	case KindMismatchedParentheses:
		return "MismatchedParentheses"
	case KindTrailingTokens:
		return "TrailingTokens"
	case KindDivisionByZero:
		return "DivisionByZero"
	case KindInvalidResult:
		return "InvalidResult"
	case KindNestingTooDeep:
		return "NestingTooDeep"
	default:
		return "Unknown"
	}
}

var allKinds = []Kind{
	KindEmptyOrBlank,
	KindIllegalCharacter,
	KindUnbalancedParentheses,
	KindBannedSequence,
	KindInvalidNumber,
	KindMismatchedParentheses,
	KindTrailingTokens,
	KindDivisionByZero,
	KindInvalidResult,
	KindNestingTooDeep,
}

// Kinds lists every known kind.
func Kinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

// ParseKind resolves a kind from its String form, case-insensitively.
func ParseKind(s string) (Kind, bool) {
	for _, k := range allKinds {
		if strings.EqualFold(k.String(), s) {
			return k, true
		}
	}
	return KindUnknown, false
}

// Code returns the stable API error code for the kind.
// Pre-parse rejections share INVALID_EXPRESSION, grammar failures EVALUATION_ERROR.
func (k Kind) Code() string {
	switch k {
	case KindEmptyOrBlank, KindIllegalCharacter, KindUnbalancedParentheses, KindBannedSequence:
		return "INVALID_EXPRESSION"
	case KindDivisionByZero:
		return "DIVISION_BY_ZERO"
	case KindInvalidResult:
		return "INVALID_RESULT"
	case KindInvalidNumber, KindMismatchedParentheses, KindTrailingTokens, KindNestingTooDeep:
		return "EVALUATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// Sentinels for errors.Is matching against an *Error of the same kind.
var (
	ErrEmptyOrBlank          = &Error{Kind: KindEmptyOrBlank, Pos: -1}
	ErrIllegalCharacter      = &Error{Kind: KindIllegalCharacter, Pos: -1}
	ErrUnbalancedParentheses = &Error{Kind: KindUnbalancedParentheses, Pos: -1}
	ErrBannedSequence        = &Error{Kind: KindBannedSequence, Pos: -1}
	ErrInvalidNumber         = &Error{Kind: KindInvalidNumber, Pos: -1}
	ErrMismatchedParentheses = &Error{Kind: KindMismatchedParentheses, Pos: -1}
	ErrTrailingTokens        = &Error{Kind: KindTrailingTokens, Pos: -1}
	ErrDivisionByZero        = &Error{Kind: KindDivisionByZero, Pos: -1}
	ErrInvalidResult         = &Error{Kind: KindInvalidResult, Pos: -1}
	ErrNestingTooDeep        = &Error{Kind: KindNestingTooDeep, Pos: -1}
)

// Error is the failure returned by every stage of the evaluation pipeline.
// Pos is the byte offset in the original expression, or -1 when the failure
// is not tied to a position.
type Error struct {
	Kind    Kind
	Message string
	Pos     int
	Err     error
}

func newError(kind Kind, pos int, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Pos >= 0 {
		return fmt.Sprintf("%s at position %d", msg, e.Pos)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so callers can test against the
// package sentinels without comparing messages.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
