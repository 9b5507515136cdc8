package parser

import (
	"fmt"

	"formulae/internal/diag"
	"formulae/internal/token"
)

// Kind classifies a ParseError.
type Kind int

const (
	KindExpectToken Kind = iota + 1
	KindInvalidLevel
	KindExpectExpression
	KindTrailingInput
	KindTooDeep
	KindInvalidNumber
)

var kindCodes = map[Kind]string{
	KindExpectToken:      "FP0001",
	KindInvalidLevel:     "FP0002",
	KindExpectExpression: "FP0003",
	KindTrailingInput:    "FP0004",
	KindTooDeep:          "FP0005",
	KindInvalidNumber:    "FP0006",
}

func (k Kind) Code() string { return kindCodes[k] }

func (k Kind) String() string {
	switch k {
	case KindExpectToken:
		return "expect token"
	case KindInvalidLevel:
		return "invalid level"
	case KindExpectExpression:
		return "expect expression"
	case KindTrailingInput:
		return "trailing input"
	case KindTooDeep:
		return "too deep"
	case KindInvalidNumber:
		return "invalid number"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseError is returned for every grammar violation. Token is the token the
// parser was looking at when it gave up.
type ParseError struct {
	Kind    Kind
	Message string
	Token   token.Token
	err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Token.Line, e.Token.Col, e.Message)
}

func (e *ParseError) Unwrap() error { return e.err }

func (e *ParseError) Diagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Code:     e.Kind.Code(),
		Message:  e.Message,
		Severity: diag.SeverityError,
		Range:    diag.RangeOf(e.Token.Line, e.Token.Col, e.Token.Lexeme),
	}
}

func errorf(kind Kind, tok token.Token, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Token: tok, Message: fmt.Sprintf(format, args...)}
}

func tooDeep(tok token.Token, cause error) *ParseError {
	return &ParseError{Kind: KindTooDeep, Token: tok, Message: cause.Error(), err: cause}
}
