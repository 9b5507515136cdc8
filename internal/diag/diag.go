package diag

import (
	"errors"
	"fmt"
)

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

type Range struct {
	Line   int // 1-based
	Col    int // 1-based
	Length int // best-effort; can be 1 if unknown
}

// RangeOf covers lexeme starting at line:col. Empty lexemes (EOF) get length 1.
func RangeOf(line, col int, lexeme string) Range {
	length := len(lexeme)
	if length == 0 {
		length = 1
	}
	return Range{Line: line, Col: col, Length: length}
}

// Shift moves a range that was computed for a single line to the given
// 1-based line of a larger document.
func (r Range) Shift(line int) Range {
	r.Line = line
	return r
}

type Diagnostic struct {
	Code     string
	Message  string
	Severity Severity
	Range    Range
}

func (d Diagnostic) Format(path string) string {
	if d.Code != "" {
		return fmt.Sprintf("%s:%d:%d: %s %s: %s", path, d.Range.Line, d.Range.Col, d.Severity.String(), d.Code, d.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s", path, d.Range.Line, d.Range.Col, d.Severity.String(), d.Message)
}

// Diagnoser is implemented by errors that can describe themselves as a
// Diagnostic (lexer and parser errors).
type Diagnoser interface {
	Diagnostic() Diagnostic
}

// FromError converts err to a Diagnostic, falling back to a generic error
// at line 1, column 1.
func FromError(err error) Diagnostic {
	var d Diagnoser
	if errors.As(err, &d) {
		return d.Diagnostic()
	}
	return Diagnostic{
		Message:  err.Error(),
		Severity: SeverityError,
		Range:    Range{Line: 1, Col: 1, Length: 1},
	}
}
