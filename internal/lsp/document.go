package lsp

import (
	"strings"

	"formulae/internal/ast"
	"formulae/internal/diag"
	"formulae/internal/lint"
	"formulae/internal/parser"
)

// Line is one formula line of a document.
type Line struct {
	Number int // 1-based
	Text   string
	Expr   ast.Expression // nil when Err is set
	Err    error
}

// Document is a parsed *.formula file: one formula per non-blank line that
// does not start with '#'.
type Document struct {
	Text  string
	Lines []Line
}

func IsFormulaURI(uri string) bool {
	return strings.HasSuffix(strings.ToLower(uri), ".formula")
}

func Analyze(text string, opts ...parser.Option) *Document {
	doc := &Document{Text: text}
	for i, raw := range splitLines(text) {
		raw = strings.TrimSuffix(raw, "\r")
		trim := strings.TrimSpace(raw)
		if trim == "" || strings.HasPrefix(trim, "#") {
			continue
		}
		// Parse the untrimmed line so token columns match the editor.
		expr, err := parser.ParseString(raw, opts...)
		doc.Lines = append(doc.Lines, Line{Number: i + 1, Text: raw, Expr: expr, Err: err})
	}
	return doc
}

// LineAt returns the formula on the given 1-based line.
func (d *Document) LineAt(number int) (Line, bool) {
	for _, l := range d.Lines {
		if l.Number == number {
			return l, true
		}
	}
	return Line{}, false
}

// Diagnostics returns, in document coordinates, one error per line that
// failed to parse and the lint warnings of every line that parsed.
func (d *Document) Diagnostics() []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, l := range d.Lines {
		if l.Err != nil {
			dg := diag.FromError(l.Err)
			dg.Range = dg.Range.Shift(l.Number)
			out = append(out, dg)
			continue
		}
		for _, w := range lint.Run(l.Expr) {
			w.Range = w.Range.Shift(l.Number)
			out = append(out, w)
		}
	}
	return out
}

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}
