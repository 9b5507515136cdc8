package lint

import (
	"fmt"

	"formulae/internal/ast"
	"formulae/internal/diag"
	"formulae/internal/numlit"
	"formulae/internal/token"
)

const (
	CodeDuplicateTerm   = "FW0001"
	CodeInterceptValue  = "FW0002"
	CodeRedundantParens = "FW0003"
	CodeNeedlessQuotes  = "FW0004"
)

type Runner struct {
	diags []diag.Diagnostic
	opts  Options
}

func (r *Runner) warn(tok token.Token, code string, msg string) {
	r.diags = append(r.diags, diag.Diagnostic{
		Code:     code,
		Message:  msg,
		Severity: diag.SeverityWarning,
		Range:    diag.RangeOf(tok.Line, tok.Col, tok.Lexeme),
	})
}

func (r *Runner) walkFormula(expr ast.Expression) {
	rhs := expr
	if b, ok := expr.(*ast.Binary); ok && b.Operator.Type == token.TILDE {
		rhs = b.Right
	}
	r.checkTerms(rhs)

	ast.Inspect(expr, func(n ast.Expression) bool {
		switch n := n.(type) {
		case *ast.Grouping:
			r.checkGrouping(n)
		case *ast.QuotedName:
			r.checkQuotes(n)
		}
		return true
	})
}

// checkTerms looks at the additive terms of one side of a formula.
func (r *Runner) checkTerms(side ast.Expression) {
	seen := map[string]bool{}
	for _, term := range additiveTerms(side) {
		key := term.expr.String()
		if seen[key] && !term.negated {
			r.warn(firstToken(term.expr), CodeDuplicateTerm, fmt.Sprintf("duplicate term: %s", key))
		}
		seen[key] = true

		if lit, ok := term.expr.(*ast.Literal); ok && lit.Value != 0 && lit.Value != 1 {
			r.warn(lit.Token, CodeInterceptValue, fmt.Sprintf("numeric term %s is neither 0 nor 1", numlit.Format(lit.Value)))
		}
	}
}

func (r *Runner) checkGrouping(g *ast.Grouping) {
	if !r.opts.CheckRedundantParens {
		return
	}
	switch g.Inner.(type) {
	case *ast.Variable, *ast.QuotedName, *ast.Literal, *ast.Grouping:
		r.warn(g.Token, CodeRedundantParens, fmt.Sprintf("redundant parentheses around %s", g.Inner.String()))
	}
}

func (r *Runner) checkQuotes(q *ast.QuotedName) {
	name := q.Name()
	if name == "" || !isPlainIdentifier(name) {
		return
	}
	r.warn(q.Token, CodeNeedlessQuotes, fmt.Sprintf("backquotes are not needed around %s", name))
}

type term struct {
	expr    ast.Expression
	negated bool
}

// additiveTerms splits a chain of + and - into its operands. Parentheses are
// not looked through: (a + b) is one term.
func additiveTerms(e ast.Expression) []term {
	b, ok := e.(*ast.Binary)
	if !ok || (b.Operator.Type != token.PLUS && b.Operator.Type != token.MINUS) {
		return []term{{expr: e}}
	}
	out := additiveTerms(b.Left)
	for _, t := range additiveTerms(b.Right) {
		if b.Operator.Type == token.MINUS {
			t.negated = !t.negated
		}
		out = append(out, t)
	}
	return out
}

func firstToken(e ast.Expression) token.Token {
	switch n := e.(type) {
	case *ast.Literal:
		return n.Token
	case *ast.Variable:
		return n.Name
	case *ast.QuotedName:
		return n.Token
	case *ast.Grouping:
		return n.Token
	case *ast.Unary:
		return n.Operator
	case *ast.Binary:
		return firstToken(n.Left)
	case *ast.Call:
		return firstToken(n.Callee)
	case *ast.ResolvedCall:
		return n.Token
	}
	return token.Token{}
}

// isPlainIdentifier reports whether s would lex as a single IDENTIFIER.
func isPlainIdentifier(s string) bool {
	if len(s) > 1 && s[0] == '.' && '0' <= s[1] && s[1] <= '9' {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '.' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z'):
		case i > 0 && '0' <= r && r <= '9':
		default:
			return false
		}
	}
	return true
}
