package lint

import (
	"formulae/internal/ast"
	"formulae/internal/diag"
)

type Options struct {
	CheckRedundantParens bool
}

func DefaultOptions() Options {
	return Options{CheckRedundantParens: true}
}

type Linter struct {
	opts Options
}

func New() *Linter {
	return &Linter{opts: DefaultOptions()}
}

func NewWithOptions(opts Options) *Linter {
	return &Linter{opts: opts}
}

func Run(expr ast.Expression) []diag.Diagnostic {
	return New().Run(expr)
}

func RunWithOptions(expr ast.Expression, opts Options) []diag.Diagnostic {
	return NewWithOptions(opts).Run(expr)
}

// Run returns warnings for a parsed formula. Positions are those of the
// tokens in expr, so a formula parsed from one line of a document needs its
// ranges shifted by the caller.
func (l *Linter) Run(expr ast.Expression) []diag.Diagnostic {
	if expr == nil {
		return nil
	}
	r := &Runner{opts: l.opts}
	r.walkFormula(expr)
	return r.diags
}
