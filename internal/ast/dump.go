package ast

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented outline of the tree to w, one node per line.
func Dump(w io.Writer, expr Expression) error {
	d := dumper{w: w}
	d.node(expr, 0)
	return d.err
}

type dumper struct {
	w   io.Writer
	err error
}

func (d *dumper) line(depth int, format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, "%s"+format+"\n", append([]any{strings.Repeat("  ", depth)}, args...)...)
}

func (d *dumper) node(e Expression, depth int) {
	switch n := e.(type) {
	case *Literal:
		d.line(depth, "Literal %s", n.Token.Lexeme)
	case *Variable:
		if n.Level != nil {
			d.line(depth, "Variable %s [level %s]", n.Name.Lexeme, n.Level.Name.Lexeme)
			return
		}
		d.line(depth, "Variable %s", n.Name.Lexeme)
	case *QuotedName:
		d.line(depth, "QuotedName %s", n.Token.Lexeme)
	case *Grouping:
		d.line(depth, "Grouping")
		d.node(n.Inner, depth+1)
	case *Unary:
		d.line(depth, "Unary %s", n.Operator.Lexeme)
		d.node(n.Operand, depth+1)
	case *Binary:
		d.line(depth, "Binary %s", n.Operator.Lexeme)
		d.node(n.Left, depth+1)
		d.node(n.Right, depth+1)
	case *Call:
		d.line(depth, "Call (%d args)", len(n.Args))
		d.node(n.Callee, depth+1)
		for _, a := range n.Args {
			d.node(a, depth+1)
		}
	case *ResolvedCall:
		d.line(depth, "ResolvedCall %s (%d args)", n.Name, len(n.Args))
		for _, a := range n.Args {
			d.node(a, depth+1)
		}
	case nil:
		d.line(depth, "<nil>")
	}
}
