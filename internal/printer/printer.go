package printer

import (
	"bytes"
	"strconv"

	"formulae/internal/ast"
	"formulae/internal/numlit"
)

// Mode selects how data names are rendered.
type Mode int

const (
	// ModeLookup renders every variable as an index into the data
	// container, e.g. DATA["x"]. The output is meant to be embedded in
	// generated evaluation code.
	ModeLookup Mode = iota
	// ModeName renders variables as their bare names and quoted names with
	// their backquotes. The output is meant for labels.
	ModeName
)

func (m Mode) String() string {
	switch m {
	case ModeLookup:
		return "lookup"
	case ModeName:
		return "name"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMode maps "lookup" and "name" to their Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "lookup":
		return ModeLookup, true
	case "name":
		return ModeName, true
	}
	return 0, false
}

const DefaultDataName = "DATA"

type Option func(*Printer)

// WithDataName sets the identifier of the data container used in lookup mode.
func WithDataName(name string) Option {
	return func(p *Printer) {
		if name != "" {
			p.dataName = name
		}
	}
}

// Printer renders a tree to text. It never modifies the tree.
type Printer struct {
	mode     Mode
	dataName string
	buf      bytes.Buffer
}

func New(mode Mode, opts ...Option) *Printer {
	p := &Printer{mode: mode, dataName: DefaultDataName}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Printer) Mode() Mode { return p.mode }

// Print renders expr. A Printer may be reused but not shared between
// goroutines.
func (p *Printer) Print(expr ast.Expression) string {
	p.buf.Reset()
	p.expr(expr)
	return p.buf.String()
}

// Lookup renders expr in lookup mode with the default container name.
func Lookup(expr ast.Expression) string { return New(ModeLookup).Print(expr) }

// Name renders expr in name mode.
func Name(expr ast.Expression) string { return New(ModeName).Print(expr) }

func (p *Printer) write(s string) {
	p.buf.WriteString(s)
}

func (p *Printer) expr(e ast.Expression) {
	switch n := e.(type) {
	case *ast.Literal:
		p.write(numlit.Format(n.Value))
	case *ast.Variable:
		p.name(n.Name.Lexeme, n.Name.Lexeme)
	case *ast.QuotedName:
		p.name(n.Name(), n.Token.Lexeme)
	case *ast.Grouping:
		// Precedence is structural here; parentheses are not re-emitted.
		p.expr(n.Inner)
	case *ast.Unary:
		p.write(n.Operator.Lexeme)
		p.write(" ")
		p.expr(n.Operand)
	case *ast.Binary:
		p.expr(n.Left)
		p.write(" ")
		p.write(n.Operator.Lexeme)
		p.write(" ")
		p.expr(n.Right)
	case *ast.Call:
		p.callee(n.Callee)
		p.args(n.Args)
	case *ast.ResolvedCall:
		p.write(n.Name)
		p.args(n.Args)
	}
}

// name writes a data reference. bare is the name without decoration and
// label is what name mode shows.
func (p *Printer) name(bare, label string) {
	if p.mode == ModeName {
		p.write(label)
		return
	}
	p.write(p.dataName)
	p.write("[")
	p.write(strconv.Quote(bare))
	p.write("]")
}

// callee renders an unresolved callee. A plain variable is a function name,
// not a data reference, so it is written bare in both modes.
func (p *Printer) callee(e ast.Expression) {
	if v, ok := e.(*ast.Variable); ok {
		p.write(v.Name.Lexeme)
		return
	}
	p.expr(e)
}

func (p *Printer) args(args []ast.Expression) {
	p.write("(")
	for i, a := range args {
		if i > 0 {
			p.write(", ")
		}
		p.expr(a)
	}
	p.write(")")
}
