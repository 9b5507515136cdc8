package ast

import (
	"bytes"

	"formulae/internal/numlit"
	"formulae/internal/token"
)

// Expression is implemented by every formula node. The set is closed: the
// marker method is unexported, so exhaustive type switches over the node
// types below cover every tree.
type Expression interface {
	TokenLiteral() string
	String() string
	expressionNode()
}

/* -------------------- Leaves -------------------- */

type Literal struct {
	Token token.Token // NUMBER
	Value float64
}

func (*Literal) expressionNode()        {}
func (l *Literal) TokenLiteral() string { return l.Token.Lexeme }
func (l *Literal) String() string {
	if l.Token.Lexeme != "" {
		return l.Token.Lexeme
	}
	return numlit.Format(l.Value)
}

// Variable is a bare identifier, optionally restricted to one categorical
// level with x[level].
type Variable struct {
	Name  token.Token // IDENTIFIER
	Level *Variable   // may be nil
}

func (*Variable) expressionNode()        {}
func (v *Variable) TokenLiteral() string { return v.Name.Lexeme }
func (v *Variable) String() string {
	if v.Level == nil {
		return v.Name.Lexeme
	}
	return v.Name.Lexeme + "[" + v.Level.String() + "]"
}

// QuotedName is an identifier written between backquotes. Token.Lexeme keeps
// the backquotes.
type QuotedName struct {
	Token token.Token // BQNAME
}

func (*QuotedName) expressionNode()        {}
func (q *QuotedName) TokenLiteral() string { return q.Token.Lexeme }
func (q *QuotedName) String() string       { return q.Token.Lexeme }

// Name returns the identifier without its backquotes.
func (q *QuotedName) Name() string {
	lex := q.Token.Lexeme
	if len(lex) >= 2 && lex[0] == '`' && lex[len(lex)-1] == '`' {
		return lex[1 : len(lex)-1]
	}
	return lex
}

/* -------------------- Composites -------------------- */

type Grouping struct {
	Token token.Token // '('
	Inner Expression
}

func (*Grouping) expressionNode()        {}
func (g *Grouping) TokenLiteral() string { return g.Token.Lexeme }
func (g *Grouping) String() string       { return "(" + g.Inner.String() + ")" }

type Unary struct {
	Operator token.Token // '+' or '-'
	Operand  Expression
}

func (*Unary) expressionNode()        {}
func (u *Unary) TokenLiteral() string { return u.Operator.Lexeme }
func (u *Unary) String() string       { return u.Operator.Lexeme + u.Operand.String() }

// Binary covers every infix operator: ~ | + - * / : **.
type Binary struct {
	Left     Expression
	Operator token.Token
	Right    Expression
}

func (*Binary) expressionNode()        {}
func (b *Binary) TokenLiteral() string { return b.Operator.Lexeme }
func (b *Binary) String() string {
	var out bytes.Buffer
	out.WriteString(b.Left.String())
	out.WriteString(" ")
	out.WriteString(b.Operator.Lexeme)
	out.WriteString(" ")
	out.WriteString(b.Right.String())
	return out.String()
}

// Call is a call whose callee is still an expression, as produced by the
// parser. Chained calls nest: f(x)(y) is Call{Callee: Call{f, [x]}, [y]}.
type Call struct {
	Token  token.Token // '(' or the '{' of a brace block
	Callee Expression
	Args   []Expression
}

func (*Call) expressionNode()        {}
func (c *Call) TokenLiteral() string { return c.Token.Lexeme }
func (c *Call) String() string       { return c.Callee.String() + argList(c.Args) }

// ResolvedCall is a call whose callee has been resolved to a plain function
// name by a later pass.
type ResolvedCall struct {
	Token token.Token
	Name  string
	Args  []Expression
}

func (*ResolvedCall) expressionNode()        {}
func (c *ResolvedCall) TokenLiteral() string { return c.Token.Lexeme }
func (c *ResolvedCall) String() string       { return c.Name + argList(c.Args) }

func argList(args []Expression) string {
	var out bytes.Buffer
	out.WriteString("(")
	for i, a := range args {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(a.String())
	}
	out.WriteString(")")
	return out.String()
}
