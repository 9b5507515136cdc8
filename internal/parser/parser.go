package parser

import (
	"golang.org/x/text/unicode/norm"

	"formulae/internal/ast"
	"formulae/internal/lexer"
	"formulae/internal/limits"
	"formulae/internal/numlit"
	"formulae/internal/token"
)

// Parser is a recursive-descent parser over a token slice. A Parser is
// single-use and not safe for concurrent use.
type Parser struct {
	tokens  []token.Token
	current int
	depth   *limits.Depth
}

/* -------------------- constructor -------------------- */

func New(tokens []token.Token, opts ...Option) *Parser {
	o := options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	return &Parser{
		tokens: tokens,
		depth:  limits.NewDepth(o.maxDepth),
	}
}

// Parse parses tokens as a single formula and requires that every token up
// to EOF is consumed.
func Parse(tokens []token.Token, opts ...Option) (ast.Expression, error) {
	return New(tokens, opts...).Parse()
}

// ParseString tokenizes src and parses it as a single formula.
func ParseString(src string, opts ...Option) (ast.Expression, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(toks, opts...)
}

/* -------------------- entry points -------------------- */

// Parse parses one expression and then asserts end of input.
func (p *Parser) Parse() (ast.Expression, error) {
	expr, err := p.Expression()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		tok := p.peek()
		return nil, errorf(KindTrailingInput, tok, "unexpected '%s' after expression", tok.Lexeme)
	}
	return expr, nil
}

// Expression parses exactly one expression. Tokens after it are left
// unconsumed; Peek reports the first of them.
func (p *Parser) Expression() (ast.Expression, error) {
	return p.expression()
}

// Peek returns the token under the cursor.
func (p *Parser) Peek() token.Token { return p.peek() }

/* -------------------- grammar -------------------- */

func (p *Parser) expression() (ast.Expression, error) {
	if err := p.depth.Enter(); err != nil {
		return nil, tooDeep(p.peek(), err)
	}
	defer p.depth.Leave()
	return p.tilde()
}

// tilde accepts at most one '~'; a second one is left for the caller.
func (p *Parser) tilde() (ast.Expression, error) {
	expr, err := p.randomEffect()
	if err != nil {
		return nil, err
	}
	if p.match(token.TILDE) {
		operator := p.previous()
		right, err := p.addition()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) randomEffect() (ast.Expression, error) {
	return p.binary(p.addition, token.PIPE)
}

func (p *Parser) addition() (ast.Expression, error) {
	return p.binary(p.multiplication, token.MINUS, token.PLUS)
}

func (p *Parser) multiplication() (ast.Expression, error) {
	return p.binary(p.interaction, token.STAR, token.SLASH)
}

func (p *Parser) interaction() (ast.Expression, error) {
	return p.binary(p.multipleInteraction, token.COLON)
}

func (p *Parser) multipleInteraction() (ast.Expression, error) {
	return p.binary(p.unary, token.STAR_STAR)
}

// binary parses a left-associative chain of the given operators whose
// operands come from next.
func (p *Parser) binary(next func() (ast.Expression, error), types ...token.Type) (ast.Expression, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(types...) {
		operator := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expression, error) {
	if p.match(token.PLUS, token.MINUS) {
		operator := p.previous()
		if err := p.depth.Enter(); err != nil {
			return nil, tooDeep(operator, err)
		}
		defer p.depth.Leave()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: operator, Operand: right}, nil
	}
	return p.call()
}

func (p *Parser) call() (ast.Expression, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.match(token.LEFT_PAREN) {
		expr, err = p.finishCall(expr)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *Parser) finishCall(callee ast.Expression) (ast.Expression, error) {
	paren := p.previous()
	args := []ast.Expression{}
	if !p.check(token.RIGHT_PAREN) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(token.RIGHT_PAREN, "expect ')' after arguments"); err != nil {
		return nil, err
	}
	return &ast.Call{Token: paren, Callee: callee, Args: args}, nil
}

func (p *Parser) primary() (ast.Expression, error) {
	switch {
	case p.match(token.NUMBER):
		tok := p.previous()
		value, err := numberValue(tok)
		if err != nil {
			return nil, errorf(KindInvalidNumber, tok, "%s", err.Error())
		}
		return &ast.Literal{Token: tok, Value: value}, nil

	case p.match(token.IDENTIFIER):
		return p.variable(normalizeName(p.previous()))

	case p.match(token.BQNAME):
		return &ast.QuotedName{Token: normalizeName(p.previous())}, nil

	case p.match(token.LEFT_PAREN):
		paren := p.previous()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHT_PAREN, "expect ')' after expression"); err != nil {
			return nil, err
		}
		return &ast.Grouping{Token: paren, Inner: expr}, nil

	case p.match(token.LEFT_BRACE):
		// {x + 1} is sugar for I(x + 1).
		brace := p.previous()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHT_BRACE, "expect '}' after expression"); err != nil {
			return nil, err
		}
		callee := &ast.Variable{Name: token.Identifier("I", brace)}
		return &ast.Call{Token: brace, Callee: callee, Args: []ast.Expression{expr}}, nil
	}

	return nil, errorf(KindExpectExpression, p.peek(), "expect expression")
}

func (p *Parser) variable(name token.Token) (ast.Expression, error) {
	if !p.match(token.LEFT_BRACKET) {
		return &ast.Variable{Name: name}, nil
	}
	start := p.peek()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	level, ok := expr.(*ast.Variable)
	if !ok {
		return nil, errorf(KindInvalidLevel, start, "subset notation only allows a level name")
	}
	if _, err := p.consume(token.RIGHT_BRACKET, "expect ']' after level name"); err != nil {
		return nil, err
	}
	return &ast.Variable{Name: name, Level: level}, nil
}

/* -------------------- helpers -------------------- */

// numberValue returns the value of a NUMBER token. Tokens from Tokenize
// carry a float64; tokens built elsewhere may carry an integer or nothing,
// in which case the lexeme is parsed.
func numberValue(tok token.Token) (float64, error) {
	switch v := tok.Literal.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	}
	return numlit.Parse(tok.Lexeme)
}

// normalizeName returns tok with its lexeme in NFC, so composed and
// decomposed spellings of a name are the same name in the tree.
func normalizeName(tok token.Token) token.Token {
	tok.Lexeme = norm.NFC.String(tok.Lexeme)
	return tok
}

func (p *Parser) atEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

// peek returns the token under the cursor. A slice without a trailing EOF
// behaves as if it had one.
func (p *Parser) peek() token.Token {
	if p.current < len(p.tokens) {
		return p.tokens[p.current]
	}
	eof := token.Token{Type: token.EOF, Line: 1, Col: 1}
	if n := len(p.tokens); n > 0 {
		last := p.tokens[n-1]
		eof.Line = last.Line
		eof.Col = last.Col + len(last.Lexeme)
	}
	return eof
}

func (p *Parser) previous() token.Token {
	if p.current == 0 {
		return token.Token{}
	}
	return p.tokens[p.current-1]
}

func (p *Parser) check(types ...token.Type) bool {
	if p.atEnd() {
		return false
	}
	t := p.peek().Type
	for _, want := range types {
		if t == want {
			return true
		}
	}
	return false
}

func (p *Parser) match(types ...token.Type) bool {
	if p.check(types...) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consume(t token.Type, msg string) (token.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return token.Token{}, errorf(KindExpectToken, p.peek(), "%s", msg)
}
