package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"formulae/internal/diag"
	"formulae/internal/numlit"
	"formulae/internal/token"
)

type Lexer struct {
	input string

	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination

	line int // 1-based
	col  int // 1-based column of current char
}

// New returns a lexer over input. Lexemes and positions refer to input as
// given; names are NFC-normalized later, when the parser builds the tree.
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0, // readChar() will advance to col=1 for first char
	}
	l.readChar()
	return l
}

// ScanError reports the first ILLEGAL token produced by Tokenize.
type ScanError struct {
	Message string
	Token   token.Token
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Token.Line, e.Token.Col, e.Message)
}

func (e *ScanError) Diagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Code:     "FL0001",
		Message:  e.Message,
		Severity: diag.SeverityError,
		Range:    diag.RangeOf(e.Token.Line, e.Token.Col, e.Token.Lexeme),
	}
}

// Tokenize scans src to completion. The returned slice always ends with EOF.
func Tokenize(src string) ([]token.Token, error) {
	l := New(src)
	toks := make([]token.Token, 0, len(src)/2+1)
	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			msg, _ := tok.Literal.(string)
			return nil, &ScanError{Message: msg, Token: tok}
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks, nil
		}
	}
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	if l.ch == 0 {
		return l.newToken(token.EOF, "", l.line, l.col)
	}

	startLine, startCol := l.line, l.col
	startIdx := l.position

	switch l.ch {
	case '*':
		if l.peekChar() == '*' {
			l.readChar()
			l.readChar()
			return l.newToken(token.STAR_STAR, "**", startLine, startCol)
		}
	case '`':
		return l.readQuotedName(startLine, startCol, startIdx)
	case '.':
		if isDigit(l.peekChar()) {
			return l.readNumberToken(startLine, startCol)
		}
	}

	if tt, ok := token.LookupSingle(l.ch); ok {
		tok := l.newToken(tt, string(l.ch), startLine, startCol)
		l.readChar()
		return tok
	}

	if isDigit(l.ch) {
		return l.readNumberToken(startLine, startCol)
	}

	if r, size := l.currentRune(); isIdentStart(r) {
		l.advance(size)
		for {
			r, size = l.currentRune()
			if !isIdentPart(r) {
				break
			}
			l.advance(size)
		}
		return l.newToken(token.IDENTIFIER, l.input[startIdx:l.position], startLine, startCol)
	}

	r, size := l.currentRune()
	l.advance(size)
	tok := l.newToken(token.ILLEGAL, l.input[startIdx:l.position], startLine, startCol)
	tok.Literal = fmt.Sprintf("unexpected character %q", r)
	return tok
}

func (l *Lexer) newToken(t token.Type, lit string, line, col int) token.Token {
	return token.Token{
		Type:   t,
		Lexeme: lit,
		Line:   line,
		Col:    col,
	}
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		// EOF sits one column past the last character.
		if l.position < len(l.input) || l.col == 0 {
			l.col++
		}
		l.ch = 0
		l.position = l.readPosition
		return
	}

	l.ch = l.input[l.readPosition]
	l.position = l.readPosition
	l.readPosition++

	// Track line/col for current char
	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		l.readChar()
	}
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) currentRune() (rune, int) {
	if l.position >= len(l.input) {
		return 0, 0
	}
	if l.ch < utf8.RuneSelf {
		return rune(l.ch), 1
	}
	return utf8.DecodeRuneInString(l.input[l.position:])
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

func (l *Lexer) readNumberToken(startLine, startCol int) token.Token {
	start := l.position
	for isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	if l.ch == '.' {
		l.readChar()
		for isDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
	}
	if (l.ch == 'e' || l.ch == 'E') && l.exponentFollows() {
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
	}

	lit := l.input[start:l.position]
	v, err := numlit.Parse(lit)
	if err != nil {
		tok := l.newToken(token.ILLEGAL, lit, startLine, startCol)
		tok.Literal = err.Error()
		return tok
	}
	tok := l.newToken(token.NUMBER, lit, startLine, startCol)
	tok.Literal = v
	return tok
}

// exponentFollows reports whether the 'e' under the cursor starts an exponent
// rather than an identifier glued to the number.
func (l *Lexer) exponentFollows() bool {
	next := l.peekChar()
	if isDigit(next) {
		return true
	}
	if next == '+' || next == '-' {
		if l.readPosition+1 < len(l.input) {
			return isDigit(l.input[l.readPosition+1])
		}
	}
	return false
}

func (l *Lexer) readQuotedName(startLine, startCol, startIdx int) token.Token {
	l.readChar() // move past opening backtick
	for l.ch != 0 && l.ch != '`' {
		l.readChar()
	}
	if l.ch != '`' {
		tok := l.newToken(token.ILLEGAL, l.input[startIdx:l.position], startLine, startCol)
		tok.Literal = "unterminated quoted name"
		return tok
	}
	l.readChar() // consume closing backtick
	return l.newToken(token.BQNAME, l.input[startIdx:l.position], startLine, startCol)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '.' || unicode.IsLetter(r)
}

// Combining marks continue a name so decomposed accents stay in one token.
func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r) || unicode.In(r, unicode.Mn, unicode.Mc)
}
