package token

type Type string

type Token struct {
	Type   Type
	Lexeme string
	// Literal holds the parsed float64 for NUMBER and the error message for
	// ILLEGAL; nil otherwise.
	Literal any
	Line    int
	Col     int
}

const (
	// Special
	ILLEGAL Type = "ILLEGAL"
	EOF     Type = "EOF"

	// Operators
	TILDE     Type = "TILDE"
	PIPE      Type = "PIPE"
	MINUS     Type = "MINUS"
	PLUS      Type = "PLUS"
	STAR      Type = "STAR"
	SLASH     Type = "SLASH"
	COLON     Type = "COLON"
	STAR_STAR Type = "STAR_STAR"

	// Delimiters
	LEFT_PAREN    Type = "LEFT_PAREN"
	RIGHT_PAREN   Type = "RIGHT_PAREN"
	LEFT_BRACKET  Type = "LEFT_BRACKET"
	RIGHT_BRACKET Type = "RIGHT_BRACKET"
	LEFT_BRACE    Type = "LEFT_BRACE"
	RIGHT_BRACE   Type = "RIGHT_BRACE"
	COMMA         Type = "COMMA"

	// Identifiers + literals
	NUMBER     Type = "NUMBER"
	IDENTIFIER Type = "IDENTIFIER"
	BQNAME     Type = "BQNAME"
)

var single = map[byte]Type{
	'~': TILDE,
	'|': PIPE,
	'-': MINUS,
	'+': PLUS,
	'*': STAR,
	'/': SLASH,
	':': COLON,
	'(': LEFT_PAREN,
	')': RIGHT_PAREN,
	'[': LEFT_BRACKET,
	']': RIGHT_BRACKET,
	'{': LEFT_BRACE,
	'}': RIGHT_BRACE,
	',': COMMA,
}

// LookupSingle returns the type of a one-character token.
func LookupSingle(ch byte) (Type, bool) {
	t, ok := single[ch]
	return t, ok
}

// IsOperator reports whether t is a prefix or infix operator.
func (t Type) IsOperator() bool {
	switch t {
	case TILDE, PIPE, MINUS, PLUS, STAR, SLASH, COLON, STAR_STAR:
		return true
	}
	return false
}

// Identifier builds a synthetic IDENTIFIER token positioned at pos.
func Identifier(name string, pos Token) Token {
	return Token{Type: IDENTIFIER, Lexeme: name, Line: pos.Line, Col: pos.Col}
}
