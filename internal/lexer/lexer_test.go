package lexer

import (
	"errors"
	"testing"

	"formulae/internal/token"
)

func TestLexer_Formula(t *testing.T) {
	input := "y ~ x + log(z) * a:b ** 2 - (1 | g) + {w / 2} + h[lvl], `my var`"

	tests := []struct {
		typ token.Type
		lit string
	}{
		{token.IDENTIFIER, "y"},
		{token.TILDE, "~"},
		{token.IDENTIFIER, "x"},
		{token.PLUS, "+"},
		{token.IDENTIFIER, "log"},
		{token.LEFT_PAREN, "("},
		{token.IDENTIFIER, "z"},
		{token.RIGHT_PAREN, ")"},
		{token.STAR, "*"},
		{token.IDENTIFIER, "a"},
		{token.COLON, ":"},
		{token.IDENTIFIER, "b"},
		{token.STAR_STAR, "**"},
		{token.NUMBER, "2"},
		{token.MINUS, "-"},
		{token.LEFT_PAREN, "("},
		{token.NUMBER, "1"},
		{token.PIPE, "|"},
		{token.IDENTIFIER, "g"},
		{token.RIGHT_PAREN, ")"},
		{token.PLUS, "+"},
		{token.LEFT_BRACE, "{"},
		{token.IDENTIFIER, "w"},
		{token.SLASH, "/"},
		{token.NUMBER, "2"},
		{token.RIGHT_BRACE, "}"},
		{token.PLUS, "+"},
		{token.IDENTIFIER, "h"},
		{token.LEFT_BRACKET, "["},
		{token.IDENTIFIER, "lvl"},
		{token.RIGHT_BRACKET, "]"},
		{token.COMMA, ","},
		{token.BQNAME, "`my var`"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.typ {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q (lexeme=%q)", i, tt.typ, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.lit {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.lit, tok.Lexeme)
		}
	}
}

func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		input string
		lit   string
		value float64
	}{
		{"42", "42", 42},
		{"1_000", "1_000", 1000},
		{"3.25", "3.25", 3.25},
		{".5", ".5", 0.5},
		{"1e3", "1e3", 1000},
		{"2.5E-2", "2.5E-2", 0.025},
	}
	for _, tt := range tests {
		toks, err := Tokenize(tt.input)
		if err != nil {
			t.Fatalf("Tokenize(%q) error: %v", tt.input, err)
		}
		if len(toks) != 2 {
			t.Fatalf("Tokenize(%q) got %d tokens", tt.input, len(toks))
		}
		tok := toks[0]
		if tok.Type != token.NUMBER || tok.Lexeme != tt.lit {
			t.Fatalf("Tokenize(%q) got %s %q", tt.input, tok.Type, tok.Lexeme)
		}
		if v, ok := tok.Literal.(float64); !ok || v != tt.value {
			t.Fatalf("Tokenize(%q) literal = %#v, want %v", tt.input, tok.Literal, tt.value)
		}
	}
}

func TestLexer_ExponentNeedsDigits(t *testing.T) {
	// "2exp" is the number 2 followed by the identifier exp.
	toks, err := Tokenize("2exp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 3 || toks[0].Lexeme != "2" || toks[1].Type != token.IDENTIFIER || toks[1].Lexeme != "exp" {
		t.Fatalf("unexpected tokens %+v", toks)
	}
}

func TestLexer_Identifiers(t *testing.T) {
	toks, err := Tokenize("np.log _x x1 gr\u00f6\u00dfe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"np.log", "_x", "x1", "gr\u00f6\u00dfe", ""}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].Lexeme != w {
			t.Fatalf("toks[%d] = %q, want %q", i, toks[i].Lexeme, w)
		}
	}
}

func TestLexer_Positions(t *testing.T) {
	toks, err := Tokenize("y ~\n  x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pos := [][2]int{{1, 1}, {1, 3}, {2, 3}}
	for i, p := range pos {
		if toks[i].Line != p[0] || toks[i].Col != p[1] {
			t.Fatalf("toks[%d] at %d:%d, want %d:%d", i, toks[i].Line, toks[i].Col, p[0], p[1])
		}
	}
}

func TestLexer_DecomposedAccentKeepsSourcePositions(t *testing.T) {
	// "e" + U+0301 is three bytes; the name stays one token as written.
	toks, err := Tokenize("cafe\u0301 + x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Type != token.IDENTIFIER || toks[0].Lexeme != "cafe\u0301" {
		t.Fatalf("unexpected first token %+v", toks[0])
	}
	if toks[1].Col != 8 || toks[2].Col != 10 {
		t.Fatalf("positions shifted: '+' at %d, 'x' at %d", toks[1].Col, toks[2].Col)
	}
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		input string
		msg   string
		col   int
	}{
		{"y ~ x $ z", `unexpected character '$'`, 7},
		{"y ~ `open", "unterminated quoted name", 5},
		{"y ~ 1__0", "invalid number literal: underscores must separate digits", 5},
		{"y ~ 1.", "number literal requires digits after decimal point", 5},
	}
	for _, tt := range tests {
		_, err := Tokenize(tt.input)
		var se *ScanError
		if !errors.As(err, &se) {
			t.Fatalf("Tokenize(%q) expected ScanError, got %v", tt.input, err)
		}
		if se.Message != tt.msg {
			t.Fatalf("Tokenize(%q) message = %q, want %q", tt.input, se.Message, tt.msg)
		}
		if se.Token.Col != tt.col {
			t.Fatalf("Tokenize(%q) col = %d, want %d", tt.input, se.Token.Col, tt.col)
		}
		if d := se.Diagnostic(); d.Code != "FL0001" || d.Range.Col != tt.col {
			t.Fatalf("unexpected diagnostic %+v", d)
		}
	}
}
