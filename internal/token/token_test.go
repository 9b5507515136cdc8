package token

import "testing"

func TestLookupSingle(t *testing.T) {
	for ch, want := range map[byte]Type{'~': TILDE, '|': PIPE, ':': COLON, '{': LEFT_BRACE, ',': COMMA} {
		got, ok := LookupSingle(ch)
		if !ok || got != want {
			t.Fatalf("LookupSingle(%q) = %v, %v", ch, got, ok)
		}
	}
	if _, ok := LookupSingle('$'); ok {
		t.Fatalf("'$' is not a token")
	}
}

func TestIsOperator(t *testing.T) {
	for _, typ := range []Type{TILDE, PIPE, MINUS, PLUS, STAR, SLASH, COLON, STAR_STAR} {
		if !typ.IsOperator() {
			t.Fatalf("%s should be an operator", typ)
		}
	}
	for _, typ := range []Type{LEFT_PAREN, COMMA, NUMBER, IDENTIFIER, EOF} {
		if typ.IsOperator() {
			t.Fatalf("%s should not be an operator", typ)
		}
	}
}

func TestIdentifier(t *testing.T) {
	brace := Token{Type: LEFT_BRACE, Lexeme: "{", Line: 2, Col: 7}
	got := Identifier("I", brace)
	if got.Type != IDENTIFIER || got.Lexeme != "I" || got.Line != 2 || got.Col != 7 {
		t.Fatalf("unexpected token %+v", got)
	}
}
