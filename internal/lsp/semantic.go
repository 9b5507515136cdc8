package lsp

import (
	"strings"
	"unicode/utf16"

	"formulae/internal/lexer"
	"formulae/internal/token"
)

const (
	SemVariable = iota
	SemFunction
	SemNumber
	SemOperator
	SemComment
)

// SemanticTokenTypes is the legend advertised to clients; indices match the
// Sem* constants.
var SemanticTokenTypes = []string{"variable", "function", "number", "operator", "comment"}

var SemanticTokenModifiers = []string{}

// SemTok is one highlighted range. Line and Col are 0-based; Col and Length
// are in UTF-16 units.
type SemTok struct {
	Line   int
	Col    int
	Length int
	Type   int
	Mods   int
}

// SemanticTokens classifies every token of the document. Lines that fail to
// scan contribute nothing.
func SemanticTokens(doc *Document) []SemTok {
	if doc == nil {
		return nil
	}
	var out []SemTok
	for i, raw := range splitLines(doc.Text) {
		raw = strings.TrimSuffix(raw, "\r")
		trim := strings.TrimSpace(raw)
		switch {
		case trim == "":
			continue
		case strings.HasPrefix(trim, "#"):
			start := strings.Index(raw, "#")
			out = append(out, SemTok{
				Line:   i,
				Col:    int(byteColToUTF16(raw, start+1)),
				Length: utf16Len(raw[start:]),
				Type:   SemComment,
			})
			continue
		}

		toks, err := lexer.Tokenize(raw)
		if err != nil {
			continue
		}
		for j, tok := range toks {
			typ, ok := classify(toks, j)
			if !ok {
				continue
			}
			out = append(out, SemTok{
				Line:   i,
				Col:    int(byteColToUTF16(raw, tok.Col)),
				Length: utf16Len(tok.Lexeme),
				Type:   typ,
			})
		}
	}
	return out
}

func classify(toks []token.Token, i int) (int, bool) {
	tok := toks[i]
	switch {
	case tok.Type == token.NUMBER:
		return SemNumber, true
	case tok.Type == token.IDENTIFIER:
		if i+1 < len(toks) && toks[i+1].Type == token.LEFT_PAREN {
			return SemFunction, true
		}
		return SemVariable, true
	case tok.Type == token.BQNAME:
		return SemVariable, true
	case tok.Type.IsOperator():
		return SemOperator, true
	}
	return 0, false
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		k := utf16.RuneLen(r)
		if k < 0 {
			k = 1
		}
		n += k
	}
	return n
}
