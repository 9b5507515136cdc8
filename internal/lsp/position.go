package lsp

import (
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func byteColToUTF16(lineText string, byteCol int) uint32 {
	if byteCol <= 1 {
		return 0
	}
	limit := byteCol - 1
	if limit > len(lineText) {
		limit = len(lineText)
	}
	var count uint32
	for _, r := range lineText[:limit] {
		n := utf16.RuneLen(r)
		if n < 0 {
			n = 1
		}
		count += uint32(n)
	}
	return count
}

// lineRange covers byteLen bytes starting at the 1-based byte column col of
// the 1-based line, in UTF-16 units.
func lineRange(text string, line, col, byteLen int) protocol.Range {
	lines := splitLines(text)
	if line <= 0 || line > len(lines) {
		return protocol.Range{}
	}
	lineText := lines[line-1]
	start := protocol.Position{Line: uint32(line - 1), Character: byteColToUTF16(lineText, col)}
	end := protocol.Position{Line: start.Line, Character: byteColToUTF16(lineText, col+byteLen)}
	if end.Character <= start.Character {
		end.Character = start.Character + 1
	}
	return protocol.Range{Start: start, End: end}
}

// fullLineRange spans the whole 1-based line, excluding its newline.
func fullLineRange(text string, line int) protocol.Range {
	lines := splitLines(text)
	if line <= 0 || line > len(lines) {
		return protocol.Range{}
	}
	lineText := lines[line-1]
	end := byteColToUTF16(lineText, len(lineText)+1)
	return protocol.Range{
		Start: protocol.Position{Line: uint32(line - 1), Character: 0},
		End:   protocol.Position{Line: uint32(line - 1), Character: end},
	}
}
