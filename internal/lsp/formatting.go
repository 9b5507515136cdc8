package lsp

import (
	"strings"

	"formulae/internal/format"
	"formulae/internal/parser"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// FormatEdits returns one edit per formula line whose canonical text
// differs from what is in the document. Lines with errors are left alone.
func FormatEdits(doc *Document, opts ...parser.Option) []protocol.TextEdit {
	if doc == nil {
		return nil
	}
	edits := []protocol.TextEdit{}
	for _, l := range doc.Lines {
		if l.Err != nil {
			continue
		}
		out, err := format.Source(l.Text, opts...)
		if err != nil {
			continue
		}
		// Keep the line's indentation.
		indent := l.Text[:len(l.Text)-len(strings.TrimLeft(l.Text, " \t"))]
		if indent+out == l.Text {
			continue
		}
		edits = append(edits, protocol.TextEdit{
			Range:   fullLineRange(doc.Text, l.Number),
			NewText: indent + out,
		})
	}
	return edits
}
