package lsp

import (
	"fmt"
	"strings"

	"formulae/internal/printer"
	"formulae/internal/resolve"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// HoverAt describes the formula on the line under pos. Lines that are
// blank, comments or fail to parse have no hover.
func HoverAt(doc *Document, pos protocol.Position, opts ...printer.Option) *protocol.Hover {
	if doc == nil {
		return nil
	}
	line, ok := doc.LineAt(int(pos.Line) + 1)
	if !ok || line.Err != nil {
		return nil
	}

	lookup := printer.New(printer.ModeLookup, opts...)
	name := printer.New(printer.ModeName, opts...)

	var b strings.Builder
	b.WriteString("```formula\n")
	b.WriteString(line.Expr.String())
	b.WriteString("\n```\n\n")
	fmt.Fprintf(&b, "lookup: `%s`\n\n", lookup.Print(line.Expr))
	fmt.Fprintf(&b, "name: `%s`\n", name.Print(line.Expr))
	if names := resolve.Names(line.Expr); len(names) > 0 {
		fmt.Fprintf(&b, "\ndata: %s\n", strings.Join(names, ", "))
	}

	r := fullLineRange(doc.Text, line.Number)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{Kind: protocol.MarkupKindMarkdown, Value: b.String()},
		Range:    &r,
	}
}
