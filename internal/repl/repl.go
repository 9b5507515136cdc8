package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tliron/commonlog"

	"formulae/internal/ast"
	"formulae/internal/parser"
	"formulae/internal/printer"
	"formulae/internal/resolve"
)

const (
	prompt1 = "formula> "
	prompt2 = "....> "
)

// The logger is looked up per use: a package-level logger would be bound
// before main installs the commonlog backend.
func logger() commonlog.Logger { return commonlog.GetLogger("formula.repl") }

type Options struct {
	Parser  []parser.Option
	Printer []printer.Option
	// Batch suppresses the banner and prompts, for piped input.
	Batch bool
}

// Start reads formulas from in until EOF or "exit"/"quit" and writes the
// canonical form, both renderings and the referenced names of each to out.
// A line with unbalanced (, [ or { continues on the next line.
func Start(in io.Reader, out io.Writer, opts Options) {
	scanner := bufio.NewScanner(in)
	lookup := printer.New(printer.ModeLookup, opts.Printer...)
	label := printer.New(printer.ModeName, opts.Printer...)

	if !opts.Batch {
		fmt.Fprint(out, "Formula REPL (Ctrl+D to exit)\n")
	}

	var buf strings.Builder
	depth := 0
	inQuote := false

	for {
		// choose prompt
		switch {
		case opts.Batch:
		case buf.Len() == 0:
			fmt.Fprint(out, prompt1)
		default:
			fmt.Fprint(out, prompt2)
		}

		if !scanner.Scan() {
			if !opts.Batch {
				fmt.Fprint(out, "\n")
			}
			// input left open by an unbalanced delimiter is still reported
			if buf.Len() > 0 {
				eval(out, buf.String(), opts, lookup, label)
			}
			return
		}

		line := scanner.Text()
		trim := strings.TrimSpace(line)

		// allow quick exit
		if buf.Len() == 0 && (trim == "exit" || trim == "quit") {
			return
		}
		if buf.Len() == 0 && (trim == "" || strings.HasPrefix(trim, "#")) {
			continue
		}

		buf.WriteString(line)
		buf.WriteString("\n")

		depth, inQuote = updateBalance(line, depth, inQuote)
		if depth > 0 || inQuote {
			continue
		}

		src := buf.String()
		buf.Reset()
		depth = 0

		eval(out, src, opts, lookup, label)
	}
}

func eval(out io.Writer, src string, opts Options, lookup, label *printer.Printer) {
	expr, err := parser.ParseString(src, opts.Parser...)
	if err != nil {
		logger().Debugf("parse failed: %s", err)
		fmt.Fprintf(out, "parse error: %s\n", err)
		return
	}
	printResult(out, expr, lookup, label)
}

func printResult(out io.Writer, expr ast.Expression, lookup, label *printer.Printer) {
	fmt.Fprintf(out, "formula: %s\n", expr.String())
	fmt.Fprintf(out, "lookup:  %s\n", lookup.Print(expr))
	fmt.Fprintf(out, "name:    %s\n", label.Print(expr))
	if names := resolve.Names(expr); len(names) > 0 {
		fmt.Fprintf(out, "data:    %s\n", strings.Join(names, ", "))
	}
}

// updateBalance tracks open delimiters across lines. Backquoted names may
// contain delimiters, so they are skipped.
func updateBalance(line string, depth int, inQuote bool) (int, bool) {
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if inQuote {
			if ch == '`' {
				inQuote = false
			}
			continue
		}
		switch ch {
		case '`':
			inQuote = true
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		}
	}
	return depth, inQuote
}
