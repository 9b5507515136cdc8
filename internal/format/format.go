package format

import (
	"strings"

	"formulae/internal/parser"
)

// Source parses src as one formula and returns its canonical text:
// single spaces around binary operators, none after prefix signs,
// "f(a, b)" call syntax and brace blocks written as I(...).
func Source(src string, opts ...parser.Option) (string, error) {
	expr, err := parser.ParseString(src, opts...)
	if err != nil {
		return "", err
	}
	return expr.String(), nil
}

// Lines formats every formula line of a multi-line document. Blank lines and
// '#' comment lines pass through unchanged, as do lines that fail to parse;
// their errors are returned keyed by 1-based line number.
func Lines(doc string, opts ...parser.Option) (string, map[int]error) {
	lines := strings.Split(doc, "\n")
	var errs map[int]error
	for i, line := range lines {
		trim := strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if trim == "" || strings.HasPrefix(trim, "#") {
			continue
		}
		out, err := Source(trim, opts...)
		if err != nil {
			if errs == nil {
				errs = map[int]error{}
			}
			errs[i+1] = err
			continue
		}
		lines[i] = out
	}
	return strings.Join(lines, "\n"), errs
}
