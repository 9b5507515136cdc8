package lsp

import (
	"formulae/internal/diag"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

const source = "formula"

// ToLspDiagnostics converts diagnostics to LSP form. text is the document
// they belong to; it is needed to express columns in UTF-16 units.
func ToLspDiagnostics(text string, ds []diag.Diagnostic) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(ds))
	for _, d := range ds {
		severity := protocol.DiagnosticSeverityError
		switch d.Severity {
		case diag.SeverityWarning:
			severity = protocol.DiagnosticSeverityWarning
		case diag.SeverityInfo:
			severity = protocol.DiagnosticSeverityInformation
		}

		pd := protocol.Diagnostic{
			Range:    lineRange(text, d.Range.Line, d.Range.Col, d.Range.Length),
			Severity: &severity,
			Source:   ptrString(source),
			Message:  d.Message,
		}
		if d.Code != "" {
			code := protocol.IntegerOrString{Value: d.Code}
			pd.Code = &code
		}
		out = append(out, pd)
	}
	return out
}

func ptrString(s string) *string { return &s }
