package lsp

import (
	"strings"
	"testing"

	"formulae/internal/diag"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

const sample = "# model\ny ~ x + (1 | g)\n\ny ~ (a + b\n  log(x)*z\n"

func TestAnalyze_SkipsBlankAndComments(t *testing.T) {
	doc := Analyze(sample)
	if len(doc.Lines) != 3 {
		t.Fatalf("expected 3 formula lines, got %d", len(doc.Lines))
	}
	if doc.Lines[0].Number != 2 || doc.Lines[1].Number != 4 || doc.Lines[2].Number != 5 {
		t.Fatalf("unexpected line numbers %+v", doc.Lines)
	}
	if doc.Lines[0].Err != nil || doc.Lines[1].Err == nil || doc.Lines[2].Err != nil {
		t.Fatalf("unexpected errors %+v", doc.Lines)
	}
	if _, ok := doc.LineAt(1); ok {
		t.Fatalf("comment line should not be a formula")
	}
}

func TestDiagnostics_DocumentCoordinates(t *testing.T) {
	doc := Analyze(sample)
	ds := doc.Diagnostics()
	if len(ds) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(ds))
	}
	d := ds[0]
	if d.Code != "FP0001" || d.Range.Line != 4 || d.Range.Col != 11 {
		t.Fatalf("unexpected diagnostic %+v", d)
	}

	lsp := ToLspDiagnostics(doc.Text, ds)
	if len(lsp) != 1 {
		t.Fatalf("expected 1 lsp diagnostic")
	}
	got := lsp[0]
	if got.Range.Start.Line != 3 || got.Range.Start.Character != 10 {
		t.Fatalf("unexpected range %+v", got.Range)
	}
	if got.Source == nil || *got.Source != "formula" {
		t.Fatalf("unexpected source %v", got.Source)
	}
	if got.Severity == nil || *got.Severity != protocol.DiagnosticSeverityError {
		t.Fatalf("unexpected severity")
	}
	if got.Code == nil || got.Code.Value != "FP0001" {
		t.Fatalf("unexpected code %+v", got.Code)
	}
}

func TestToLspDiagnostics_UTF16Columns(t *testing.T) {
	text := "\U0001F600 + x"
	ds := []diag.Diagnostic{{Message: "m", Range: diag.Range{Line: 1, Col: 6, Length: 1}}}
	got := ToLspDiagnostics(text, ds)
	// the emoji is four bytes and two UTF-16 units; '+' is at byte col 6
	if got[0].Range.Start.Character != 3 || got[0].Range.End.Character != 4 {
		t.Fatalf("unexpected range %+v", got[0].Range)
	}
}

func TestDiagnostics_LintWarnings(t *testing.T) {
	doc := Analyze("# m\ny ~ x + x\n")
	ds := doc.Diagnostics()
	if len(ds) != 1 || ds[0].Severity != diag.SeverityWarning || ds[0].Code != "FW0001" {
		t.Fatalf("unexpected diagnostics %+v", ds)
	}
	if ds[0].Range.Line != 2 || ds[0].Range.Col != 9 {
		t.Fatalf("unexpected range %+v", ds[0].Range)
	}
	got := ToLspDiagnostics(doc.Text, ds)
	if *got[0].Severity != protocol.DiagnosticSeverityWarning {
		t.Fatalf("expected warning severity")
	}
}

func TestHoverAt(t *testing.T) {
	doc := Analyze(sample)
	h := HoverAt(doc, protocol.Position{Line: 1, Character: 3})
	if h == nil {
		t.Fatalf("expected hover")
	}
	mc, ok := h.Contents.(protocol.MarkupContent)
	if !ok {
		t.Fatalf("unexpected contents %T", h.Contents)
	}
	for _, want := range []string{
		"y ~ x + (1 | g)",
		`lookup: `+"`"+`DATA["y"] ~ DATA["x"] + 1 | DATA["g"]`+"`",
		"name: `y ~ x + 1 | g`",
		"data: y, x, g",
	} {
		if !strings.Contains(mc.Value, want) {
			t.Fatalf("hover missing %q:\n%s", want, mc.Value)
		}
	}

	if HoverAt(doc, protocol.Position{Line: 0}) != nil {
		t.Fatalf("comment line should have no hover")
	}
	if HoverAt(doc, protocol.Position{Line: 3}) != nil {
		t.Fatalf("broken line should have no hover")
	}
}

func TestFormatEdits(t *testing.T) {
	doc := Analyze(sample)
	edits := FormatEdits(doc)
	if len(edits) != 1 {
		t.Fatalf("expected 1 edit, got %d: %+v", len(edits), edits)
	}
	e := edits[0]
	if e.Range.Start.Line != 4 || e.NewText != "  log(x) * z" {
		t.Fatalf("unexpected edit %+v", e)
	}
	if e.Range.End.Character != uint32(len("  log(x)*z")) {
		t.Fatalf("edit should span the line, got %+v", e.Range)
	}

	if got := FormatEdits(Analyze("y ~ x + z\n")); len(got) != 0 {
		t.Fatalf("canonical document should produce no edits, got %+v", got)
	}
}

func hasToken(toks []SemTok, line, col, typ int) bool {
	for _, t := range toks {
		if t.Line == line && t.Col == col && t.Type == typ {
			return true
		}
	}
	return false
}

func TestSemanticTokens(t *testing.T) {
	doc := Analyze("# c\ny ~ log(x) + 2\n`a b`:z\n")
	toks := SemanticTokens(doc)

	if !hasToken(toks, 0, 0, SemComment) {
		t.Fatalf("expected comment token")
	}
	if !hasToken(toks, 1, 0, SemVariable) {
		t.Fatalf("expected variable y")
	}
	if !hasToken(toks, 1, 2, SemOperator) {
		t.Fatalf("expected operator ~")
	}
	if !hasToken(toks, 1, 4, SemFunction) {
		t.Fatalf("expected function log")
	}
	if !hasToken(toks, 1, 8, SemVariable) {
		t.Fatalf("expected variable x")
	}
	if !hasToken(toks, 1, 13, SemNumber) {
		t.Fatalf("expected number 2")
	}
	if !hasToken(toks, 2, 0, SemVariable) || !hasToken(toks, 2, 5, SemOperator) {
		t.Fatalf("expected quoted name and ':' tokens")
	}
}

func TestEncodeSemanticTokens(t *testing.T) {
	toks := []SemTok{
		{Line: 1, Col: 4, Length: 1, Type: SemOperator},
		{Line: 0, Col: 2, Length: 3, Type: SemVariable},
		{Line: 1, Col: 0, Length: 2, Type: SemNumber},
	}
	got := EncodeSemanticTokens(toks)
	want := []uint32{
		0, 2, 3, SemVariable, 0,
		1, 0, 2, SemNumber, 0,
		0, 4, 1, SemOperator, 0,
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("data[%d] = %d, want %d (%v)", i, got[i], want[i], got)
		}
	}
}

func TestStore(t *testing.T) {
	s := NewStore()
	s.Set("file:///a.formula", Analyze("y ~ x"))
	if _, ok := s.Get("file:///a.formula"); !ok || s.Len() != 1 {
		t.Fatalf("document not stored")
	}
	s.Delete("file:///a.formula")
	if _, ok := s.Get("file:///a.formula"); ok {
		t.Fatalf("document not deleted")
	}
	if !IsFormulaURI("file:///x/M.FORMULA") || IsFormulaURI("file:///x/m.go") {
		t.Fatalf("IsFormulaURI mismatch")
	}
}

func TestUriToPath(t *testing.T) {
	if got := UriToPath("file:///tmp/my%20models/a.formula"); got != "/tmp/my models/a.formula" {
		t.Fatalf("UriToPath() = %q", got)
	}
	if got := UriToPath("untitled:1"); got != "untitled:1" {
		t.Fatalf("UriToPath() = %q", got)
	}
}

func TestDecomposedAccentColumns(t *testing.T) {
	doc := Analyze("cafe\u0301 + x\ncafe\u0301 + )\n")
	toks := SemanticTokens(doc)
	if !hasToken(toks, 0, 0, SemVariable) || !hasToken(toks, 0, 6, SemOperator) || !hasToken(toks, 0, 8, SemVariable) {
		t.Fatalf("tokens misplaced: %+v", toks)
	}
	if toks[0].Length != 5 {
		t.Fatalf("name length = %d, want 5", toks[0].Length)
	}

	ds := ToLspDiagnostics(doc.Text, doc.Diagnostics())
	if len(ds) != 1 || ds[0].Range.Start.Line != 1 || ds[0].Range.Start.Character != 8 {
		t.Fatalf("diagnostic misplaced: %+v", ds)
	}
}
