package diag

import (
	"errors"
	"testing"
)

type fakeErr struct{}

func (fakeErr) Error() string { return "boom" }
func (fakeErr) Diagnostic() Diagnostic {
	return Diagnostic{Code: "X1", Message: "boom", Range: Range{Line: 1, Col: 4, Length: 2}}
}

func TestFormat(t *testing.T) {
	d := Diagnostic{Code: "FP0003", Message: "expect expression.", Range: Range{Line: 2, Col: 5, Length: 1}}
	got := d.Format("model.formula")
	want := "model.formula:2:5: error FP0003: expect expression."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	d.Code = ""
	if got := d.Format("-"); got != "-:2:5: error: expect expression." {
		t.Fatalf("unexpected %q", got)
	}
}

func TestRangeOf(t *testing.T) {
	if r := RangeOf(1, 3, ""); r.Length != 1 {
		t.Fatalf("empty lexeme length = %d", r.Length)
	}
	if r := RangeOf(1, 3, "abc").Shift(7); r.Line != 7 || r.Col != 3 || r.Length != 3 {
		t.Fatalf("unexpected range %+v", r)
	}
}

func TestFromError(t *testing.T) {
	if d := FromError(fakeErr{}); d.Code != "X1" || d.Range.Col != 4 {
		t.Fatalf("unexpected %+v", d)
	}
	d := FromError(errors.New("plain"))
	if d.Message != "plain" || d.Range.Line != 1 || d.Severity != SeverityError {
		t.Fatalf("unexpected %+v", d)
	}
}
