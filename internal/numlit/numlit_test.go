package numlit

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"12", 12},
		{"1_000", 1000},
		{"0.5", 0.5},
		{".25", 0.25},
		{"2e3", 2000},
		{"2.5E-3", 0.0025},
		{"1e+2", 100},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "1__0", "_1", "1_", "1.", "1e", "1e+", "1.2.3", "1a"} {
		if _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q) expected error", in)
		}
	}
}

func TestNormalizeKinds(t *testing.T) {
	n, err := Normalize("1_024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !n.IsInteger || n.HasExponent || n.Normalized != "1024" {
		t.Fatalf("unexpected %+v", n)
	}
	n, err = Normalize("3e2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.IsInteger || !n.HasExponent {
		t.Fatalf("unexpected %+v", n)
	}
}

func TestFormat(t *testing.T) {
	tests := map[float64]string{
		1:      "1",
		0.5:    "0.5",
		2000:   "2000",
		0.0025: "0.0025",
	}
	for in, want := range tests {
		if got := Format(in); got != want {
			t.Fatalf("Format(%v) = %q, want %q", in, got, want)
		}
	}
}
