package limits

import "testing"

func TestDepthEnterLeave(t *testing.T) {
	d := NewDepth(2)
	if err := d.Enter(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.Enter(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := d.Enter()
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != "max nesting depth exceeded (2)" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	d.Leave()
	if d.Current() != 1 {
		t.Fatalf("current = %d, want 1", d.Current())
	}
	if err := d.Enter(); err != nil {
		t.Fatalf("unexpected error after leave: %v", err)
	}
}

func TestDepthUnlimited(t *testing.T) {
	d := NewDepth(0)
	for i := 0; i < 10_000; i++ {
		if err := d.Enter(); err != nil {
			t.Fatalf("unexpected error at %d: %v", i, err)
		}
	}
}

func TestDepthNil(t *testing.T) {
	var d *Depth
	if err := d.Enter(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d.Leave()
	if d.Limit() != 0 || d.Current() != 0 {
		t.Fatalf("nil depth should report zero")
	}
}
