package board

import "testing"

func TestStateBits(t *testing.T) {
	s := Full(10)
	if s.Pegs() != 10 {
		t.Fatalf("Full(10).Pegs() = %d, want 10", s.Pegs())
	}

	s = s.Without(4)
	if s.Has(4) {
		t.Error("peg 4 still set after Without")
	}
	if s.Pegs() != 9 {
		t.Errorf("Pegs() = %d, want 9", s.Pegs())
	}

	// Without is idempotent, With restores.
	if s.Without(4) != s {
		t.Error("Without on empty hole changed state")
	}
	if s.With(4) != Full(10) {
		t.Error("With did not restore the removed peg")
	}
}

func TestRender(t *testing.T) {
	got := Render(Full(10).Without(0), 4)
	want := "" +
		"   0\n" +
		"  1 1\n" +
		" 1 1 1\n" +
		"1 1 1 1\n"
	if got != want {
		t.Errorf("Render:\n%q\nwant:\n%q", got, want)
	}
}

func TestString(t *testing.T) {
	if got := String(Full(10).Without(4), 4); got != "1111011111" {
		t.Errorf("String = %q, want %q", got, "1111011111")
	}
}
