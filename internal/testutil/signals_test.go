package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1, 8, 2.0, 8)
	if len(s) != 8 {
		t.Fatalf("len=%d", len(s))
	}
	if s[0] != 0 {
		t.Fatalf("s[0]=%v, want 0", s[0])
	}
	if math.Abs(s[2]-2.0) > 1e-12 {
		t.Fatalf("s[2]=%v, want 2.0 at the quarter period", s[2])
	}
}

func TestImpulse(t *testing.T) {
	im := Impulse(4, 2)
	want := []float64{0, 0, 1, 0}
	for i := range want {
		if im[i] != want[i] {
			t.Fatalf("impulse[%d]=%v, want %v", i, im[i], want[i])
		}
	}

	// Out-of-range position yields silence.
	for _, v := range Impulse(4, 9) {
		if v != 0 {
			t.Fatal("expected all-zero impulse for out-of-range position")
		}
	}
}

func TestOnes(t *testing.T) {
	for _, v := range Ones(5) {
		if v != 1 {
			t.Fatalf("value=%v, want 1", v)
		}
	}
}
