package testutil

import "testing"

func TestRequireSliceNearlyEqual(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2, 3}, []float64{1, 2, 3.0000001}, 1e-6)
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, []float64{0, -1, 1e300})
}

func TestMaxAbsDiff(t *testing.T) {
	got := MaxAbsDiff(t, []float64{1, 2, 3}, []float64{1, 2.5, 2})
	if got != 1 {
		t.Fatalf("MaxAbsDiff=%v, want 1", got)
	}
}
