package window

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function variant.
type Type int

const (
	TypeRectangular Type = iota
	TypeHamming
	TypeHann
	TypeTriangle
	TypeNuttall
	TypeBlackman
	TypeBlackmanNuttall
	TypeBlackmanHarris
	TypeFlatTop
	TypeWelch
)

// Function is the capability shared by all window variants: configure
// for a block length, then query the scaling factor per sample index.
//
// Configure must be called (successfully) before Coefficient. An
// unconfigured instance reports Length() == 0 and yields 0.0 for every
// index, which consumers can detect by checking Length against their
// own block size.
type Function interface {
	// Configure sets the block length for subsequent Coefficient calls.
	// It fails with ErrInvalidLength for samples < 1, leaving the
	// previous configuration untouched.
	Configure(samples int) error

	// Coefficient returns the multiplicative factor for the sample at
	// index in [0, Length()-1]. Out-of-range indices yield 0.0.
	Coefficient(index int) float64

	// Length returns the currently configured block length.
	Length() int

	// Name returns a stable, human-readable identity for diagnostics
	// and composition. Each call returns an independent value.
	Name() string
}

// Window evaluates one variant formula of the closed set identified by
// [Type]. Mirroring, clamping, and index bounds are handled once here;
// the per-type formulas only supply the raw first-half value.
type Window struct {
	typ Type
	n   int
}

// New returns an unconfigured window of the given type.
func New(t Type) *Window {
	return &Window{typ: t}
}

// Configure sets the block length. Reconfiguring with the same length
// is a cheap no-op in effect; only n is stored and the half length and
// normalization denominator are derived from it on demand.
func (w *Window) Configure(samples int) error {
	if samples < 1 {
		return errInvalidLength(samples)
	}

	w.n = samples

	return nil
}

// Coefficient returns the scaling factor for the sample at index.
// Indices past the half length are mirrored onto the first half, so
// Coefficient(i) == Coefficient(n-1-i) exactly. The result is clamped
// to [0, 1].
func (w *Window) Coefficient(index int) float64 {
	i, ok := mirrorIndex(index, w.n)
	if !ok {
		return 0
	}

	return clampUnit(rawAt(w.typ, i, w.n))
}

// Length returns the currently configured block length (0 before the
// first successful Configure).
func (w *Window) Length() int { return w.n }

// Name returns the variant name, e.g. "BlackmanHarris".
func (w *Window) Name() string { return Info(w.typ).Name }

// Type returns the variant identifier.
func (w *Window) Type() Type { return w.typ }

// TypeByName resolves a variant from its identity string. Matching is
// case-insensitive.
func TypeByName(name string) (Type, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for t, m := range metadataByType {
		if strings.ToLower(m.Name) == want {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// mirrorIndex maps index onto the evaluated first half of an n-sample
// window. It reports false for indices outside [0, n-1], including the
// unconfigured case n == 0.
//
// The reflection point is (n-1)/2 rather than n/2 so that for even n
// the middle pair reflects too: evaluating both halves of the pair
// directly would leave their equality at the mercy of floating-point
// rounding in the trig calls, and Coefficient(i) == Coefficient(n-1-i)
// must hold exactly.
func mirrorIndex(index, n int) (int, bool) {
	if index < 0 || index >= n {
		return 0, false
	}

	if half := (n - 1) / 2; index > half {
		index = n - index - 1
	}

	return index, true
}

// clampUnit limits a raw formula value to [0, 1]. The upper bound
// defends against formulas that exceed unity near the peak from
// floating-point rounding (the Hann variant peaks at 1.08 raw); the
// lower bound keeps edge values of flat-top style windows from going
// negative.
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}

	if v > 1 {
		return 1
	}

	return v
}

// Generate returns window coefficients of the given length, or nil for
// length < 1.
func Generate(t Type, length int) []float64 {
	w := New(t)
	if err := w.Configure(length); err != nil {
		return nil
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = w.Coefficient(i)
	}

	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(t, len(buf))
	if len(coeffs) != len(buf) {
		return
	}

	vecmath.MulBlockInPlace(buf, coeffs)
}

// ApplyCoefficients multiplies samples with coefficients and returns a
// new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}
