package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-window/dsp/window"
)

// Analyzer tapers sample blocks with a window function and transforms
// them to the frequency domain. Block lengths must be powers of two.
//
// The FFT plan, the window configuration, and the scratch buffers are
// reused as long as the block length stays the same; a length change
// reconfigures all three.
type Analyzer struct {
	win  window.Function
	plan *algofft.Plan[complex128]
	size int

	in  []complex128
	out []complex128
	re  []float64
	im  []float64
}

// New returns an analyzer tapering blocks with win. The analyzer takes
// ownership of win; it must not be reconfigured by the caller.
func New(win window.Function) (*Analyzer, error) {
	if win == nil {
		return nil, fmt.Errorf("spectrum analyzer requires a window function")
	}

	return &Analyzer{win: win}, nil
}

// WindowName returns the identity of the owned window function.
func (a *Analyzer) WindowName() string { return a.win.Name() }

// BlockSize returns the block length of the last transform (0 before
// the first one).
func (a *Analyzer) BlockSize() int { return a.size }

// Magnitude windows samples and returns |X[k]| for the non-negative
// frequency bins [0 .. len(samples)/2].
func (a *Analyzer) Magnitude(samples []float64) ([]float64, error) {
	if err := a.transform(samples); err != nil {
		return nil, err
	}

	bins := a.size/2 + 1
	a.unpack(bins)

	out := make([]float64, bins)
	vecmath.Magnitude(out, a.re[:bins], a.im[:bins])

	return out, nil
}

// Power windows samples and returns |X[k]|^2 for the non-negative
// frequency bins [0 .. len(samples)/2].
func (a *Analyzer) Power(samples []float64) ([]float64, error) {
	if err := a.transform(samples); err != nil {
		return nil, err
	}

	bins := a.size/2 + 1
	a.unpack(bins)

	out := make([]float64, bins)
	vecmath.Power(out, a.re[:bins], a.im[:bins])

	return out, nil
}

func (a *Analyzer) transform(samples []float64) error {
	if err := a.configure(len(samples)); err != nil {
		return err
	}

	for i, s := range samples {
		a.in[i] = complex(s*a.win.Coefficient(i), 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return fmt.Errorf("spectrum forward fft: %w", err)
	}

	return nil
}

func (a *Analyzer) configure(samples int) error {
	if samples == a.size {
		return nil
	}

	if samples < 2 {
		return fmt.Errorf("spectrum block length must be >= 2: %d", samples)
	}

	if samples&(samples-1) != 0 {
		return fmt.Errorf("spectrum block length must be a power of two: %d", samples)
	}

	if a.win.Length() != samples {
		if err := a.win.Configure(samples); err != nil {
			return fmt.Errorf("spectrum window configure: %w", err)
		}
	}

	plan, err := algofft.NewPlan64(samples)
	if err != nil {
		return fmt.Errorf("spectrum fft plan: %w", err)
	}

	a.plan = plan
	a.size = samples
	a.in = make([]complex128, samples)
	a.out = make([]complex128, samples)
	a.re = make([]float64, samples/2+1)
	a.im = make([]float64, samples/2+1)

	return nil
}

func (a *Analyzer) unpack(bins int) {
	for i := 0; i < bins; i++ {
		a.re[i] = real(a.out[i])
		a.im[i] = imag(a.out[i])
	}
}

// PeakBin returns the index of the largest magnitude bin, or -1 for an
// empty spectrum.
func PeakBin(mag []float64) int {
	peak := -1
	peakVal := 0.0

	for i, v := range mag {
		if peak < 0 || v > peakVal {
			peak = i
			peakVal = v
		}
	}

	return peak
}
