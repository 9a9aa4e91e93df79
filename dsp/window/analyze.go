package window

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Analysis holds numerically measured spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the 3 dB (half-power) main lobe width in bins.
	Bandwidth3dB float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// FirstMinimumBins is the first null (minimum) position in bins.
	FirstMinimumBins float64
	// ScallopLossdB is the worst-case amplitude error for an off-bin signal.
	ScallopLossdB float64
}

// Analyze measures spectral properties of concrete window coefficients
// by direct DFT evaluation. Unlike the nominal values in [Metadata],
// the results reflect the actual coefficients, including peak clamping
// and finite-length effects.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	dcRef := dftMagSq(coeffs, 0)
	if dcRef == 0 {
		return Analysis{}
	}

	sum := floats.Sum(coeffs)
	sumSq := floats.Dot(coeffs, coeffs)

	// Scallop loss is the response half a bin off DC.
	scallop := 0.0
	if halfBin := dftMagSq(coeffs, 0.5/float64(n)); halfBin > 0 {
		scallop = 10 * math.Log10(halfBin/dcRef)
	}

	firstMin := firstNullBins(coeffs, n)

	return Analysis{
		CoherentGain:      sum / float64(n),
		ENBW:              float64(n) * sumSq / (sum * sum),
		Bandwidth3dB:      halfPowerBins(coeffs, dcRef, n),
		HighestSidelobedB: highestSidelobedB(coeffs, dcRef, firstMin, n),
		FirstMinimumBins:  firstMin,
		ScallopLossdB:     scallop,
	}
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := floats.Sum(coeffs)
	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	sumSq := floats.Dot(coeffs, coeffs)

	return float64(len(coeffs)) * sumSq / (sum * sum), nil
}

// dftMagSq evaluates |DFT(freq)|^2 at a normalised frequency in [0, 1).
func dftMagSq(coeffs []float64, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq

	for k, c := range coeffs {
		phase := w * float64(k)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}

	return re*re + im*im
}

// halfPowerBins finds the two-sided -3 dB main lobe width in bins by
// bisecting the magnitude response between DC and Nyquist.
func halfPowerBins(coeffs []float64, dcRef float64, n int) float64 {
	lo, hi := 0.0, 0.5
	for i := 0; i < 80; i++ {
		mid := (lo + hi) / 2
		if dftMagSq(coeffs, mid) > 0.5*dcRef {
			lo = mid
		} else {
			hi = mid
		}
	}

	return 2 * lo * float64(n)
}

// firstNullBins finds the first spectral null position in bins with a
// coarse outward scan followed by golden-section refinement.
func firstNullBins(coeffs []float64, n int) float64 {
	nf := float64(n)
	step := 1.0 / (nf * 8)

	dcVal := dftMagSq(coeffs, 0)
	prev := dcVal
	coarse := step
	// Require descent below 10% of DC before accepting a turn-around,
	// so the wide main-lobe plateau of flat-top windows is not taken
	// for a null.
	threshold := dcVal * 0.1

	for freq := step; freq < 0.5; freq += step {
		val := dftMagSq(coeffs, freq)
		if prev < threshold && val > prev {
			coarse = freq - step
			break
		}

		prev = val
	}

	a := math.Max(0, coarse-2*step)
	b := math.Min(0.5, coarse+2*step)

	const phi = 0.6180339887498949 // (sqrt(5)-1)/2
	c := b - phi*(b-a)
	d := a + phi*(b-a)
	for i := 0; i < 80; i++ {
		if dftMagSq(coeffs, c) < dftMagSq(coeffs, d) {
			b = d
		} else {
			a = c
		}

		c = b - phi*(b-a)
		d = a + phi*(b-a)
	}

	return (a + b) / 2 * nf
}

// highestSidelobedB finds the peak sidelobe level in dB relative to DC,
// scanning from the first null out to Nyquist and refining around the
// coarse peak.
func highestSidelobedB(coeffs []float64, dcRef, firstMinBins float64, n int) float64 {
	nf := float64(n)
	step := 1.0 / (nf * 8)

	peakVal := 0.0
	peakFreq := firstMinBins / nf

	for freq := peakFreq; freq < 0.5; freq += step {
		if val := dftMagSq(coeffs, freq); val > peakVal {
			peakVal = val
			peakFreq = freq
		}
	}

	fine := step / 32
	for freq := math.Max(0, peakFreq-step); freq <= peakFreq+step; freq += fine {
		if val := dftMagSq(coeffs, freq); val > peakVal {
			peakVal = val
		}
	}

	if peakVal <= 0 || dcRef <= 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(peakVal/dcRef)
}
