package window

import "math"

// Cosine-sum term tables, index k holding the weight of cos(k*2*pi*r).
// The constants are carried verbatim from the reference formulas; do
// not re-derive or round them, downstream spectral analysis compares
// against outputs produced with exactly these values.
var (
	hammingCoeffs         = []float64{0.54, -0.46}
	hannCoeffs            = []float64{0.54, -0.54}
	nuttallCoeffs         = []float64{0.355768, -0.487396, 0.144232, -0.012604}
	blackmanCoeffs        = []float64{0.42323, -0.49755, 0.07922}
	blackmanNuttallCoeffs = []float64{0.3635819, -0.4891775, 0.1365995, -0.0106411}
	blackmanHarrisCoeffs  = []float64{0.35875, -0.48829, 0.14128, -0.01168}
	flatTopCoeffs         = []float64{0.2810639, -0.5208972, 0.1980399}
)

var cosineCoeffsByType = map[Type][]float64{
	TypeHamming:         hammingCoeffs,
	TypeHann:            hannCoeffs,
	TypeNuttall:         nuttallCoeffs,
	TypeBlackman:        blackmanCoeffs,
	TypeBlackmanNuttall: blackmanNuttallCoeffs,
	TypeBlackmanHarris:  blackmanHarrisCoeffs,
	TypeFlatTop:         flatTopCoeffs,
}

// rawAt evaluates the variant formula at index, before mirroring and
// clamping. index is expected in the first half [0, n/2].
func rawAt(t Type, index, n int) float64 {
	switch t {
	case TypeRectangular:
		return 1
	case TypeTriangle:
		return 1 - math.Abs(2*ratio(index, n)-1)
	case TypeWelch:
		d := 2*ratio(index, n) - 1

		return 1 - d*d
	default:
		return cosineSum(ratio(index, n), cosineCoeffsByType[t])
	}
}

// ratio normalizes an index to [0, 1] via division by n-1.
func ratio(index, n int) float64 {
	if n <= 1 {
		return 0
	}

	return float64(index) / float64(n-1)
}

func cosineSum(r float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * r

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

// Metadata holds static per-variant diagnostics. ENBW and CoherentGain
// describe the raw formula in the long-window limit, before the [0, 1]
// peak clamp; measured values for a concrete length come from
// [Analyze].
type Metadata struct {
	Name         string
	ENBW         float64
	CoherentGain float64
}

var metadataByType = map[Type]Metadata{
	TypeRectangular:     {Name: "Rectangular", ENBW: 1.0, CoherentGain: 1.0},
	TypeHamming:         {Name: "Hamming", ENBW: 1.3628, CoherentGain: 0.54},
	TypeHann:            {Name: "Hann", ENBW: 1.5, CoherentGain: 0.54},
	TypeTriangle:        {Name: "Triangle", ENBW: 1.3333, CoherentGain: 0.5},
	TypeNuttall:         {Name: "Nuttall", ENBW: 2.0212, CoherentGain: 0.355768},
	TypeBlackman:        {Name: "Blackman", ENBW: 1.7085, CoherentGain: 0.42323},
	TypeBlackmanNuttall: {Name: "BlackmanNuttall", ENBW: 1.9761, CoherentGain: 0.3635819},
	TypeBlackmanHarris:  {Name: "BlackmanHarris", ENBW: 2.0044, CoherentGain: 0.35875},
	TypeFlatTop:         {Name: "FlatTop", ENBW: 2.9656, CoherentGain: 0.2810639},
	TypeWelch:           {Name: "Welch", ENBW: 1.2, CoherentGain: 2.0 / 3.0},
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}

	return Metadata{}
}

// Types returns all variant identifiers in declaration order.
func Types() []Type {
	return []Type{
		TypeRectangular,
		TypeHamming,
		TypeHann,
		TypeTriangle,
		TypeNuttall,
		TypeBlackman,
		TypeBlackmanNuttall,
		TypeBlackmanHarris,
		TypeFlatTop,
		TypeWelch,
	}
}
