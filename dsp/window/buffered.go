package window

// Buffered wraps another window function and caches its first-half
// coefficients, trading memory for repeated-lookup latency when the
// block length has not changed since the last Configure. Observable
// coefficients are identical to the wrapped window's for any length.
//
// Buffered takes exclusive ownership of the wrapped instance: after
// construction the inner window must not be configured or queried
// directly by the caller.
type Buffered struct {
	inner     Function
	n         int
	cache     []float64
	cachedFor int
}

// NewBuffered returns a decorator owning inner. The decorator starts
// unconfigured regardless of the inner window's state.
func NewBuffered(inner Function) *Buffered {
	return &Buffered{inner: inner}
}

// Configure reconfigures the inner window if its configured length
// differs from samples, and rebuilds the cache if it was built for a
// different length. The rebuild is keyed on the length the cache was
// last built for, never on the cache size: two lengths can need the
// same number of entries (8 and 9 both need 5), so size alone cannot
// tell a stale cache from a current one.
func (b *Buffered) Configure(samples int) error {
	if samples < 1 {
		return errInvalidLength(samples)
	}

	if b.inner.Length() != samples {
		if err := b.inner.Configure(samples); err != nil {
			return err
		}
	}

	b.n = samples
	if b.cachedFor == samples {
		return nil
	}

	half := samples / 2
	if cap(b.cache) < half+1 {
		b.cache = make([]float64, half+1)
	} else {
		b.cache = b.cache[:half+1]
	}

	for j := 0; j <= half; j++ {
		b.cache[j] = b.inner.Coefficient(j)
	}

	b.cachedFor = samples

	return nil
}

// Coefficient returns the cached scaling factor for the sample at
// index, mirrored past the half length like any other variant. The
// cache holds finished coefficients (already mirrored down and
// clamped by the inner window), so the lookup is a plain load.
func (b *Buffered) Coefficient(index int) float64 {
	i, ok := mirrorIndex(index, b.n)
	if !ok || i >= len(b.cache) {
		return 0
	}

	return b.cache[i]
}

// Length returns the currently configured block length.
func (b *Buffered) Length() int { return b.n }

// Name returns "Buffered " plus the wrapped window's name, as a fresh
// value on every call.
func (b *Buffered) Name() string { return "Buffered " + b.inner.Name() }
