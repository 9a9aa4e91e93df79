package window

import (
	"errors"
	"math"
	"testing"
)

// countingWindow wraps a Window and counts calls, to observe whether
// the decorator skips or redoes expensive work.
type countingWindow struct {
	*Window
	configures int
	coeffCalls int
}

func (c *countingWindow) Configure(samples int) error {
	c.configures++
	return c.Window.Configure(samples)
}

func (c *countingWindow) Coefficient(index int) float64 {
	c.coeffCalls++
	return c.Window.Coefficient(index)
}

func TestBufferedEquivalence(t *testing.T) {
	for _, typ := range Types() {
		t.Run(Info(typ).Name, func(t *testing.T) {
			for _, n := range testLengths {
				plain := New(typ)
				buffered := NewBuffered(New(typ))

				if err := plain.Configure(n); err != nil {
					t.Fatal(err)
				}
				if err := buffered.Configure(n); err != nil {
					t.Fatal(err)
				}

				for i := 0; i < n; i++ {
					want := plain.Coefficient(i)
					got := buffered.Coefficient(i)
					if math.Abs(got-want) > 1e-6*math.Max(1, math.Abs(want)) {
						t.Fatalf("n=%d index=%d: buffered=%v plain=%v", n, i, got, want)
					}
				}
			}
		})
	}
}

func TestBufferedRebuildOnLengthChange(t *testing.T) {
	// 8 and 9 share the same cache size (half-length plus one is 5 for
	// both), so a size-based rebuild check would wrongly keep the old
	// coefficients.
	b := NewBuffered(New(TypeHann))
	if err := b.Configure(8); err != nil {
		t.Fatal(err)
	}
	if err := b.Configure(9); err != nil {
		t.Fatal(err)
	}

	fresh := New(TypeHann)
	if err := fresh.Configure(9); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 9; i++ {
		if got, want := b.Coefficient(i), fresh.Coefficient(i); got != want {
			t.Fatalf("index %d: got %v from cache, want %v for n=9", i, got, want)
		}
	}
}

func TestBufferedSkipsRecomputeForSameLength(t *testing.T) {
	inner := &countingWindow{Window: New(TypeBlackmanHarris)}
	b := NewBuffered(inner)

	if err := b.Configure(8); err != nil {
		t.Fatal(err)
	}
	if inner.configures != 1 {
		t.Fatalf("configures=%d after first Configure, want 1", inner.configures)
	}
	if inner.coeffCalls != 5 {
		t.Fatalf("coeffCalls=%d after first Configure, want 5 (half-length+1)", inner.coeffCalls)
	}

	// Lookups are served from the cache.
	for i := 0; i < 8; i++ {
		b.Coefficient(i)
	}
	if inner.coeffCalls != 5 {
		t.Fatalf("coeffCalls=%d after lookups, want 5", inner.coeffCalls)
	}

	// Reconfiguring with the same length redoes nothing.
	if err := b.Configure(8); err != nil {
		t.Fatal(err)
	}
	if inner.configures != 1 || inner.coeffCalls != 5 {
		t.Fatalf("configures=%d coeffCalls=%d after same-length Configure, want 1 and 5",
			inner.configures, inner.coeffCalls)
	}

	// A length change reconfigures the inner window and refills.
	if err := b.Configure(9); err != nil {
		t.Fatal(err)
	}
	if inner.configures != 2 || inner.coeffCalls != 10 {
		t.Fatalf("configures=%d coeffCalls=%d after length change, want 2 and 10",
			inner.configures, inner.coeffCalls)
	}
}

func TestBufferedRebuildsWhenInnerAlreadyConfigured(t *testing.T) {
	inner := New(TypeWelch)
	if err := inner.Configure(8); err != nil {
		t.Fatal(err)
	}

	// The decorator starts with an empty cache even though the inner
	// window already matches the requested length.
	b := NewBuffered(inner)
	if err := b.Configure(8); err != nil {
		t.Fatal(err)
	}

	fresh := New(TypeWelch)
	if err := fresh.Configure(8); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 8; i++ {
		if got, want := b.Coefficient(i), fresh.Coefficient(i); got != want {
			t.Fatalf("index %d: got %v, want %v", i, got, want)
		}
	}
}

func TestBufferedValidation(t *testing.T) {
	b := NewBuffered(New(TypeHann))

	if err := b.Configure(0); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("Configure(0) err=%v, want ErrInvalidLength", err)
	}

	if b.Length() != 0 {
		t.Fatalf("length=%d, want 0 before successful Configure", b.Length())
	}
	if c := b.Coefficient(0); c != 0 {
		t.Fatalf("unconfigured coefficient(0)=%v, want 0", c)
	}

	if err := b.Configure(8); err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{-1, 8, 100} {
		if c := b.Coefficient(i); c != 0 {
			t.Fatalf("coefficient(%d)=%v, want 0 for out-of-range index", i, c)
		}
	}
}

func TestBufferedName(t *testing.T) {
	b := NewBuffered(New(TypeHann))
	if got := b.Name(); got != "Buffered Hann" {
		t.Fatalf("name=%q, want %q", got, "Buffered Hann")
	}

	// Composition nests.
	bb := NewBuffered(b)
	if got := bb.Name(); got != "Buffered Buffered Hann" {
		t.Fatalf("name=%q, want %q", got, "Buffered Buffered Hann")
	}

	// Repeated calls return equal, independent values.
	if b.Name() != b.Name() {
		t.Fatal("repeated Name calls disagree")
	}
}
