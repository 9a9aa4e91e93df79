package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-window/dsp/window"
	"github.com/cwbudde/algo-window/internal/testutil"
)

func ExampleAnalyzer_Magnitude() {
	a, err := New(window.NewBuffered(window.New(window.TypeHann)))
	if err != nil {
		panic(err)
	}

	// A sine at bin 4 of a 64-sample block.
	signal := testutil.DeterministicSine(4, 64, 1.0, 64)

	mag, err := a.Magnitude(signal)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s peak bin: %d\n", a.WindowName(), PeakBin(mag))
	// Output:
	// Buffered Hann peak bin: 4
}
