// Package spectrum provides a windowed forward-FFT analyzer, the
// consumer side of the dsp/window capability.
//
// An [Analyzer] owns one window function and one FFT plan. The window
// is configured once per block length and queried per sample index on
// every pass, so wrapping the window in a [window.Buffered] decorator
// pays off whenever consecutive blocks share a length.
//
// Analyzers are not safe for concurrent use; each belongs to a single
// processing loop.
package spectrum
