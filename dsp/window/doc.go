// Package window provides spectral-analysis window functions used to
// taper a block of audio samples before a Fourier transform, reducing
// the spectral leakage caused by analyzing a finite, non-periodic
// segment.
//
// The package exposes two levels of API. The stateless helpers
// (Generate, Apply) compute a full coefficient slice in one call. The
// instance API ([Function], [Window], [Buffered]) serves real-time
// transform loops: a window is configured once per block length and
// then queried per sample index on every windowing pass, with the
// [Buffered] decorator trading memory for repeated-call latency.
//
// All windows are symmetric: only the first half of the coefficients is
// evaluated from the variant formula and the second half is mirrored,
// so Coefficient(i) == Coefficient(N-1-i) holds exactly. Results are
// clamped to the closed range [0, 1].
//
// Instances are not safe for concurrent use. A window (and its cache,
// if decorated) is owned and mutated by exactly one processing loop at
// a time; this is a hard precondition, not an implementation detail.
package window
