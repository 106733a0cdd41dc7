// Package fft computes discrete Fourier transforms of power-of-two length
// with the iterative radix-2 Cooley-Tukey algorithm (decimation in time).
//
// The transform runs in two passes over a caller-allocated output sequence:
// a bit-reversal rearrangement of the input, then log2(N) butterfly stages
// whose twiddle factors are advanced with a half-angle trigonometric
// recurrence instead of per-element sin/cos calls.
//
// # Usage
//
// For one-shot transforms, use the free functions:
//
//	out := make([]cplx.Complex[float64], len(in))
//	err := fft.Transform(in, out, len(in))         // forward, unscaled
//	err = fft.InverseTransform(out, in, len(out))  // inverse, scaled by 1/N
//
// For repeated transforms of one size, create a [Plan]. A plan validates the
// length once, caches the permutation table and supports in-place use:
//
//	p, err := fft.NewPlan64(1024)
//	err = p.Forward(buf, buf)
//
// # Errors
//
// Invalid arguments are reported with errors wrapping [ErrInvalidArgument];
// nothing is written to the output in that case. [Transform] does not verify
// that numPoints is a power of two: other sizes produce a meaningless result
// but never index outside output[:numPoints].
//
// # Concurrency
//
// The functions keep no state between calls. A [Plan] is immutable after
// construction and may be shared by goroutines working on disjoint buffers.
package fft
