package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/cplx"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

// getScratch unpacks in into pooled real and imaginary slices.
func getScratch[T core.Float](in []cplx.Complex[T]) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	n := len(in)
	buf.data = core.EnsureLen(buf.data, 2*n)
	re, im = buf.data[:n], buf.data[n:]

	for i, z := range in {
		re[i] = float64(z.Real())
		im[i] = float64(z.Imag())
	}

	return re, im, buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each bin.
//
// The square roots run through algo-vecmath, which dispatches to SIMD kernels
// when available. Scratch buffers are pooled internally, so in steady state
// this allocates only the output slice.
func Magnitude[T core.Float](in []cplx.Complex[T]) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(in)
	vecmath.Magnitude(out, re, im)
	putScratch(buf)

	return out
}

// Power returns |X[k]|² for each bin.
func Power[T core.Float](in []cplx.Complex[T]) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(in)
	vecmath.Power(out, re, im)
	putScratch(buf)

	return out
}

// Phase returns arg(X[k]) for each bin in radians, in (-π, π].
func Phase[T core.Float](in []cplx.Complex[T]) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	for i, z := range in {
		out[i] = float64(z.Angle())
	}

	return out
}

// Energy returns Σ|X[k]|². For a length-N forward transform X of x,
// Energy(X) == N·Energy(x).
func Energy[T core.Float](in []cplx.Complex[T]) float64 {
	sum := 0.0
	for _, p := range Power(in) {
		sum += p
	}

	return sum
}

// Peak returns the index and magnitude of the strongest bin in in[from:to].
// Out-of-range bounds are clamped; an empty range returns (-1, 0).
//
// Bins are ranked by power, so the index is exact. Built with the fastmath
// tag, the returned magnitude uses an approximate square root (relative
// error around 1e-6).
func Peak[T core.Float](in []cplx.Complex[T], from, to int) (int, float64) {
	from = max(from, 0)
	to = min(to, len(in))
	if from >= to {
		return -1, 0
	}

	best := from
	bestPower := float64(in[from].SquaredMagnitude())

	for i := from + 1; i < to; i++ {
		if p := float64(in[i].SquaredMagnitude()); p > bestPower {
			best, bestPower = i, p
		}
	}

	return best, mathSqrt(bestPower)
}
