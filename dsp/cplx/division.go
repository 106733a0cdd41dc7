package cplx

import "github.com/cwbudde/algo-dft/dsp/core"

// Epsilon replaces a divisor whose squared magnitude is exactly zero.
const Epsilon = 1e-10

// divisor returns the denominator used by every division: |w|², or Epsilon
// when |w|² == 0.
func divisor[T core.Float](w Complex[T]) T {
	d := w.SquaredMagnitude()
	if d == 0 {
		return T(Epsilon)
	}

	return d
}
