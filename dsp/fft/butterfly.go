package fft

import (
	"math"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/cplx"
)

type direction float64

const (
	forward direction = -1
	inverse direction = 1
)

// butterflies runs the radix-2 DIT stages in place over bit-reversed x.
//
// Within a stage the twiddle factor is rotated by delta after every group
// using factor += multiplier·factor, where multiplier = (cos(delta)-1,
// sin(delta)) written as (-2·sin²(delta/2), sin(delta)).
func butterflies[T core.Float](x []cplx.Complex[T], dir direction) {
	n := len(x)
	pi := T(float64(dir) * math.Pi)

	for step := 1; step < n; step <<= 1 {
		jump := step << 1
		delta := pi / T(step)
		sine := T(math.Sin(float64(delta) * 0.5))
		multiplier := cplx.New(-2*sine*sine, T(math.Sin(float64(delta))))
		factor := cplx.FromReal(T(1))

		for group := range step {
			for pair := group; pair < n; pair += jump {
				match := pair + step
				if match >= n {
					break
				}

				product := factor.Mul(x[match])
				x[match] = x[pair].Sub(product)
				x[pair].AddAssign(product)
			}

			factor = multiplier.Mul(factor).Add(factor)
		}
	}
}
