package cplx

import (
	"math"

	"github.com/cwbudde/algo-dft/dsp/core"
)

// Complex is a complex number (re, im) over a floating-point scalar.
// The zero value is 0+0i.
type Complex[T core.Float] struct {
	re, im T
}

// New returns re + im·i.
func New[T core.Float](re, im T) Complex[T] {
	return Complex[T]{re: re, im: im}
}

// FromReal returns re + 0i.
func FromReal[T core.Float](re T) Complex[T] {
	return Complex[T]{re: re}
}

// FromPolar returns radius·(cos(angle) + i·sin(angle)).
func FromPolar[T core.Float](radius, angle T) Complex[T] {
	sin, cos := math.Sincos(float64(angle))
	return Complex[T]{re: radius * T(cos), im: radius * T(sin)}
}

// Real returns the real part.
func (z Complex[T]) Real() T { return z.re }

// Imag returns the imaginary part.
func (z Complex[T]) Imag() T { return z.im }

// SquaredMagnitude returns re² + im².
func (z Complex[T]) SquaredMagnitude() T {
	return z.re*z.re + z.im*z.im
}

// Magnitude returns sqrt(re² + im²).
func (z Complex[T]) Magnitude() T {
	return T(math.Sqrt(float64(z.SquaredMagnitude())))
}

// Angle returns atan2(im, re) in (-π, π].
func (z Complex[T]) Angle() T {
	return T(math.Atan2(float64(z.im), float64(z.re)))
}

// Conjugate returns re - im·i.
func (z Complex[T]) Conjugate() Complex[T] {
	return Complex[T]{re: z.re, im: -z.im}
}

// Equal reports whether both parts are exactly equal.
func (z Complex[T]) Equal(w Complex[T]) bool {
	return z.re == w.re && z.im == w.im
}

// Add returns z + w.
func (z Complex[T]) Add(w Complex[T]) Complex[T] {
	return Complex[T]{re: z.re + w.re, im: z.im + w.im}
}

// Sub returns z - w.
func (z Complex[T]) Sub(w Complex[T]) Complex[T] {
	return Complex[T]{re: z.re - w.re, im: z.im - w.im}
}

// Mul returns z · w.
func (z Complex[T]) Mul(w Complex[T]) Complex[T] {
	return Complex[T]{
		re: z.re*w.re - z.im*w.im,
		im: z.re*w.im + z.im*w.re,
	}
}

// Div returns z / w, computed as z·conj(w) / divisor(w).
//
// When |w|² is zero the denominator becomes [Epsilon] instead. The result
// is then z·conj(w)/Epsilon, which for w == 0 is 0+0i rather than a large
// value: dividing by zero yields zero, never Inf or NaN.
func (z Complex[T]) Div(w Complex[T]) Complex[T] {
	d := divisor(w)
	p := z.Mul(w.Conjugate())

	return Complex[T]{re: p.re / d, im: p.im / d}
}

// AddReal returns z + r.
func (z Complex[T]) AddReal(r T) Complex[T] { return z.Add(FromReal(r)) }

// SubReal returns z - r.
func (z Complex[T]) SubReal(r T) Complex[T] { return z.Sub(FromReal(r)) }

// MulReal returns z · r.
func (z Complex[T]) MulReal(r T) Complex[T] { return z.Mul(FromReal(r)) }

// DivReal returns z / r with the same zero-divisor policy as [Complex.Div].
func (z Complex[T]) DivReal(r T) Complex[T] { return z.Div(FromReal(r)) }

// AddAssign sets z = z + w and returns z.
func (z *Complex[T]) AddAssign(w Complex[T]) *Complex[T] {
	z.re += w.re
	z.im += w.im
	return z
}

// SubAssign sets z = z - w and returns z.
func (z *Complex[T]) SubAssign(w Complex[T]) *Complex[T] {
	z.re -= w.re
	z.im -= w.im
	return z
}

// MulAssign sets z = z · w and returns z.
func (z *Complex[T]) MulAssign(w Complex[T]) *Complex[T] {
	*z = z.Mul(w)
	return z
}

// DivAssign sets z = z / w and returns z.
func (z *Complex[T]) DivAssign(w Complex[T]) *Complex[T] {
	*z = z.Div(w)
	return z
}

// AddRealAssign sets z = z + r and returns z.
func (z *Complex[T]) AddRealAssign(r T) *Complex[T] { return z.AddAssign(FromReal(r)) }

// SubRealAssign sets z = z - r and returns z.
func (z *Complex[T]) SubRealAssign(r T) *Complex[T] { return z.SubAssign(FromReal(r)) }

// MulRealAssign sets z = z · r and returns z.
func (z *Complex[T]) MulRealAssign(r T) *Complex[T] { return z.MulAssign(FromReal(r)) }

// DivRealAssign sets z = z / r and returns z.
func (z *Complex[T]) DivRealAssign(r T) *Complex[T] { return z.DivAssign(FromReal(r)) }

// Add returns a + b.
func Add[T core.Float](a, b Complex[T]) Complex[T] { return a.Add(b) }

// Sub returns a - b.
func Sub[T core.Float](a, b Complex[T]) Complex[T] { return a.Sub(b) }

// Mul returns a · b.
func Mul[T core.Float](a, b Complex[T]) Complex[T] { return a.Mul(b) }

// Div returns a / b.
func Div[T core.Float](a, b Complex[T]) Complex[T] { return a.Div(b) }
