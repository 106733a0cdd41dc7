package cplx

import "github.com/cwbudde/algo-dft/dsp/core"

// FromComplex128 converts a builtin complex128.
func FromComplex128[T core.Float](c complex128) Complex[T] {
	return Complex[T]{re: T(real(c)), im: T(imag(c))}
}

// Complex128 returns z as a builtin complex128.
func (z Complex[T]) Complex128() complex128 {
	return complex(float64(z.re), float64(z.im))
}

// FromComplex128Slice converts a []complex128. A nil input returns nil.
func FromComplex128Slice[T core.Float](in []complex128) []Complex[T] {
	if in == nil {
		return nil
	}

	out := make([]Complex[T], len(in))
	for i, c := range in {
		out[i] = FromComplex128[T](c)
	}

	return out
}

// ToComplex128Slice converts to a []complex128. A nil input returns nil.
func ToComplex128Slice[T core.Float](in []Complex[T]) []complex128 {
	if in == nil {
		return nil
	}

	out := make([]complex128, len(in))
	for i, z := range in {
		out[i] = z.Complex128()
	}

	return out
}

// FromReals returns a sequence with re[i] + 0i.
func FromReals[T core.Float](re []T) []Complex[T] {
	if re == nil {
		return nil
	}

	out := make([]Complex[T], len(re))
	for i, v := range re {
		out[i] = Complex[T]{re: v}
	}

	return out
}

// Reals writes the real parts of in to dst and returns the number written.
func Reals[T core.Float](dst []T, in []Complex[T]) int {
	n := min(len(dst), len(in))
	for i := range n {
		dst[i] = in[i].re
	}

	return n
}

// Imags writes the imaginary parts of in to dst and returns the number written.
func Imags[T core.Float](dst []T, in []Complex[T]) int {
	n := min(len(dst), len(in))
	for i := range n {
		dst[i] = in[i].im
	}

	return n
}
