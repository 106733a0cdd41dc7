// Package cplx provides a generic rectangular-form complex number.
//
// [Complex] is a small value type over float32 or float64 scalars. Every
// arithmetic method returns a new value; the *Assign variants mutate the
// receiver and return it so calls can be chained:
//
//	z := cplx.New(1.0, 2.0)
//	w := z.Mul(z.Conjugate()).DivReal(2)
//	z.AddAssign(w).MulRealAssign(0.5)
//
// # Division by zero
//
// Division never fails. The divisor's squared magnitude is used as the
// denominator and, when it is exactly zero, [Epsilon] is used instead. The
// result is therefore always finite for finite operands, which deliberately
// deviates from IEEE complex division.
package cplx
