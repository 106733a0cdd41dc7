package cplx

import (
	"math"
	"testing"
)

func TestDivisorSubstitutesEpsilon(t *testing.T) {
	if got := divisor(New(0.0, 0.0)); got != Epsilon {
		t.Fatalf("divisor(0) = %v, want %v", got, Epsilon)
	}
	if got := divisor(New(3.0, 4.0)); got != 25 {
		t.Fatalf("divisor(3+4i) = %v, want 25", got)
	}
	if got := divisor(New[float32](0, 0)); got != float32(Epsilon) {
		t.Fatalf("float32 divisor(0) = %v, want %v", got, float32(Epsilon))
	}
}

func TestDivideByZeroIsFinite(t *testing.T) {
	divisors := []Complex[float64]{
		New(0.0, 0.0),
		New(math.Copysign(0, -1), 0.0),
		New(1e-200, 0.0),
		New(0.0, 1e-170),
	}

	for _, w := range divisors {
		z := New(1.0, 0.0).Div(w)
		for _, v := range []float64{z.Real(), z.Imag()} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("(1+0i)/%v = %v, want finite", w, z)
			}
		}
	}
}

func TestDivideByZeroUsesEpsilonDenominator(t *testing.T) {
	// |w|² underflows to zero, so the quotient is z·conj(w)/Epsilon.
	w := New(1e-200, -1e-200)
	z := New(2.0, 3.0)

	want := z.Mul(w.Conjugate())
	got := z.Div(w)

	if got.Real() != want.Real()/Epsilon || got.Imag() != want.Imag()/Epsilon {
		t.Fatalf("z/w = %v, want %v scaled by 1/Epsilon", got, want)
	}

	if q := z.Div(Complex[float64]{}); q.Real() != 0 || q.Imag() != 0 {
		t.Fatalf("z/0 = %v, want 0", q)
	}
}

func TestDivAssignMatchesDiv(t *testing.T) {
	z := New(5.0, -2.0)
	w := New(-0.5, 1.25)

	want := z.Div(w)
	z.DivAssign(w)

	if !z.Equal(want) {
		t.Fatalf("DivAssign = %v, want %v", z, want)
	}

	zero := New(5.0, -2.0)
	zero.DivRealAssign(0)
	if math.IsNaN(zero.Real()) || math.IsInf(zero.Real(), 0) {
		t.Fatalf("DivRealAssign(0) = %v, want finite", zero)
	}
}

func TestDivInvertsMul(t *testing.T) {
	z := New(1.25, -3.5)
	w := New(0.75, 2.0)

	got := z.Mul(w).Div(w)
	if math.Abs(got.Real()-z.Real()) > 1e-12 || math.Abs(got.Imag()-z.Imag()) > 1e-12 {
		t.Fatalf("(z·w)/w = %v, want %v", got, z)
	}
}

func TestDivideByZeroYieldsZero(t *testing.T) {
	z := New(1.0, 0.0)
	zero := Complex[float64]{}

	a, b := z, z
	results := map[string]Complex[float64]{
		"Div":           z.Div(zero),
		"DivReal":       z.DivReal(0),
		"package Div":   Div(z, zero),
		"DivAssign":     *a.DivAssign(zero),
		"DivRealAssign": *b.DivRealAssign(0),
	}

	for name, got := range results {
		if got.Real() != 0 || got.Imag() != 0 {
			t.Errorf("%s: (1+0i)/0 = %v, want 0+0i", name, got.Complex128())
		}
	}

	if got := New[float32](1, 0).Div(Complex[float32]{}); got.Real() != 0 || got.Imag() != 0 {
		t.Errorf("float32 (1+0i)/0 = %v, want 0+0i", got.Complex128())
	}
}
