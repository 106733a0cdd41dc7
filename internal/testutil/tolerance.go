package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/cplx"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireSequenceNearlyEqual fails t if got and want differ in length or if
// any pair is further apart than eps (absolute distance in the complex plane).
func RequireSequenceNearlyEqual[T core.Float](t *testing.T, got, want []cplx.Complex[T], eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := float64(got[i].Sub(want[i]).Magnitude())
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)",
				i, got[i].Complex128(), want[i].Complex128(), diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireSequenceFinite fails t if any real or imaginary part is NaN or Inf.
func RequireSequenceFinite[T core.Float](t *testing.T, data []cplx.Complex[T]) {
	t.Helper()
	for i, z := range data {
		for _, v := range []float64{float64(z.Real()), float64(z.Imag())} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("index %d: non-finite value %v", i, z.Complex128())
			}
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// MaxSequenceDiff returns the largest |a[i] - b[i]| between two sequences.
// Returns an error if the sequences differ in length.
func MaxSequenceDiff[T core.Float](a, b []cplx.Complex[T]) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := float64(a[i].Sub(b[i]).Magnitude())
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
