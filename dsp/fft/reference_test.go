package fft

import (
	"fmt"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"
	dspfft "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-dft/dsp/cplx"
	"github.com/cwbudde/algo-dft/internal/testutil"
)

// referenceFFT computes an unscaled forward DFT with a third-party backend.
type referenceFFT struct {
	name    string
	forward func(src []complex128) ([]complex128, error)
}

var references = []referenceFFT{
	{
		name: "algo-fft",
		forward: func(src []complex128) ([]complex128, error) {
			plan, err := algofft.NewPlan64(len(src))
			if err != nil {
				return nil, fmt.Errorf("NewPlan64: %w", err)
			}

			dst := make([]complex128, len(src))
			if err := plan.Forward(dst, src); err != nil {
				return nil, fmt.Errorf("Forward: %w", err)
			}

			return dst, nil
		},
	},
	{
		name: "gonum",
		forward: func(src []complex128) ([]complex128, error) {
			return fourier.NewCmplxFFT(len(src)).Coefficients(nil, src), nil
		},
	},
	{
		name: "go-dsp",
		forward: func(src []complex128) ([]complex128, error) {
			return dspfft.FFT(src), nil
		},
	},
}

func TestTransformMatchesReferenceBackends(t *testing.T) {
	t.Parallel()

	sizes := []int{4, 8, 32, 128, 1024, 4096}

	for _, ref := range references {
		for _, n := range sizes {
			t.Run(fmt.Sprintf("%s/n=%d", ref.name, n), func(t *testing.T) {
				t.Parallel()

				in := testutil.ComplexNoise(int64(n)^0x5eed, 1, n)
				got := make([]cplx.Complex[float64], n)
				if err := Transform(in, got, n); err != nil {
					t.Fatalf("Transform error: %v", err)
				}

				src := cplx.ToComplex128Slice(in)
				want, err := ref.forward(src)
				if err != nil {
					t.Fatalf("%s: %v", ref.name, err)
				}

				testutil.RequireSequenceNearlyEqual(t, got, cplx.FromComplex128Slice[float64](want), 1e-9)
			})
		}
	}
}
