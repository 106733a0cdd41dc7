package fft_test

import (
	"fmt"

	"github.com/cwbudde/algo-dft/dsp/cplx"
	"github.com/cwbudde/algo-dft/dsp/fft"
)

func ExampleTransform() {
	in := cplx.FromReals([]float64{1, 1, 1, 1})
	out := make([]cplx.Complex[float64], len(in))

	if err := fft.Transform(in, out, len(in)); err != nil {
		fmt.Println(err)
		return
	}

	for _, z := range out {
		fmt.Printf("%.1f ", z.Magnitude())
	}
	fmt.Println()
	// Output:
	// 4.0 0.0 0.0 0.0
}

func ExampleTransform_invalidArgument() {
	out := make([]cplx.Complex[float64], 4)

	err := fft.Transform(nil, out, 4)
	fmt.Println(err)
	// Output:
	// fft: invalid argument: nil slice: input
}

func ExamplePlan_Forward() {
	plan, err := fft.NewPlan64(8)
	if err != nil {
		fmt.Println(err)
		return
	}

	buf := make([]cplx.Complex[float64], 8)
	buf[0] = cplx.FromReal(1.0)

	// In-place: dst and src may be the same slice.
	if err := plan.Forward(buf, buf); err != nil {
		fmt.Println(err)
		return
	}

	if err := plan.Inverse(buf, buf); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%.1f %.1f\n", buf[0].Magnitude(), buf[1].Magnitude())
	// Output:
	// 1.0 0.0
}

func ExampleBitReversalIndices() {
	fmt.Println(fft.BitReversalIndices(8))
	// Output:
	// [0 4 2 6 1 5 3 7]
}
