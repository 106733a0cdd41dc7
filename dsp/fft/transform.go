package fft

import (
	"fmt"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/cplx"
)

// Transform writes the forward DFT of input[:numPoints] to output[:numPoints]:
//
//	output[k] = Σ input[n]·exp(-2πi·nk/numPoints)
//
// numPoints must be a positive power of two for the result to be the DFT.
// input and output must not overlap; use a [Plan] for in-place transforms.
// Errors wrap [ErrInvalidArgument] and leave output untouched.
func Transform[T core.Float](input, output []cplx.Complex[T], numPoints int) error {
	if err := validate(input, output, numPoints); err != nil {
		return err
	}

	rearrange(input, output, numPoints)
	butterflies(output[:numPoints], forward)

	return nil
}

// InverseTransform writes the inverse DFT of input[:numPoints] to
// output[:numPoints], scaled by 1/numPoints so that it undoes [Transform].
func InverseTransform[T core.Float](input, output []cplx.Complex[T], numPoints int) error {
	if err := validate(input, output, numPoints); err != nil {
		return err
	}

	x := output[:numPoints]
	rearrange(input, x, numPoints)
	butterflies(x, inverse)
	scale(x, 1/float64(numPoints))

	return nil
}

func validate[T core.Float](input, output []cplx.Complex[T], numPoints int) error {
	if input == nil {
		return fmt.Errorf("%w: input", ErrNilSlice)
	}
	if output == nil {
		return fmt.Errorf("%w: output", ErrNilSlice)
	}
	if numPoints <= 0 {
		return fmt.Errorf("%w: numPoints must be > 0: %d", ErrInvalidArgument, numPoints)
	}
	if len(input) < numPoints {
		return fmt.Errorf("%w: input has %d points, need %d", ErrLengthMismatch, len(input), numPoints)
	}
	if len(output) < numPoints {
		return fmt.Errorf("%w: output has %d points, need %d", ErrLengthMismatch, len(output), numPoints)
	}
	return nil
}

// rearrange copies input into output in bit-reversed index order.
func rearrange[T core.Float](input, output []cplx.Complex[T], numPoints int) {
	if !core.IsPowerOfTwo(numPoints) {
		// The counter skips slots for other sizes.
		core.Zero(output[:numPoints])
	}

	target := 0
	for n := range numPoints {
		if target < numPoints {
			output[target] = input[n]
		}
		target = nextReversed(target, numPoints)
	}
}

func scale[T core.Float](x []cplx.Complex[T], s float64) {
	if s == 1 {
		return
	}

	f := T(s)
	for i := range x {
		x[i].MulRealAssign(f)
	}
}
