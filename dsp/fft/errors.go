package fft

import (
	"errors"
	"fmt"
)

// Errors returned by transform functions and plans.
var (
	// ErrInvalidArgument is the root of every error in this package.
	ErrInvalidArgument = errors.New("fft: invalid argument")

	// ErrInvalidLength is returned by NewPlan when the size is not a positive
	// power of two.
	ErrInvalidLength = fmt.Errorf("%w: length must be a positive power of 2", ErrInvalidArgument)

	// ErrNilSlice is returned when a nil slice is passed in.
	ErrNilSlice = fmt.Errorf("%w: nil slice", ErrInvalidArgument)

	// ErrLengthMismatch is returned when a slice is shorter than the transform
	// (or, for plans, not exactly the plan length).
	ErrLengthMismatch = fmt.Errorf("%w: slice length mismatch", ErrInvalidArgument)
)
