package fft

import (
	"fmt"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/cplx"
)

// Plan is a reusable transform of one power-of-two size.
//
// Forward produces the same values as [Transform] bit for bit (before any
// normalization). dst and src may be the same slice; partially overlapping
// slices are not supported.
type Plan[T core.Float] struct {
	n      int
	bitrev []int
	cfg    config
}

// NewPlan creates a plan for size-n transforms. n must be a positive power of 2.
func NewPlan[T core.Float](n int, opts ...Option) (*Plan[T], error) {
	if !core.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	return &Plan[T]{
		n:      n,
		bitrev: BitReversalIndices(n),
		cfg:    applyOptions(opts),
	}, nil
}

// NewPlan32 creates a single-precision plan.
func NewPlan32(n int, opts ...Option) (*Plan[float32], error) {
	return NewPlan[float32](n, opts...)
}

// NewPlan64 creates a double-precision plan.
func NewPlan64(n int, opts ...Option) (*Plan[float64], error) {
	return NewPlan[float64](n, opts...)
}

// Len returns the transform size.
func (p *Plan[T]) Len() int { return p.n }

// Normalization returns the plan's scaling convention.
func (p *Plan[T]) Normalization() Normalization { return p.cfg.normalization }

// Forward computes the forward DFT of src into dst.
func (p *Plan[T]) Forward(dst, src []cplx.Complex[T]) error {
	if err := p.check(dst, src); err != nil {
		return err
	}

	p.permute(dst, src)
	butterflies(dst, forward)

	fwd, _ := p.cfg.normalization.factors(p.n)
	scale(dst, fwd)

	return nil
}

// Inverse computes the inverse DFT of src into dst.
func (p *Plan[T]) Inverse(dst, src []cplx.Complex[T]) error {
	if err := p.check(dst, src); err != nil {
		return err
	}

	p.permute(dst, src)
	butterflies(dst, inverse)

	_, inv := p.cfg.normalization.factors(p.n)
	scale(dst, inv)

	return nil
}

func (p *Plan[T]) check(dst, src []cplx.Complex[T]) error {
	if dst == nil {
		return fmt.Errorf("%w: dst", ErrNilSlice)
	}
	if src == nil {
		return fmt.Errorf("%w: src", ErrNilSlice)
	}
	if len(dst) != p.n || len(src) != p.n {
		return fmt.Errorf("%w: dst=%d src=%d plan=%d", ErrLengthMismatch, len(dst), len(src), p.n)
	}
	return nil
}

func (p *Plan[T]) permute(dst, src []cplx.Complex[T]) {
	if &dst[0] != &src[0] {
		for i, j := range p.bitrev {
			dst[j] = src[i]
		}
		return
	}

	for i, j := range p.bitrev {
		if i < j {
			dst[i], dst[j] = dst[j], dst[i]
		}
	}
}
