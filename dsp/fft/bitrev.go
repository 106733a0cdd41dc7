package fft

import "github.com/cwbudde/algo-dft/dsp/core"

// nextReversed advances a bit-reversed counter for a transform of numPoints:
// starting below the top bit, set bits are cleared until a clear bit is
// found, which is then set. Starting from 0 and applying it n times yields
// reverse(n) without computing log2(numPoints).
func nextReversed(target, numPoints int) int {
	mask := numPoints >> 1
	for target&mask != 0 {
		target &^= mask
		mask >>= 1
	}

	return target | mask
}

// BitReversalIndices returns the bit-reversal permutation for a size-n
// radix-2 transform: element i of the input lands at index [i] of the
// rearranged sequence. It returns nil unless n is a positive power of 2.
func BitReversalIndices(n int) []int {
	if !core.IsPowerOfTwo(n) {
		return nil
	}

	indices := make([]int, n)
	target := 0

	for i := range n {
		indices[i] = target
		target = nextReversed(target, n)
	}

	return indices
}
