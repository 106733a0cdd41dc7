package core

import "math"

const defaultEpsilon = 1e-12

// Float is the scalar constraint shared by the complex type and the transforms.
type Float interface {
	~float32 | ~float64
}

// NearlyEqual reports whether a and b are equal within eps.
// The comparison is absolute near zero and relative otherwise.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
