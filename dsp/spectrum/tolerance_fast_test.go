//go:build fastmath

package spectrum

// peakTol is the relative tolerance for magnitudes returned by Peak when
// the square root is approximated.
const peakTol = 1e-5
