//go:build !fastmath

package spectrum

// peakTol is the relative tolerance for magnitudes returned by Peak.
const peakTol = 1e-11
