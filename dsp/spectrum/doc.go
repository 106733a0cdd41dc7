// Package spectrum provides helpers over transform output.
//
// The package does not compute transforms itself. It reduces sequences of
// complex bins, such as those written by the fft package, to per-bin
// magnitude, power and phase, total energy, and peak location.
package spectrum
