package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-dft/dsp/cplx"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// ComplexNoise generates a complex sequence with independent uniform real and
// imaginary parts in [-amplitude, amplitude).
func ComplexNoise(seed int64, amplitude float64, length int) []cplx.Complex[float64] {
	out := make([]cplx.Complex[float64], length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = cplx.New(re, im)
	}
	return out
}

// Impulse generates a complex unit impulse at the given position.
func Impulse(length, pos int) []cplx.Complex[float64] {
	out := make([]cplx.Complex[float64], length)
	if pos >= 0 && pos < length {
		out[pos] = cplx.FromReal(1.0)
	}
	return out
}

// DC generates a constant-valued complex sequence.
func DC(value cplx.Complex[float64], length int) []cplx.Complex[float64] {
	out := make([]cplx.Complex[float64], length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a sequence of length n filled with 1+0i.
func Ones(n int) []cplx.Complex[float64] {
	return DC(cplx.FromReal(1.0), n)
}

// Tone returns exp(2πi·bin·k/length) for k in [0, length).
func Tone(bin float64, length int) []cplx.Complex[float64] {
	out := make([]cplx.Complex[float64], length)
	for k := range out {
		out[k] = cplx.FromPolar(1.0, 2*math.Pi*bin*float64(k)/float64(length))
	}
	return out
}
