package fft

import "math"

// Normalization selects how a [Plan] scales its transforms.
type Normalization int

const (
	// NormalizeInverse leaves Forward unscaled and scales Inverse by 1/N.
	NormalizeInverse Normalization = iota
	// NormalizeNone leaves both directions unscaled.
	NormalizeNone
	// NormalizeUnitary scales both directions by 1/sqrt(N).
	NormalizeUnitary
)

// String returns a human-readable name for the normalization.
func (m Normalization) String() string {
	switch m {
	case NormalizeInverse:
		return "inverse"
	case NormalizeNone:
		return "none"
	case NormalizeUnitary:
		return "unitary"
	default:
		return "unknown"
	}
}

func (m Normalization) valid() bool {
	return m >= NormalizeInverse && m <= NormalizeUnitary
}

// factors returns the forward and inverse scale factors for size n.
func (m Normalization) factors(n int) (fwd, inv float64) {
	switch m {
	case NormalizeNone:
		return 1, 1
	case NormalizeUnitary:
		s := 1 / math.Sqrt(float64(n))
		return s, s
	default:
		return 1, 1 / float64(n)
	}
}

// Option configures a [Plan].
type Option func(*config)

type config struct {
	normalization Normalization
}

func defaultConfig() config {
	return config{normalization: NormalizeInverse}
}

// WithNormalization sets the plan's scaling convention. Unknown values are ignored.
func WithNormalization(m Normalization) Option {
	return func(c *config) {
		if m.valid() {
			c.normalization = m
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
