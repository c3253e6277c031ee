package domain

import (
	"errors"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Errors returned by the shape constructors.
var (
	ErrInvalidRadius       = errors.New("domain: radius must be positive and finite")
	ErrInvalidCenter       = errors.New("domain: center must be finite")
	ErrDegenerateRectangle = errors.New("domain: rectangle bounds must be finite with min < max")
)

// Region is a subset of the complex plane with a strict interior test.
type Region interface {
	Contains(z complex128) bool
}

// ContainsEach applies r.Contains to every point.
func ContainsEach(r Region, zs []complex128) []bool {
	out := make([]bool, len(zs))
	for i, z := range zs {
		out[i] = r.Contains(z)
	}

	return out
}

// Filter returns the points of zs that lie inside r, in order.
func Filter(r Region, zs []complex128) []complex128 {
	var out []complex128

	for _, z := range zs {
		if r.Contains(z) {
			out = append(out, z)
		}
	}

	return out
}

// Option configures a shape.
type Option func(*config)

type config struct {
	src rand.Source
}

// WithSource makes random sampling draw from src, for reproducible point
// sets. A nil source keeps the global generator.
func WithSource(src rand.Source) Option {
	return func(cfg *config) {
		if src != nil {
			cfg.src = src
		}
	}
}

func applyOptions(opts []Option) config {
	var cfg config

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// uniform draws n samples from U[lo, hi).
func uniform(src rand.Source, lo, hi float64, n int) []float64 {
	dist := distuv.Uniform{Min: lo, Max: hi, Src: src}

	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}

	return out
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
