// Package secant implements a bounded complex secant root finder shared by
// zero polishing and root continuation.
package secant

import (
	"math"
	"math/cmplx"
)

// Default stopping parameters.
const (
	DefaultTol     = 1.48e-8
	DefaultRTol    = 0.0
	DefaultMaxIter = 50
)

// Config bounds one secant solve.
type Config struct {
	Tol     float64 // absolute step tolerance
	RTol    float64 // relative step tolerance
	MaxIter int
}

// DefaultConfig returns the default stopping parameters.
func DefaultConfig() Config {
	return Config{Tol: DefaultTol, RTol: DefaultRTol, MaxIter: DefaultMaxIter}
}

// Result is the outcome of a solve. Root holds the last iterate even when
// the solve did not converge.
type Result struct {
	Root       complex128
	Iterations int
	Converged  bool
}

// Seeds returns the starting pair z0, z0(1+eps)±eps used throughout the
// module. The offset keeps the sign of the real part of the scaled guess so
// that the second point never lands on the origin.
func Seeds(z0 complex128, eps float64) (complex128, complex128) {
	z1 := z0 * complex(1+eps, 0)
	if real(z1) >= 0 {
		z1 += complex(eps, 0)
	} else {
		z1 -= complex(eps, 0)
	}

	return z0, z1
}

// Solve finds a root of f starting from x0 and x1.
//
// The iteration stops when two successive iterates satisfy
// |p - p1| <= Tol + RTol*|p1|. Equal function values at distinct points and
// non-finite values end the solve unconverged.
func Solve(f func(complex128) complex128, x0, x1 complex128, cfg Config) Result {
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = DefaultMaxIter
	}

	p0, p1 := x0, x1
	q0, q1 := f(p0), f(p1)

	if cmplx.Abs(q1) > cmplx.Abs(q0) {
		p0, p1 = p1, p0
		q0, q1 = q1, q0
	}

	for itr := range cfg.MaxIter {
		if q1 == 0 {
			return Result{Root: p1, Iterations: itr, Converged: true}
		}

		if !finite(q0) || !finite(q1) || q1 == q0 {
			return Result{Root: p1, Iterations: itr}
		}

		var p complex128
		if cmplx.Abs(q1) > cmplx.Abs(q0) {
			r := q0 / q1
			p = (-r*p1 + p0) / (1 - r)
		} else {
			r := q1 / q0
			p = (-r*p0 + p1) / (1 - r)
		}

		if !finite(p) {
			return Result{Root: p1, Iterations: itr + 1}
		}

		if cmplx.Abs(p-p1) <= cfg.Tol+cfg.RTol*cmplx.Abs(p1) {
			return Result{Root: p, Iterations: itr + 1, Converged: true}
		}

		p0, q0 = p1, q1
		p1 = p
		q1 = f(p1)
	}

	return Result{Root: p1, Iterations: cfg.MaxIter}
}

func finite(z complex128) bool {
	return !cmplx.IsNaN(z) && !math.IsInf(real(z), 0) && !math.IsInf(imag(z), 0)
}
