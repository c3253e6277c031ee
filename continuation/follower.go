package continuation

import (
	"cmp"
	"errors"
	"math"
	"math/cmplx"
	"slices"

	"github.com/cwbudde/algo-rational/internal/secant"
)

// Errors returned by NewFollower.
var (
	ErrNilEquation     = errors.New("continuation: equation is nil")
	ErrNonFiniteAnchor = errors.New("continuation: anchor must be finite")
)

// Equation is a function of a complex point and a real parameter whose root
// is followed.
type Equation func(z complex128, k float64) complex128

// Follower tracks a root of an [Equation] from a known anchor.
//
// A Follower holds no state between calls, so one Follower may serve
// concurrent Calculate calls as long as the equation itself is safe for
// concurrent use.
type Follower struct {
	eq     Equation
	zStart complex128
	kStart float64
	cfg    Config
}

// NewFollower returns a Follower anchored at eq(zStart, kStart) = 0. The
// anchor is not verified.
func NewFollower(eq Equation, zStart complex128, kStart float64, opts ...Option) (*Follower, error) {
	if eq == nil {
		return nil, ErrNilEquation
	}

	if cmplx.IsNaN(zStart) || cmplx.IsInf(zStart) || math.IsNaN(kStart) || math.IsInf(kStart, 0) {
		return nil, ErrNonFiniteAnchor
	}

	return &Follower{eq: eq, zStart: zStart, kStart: kStart, cfg: ApplyOptions(opts...)}, nil
}

// Anchor returns the starting pair.
func (f *Follower) Anchor() (complex128, float64) { return f.zStart, f.kStart }

// Config returns the active configuration.
func (f *Follower) Config() Config { return f.cfg }

// Calculate returns the followed root at each value of kWant, in input
// order. Targets that could not be reached, including non-finite ones, are
// NaN; see [Exhausted].
func (f *Follower) Calculate(kWant []float64) []complex128 {
	out := make([]complex128, len(kWant))

	var below, above []int

	for i, k := range kWant {
		switch {
		case k < f.kStart && !math.IsInf(k, 0):
			below = append(below, i)
		case k > f.kStart && !math.IsInf(k, 0):
			above = append(above, i)
		case k == f.kStart:
			out[i] = f.zStart
		default:
			out[i] = cmplx.NaN()
		}
	}

	slices.SortStableFunc(below, func(a, b int) int { return cmp.Compare(kWant[b], kWant[a]) })
	slices.SortStableFunc(above, func(a, b int) int { return cmp.Compare(kWant[a], kWant[b]) })

	f.walk(kWant, below, out)
	f.walk(kWant, above, out)

	return out
}

// CalculateAt returns the followed root at k.
func (f *Follower) CalculateAt(k float64) complex128 {
	return f.Calculate([]float64{k})[0]
}

// Exhausted reports whether z is the sentinel for an unreached target.
func Exhausted(z complex128) bool { return cmplx.IsNaN(z) }

// walk visits the targets in order, all on one side of the anchor, and
// stores each accepted root in out.
func (f *Follower) walk(kWant []float64, targets []int, out []complex128) {
	log := f.cfg.Logger

	k, z := f.kStart, f.zStart

	for pos, idx := range targets {
		kw := kWant[idx]
		step := kw - k

		for k != kw {
			next := k + step
			if math.Abs(step) >= math.Abs(kw-k) {
				next = kw
			}

			root, ok := f.attempt(z, next)
			if ok {
				log.Debug("continuation: step accepted", "k", next, "step", next-k, "root", root)

				k, z = next, root
				step *= math.Sqrt2

				continue
			}

			step /= 10
			if math.Abs(step) < f.cfg.MinStep {
				log.Debug("continuation: step exhausted", "k", k, "target", kw, "unreached", len(targets)-pos)

				for _, rest := range targets[pos:] {
					out[rest] = cmplx.NaN()
				}

				return
			}
		}

		out[idx] = z
	}
}

// attempt solves eq(·, k) = 0 from z and reports whether the root is
// acceptable: converged and in the same half-plane as the anchor.
func (f *Follower) attempt(z complex128, k float64) (complex128, bool) {
	x0, x1 := secant.Seeds(z, f.cfg.Perturbation)

	cfg := secant.DefaultConfig()
	cfg.MaxIter = f.cfg.MaxIterations

	res := secant.Solve(func(x complex128) complex128 { return f.eq(x, k) }, x0, x1, cfg)
	if !res.Converged {
		return res.Root, false
	}

	return res.Root, sign(imag(res.Root)) == sign(imag(f.zStart))
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
