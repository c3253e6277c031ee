package rational

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-rational/domain"
)

// Errors returned by Approximation methods.
var (
	ErrNilRegion        = errors.New("rational: region is nil")
	ErrLengthMismatch   = errors.New("rational: F and Z must have the same length")
	ErrTooFewSamples    = errors.New("rational: at least 4 samples are required")
	ErrNonFiniteSample  = errors.New("rational: samples must be finite")
	ErrDuplicateSample  = errors.New("rational: sample points must be distinct")
	ErrZeroFunction     = errors.New("rational: all function samples are zero")
	ErrNotFitted        = errors.New("rational: Calculate has not completed")
	ErrDegeneratePencil = errors.New("rational: pencil border sums to zero")
	ErrPolishDiverged   = errors.New("rational: secant polishing of zero did not converge")
	ErrDuplicatePoles   = errors.New("rational: coincident poles")
)

const (
	minSamples = 4

	// half-diagonal of the square contour used to detect doublets
	contourHalfDiagonal = 1e-5

	polishPerturbation = 1e-6
)

// Approximation is an AAA rational approximant bound to a region.
//
// An Approximation is not safe for concurrent use.
type Approximation struct {
	region domain.Region
	cfg    Config
	fit    *fitState
}

// New returns an Approximation whose cleanup considers poles inside region.
func New(region domain.Region, opts ...Option) (*Approximation, error) {
	if region == nil {
		return nil, ErrNilRegion
	}

	return &Approximation{region: region, cfg: ApplyOptions(opts...)}, nil
}

// Config returns the active configuration.
func (a *Approximation) Config() Config { return a.cfg }

// Calculate fits the approximant to samples f taken at points z.
//
// Any previous fit is discarded. On error the Approximation is left
// unfitted.
func (a *Approximation) Calculate(f, z []complex128) error {
	a.fit = nil

	if err := validateSamples(f, z); err != nil {
		return err
	}

	s, err := newFitState(f, z)
	if err != nil {
		return err
	}

	log := a.cfg.Logger

	if err := s.firstStep(); err != nil {
		return err
	}

	maxSteps := len(f)/2 - 1
	if a.cfg.MaxSteps > 0 && a.cfg.MaxSteps < maxSteps {
		maxSteps = a.cfg.MaxSteps
	}

	for range maxSteps {
		res, err := s.step()
		if err != nil {
			return err
		}

		log.Debug("rational: greedy step", "support", len(s.support), "residual", res)

		if res < a.cfg.Tolerance {
			break
		}
	}

	a.fit = s

	if a.cfg.Cleanup {
		for {
			n, err := a.Cleanup()
			if err != nil {
				a.fit = nil
				return err
			}

			if n == 0 {
				break
			}
		}
	}

	log.Debug("rational: fit complete",
		"samples", len(f),
		"support", len(s.support),
		"steps", s.steps,
		"removed", s.removed,
		"residual", s.residual,
	)

	return nil
}

func validateSamples(f, z []complex128) error {
	if len(f) != len(z) {
		return fmt.Errorf("%w: len(F)=%d len(Z)=%d", ErrLengthMismatch, len(f), len(z))
	}

	if len(f) < minSamples {
		return fmt.Errorf("%w: got %d", ErrTooFewSamples, len(f))
	}

	seen := make(map[complex128]int, len(z))

	for i := range z {
		if !finite(f[i]) || !finite(z[i]) {
			return fmt.Errorf("%w: index %d", ErrNonFiniteSample, i)
		}

		if j, ok := seen[z[i]]; ok {
			return fmt.Errorf("%w: indices %d and %d", ErrDuplicateSample, j, i)
		}

		seen[z[i]] = i
	}

	return nil
}

// Evaluate returns r(z). At a support node it returns the stored sample
// value. Before a successful Calculate it returns NaN.
func (a *Approximation) Evaluate(z complex128) complex128 {
	if a.fit == nil {
		return cmplx.NaN()
	}

	return a.fit.eval(z)
}

// EvaluateAll returns r at every point of zs.
func (a *Approximation) EvaluateAll(zs []complex128) []complex128 {
	out := make([]complex128, len(zs))
	for i, z := range zs {
		out[i] = a.Evaluate(z)
	}

	return out
}

// Support returns the sample indices used as support nodes, in the order
// they were added.
func (a *Approximation) Support() []int {
	if a.fit == nil {
		return nil
	}

	return append([]int(nil), a.fit.support...)
}

// Excluded returns the sample indices not used as support nodes, in
// ascending order.
func (a *Approximation) Excluded() []int {
	if a.fit == nil {
		return nil
	}

	return append([]int(nil), a.fit.excluded...)
}

// Nodes returns the support node locations, aligned with Weights.
func (a *Approximation) Nodes() []complex128 {
	if a.fit == nil {
		return nil
	}

	return a.fit.gather(a.fit.z)
}

// Values returns the sample values at the support nodes, aligned with Weights.
func (a *Approximation) Values() []complex128 {
	if a.fit == nil {
		return nil
	}

	return a.fit.gather(a.fit.f)
}

// Weights returns the barycentric weights.
func (a *Approximation) Weights() []complex128 {
	if a.fit == nil {
		return nil
	}

	return append([]complex128(nil), a.fit.weights...)
}

// Residual returns the latest maximum residual over the excluded samples,
// relative to max|F|.
func (a *Approximation) Residual() float64 {
	if a.fit == nil {
		return math.NaN()
	}

	return a.fit.residual
}

// Steps returns the number of greedy growth steps taken by Calculate.
func (a *Approximation) Steps() int {
	if a.fit == nil {
		return 0
	}

	return a.fit.steps
}

// Removed returns the number of support nodes removed by cleanup passes.
func (a *Approximation) Removed() int {
	if a.fit == nil {
		return 0
	}

	return a.fit.removed
}

func finite(z complex128) bool {
	return !cmplx.IsNaN(z) && !cmplx.IsInf(z)
}
