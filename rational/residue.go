package rational

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Residues returns the residue of the approximant at each of the given
// poles, typically the output of Poles.
//
// The residue is the -1 Laurent coefficient, evaluated with the N-point
// trapezoidal rule on a circle of radius ρ around the pole:
//
//	res ≈ ρ/N · Σ r(p + ρω^k) ω^k,  ω = exp(2πi/N)
//
// which is ρ/N times bin N-1 of the forward DFT of the contour samples. ρ is
// the configured residue radius, reduced to half the distance to the nearest
// other pole so that no other singularity lies inside the contour.
func (a *Approximation) Residues(poles []complex128) ([]complex128, error) {
	if a.fit == nil {
		return nil, ErrNotFitted
	}

	if len(poles) == 0 {
		return nil, nil
	}

	n := a.cfg.ResidueSamples

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("rational: failed to create FFT plan: %w", err)
	}

	all, err := a.Poles()
	if err != nil {
		return nil, err
	}

	samples := make([]complex128, n)
	spectrum := make([]complex128, n)
	out := make([]complex128, len(poles))

	for i, p := range poles {
		rho := a.contourRadius(p, all)
		if rho == 0 {
			return nil, fmt.Errorf("%w: at %v", ErrDuplicatePoles, p)
		}

		for k := range n {
			samples[k] = a.fit.eval(p + cmplx.Rect(rho, 2*math.Pi*float64(k)/float64(n)))
		}

		if err := plan.Forward(spectrum, samples); err != nil {
			return nil, err
		}

		out[i] = complex(rho/float64(n), 0) * spectrum[n-1]
	}

	return out, nil
}

// contourRadius returns the configured residue radius, limited to half the
// distance from p to the nearest computed pole other than the one p
// approximates.
func (a *Approximation) contourRadius(p complex128, poles []complex128) float64 {
	self := -1
	selfDist := math.Inf(1)

	for i, q := range poles {
		if d := cmplx.Abs(p - q); d < selfDist {
			self, selfDist = i, d
		}
	}

	rho := a.cfg.ResidueRadius

	for i, q := range poles {
		if i != self {
			rho = math.Min(rho, 0.5*cmplx.Abs(p-q))
		}
	}

	return rho
}
