package rational

import (
	"math"
	"math/cmplx"
)

// Cleanup performs one Froissart doublet removal pass and returns the number
// of support nodes removed.
//
// For every pole inside the region the approximant is integrated around a
// small square (half-diagonal 1e-5, corners at 45°) with the trapezoidal
// rule. A pole whose |integral| / max|F| is below the clean tolerance has a
// negligible residue and is taken to be half of a doublet: the support node
// nearest to it is moved back to the excluded set. All flagged nodes are
// removed in one batch before the weights are recomputed.
func (a *Approximation) Cleanup() (int, error) {
	if a.fit == nil {
		return 0, ErrNotFitted
	}

	s := a.fit

	poles, err := a.PolesInDomain()
	if err != nil {
		return 0, err
	}

	flagged := make([]bool, len(s.support))

	for _, p := range poles {
		integral := squareContour(s.eval, p, contourHalfDiagonal)
		if cmplx.Abs(integral)/s.scale >= a.cfg.CleanTolerance {
			continue
		}

		flagged[s.nearestNode(p)] = true
	}

	n := s.removeFromSupport(flagged)
	if n == 0 {
		return 0, nil
	}

	s.removed += n

	if _, err := s.calcWeightsResiduals(); err != nil {
		return n, err
	}

	a.cfg.Logger.Debug("rational: cleanup pass",
		"poles", len(poles),
		"removed", n,
		"support", len(s.support),
		"residual", s.residual,
	)

	return n, nil
}

// nearestNode returns the support position closest to p.
func (s *fitState) nearestNode(p complex128) int {
	best := 0
	bestDist := math.Inf(1)

	for j, sj := range s.support {
		if d := cmplx.Abs(p - s.z[sj]); d < bestDist {
			best = j
			bestDist = d
		}
	}

	return best
}

// squareContour integrates f counter-clockwise around the square with
// corners p + l·exp(iπ(2k-1)/4), k = 0..3, using the trapezoidal rule on each
// side.
func squareContour(f func(complex128) complex128, p complex128, l float64) complex128 {
	var z, v [4]complex128

	for k := range 4 {
		z[k] = p + cmplx.Rect(l, -0.25*math.Pi+0.5*math.Pi*float64(k))
		v[k] = f(z[k])
	}

	var sum complex128

	for k := range 4 {
		next := (k + 1) % 4
		sum += 0.5 * (z[next] - z[k]) * (v[next] + v[k])
	}

	return sum
}
