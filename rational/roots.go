package rational

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-rational/domain"
	"github.com/cwbudde/algo-rational/internal/linalg"
	"github.com/cwbudde/algo-rational/internal/secant"
)

// Zeros returns the zeros of the approximant, each refined by a secant solve
// of r(z) = 0. A refinement that does not converge is reported as
// ErrPolishDiverged.
func (a *Approximation) Zeros() ([]complex128, error) {
	if a.fit == nil {
		return nil, ErrNotFitted
	}

	s := a.fit

	border := make([]complex128, len(s.support))
	for j, sj := range s.support {
		border[j] = s.weights[j] * s.f[sj]
	}

	zeros, err := s.pencilEigenvalues(border)
	if err != nil {
		return nil, fmt.Errorf("rational: zeros: %w", err)
	}

	for i, z0 := range zeros {
		x0, x1 := secant.Seeds(z0, polishPerturbation)

		res := secant.Solve(s.eval, x0, x1, secant.DefaultConfig())
		if !res.Converged {
			return nil, fmt.Errorf("%w: estimate %v after %d iterations", ErrPolishDiverged, z0, res.Iterations)
		}

		zeros[i] = res.Root
	}

	return zeros, nil
}

// Poles returns the poles of the approximant.
func (a *Approximation) Poles() ([]complex128, error) {
	if a.fit == nil {
		return nil, ErrNotFitted
	}

	poles, err := a.fit.pencilEigenvalues(a.fit.weights)
	if err != nil {
		return nil, fmt.Errorf("rational: poles: %w", err)
	}

	return poles, nil
}

// PolesInDomain returns the poles that lie strictly inside the region.
func (a *Approximation) PolesInDomain() ([]complex128, error) {
	poles, err := a.Poles()
	if err != nil {
		return nil, err
	}

	return domain.Filter(a.region, poles), nil
}

// pencilEigenvalues returns the finite eigenvalues of the arrowhead pencil
//
//	    [ 0  b^T ]       [ 0  0 ]
//	A = [ 1  Z   ],  B = [ 0  I ],  Z = diag(z_1..z_m).
//
// With v = (v0, x) the pencil reads b^T x = 0 and Z x + v0·1 = e x. Writing
// x in the basis e_i - (b_i/b_j) e_j of {b^T x = 0}, with pivot j at the
// largest |b_j|, and eliminating v0 with the projector I - 1 b^T/Σb leaves
// the (m-1)×(m-1) matrix diag(z_i) - 1 u^T, u_i = b_i (z_i - z_j)/Σb, whose
// eigenvalues are the m-1 finite eigenvalues. The two infinite eigenvalues
// never enter the computation.
func (s *fitState) pencilEigenvalues(border []complex128) ([]complex128, error) {
	m := len(s.support)
	if m < 2 {
		return nil, nil
	}

	var sum complex128

	pivot := 0

	for j, b := range border {
		sum += b
		if cmplx.Abs(b) > cmplx.Abs(border[pivot]) {
			pivot = j
		}
	}

	if sum == 0 {
		return nil, ErrDegeneratePencil
	}

	zp := s.z[s.support[pivot]]
	k := linalg.NewMatrix(m-1, m-1)

	col := 0

	for i, si := range s.support {
		if i == pivot {
			continue
		}

		zi := s.z[si]
		u := border[i] * (zi - zp) / sum

		for row := range m - 1 {
			k.Set(row, col, -u)
		}

		k.Set(col, col, zi-u)
		col++
	}

	return linalg.Eigenvalues(k)
}
