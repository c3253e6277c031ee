package rational

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-rational/internal/linalg"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// fitState holds everything one Calculate run mutates. Every sample index is
// in exactly one of support and excluded; weights is aligned with support
// and residuals with excluded.
type fitState struct {
	f, z []complex128

	support  []int
	excluded []int

	weights   []complex128
	residuals []float64

	scale    float64 // max|F|
	residual float64 // max(residuals) / scale

	steps   int
	removed int
}

func newFitState(f, z []complex128) (*fitState, error) {
	s := &fitState{
		f:        slices.Clone(f),
		z:        slices.Clone(z),
		excluded: make([]int, len(f)),
	}

	for i := range s.excluded {
		s.excluded[i] = i
	}

	s.scale = floats.Max(magnitudes(s.f))
	if s.scale == 0 {
		return nil, ErrZeroFunction
	}

	return s, nil
}

// firstStep seeds the support with the first two samples and fits weights.
func (s *fitState) firstStep() error {
	s.moveToSupport(0)
	s.moveToSupport(0)

	_, err := s.calcWeightsResiduals()
	return err
}

// step moves the excluded sample with the largest residual into the support
// and refits. It returns the new relative residual.
func (s *fitState) step() (float64, error) {
	s.moveToSupport(floats.MaxIdx(s.residuals))
	s.steps++

	return s.calcWeightsResiduals()
}

// moveToSupport moves excluded[pos] to the end of support.
func (s *fitState) moveToSupport(pos int) {
	s.support = append(s.support, s.excluded[pos])
	s.excluded = slices.Delete(s.excluded, pos, pos+1)
}

// removeFromSupport moves the support nodes at the flagged positions back to
// excluded and returns how many were moved.
func (s *fitState) removeFromSupport(flagged []bool) int {
	kept := s.support[:0]
	n := 0

	for pos, idx := range s.support {
		if flagged[pos] {
			s.excluded = append(s.excluded, idx)
			n++
			continue
		}

		kept = append(kept, idx)
	}

	s.support = kept
	slices.Sort(s.excluded)

	return n
}

// calcWeightsResiduals recomputes the weights from the Loewner matrix of the
// current partition and the residual at every excluded sample.
func (s *fitState) calcWeightsResiduals() (float64, error) {
	rows, cols := len(s.excluded), len(s.support)
	cauchy := linalg.NewMatrix(rows, cols)
	loewner := linalg.NewMatrix(rows, cols)

	for i, ei := range s.excluded {
		for j, sj := range s.support {
			c := 1 / (s.z[ei] - s.z[sj])
			cauchy.Set(i, j, c)
			loewner.Set(i, j, s.f[ei]*c-c*s.f[sj])
		}
	}

	w, err := linalg.SmallestRightSingularVector(loewner)
	if err != nil {
		return 0, fmt.Errorf("rational: weights for %d nodes: %w", cols, err)
	}

	s.weights = w

	diff := make([]complex128, rows)

	for i, ei := range s.excluded {
		var num, den complex128

		for j, sj := range s.support {
			c := cauchy.At(i, j) * w[j]
			num += c * s.f[sj]
			den += c
		}

		diff[i] = s.f[ei] - num/den
	}

	s.residuals = magnitudes(diff)
	s.residual = floats.Max(s.residuals) / s.scale

	return s.residual, nil
}

// eval is the barycentric formula, returning the stored value at a node.
func (s *fitState) eval(z complex128) complex128 {
	var num, den complex128

	for j, sj := range s.support {
		d := z - s.z[sj]
		if d == 0 {
			return s.f[sj]
		}

		c := s.weights[j] / d
		num += c * s.f[sj]
		den += c
	}

	return num / den
}

func (s *fitState) gather(src []complex128) []complex128 {
	out := make([]complex128, len(s.support))
	for j, sj := range s.support {
		out[j] = src[sj]
	}

	return out
}

// magnitudes returns |x| element-wise.
func magnitudes(x []complex128) []float64 {
	re := make([]float64, len(x))
	im := make([]float64, len(x))

	for i, v := range x {
		re[i] = real(v)
		im[i] = imag(v)
	}

	out := make([]float64, len(x))
	vecmath.Magnitude(out, re, im)

	return out
}
