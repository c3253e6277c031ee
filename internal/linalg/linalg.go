// Package linalg provides the complex dense factorizations used by the
// rational approximation engine.
//
// gonum ships real LAPACK routines only, so every complex problem is solved
// through its real embedding
//
//	[ Re(A)  -Im(A) ]
//	[ Im(A)   Re(A) ]
//
// which maps A·(x+iy) onto the stacked real vector [x; y].
package linalg

import (
	"errors"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Errors returned by the factorizations.
var (
	ErrDimension   = errors.New("linalg: invalid matrix dimensions")
	ErrSVDFailed   = errors.New("linalg: singular value decomposition did not converge")
	ErrEigenFailed = errors.New("linalg: eigenvalue decomposition did not converge")
)

// Matrix is a dense row-major complex matrix.
type Matrix struct {
	Rows, Cols int
	Data       []complex128
}

// NewMatrix allocates a zero rows×cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, Data: make([]complex128, rows*cols)}
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) complex128 { return m.Data[i*m.Cols+j] }

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v complex128) { m.Data[i*m.Cols+j] = v }

func (m *Matrix) valid() bool {
	return m != nil && m.Rows > 0 && m.Cols > 0 && len(m.Data) == m.Rows*m.Cols
}

// embed builds the real 2r×2c embedding of m.
func (m *Matrix) embed() *mat.Dense {
	r, c := m.Rows, m.Cols
	out := mat.NewDense(2*r, 2*c, nil)

	for i := range r {
		for j := range c {
			v := m.At(i, j)
			re, im := real(v), imag(v)
			out.Set(i, j, re)
			out.Set(i, c+j, -im)
			out.Set(r+i, j, im)
			out.Set(r+i, c+j, re)
		}
	}

	return out
}

// SmallestRightSingularVector returns a unit right singular vector of m
// belonging to its smallest singular value. For wide matrices the vector
// spans part of the null space.
//
// Singular values of the embedding are those of m, each repeated twice, and
// both right singular vectors [x; y] and [-y; x] map back to the same complex
// vector up to a phase, so the last column of V is always a valid choice.
func SmallestRightSingularVector(m *Matrix) ([]complex128, error) {
	if !m.valid() {
		return nil, ErrDimension
	}

	var svd mat.SVD
	if !svd.Factorize(m.embed(), mat.SVDFull) {
		return nil, ErrSVDFailed
	}

	var v mat.Dense
	svd.VTo(&v)

	c := m.Cols
	last := 2*c - 1
	out := make([]complex128, c)

	for j := range c {
		out[j] = complex(v.At(j, last), v.At(c+j, last))
	}

	return out, nil
}

// Eigenvalues returns the eigenvalues of the square matrix m in no
// particular order.
//
// The embedding of A has the spectrum of A together with that of conj(A).
// Shifting A by iσ with σ above the spectral radius moves every eigenvalue of
// A into the upper half plane and every eigenvalue of conj(A) into the lower
// half plane, which separates the two sets without inspecting eigenvectors.
func Eigenvalues(m *Matrix) ([]complex128, error) {
	if !m.valid() || m.Rows != m.Cols {
		return nil, ErrDimension
	}

	n := m.Rows
	sigma := 1 + frobenius(m)

	shifted := &Matrix{Rows: n, Cols: n, Data: append([]complex128(nil), m.Data...)}
	for i := range n {
		shifted.Set(i, i, shifted.At(i, i)+complex(0, sigma))
	}

	var eig mat.Eigen
	if !eig.Factorize(shifted.embed(), mat.EigenNone) {
		return nil, ErrEigenFailed
	}

	out := make([]complex128, 0, n)
	for _, v := range eig.Values(nil) {
		if imag(v) > 0 {
			out = append(out, v-complex(0, sigma))
		}
	}

	if len(out) != n {
		return nil, ErrEigenFailed
	}

	return out, nil
}

func frobenius(m *Matrix) float64 {
	var s float64
	for _, v := range m.Data {
		a := cmplx.Abs(v)
		s += a * a
	}

	return math.Sqrt(s)
}
