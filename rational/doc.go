// Package rational computes adaptive barycentric rational approximations of
// complex functions from samples (the AAA algorithm) and analyses the
// resulting approximant.
//
// An approximant is written in barycentric form over a set of support nodes
// z_j with sample values f_j and weights w_j:
//
//	       Σ w_j f_j / (z - z_j)
//	r(z) = ---------------------
//	       Σ w_j     / (z - z_j)
//
// [Approximation.Calculate] grows the support set greedily: starting from the
// first two samples, it repeatedly adds the sample with the largest residual
// and recomputes the weights as the smallest right singular vector of the
// Loewner matrix, until the maximum residual relative to max|F| falls below
// the tolerance or half the samples are in use. Spurious pole/zero pairs
// (Froissart doublets) inside the region are then removed by checking the
// contour integral around each pole.
//
// Zeros and poles are the finite eigenvalues of an arrowhead matrix pencil
// built from the nodes and weights. Zeros are refined with a secant step on
// the approximant itself.
//
// # Usage
//
//	rect, _ := domain.NewRectangle([2]float64{-1, 1}, [2]float64{-1, 1})
//	z := rect.RandomSamplePoints(200)
//	f := make([]complex128, len(z))
//	for i := range z {
//	    f[i] = cmplx.Tan(z[i])
//	}
//
//	approx, _ := rational.New(rect)
//	if err := approx.Calculate(f, z); err != nil {
//	    // singular value decomposition failed
//	}
//	poles, _ := approx.Poles()
package rational
