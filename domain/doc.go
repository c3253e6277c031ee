// Package domain provides the regions of the complex plane that bound a
// rational approximation: a [Circle] and an axis-aligned [Rectangle].
//
// Both shapes implement [Region], whose Contains method is a strict interior
// test: points on the boundary are outside. Each shape also generates sample
// points for building approximations:
//
//	rect, err := domain.NewRectangle([2]float64{-1, 1}, [2]float64{-1, 1})
//	if err != nil {
//	    // degenerate bounds
//	}
//	z := rect.RandomSamplePoints(200)
//
// Random generation uses the global math/rand/v2 generator unless a source
// is supplied with [WithSource].
package domain
