package domain

import (
	"math"
	"math/cmplx"
)

// Circle is the open disc |z - Center| < Radius.
type Circle struct {
	center complex128
	radius float64
	cfg    config
}

var _ Region = (*Circle)(nil)

// NewCircle returns the disc with the given center and radius.
func NewCircle(center complex128, radius float64, opts ...Option) (*Circle, error) {
	if !finite(radius) || radius <= 0 {
		return nil, ErrInvalidRadius
	}

	if !finite(real(center)) || !finite(imag(center)) {
		return nil, ErrInvalidCenter
	}

	return &Circle{center: center, radius: radius, cfg: applyOptions(opts)}, nil
}

// Center returns the center of the disc.
func (c *Circle) Center() complex128 { return c.center }

// Radius returns the radius of the disc.
func (c *Circle) Radius() float64 { return c.radius }

// Contains reports whether z lies strictly inside the circle.
func (c *Circle) Contains(z complex128) bool {
	return cmplx.Abs(z-c.center) < c.radius
}

// ContainsEach reports Contains for every point.
func (c *Circle) ContainsEach(zs []complex128) []bool { return ContainsEach(c, zs) }

// SamplePoints returns n random points in the disc, with the radius drawn
// uniformly from [0, r) and the angle uniformly from [0, 2π).
//
// The density therefore falls off as 1/|z - center|: points cluster near the
// center. Use [Circle.AreaUniformSamplePoints] for a uniform cover.
func (c *Circle) SamplePoints(n int) []complex128 {
	if n <= 0 {
		return nil
	}

	return c.polar(uniform(c.cfg.src, 0, c.radius, n), n)
}

// AreaUniformSamplePoints returns n random points distributed uniformly over
// the area of the disc.
func (c *Circle) AreaUniformSamplePoints(n int) []complex128 {
	if n <= 0 {
		return nil
	}

	r := uniform(c.cfg.src, 0, 1, n)
	for i := range r {
		r[i] = c.radius * math.Sqrt(r[i])
	}

	return c.polar(r, n)
}

func (c *Circle) polar(r []float64, n int) []complex128 {
	phi := uniform(c.cfg.src, 0, 2*math.Pi, n)

	out := make([]complex128, n)
	for i := range out {
		out[i] = cmplx.Rect(r[i], phi[i]) + c.center
	}

	return out
}
