package domain

// Rectangle is the open axis-aligned rectangle xmin < Re z < xmax,
// ymin < Im z < ymax.
type Rectangle struct {
	xmin, xmax float64
	ymin, ymax float64
	cfg        config
}

var _ Region = (*Rectangle)(nil)

// NewRectangle returns the rectangle spanning x = (xmin, xmax) and
// y = (ymin, ymax).
func NewRectangle(x, y [2]float64, opts ...Option) (*Rectangle, error) {
	for _, v := range [...]float64{x[0], x[1], y[0], y[1]} {
		if !finite(v) {
			return nil, ErrDegenerateRectangle
		}
	}

	if x[0] >= x[1] || y[0] >= y[1] {
		return nil, ErrDegenerateRectangle
	}

	return &Rectangle{
		xmin: x[0], xmax: x[1],
		ymin: y[0], ymax: y[1],
		cfg: applyOptions(opts),
	}, nil
}

// XRange returns (xmin, xmax).
func (r *Rectangle) XRange() [2]float64 { return [2]float64{r.xmin, r.xmax} }

// YRange returns (ymin, ymax).
func (r *Rectangle) YRange() [2]float64 { return [2]float64{r.ymin, r.ymax} }

// Contains reports whether z lies strictly inside the rectangle. Points on
// any edge are outside.
func (r *Rectangle) Contains(z complex128) bool {
	x, y := real(z), imag(z)
	return x > r.xmin && x < r.xmax && y > r.ymin && y < r.ymax
}

// ContainsEach reports Contains for every point.
func (r *Rectangle) ContainsEach(zs []complex128) []bool { return ContainsEach(r, zs) }

// RandomSamplePoints returns n points with independent uniform real and
// imaginary parts.
func (r *Rectangle) RandomSamplePoints(n int) []complex128 {
	if n <= 0 {
		return nil
	}

	x := uniform(r.cfg.src, r.xmin, r.xmax, n)
	y := uniform(r.cfg.src, r.ymin, r.ymax, n)

	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(x[i], y[i])
	}

	return out
}

// Grid returns n evenly spaced coordinates along each axis, both endpoints
// included.
func (r *Rectangle) Grid(n int) (xs, ys []float64) {
	return linspace(r.xmin, r.xmax, n), linspace(r.ymin, r.ymax, n)
}

// GridPoints returns the n×n points of [Rectangle.Grid], with x varying
// fastest.
func (r *Rectangle) GridPoints(n int) []complex128 {
	xs, ys := r.Grid(n)
	if len(xs) == 0 {
		return nil
	}

	out := make([]complex128, 0, n*n)
	for _, y := range ys {
		for _, x := range xs {
			out = append(out, complex(x, y))
		}
	}

	return out
}

func linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}

	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)

	for i := range out {
		out[i] = lo + float64(i)*step
	}

	out[n-1] = hi

	return out
}
