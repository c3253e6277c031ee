package testutil

import "math/rand/v2"

// DeterministicPoints returns n points drawn uniformly from the rectangle
// [xmin, xmax) × [ymin, ymax) with a fixed seed.
func DeterministicPoints(seed uint64, n int, xmin, xmax, ymin, ymax float64) []complex128 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]complex128, n)
	for i := range out {
		x := xmin + rng.Float64()*(xmax-xmin)
		y := ymin + rng.Float64()*(ymax-ymin)
		out[i] = complex(x, y)
	}
	return out
}

// DeterministicNoise returns n complex values with independent real and
// imaginary parts uniform in [-amplitude, amplitude), with a fixed seed.
func DeterministicNoise(seed uint64, amplitude float64, n int) []complex128 {
	rng := rand.New(rand.NewPCG(seed, ^seed))
	out := make([]complex128, n)
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out
}

// Sample evaluates fn at every point of z.
func Sample(fn func(complex128) complex128, z []complex128) []complex128 {
	out := make([]complex128, len(z))
	for i, v := range z {
		out[i] = fn(v)
	}
	return out
}
