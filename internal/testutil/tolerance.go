package testutil

import (
	"fmt"
	"math/cmplx"
	"testing"
)

// RequireNear fails t if |got - want| exceeds eps.
func RequireNear(t *testing.T, got, want complex128, eps float64) {
	t.Helper()
	if d := cmplx.Abs(got - want); d > eps {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, d, eps)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := cmplx.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element has a NaN or Inf part.
func RequireFinite(t *testing.T, data []complex128) {
	t.Helper()
	for i, v := range data {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// Nearest returns the element of set closest to want and its distance.
// Returns an error for an empty set.
func Nearest(set []complex128, want complex128) (complex128, float64, error) {
	if len(set) == 0 {
		return 0, 0, fmt.Errorf("empty set, want element near %v", want)
	}
	best := set[0]
	bestDist := cmplx.Abs(set[0] - want)
	for _, v := range set[1:] {
		if d := cmplx.Abs(v - want); d < bestDist {
			best, bestDist = v, d
		}
	}
	return best, bestDist, nil
}

// RequireContainsNear fails t unless some element of set lies within eps of
// want.
func RequireContainsNear(t *testing.T, set []complex128, want complex128, eps float64) {
	t.Helper()
	got, d, err := Nearest(set, want)
	if err != nil {
		t.Fatal(err)
	}
	if d > eps {
		t.Fatalf("no element within %v of %v: nearest %v (diff %v), set %v", eps, want, got, d, set)
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []complex128) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := cmplx.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
