package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []complex128{1, 2i, 3}
	b := []complex128{1, 2i + 0.1, 3}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]complex128{1}, []complex128{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbsDiffIdentical(t *testing.T) {
	a := []complex128{1, 2 - 1i, 3}

	d, err := MaxAbsDiff(a, a)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if d != 0 {
		t.Fatalf("MaxAbsDiff = %v, want 0 for identical slices", d)
	}
}

func TestNearest(t *testing.T) {
	got, d, err := Nearest([]complex128{0, 1 + 1i, -2}, 0.9+0.9i)
	if err != nil {
		t.Fatal(err)
	}

	if got != 1+1i || math.Abs(d-math.Sqrt(0.02)) > 1e-15 {
		t.Fatalf("Nearest = %v (%v), want 1+1i", got, d)
	}

	if _, _, err := Nearest(nil, 0); err == nil {
		t.Fatal("expected error for empty set")
	}
}

func TestDeterministicPoints(t *testing.T) {
	a := DeterministicPoints(11, 40, -1, 1, 2, 3)
	b := DeterministicPoints(11, 40, -1, 1, 2, 3)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
		x, y := real(a[i]), imag(a[i])
		if x < -1 || x >= 1 || y < 2 || y >= 3 {
			t.Fatalf("point %v out of bounds", a[i])
		}
	}
}

func TestDeterministicNoiseAmplitude(t *testing.T) {
	for i, v := range DeterministicNoise(5, 1e-3, 100) {
		if math.Abs(real(v)) > 1e-3 || math.Abs(imag(v)) > 1e-3 {
			t.Fatalf("noise[%d] = %v exceeds amplitude", i, v)
		}
	}
}

func TestSample(t *testing.T) {
	got := Sample(func(z complex128) complex128 { return z * z }, []complex128{1i, 2})
	if got[0] != -1 || got[1] != 4 {
		t.Fatalf("Sample = %v, want [-1 4]", got)
	}
}
