package continuation_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"math/cmplx"
	"strings"
	"testing"

	"github.com/cwbudde/algo-rational/continuation"
	"github.com/cwbudde/algo-rational/internal/testutil"
)

func linear(z complex128, k float64) complex128 { return z - complex(k, 0) }

// roots ±i√k; the anchor z = i selects the upper one.
func square(z complex128, k float64) complex128 { return z*z + complex(k, 0) }

// root ik crosses the real axis at k = 0.
func crossing(z complex128, k float64) complex128 { return z - complex(0, k) }

func mustFollower(t *testing.T, eq continuation.Equation, z complex128, k float64, opts ...continuation.Option) *continuation.Follower {
	t.Helper()

	f, err := continuation.NewFollower(eq, z, k, opts...)
	if err != nil {
		t.Fatal(err)
	}

	return f
}

func TestNewFollower_Validation(t *testing.T) {
	tests := []struct {
		name string
		eq   continuation.Equation
		z    complex128
		k    float64
		want error
	}{
		{"nil equation", nil, 0, 0, continuation.ErrNilEquation},
		{"nan root", linear, cmplx.NaN(), 0, continuation.ErrNonFiniteAnchor},
		{"inf root", linear, cmplx.Inf(), 0, continuation.ErrNonFiniteAnchor},
		{"nan parameter", linear, 0, math.NaN(), continuation.ErrNonFiniteAnchor},
		{"inf parameter", linear, 0, math.Inf(-1), continuation.ErrNonFiniteAnchor},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := continuation.NewFollower(tc.eq, tc.z, tc.k); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	f := mustFollower(t, linear, 0, 0,
		continuation.WithMinStep(1e-3),
		continuation.WithPerturbation(0),
		continuation.WithMaxIterations(20),
		continuation.WithLogger(nil),
	)

	cfg := f.Config()
	if cfg.MinStep != 1e-3 {
		t.Errorf("MinStep = %g, want 1e-3", cfg.MinStep)
	}
	if cfg.Perturbation != continuation.DefaultPerturbation {
		t.Errorf("Perturbation = %g, want default", cfg.Perturbation)
	}
	if cfg.MaxIterations != 20 {
		t.Errorf("MaxIterations = %d, want 20", cfg.MaxIterations)
	}
	if cfg.Logger == nil {
		t.Error("Logger is nil")
	}

	if z, k := f.Anchor(); z != 0 || k != 0 {
		t.Errorf("Anchor() = (%v, %v), want (0, 0)", z, k)
	}
}

func TestCalculate_Linear(t *testing.T) {
	f := mustFollower(t, linear, 0, 0)

	got := f.Calculate([]float64{1, 2, 3})
	testutil.RequireSliceNearlyEqual(t, got, []complex128{1, 2, 3}, 1e-6)
}

func TestCalculate_InputOrderBothSides(t *testing.T) {
	f := mustFollower(t, linear, 0.5, 0.5)

	k := []float64{2, -1, 0.5, -3, 1, 0.75, 2}
	want := []complex128{2, -1, 0.5, -3, 1, 0.75, 2}

	got := f.Calculate(k)
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-6)

	if got[2] != 0.5 {
		t.Errorf("target at the anchor = %v, want the anchor root exactly", got[2])
	}
}

func TestCalculate_UpperBranch(t *testing.T) {
	f := mustFollower(t, square, 1i, 1)

	got := f.Calculate([]float64{4, 0.25, 9, 2})
	want := []complex128{2i, 0.5i, 3i, complex(0, math.Sqrt2)}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-6)

	for i, z := range got {
		if imag(z) <= 0 {
			t.Errorf("root %d = %v left the upper half-plane", i, z)
		}
	}
}

func TestCalculate_ExhaustedBranch(t *testing.T) {
	f := mustFollower(t, crossing, 1i, 1)

	got := f.Calculate([]float64{0.5, -0.5, 2, -1})

	testutil.RequireNear(t, got[0], 0.5i, 1e-6)
	testutil.RequireNear(t, got[2], 2i, 1e-6)

	for _, i := range []int{1, 3} {
		if !continuation.Exhausted(got[i]) {
			t.Errorf("target %d = %v, want the exhausted sentinel", i, got[i])
		}
	}
}

func TestCalculate_NonFiniteTargets(t *testing.T) {
	f := mustFollower(t, linear, 0, 0)

	got := f.Calculate([]float64{math.NaN(), 1, math.Inf(1), math.Inf(-1)})

	for _, i := range []int{0, 2, 3} {
		if !continuation.Exhausted(got[i]) {
			t.Errorf("target %d = %v, want NaN", i, got[i])
		}
	}

	testutil.RequireNear(t, got[1], 1, 1e-6)
}

func TestCalculate_Repeatable(t *testing.T) {
	f := mustFollower(t, square, 1i, 1)

	first := f.Calculate([]float64{3, 0.5})
	second := f.Calculate([]float64{3, 0.5})

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("call results differ at %d: %v vs %v", i, first[i], second[i])
		}
	}

	if got := f.CalculateAt(3); got != first[0] {
		t.Fatalf("CalculateAt(3) = %v, want %v", got, first[0])
	}
}

func TestCalculate_EmptyTargets(t *testing.T) {
	f := mustFollower(t, linear, 0, 0)

	if got := f.Calculate(nil); len(got) != 0 {
		t.Fatalf("Calculate(nil) = %v, want empty", got)
	}
}

func TestCalculate_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	f := mustFollower(t, crossing, 1i, 1, continuation.WithLogger(logger))
	f.Calculate([]float64{-1})

	out := buf.String()
	for _, msg := range []string{"continuation: step accepted", "continuation: step exhausted"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output missing %q:\n%s", msg, out)
		}
	}
}
