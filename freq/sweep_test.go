package freq

import (
	"math"
	"testing"
)

func TestLogSpaceEndpoints(t *testing.T) {
	s := LogSpace(-1, 1, 3)
	if len(s) != 3 {
		t.Fatalf("length=%d want=3", len(s))
	}

	want := []float64{0.1, 1, 10}
	for i := range want {
		if math.Abs(s[i]-want[i]) > 1e-12 {
			t.Fatalf("s[%d]=%f want=%f", i, s[i], want[i])
		}
	}
}

func TestLogSpaceDegenerate(t *testing.T) {
	if s := LogSpace(0, 1, 1); s != nil {
		t.Fatalf("expected nil for n=1, got %v", s)
	}

	if s := LogSpace(0, 1, 0); s != nil {
		t.Fatalf("expected nil for n=0, got %v", s)
	}
}

func TestDefaultSweepDecadeMargin(t *testing.T) {
	features := []complex128{-1, -10}

	s := DefaultSweep(features, 0)
	if len(s) != DefaultPoints {
		t.Fatalf("length=%d want=%d", len(s), DefaultPoints)
	}

	// One decade below 1 and one above 10, rounded outward in log space.
	if math.Abs(s[0]-0.01) > 1e-12 {
		t.Fatalf("lower bound=%f want=0.01", s[0])
	}

	if math.Abs(s[len(s)-1]-100) > 1e-9 {
		t.Fatalf("upper bound=%f want=100", s[len(s)-1])
	}
}

func TestDefaultSweepBracketsEveryFeature(t *testing.T) {
	features := []complex128{complex(-0.3, 4), -25, complex(0, 0.07)}

	s := DefaultSweep(features, 0)
	lower := s[0]
	upper := s[len(s)-1]

	for _, f := range features {
		m := math.Hypot(real(f), imag(f))
		if m == 0 {
			continue
		}

		if lower > m/10 {
			t.Fatalf("lower=%g exceeds %g/10", lower, m)
		}

		if upper < m*10 {
			t.Fatalf("upper=%g below %g*10", upper, m)
		}
	}
}

func TestDefaultSweepOriginFallback(t *testing.T) {
	// A pure integrator has its only pole at the origin; the sweep must fall
	// back to the decade bracket around 1 rad/s.
	for _, features := range [][]complex128{nil, {0}, {0, 0}} {
		s := DefaultSweep(features, 0)

		if math.Abs(s[0]-0.1) > 1e-12 {
			t.Fatalf("features=%v lower=%f want=0.1", features, s[0])
		}

		if math.Abs(s[len(s)-1]-10) > 1e-12 {
			t.Fatalf("features=%v upper=%f want=10", features, s[len(s)-1])
		}
	}
}

func TestDefaultSweepIsIncreasing(t *testing.T) {
	s := DefaultSweep([]complex128{-1, -1000}, 25)

	if len(s) != 25 {
		t.Fatalf("length=%d want=25", len(s))
	}

	for i := 1; i < len(s); i++ {
		if !(s[i] > s[i-1]) {
			t.Fatalf("sweep not strictly increasing at index %d: %v", i, s[i-1:i+1])
		}
	}
}
