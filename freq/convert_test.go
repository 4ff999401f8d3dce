package freq

import (
	"math"
	"testing"
)

func TestDecibels(t *testing.T) {
	out := Decibels([]float64{0.1, 1, 10})

	want := []float64{-20, 0, 20}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Fatalf("out[%d]=%f want=%f", i, out[i], want[i])
		}
	}
}

func TestDecibelsMonotonic(t *testing.T) {
	in := []float64{0.01, 0.5, 2, 7, 1000}

	out := Decibels(in)
	for i := 1; i < len(out); i++ {
		if !(out[i] > out[i-1]) {
			t.Fatalf("not monotonic at index %d: %v", i, out[i-1:i+1])
		}
	}
}

func TestHertz(t *testing.T) {
	out := Hertz([]float64{2 * math.Pi, 4 * math.Pi})

	if math.Abs(out[0]-1) > 1e-12 || math.Abs(out[1]-2) > 1e-12 {
		t.Fatalf("unexpected Hz conversion: %v", out)
	}
}

func TestDegrees(t *testing.T) {
	out := Degrees([]float64{0, math.Pi / 2, -math.Pi})

	want := []float64{0, 90, -180}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Fatalf("out[%d]=%f want=%f", i, out[i], want[i])
		}
	}
}

func TestUnwrapRemovesWrapJumps(t *testing.T) {
	// Phase falling through -180° wraps to +180°; unwrapping restores the
	// continuous descent.
	in := []float64{-90, -170, 170, 100}

	out := Unwrap(in, 360)
	want := []float64{-90, -170, -190, -260}

	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Fatalf("out[%d]=%f want=%f", i, out[i], want[i])
		}
	}
}

func TestUnwrapIdempotentUnderRewrap(t *testing.T) {
	// Re-wrapping an unwrapped sequence into [-180, 180) and unwrapping
	// again must reproduce it (all sequences here start inside the range,
	// so the constant 360k offset is zero).
	unwrapped := []float64{-10, -95, -176, -233, -310, -359, -420}

	rewrapped := make([]float64, len(unwrapped))
	for i, v := range unwrapped {
		rewrapped[i] = math.Mod(v+180, 360)
		if rewrapped[i] < 0 {
			rewrapped[i] += 360
		}
		rewrapped[i] -= 180
	}

	out := Unwrap(rewrapped, 360)
	for i := range unwrapped {
		if math.Abs(out[i]-unwrapped[i]) > 1e-12 {
			t.Fatalf("out[%d]=%f want=%f", i, out[i], unwrapped[i])
		}
	}
}

func TestUnwrapEmpty(t *testing.T) {
	if out := Unwrap(nil, 360); out != nil {
		t.Fatalf("expected nil for empty input, got %v", out)
	}
}
