package lti

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// ZPK is a rational transfer function in zero-pole-gain form:
//
//	H(s) = K * Π(s - z_i) / Π(s - p_j)
//
// It is the reference [System] implementation for callers that know their
// feature locations directly. The zero value is the zero system (K = 0).
type ZPK struct {
	Z []complex128 // zero locations
	P []complex128 // pole locations
	K float64      // gain
}

// Poles returns the pole locations.
func (t *ZPK) Poles() []complex128 { return t.P }

// Zeros returns the zero locations.
func (t *ZPK) Zeros() []complex128 { return t.Z }

// At evaluates H at the s-plane point s.
//
// Evaluation at a pole location divides by zero and yields an infinite
// value, which log-scale plotting rejects downstream.
func (t *ZPK) At(s complex128) complex128 {
	h := complex(t.K, 0)
	for _, z := range t.Z {
		h *= s - z
	}

	for _, p := range t.P {
		h /= s - p
	}

	return h
}

// FrequencyResponse evaluates H(jω) for each ω and returns linear magnitude
// and phase in radians.
func (t *ZPK) FrequencyResponse(omega []float64) (mag, phase []float64, err error) {
	if len(omega) == 0 {
		return nil, nil, ErrEmptySweep
	}

	n := len(omega)
	re := make([]float64, n)
	im := make([]float64, n)
	phase = make([]float64, n)

	for i, w := range omega {
		h := t.At(complex(0, w))
		re[i] = real(h)
		im[i] = imag(h)
		phase[i] = math.Atan2(im[i], re[i])
	}

	mag = make([]float64, n)
	vecmath.Magnitude(mag, re, im)

	return mag, phase, nil
}
