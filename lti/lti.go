package lti

import "errors"

// Errors returned by lti functions.
var (
	ErrEmptySweep = errors.New("lti: sweep must not be empty")
)

// System is a linear time-invariant system exposed through its s-plane
// features and its steady-state sinusoidal response.
//
// Poles and Zeros report feature locations and may be empty. The returned
// slices are read-only to callers.
type System interface {
	Poles() []complex128
	Zeros() []complex128

	// FrequencyResponse evaluates the response at each angular frequency in
	// omega (rad/s). It returns the linear magnitude and the phase in
	// radians, both aligned with omega.
	FrequencyResponse(omega []float64) (mag, phase []float64, err error)
}
