package freq

import "math"

// Decibels converts linear magnitude values to decibels, 20*log10(mag).
// Non-positive magnitudes map to -Inf or NaN per math.Log10.
func Decibels(mag []float64) []float64 {
	out := make([]float64, len(mag))
	for i, m := range mag {
		out[i] = 20 * math.Log10(m)
	}

	return out
}

// Hertz converts angular frequencies in rad/s to Hz by dividing by 2π.
func Hertz(omega []float64) []float64 {
	out := make([]float64, len(omega))
	for i, w := range omega {
		out[i] = w / (2 * math.Pi)
	}

	return out
}

// Degrees converts phase values from radians to degrees.
func Degrees(rad []float64) []float64 {
	out := make([]float64, len(rad))
	for i, r := range rad {
		out[i] = r * 180 / math.Pi
	}

	return out
}

// Unwrap returns a new phase slice with spurious jumps of the given period
// removed. A step between consecutive samples larger than half the period
// is treated as a wrap and compensated by whole periods, preserving
// continuity of the underlying curve.
//
// Use period 2π for radians and 360 for degrees.
func Unwrap(phase []float64, period float64) []float64 {
	if len(phase) == 0 {
		return nil
	}

	out := make([]float64, len(phase))
	out[0] = phase[0]
	half := period / 2
	offset := 0.0

	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]

		for d > half {
			offset -= period
			d -= period
		}

		for d < -half {
			offset += period
			d += period
		}

		out[i] = phase[i] + offset
	}

	return out
}
