package freq

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// DefaultPoints is the sample count of a derived sweep.
const DefaultPoints = 50

// LogSpace returns n logarithmically spaced angular frequencies covering
// [10^lo, 10^hi] inclusive. It returns nil when n < 2.
func LogSpace(lo, hi float64, n int) []float64 {
	if n < 2 {
		return nil
	}

	dst := make([]float64, n)

	return floats.LogSpan(dst, math.Pow(10, lo), math.Pow(10, hi))
}

// DefaultSweep derives a logarithmic sweep from s-plane feature locations
// (pole and zero positions), spanning one decade below the smallest and one
// decade above the largest feature magnitude, rounded outward to integer
// decades:
//
//	lower = floor(min log10 |f|) - 1
//	upper = ceil(max log10 |f|) + 1
//
// Features at the origin contribute no finite corner frequency and are
// discarded. If nothing remains, the sweep brackets 1 rad/s, giving the
// [0.1, 10] default range. n <= 0 selects [DefaultPoints] samples.
func DefaultSweep(features []complex128, n int) []float64 {
	if n <= 0 {
		n = DefaultPoints
	}

	lo := math.Inf(1)
	hi := math.Inf(-1)

	for _, f := range features {
		m := cmplx.Abs(f)
		if m == 0 {
			continue
		}

		l := math.Log10(m)
		lo = math.Min(lo, l)
		hi = math.Max(hi, l)
	}

	if lo > hi {
		lo, hi = 0, 0
	}

	return LogSpace(math.Floor(lo)-1, math.Ceil(hi)+1, n)
}
