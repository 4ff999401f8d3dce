package freq_test

import (
	"fmt"

	"github.com/cwbudde/algo-control/freq"
)

func ExampleDefaultSweep() {
	// Poles at -1 and -10 rad/s, no zeros.
	features := []complex128{-1, -10}
	sweep := freq.DefaultSweep(features, 0)
	fmt.Printf("%.2f .. %.0f (%d points)\n", sweep[0], sweep[len(sweep)-1], len(sweep))
	// Output:
	// 0.01 .. 100 (50 points)
}

func ExampleDecibels() {
	db := freq.Decibels([]float64{0.1, 1, 10})
	fmt.Printf("%.0f %.0f %.0f\n", db[0], db[1], db[2])
	// Output:
	// -20 0 20
}

func ExampleUnwrap() {
	wrapped := []float64{-90, -170, 170, 100}
	unwrapped := freq.Unwrap(wrapped, 360)
	fmt.Printf("%.0f %.0f %.0f %.0f\n", unwrapped[0], unwrapped[1], unwrapped[2], unwrapped[3])
	// Output:
	// -90 -170 -190 -260
}
