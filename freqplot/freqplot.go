package freqplot

import (
	"errors"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/cwbudde/algo-control/freq"
	"github.com/cwbudde/algo-control/lti"
)

// Errors returned by the renderers.
var (
	ErrNoSystems   = errors.New("freqplot: at least one system is required")
	ErrEmptyFigure = errors.New("freqplot: figure has no axes to render")
)

// defaultSweep derives a sweep from the pole/zero features of all systems.
func defaultSweep(systems []lti.System, n int) []float64 {
	var features []complex128
	for _, sys := range systems {
		features = append(features, sys.Poles()...)
		features = append(features, sys.Zeros()...)
	}

	return freq.DefaultSweep(features, n)
}

func points(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}

	return pts
}

// semilogX switches the horizontal axis to a base-10 logarithmic scale.
func semilogX(p *plot.Plot) {
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
}

// logLog switches both axes to base-10 logarithmic scales.
func logLog(p *plot.Plot) {
	semilogX(p)
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
}

// shareX forces both axes onto the union of their horizontal ranges.
func shareX(a, b *plot.Plot) {
	lo := math.Min(a.X.Min, b.X.Min)
	hi := math.Max(a.X.Max, b.X.Max)
	a.X.Min, b.X.Min = lo, lo
	a.X.Max, b.X.Max = hi, hi
}
