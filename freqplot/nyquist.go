package freqplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/cwbudde/algo-control/lti"
)

// Nyquist renders the Nyquist curve of a system onto the figure's first
// cell: the complex response traced over the sweep as a solid curve, its
// mirror image (negated imaginary part, representing negative frequencies)
// as a dashed curve, and a plus marker at the critical point (-1, 0).
//
// When no sweep is supplied via [WithSweep], one is derived from the
// system's pole/zero magnitudes.
func Nyquist(fig *Figure, sys lti.System, opts ...Option) error {
	if sys == nil {
		return ErrNoSystems
	}

	cfg := applyOpts(opts)

	omega := cfg.omega
	if omega == nil {
		omega = defaultSweep([]lti.System{sys}, cfg.sampled)
	}

	mag, phase, err := sys.FrequencyResponse(omega)
	if err != nil {
		return fmt.Errorf("freqplot: frequency response: %w", err)
	}

	x, y := nyquistCurve(mag, phase)

	mirror := make([]float64, len(y))
	for i, v := range y {
		mirror[i] = -v
	}

	ax := fig.Axes(0, 0)

	if err := fig.addLine(ax, points(x, y), false); err != nil {
		return err
	}

	if err := fig.addLine(ax, points(x, mirror), true); err != nil {
		return err
	}

	marker, err := plotter.NewScatter(plotter.XYs{{X: -1, Y: 0}})
	if err != nil {
		return fmt.Errorf("freqplot: critical point marker: %w", err)
	}

	marker.GlyphStyle = draw.GlyphStyle{
		Color:  color.Black,
		Radius: vg.Points(4),
		Shape:  draw.PlusGlyph{},
	}
	ax.Add(marker)

	ax.X.Label.Text = "Real axis"
	ax.Y.Label.Text = "Imaginary axis"

	return nil
}

// nyquistCurve converts a polar response into Cartesian curve coordinates.
func nyquistCurve(mag, phase []float64) (x, y []float64) {
	x = make([]float64, len(mag))
	y = make([]float64, len(mag))

	for i := range mag {
		x[i] = mag[i] * math.Cos(phase[i])
		y[i] = mag[i] * math.Sin(phase[i])
	}

	return x, y
}
