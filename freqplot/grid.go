package freqplot

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// grid draws grid lines at every tick of both axes, including the unlabeled
// minor ticks that log-scale tickers emit. The stock plotter draws major
// ticks only, which leaves log-log plots without their per-decade
// subdivision lines.
type grid struct {
	major draw.LineStyle
	minor draw.LineStyle
}

func newGrid() *grid {
	return &grid{
		major: draw.LineStyle{
			Color: color.Gray{Y: 192},
			Width: vg.Points(0.5),
		},
		minor: draw.LineStyle{
			Color: color.Gray{Y: 228},
			Width: vg.Points(0.25),
		},
	}
}

// Plot implements plot.Plotter.
func (g *grid) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for _, tk := range plt.X.Tick.Marker.Ticks(plt.X.Min, plt.X.Max) {
		x := trX(tk.Value)
		if !c.ContainsX(x) {
			continue
		}

		sty := g.major
		if tk.IsMinor() {
			sty = g.minor
		}

		c.StrokeLine2(sty, x, c.Min.Y, x, c.Max.Y)
	}

	for _, tk := range plt.Y.Tick.Marker.Ticks(plt.Y.Min, plt.Y.Max) {
		y := trY(tk.Value)
		if !c.ContainsY(y) {
			continue
		}

		sty := g.major
		if tk.IsMinor() {
			sty = g.minor
		}

		c.StrokeLine2(sty, c.Min.X, y, c.Max.X, y)
	}
}
