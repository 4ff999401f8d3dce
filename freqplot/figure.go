package freqplot

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure is an explicit drawing surface: a sparse grid of axes that the
// renderers draw onto. Axes are created lazily and persist for the lifetime
// of the figure, so repeated renderer calls accumulate curves on the same
// axes. Start a new figure to begin a fresh plot.
//
// Figure is not safe for concurrent use.
type Figure struct {
	axes    map[cell]*plot.Plot
	lines   map[*plot.Plot]int
	gridded map[*plot.Plot]bool
	rows    int
	cols    int
}

type cell struct {
	row, col int
}

// NewFigure returns an empty figure.
func NewFigure() *Figure {
	return &Figure{
		axes:    make(map[cell]*plot.Plot),
		lines:   make(map[*plot.Plot]int),
		gridded: make(map[*plot.Plot]bool),
	}
}

// Axes returns the axes at the given grid cell, creating them on first use.
// The figure's grid grows to cover the largest requested cell. Row 0 is the
// top of the figure. Both indices must be non-negative.
func (f *Figure) Axes(row, col int) *plot.Plot {
	c := cell{row: row, col: col}
	if p, ok := f.axes[c]; ok {
		return p
	}

	p := plot.New()
	f.axes[c] = p

	if row+1 > f.rows {
		f.rows = row + 1
	}

	if col+1 > f.cols {
		f.cols = col + 1
	}

	return p
}

// addLine appends a styled line to the axes, cycling colors per axes so
// that successive curves stay distinguishable.
func (f *Figure) addLine(p *plot.Plot, pts plotter.XYs, dashed bool) error {
	l, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("freqplot: line plotter: %w", err)
	}

	i := f.lines[p]
	l.Color = plotutil.Color(i)

	if dashed {
		l.Dashes = plotutil.Dashes(1)
	}

	f.lines[p] = i + 1
	p.Add(l)

	return nil
}

// ensureGrid adds major/minor grid lines to the axes exactly once.
func (f *Figure) ensureGrid(p *plot.Plot) {
	if f.gridded[p] {
		return
	}

	f.gridded[p] = true
	p.Add(newGrid())
}

// WritePNG tiles the populated axes onto a canvas of the given size and
// encodes it as PNG.
func (f *Figure) WritePNG(w io.Writer, width, height vg.Length) error {
	if len(f.axes) == 0 {
		return ErrEmptyFigure
	}

	img := vgimg.New(width, height)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows: f.rows,
		Cols: f.cols,
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}

	for c, p := range f.axes {
		p.Draw(tiles.At(dc, c.col, c.row))
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("freqplot: write png: %w", err)
	}

	return nil
}
