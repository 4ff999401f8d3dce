// Command freqplot renders example frequency-domain plots as PNG files.
//
// Usage:
//
//	freqplot [flags]
//
// It builds a second-order plant P(s) = k/((s+1)(s+10)) and a PI-style
// controller C(s) = 5(s+2)/s, then writes bode.png, nyquist.png, and
// gangof4.png into the output directory.
//
// Examples:
//
//	freqplot -out plots
//	freqplot -db -hz
//	freqplot -points 200 -gain 25
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-control/freqplot"
	"github.com/cwbudde/algo-control/lti"
)

func main() {
	out := flag.String("out", ".", "output directory for PNG files")
	db := flag.Bool("db", false, "plot Bode magnitude in decibels")
	hz := flag.Bool("hz", false, "display Bode frequency in Hz")
	points := flag.Int("points", 0, "sample count of the derived sweep (0 = default)")
	gain := flag.Float64("gain", 10, "plant gain")
	flag.Parse()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("cannot create output dir: %v", err)
	}

	plant := &lti.ZPK{P: []complex128{-1, -10}, K: *gain}
	controller := &lti.ZPK{Z: []complex128{-2}, P: []complex128{0}, K: 5}

	opts := []freqplot.Option{freqplot.WithPoints(*points)}

	bodeOpts := opts
	if *db {
		bodeOpts = append(bodeOpts, freqplot.InDecibels())
	}

	if *hz {
		bodeOpts = append(bodeOpts, freqplot.InHertz())
	}

	fig := freqplot.NewFigure()
	if _, _, err := freqplot.Bode(fig, []lti.System{plant, lti.Series(plant, controller)}, bodeOpts...); err != nil {
		log.Fatalf("bode: %v", err)
	}

	writeFigure(fig, filepath.Join(*out, "bode.png"), 6, 8)

	fig = freqplot.NewFigure()
	if err := freqplot.Nyquist(fig, lti.Series(plant, controller), opts...); err != nil {
		log.Fatalf("nyquist: %v", err)
	}

	writeFigure(fig, filepath.Join(*out, "nyquist.png"), 6, 6)

	fig = freqplot.NewFigure()
	if err := freqplot.GangOfFour(fig, plant, controller, opts...); err != nil {
		log.Fatalf("gang of four: %v", err)
	}

	writeFigure(fig, filepath.Join(*out, "gangof4.png"), 8, 8)
}

func writeFigure(fig *freqplot.Figure, name string, widthIn, heightIn float64) {
	f, err := os.Create(name)
	if err != nil {
		log.Fatalf("cannot create %s: %v", name, err)
	}
	defer f.Close()

	w := vg.Length(widthIn) * vg.Inch
	h := vg.Length(heightIn) * vg.Inch

	if err := fig.WritePNG(f, w, h); err != nil {
		log.Fatalf("cannot render %s: %v", name, err)
	}

	log.Printf("wrote %s", name)
}
