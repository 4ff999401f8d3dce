package freqplot_test

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-control/freqplot"
	"github.com/cwbudde/algo-control/lti"
)

func ExampleBode() {
	// Second-order plant with poles at -1 and -10 rad/s.
	plant := &lti.ZPK{P: []complex128{-1, -10}, K: 10}

	fig := freqplot.NewFigure()

	_, _, err := freqplot.Bode(fig, []lti.System{plant}, freqplot.InDecibels())
	if err != nil {
		fmt.Println("bode:", err)
		return
	}

	var buf bytes.Buffer
	if err := fig.WritePNG(&buf, 6*vg.Inch, 6*vg.Inch); err != nil {
		fmt.Println("png:", err)
		return
	}

	fmt.Println(bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
	// Output:
	// true
}

func ExampleGangOfFour() {
	process := &lti.ZPK{P: []complex128{-1, -10}, K: 10}
	controller := &lti.ZPK{Z: []complex128{-2}, P: []complex128{0}, K: 5}

	fig := freqplot.NewFigure()
	err := freqplot.GangOfFour(fig, process, controller)
	fmt.Println(err)
	// Output:
	// <nil>
}
