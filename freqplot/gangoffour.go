package freqplot

import (
	"fmt"

	"github.com/cwbudde/algo-control/lti"
)

// GangOfFour renders the four canonical closed-loop sensitivity magnitudes
// for a process P and controller C on a 2x2 grid of log-log axes:
//
//	T = L/(1+L)    P*S
//	C*S            S = 1/(1+L)
//
// with the open loop L = P*C. The sensitivities are formed point-wise from
// the loop's frequency response via [lti.Series] and [lti.UnityFeedback].
//
// When no sweep is supplied via [WithSweep], one is derived from the
// pole/zero magnitudes of both P and C.
func GangOfFour(fig *Figure, process, controller lti.System, opts ...Option) error {
	if process == nil || controller == nil {
		return ErrNoSystems
	}

	cfg := applyOpts(opts)

	omega := cfg.omega
	if omega == nil {
		omega = defaultSweep([]lti.System{process, controller}, cfg.sampled)
	}

	loop := lti.Series(process, controller)
	sens := lti.UnityFeedback(loop)

	cells := []struct {
		name     string
		sys      lti.System
		row, col int
	}{
		{"T", lti.Series(loop, sens), 0, 0},
		{"PS", lti.Series(process, sens), 0, 1},
		{"CS", lti.Series(controller, sens), 1, 0},
		{"S", sens, 1, 1},
	}

	for _, c := range cells {
		mag, _, err := c.sys.FrequencyResponse(omega)
		if err != nil {
			return fmt.Errorf("freqplot: %s response: %w", c.name, err)
		}

		ax := fig.Axes(c.row, c.col)
		if err := fig.addLine(ax, points(omega, mag), false); err != nil {
			return err
		}

		logLog(ax)
		ax.Title.Text = c.name
	}

	return nil
}
