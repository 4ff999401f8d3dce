package freqplot

import (
	"fmt"

	"gonum.org/v1/plot"

	"github.com/cwbudde/algo-control/freq"
	"github.com/cwbudde/algo-control/lti"
)

// Bode renders stacked magnitude and phase plots for one or more systems
// onto the figure's first column: magnitude on top, phase below, sharing
// the frequency range.
//
// Magnitude is plotted on log-log axes, or as decibels on a semi-log axis
// with [InDecibels]. Phase is converted to degrees and unwrapped with a
// 360° period before plotting on a semi-log axis, removing the spurious
// jumps introduced by wrapping at the ±180° boundary. [InHertz] rescales
// the displayed frequency axis from rad/s to Hz.
//
// When no sweep is supplied via [WithSweep], one is derived from the
// pole/zero magnitudes of all systems. The returned handles identify the
// magnitude and phase axes for caller-side adjustment.
func Bode(fig *Figure, systems []lti.System, opts ...Option) (magAxis, phaseAxis *plot.Plot, err error) {
	if len(systems) == 0 {
		return nil, nil, ErrNoSystems
	}

	cfg := applyOpts(opts)

	omega := cfg.omega
	if omega == nil {
		omega = defaultSweep(systems, cfg.sampled)
	}

	magAxis = fig.Axes(0, 0)
	phaseAxis = fig.Axes(1, 0)

	for _, sys := range systems {
		mag, phase, err := sys.FrequencyResponse(omega)
		if err != nil {
			return nil, nil, fmt.Errorf("freqplot: frequency response: %w", err)
		}

		x := omega
		if cfg.hertz {
			x = freq.Hertz(omega)
		}

		if cfg.decibels {
			mag = freq.Decibels(mag)
		}

		deg := freq.Unwrap(freq.Degrees(phase), 360)

		if err := fig.addLine(magAxis, points(x, mag), false); err != nil {
			return nil, nil, err
		}

		if err := fig.addLine(phaseAxis, points(x, deg), false); err != nil {
			return nil, nil, err
		}
	}

	if cfg.decibels {
		semilogX(magAxis)
		magAxis.Y.Label.Text = "Magnitude (dB)"
	} else {
		logLog(magAxis)
		magAxis.Y.Label.Text = "Magnitude"
	}

	semilogX(phaseAxis)
	phaseAxis.Y.Label.Text = "Phase (deg)"

	if cfg.hertz {
		phaseAxis.X.Label.Text = "Frequency (Hz)"
	} else {
		phaseAxis.X.Label.Text = "Frequency (rad/sec)"
	}

	fig.ensureGrid(magAxis)
	fig.ensureGrid(phaseAxis)
	shareX(magAxis, phaseAxis)

	return magAxis, phaseAxis, nil
}
