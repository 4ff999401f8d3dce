// Package freqplot renders frequency-domain plots for linear time-invariant
// systems: Bode magnitude/phase plots, Nyquist curves, and the Gang of Four
// sensitivity plots used in loop-shaping analysis.
//
// All renderers draw onto an explicit [Figure] rather than a process-wide
// surface. Axes persist inside a figure, so successive calls accumulate
// curves on the same axes until the caller starts a new figure:
//
//	fig := freqplot.NewFigure()
//	magAxis, phaseAxis, err := freqplot.Bode(fig, []lti.System{plant}, freqplot.InDecibels())
//	// ... adjust magAxis/phaseAxis, render more systems ...
//	err = fig.WritePNG(w, 8*vg.Inch, 6*vg.Inch)
//
// When no sweep is supplied, the renderers derive one from the pole and zero
// magnitudes of the systems being plotted, bracketing every finite corner
// frequency by one decade on each side.
package freqplot
