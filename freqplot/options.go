package freqplot

import "github.com/cwbudde/algo-control/freq"

// Option configures the renderers.
//
// WithSweep and WithPoints apply to every renderer. InDecibels and InHertz
// affect only [Bode]; the other renderers ignore them.
type Option func(*config)

type config struct {
	omega    []float64
	sampled  int
	decibels bool
	hertz    bool
}

// WithSweep supplies an explicit frequency sweep in rad/s, bypassing the
// derived default range. The sweep must be positive and increasing for
// log-scale axes to accept it.
func WithSweep(omega []float64) Option {
	return func(c *config) {
		c.omega = omega
	}
}

// WithPoints sets the sample count of a derived sweep. It has no effect
// when an explicit sweep is supplied.
func WithPoints(n int) Option {
	return func(c *config) {
		c.sampled = n
	}
}

// InDecibels plots Bode magnitude as 20*log10(mag) on a semi-log axis
// instead of linear magnitude on a log-log axis.
func InDecibels() Option {
	return func(c *config) {
		c.decibels = true
	}
}

// InHertz displays Bode frequencies in Hz instead of rad/s. The sweep
// itself is always given in rad/s.
func InHertz() Option {
	return func(c *config) {
		c.hertz = true
	}
}

func applyOpts(opts []Option) config {
	cfg := config{sampled: freq.DefaultPoints}
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}
