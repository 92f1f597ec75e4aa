package spiro

import "math"

// Option configures a Generator during creation.
//
// Example:
//
//	// Reference sampling
//	gen := spiro.NewGenerator()
//
//	// Coarser preview with a faster precession
//	gen := spiro.NewGenerator(spiro.WithStep(0.05), spiro.WithPrecession(0.02))
type Option func(*config)

// config holds the visual-tuning constants of every family. None of them
// is derived from the curve geometry.
type config struct {
	span float64 // parameter domain [0, span)
	step float64

	precession    float64 // simple 3D: Y angle = t*precession
	spin          float64 // compound 3D: Z angle = t*spin
	simpleFocal   float64
	compoundFocal float64
	hue           ColorMapper

	wire wireframeConfig

	fieldResolution int
}

// wireframeConfig describes the wire-frame family.
type wireframeConfig struct {
	Samples  int     // points over [0, 2*pi], both ends included
	TiltX    float64 // radians
	TiltY    float64 // radians
	SpinRate float64 // radians per tick unit about Z
	Z0       float64
	Scale    float64
	Spokes   int
}

func defaultConfig() config {
	return config{
		span:          200 * math.Pi,
		step:          0.01,
		precession:    0.01,
		spin:          0.01,
		simpleFocal:   200,
		compoundFocal: 300,
		wire: wireframeConfig{
			Samples:  1000,
			TiltX:    0.5,
			TiltY:    0.5,
			SpinRate: 1,
			Z0:       0.5,
			Scale:    100,
			Spokes:   50,
		},
		fieldResolution: 500,
	}
}

// WithStep sets the parameter step of the continuous-t families.
// Non-positive values are ignored.
func WithStep(step float64) Option {
	return func(c *config) {
		if step > 0 {
			c.step = step
		}
	}
}

// WithSpan sets the upper bound of the parameter domain [0, span).
// Non-positive values are ignored.
func WithSpan(span float64) Option {
	return func(c *config) {
		if span > 0 {
			c.span = span
		}
	}
}

// WithPrecession sets the simple 3D family's Y rotation per unit t.
func WithPrecession(k float64) Option {
	return func(c *config) {
		c.precession = k
	}
}

// WithSpin sets the compound 3D family's Z rotation per unit t.
func WithSpin(k float64) Option {
	return func(c *config) {
		c.spin = k
	}
}

// WithFocal sets the perspective focal distances of the simple and
// compound 3D families.
func WithFocal(simple, compound float64) Option {
	return func(c *config) {
		c.simpleFocal = simple
		c.compoundFocal = compound
	}
}

// WithHuePeriod sets the phase span of one hue cycle of the colored
// compound 3D family.
func WithHuePeriod(period float64) Option {
	return func(c *config) {
		c.hue.Period = period
	}
}

// WithWireframe overrides the wire-frame sample count, spin rate
// (radians per tick unit) and spoke count. Non-positive counts are ignored.
func WithWireframe(samples int, spinRate float64, spokes int) Option {
	return func(c *config) {
		if samples > 1 {
			c.wire.Samples = samples
		}
		c.wire.SpinRate = spinRate
		if spokes >= 0 {
			c.wire.Spokes = spokes
		}
	}
}

// WithFieldResolution sets the standing-wave grid resolution (cells per
// side). It is fixed for the lifetime of the Generator.
func WithFieldResolution(n int) Option {
	return func(c *config) {
		if n >= 2 {
			c.fieldResolution = n
		}
	}
}
