package spiro

import (
	"fmt"
	"math"
)

// DefaultHuePeriod is the phase span over which the hue completes one cycle.
const DefaultHuePeriod = 200 * math.Pi

// ColorMapper maps a point's normalized 3D position and a phase scalar to
// an RGB color:
//
//	n(v)  = (v + maxExtent) / (2*maxExtent)
//	hue   = (n(x) + n(y) + t/Period) mod 1
//	sat   = 0.7 + 0.3*n(z)
//	value = 0.5 + 0.5*n(y)
type ColorMapper struct {
	// Period is the phase span of one hue cycle. Zero means DefaultHuePeriod.
	Period float64
}

// Color returns the color for p at phase t. maxExtent must be positive.
func (m ColorMapper) Color(p Vec3, t, maxExtent float64) (RGB, error) {
	if !(maxExtent > 0) || math.IsInf(maxExtent, 0) {
		return RGB{}, &ParamError{
			Name:   "maxExtent",
			Value:  maxExtent,
			Reason: "must be a positive finite extent",
		}
	}
	period := m.Period
	if period == 0 {
		period = DefaultHuePeriod
	}

	span := 2 * maxExtent
	xn := (p.X + maxExtent) / span
	yn := (p.Y + maxExtent) / span
	zn := (p.Z + maxExtent) / span

	h := wrapUnit(xn + yn + t/period)
	r, g, b := HSV(h, 0.7+0.3*zn, 0.5+0.5*yn)
	return RGBFromUnit(r, g, b), nil
}

// wrapUnit reduces x modulo 1 into [0, 1).
func wrapUnit(x float64) float64 {
	x = math.Mod(x, 1)
	if x < 0 {
		x++
	}
	// x+1 can round up to exactly 1 for tiny negative x.
	if x >= 1 {
		x = 0
	}
	return x
}

// maxExtent returns the largest magnitude among the given lengths.
func maxExtent(values ...float64) (float64, error) {
	m := 0.0
	for _, v := range values {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	if m == 0 {
		return 0, fmt.Errorf("spiro: colour extent: %w", ErrInvalidParameter)
	}
	return m, nil
}
