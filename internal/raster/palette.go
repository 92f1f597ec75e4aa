package raster

import (
	"math"

	"github.com/gogpu/spiro"
)

// rdbu is the seven-class RdBu diverging scheme, from negative (blue)
// through the neutral midpoint to positive (red).
var rdbu = [...]spiro.RGB{
	{R: 33, G: 102, B: 172},
	{R: 103, G: 169, B: 207},
	{R: 209, G: 229, B: 240},
	{R: 247, G: 247, B: 247},
	{R: 253, G: 219, B: 199},
	{R: 239, G: 138, B: 98},
	{R: 178, G: 24, B: 43},
}

// Neutral is the color of a zero sample. Nodal lines render in it.
var Neutral = rdbu[len(rdbu)/2]

// Diverging maps s in [-1, 1] onto the RdBu scheme. Values outside the
// range are clamped and NaN maps to Neutral.
func Diverging(s float64) spiro.RGB {
	if math.IsNaN(s) {
		return Neutral
	}
	s = math.Max(-1, math.Min(1, s))
	u := (s + 1) / 2 * float64(len(rdbu)-1)
	i := int(math.Floor(u))
	if i >= len(rdbu)-1 {
		return rdbu[len(rdbu)-1]
	}
	f := u - float64(i)
	a, b := rdbu[i], rdbu[i+1]
	return spiro.RGB{
		R: lerp8(a.R, b.R, f),
		G: lerp8(a.G, b.G, f),
		B: lerp8(a.B, b.B, f),
	}
}

func lerp8(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
}
