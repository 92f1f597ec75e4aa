package spiro

import (
	"image/color"
	"math"
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements the color.Color interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	const digits = "0123456789abcdef"
	buf := [7]byte{'#'}
	for i, v := range [3]uint8{c.R, c.G, c.B} {
		buf[1+i*2] = digits[v>>4]
		buf[2+i*2] = digits[v&0x0f]
	}
	return string(buf[:])
}

// Common colors
var (
	Black     = RGB{0, 0, 0}
	White     = RGB{255, 255, 255}
	SpokeBlue = RGB{100, 100, 255}
)

// HSV converts hue, saturation and value to RGB components.
// h is in [0, 1) and wraps; s and v are nominally in [0, 1].
// This is the six-sector algorithm; outputs are not clamped.
func HSV(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}

	sector := math.Floor(h * 6)
	f := h*6 - sector
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch int(sector) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// RGBFromUnit converts [0, 1] components to an RGB, truncating each channel
// after clamping to [0, 255].
func RGBFromUnit(r, g, b float64) RGB {
	return RGB{R: unitTo8(r), G: unitTo8(g), B: unitTo8(b)}
}

func unitTo8(x float64) uint8 {
	x *= 255
	if x <= 0 || math.IsNaN(x) {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(x)
}
