package raster

import (
	"math"

	"github.com/gogpu/spiro"
)

// DrawLine draws a one-pixel anti-aliased line with Xiaolin Wu's
// algorithm. Integer coordinates address pixel centres. The line is
// clipped to the pixmap first, so far off-screen endpoints cost nothing.
// Zero-length and non-finite lines are skipped.
func (p *Pixmap) DrawLine(x0, y0, x1, y1 float64, c spiro.RGB) {
	if !finite(x0, y0, x1, y1) {
		return
	}
	var ok bool
	x0, y0, x1, y1, ok = ClipLine(x0, y0, x1, y1, -1, -1, float64(p.width), float64(p.height))
	if !ok {
		return
	}

	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	dx, dy := x1-x0, y1-y0
	if dx == 0 {
		return
	}
	gradient := dy / dx

	plot := func(x, y int, cov float64) {
		if steep {
			x, y = y, x
		}
		p.BlendPixelAlpha(x, y, c, coverage(cov))
	}

	// First endpoint.
	xend := math.Round(x0)
	yend := y0 + gradient*(xend-x0)
	xgap := rfpart(x0 + 0.5)
	xpx1, ypx1 := int(xend), int(math.Floor(yend))
	plot(xpx1, ypx1, rfpart(yend)*xgap)
	plot(xpx1, ypx1+1, fpart(yend)*xgap)
	intery := yend + gradient

	// Second endpoint.
	xend = math.Round(x1)
	yend = y1 + gradient*(xend-x1)
	xgap = fpart(x1 + 0.5)
	xpx2, ypx2 := int(xend), int(math.Floor(yend))
	if xpx2 != xpx1 {
		plot(xpx2, ypx2, rfpart(yend)*xgap)
		plot(xpx2, ypx2+1, fpart(yend)*xgap)
	}

	for x := xpx1 + 1; x < xpx2; x++ {
		y := math.Floor(intery)
		plot(x, int(y), 1-(intery-y))
		plot(x, int(y)+1, intery-y)
		intery += gradient
	}
}

// DrawSegments draws every segment, using fallback for segments that
// carry no color of their own.
func (p *Pixmap) DrawSegments(segs []spiro.Segment, fallback spiro.RGB) {
	for _, s := range segs {
		c := fallback
		if s.Colored {
			c = s.Color
		}
		p.DrawLine(s.A.X, s.A.Y, s.B.X, s.B.Y, c)
	}
}

// ClipLine clips the segment to [xmin, xmax] x [ymin, ymax]
// (Liang-Barsky).
func ClipLine(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - xmin},
		{dx, xmax - x0},
		{-dy, y0 - ymin},
		{dy, ymax - y0},
	}
	for _, e := range edges {
		pp, q := e[0], e[1]
		if pp == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / pp
		if pp < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func coverage(f float64) uint8 {
	switch {
	case !(f > 0):
		return 0
	case f >= 1:
		return 255
	}
	return uint8(f*255 + 0.5)
}

func fpart(x float64) float64  { return x - math.Floor(x) }
func rfpart(x float64) float64 { return 1 - fpart(x) }

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
