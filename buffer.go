package spiro

import "math"

// Segment is a line segment with an optional color.
type Segment struct {
	A, B    Point
	Color   RGB
	Colored bool
}

// RenderBuffer is the output of one regeneration: either an ordered
// polyline (Points, plus Spokes for the wire-frame family) or a scalar
// field. It is replaced, never appended to, on the next regeneration.
type RenderBuffer struct {
	Family Family
	Tick   float64
	Stride int

	Points  []CurvePoint
	Spokes  []Segment // curve units, origin at the frame centre
	Skipped int       // points with a degenerate projection

	Field *ScalarField
}

// IsField reports whether the buffer holds a scalar field.
func (b *RenderBuffer) IsField() bool {
	return b != nil && b.Field != nil
}

// Len returns the number of polyline points, or field cells.
func (b *RenderBuffer) Len() int {
	switch {
	case b == nil:
		return 0
	case b.Field != nil:
		return len(b.Field.Values)
	default:
		return len(b.Points)
	}
}

// Bounds returns the extent of the visible projected points.
// ok is false when there are none.
func (b *RenderBuffer) Bounds() (lo, hi Point, ok bool) {
	lo = Point{X: math.Inf(1), Y: math.Inf(1)}
	hi = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	if b == nil {
		return lo, hi, false
	}
	for _, p := range b.Points {
		if !p.Visible {
			continue
		}
		ok = true
		lo.X = math.Min(lo.X, p.Projected.X)
		lo.Y = math.Min(lo.Y, p.Projected.Y)
		hi.X = math.Max(hi.X, p.Projected.X)
		hi.Y = math.Max(hi.Y, p.Projected.Y)
	}
	return lo, hi, ok
}

// Segments returns the polyline and spokes as pixel-space line segments
// under the transform m (see Viewport). Segment i joins points i-1 and i
// and carries point i's color. Segments touching an invisible point are
// skipped. Field buffers have no segments.
func (b *RenderBuffer) Segments(m Matrix) []Segment {
	if b == nil || b.Field != nil || len(b.Points) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(b.Points)-1+len(b.Spokes))
	for i := 1; i < len(b.Points); i++ {
		prev, cur := b.Points[i-1], b.Points[i]
		if !prev.Visible || !cur.Visible {
			continue
		}
		segs = append(segs, Segment{
			A:       m.TransformPoint(prev.Projected),
			B:       m.TransformPoint(cur.Projected),
			Color:   cur.Color,
			Colored: cur.Colored,
		})
	}
	for _, s := range b.Spokes {
		s.A = m.TransformPoint(s.A)
		s.B = m.TransformPoint(s.B)
		segs = append(segs, s)
	}
	return segs
}

// fitHeadroom bounds the fitted extent to this multiple of the largest
// unprojected radius. Perspective points close to the eye plane project
// arbitrarily far out; beyond the bound they fall off the frame.
const fitHeadroom = 1.5

// FitZoom returns the zoom that fits the visible points into a
// width x height frame centred on the origin, leaving margin (a fraction
// of the half-extent) empty. It returns 1 when there is nothing to fit.
//
// The extent is the largest projected coordinate, capped at fitHeadroom
// times the largest radius of the points before projection.
func (b *RenderBuffer) FitZoom(width, height int, margin float64) float64 {
	lo, hi, ok := b.Bounds()
	if !ok {
		return 1
	}
	extent := math.Max(math.Max(math.Abs(lo.X), math.Abs(hi.X)), math.Max(math.Abs(lo.Y), math.Abs(hi.Y)))
	if bound := fitHeadroom * b.radius(); bound > 0 && !(extent <= bound) {
		extent = bound
	}
	if !(extent > 0) || math.IsInf(extent, 0) {
		return 1
	}
	half := float64(min(width, height)) / 2
	return half * (1 - margin) / extent
}

// radius returns the largest |Pos| over the visible points.
func (b *RenderBuffer) radius() float64 {
	r := 0.0
	for _, p := range b.Points {
		if p.Visible {
			r = math.Max(r, p.Pos.Length())
		}
	}
	return r
}
