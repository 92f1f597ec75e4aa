package spiro

import (
	"fmt"
	"math"
	"time"
)

// Frame carries the per-frame inputs that are not parameters.
type Frame struct {
	// Tick is a monotonic time in seconds. Only animated families read it.
	Tick float64

	// Stride subsamples the continuous-t families (every Stride-th sample).
	// Values below 1 mean full density.
	Stride int
}

// Generator evaluates curve families and standing-wave fields. Curve
// evaluation is a pure function of the Vector and Frame; the only state
// is the cached sampling grid of the field family.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	cfg   config
	field *fieldSampler
}

// NewGenerator creates a Generator with the reference tuning constants,
// modified by opts.
func NewGenerator(opts ...Option) *Generator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Generator{
		cfg:   cfg,
		field: newFieldSampler(cfg.fieldResolution),
	}
}

// FieldResolution returns the fixed cells-per-side of generated fields.
func (g *Generator) FieldResolution() int {
	return g.cfg.fieldResolution
}

// Generate validates v and produces a fresh RenderBuffer. An invalid
// Vector returns an error wrapping ErrInvalidParameter and no buffer.
// Degenerate projections never fail the call; the affected points are
// marked invisible and counted in Skipped.
func (g *Generator) Generate(v Vector, f Frame) (*RenderBuffer, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	stride := max(f.Stride, 1)

	start := time.Now()
	buf := &RenderBuffer{Family: v.Family, Tick: f.Tick, Stride: stride}
	step := g.cfg.step * float64(stride)
	n := SampleCount(g.cfg.span, g.cfg.step, stride)

	switch v.Family {
	case Spirograph:
		R, r, d := v.FixedRadius, v.RollingRadius, v.PenOffset
		buf.Points = planar(n, step, func(t float64) (float64, float64) {
			return Hypotrochoid(R, r, d, t)
		})
	case Compound:
		R1, R2, r, d := v.OuterRadius, v.MiddleRadius, v.RollingRadius, v.PenOffset
		buf.Points = planar(n, step, func(t float64) (float64, float64) {
			return CompoundHypotrochoid(R1, R2, r, d, t)
		})
	case Spirograph3D:
		g.spirograph3D(buf, v, n, step)
	case Compound3D:
		if err := g.compound3D(buf, v, n, step); err != nil {
			return nil, err
		}
	case Wireframe3D:
		g.wireframe(buf, v, f.Tick, stride)
	case Nodal:
		field, rebuilt := g.field.sample(v)
		buf.Field = field
		if rebuilt {
			Logger().Debug("spiro: rebuilt field axes", "a", v.PlateA, "b", v.PlateB, "res", field.Rows)
		}
	default:
		return nil, fmt.Errorf("spiro: family %s: %w", v.Family, ErrInvalidParameter)
	}

	Logger().Debug("spiro: regenerated",
		"family", v.Family.String(),
		"len", buf.Len(),
		"skipped", buf.Skipped,
		"stride", stride,
		"elapsed", time.Since(start))
	return buf, nil
}

// spirograph3D tilts the planar curve about X by the configured angle and
// precesses it about Y by t*precession, then applies the perspective
// projection.
func (g *Generator) spirograph3D(buf *RenderBuffer, v Vector, n int, step float64) {
	proj := Perspective{Focal: g.cfg.simpleFocal}
	tilt := Radians(v.Tilt)
	R, r, d := v.FixedRadius, v.RollingRadius, v.PenOffset

	buf.Points = make([]CurvePoint, n)
	for i := range buf.Points {
		t := float64(i) * step
		x, y := Hypotrochoid(R, r, d, t)
		p := Vec3{X: x, Y: y}.RotateX(tilt).RotateY(t * g.cfg.precession)
		buf.Points[i] = g.project(buf, proj, CurvePoint{T: t, Pos: p})
	}
}

// compound3D rotates the compound curve X, Y, then Z by t*spin, colors
// each point from its rotated position and projects it.
func (g *Generator) compound3D(buf *RenderBuffer, v Vector, n int, step float64) error {
	proj := Perspective{Focal: g.cfg.compoundFocal}
	R1, R2, r, d := v.OuterRadius, v.MiddleRadius, v.RollingRadius, v.PenOffset
	extent, err := maxExtent(R1, R2, r, d)
	if err != nil {
		return err
	}
	tx, ty := Radians(v.TiltX), Radians(v.TiltY)

	buf.Points = make([]CurvePoint, n)
	for i := range buf.Points {
		t := float64(i) * step
		x, y := CompoundHypotrochoid(R1, R2, r, d, t)
		p := Euler{X: tx, Y: ty, Z: t * g.cfg.spin}.Apply(Vec3{X: x, Y: y})
		c, err := g.cfg.hue.Color(p, t, extent)
		if err != nil {
			return err
		}
		buf.Points[i] = g.project(buf, proj, CurvePoint{T: t, Pos: p, Color: c, Colored: true})
	}
	return nil
}

// wireframe samples the compound curve over [0, 2*pi] with both ends
// included, applies Rx*Ry*Rz(tick*rate) to row vectors, projects with the
// matrix projection and adds spokes from evenly spaced points to the centre.
func (g *Generator) wireframe(buf *RenderBuffer, v Vector, tick float64, stride int) {
	wc := g.cfg.wire
	n := max(wc.Samples/stride, 2)
	proj := MatrixProjection{Z0: wc.Z0, Scale: wc.Scale}
	rot := RotationX(wc.TiltX).
		Multiply(RotationY(wc.TiltY)).
		Multiply(RotationZ(tick * wc.SpinRate))
	R1, R2, r, d := v.OuterRadius, v.MiddleRadius, v.RollingRadius, v.PenOffset

	buf.Points = make([]CurvePoint, n)
	for i := range buf.Points {
		t := 2 * math.Pi * (float64(i) / float64(n-1))
		x, y := CompoundHypotrochoid(R1, R2, r, d, t)
		p := rot.ApplyRow(Vec3{X: x, Y: y})
		buf.Points[i] = g.project(buf, proj, CurvePoint{T: t, Pos: p})
	}

	if wc.Spokes <= 0 {
		return
	}
	every := max(n/wc.Spokes, 1)
	for i := 0; i < n; i += every {
		p := buf.Points[i]
		if !p.Visible {
			continue
		}
		buf.Spokes = append(buf.Spokes, Segment{A: p.Projected, Color: SpokeBlue, Colored: true})
	}
}

// project fills cp.Projected, marking the point invisible and counting it
// when the projection is degenerate.
func (g *Generator) project(buf *RenderBuffer, proj Projection, cp CurvePoint) CurvePoint {
	q, err := proj.Project(cp.Pos)
	if err != nil {
		buf.Skipped++
		return cp
	}
	cp.Projected = q
	cp.Visible = true
	return cp
}
