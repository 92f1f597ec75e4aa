package spiro

// Projection maps a 3D point onto the 2D viewing plane.
//
// The two implementations are intentionally separate strategies: they are
// not algebraically equivalent and each curve family is tied to one of them.
type Projection interface {
	// Project returns the projected point, or ErrDegenerateProjection when
	// the denominator is zero or the result is not finite.
	Project(v Vec3) (Point, error)

	// Name identifies the strategy in logs and driver output.
	Name() string
}

// Perspective is the perspective-division projection
//
//	x' = x*f/(f+z), y' = y*f/(f+z)
//
// A point at z=0 maps to itself.
type Perspective struct {
	Focal float64
}

// Project implements Projection.
func (p Perspective) Project(v Vec3) (Point, error) {
	den := p.Focal + v.Z
	if den == 0 {
		return Point{}, ErrDegenerateProjection
	}
	factor := p.Focal / den
	out := Point{X: v.X * factor, Y: v.Y * factor}
	if !out.IsFinite() {
		return Point{}, ErrDegenerateProjection
	}
	return out, nil
}

// Name implements Projection.
func (Perspective) Name() string { return "perspective" }

// MatrixProjection is the projection used by the wire-frame renderer
//
//	x' = x*z0/(z0-z)*scale, y' = y*z0/(z0-z)*scale
type MatrixProjection struct {
	Z0    float64
	Scale float64
}

// Project implements Projection.
func (p MatrixProjection) Project(v Vec3) (Point, error) {
	den := p.Z0 - v.Z
	if den == 0 {
		return Point{}, ErrDegenerateProjection
	}
	factor := p.Z0 / den * p.Scale
	out := Point{X: v.X * factor, Y: v.Y * factor}
	if !out.IsFinite() {
		return Point{}, ErrDegenerateProjection
	}
	return out, nil
}

// Name implements Projection.
func (MatrixProjection) Name() string { return "matrix" }
