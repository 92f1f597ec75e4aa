package spiro

import "math"

// CurvePoint is one generated sample. For planar families Pos.Z is zero
// and Projected equals (Pos.X, Pos.Y).
type CurvePoint struct {
	T   float64 // curve parameter of the sample
	Pos Vec3    // position after any 3D rotation

	// Projected is the 2D position on the viewing plane, in curve units with
	// the origin at the frame centre. Visible is false when the projection
	// was degenerate; such points break the polyline.
	Projected Point
	Visible   bool

	Color   RGB
	Colored bool
}

// Hypotrochoid evaluates the simple hypotrochoid at t:
//
//	x = (R-r)cos(t) + d*cos((R-r)t/r)
//	y = (R-r)sin(t) - d*sin((R-r)t/r)
//
// The caller guarantees r != 0.
func Hypotrochoid(R, r, d, t float64) (x, y float64) {
	k := R - r
	phase := k * t / r
	sin, cos := math.Sincos(t)
	psin, pcos := math.Sincos(phase)
	return k*cos + d*pcos, k*sin - d*psin
}

// CompoundHypotrochoid evaluates the two-stage hypotrochoid at t. The
// middle circle's centre travels on radius R1-R2; the pen adds a term at
// phase phi=(R1-R2)t/R2 and another at phi+(R2-r)t/r.
//
// The caller guarantees R2 != 0 and r != 0.
func CompoundHypotrochoid(R1, R2, r, d, t float64) (x, y float64) {
	outer := R1 - R2
	inner := R2 - r
	phi := outer * t / R2
	psi := phi + inner*t/r

	sin, cos := math.Sincos(t)
	phiSin, phiCos := math.Sincos(phi)
	psiSin, psiCos := math.Sincos(psi)

	x = outer*cos + inner*phiCos + d*psiCos
	y = outer*sin + inner*phiSin - d*psiSin
	return x, y
}

// SampleCount returns the number of samples of [0, span) at step*stride:
// floor(span / (step*stride)).
func SampleCount(span, step float64, stride int) int {
	if stride < 1 {
		stride = 1
	}
	if !(span > 0) || !(step > 0) {
		return 0
	}
	return int(math.Floor(span / (step * float64(stride))))
}

// planar samples a 2D curve at t_i = i*step. Computing t from the index
// rather than accumulating keeps every frame bit-identical.
func planar(n int, step float64, eval func(t float64) (x, y float64)) []CurvePoint {
	pts := make([]CurvePoint, n)
	for i := range pts {
		t := float64(i) * step
		x, y := eval(t)
		pts[i] = CurvePoint{
			T:         t,
			Pos:       Vec3{X: x, Y: y},
			Projected: Point{X: x, Y: y},
			Visible:   true,
		}
	}
	return pts
}
