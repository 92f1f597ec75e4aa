package spiro

import "math"

// Mat3 represents a 3x3 matrix in row-major order:
//
//	| M[0] M[1] M[2] |
//	| M[3] M[4] M[5] |
//	| M[6] M[7] M[8] |
type Mat3 [9]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// RotationX returns the right-handed rotation matrix about the X axis.
func RotationX(theta float64) Mat3 {
	sin, cos := math.Sincos(theta)
	return Mat3{
		1, 0, 0,
		0, cos, -sin,
		0, sin, cos,
	}
}

// RotationY returns the right-handed rotation matrix about the Y axis.
func RotationY(theta float64) Mat3 {
	sin, cos := math.Sincos(theta)
	return Mat3{
		cos, 0, sin,
		0, 1, 0,
		-sin, 0, cos,
	}
}

// RotationZ returns the right-handed rotation matrix about the Z axis.
func RotationZ(theta float64) Mat3 {
	sin, cos := math.Sincos(theta)
	return Mat3{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Mat3) Multiply(other Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = m[r*3]*other[c] + m[r*3+1]*other[3+c] + m[r*3+2]*other[6+c]
		}
	}
	return out
}

// Transpose returns the transposed matrix. For a rotation this is the inverse.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Apply returns m * v, treating v as a column vector.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// ApplyRow returns v * m, treating v as a row vector.
// This equals m.Transpose().Apply(v).
func (m Mat3) ApplyRow(v Vec3) Vec3 {
	return Vec3{
		X: v.X*m[0] + v.Y*m[3] + v.Z*m[6],
		Y: v.X*m[1] + v.Y*m[4] + v.Z*m[7],
		Z: v.X*m[2] + v.Y*m[5] + v.Z*m[8],
	}
}

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Viewport returns the transform from curve space (origin at the centre)
// to pixel space of a width x height frame, scaled by zoom.
func Viewport(width, height int, zoom float64) Matrix {
	return Translate(float64(width)/2, float64(height)/2).Multiply(Scale(zoom, zoom))
}
