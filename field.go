package spiro

import "math"

// ScalarField is a dense row-major grid of values over [0,A]x[0,B].
// Cell (row, col) is sampled at (Xs[col], Ys[row]).
type ScalarField struct {
	Rows, Cols int
	A, B       float64
	Xs, Ys     []float64 // sampling axes, shared and never mutated
	Values     []float64
}

// At returns the value of cell (row, col).
func (f *ScalarField) At(row, col int) float64 {
	return f.Values[row*f.Cols+col]
}

// Coord returns the plate coordinates of cell (row, col).
func (f *ScalarField) Coord(row, col int) (x, y float64) {
	return f.Xs[col], f.Ys[row]
}

// Range returns the minimum and maximum cell values.
func (f *ScalarField) Range() (lo, hi float64) {
	if len(f.Values) == 0 {
		return 0, 0
	}
	lo, hi = f.Values[0], f.Values[0]
	for _, v := range f.Values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// StandingWave evaluates the superposed nodal pattern at (x, y):
//
//	sum over enabled modes of sin(m*pi*x/a) * sin(n*pi*y/b)
//
// Modes with m=0 or n=0 contribute exactly zero. Integer multiples of pi
// evaluate to exactly zero, so x in {0, a} and y in {0, b} are exact nodes.
func StandingWave(modes []Mode, a, b, x, y float64) float64 {
	u, w := x/a, y/b
	sum := 0.0
	for _, m := range modes {
		if !m.Enabled {
			continue
		}
		sum += sinPi(float64(m.M)*u) * sinPi(float64(m.N)*w)
	}
	return sum
}

// sinPi returns sin(pi*u), exactly zero for integer u.
func sinPi(u float64) float64 {
	if u == math.Trunc(u) {
		return 0
	}
	return math.Sin(math.Pi * u)
}

// axis returns n evenly spaced samples over [0, length] with both ends
// exact.
func axis(length float64, n int) []float64 {
	xs := make([]float64, n)
	last := float64(n - 1)
	for i := range xs {
		xs[i] = length * float64(i) / last
	}
	xs[n-1] = length
	return xs
}

// fieldSampler caches the sampling axes of a fixed-resolution grid. The
// axes are rebuilt whenever the plate dimensions change.
type fieldSampler struct {
	res    int
	a, b   float64
	xs, ys []float64
}

func newFieldSampler(res int) *fieldSampler {
	return &fieldSampler{res: res}
}

// axes returns the sampling axes for an a x b plate and whether they had
// to be rebuilt.
func (s *fieldSampler) axes(a, b float64) (xs, ys []float64, rebuilt bool) {
	if s.xs == nil || a != s.a {
		s.xs = axis(a, s.res)
		s.a = a
		rebuilt = true
	}
	if s.ys == nil || b != s.b {
		s.ys = axis(b, s.res)
		s.b = b
		rebuilt = true
	}
	return s.xs, s.ys, rebuilt
}

// sample fills a fresh field for v. Axes are replaced, never written in
// place, so fields from earlier frames stay valid.
func (s *fieldSampler) sample(v Vector) (*ScalarField, bool) {
	xs, ys, rebuilt := s.axes(v.PlateA, v.PlateB)
	values := make([]float64, s.res*s.res)

	// Each term is separable: evaluate the column and row factors once.
	colTerm := make([]float64, s.res)
	rowTerm := make([]float64, s.res)
	for _, m := range v.Modes {
		if !m.Enabled || m.M == 0 || m.N == 0 {
			continue
		}
		for col, x := range xs {
			colTerm[col] = sinPi(float64(m.M) * (x / v.PlateA))
		}
		for row, y := range ys {
			rowTerm[row] = sinPi(float64(m.N) * (y / v.PlateB))
		}
		for row, ry := range rowTerm {
			base := row * s.res
			for col, cx := range colTerm {
				values[base+col] += cx * ry
			}
		}
	}
	return &ScalarField{
		Rows:   s.res,
		Cols:   s.res,
		A:      v.PlateA,
		B:      v.PlateB,
		Xs:     xs,
		Ys:     ys,
		Values: values,
	}, rebuilt
}
