package spiro

import (
	"errors"
	"math"
	"testing"
)

func TestGenerator_ContinuousFamilyLength(t *testing.T) {
	want := int(math.Floor(200 * math.Pi / 0.01))
	gen := NewGenerator()
	for _, f := range []Family{Spirograph, Compound, Spirograph3D, Compound3D} {
		t.Run(f.String(), func(t *testing.T) {
			buf, err := gen.Generate(DefaultVector(f), Frame{})
			if err != nil {
				t.Fatal(err)
			}
			if got := len(buf.Points); got != want {
				t.Errorf("len = %d, want %d", got, want)
			}
			if buf.Field != nil {
				t.Error("polyline family produced a field")
			}
		})
	}
}

func TestGenerator_StepOption(t *testing.T) {
	gen := NewGenerator(WithStep(0.05), WithSpan(10))
	buf, err := gen.Generate(DefaultVector(Compound), Frame{})
	if err != nil {
		t.Fatal(err)
	}
	if got := len(buf.Points); got != 200 {
		t.Errorf("len = %d, want 200", got)
	}
	if got := buf.Points[199].T; math.Abs(got-9.95) > eps {
		t.Errorf("last t = %v, want 9.95", got)
	}
}

func TestGenerator_SpirographAnchor(t *testing.T) {
	buf, err := NewGenerator().Generate(DefaultVector(Spirograph), Frame{})
	if err != nil {
		t.Fatal(err)
	}
	p := buf.Points[0]
	if p.Pos != V3(230, 0, 0) || p.Projected != Pt(230, 0) || !p.Visible {
		t.Errorf("first point = %+v, want (230, 0)", p)
	}
}

func TestGenerator_RejectsZeroRadius(t *testing.T) {
	gen := NewGenerator()
	for _, f := range []Family{Spirograph, Compound, Spirograph3D, Compound3D, Wireframe3D} {
		t.Run(f.String(), func(t *testing.T) {
			v := DefaultVector(f)
			v.RollingRadius = 0
			buf, err := gen.Generate(v, Frame{})
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("err = %v, want ErrInvalidParameter", err)
			}
			if buf != nil {
				t.Error("invalid parameters produced a buffer")
			}
		})
	}
}

func TestGenerator_Spirograph3D(t *testing.T) {
	v := DefaultVector(Spirograph3D)
	buf, err := NewGenerator().Generate(v, Frame{})
	if err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{0, 1, 500, 40000} {
		p := buf.Points[i]
		x, y := Hypotrochoid(v.FixedRadius, v.RollingRadius, v.PenOffset, p.T)
		want := V3(x, y, 0).RotateX(Radians(v.Tilt)).RotateY(p.T * 0.01)
		if !vec3Near(p.Pos, want, eps) {
			t.Errorf("point %d pos = %v, want %v", i, p.Pos, want)
		}
		proj, _ := Perspective{Focal: 200}.Project(want)
		if math.Abs(p.Projected.X-proj.X) > eps || math.Abs(p.Projected.Y-proj.Y) > eps {
			t.Errorf("point %d projected = %v, want %v", i, p.Projected, proj)
		}
		if p.Colored {
			t.Errorf("point %d should not carry a color", i)
		}
	}
}

func TestGenerator_Compound3DColors(t *testing.T) {
	v := DefaultVector(Compound3D)
	buf, err := NewGenerator().Generate(v, Frame{})
	if err != nil {
		t.Fatal(err)
	}
	extent := 250.0 // max(R1, R2, r, d)
	for _, i := range []int{0, 7, 31415, len(buf.Points) - 1} {
		p := buf.Points[i]
		x, y := CompoundHypotrochoid(v.OuterRadius, v.MiddleRadius, v.RollingRadius, v.PenOffset, p.T)
		rot := Euler{X: Radians(30), Y: Radians(30), Z: p.T * 0.01}.Apply(V3(x, y, 0))
		if !vec3Near(p.Pos, rot, eps) {
			t.Errorf("point %d pos = %v, want %v", i, p.Pos, rot)
		}
		// The color uses the rotated position, not the planar one.
		want, _ := ColorMapper{}.Color(rot, p.T, extent)
		if !p.Colored || p.Color != want {
			t.Errorf("point %d color = %v (colored=%v), want %v", i, p.Color, p.Colored, want)
		}
	}
}

func TestGenerator_WireframeSpokesAndTick(t *testing.T) {
	gen := NewGenerator()
	v := DefaultVector(Wireframe3D)

	a, err := gen.Generate(v, Frame{Tick: 0})
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Points) != 1000 {
		t.Errorf("len = %d, want 1000", len(a.Points))
	}
	if a.Points[0].T != 0 || a.Points[999].T != 2*math.Pi {
		t.Errorf("domain = [%v, %v], want [0, 2pi]", a.Points[0].T, a.Points[999].T)
	}
	if len(a.Spokes) != 50 {
		t.Errorf("spokes = %d, want 50", len(a.Spokes))
	}
	for _, s := range a.Spokes {
		if s.B != (Point{}) || s.Color != SpokeBlue || !s.Colored {
			t.Fatalf("spoke = %+v, want to centre in spoke blue", s)
		}
	}

	b, err := gen.Generate(v, Frame{Tick: 1.5})
	if err != nil {
		t.Fatal(err)
	}
	if a.Points[10].Projected == b.Points[10].Projected {
		t.Error("wire-frame output should change with the tick")
	}

	// Row-vector convention: p * (Rx Ry Rz).
	p := b.Points[10]
	x, y := CompoundHypotrochoid(v.OuterRadius, v.MiddleRadius, v.RollingRadius, v.PenOffset, p.T)
	m := RotationX(0.5).Multiply(RotationY(0.5)).Multiply(RotationZ(1.5))
	if want := m.ApplyRow(V3(x, y, 0)); !vec3Near(p.Pos, want, eps) {
		t.Errorf("rotated = %v, want %v", p.Pos, want)
	}
}

func TestGenerator_StaticFamiliesIgnoreTick(t *testing.T) {
	gen := NewGenerator(WithSpan(20))
	for _, f := range []Family{Spirograph, Spirograph3D, Compound3D} {
		a, _ := gen.Generate(DefaultVector(f), Frame{Tick: 0})
		b, _ := gen.Generate(DefaultVector(f), Frame{Tick: 42})
		for i := range a.Points {
			if a.Points[i] != b.Points[i] {
				t.Fatalf("%s point %d differs across ticks", f, i)
			}
		}
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	gen := NewGenerator()
	v := DefaultVector(Compound3D)
	a, _ := gen.Generate(v, Frame{})
	b, _ := gen.Generate(v, Frame{})
	if len(a.Points) != len(b.Points) {
		t.Fatal("lengths differ")
	}
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("point %d differs between identical regenerations", i)
		}
	}
}

func TestGenerator_DegenerateProjectionSkipsPoints(t *testing.T) {
	// Focal 0 with a flat, unrotated curve puts every denominator at zero.
	gen := NewGenerator(WithFocal(0, 300), WithPrecession(0), WithSpan(1))
	v := DefaultVector(Spirograph3D)
	v.Tilt = 0

	buf, err := gen.Generate(v, Frame{})
	if err != nil {
		t.Fatalf("degenerate projection must not fail generation: %v", err)
	}
	if buf.Skipped != len(buf.Points) || buf.Skipped == 0 {
		t.Errorf("Skipped = %d, want %d", buf.Skipped, len(buf.Points))
	}
	if segs := buf.Segments(Identity()); len(segs) != 0 {
		t.Errorf("segments = %d, want 0", len(segs))
	}
}

func TestGenerator_Stride(t *testing.T) {
	gen := NewGenerator()
	buf, err := gen.Generate(DefaultVector(Spirograph), Frame{Stride: 4})
	if err != nil {
		t.Fatal(err)
	}
	if want := SampleCount(200*math.Pi, 0.01, 4); len(buf.Points) != want {
		t.Errorf("len = %d, want %d", len(buf.Points), want)
	}
	if buf.Stride != 4 || math.Abs(buf.Points[1].T-0.04) > eps {
		t.Errorf("stride = %d, t1 = %v", buf.Stride, buf.Points[1].T)
	}
}

func TestGenerator_Nodal(t *testing.T) {
	gen := NewGenerator(WithFieldResolution(64))
	v := DefaultVector(Nodal)
	buf, err := gen.Generate(v, Frame{})
	if err != nil {
		t.Fatal(err)
	}
	if !buf.IsField() || buf.Points != nil {
		t.Fatal("nodal family should produce a field only")
	}
	f := buf.Field
	if f.Rows != 64 || f.Cols != 64 || len(f.Values) != 64*64 {
		t.Errorf("field = %dx%d (%d values)", f.Rows, f.Cols, len(f.Values))
	}

	v.PlateA = 2
	buf, _ = gen.Generate(v, Frame{})
	if x, _ := buf.Field.Coord(0, 0); x != 0 {
		t.Errorf("x(0,0) = %v, want 0", x)
	}
	if x, _ := buf.Field.Coord(63, 63); x != 2 {
		t.Errorf("x(63,63) = %v, want 2", x)
	}
	if gen.FieldResolution() != 64 {
		t.Errorf("FieldResolution() = %d", gen.FieldResolution())
	}
}
