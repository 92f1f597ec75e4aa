package spiro

import (
	"math"
	"testing"
)

func visible(x, y float64, c RGB) CurvePoint {
	return CurvePoint{Projected: Pt(x, y), Visible: true, Color: c, Colored: true}
}

func TestRenderBuffer_Segments(t *testing.T) {
	red, green := RGB{R: 255}, RGB{G: 255}
	buf := &RenderBuffer{
		Points: []CurvePoint{
			visible(0, 0, red),
			visible(10, 0, green),
			{Projected: Pt(99, 99)}, // degenerate
			visible(10, 10, red),
			visible(0, 10, green),
		},
		Spokes: []Segment{{A: Pt(5, 5), Color: SpokeBlue, Colored: true}},
	}

	segs := buf.Segments(Viewport(100, 50, 2))
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3 (two polyline + one spoke)", len(segs))
	}

	tests := []struct {
		name  string
		seg   Segment
		a, b  Point
		color RGB
	}{
		{"first", segs[0], Pt(50, 25), Pt(70, 25), green},
		{"after gap", segs[1], Pt(70, 45), Pt(50, 45), green},
		{"spoke", segs[2], Pt(60, 35), Pt(50, 25), SpokeBlue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.seg.A != tt.a || tt.seg.B != tt.b {
				t.Errorf("segment = %v -> %v, want %v -> %v", tt.seg.A, tt.seg.B, tt.a, tt.b)
			}
			if tt.seg.Color != tt.color || !tt.seg.Colored {
				t.Errorf("color = %v, want %v", tt.seg.Color, tt.color)
			}
		})
	}
}

func TestRenderBuffer_SegmentsEmpty(t *testing.T) {
	var nilBuf *RenderBuffer
	if nilBuf.Segments(Identity()) != nil {
		t.Error("nil buffer should have no segments")
	}
	field := &RenderBuffer{Field: &ScalarField{}, Points: []CurvePoint{visible(0, 0, Black), visible(1, 1, Black)}}
	if field.Segments(Identity()) != nil {
		t.Error("field buffer should have no segments")
	}
	single := &RenderBuffer{Points: []CurvePoint{visible(0, 0, Black)}}
	if single.Segments(Identity()) != nil {
		t.Error("single point should have no segments")
	}
}

func TestRenderBuffer_BoundsAndLen(t *testing.T) {
	buf := &RenderBuffer{Points: []CurvePoint{
		visible(-3, 2, Black),
		{Projected: Pt(1000, 1000)},
		visible(4, -1, Black),
	}}
	lo, hi, ok := buf.Bounds()
	if !ok || lo != Pt(-3, -1) || hi != Pt(4, 2) {
		t.Errorf("Bounds = %v %v %v", lo, hi, ok)
	}
	if buf.Len() != 3 || buf.IsField() {
		t.Errorf("Len = %d IsField = %v", buf.Len(), buf.IsField())
	}

	empty := &RenderBuffer{Points: []CurvePoint{{Projected: Pt(1, 1)}}}
	if _, _, ok := empty.Bounds(); ok {
		t.Error("no visible points should report !ok")
	}

	field := &RenderBuffer{Field: &ScalarField{Rows: 2, Cols: 3, Values: make([]float64, 6)}}
	if field.Len() != 6 || !field.IsField() {
		t.Errorf("field Len = %d IsField = %v", field.Len(), field.IsField())
	}
}

func TestRenderBuffer_SegmentsFromGenerator(t *testing.T) {
	g := NewGenerator(WithSpan(1))
	buf, err := g.Generate(DefaultVector(Compound3D), Frame{})
	if err != nil {
		t.Fatal(err)
	}
	segs := buf.Segments(Identity())
	if len(segs) != len(buf.Points)-1 {
		t.Fatalf("got %d segments for %d points", len(segs), len(buf.Points))
	}
	for i, s := range segs {
		if !s.Colored || s.Color != buf.Points[i+1].Color {
			t.Fatalf("segment %d color = %v, want point %d color %v", i, s.Color, i+1, buf.Points[i+1].Color)
		}
	}
}

func TestRenderBuffer_FitZoom(t *testing.T) {
	buf := &RenderBuffer{Points: []CurvePoint{
		visible(10, 0, Black),
		visible(-20, 5, Black),
	}}
	if got := buf.FitZoom(100, 200, 0.1); got != 2.25 {
		t.Errorf("FitZoom = %v, want 2.25", got)
	}
	if got := (&RenderBuffer{}).FitZoom(100, 100, 0.1); got != 1 {
		t.Errorf("empty FitZoom = %v, want 1", got)
	}
}

func TestRenderBuffer_FitZoomPerspective(t *testing.T) {
	g := NewGenerator()
	fit := func(f Family) float64 {
		t.Helper()
		buf, err := g.Generate(DefaultVector(f), Frame{})
		if err != nil {
			t.Fatal(err)
		}
		return buf.FitZoom(800, 600, 0.1)
	}

	planar := fit(Spirograph)
	if math.Abs(planar-270.0/230) > 1e-9 {
		t.Fatalf("planar zoom = %v, want %v", planar, 270.0/230)
	}

	// Points near the eye plane project far out; the fit must follow the
	// curve, not those outliers.
	for _, f := range []Family{Spirograph3D, Compound3D, Wireframe3D} {
		t.Run(f.String(), func(t *testing.T) {
			got := fit(f)
			if got < planar/2 || got > planar*2 {
				t.Errorf("zoom = %v, want within a factor 2 of planar %v", got, planar)
			}
		})
	}
}

func TestRenderBuffer_FitZoomCapsOutliers(t *testing.T) {
	near := func(x, y, px, py float64) CurvePoint {
		return CurvePoint{Pos: V3(x, y, 0), Projected: Pt(px, py), Visible: true}
	}
	buf := &RenderBuffer{Points: []CurvePoint{
		near(100, 0, 100, 0),
		near(0, 100, 0, 1e6),
	}}
	// 1e6 is capped at 1.5 * 100.
	if got := buf.FitZoom(200, 200, 0); got != 100.0/150 {
		t.Errorf("FitZoom = %v, want %v", got, 100.0/150)
	}
}
