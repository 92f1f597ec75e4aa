package raster

import (
	"math"
	"sort"
	"strings"
	"testing"

	"github.com/gogpu/spiro"
)

func TestCaption(t *testing.T) {
	tests := []struct {
		name string
		buf  *spiro.RenderBuffer
		want []string
	}{
		{
			name: "grouped count",
			buf:  &spiro.RenderBuffer{Family: spiro.Compound, Stride: 1, Points: make([]spiro.CurvePoint, 62831)},
			want: []string{"compound", "62,831 points", "stride 1"},
		},
		{
			name: "skipped and tick",
			buf:  &spiro.RenderBuffer{Family: spiro.Wireframe3D, Stride: 2, Tick: 1.5, Skipped: 3, Points: make([]spiro.CurvePoint, 500)},
			want: []string{"500 points", "3 skipped", "t=1.50s"},
		},
		{
			name: "field",
			buf:  &spiro.RenderBuffer{Family: spiro.Nodal, Field: &spiro.ScalarField{Rows: 500, Cols: 500, Values: []float64{-2, 2}}},
			want: []string{"nodal", "500×500 cells", "[-2.000, 2.000]"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Caption(tt.buf)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Caption = %q, missing %q", got, w)
				}
			}
		})
	}
	if Caption(nil) != "" {
		t.Error("nil buffer caption should be empty")
	}
}

func TestDrawText(t *testing.T) {
	pm := NewPixmap(40, 20)
	pm.Clear(spiro.Black)
	pm.DrawText(2, LineHeight(), "Hi", spiro.White)
	if countLit(pm) == 0 {
		t.Error("text drew nothing")
	}
	if w := MeasureText("Hi"); w != 14 {
		t.Errorf("MeasureText = %d, want 14", w)
	}
}

func TestRender(t *testing.T) {
	g := spiro.NewGenerator(spiro.WithSpan(20))
	for _, f := range spiro.Families() {
		t.Run(f.String(), func(t *testing.T) {
			buf, err := g.Generate(spiro.DefaultVector(f), spiro.Frame{Tick: 0.25})
			if err != nil {
				t.Fatal(err)
			}
			opts := DefaultOptions()
			opts.Width, opts.Height = 120, 90
			pm := Render(buf, opts)
			if pm.Width() != 120 || pm.Height() != 90 {
				t.Fatalf("size = %dx%d", pm.Width(), pm.Height())
			}
			if countLit(pm) == 0 {
				t.Error("frame is blank")
			}
		})
	}

	blank := Render(nil, Options{Width: 4, Height: 4})
	if countLit(blank) != 0 {
		t.Error("nil buffer should render the background only")
	}
}

func TestRender_PerspectiveFraming(t *testing.T) {
	g := spiro.NewGenerator()
	opts := DefaultOptions()
	half := float64(min(opts.Width, opts.Height)) / 2

	for _, f := range []spiro.Family{spiro.Spirograph3D, spiro.Compound3D, spiro.Wireframe3D} {
		t.Run(f.String(), func(t *testing.T) {
			buf, err := g.Generate(spiro.DefaultVector(f), spiro.Frame{})
			if err != nil {
				t.Fatal(err)
			}
			m := viewport(buf, opts)
			cx, cy := float64(opts.Width)/2, float64(opts.Height)/2

			var radii []float64
			inside := 0
			for _, p := range buf.Points {
				if !p.Visible {
					continue
				}
				q := m.TransformPoint(p.Projected)
				radii = append(radii, math.Hypot(q.X-cx, q.Y-cy))
				if q.X >= 0 && q.X < float64(opts.Width) && q.Y >= 0 && q.Y < float64(opts.Height) {
					inside++
				}
			}
			if len(radii) == 0 {
				t.Fatal("no visible points")
			}
			sort.Float64s(radii)
			if med := radii[len(radii)/2]; med < 0.1*half {
				t.Errorf("median pixel radius = %.2f, want at least %.0f", med, 0.1*half)
			}
			if inside*2 < len(radii) {
				t.Errorf("%d of %d points inside the frame, want at least half", inside, len(radii))
			}

			if countLit(Render(buf, opts)) < 1000 {
				t.Error("frame has almost nothing drawn")
			}
		})
	}
}
