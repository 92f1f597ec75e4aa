package raster

import (
	"math"
	"testing"

	"github.com/gogpu/spiro"
)

func countLit(pm *Pixmap) int {
	n := 0
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			if pm.GetPixel(x, y) != spiro.Black {
				n++
			}
		}
	}
	return n
}

func TestDrawLine_Horizontal(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(spiro.Black)
	pm.DrawLine(2, 5, 8, 5, spiro.White)

	for x := 3; x <= 7; x++ {
		if got := pm.GetPixel(x, 5); got != spiro.White {
			t.Errorf("pixel (%d,5) = %v, want white", x, got)
		}
		if got := pm.GetPixel(x, 4); got != spiro.Black {
			t.Errorf("pixel (%d,4) = %v, want black", x, got)
		}
	}
	// Endpoints get half coverage.
	if got := pm.GetPixel(2, 5); got.R < 100 || got.R > 160 {
		t.Errorf("endpoint coverage = %v", got)
	}
}

func TestDrawLine_Vertical(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(spiro.Black)
	pm.DrawLine(4, 8, 4, 1, spiro.White)

	for y := 2; y <= 7; y++ {
		if got := pm.GetPixel(4, y); got != spiro.White {
			t.Errorf("pixel (4,%d) = %v, want white", y, got)
		}
	}
	if countLit(pm) > 10 {
		t.Errorf("vertical line lit %d pixels", countLit(pm))
	}
}

func TestDrawLine_Diagonal(t *testing.T) {
	pm := NewPixmap(20, 20)
	pm.Clear(spiro.Black)
	pm.DrawLine(0, 0, 19, 19, spiro.White)

	for i := 1; i < 19; i++ {
		if got := pm.GetPixel(i, i); got != spiro.White {
			t.Fatalf("pixel (%d,%d) = %v, want white", i, i, got)
		}
	}
}

func TestDrawLine_Skipped(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
	}{
		{"zero length", 5, 5, 5, 5},
		{"nan", math.NaN(), 0, 5, 5},
		{"inf", 0, 0, math.Inf(1), 5},
		{"off screen", -500, -500, -400, -300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPixmap(10, 10)
			pm.Clear(spiro.Black)
			pm.DrawLine(tt.x0, tt.y0, tt.x1, tt.y1, spiro.White)
			if n := countLit(pm); n != 0 {
				t.Errorf("lit %d pixels, want 0", n)
			}
		})
	}
}

func TestDrawLine_HugeCoordinatesClip(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(spiro.Black)
	pm.DrawLine(-1e12, 5, 1e12, 5, spiro.White)

	for x := 0; x < 10; x++ {
		if got := pm.GetPixel(x, 5); got != spiro.White {
			t.Errorf("pixel (%d,5) = %v, want white", x, got)
		}
	}
}

func TestClipLine(t *testing.T) {
	x0, y0, x1, y1, ok := ClipLine(-5, 5, 15, 5, 0, 0, 10, 10)
	if !ok || x0 != 0 || y0 != 5 || x1 != 10 || y1 != 5 {
		t.Errorf("clip = (%v,%v)-(%v,%v) ok=%v", x0, y0, x1, y1, ok)
	}
	if _, _, _, _, ok := ClipLine(-10, -10, -5, 20, 0, 0, 10, 10); ok {
		t.Error("segment left of the box should be rejected")
	}
	x0, y0, x1, y1, ok = ClipLine(2, 3, 4, 5, 0, 0, 10, 10)
	if !ok || x0 != 2 || y0 != 3 || x1 != 4 || y1 != 5 {
		t.Error("inside segment should be unchanged")
	}
}

func TestDrawSegments_Colors(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(spiro.Black)
	red := spiro.RGB{R: 255}
	pm.DrawSegments([]spiro.Segment{
		{A: spiro.Pt(1, 2), B: spiro.Pt(8, 2)},
		{A: spiro.Pt(1, 7), B: spiro.Pt(8, 7), Color: red, Colored: true},
	}, spiro.White)

	if got := pm.GetPixel(4, 2); got != spiro.White {
		t.Errorf("uncolored segment = %v, want fallback white", got)
	}
	if got := pm.GetPixel(4, 7); got != red {
		t.Errorf("colored segment = %v, want red", got)
	}
}
