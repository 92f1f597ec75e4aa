package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/spiro"
)

func TestPixmap_SetGet(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(spiro.Black)
	pm.SetPixel(3, 4, spiro.RGB{R: 10, G: 20, B: 30})

	if got := pm.GetPixel(3, 4); got != (spiro.RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("GetPixel = %v", got)
	}
	if got := pm.At(3, 4); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("At = %v", got)
	}

	pm.Set(1, 1, color.NRGBA{R: 200, A: 255})
	if got := pm.GetPixel(1, 1); got != (spiro.RGB{R: 200}) {
		t.Errorf("Set/GetPixel = %v", got)
	}
}

func TestPixmap_OutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(spiro.Black)
	original := append([]uint8(nil), pm.Data()...)

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, spiro.White)
		pm.BlendPixelAlpha(c.x, c.y, spiro.White, 255)
		pm.Set(c.x, c.y, color.White)
	}
	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d", i)
		}
	}
}

func TestPixmap_BlendPixelAlpha(t *testing.T) {
	tests := []struct {
		name  string
		alpha uint8
		want  spiro.RGB
	}{
		{"none", 0, spiro.Black},
		{"half", 128, spiro.RGB{R: 128, G: 128, B: 128}},
		{"full", 255, spiro.White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPixmap(1, 1)
			pm.Clear(spiro.Black)
			pm.BlendPixelAlpha(0, 0, spiro.White, tt.alpha)
			if got := pm.GetPixel(0, 0); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if a := pm.Data()[3]; a != 255 {
				t.Errorf("alpha over opaque = %d, want 255", a)
			}
		})
	}
}

func TestPixmap_EncodePNG(t *testing.T) {
	pm := NewPixmap(4, 3)
	pm.Clear(spiro.SpokeBlue)

	var b bytes.Buffer
	if err := pm.EncodePNG(&b); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&b)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	r, g, bl, _ := img.At(2, 1).RGBA()
	if r>>8 != 100 || g>>8 != 100 || bl>>8 != 255 {
		t.Errorf("pixel = (%d, %d, %d)", r>>8, g>>8, bl>>8)
	}
}
