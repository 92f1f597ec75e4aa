package raster

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/spiro"
)

// FieldImage renders f at one pixel per cell, mapping values symmetrically
// around zero so that nodal lines are Neutral. Row 0 of the field (y = 0)
// is the top row of the image.
func FieldImage(f *spiro.ScalarField) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Cols, f.Rows))
	lo, hi := f.Range()
	scale := math.Max(math.Abs(lo), math.Abs(hi))

	for r := 0; r < f.Rows; r++ {
		for c := 0; c < f.Cols; c++ {
			s := 0.0
			if scale > 0 {
				s = f.At(r, c) / scale
			}
			col := Diverging(s)
			img.SetNRGBA(c, r, color.NRGBA{R: col.R, G: col.G, B: col.B, A: 255})
		}
	}
	return img
}

// DrawField scales the field onto p with nearest-neighbour sampling,
// preserving the plate's a:b aspect ratio and centring it. It returns the
// destination rectangle.
func (p *Pixmap) DrawField(f *spiro.ScalarField) image.Rectangle {
	if f == nil || f.Rows == 0 || f.Cols == 0 || p.width == 0 || p.height == 0 {
		return image.Rectangle{}
	}
	aspect := 1.0
	if f.A > 0 && f.B > 0 {
		aspect = f.A / f.B
	}
	w, h := float64(p.width), float64(p.height)
	if w/h > aspect {
		w = h * aspect
	} else {
		h = w / aspect
	}
	rw, rh := max(int(math.Round(w)), 1), max(int(math.Round(h)), 1)
	x0, y0 := (p.width-rw)/2, (p.height-rh)/2
	dst := image.Rect(x0, y0, x0+rw, y0+rh)

	src := FieldImage(f)
	xdraw.NearestNeighbor.Scale(p, dst, src, src.Bounds(), xdraw.Src, nil)
	return dst
}
