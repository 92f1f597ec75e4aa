// Package raster draws generated frames into an in-memory RGBA pixmap:
// anti-aliased polylines for the curve families and a diverging color
// map for standing-wave fields.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/spiro"
)

// Pixmap represents a rectangular pixel buffer. It implements draw.Image,
// so the x/image scalers and font drawers can target it directly.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // non-premultiplied RGBA, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single opaque pixel.
func (p *Pixmap) SetPixel(x, y int, c spiro.RGB) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = 255
}

// GetPixel returns the color of a single pixel, ignoring alpha.
func (p *Pixmap) GetPixel(x, y int) spiro.RGB {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return spiro.Black
	}
	i := (y*p.width + x) * 4
	return spiro.RGB{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2]}
}

// BlendPixelAlpha composites c over the pixel with coverage alpha.
func (p *Pixmap) BlendPixelAlpha(x, y int, c spiro.RGB, alpha uint8) {
	if alpha == 0 || x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	if alpha == 255 {
		p.SetPixel(x, y, c)
		return
	}
	i := (y*p.width + x) * 4
	a := uint32(alpha)
	inv := 255 - a
	p.data[i+0] = uint8((uint32(c.R)*a + uint32(p.data[i+0])*inv + 127) / 255)
	p.data[i+1] = uint8((uint32(c.G)*a + uint32(p.data[i+1])*inv + 127) / 255)
	p.data[i+2] = uint8((uint32(c.B)*a + uint32(p.data[i+2])*inv + 127) / 255)
	p.data[i+3] = uint8(a + (uint32(p.data[i+3])*inv+127)/255)
}

// Clear fills the entire pixmap with an opaque color.
func (p *Pixmap) Clear(c spiro.RGB) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = 255
	}
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// EncodePNG writes the pixmap to w as PNG.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := p.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	i := (y*p.width + x) * 4
	p.data[i+0] = n.R
	p.data[i+1] = n.G
	p.data[i+2] = n.B
	p.data[i+3] = n.A
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
