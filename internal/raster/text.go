package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/spiro"
)

// captionFace is the fixed 7x13 bitmap face used for frame labels.
var captionFace font.Face = basicfont.Face7x13

// DrawText draws s with its baseline origin at (x, y).
func (p *Pixmap) DrawText(x, y int, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  p,
		Src:  image.NewUniform(c),
		Face: captionFace,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// MeasureText returns the advance width of s in pixels.
func MeasureText(s string) int {
	return font.MeasureString(captionFace, s).Ceil()
}

// LineHeight returns the caption line height in pixels.
func LineHeight() int {
	return captionFace.Metrics().Height.Ceil()
}

var printer = message.NewPrinter(language.English)

// Caption summarises a buffer in one line, for example
// "compound3d  62,831 points  stride 1".
func Caption(buf *spiro.RenderBuffer) string {
	if buf == nil {
		return ""
	}
	if buf.Field != nil {
		lo, hi := buf.Field.Range()
		return printer.Sprintf("%s  %d×%d cells  [%.3f, %.3f]",
			buf.Family, buf.Field.Cols, buf.Field.Rows, lo, hi)
	}
	s := printer.Sprintf("%s  %d points  stride %d", buf.Family, len(buf.Points), buf.Stride)
	if buf.Skipped > 0 {
		s += printer.Sprintf("  %d skipped", buf.Skipped)
	}
	if buf.Family.Animated() {
		s += printer.Sprintf("  t=%.2fs", buf.Tick)
	}
	return s
}
