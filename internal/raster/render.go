package raster

import "github.com/gogpu/spiro"

// Options controls Render.
type Options struct {
	Width, Height int
	Background    spiro.RGB
	Line          spiro.RGB // color of uncolored curve segments
	Caption       bool
	Margin        float64 // fraction of the half-extent left empty; default 0.1
}

// DefaultOptions returns an 800x600 black frame with white lines and a
// caption.
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     600,
		Background: spiro.Black,
		Line:       spiro.White,
		Caption:    true,
		Margin:     0.1,
	}
}

// Render draws buf into a new pixmap: the field scaled to fit, or the
// polyline and spokes under a viewport fitted to the curve.
func Render(buf *spiro.RenderBuffer, opts Options) *Pixmap {
	if opts.Margin <= 0 || opts.Margin >= 1 {
		opts.Margin = 0.1
	}
	p := NewPixmap(opts.Width, opts.Height)
	p.Clear(opts.Background)
	if buf == nil {
		return p
	}

	if buf.IsField() {
		p.DrawField(buf.Field)
	} else {
		p.DrawSegments(buf.Segments(viewport(buf, opts)), opts.Line)
	}

	if opts.Caption {
		p.DrawText(4, LineHeight(), Caption(buf), opts.Line)
	}
	return p
}

// viewport maps curve units to frame pixels with the zoom fitted to buf.
func viewport(buf *spiro.RenderBuffer, opts Options) spiro.Matrix {
	return spiro.Viewport(opts.Width, opts.Height, buf.FitZoom(opts.Width, opts.Height, opts.Margin))
}
