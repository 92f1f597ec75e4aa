package braille

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/spiro"
	"github.com/gogpu/spiro/internal/raster"
)

// DrawBuffer draws the polyline and spokes of buf fitted to the canvas.
// Uncolored segments are drawn uncolored. Field buffers are ignored; use
// Field for those.
func (c *Canvas) DrawBuffer(buf *spiro.RenderBuffer, margin float64) {
	if buf == nil || buf.IsField() {
		return
	}
	w, h := c.Dots()
	m := spiro.Viewport(w, h, buf.FitZoom(w, h, margin))
	for _, s := range buf.Segments(m) {
		if !s.A.IsFinite() || !s.B.IsFinite() {
			continue
		}
		x0, y0, x1, y1, ok := raster.ClipLine(s.A.X, s.A.Y, s.B.X, s.B.Y, 0, 0, float64(w-1), float64(h-1))
		if !ok {
			continue
		}
		var col *spiro.RGB
		if s.Colored {
			col = &s.Color
		}
		c.DrawLine(dot(x0), dot(y0), dot(x1), dot(y1), col)
	}
}

func dot(v float64) int {
	return int(math.Round(v))
}

// Field renders f into width x height terminal cells with upper half
// blocks: each cell shows two field rows, the upper as foreground and the
// lower as background. Values use the diverging palette, so nodal lines
// are neutral. The top of the output is y = 0.
func Field(f *spiro.ScalarField, width, height int) string {
	if f == nil || f.Rows == 0 || f.Cols == 0 || width <= 0 || height <= 0 {
		return ""
	}
	lo, hi := f.Range()
	scale := math.Max(math.Abs(lo), math.Abs(hi))
	sample := func(px, py int) spiro.RGB {
		if scale == 0 {
			return raster.Neutral
		}
		return raster.Diverging(f.At(fieldRow(py, f.Rows, height), min(px*f.Cols/width, f.Cols-1)) / scale)
	}

	styles := make(map[[2]spiro.RGB]lipgloss.Style)
	var b strings.Builder
	for y := 0; y < height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < width; x++ {
			key := [2]spiro.RGB{sample(x, 2*y), sample(x, 2*y+1)}
			st, ok := styles[key]
			if !ok {
				st = lipgloss.NewStyle().
					Foreground(lipgloss.Color(key[0].Hex())).
					Background(lipgloss.Color(key[1].Hex()))
				styles[key] = st
			}
			b.WriteString(st.Render("▀"))
		}
	}
	return b.String()
}

// fieldRow maps half-block row py of a height-cell output to a field row.
func fieldRow(py, rows, height int) int {
	return min(py*rows/(height*2), rows-1)
}
