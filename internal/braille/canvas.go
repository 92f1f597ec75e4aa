// Package braille renders frames into terminal text. Curves are drawn
// with braille patterns (2x4 dots per cell); fields use upper half
// blocks with a foreground and background color per cell.
package braille

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/spiro"
)

const blank = 0x2800

// Canvas is a grid of braille cells, each holding a 2x4 dot pattern and
// an optional color.
type Canvas struct {
	Width, Height int // in cells
	Grid          [][]rune

	colors  [][]spiro.RGB
	colored [][]bool
}

// NewCanvas creates an empty canvas of width x height cells.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 1), max(height, 1)
	c := &Canvas{Width: width, Height: height}
	c.Grid = make([][]rune, height)
	c.colors = make([][]spiro.RGB, height)
	c.colored = make([][]bool, height)
	for y := range c.Grid {
		c.Grid[y] = make([]rune, width)
		c.colors[y] = make([]spiro.RGB, width)
		c.colored[y] = make([]bool, width)
	}
	c.Clear()
	return c
}

// Dots returns the canvas size in dots.
func (c *Canvas) Dots() (w, h int) {
	return c.Width * 2, c.Height * 4
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for y := range c.Grid {
		for x := range c.Grid[y] {
			c.Grid[y][x] = blank
			c.colored[y][x] = false
		}
	}
}

// dotBit returns the braille bit for dot (dx, dy) within a cell.
func dotBit(dx, dy int) rune {
	if dy == 3 {
		return 0x40 << dx
	}
	return (1 << dy) << (dx * 3)
}

// Set raises the dot at (x, y). Dots outside the canvas are ignored.
func (c *Canvas) Set(x, y int) {
	w, h := c.Dots()
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	c.Grid[y/4][x/2] |= dotBit(x%2, y%4)
}

// SetColor raises the dot at (x, y) and colors its cell. A cell shows a
// single color, the last one written.
func (c *Canvas) SetColor(x, y int, col spiro.RGB) {
	w, h := c.Dots()
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	c.Set(x, y)
	c.colors[y/4][x/2] = col
	c.colored[y/4][x/2] = true
}

// IsSet reports whether the dot at (x, y) is raised.
func (c *Canvas) IsSet(x, y int) bool {
	w, h := c.Dots()
	if x < 0 || x >= w || y < 0 || y >= h {
		return false
	}
	return c.Grid[y/4][x/2]&dotBit(x%2, y%4) != 0
}

// DrawLine raises the dots on the line from (x0, y0) to (x1, y1)
// (Bresenham). col may be nil for an uncolored line.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col *spiro.RGB) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		if col != nil {
			c.SetColor(x0, y0, *col)
		} else {
			c.Set(x0, y0)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// String returns the plain braille text, one line per cell row.
func (c *Canvas) String() string {
	var b strings.Builder
	for y, row := range c.Grid {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

// Render returns the canvas text with cell colors applied. Runs of cells
// sharing a color are styled together.
func (c *Canvas) Render() string {
	var b strings.Builder
	for y, row := range c.Grid {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && c.colored[y][x] == c.colored[y][start] && c.colors[y][x] == c.colors[y][start] {
				continue
			}
			run := string(row[start:x])
			if c.colored[y][start] {
				run = lipgloss.NewStyle().Foreground(lipgloss.Color(c.colors[y][start].Hex())).Render(run)
			}
			b.WriteString(run)
			start = x
		}
	}
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
