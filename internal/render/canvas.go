package render

import (
	"strings"
)

// Cell is a single styled character on a canvas.
type Cell struct {
	Rune  rune
	Style Style
}

// Canvas is a 2D character buffer. Board drawing writes runes and styles
// into it and the caller decides whether to print it plain or styled.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// NewCanvas creates a canvas of the given dimensions filled with spaces.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  max(width, 0),
		height: max(height, 0),
	}
	c.cells = make([][]Cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.width)
	}
	c.Clear()
	return c
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in characters.
func (c *Canvas) Height() int {
	return c.height
}

// Clear fills the entire canvas with unstyled spaces.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, r rune, style Style) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Style: style}
}

// Get returns the cell at the given position.
// Returns an unstyled space for out-of-bounds coordinates.
func (c *Canvas) Get(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{Rune: ' '}
	}
	return c.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond canvas bounds are clipped.
func (c *Canvas) DrawText(x, y int, text string, style Style) {
	i := 0
	for _, r := range text {
		c.Set(x+i, y, r, style)
		i++
	}
}

// Row returns the runes of row y with trailing spaces removed.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	var sb strings.Builder
	for _, cell := range c.cells[y] {
		sb.WriteRune(cell.Rune)
	}
	return strings.TrimRight(sb.String(), " ")
}

// String converts the canvas to plain text, one line per row.
func (c *Canvas) String() string {
	lines := make([]string, c.height)
	for y := range lines {
		lines[y] = c.Row(y)
	}
	return strings.Join(lines, "\n")
}
