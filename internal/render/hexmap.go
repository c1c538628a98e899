// Package render draws boards as ASCII flat-topped hex maps, with optional
// lipgloss coloring and highlights for query results.
package render

import (
	"fmt"
	"strings"

	"github.com/FlightPaperStudio/project-ocelot/internal/board"
	"github.com/FlightPaperStudio/project-ocelot/internal/grid"
	"github.com/FlightPaperStudio/project-ocelot/internal/hex"
)

// Kind marks a cell in a rendered query result.
type Kind uint8

const (
	KindNone Kind = iota
	KindRange
	KindExcluded // In range but behind the unit
	KindNeighbor
	KindCursor
)

// Brackets returns the characters drawn around a cell glyph.
func (k Kind) Brackets() (rune, rune) {
	switch k {
	case KindCursor:
		return '<', '>'
	case KindRange:
		return '[', ']'
	case KindExcluded:
		return '(', ')'
	case KindNeighbor:
		return '{', '}'
	default:
		return ' ', ' '
	}
}

// Style returns the style for the brackets of a highlighted cell.
func (k Kind) Style() Style {
	switch k {
	case KindCursor:
		return StyleCursor
	case KindRange:
		return StyleRange
	case KindExcluded:
		return StyleExcluded
	case KindNeighbor:
		return StyleNeighbor
	default:
		return StyleDefault
	}
}

// Highlights maps coordinates to highlight kinds.
type Highlights map[hex.Axial]Kind

// Mark sets kind on every cell unless a higher kind is already set.
func (h Highlights) Mark(kind Kind, cells ...*grid.Cell[board.Tile]) {
	for _, c := range cells {
		if cur, ok := h[c.Coord()]; !ok || kind > cur {
			h[c.Coord()] = kind
		}
	}
}

// Layout spacing. Cells in one column are two lines apart and each column
// is shifted down one line from the previous, which gives flat-topped hexes.
const (
	colWidth  = 4
	cellWidth = 3
)

// Point is a character position on the canvas.
type Point struct {
	X, Y int
}

// Layout maps board coordinates to canvas positions.
type Layout struct {
	minCol, minY  int
	width, height int
}

// NewLayout computes the canvas size needed for idx.
func NewLayout(idx *grid.Index[board.Tile]) Layout {
	if idx.Len() == 0 {
		return Layout{}
	}

	lo, hi := idx.Bounds()
	minY, maxY := 0, 0
	first := true
	for _, c := range idx.Cells() {
		y := lineOf(c.Coord())
		if first || y < minY {
			minY = y
		}
		if first || y > maxY {
			maxY = y
		}
		first = false
	}

	return Layout{
		minCol: lo.Col,
		minY:   minY,
		width:  (hi.Col-lo.Col)*colWidth + cellWidth,
		height: maxY - minY + 1,
	}
}

// Size returns the canvas width and height.
func (l Layout) Size() (int, int) {
	return l.width, l.height
}

// Locate returns the canvas position of the left bracket of a.
func (l Layout) Locate(a hex.Axial) Point {
	return Point{
		X: (a.Col - l.minCol) * colWidth,
		Y: lineOf(a) - l.minY,
	}
}

// lineOf is the unshifted canvas line of a.
func lineOf(a hex.Axial) int {
	return 2*a.Row + a.Col
}

// Options controls board rendering.
type Options struct {
	Highlights Highlights
	Color      bool // Apply lipgloss styles
	Legend     bool // Append glyph and bracket legend
}

// Draw renders the board into a new canvas.
func Draw(idx *grid.Index[board.Tile], highlights Highlights) (*Canvas, Layout) {
	layout := NewLayout(idx)
	canvas := NewCanvas(layout.Size())

	for _, c := range idx.Cells() {
		p := layout.Locate(c.Coord())
		kind := highlights[c.Coord()]
		open, closing := kind.Brackets()

		canvas.Set(p.X, p.Y, open, kind.Style())
		canvas.Set(p.X+1, p.Y, c.Value.Terrain.Char(), TerrainStyle(c.Value.Terrain))
		canvas.Set(p.X+2, p.Y, closing, kind.Style())
	}

	return canvas, layout
}

// Board renders the board as a string.
func Board(idx *grid.Index[board.Tile], opts Options) string {
	canvas, _ := Draw(idx, opts.Highlights)

	var out string
	if opts.Color {
		out = Styled(canvas)
	} else {
		out = canvas.String()
	}

	if opts.Legend {
		out += "\n\n" + Legend(opts.Color)
	}
	return out
}

// Legend describes terrain glyphs and highlight brackets.
func Legend(color bool) string {
	paint := func(s string, style Style) string {
		if !color {
			return s
		}
		return styles[style].Render(s)
	}

	var terrain []string
	for _, t := range board.AllTerrains() {
		terrain = append(terrain, fmt.Sprintf("%s %s", paint(string(t.Char()), TerrainStyle(t)), t))
	}

	var kinds []string
	for _, k := range []struct {
		kind Kind
		name string
	}{
		{KindCursor, "cursor"},
		{KindRange, "in range"},
		{KindExcluded, "behind"},
		{KindNeighbor, "neighbor"},
	} {
		open, closing := k.kind.Brackets()
		kinds = append(kinds, fmt.Sprintf("%s %s", paint(string([]rune{open, '.', closing}), k.kind.Style()), k.name))
	}

	return strings.Join(terrain, "  ") + "\n" + strings.Join(kinds, "  ")
}
