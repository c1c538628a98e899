package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/FlightPaperStudio/project-ocelot/internal/hex"
)

// ErrNegativeRadius is returned by range queries given a radius below zero.
var ErrNegativeRadius = errors.New("grid: negative radius")

// ErrUnknownShape is returned when a range shape name cannot be parsed.
var ErrUnknownShape = errors.New("grid: unknown range shape")

// RangeShape selects how range queries filter the scanned rectangle.
type RangeShape uint8

const (
	// ShapeHex keeps only candidates within hex distance radius of the center.
	ShapeHex RangeShape = iota
	// ShapeRectangle keeps every present cell of the axial rectangle
	// [col-r, col+r] x [row-r, row+r]. Cells up to 2r away are included.
	ShapeRectangle
)

// String returns the config name of the shape.
func (s RangeShape) String() string {
	switch s {
	case ShapeHex:
		return "hex"
	case ShapeRectangle:
		return "rectangle"
	default:
		return fmt.Sprintf("RangeShape(%d)", uint8(s))
	}
}

// ParseRangeShape parses "hex" or "rectangle". An empty string means ShapeHex.
func ParseRangeShape(s string) (RangeShape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hex":
		return ShapeHex, nil
	case "rectangle", "rect":
		return ShapeRectangle, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	shape RangeShape
}

// WithRangeShape sets the filter used by Range and RangeExcludingBackward.
func WithRangeShape(shape RangeShape) Option {
	return func(o *engineOptions) {
		o.shape = shape
	}
}

// Engine answers distance, neighbour and range queries against an Index.
// It holds no mutable state; every query is a pure function of its inputs.
type Engine[T any] struct {
	index *Index[T]
	shape RangeShape
}

// NewEngine creates a query engine over idx.
func NewEngine[T any](idx *Index[T], opts ...Option) *Engine[T] {
	o := engineOptions{shape: ShapeHex}
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine[T]{index: idx, shape: o.shape}
}

// Index returns the underlying cell index.
func (e *Engine[T]) Index() *Index[T] {
	return e.index
}

// Shape returns the configured range shape.
func (e *Engine[T]) Shape() RangeShape {
	return e.shape
}

// Resolve returns the cell at a.
func (e *Engine[T]) Resolve(a hex.Axial) (*Cell[T], bool) {
	return e.index.Resolve(a)
}

// Distance returns the hex distance between two cells.
func (e *Engine[T]) Distance(a, b *Cell[T]) int {
	return hex.Distance(a.Cube(), b.Cube())
}

// Neighbor returns the adjacent cell in direction d.
// The second result is false at the board edge.
func (e *Engine[T]) Neighbor(cell *Cell[T], d hex.Direction) (*Cell[T], bool) {
	return e.NeighborAt(cell, d, 1)
}

// NeighborAt returns the cell n steps away in direction d.
func (e *Engine[T]) NeighborAt(cell *Cell[T], d hex.Direction, n int) (*Cell[T], bool) {
	return e.index.ResolveCube(cell.Cube().Add(d.Offset().Scale(n)))
}

// Neighbors returns every present adjacent cell, clockwise from North.
func (e *Engine[T]) Neighbors(cell *Cell[T]) []*Cell[T] {
	out := make([]*Cell[T], 0, len(hex.Directions))
	for _, d := range hex.Directions {
		if n, ok := e.Neighbor(cell, d); ok {
			out = append(out, n)
		}
	}
	return out
}

// Diagonal returns the cell across the diagonal lying between a and b.
// It is absent when the directions are not adjacent or no cell is there.
func (e *Engine[T]) Diagonal(cell *Cell[T], a, b hex.Direction) (*Cell[T], bool) {
	diag, ok := hex.ResolveDiagonal(a, b)
	if !ok {
		return nil, false
	}
	return e.index.ResolveCube(cell.Cube().Add(diag.Offset()))
}

// Range returns every cell around center within radius, excluding center.
// Radius 0 yields an empty result. With the default ShapeHex the axial
// rectangle around center is filtered to hex distance <= radius; use
// WithRangeShape(ShapeRectangle) to keep the whole rectangle.
func (e *Engine[T]) Range(center *Cell[T], radius int) ([]*Cell[T], error) {
	return e.scan(center, radius, nil)
}

// RangeExcludingBackward is Range without the cells lying behind center for
// a unit moving with orientation m.
func (e *Engine[T]) RangeExcludingBackward(center *Cell[T], radius int, m hex.Movement) ([]*Cell[T], error) {
	origin := center.Cube()
	return e.scan(center, radius, func(c hex.Cube) bool {
		return m.Behind(origin, c)
	})
}

// BackDirections returns the two directions behind a unit moving with m.
func (e *Engine[T]) BackDirections(m hex.Movement) (hex.Direction, hex.Direction) {
	return m.BackDirections()
}

// scan walks the axial rectangle around center, clipped to the index bounds,
// column-major, and collects present cells that pass the shape filter and
// are not excluded.
func (e *Engine[T]) scan(center *Cell[T], radius int, exclude func(hex.Cube) bool) ([]*Cell[T], error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeRadius, radius)
	}

	// No cell lies further than the bounding box span from a cell inside it.
	lo, hi := e.index.Bounds()
	radius = min(radius, (hi.Col-lo.Col)+(hi.Row-lo.Row))

	origin := center.Coord()
	var out []*Cell[T]
	for col := max(origin.Col-radius, lo.Col); col <= min(origin.Col+radius, hi.Col); col++ {
		for row := max(origin.Row-radius, lo.Row); row <= min(origin.Row+radius, hi.Row); row++ {
			a := hex.A(col, row)
			if a == origin {
				continue
			}
			cell, ok := e.index.Resolve(a)
			if !ok {
				continue
			}
			if e.shape == ShapeHex && hex.AxialDistance(origin, a) > radius {
				continue
			}
			if exclude != nil && exclude(a.ToCube()) {
				continue
			}
			out = append(out, cell)
		}
	}
	return out, nil
}
