// Package grid provides the board's cell index and the spatial queries built
// on top of it. An Index is built once from the board's cell definitions and
// is read-only afterwards, so it can be shared by any number of readers.
package grid

import (
	"errors"
	"fmt"

	"github.com/FlightPaperStudio/project-ocelot/internal/hex"
)

// ErrDuplicateCoordinate is returned when two cells claim the same coordinate.
var ErrDuplicateCoordinate = errors.New("grid: duplicate coordinate")

// DuplicateCoordinateError reports the coordinate and the positions of both
// definitions in the construction input.
type DuplicateCoordinateError struct {
	Coord  hex.Axial
	First  int
	Second int
}

func (e *DuplicateCoordinateError) Error() string {
	return fmt.Sprintf("grid: duplicate coordinate %v (cells %d and %d)", e.Coord, e.First, e.Second)
}

// Is reports whether target is ErrDuplicateCoordinate.
func (e *DuplicateCoordinateError) Is(target error) bool {
	return target == ErrDuplicateCoordinate
}

// CellDef is one entry of the construction input: a coordinate and an opaque
// handle to the cell object that owns it.
type CellDef[T any] struct {
	Coord hex.Axial
	Value T
}

// Cell is a board cell owned by an Index. Its coordinate never changes.
type Cell[T any] struct {
	coord hex.Axial
	Value T
}

// Coord returns the cell's axial coordinate.
func (c *Cell[T]) Coord() hex.Axial {
	return c.coord
}

// Cube returns the cell's coordinate in cube form.
func (c *Cell[T]) Cube() hex.Cube {
	return c.coord.ToCube()
}

// Index maps axial coordinates to cells.
type Index[T any] struct {
	cells map[hex.Axial]*Cell[T]
	order []*Cell[T] // construction order
	minC  hex.Axial
	maxC  hex.Axial
}

// NewIndex builds an index from the given definitions. It fails with
// ErrDuplicateCoordinate if two definitions share a coordinate.
func NewIndex[T any](defs []CellDef[T]) (*Index[T], error) {
	idx := &Index[T]{
		cells: make(map[hex.Axial]*Cell[T], len(defs)),
		order: make([]*Cell[T], 0, len(defs)),
	}
	seenAt := make(map[hex.Axial]int, len(defs))

	for i, def := range defs {
		if first, dup := seenAt[def.Coord]; dup {
			return nil, &DuplicateCoordinateError{Coord: def.Coord, First: first, Second: i}
		}
		seenAt[def.Coord] = i

		cell := &Cell[T]{coord: def.Coord, Value: def.Value}
		idx.cells[def.Coord] = cell
		idx.order = append(idx.order, cell)
		idx.grow(def.Coord)
	}

	return idx, nil
}

// grow extends the bounding box to include a.
func (idx *Index[T]) grow(a hex.Axial) {
	if len(idx.order) == 1 {
		idx.minC, idx.maxC = a, a
		return
	}
	idx.minC.Col = min(idx.minC.Col, a.Col)
	idx.minC.Row = min(idx.minC.Row, a.Row)
	idx.maxC.Col = max(idx.maxC.Col, a.Col)
	idx.maxC.Row = max(idx.maxC.Row, a.Row)
}

// Resolve returns the cell at the given coordinate.
// The second result is false when no cell occupies it.
func (idx *Index[T]) Resolve(a hex.Axial) (*Cell[T], bool) {
	cell, ok := idx.cells[a]
	return cell, ok
}

// ResolveCube is Resolve for a cube coordinate.
func (idx *Index[T]) ResolveCube(c hex.Cube) (*Cell[T], bool) {
	return idx.Resolve(c.ToAxial())
}

// Contains returns true if a cell occupies the coordinate.
func (idx *Index[T]) Contains(a hex.Axial) bool {
	_, ok := idx.cells[a]
	return ok
}

// Len returns the number of cells.
func (idx *Index[T]) Len() int {
	return len(idx.order)
}

// Cells returns all cells in construction order.
// The slice is a copy; the cells themselves are shared.
func (idx *Index[T]) Cells() []*Cell[T] {
	out := make([]*Cell[T], len(idx.order))
	copy(out, idx.order)
	return out
}

// Bounds returns the smallest and largest column and row present.
// Both are zero for an empty index.
func (idx *Index[T]) Bounds() (lo, hi hex.Axial) {
	return idx.minC, idx.maxC
}
