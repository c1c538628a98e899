// Package hex provides the coordinate and direction model for the tactics
// board.
//
// Boards use flat-topped hexes. A cell is identified by an Axial coordinate;
// Cube coordinates are transient values used for arithmetic.
package hex

import (
	"errors"
	"fmt"
)

// ErrInvalidCoordinate is returned when cube components do not sum to zero.
var ErrInvalidCoordinate = errors.New("hex: invalid coordinate")

// InvalidCoordinateError carries the offending components.
type InvalidCoordinateError struct {
	X, Y, Z int
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("hex: invalid coordinate (%d,%d,%d): components sum to %d, expected 0",
		e.X, e.Y, e.Z, e.X+e.Y+e.Z)
}

// Is reports whether target is ErrInvalidCoordinate.
func (e *InvalidCoordinateError) Is(target error) bool {
	return target == ErrInvalidCoordinate
}

// Cube is a cube coordinate. X+Y+Z is always zero.
type Cube struct {
	X, Y, Z int
}

// NewCube creates a cube coordinate, failing if the components do not sum to zero.
func NewCube(x, y, z int) (Cube, error) {
	if x+y+z != 0 {
		return Cube{}, &InvalidCoordinateError{X: x, Y: y, Z: z}
	}
	return Cube{X: x, Y: y, Z: z}, nil
}

// MustCube is like NewCube but panics on an invalid coordinate.
// Intended for constant tables and tests.
func MustCube(x, y, z int) Cube {
	c, err := NewCube(x, y, z)
	if err != nil {
		panic(err)
	}
	return c
}

// Add returns the componentwise sum of two cube coordinates.
func (c Cube) Add(other Cube) Cube {
	return Cube{X: c.X + other.X, Y: c.Y + other.Y, Z: c.Z + other.Z}
}

// Sub returns the componentwise difference c - other.
func (c Cube) Sub(other Cube) Cube {
	return Cube{X: c.X - other.X, Y: c.Y - other.Y, Z: c.Z - other.Z}
}

// Scale multiplies every component by n.
func (c Cube) Scale(n int) Cube {
	return Cube{X: c.X * n, Y: c.Y * n, Z: c.Z * n}
}

// Equal returns true if both coordinates have the same components.
func (c Cube) Equal(other Cube) bool {
	return c.X == other.X && c.Y == other.Y && c.Z == other.Z
}

// ToAxial converts to the axial form (col = x, row = z).
func (c Cube) ToAxial() Axial {
	return Axial{Col: c.X, Row: c.Z}
}

// String returns a string representation of the coordinate.
func (c Cube) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Axial is the canonical identity of a board cell. Any pair of integers is valid.
type Axial struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// A is a convenience constructor for Axial.
func A(col, row int) Axial {
	return Axial{Col: col, Row: row}
}

// ToCube converts to cube form: (col, -col-row, row).
func (a Axial) ToCube() Cube {
	return Cube{X: a.Col, Y: -a.Col - a.Row, Z: a.Row}
}

// Add returns the sum of two axial coordinates.
func (a Axial) Add(other Axial) Axial {
	return Axial{Col: a.Col + other.Col, Row: a.Row + other.Row}
}

// String returns a string representation of the coordinate.
func (a Axial) String() string {
	return fmt.Sprintf("(%d,%d)", a.Col, a.Row)
}

// Distance returns the hex distance between two cube coordinates.
// The Manhattan sum is always even because both inputs sum to zero.
func Distance(a, b Cube) int {
	return (abs(a.X-b.X) + abs(a.Y-b.Y) + abs(a.Z-b.Z)) / 2
}

// AxialDistance is Distance for axial coordinates.
func AxialDistance(a, b Axial) int {
	return Distance(a.ToCube(), b.ToCube())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
