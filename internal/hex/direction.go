package hex

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDirection is returned when a direction name cannot be parsed.
var ErrUnknownDirection = errors.New("hex: unknown direction")

// Direction is one of the six principal directions of a flat-topped hex,
// ordered clockwise starting from North.
type Direction uint8

const (
	North Direction = iota
	Northeast
	Southeast
	South
	Southwest
	Northwest
)

// Directions lists all principal directions in clockwise order.
var Directions = [6]Direction{North, Northeast, Southeast, South, Southwest, Northwest}

// Valid returns true if d is one of the six directions.
func (d Direction) Valid() bool {
	return d <= Northwest
}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case Northeast:
		return "Northeast"
	case Southeast:
		return "Southeast"
	case South:
		return "South"
	case Southwest:
		return "Southwest"
	case Northwest:
		return "Northwest"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Offset returns the unit cube vector for one step in this direction.
func (d Direction) Offset() Cube {
	switch d {
	case North:
		return Cube{X: 0, Y: 1, Z: -1}
	case Northeast:
		return Cube{X: 1, Y: 0, Z: -1}
	case Southeast:
		return Cube{X: 1, Y: -1, Z: 0}
	case South:
		return Cube{X: 0, Y: -1, Z: 1}
	case Southwest:
		return Cube{X: -1, Y: 0, Z: 1}
	case Northwest:
		return Cube{X: -1, Y: 1, Z: 0}
	}
	panic(fmt.Sprintf("hex: offset of invalid direction %d", uint8(d)))
}

// Opposite returns the direction pointing the other way: (d + 3) mod 6.
func (d Direction) Opposite() Direction {
	return d.rotate(3)
}

// Next returns the next direction clockwise.
func (d Direction) Next() Direction {
	return d.rotate(1)
}

// Prev returns the next direction counter-clockwise.
func (d Direction) Prev() Direction {
	return d.rotate(5)
}

func (d Direction) rotate(steps int) Direction {
	if !d.Valid() {
		panic(fmt.Sprintf("hex: rotate of invalid direction %d", uint8(d)))
	}
	return Direction((int(d) + steps) % 6)
}

// ParseDirection parses a direction name ("north", "NE", "south-west", ...).
func ParseDirection(s string) (Direction, error) {
	switch normalize(s) {
	case "north", "n":
		return North, nil
	case "northeast", "ne":
		return Northeast, nil
	case "southeast", "se":
		return Southeast, nil
	case "south", "s":
		return South, nil
	case "southwest", "sw":
		return Southwest, nil
	case "northwest", "nw":
		return Northwest, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Diagonal is one of the six diagonal directions. Diagonal i lies between
// Direction i and Direction i+1 (mod 6).
type Diagonal uint8

const (
	DiagonalNortheast Diagonal = iota // North + Northeast
	DiagonalEast                      // Northeast + Southeast
	DiagonalSoutheast                 // Southeast + South
	DiagonalSouthwest                 // South + Southwest
	DiagonalWest                      // Southwest + Northwest
	DiagonalNorthwest                 // Northwest + North
)

// Diagonals lists all diagonal directions in clockwise order.
var Diagonals = [6]Diagonal{
	DiagonalNortheast, DiagonalEast, DiagonalSoutheast,
	DiagonalSouthwest, DiagonalWest, DiagonalNorthwest,
}

// String returns the string representation of a diagonal.
func (g Diagonal) String() string {
	switch g {
	case DiagonalNortheast:
		return "DiagonalNortheast"
	case DiagonalEast:
		return "DiagonalEast"
	case DiagonalSoutheast:
		return "DiagonalSoutheast"
	case DiagonalSouthwest:
		return "DiagonalSouthwest"
	case DiagonalWest:
		return "DiagonalWest"
	case DiagonalNorthwest:
		return "DiagonalNorthwest"
	default:
		return fmt.Sprintf("Diagonal(%d)", uint8(g))
	}
}

// Bounds returns the two principal directions the diagonal lies between,
// in clockwise order.
func (g Diagonal) Bounds() (Direction, Direction) {
	switch g {
	case DiagonalNortheast:
		return North, Northeast
	case DiagonalEast:
		return Northeast, Southeast
	case DiagonalSoutheast:
		return Southeast, South
	case DiagonalSouthwest:
		return South, Southwest
	case DiagonalWest:
		return Southwest, Northwest
	case DiagonalNorthwest:
		return Northwest, North
	}
	panic(fmt.Sprintf("hex: bounds of invalid diagonal %d", uint8(g)))
}

// Offset returns the cube vector of the diagonal: the sum of its bounds.
func (g Diagonal) Offset() Cube {
	switch g {
	case DiagonalNortheast:
		return Cube{X: 1, Y: 1, Z: -2}
	case DiagonalEast:
		return Cube{X: 2, Y: -1, Z: -1}
	case DiagonalSoutheast:
		return Cube{X: 1, Y: -2, Z: 1}
	case DiagonalSouthwest:
		return Cube{X: -1, Y: -1, Z: 2}
	case DiagonalWest:
		return Cube{X: -2, Y: 1, Z: 1}
	case DiagonalNorthwest:
		return Cube{X: -1, Y: 2, Z: -1}
	}
	panic(fmt.Sprintf("hex: offset of invalid diagonal %d", uint8(g)))
}

// ResolveDiagonal returns the diagonal lying between a and b. It only exists
// when the two directions are cyclically adjacent; order does not matter.
func ResolveDiagonal(a, b Direction) (Diagonal, bool) {
	if !a.Valid() || !b.Valid() {
		return 0, false
	}
	switch {
	case a.Next() == b:
		return Diagonal(a), true
	case b.Next() == a:
		return Diagonal(b), true
	}
	return 0, false
}

// normalize lowercases s and strips separators so "North-East" matches "northeast".
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}
