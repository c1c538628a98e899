package hex

import (
	"errors"
	"fmt"
)

// ErrUnknownMovement is returned when a movement orientation cannot be parsed.
var ErrUnknownMovement = errors.New("hex: unknown movement direction")

// Movement is the board-traversal orientation assigned to a team at match
// setup. It decides which cells count as "behind" a unit of that team.
type Movement uint8

const (
	LeftToRight Movement = iota
	RightToLeft
	TopLeftToBottomRight
	BottomRightToTopLeft
	TopRightToBottomLeft
	BottomLeftToTopRight
)

// Movements lists every orientation.
var Movements = [6]Movement{
	LeftToRight, RightToLeft,
	TopLeftToBottomRight, BottomRightToTopLeft,
	TopRightToBottomLeft, BottomLeftToTopRight,
}

// Valid reports whether m is one of the six orientations.
func (m Movement) Valid() bool {
	return m <= BottomLeftToTopRight
}

// String returns the config name of the orientation.
func (m Movement) String() string {
	switch m {
	case LeftToRight:
		return "left-to-right"
	case RightToLeft:
		return "right-to-left"
	case TopLeftToBottomRight:
		return "top-left-to-bottom-right"
	case BottomRightToTopLeft:
		return "bottom-right-to-top-left"
	case TopRightToBottomLeft:
		return "top-right-to-bottom-left"
	case BottomLeftToTopRight:
		return "bottom-left-to-top-right"
	default:
		return fmt.Sprintf("Movement(%d)", uint8(m))
	}
}

// ParseMovement parses an orientation name such as "left-to-right" or "LEFT_TO_RIGHT".
func ParseMovement(s string) (Movement, error) {
	switch normalize(s) {
	case "lefttoright":
		return LeftToRight, nil
	case "righttoleft":
		return RightToLeft, nil
	case "toplefttobottomright":
		return TopLeftToBottomRight, nil
	case "bottomrighttotopleft":
		return BottomRightToTopLeft, nil
	case "toprighttobottomleft":
		return TopRightToBottomLeft, nil
	case "bottomlefttotopright":
		return BottomLeftToTopRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMovement, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Movement) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMovement, uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Movement) UnmarshalText(text []byte) error {
	parsed, err := ParseMovement(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// BackDirections returns the two principal directions pointing behind a unit
// moving with this orientation.
func (m Movement) BackDirections() (Direction, Direction) {
	switch m {
	case LeftToRight:
		return Southwest, Northwest
	case RightToLeft:
		return Northeast, Southeast
	case TopLeftToBottomRight:
		return Northwest, North
	case BottomRightToTopLeft:
		return Southeast, South
	case TopRightToBottomLeft:
		return North, Northeast
	case BottomLeftToTopRight:
		return South, Southwest
	}
	panic(fmt.Sprintf("hex: back directions of invalid movement %d", uint8(m)))
}

// Behind reports whether candidate lies in the backward half-plane of center.
// Each orientation compares a single cube axis against the center.
func (m Movement) Behind(center, candidate Cube) bool {
	switch m {
	case LeftToRight:
		return candidate.X < center.X
	case RightToLeft:
		return candidate.X > center.X
	case TopLeftToBottomRight:
		return candidate.Y > center.Y
	case BottomRightToTopLeft:
		return candidate.Y < center.Y
	case TopRightToBottomLeft:
		return candidate.Z < center.Z
	case BottomLeftToTopRight:
		return candidate.Z > center.Z
	}
	panic(fmt.Sprintf("hex: behind test of invalid movement %d", uint8(m)))
}
