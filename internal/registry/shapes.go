package registry

import (
	"fmt"

	"github.com/FlightPaperStudio/project-ocelot/internal/hex"
)

func init() {
	Register("hexagon", "all cells within radius of the origin", hexagon)
	Register("rectangle", "width x height columns, rows offset so the board is square on screen", rectangle)
	Register("parallelogram", "width x height axial rhombus starting at the origin", parallelogram)
	Register("triangle", "triangle with radius cells per side", triangle)
}

// hexagon reads Radius.
func hexagon(p Params) ([]hex.Axial, error) {
	if p.Radius < 0 {
		return nil, fmt.Errorf("radius must be >= 0, got %d", p.Radius)
	}
	r := p.Radius
	coords := make([]hex.Axial, 0, 1+3*r*(r+1))
	for col := -r; col <= r; col++ {
		for row := max(-r, -col-r); row <= min(r, -col+r); row++ {
			coords = append(coords, hex.A(col, row))
		}
	}
	return coords, nil
}

// rectangle reads Width and Height. Rows are shifted every second column so
// that the board renders as a rectangle with flat-topped hexes.
func rectangle(p Params) ([]hex.Axial, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("width and height must be > 0, got %dx%d", p.Width, p.Height)
	}
	coords := make([]hex.Axial, 0, p.Width*p.Height)
	for col := 0; col < p.Width; col++ {
		shift := col / 2
		for y := 0; y < p.Height; y++ {
			coords = append(coords, hex.A(col, y-shift))
		}
	}
	return coords, nil
}

// parallelogram reads Width and Height.
func parallelogram(p Params) ([]hex.Axial, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("width and height must be > 0, got %dx%d", p.Width, p.Height)
	}
	coords := make([]hex.Axial, 0, p.Width*p.Height)
	for col := 0; col < p.Width; col++ {
		for row := 0; row < p.Height; row++ {
			coords = append(coords, hex.A(col, row))
		}
	}
	return coords, nil
}

// triangle reads Radius as the side length.
func triangle(p Params) ([]hex.Axial, error) {
	if p.Radius <= 0 {
		return nil, fmt.Errorf("size must be > 0, got %d", p.Radius)
	}
	coords := make([]hex.Axial, 0, p.Radius*(p.Radius+1)/2)
	for col := 0; col < p.Radius; col++ {
		for row := 0; row < p.Radius-col; row++ {
			coords = append(coords, hex.A(col, row))
		}
	}
	return coords, nil
}
