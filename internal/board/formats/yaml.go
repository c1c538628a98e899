// Package formats provides pluggable board file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/FlightPaperStudio/project-ocelot/internal/hex"
	"github.com/FlightPaperStudio/project-ocelot/internal/registry"
)

// YAMLBoard represents the YAML structure for a board file.
//
// A board either lists every cell, or names a shape that is filled with the
// default terrain. Listed cells override shape cells at the same coordinate
// and holes remove them.
type YAMLBoard struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Shape    *YAMLShape        `yaml:"shape,omitempty"`
	Fill     string            `yaml:"fill,omitempty"` // Terrain for shape cells
	Cells    []YAMLCell        `yaml:"cells,omitempty"`
	Holes    []hex.Axial       `yaml:"holes,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLShape names a registered shape and its dimensions.
type YAMLShape struct {
	Name   string `yaml:"name"`
	Radius int    `yaml:"radius,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// YAMLCell represents a single cell in YAML format.
type YAMLCell struct {
	Col     int    `yaml:"col"`
	Row     int    `yaml:"row"`
	Terrain string `yaml:"terrain,omitempty"`
	Label   string `yaml:"label,omitempty"`
}

// Cell is a parsed cell. Terrain is still a name; the board package resolves it.
type Cell struct {
	Coord   hex.Axial
	Terrain string
	Label   string
}

// Board represents a parsed board ready for conversion.
type Board struct {
	ID       string
	Name     string
	Cells    []Cell
	Metadata map[string]string
}

// ParseYAML parses a YAML board file.
func ParseYAML(data []byte) (Board, error) {
	var yb YAMLBoard
	if err := yaml.Unmarshal(data, &yb); err != nil {
		return Board{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	board := Board{
		ID:       yb.ID,
		Name:     yb.Name,
		Metadata: yb.Metadata,
	}

	// Expand the shape first so listed cells can override it.
	shapeAt := make(map[hex.Axial]int)
	if yb.Shape != nil {
		coords, err := registry.Build(yb.Shape.Name, registry.Params{
			Radius: yb.Shape.Radius,
			Width:  yb.Shape.Width,
			Height: yb.Shape.Height,
		})
		if err != nil {
			return Board{}, fmt.Errorf("shape: %w", err)
		}
		for _, a := range coords {
			shapeAt[a] = len(board.Cells)
			board.Cells = append(board.Cells, Cell{Coord: a, Terrain: yb.Fill})
		}
	}

	for _, yc := range yb.Cells {
		cell := Cell{Coord: hex.A(yc.Col, yc.Row), Terrain: yc.Terrain, Label: yc.Label}
		if i, ok := shapeAt[cell.Coord]; ok {
			if cell.Terrain == "" {
				cell.Terrain = board.Cells[i].Terrain
			}
			board.Cells[i] = cell
			delete(shapeAt, cell.Coord) // a second listing is a real duplicate
			continue
		}
		board.Cells = append(board.Cells, cell)
	}

	if len(yb.Holes) > 0 {
		holes := make(map[hex.Axial]bool, len(yb.Holes))
		for _, h := range yb.Holes {
			holes[h] = true
		}
		kept := board.Cells[:0]
		for _, c := range board.Cells {
			if !holes[c.Coord] {
				kept = append(kept, c)
			}
		}
		board.Cells = kept
	}

	return board, nil
}

// MarshalYAML encodes a board with every cell listed explicitly.
func MarshalYAML(b Board) ([]byte, error) {
	yb := YAMLBoard{
		ID:       b.ID,
		Name:     b.Name,
		Metadata: b.Metadata,
		Cells:    make([]YAMLCell, len(b.Cells)),
	}
	for i, c := range b.Cells {
		yb.Cells[i] = YAMLCell{
			Col:     c.Coord.Col,
			Row:     c.Coord.Row,
			Terrain: c.Terrain,
			Label:   c.Label,
		}
	}

	data, err := yaml.Marshal(&yb)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
