// Package board defines tactics boards: their terrain, how they are loaded
// from YAML, validated, generated and turned into a grid index.
package board

import (
	"fmt"
	"strings"

	"github.com/FlightPaperStudio/project-ocelot/internal/board/formats"
	"github.com/FlightPaperStudio/project-ocelot/internal/grid"
	"github.com/FlightPaperStudio/project-ocelot/internal/hex"
)

// Terrain is the ground type of a cell.
type Terrain uint8

const (
	TerrainPlains Terrain = iota
	TerrainForest
	TerrainHill
	TerrainWater
	TerrainRock
)

// String returns the string representation of a terrain.
func (t Terrain) String() string {
	switch t {
	case TerrainPlains:
		return "plains"
	case TerrainForest:
		return "forest"
	case TerrainHill:
		return "hill"
	case TerrainWater:
		return "water"
	case TerrainRock:
		return "rock"
	default:
		return "unknown"
	}
}

// Char returns a single character representation for ASCII rendering.
func (t Terrain) Char() rune {
	switch t {
	case TerrainPlains:
		return '.'
	case TerrainForest:
		return '♣'
	case TerrainHill:
		return '^'
	case TerrainWater:
		return '~'
	case TerrainRock:
		return '#'
	default:
		return '?'
	}
}

// Passable returns true if units can end a move on this terrain.
func (t Terrain) Passable() bool {
	return t != TerrainWater && t != TerrainRock
}

// ParseTerrain converts a string to a Terrain. Empty means plains.
// Returns TerrainPlains and false if the string is not recognized.
func ParseTerrain(s string) (Terrain, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plains", "plain", ".":
		return TerrainPlains, true
	case "forest", "woods":
		return TerrainForest, true
	case "hill", "hills":
		return TerrainHill, true
	case "water", "river", "lake":
		return TerrainWater, true
	case "rock", "mountain", "wall":
		return TerrainRock, true
	default:
		return TerrainPlains, false
	}
}

// AllTerrains returns a slice of all terrains.
func AllTerrains() []Terrain {
	return []Terrain{TerrainPlains, TerrainForest, TerrainHill, TerrainWater, TerrainRock}
}

// Tile is the cell object owned by the grid index.
type Tile struct {
	Terrain Terrain
	Label   string
}

// Board is a complete board definition.
type Board struct {
	ID       string
	Name     string
	Cells    []grid.CellDef[Tile]
	Metadata map[string]string
	FilePath string // Empty for built-in and generated boards
}

// Index builds the grid index for the board.
func (b *Board) Index() (*grid.Index[Tile], error) {
	idx, err := grid.NewIndex(b.Cells)
	if err != nil {
		return nil, fmt.Errorf("board %s: %w", b.ID, err)
	}
	return idx, nil
}

// Engine builds the index and wraps it in a query engine.
func (b *Board) Engine(opts ...grid.Option) (*grid.Engine[Tile], error) {
	idx, err := b.Index()
	if err != nil {
		return nil, err
	}
	return grid.NewEngine(idx, opts...), nil
}

// TerrainCounts returns how many cells of each terrain the board has.
func (b *Board) TerrainCounts() map[Terrain]int {
	counts := make(map[Terrain]int)
	for _, c := range b.Cells {
		counts[c.Value.Terrain]++
	}
	return counts
}

// fromFormat converts a parsed file into a Board, resolving terrain names.
func fromFormat(parsed formats.Board) (Board, error) {
	b := Board{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Cells:    make([]grid.CellDef[Tile], 0, len(parsed.Cells)),
		Metadata: parsed.Metadata,
	}

	for _, c := range parsed.Cells {
		terrain, ok := ParseTerrain(c.Terrain)
		if !ok {
			return Board{}, ValidationError{
				Code:    CodeUnknownTerrain,
				Message: fmt.Sprintf("cell %v has unknown terrain %q", c.Coord, c.Terrain),
			}
		}
		b.Cells = append(b.Cells, grid.CellDef[Tile]{
			Coord: c.Coord,
			Value: Tile{Terrain: terrain, Label: c.Label},
		})
	}

	if b.Name == "" {
		b.Name = b.ID
	}
	return b, nil
}

// ToFormat converts the board into the file representation.
func (b *Board) ToFormat() formats.Board {
	out := formats.Board{
		ID:       b.ID,
		Name:     b.Name,
		Cells:    make([]formats.Cell, len(b.Cells)),
		Metadata: b.Metadata,
	}
	for i, c := range b.Cells {
		out.Cells[i] = formats.Cell{
			Coord:   c.Coord,
			Terrain: c.Value.Terrain.String(),
			Label:   c.Value.Label,
		}
	}
	return out
}

// EncodeYAML encodes the board in the YAML board format.
func (b *Board) EncodeYAML() ([]byte, error) {
	return formats.MarshalYAML(b.ToFormat())
}

// Coords returns the coordinates of all cells in definition order.
func (b *Board) Coords() []hex.Axial {
	out := make([]hex.Axial, len(b.Cells))
	for i, c := range b.Cells {
		out[i] = c.Coord
	}
	return out
}
