package board

import (
	"errors"
	"testing"

	"github.com/FlightPaperStudio/project-ocelot/internal/grid"
	"github.com/FlightPaperStudio/project-ocelot/internal/hex"
	"github.com/FlightPaperStudio/project-ocelot/internal/registry"
)

func TestParseTerrain(t *testing.T) {
	tests := []struct {
		in       string
		expected Terrain
		ok       bool
	}{
		{"", TerrainPlains, true},
		{"plains", TerrainPlains, true},
		{"Forest", TerrainForest, true},
		{"hills", TerrainHill, true},
		{"river", TerrainWater, true},
		{"mountain", TerrainRock, true},
		{"lava", TerrainPlains, false},
	}

	for _, tc := range tests {
		got, ok := ParseTerrain(tc.in)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("ParseTerrain(%q) = %v, %v; expected %v, %v", tc.in, got, ok, tc.expected, tc.ok)
		}
	}

	for _, terr := range AllTerrains() {
		if got, ok := ParseTerrain(terr.String()); !ok || got != terr {
			t.Errorf("ParseTerrain(%q) did not round trip", terr.String())
		}
	}
}

func TestTerrainPassable(t *testing.T) {
	if !TerrainPlains.Passable() || !TerrainForest.Passable() || !TerrainHill.Passable() {
		t.Error("plains, forest and hill should be passable")
	}
	if TerrainWater.Passable() || TerrainRock.Passable() {
		t.Error("water and rock should not be passable")
	}
}

func TestBoardEngine(t *testing.T) {
	coords, err := registry.Build("hexagon", registry.Params{Radius: 2})
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	b := Board{ID: "test"}
	for _, a := range coords {
		b.Cells = append(b.Cells, grid.CellDef[Tile]{Coord: a})
	}

	e, err := b.Engine(grid.WithRangeShape(grid.ShapeRectangle))
	if err != nil {
		t.Fatalf("Engine() failed: %v", err)
	}
	if e.Index().Len() != 19 {
		t.Errorf("index has %d cells, expected 19", e.Index().Len())
	}
	if e.Shape() != grid.ShapeRectangle {
		t.Error("engine option not applied")
	}
}

func TestBoardIndexDuplicate(t *testing.T) {
	b := Board{
		ID: "dup",
		Cells: []grid.CellDef[Tile]{
			{Coord: hex.A(2, 3)},
			{Coord: hex.A(2, 3)},
		},
	}
	if _, err := b.Index(); !errors.Is(err, grid.ErrDuplicateCoordinate) {
		t.Errorf("Index() error = %v, expected ErrDuplicateCoordinate", err)
	}
}

func TestBoardEncodeYAMLRoundTrip(t *testing.T) {
	b, err := ParseYAML([]byte(`
id: rt
name: Round Trip
cells:
  - {col: 0, row: 0, terrain: hill, label: top}
  - {col: 1, row: 0, terrain: water}
`))
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}

	data, err := b.EncodeYAML()
	if err != nil {
		t.Fatalf("EncodeYAML() failed: %v", err)
	}
	again, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() of encoded board failed: %v", err)
	}
	if len(again.Cells) != 2 || again.Cells[0].Value != b.Cells[0].Value || again.Cells[1].Value != b.Cells[1].Value {
		t.Errorf("round trip mismatch: %+v", again.Cells)
	}
}

func TestComputeStats(t *testing.T) {
	b := Board{
		ID: "s",
		Cells: []grid.CellDef[Tile]{
			{Coord: hex.A(0, 0), Value: Tile{Terrain: TerrainPlains, Label: "a"}},
			{Coord: hex.A(1, 0), Value: Tile{Terrain: TerrainWater}},
			{Coord: hex.A(2, 0), Value: Tile{Terrain: TerrainForest}},
		},
	}
	stats := ComputeStats(&b)
	if stats.Cells != 3 || stats.Passable != 2 || stats.Labels != 1 {
		t.Errorf("ComputeStats() = %+v", stats)
	}
	if stats.TerrainCounts[TerrainWater] != 1 {
		t.Errorf("water count = %d", stats.TerrainCounts[TerrainWater])
	}
}
