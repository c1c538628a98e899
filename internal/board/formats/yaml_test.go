package formats

import (
	"testing"

	"github.com/FlightPaperStudio/project-ocelot/internal/hex"
)

func TestParseYAMLCells(t *testing.T) {
	data := []byte(`
id: tiny
name: Tiny
cells:
  - {col: 0, row: 0, terrain: plains, label: keep}
  - {col: 1, row: 0, terrain: forest}
  - {col: 0, row: 1}
metadata:
  author: test
`)

	b, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	if b.ID != "tiny" || b.Name != "Tiny" {
		t.Errorf("got id=%q name=%q", b.ID, b.Name)
	}
	if len(b.Cells) != 3 {
		t.Fatalf("expected 3 cells, got %d", len(b.Cells))
	}
	if b.Cells[0].Coord != hex.A(0, 0) || b.Cells[0].Label != "keep" {
		t.Errorf("first cell = %+v", b.Cells[0])
	}
	if b.Cells[1].Terrain != "forest" {
		t.Errorf("second cell terrain = %q", b.Cells[1].Terrain)
	}
	if b.Metadata["author"] != "test" {
		t.Errorf("metadata = %v", b.Metadata)
	}
}

func TestParseYAMLShapeOverridesAndHoles(t *testing.T) {
	data := []byte(`
id: ring
shape: {name: hexagon, radius: 1}
fill: plains
cells:
  - {col: 0, row: 0, terrain: rock, label: peak}
  - {col: 1, row: 0, label: camp}
holes:
  - {col: -1, row: 0}
`)

	b, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	if len(b.Cells) != 6 {
		t.Fatalf("expected 6 cells, got %d", len(b.Cells))
	}

	byCoord := make(map[hex.Axial]Cell)
	for _, c := range b.Cells {
		byCoord[c.Coord] = c
	}
	if _, ok := byCoord[hex.A(-1, 0)]; ok {
		t.Error("hole (-1,0) still present")
	}
	if c := byCoord[hex.A(0, 0)]; c.Terrain != "rock" || c.Label != "peak" {
		t.Errorf("override at origin = %+v", c)
	}
	if c := byCoord[hex.A(1, 0)]; c.Terrain != "plains" || c.Label != "camp" {
		t.Errorf("label-only override should keep fill terrain, got %+v", c)
	}
	if c := byCoord[hex.A(0, -1)]; c.Terrain != "plains" {
		t.Errorf("shape cell terrain = %q, expected plains", c.Terrain)
	}
}

func TestParseYAMLKeepsExplicitDuplicates(t *testing.T) {
	data := []byte(`
id: dup
cells:
  - {col: 2, row: 3}
  - {col: 2, row: 3}
`)

	b, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	// Duplicates are reported when the board is indexed, not here.
	if len(b.Cells) != 2 {
		t.Errorf("expected both cells kept, got %d", len(b.Cells))
	}
}

func TestParseYAMLErrors(t *testing.T) {
	if _, err := ParseYAML([]byte("id: [unterminated")); err == nil {
		t.Error("expected error for malformed yaml")
	}
	if _, err := ParseYAML([]byte("id: x\nshape: {name: spiral}\n")); err == nil {
		t.Error("expected error for unknown shape")
	}
}

func TestMarshalYAMLRoundTrip(t *testing.T) {
	in := Board{
		ID:   "rt",
		Name: "Round Trip",
		Cells: []Cell{
			{Coord: hex.A(0, 0), Terrain: "plains"},
			{Coord: hex.A(-1, 2), Terrain: "water", Label: "ford"},
		},
	}

	data, err := MarshalYAML(in)
	if err != nil {
		t.Fatalf("MarshalYAML() failed: %v", err)
	}
	out, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	if out.ID != in.ID || out.Name != in.Name || len(out.Cells) != len(in.Cells) {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	for i := range in.Cells {
		if out.Cells[i] != in.Cells[i] {
			t.Errorf("cell %d = %+v, expected %+v", i, out.Cells[i], in.Cells[i])
		}
	}
}
