package board

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/FlightPaperStudio/project-ocelot/internal/grid"
	"github.com/FlightPaperStudio/project-ocelot/internal/hex"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", p, err)
	}
	return p
}

func TestBuiltin(t *testing.T) {
	boards, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() failed: %v", err)
	}

	expected := map[string]int{
		"crossing": 59,
		"ridge":    63,
		"skirmish": 19,
	}
	if len(boards) != len(expected) {
		t.Fatalf("expected %d built-in boards, got %d", len(expected), len(boards))
	}
	for _, b := range boards {
		n, ok := expected[b.ID]
		if !ok {
			t.Errorf("unexpected board %q", b.ID)
			continue
		}
		if len(b.Cells) != n {
			t.Errorf("board %s has %d cells, expected %d", b.ID, len(b.Cells), n)
		}
		if b.FilePath != "" {
			t.Errorf("built-in board %s has file path %q", b.ID, b.FilePath)
		}
	}
}

func TestSkirmishBoard(t *testing.T) {
	loader := NewLoader("", nil)
	b, err := loader.LoadByID("skirmish")
	if err != nil {
		t.Fatalf("LoadByID() failed: %v", err)
	}

	idx, err := b.Index()
	if err != nil {
		t.Fatalf("Index() failed: %v", err)
	}
	center, ok := idx.Resolve(hex.A(0, 0))
	if !ok {
		t.Fatal("missing center")
	}
	if center.Value.Terrain != TerrainHill || center.Value.Label != "crown" {
		t.Errorf("center tile = %+v", center.Value)
	}

	e := grid.NewEngine(idx)
	ring, err := e.Range(center, 1)
	if err != nil {
		t.Fatalf("Range() failed: %v", err)
	}
	if len(ring) != 6 {
		t.Errorf("Range(center, 1) = %d cells, expected 6", len(ring))
	}
}

func TestLoaderDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "alpha.yaml", `
id: alpha
name: Alpha
shape: {name: parallelogram, width: 2, height: 2}
`)
	// Overrides the built-in skirmish board.
	writeFile(t, dir, "skirmish.yml", `
id: skirmish
name: Custom Skirmish
cells:
  - {col: 0, row: 0}
`)
	writeFile(t, dir, "broken.yaml", "id: [oops")
	writeFile(t, dir, "dup.yaml", `
id: dup
cells:
  - {col: 2, row: 3}
  - {col: 2, row: 3}
`)
	writeFile(t, dir, "notes.txt", "not a board")

	loader := NewLoader(dir, nil)
	boards, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}

	ids := make(map[string]Board)
	for i := 1; i < len(boards); i++ {
		if boards[i-1].ID >= boards[i].ID {
			t.Errorf("boards not sorted: %s >= %s", boards[i-1].ID, boards[i].ID)
		}
	}
	for _, b := range boards {
		ids[b.ID] = b
	}

	if _, ok := ids["dup"]; ok {
		t.Error("invalid board dup should be skipped")
	}
	if a, ok := ids["alpha"]; !ok || len(a.Cells) != 4 {
		t.Errorf("alpha missing or wrong size: %+v", a)
	}
	if s := ids["skirmish"]; s.Name != "Custom Skirmish" || len(s.Cells) != 1 {
		t.Errorf("skirmish not overridden: %s with %d cells", s.Name, len(s.Cells))
	}
	if _, ok := ids["ridge"]; !ok {
		t.Error("built-in boards should still be listed")
	}
}

func TestLoaderLoadFileDuplicate(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "dup.yaml", `
id: dup
cells:
  - {col: 2, row: 3}
  - {col: 0, row: 0}
  - {col: 2, row: 3}
`)

	_, err := NewLoader(dir, nil).LoadFile(p)
	if err == nil {
		t.Fatal("expected error for duplicate coordinate")
	}
	var ve ValidationError
	if !errors.As(err, &ve) || ve.Code != CodeDuplicateCoordinate {
		t.Errorf("error = %v, expected %s", err, CodeDuplicateCoordinate)
	}
	if !errors.Is(err, grid.ErrDuplicateCoordinate) {
		t.Errorf("error should wrap grid.ErrDuplicateCoordinate: %v", err)
	}
}

func TestLoaderErrors(t *testing.T) {
	loader := NewLoader("", nil)

	if _, err := loader.LoadByID("nowhere"); !errors.Is(err, ErrBoardNotFound) {
		t.Errorf("LoadByID(nowhere) error = %v, expected ErrBoardNotFound", err)
	}
	if _, err := loader.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs() failed: %v", err)
	}
	if len(ids) != 3 || ids[0] != "crossing" {
		t.Errorf("ListIDs() = %v", ids)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code string
	}{
		{"missing id", "cells:\n  - {col: 0, row: 0}\n", CodeMissingID},
		{"empty", "id: empty\n", CodeEmptyBoard},
		{"unknown terrain", "id: t\ncells:\n  - {col: 0, row: 0, terrain: lava}\n", CodeUnknownTerrain},
		{"duplicate", "id: d\ncells:\n  - {col: 2, row: 3}\n  - {col: 2, row: 3}\n", CodeDuplicateCoordinate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.yaml))
			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("ParseYAML() error = %v, expected ValidationError", err)
			}
			if ve.Code != tc.code {
				t.Errorf("code = %s, expected %s", ve.Code, tc.code)
			}
		})
	}
}
