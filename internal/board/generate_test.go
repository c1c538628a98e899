package board

import (
	"fmt"
	"math"
	"testing"

	"github.com/FlightPaperStudio/project-ocelot/internal/registry"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 42

	a, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	b, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if len(a.Cells) != 91 {
		t.Errorf("radius 5 board has %d cells, expected 91", len(a.Cells))
	}
	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			t.Fatalf("cell %d differs between runs: %+v vs %+v", i, a.Cells[i], b.Cells[i])
		}
	}
	if a.Metadata["seed"] != "42" {
		t.Errorf("seed metadata = %q", a.Metadata["seed"])
	}
}

func TestGenerateShapes(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 7
	cfg.Shape = "rectangle"
	cfg.Params = registry.Params{Width: 6, Height: 5}

	b, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if len(b.Cells) != 30 {
		t.Errorf("expected 30 cells, got %d", len(b.Cells))
	}
	if _, err := b.Index(); err != nil {
		t.Errorf("generated board does not index: %v", err)
	}

	cfg.Shape = "spiral"
	if _, err := Generate(cfg); err == nil {
		t.Error("expected error for unknown shape")
	}
}

func TestClassify(t *testing.T) {
	cfg := DefaultGenConfig()
	tests := []struct {
		elev, veg float64
		expected  Terrain
	}{
		{0.1, 0.9, TerrainWater},
		{0.9, 0.9, TerrainRock},
		{0.7, 0.1, TerrainHill},
		{0.5, 0.8, TerrainForest},
		{0.5, 0.3, TerrainPlains},
	}
	for _, tc := range tests {
		if got := classify(cfg, tc.elev, tc.veg); got != tc.expected {
			t.Errorf("classify(%v, %v) = %v, expected %v", tc.elev, tc.veg, got, tc.expected)
		}
	}
}

func TestGenerateSeedEdges(t *testing.T) {
	for _, seed := range []int64{0, math.MaxInt64, math.MinInt64} {
		cfg := DefaultGenConfig()
		cfg.Seed = seed

		a, err := Generate(cfg)
		if err != nil {
			t.Fatalf("Generate(seed %d) failed: %v", seed, err)
		}
		b, err := Generate(cfg)
		if err != nil {
			t.Fatalf("Generate(seed %d) failed: %v", seed, err)
		}
		for i := range a.Cells {
			if a.Cells[i] != b.Cells[i] {
				t.Fatalf("seed %d: cell %d differs between runs", seed, i)
			}
		}
	}
}

func TestGenerateRandomSeed(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 42
	cfg.RandomSeed = true

	b, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	seed := b.Metadata["seed"]
	if seed == "" {
		t.Fatal("missing seed metadata")
	}

	// The recorded seed reproduces the board.
	cfg.RandomSeed = false
	if _, err := fmt.Sscan(seed, &cfg.Seed); err != nil {
		t.Fatalf("parsing seed %q: %v", seed, err)
	}
	again, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	for i := range b.Cells {
		if b.Cells[i] != again.Cells[i] {
			t.Fatalf("cell %d differs when regenerated from seed %s", i, seed)
		}
	}
}
