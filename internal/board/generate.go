package board

import (
	"fmt"
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/FlightPaperStudio/project-ocelot/internal/grid"
	"github.com/FlightPaperStudio/project-ocelot/internal/registry"
)

// vegetationSalt derives the vegetation layer seed from the elevation seed.
const vegetationSalt = 0x5bd1e995

// GenConfig holds procedural board parameters.
type GenConfig struct {
	ID          string
	Name        string
	Shape       string // Registered shape name
	Params      registry.Params
	Seed        int64
	RandomSeed  bool    // Ignore Seed and draw a fresh one
	WaterLevel  float64 // Elevation below which cells become water (0.0-1.0)
	HillLevel   float64 // Elevation above which cells become hills
	RockLevel   float64 // Elevation above which cells become rock
	ForestLevel float64 // Vegetation above which plains become forest
}

// DefaultGenConfig returns a reasonable two-player board configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		ID:          "generated",
		Shape:       "hexagon",
		Params:      registry.Params{Radius: 5},
		WaterLevel:  0.22,
		HillLevel:   0.68,
		RockLevel:   0.82,
		ForestLevel: 0.62,
	}
}

// Generate creates a board with terrain drawn from layered simplex noise.
// The same config and seed always produce the same board. The seed used is
// recorded in the "seed" metadata entry.
func Generate(cfg GenConfig) (Board, error) {
	seed := cfg.Seed
	if cfg.RandomSeed {
		seed = rand.Int63()
	}

	coords, err := registry.Build(cfg.Shape, cfg.Params)
	if err != nil {
		return Board{}, fmt.Errorf("board: generate: %w", err)
	}

	// Independent layers for elevation and vegetation.
	elevNoise := opensimplex.NewNormalized(seed)
	vegNoise := opensimplex.NewNormalized(seed ^ vegetationSalt)

	id := cfg.ID
	if id == "" {
		id = fmt.Sprintf("gen-%d", seed)
	}
	name := cfg.Name
	if name == "" {
		name = fmt.Sprintf("Generated %s (seed %d)", cfg.Shape, seed)
	}

	b := Board{
		ID:    id,
		Name:  name,
		Cells: make([]grid.CellDef[Tile], 0, len(coords)),
		Metadata: map[string]string{
			"seed":  fmt.Sprintf("%d", seed),
			"shape": cfg.Shape,
		},
	}

	for _, a := range coords {
		// Flat-top axial -> cartesian so noise is isotropic on screen.
		x := 1.5 * float64(a.Col)
		y := math.Sqrt(3) * (float64(a.Row) + float64(a.Col)/2)

		elev := octaveNoise(elevNoise, x, y, 3, 0.12, 0.5)
		veg := octaveNoise(vegNoise, x, y, 2, 0.2, 0.5)

		b.Cells = append(b.Cells, grid.CellDef[Tile]{
			Coord: a,
			Value: Tile{Terrain: classify(cfg, elev, veg)},
		})
	}

	if err := Validate(&b); err != nil {
		return Board{}, err
	}
	return b, nil
}

// classify maps noise samples to a terrain.
func classify(cfg GenConfig, elev, veg float64) Terrain {
	switch {
	case elev < cfg.WaterLevel:
		return TerrainWater
	case elev > cfg.RockLevel:
		return TerrainRock
	case elev > cfg.HillLevel:
		return TerrainHill
	case veg > cfg.ForestLevel:
		return TerrainForest
	default:
		return TerrainPlains
	}
}

// octaveNoise sums several noise octaves, normalized back to [0, 1].
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxValue := 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxValue
}
