package board

import (
	"errors"
	"fmt"

	"github.com/FlightPaperStudio/project-ocelot/internal/grid"
)

// Validation error codes.
const (
	CodeMissingID           = "MISSING_ID"
	CodeEmptyBoard          = "EMPTY_BOARD"
	CodeDuplicateCoordinate = "DUPLICATE_COORDINATE"
	CodeUnknownTerrain      = "UNKNOWN_TERRAIN"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
	Err     error // Underlying cause, if any
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks that a board can be loaded into a grid index.
// Checks:
//   - Board has an ID
//   - Board has at least one cell
//   - No two cells share a coordinate
func Validate(b *Board) error {
	if b.ID == "" {
		return ValidationError{
			Code:    CodeMissingID,
			Message: "board has no id",
		}
	}

	if len(b.Cells) == 0 {
		return ValidationError{
			Code:    CodeEmptyBoard,
			Message: fmt.Sprintf("board %s has no cells", b.ID),
		}
	}

	if _, err := grid.NewIndex(b.Cells); err != nil {
		var dup *grid.DuplicateCoordinateError
		if errors.As(err, &dup) {
			return ValidationError{
				Code:    CodeDuplicateCoordinate,
				Message: fmt.Sprintf("board %s: cells %d and %d share coordinate %v", b.ID, dup.First, dup.Second, dup.Coord),
				Err:     err,
			}
		}
		return err
	}

	return nil
}

// Stats describes a board's size and terrain mix.
type Stats struct {
	Cells         int
	Passable      int
	TerrainCounts map[Terrain]int
	Labels        int
}

// ComputeStats analyzes a board and returns statistics.
func ComputeStats(b *Board) Stats {
	stats := Stats{
		Cells:         len(b.Cells),
		TerrainCounts: b.TerrainCounts(),
	}
	for _, c := range b.Cells {
		if c.Value.Terrain.Passable() {
			stats.Passable++
		}
		if c.Value.Label != "" {
			stats.Labels++
		}
	}
	return stats
}
