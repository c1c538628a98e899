package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/FlightPaperStudio/project-ocelot/internal/board"
	"github.com/FlightPaperStudio/project-ocelot/internal/grid"
	"github.com/FlightPaperStudio/project-ocelot/internal/hex"
)

var errBadCoordinate = errors.New("coordinate must be col,row")

// parseAxial parses "col,row" into an axial coordinate.
func parseAxial(s string) (hex.Axial, error) {
	colStr, rowStr, ok := strings.Cut(s, ",")
	if !ok {
		return hex.Axial{}, fmt.Errorf("%w: %q", errBadCoordinate, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return hex.Axial{}, fmt.Errorf("%w: %q", errBadCoordinate, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return hex.Axial{}, fmt.Errorf("%w: %q", errBadCoordinate, s)
	}
	return hex.A(col, row), nil
}

// resolveCell parses s and looks it up on the board.
func resolveCell(e *grid.Engine[board.Tile], s string) (*grid.Cell[board.Tile], error) {
	a, err := parseAxial(s)
	if err != nil {
		return nil, err
	}
	cell, ok := e.Resolve(a)
	if !ok {
		return nil, fmt.Errorf("cell %v is not on the board", a)
	}
	return cell, nil
}

// describeCell formats a cell as "(col,row) forest 'label'".
func describeCell(c *grid.Cell[board.Tile]) string {
	s := fmt.Sprintf("%-8v %s", c.Coord(), c.Value.Terrain)
	if c.Value.Label != "" {
		s += fmt.Sprintf(" %q", c.Value.Label)
	}
	return s
}
