// Package match sets up a tactics match on a board: which teams play and
// the fixed movement orientation each one was assigned. The spatial rules
// for a team's units are answered through the board's grid engine.
package match

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/FlightPaperStudio/project-ocelot/internal/board"
	"github.com/FlightPaperStudio/project-ocelot/internal/grid"
	"github.com/FlightPaperStudio/project-ocelot/internal/hex"
)

var (
	// ErrNoTeams is returned when a match is created without teams.
	ErrNoTeams = errors.New("match: no teams")
	// ErrDuplicateTeam is returned when two teams share a name.
	ErrDuplicateTeam = errors.New("match: duplicate team")
	// ErrUnknownTeam is returned when a query names a team not in the match.
	ErrUnknownTeam = errors.New("match: unknown team")
	// ErrCellNotFound is returned when a query starts outside the board.
	ErrCellNotFound = errors.New("match: cell not on board")
)

// Cell is a board cell.
type Cell = grid.Cell[board.Tile]

// Team is a side in the match with its fixed movement orientation.
type Team struct {
	Name     string       `json:"name"`
	Movement hex.Movement `json:"movement"`
}

// Record is the persisted form of a match setup.
type Record struct {
	ID        uuid.UUID
	BoardID   string
	Teams     []Team
	CreatedAt time.Time
}

// Match is an immutable match setup bound to a board.
type Match struct {
	rec    Record
	board  board.Board
	engine *grid.Engine[board.Tile]
}

// New creates a match on b with a fresh ID.
func New(b board.Board, teams []Team, opts ...grid.Option) (*Match, error) {
	return FromRecord(Record{
		ID:        uuid.New(),
		BoardID:   b.ID,
		Teams:     teams,
		CreatedAt: time.Now().UTC(),
	}, b, opts...)
}

// FromRecord rebuilds a match from its persisted record.
func FromRecord(rec Record, b board.Board, opts ...grid.Option) (*Match, error) {
	if rec.BoardID != b.ID {
		return nil, fmt.Errorf("match %s: record is for board %q, got %q", rec.ID, rec.BoardID, b.ID)
	}
	if len(rec.Teams) == 0 {
		return nil, ErrNoTeams
	}

	seen := make(map[string]bool, len(rec.Teams))
	for _, t := range rec.Teams {
		if seen[t.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTeam, t.Name)
		}
		seen[t.Name] = true
		if !t.Movement.Valid() {
			return nil, fmt.Errorf("team %q: %w", t.Name, hex.ErrUnknownMovement)
		}
	}

	engine, err := b.Engine(opts...)
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", rec.ID, err)
	}

	rec.Teams = append([]Team(nil), rec.Teams...)
	return &Match{rec: rec, board: b, engine: engine}, nil
}

// ID returns the match identifier.
func (m *Match) ID() uuid.UUID { return m.rec.ID }

// Board returns the board the match is played on.
func (m *Match) Board() board.Board { return m.board }

// Engine returns the spatial query engine for the board.
func (m *Match) Engine() *grid.Engine[board.Tile] { return m.engine }

// Teams returns a copy of the teams in setup order.
func (m *Match) Teams() []Team {
	return append([]Team(nil), m.rec.Teams...)
}

// Record returns the persisted form of the match.
func (m *Match) Record() Record {
	rec := m.rec
	rec.Teams = m.Teams()
	return rec
}

// Team returns the team with the given name.
func (m *Match) Team(name string) (Team, error) {
	for _, t := range m.rec.Teams {
		if t.Name == name {
			return t, nil
		}
	}
	return Team{}, fmt.Errorf("%w: %q", ErrUnknownTeam, name)
}

// MovementRange returns the cells a unit of team standing at from can move
// to: cells within radius that are not behind it and are passable.
func (m *Match) MovementRange(team string, from hex.Axial, radius int) ([]*Cell, error) {
	t, center, err := m.lookup(team, from)
	if err != nil {
		return nil, err
	}

	cells, err := m.engine.RangeExcludingBackward(center, radius, t.Movement)
	if err != nil {
		return nil, err
	}
	return passable(cells), nil
}

// Retreat returns the passable cells adjacent to from in the team's two
// back directions.
func (m *Match) Retreat(team string, from hex.Axial) ([]*Cell, error) {
	t, center, err := m.lookup(team, from)
	if err != nil {
		return nil, err
	}

	a, b := m.engine.BackDirections(t.Movement)
	var out []*Cell
	for _, d := range []hex.Direction{a, b} {
		if n, ok := m.engine.Neighbor(center, d); ok && n.Value.Terrain.Passable() {
			out = append(out, n)
		}
	}
	return out, nil
}

// Threatened returns every cell within radius of a unit of team at from,
// in all directions and regardless of terrain.
func (m *Match) Threatened(team string, from hex.Axial, radius int) ([]*Cell, error) {
	_, center, err := m.lookup(team, from)
	if err != nil {
		return nil, err
	}
	return m.engine.Range(center, radius)
}

func (m *Match) lookup(team string, from hex.Axial) (Team, *Cell, error) {
	t, err := m.Team(team)
	if err != nil {
		return Team{}, nil, err
	}
	center, ok := m.engine.Resolve(from)
	if !ok {
		return Team{}, nil, fmt.Errorf("%w: %v", ErrCellNotFound, from)
	}
	return t, center, nil
}

func passable(cells []*Cell) []*Cell {
	out := cells[:0]
	for _, c := range cells {
		if c.Value.Terrain.Passable() {
			out = append(out, c)
		}
	}
	return out
}
