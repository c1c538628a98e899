package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/FlightPaperStudio/project-ocelot/internal/board"
	"github.com/FlightPaperStudio/project-ocelot/internal/grid"
	"github.com/FlightPaperStudio/project-ocelot/internal/hex"
	"github.com/FlightPaperStudio/project-ocelot/internal/match"
)

var (
	flagQueryBoard    string
	flagQuerySteps    int
	flagQueryRadius   int
	flagQueryMovement string
	flagQueryTeam     string
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run a spatial query on a board",
	Long: `Runs one spatial query against a board and prints the resulting cells.
Coordinates are axial, written as col,row.

Examples:
  ocelot query distance 0,0 2,-1
  ocelot query neighbor 0,0 southeast --steps 2
  ocelot query diagonal 0,0 north northeast
  ocelot query range 0,0 --radius 2 --movement left-to-right
  ocelot query team red 0,0 --radius 2`,
}

var queryDistanceCmd = &cobra.Command{
	Use:   "distance <from> <to>",
	Short: "Hex distance between two cells",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := queryEngine()
		if err != nil {
			return err
		}
		return queryDistance(os.Stdout, e, args[0], args[1])
	},
}

var queryNeighborCmd = &cobra.Command{
	Use:   "neighbor <cell> [direction]",
	Short: "Adjacent cell in a direction, or all neighbours",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := queryEngine()
		if err != nil {
			return err
		}
		direction := ""
		if len(args) == 2 {
			direction = args[1]
		}
		return queryNeighbor(os.Stdout, e, args[0], direction, flagQuerySteps)
	},
}

var queryDiagonalCmd = &cobra.Command{
	Use:   "diagonal <cell> <direction> <direction>",
	Short: "Cell across the diagonal between two adjacent directions",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := queryEngine()
		if err != nil {
			return err
		}
		return queryDiagonal(os.Stdout, e, args[0], args[1], args[2])
	},
}

var queryRangeCmd = &cobra.Command{
	Use:   "range <cell>",
	Short: "Cells within a radius, optionally without those behind a movement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := queryEngine()
		if err != nil {
			return err
		}
		return queryRange(os.Stdout, e, args[0], flagQueryRadius, flagQueryMovement)
	},
}

var queryTeamCmd = &cobra.Command{
	Use:   "team <name> <cell>",
	Short: "Movement range, retreat and threat for a configured team",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := resolveBoard(queryBoardID())
		if err != nil {
			return err
		}
		opts, err := engineOptions()
		if err != nil {
			return err
		}
		m, err := match.New(b, configTeams(), opts...)
		if err != nil {
			return err
		}
		return queryTeam(os.Stdout, m, args[0], args[1], flagQueryRadius)
	},
}

func init() {
	queryCmd.PersistentFlags().StringVarP(&flagQueryBoard, "board", "b", "", "Board to query (default from config)")
	queryNeighborCmd.Flags().IntVarP(&flagQuerySteps, "steps", "n", 1, "Steps in the direction")
	queryRangeCmd.Flags().IntVarP(&flagQueryRadius, "radius", "r", 1, "Range radius")
	queryRangeCmd.Flags().StringVarP(&flagQueryMovement, "movement", "m", "", "Exclude cells behind this movement orientation")
	queryTeamCmd.Flags().IntVarP(&flagQueryRadius, "radius", "r", 1, "Range radius")

	queryCmd.AddCommand(queryDistanceCmd)
	queryCmd.AddCommand(queryNeighborCmd)
	queryCmd.AddCommand(queryDiagonalCmd)
	queryCmd.AddCommand(queryRangeCmd)
	queryCmd.AddCommand(queryTeamCmd)
}

func queryBoardID() string {
	if flagQueryBoard != "" {
		return flagQueryBoard
	}
	return cfg.Board.ID
}

func queryEngine() (*grid.Engine[board.Tile], error) {
	b, err := resolveBoard(queryBoardID())
	if err != nil {
		return nil, err
	}
	opts, err := engineOptions()
	if err != nil {
		return nil, err
	}
	return b.Engine(opts...)
}

// configTeams converts the configured teams for a match.
func configTeams() []match.Team {
	teams := make([]match.Team, len(cfg.Teams))
	for i, t := range cfg.Teams {
		teams[i] = match.Team{Name: t.Name, Movement: t.Movement}
	}
	return teams
}

func queryDistance(w io.Writer, e *grid.Engine[board.Tile], from, to string) error {
	a, err := resolveCell(e, from)
	if err != nil {
		return err
	}
	b, err := resolveCell(e, to)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v -> %v: %d\n", a.Coord(), b.Coord(), e.Distance(a, b))
	return nil
}

func queryNeighbor(w io.Writer, e *grid.Engine[board.Tile], at, direction string, steps int) error {
	cell, err := resolveCell(e, at)
	if err != nil {
		return err
	}

	if direction == "" {
		neighbors := e.Neighbors(cell)
		if len(neighbors) == 0 {
			fmt.Fprintln(w, "no neighbours")
		}
		for _, n := range neighbors {
			fmt.Fprintln(w, describeCell(n))
		}
		return nil
	}

	d, err := hex.ParseDirection(direction)
	if err != nil {
		return err
	}
	n, ok := e.NeighborAt(cell, d, steps)
	if !ok {
		fmt.Fprintf(w, "no cell %d step(s) %s of %v\n", steps, d, cell.Coord())
		return nil
	}
	fmt.Fprintln(w, describeCell(n))
	return nil
}

func queryDiagonal(w io.Writer, e *grid.Engine[board.Tile], at, first, second string) error {
	cell, err := resolveCell(e, at)
	if err != nil {
		return err
	}
	a, err := hex.ParseDirection(first)
	if err != nil {
		return err
	}
	b, err := hex.ParseDirection(second)
	if err != nil {
		return err
	}

	diag, ok := hex.ResolveDiagonal(a, b)
	if !ok {
		return fmt.Errorf("%s and %s are not adjacent directions", a, b)
	}
	n, ok := e.Diagonal(cell, a, b)
	if !ok {
		fmt.Fprintf(w, "no cell %s of %v\n", diag, cell.Coord())
		return nil
	}
	fmt.Fprintln(w, describeCell(n))
	return nil
}

func queryRange(w io.Writer, e *grid.Engine[board.Tile], at string, radius int, movement string) error {
	cell, err := resolveCell(e, at)
	if err != nil {
		return err
	}

	var cells []*grid.Cell[board.Tile]
	if movement == "" {
		cells, err = e.Range(cell, radius)
	} else {
		m, parseErr := hex.ParseMovement(movement)
		if parseErr != nil {
			return parseErr
		}
		back1, back2 := e.BackDirections(m)
		fmt.Fprintf(w, "moving %s, behind is %s and %s\n", m, back1, back2)
		cells, err = e.RangeExcludingBackward(cell, radius, m)
	}
	if err != nil {
		return err
	}

	printCells(w, cells)
	return nil
}

func queryTeam(w io.Writer, m *match.Match, team, at string, radius int) error {
	from, err := parseAxial(at)
	if err != nil {
		return err
	}

	moves, err := m.MovementRange(team, from, radius)
	if err != nil {
		return err
	}
	retreat, err := m.Retreat(team, from)
	if err != nil {
		return err
	}
	threat, err := m.Threatened(team, from, radius)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "moves (%d):\n", len(moves))
	printCells(w, moves)
	fmt.Fprintf(w, "retreat (%d):\n", len(retreat))
	printCells(w, retreat)
	fmt.Fprintf(w, "threatened (%d):\n", len(threat))
	printCells(w, threat)
	return nil
}

func printCells(w io.Writer, cells []*grid.Cell[board.Tile]) {
	if len(cells) == 0 {
		fmt.Fprintln(w, "  none")
		return
	}
	for _, c := range cells {
		fmt.Fprintf(w, "  %s\n", describeCell(c))
	}
}
