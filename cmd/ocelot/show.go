package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/FlightPaperStudio/project-ocelot/internal/board"
	"github.com/FlightPaperStudio/project-ocelot/internal/hex"
	"github.com/FlightPaperStudio/project-ocelot/internal/platform/tui"
	"github.com/FlightPaperStudio/project-ocelot/internal/render"
)

var (
	flagShowAt       string
	flagShowRadius   int
	flagShowMovement string
	flagShowMode     string
	flagShowNoColor  bool
	flagShowLegend   bool
)

var showCmd = &cobra.Command{
	Use:   "show [board]",
	Short: "Draw a board",
	Long: `Draws a board in the terminal. With --at, the result of a query around
that cell is highlighted: the forward movement range (default), the full range,
or the neighbours and diagonals.

Examples:
  ocelot show ridge
  ocelot show --at 0,0 --radius 2 --movement right-to-left
  ocelot show crossing --at 1,-1 --mode neighbors`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&flagShowAt, "at", "", "Highlight a query around col,row")
	showCmd.Flags().IntVarP(&flagShowRadius, "radius", "r", 2, "Query radius")
	showCmd.Flags().StringVarP(&flagShowMovement, "movement", "m", "", "Movement orientation (default: first team's)")
	showCmd.Flags().StringVar(&flagShowMode, "mode", "movement", "Query: movement, range or neighbors")
	showCmd.Flags().BoolVar(&flagShowNoColor, "no-color", false, "Disable colors")
	showCmd.Flags().BoolVar(&flagShowLegend, "legend", true, "Print the legend")
}

func runShow(cmd *cobra.Command, args []string) error {
	b, err := resolveBoard(boardID(args))
	if err != nil {
		return err
	}

	opts, err := engineOptions()
	if err != nil {
		return err
	}
	e, err := b.Engine(opts...)
	if err != nil {
		return err
	}

	renderOpts := render.Options{
		Color:  !flagShowNoColor && term.IsTerminal(int(os.Stdout.Fd())),
		Legend: flagShowLegend,
	}

	if flagShowAt != "" {
		at, err := parseAxial(flagShowAt)
		if err != nil {
			return err
		}
		mode, err := tui.ParseMode(flagShowMode)
		if err != nil {
			return err
		}
		movement, err := movementFlag(flagShowMovement)
		if err != nil {
			return err
		}
		renderOpts.Highlights, err = tui.QueryHighlights(e, at, mode, flagShowRadius, movement)
		if err != nil {
			return err
		}
	}

	stats := board.ComputeStats(&b)
	fmt.Printf("%s (%s) - %d cells, %d passable\n\n", b.Name, b.ID, stats.Cells, stats.Passable)
	fmt.Println(render.Board(e.Index(), renderOpts))

	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if w, _ := render.NewLayout(e.Index()).Size(); w > width {
			logger.Warn("board is wider than the terminal", "board", w, "terminal", width)
		}
	}
	return nil
}

// movementFlag parses a movement flag, falling back to the first team.
func movementFlag(s string) (hex.Movement, error) {
	if s != "" {
		return hex.ParseMovement(s)
	}
	if len(cfg.Teams) > 0 {
		return cfg.Teams[0].Movement, nil
	}
	return hex.LeftToRight, nil
}
