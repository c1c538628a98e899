package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/FlightPaperStudio/project-ocelot/internal/board"
	"github.com/FlightPaperStudio/project-ocelot/internal/platform/tui"
	"github.com/FlightPaperStudio/project-ocelot/internal/storage"
)

var flagExploreRadius int

var exploreCmd = &cobra.Command{
	Use:   "explore [board]",
	Short: "Explore a board interactively",
	Long: `Opens the board explorer. Move the cursor across the board and watch the
movement range, full range or neighbours update around it.

Controls:
  w/e/d/s/a/q      - Move north, northeast, southeast, south, southwest, northwest
  +/-              - Change radius
  tab/shift+tab    - Cycle movement orientation
  m                - Cycle query mode
  r                - Toggle range shape
  [/]              - Previous/next board
  enter            - Start a match with the configured teams
  ?                - Toggle help
  esc/ctrl+c       - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplore,
}

func init() {
	exploreCmd.Flags().IntVarP(&flagExploreRadius, "radius", "r", 2, "Initial radius")
}

func runExplore(cmd *cobra.Command, args []string) error {
	boards, err := newLoader().LoadAll()
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		logger.Warn("matches will not be saved", "error", err)
	} else {
		defer store.Close()
		boards = appendStoredBoards(boards, store)
	}

	opts, err := explorerOptions(boardID(args), store)
	if err != nil {
		return err
	}
	opts.Radius = flagExploreRadius

	// Get terminal size
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		opts.Width = w
		opts.Height = h
	}

	return tui.RunExplorer(boards, opts)
}

// explorerOptions builds explorer settings from the config. A nil store
// disables saving matches.
func explorerOptions(id string, store *storage.Store) (tui.ExplorerOptions, error) {
	shape, err := cfg.RangeShape()
	if err != nil {
		return tui.ExplorerOptions{}, err
	}

	opts := tui.ExplorerOptions{
		BoardID: id,
		Radius:  2,
		Shape:   shape,
		Teams:   configTeams(),
		Logger:  logger,
	}
	if len(cfg.Teams) > 0 {
		opts.Movement = cfg.Teams[0].Movement
	}
	if store != nil {
		opts.Matches = store
	}
	return opts, nil
}

// appendStoredBoards adds database boards whose IDs are not already loaded.
func appendStoredBoards(boards []board.Board, store *storage.Store) []board.Board {
	entries, err := store.ListBoards()
	if err != nil {
		logger.Warn("cannot list stored boards", "error", err)
		return boards
	}

	loaded := make(map[string]bool, len(boards))
	for _, b := range boards {
		loaded[b.ID] = true
	}
	for _, e := range entries {
		if loaded[e.ID] {
			continue
		}
		b, err := store.LoadBoard(e.ID)
		if err != nil {
			logger.Warn("skipping stored board", "id", e.ID, "error", err)
			continue
		}
		boards = append(boards, b)
	}
	return boards
}
