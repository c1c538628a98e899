// ocelot explores the hex grid of a turn-based tactics board: distances,
// neighbours, diagonals and movement ranges for teams that advance in a
// fixed direction.
//
// Usage:
//
//	ocelot boards                    - List available boards
//	ocelot show [board]              - Draw a board, optionally with a query
//	ocelot query <kind> ...          - Run distance, neighbor, diagonal or range queries
//	ocelot generate                  - Generate a board from simplex noise
//	ocelot export <board>            - Print a board as YAML or copy it to the clipboard
//	ocelot explore [board]           - Interactive explorer
//	ocelot serve                     - Serve the explorer over SSH
//	ocelot matches                   - Browse or create match setups
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.ocelot/config.yaml, then ./configs/ocelot.yaml)
//	--log-level <lvl>   - debug, info, warn, error
//	--db <path>         - Database path (default: ~/.ocelot/ocelot.db)
//	--boards <dir>      - Extra board directory
//	--shape <shape>     - Range shape: hex or rectangle
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/FlightPaperStudio/project-ocelot/internal/board"
	"github.com/FlightPaperStudio/project-ocelot/internal/config"
	"github.com/FlightPaperStudio/project-ocelot/internal/grid"
	"github.com/FlightPaperStudio/project-ocelot/internal/logging"
	"github.com/FlightPaperStudio/project-ocelot/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagDBPath   string
	flagBoardDir string
	flagShape    string

	// Resolved in PersistentPreRunE
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ocelot",
	Short: "Ocelot - hex grid explorer for tactics boards",
	Long: `Ocelot loads hex boards for a turn-based tactics game and answers the
spatial questions the game asks: how far apart two cells are, which cell lies
in a direction or across a diagonal, and which cells a unit can reach without
stepping back toward its own side.

Available commands:
  boards    - Show all available boards
  show      - Draw a board
  query     - Run a spatial query
  generate  - Generate a new board
  export    - Export a board as YAML
  explore   - Interactive explorer
  serve     - Start SSH server for remote exploring
  matches   - Browse or create match setups

Examples:
  ocelot boards
  ocelot show skirmish --at 0,0 --radius 2 --movement left-to-right
  ocelot query range 0,0 --radius 1
  ocelot explore crossing
  ocelot serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagBoardDir, "boards", "", "Directory with extra board files")
	rootCmd.PersistentFlags().StringVar(&flagShape, "shape", "", "Range shape: hex or rectangle")

	rootCmd.AddCommand(boardsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(matchesCmd)
}

// setup loads the config, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		loaded.Log.Level = flagLogLevel
	}
	if flags.Changed("db") {
		loaded.Storage.Path = flagDBPath
	}
	if flags.Changed("boards") {
		loaded.Board.Dir = flagBoardDir
	}
	if flags.Changed("shape") {
		loaded.Rules.RangeShape = flagShape
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded
	logger = logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Prefix: "ocelot",
	})
	logger.Debug("config loaded", "board", cfg.Board.ID, "shape", cfg.Rules.RangeShape, "teams", len(cfg.Teams))
	return nil
}

func newLoader() *board.Loader {
	return board.NewLoader(config.ExpandHome(cfg.Board.Dir), logger)
}

func openStore() (*storage.Store, error) {
	store, err := storage.Open(cfg.Storage.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return store, nil
}

// boardID returns args[0], or the configured board.
func boardID(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Board.ID
}

// resolveBoard finds a board among board files, then in the database.
func resolveBoard(id string) (board.Board, error) {
	b, err := newLoader().LoadByID(id)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, board.ErrBoardNotFound) {
		return board.Board{}, err
	}

	store, storeErr := openStore()
	if storeErr != nil {
		logger.Debug("database unavailable", "error", storeErr)
		return board.Board{}, err
	}
	defer store.Close()

	return store.LoadBoard(id)
}

// engineOptions returns the grid options from the config.
func engineOptions() ([]grid.Option, error) {
	shape, err := cfg.RangeShape()
	if err != nil {
		return nil, err
	}
	return []grid.Option{grid.WithRangeShape(shape)}, nil
}
