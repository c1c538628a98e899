package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/FlightPaperStudio/project-ocelot/internal/board"
	"github.com/FlightPaperStudio/project-ocelot/internal/registry"
)

var (
	flagBoardsStored bool
	flagBoardsShapes bool
)

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List all available boards",
	Long: `Shows built-in boards and boards from the configured board directory.

Use --stored to list boards saved in the database, or --shapes to list the
shapes the generator can lay out.`,
	Args: cobra.NoArgs,
	RunE: runBoards,
}

func init() {
	boardsCmd.Flags().BoolVar(&flagBoardsStored, "stored", false, "List boards saved in the database")
	boardsCmd.Flags().BoolVar(&flagBoardsShapes, "shapes", false, "List generator shapes")
}

func runBoards(cmd *cobra.Command, args []string) error {
	switch {
	case flagBoardsShapes:
		printShapes()
		return nil
	case flagBoardsStored:
		return printStoredBoards()
	}

	boards, err := newLoader().LoadAll()
	if err != nil {
		return err
	}

	if len(boards) == 0 {
		fmt.Println("No boards available.")
		return nil
	}

	fmt.Println("Available boards:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, b := range boards {
		if len(b.ID) > maxIDLen {
			maxIDLen = len(b.ID)
		}
	}

	fmt.Printf("  %-*s  %5s  %8s  %s\n", maxIDLen, "ID", "Cells", "Passable", "Name")
	fmt.Printf("  %-*s  %5s  %8s  %s\n", maxIDLen, "--", "-----", "--------", "----")

	for i := range boards {
		stats := board.ComputeStats(&boards[i])
		fmt.Printf("  %-*s  %5d  %8d  %s\n", maxIDLen, boards[i].ID, stats.Cells, stats.Passable, boards[i].Name)
		if terrain := terrainSummary(stats.TerrainCounts); terrain != "" {
			fmt.Printf("  %-*s  %s\n", maxIDLen, "", terrain)
		}
	}

	fmt.Println()
	fmt.Println("Run 'ocelot show <id>' to draw a board.")
	return nil
}

func printStoredBoards() error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.ListBoards()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No stored boards. Use 'ocelot generate --save' to add one.")
		return nil
	}

	fmt.Println("Stored boards:")
	fmt.Println()
	for _, e := range entries {
		fmt.Printf("  %-16s  %5d cells  %-20s  updated %s\n", e.ID, e.Cells, e.Name, humanize.Time(e.UpdatedAt))
	}
	return nil
}

func printShapes() {
	fmt.Println("Generator shapes:")
	fmt.Println()
	for _, s := range registry.List() {
		fmt.Printf("  %-14s  %s\n", s.Name, s.Description)
	}
}

// terrainSummary formats terrain counts as "forest 4, hill 2".
func terrainSummary(counts map[board.Terrain]int) string {
	terrains := make([]board.Terrain, 0, len(counts))
	for t := range counts {
		terrains = append(terrains, t)
	}
	sort.Slice(terrains, func(i, j int) bool { return terrains[i] < terrains[j] })

	parts := make([]string, 0, len(terrains))
	for _, t := range terrains {
		parts = append(parts, fmt.Sprintf("%s %d", t, counts[t]))
	}
	return strings.Join(parts, ", ")
}
