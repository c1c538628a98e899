package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/FlightPaperStudio/project-ocelot/internal/match"
	"github.com/FlightPaperStudio/project-ocelot/internal/platform/tui"
)

var (
	flagMatchesPlain bool
	flagMatchesLimit int
)

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Browse match setups",
	Long: `Browse stored match setups: which board was used and which way each
team moves. Opens an interactive browser in a terminal, or prints a table with
--plain.`,
	Args: cobra.NoArgs,
	RunE: runMatches,
}

var matchesNewCmd = &cobra.Command{
	Use:   "new [board]",
	Short: "Start a match with the configured teams",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMatchesNew,
}

var matchesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a stored match",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatchesShow,
}

func init() {
	matchesCmd.Flags().BoolVar(&flagMatchesPlain, "plain", false, "Print a table instead of the interactive browser")
	matchesCmd.Flags().IntVarP(&flagMatchesLimit, "limit", "n", 20, "Number of matches to print with --plain")

	matchesCmd.AddCommand(matchesNewCmd)
	matchesCmd.AddCommand(matchesShowCmd)
}

func runMatches(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if flagMatchesPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		records, err := store.ListMatches(flagMatchesLimit)
		if err != nil {
			return err
		}
		printMatches(os.Stdout, records, time.Now())
		return nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return tui.RunMatches(store, width, height)
}

func runMatchesNew(cmd *cobra.Command, args []string) error {
	b, err := resolveBoard(boardID(args))
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

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveMatch(m.Record()); err != nil {
		return err
	}
	logger.Info("match started", "id", m.ID(), "board", b.ID)

	fmt.Printf("Started match %s on %s\n", m.ID(), b.ID)
	for _, t := range m.Teams() {
		back1, back2 := t.Movement.BackDirections()
		fmt.Printf("  %-10s %-26s behind: %s, %s\n", t.Name, t.Movement, back1, back2)
	}
	return nil
}

func runMatchesShow(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid match id %q: %w", args[0], err)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.LoadMatch(id)
	if err != nil {
		return err
	}

	b, err := resolveBoard(rec.BoardID)
	if err != nil {
		return fmt.Errorf("match %s: %w", shortMatchID(rec.ID), err)
	}
	opts, err := engineOptions()
	if err != nil {
		return err
	}
	m, err := match.FromRecord(rec, b, opts...)
	if err != nil {
		return err
	}

	printMatches(os.Stdout, []match.Record{m.Record()}, time.Now())
	count, err := store.MatchCount(rec.BoardID)
	if err == nil {
		fmt.Printf("\n%d match(es) recorded on %s\n", count, rec.BoardID)
	}
	return nil
}

// printMatches writes records as an aligned table.
func printMatches(w io.Writer, records []match.Record, now time.Time) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No matches recorded yet.")
		return
	}

	columns := tui.MatchColumns(0)
	rows := tui.MatchRows(records, now)

	printRow(w, columns, func(i int) string { return columns[i].Title })
	for _, row := range rows {
		printRow(w, columns, func(i int) string { return row[i] })
	}
}

func printRow(w io.Writer, columns []table.Column, cell func(i int) string) {
	for i, c := range columns {
		if i > 0 {
			fmt.Fprint(w, "  ")
		}
		if i == len(columns)-1 {
			fmt.Fprint(w, cell(i))
			continue
		}
		fmt.Fprintf(w, "%-*s", c.Width, cell(i))
	}
	fmt.Fprintln(w)
}

func shortMatchID(id uuid.UUID) string {
	return id.String()[:8]
}
