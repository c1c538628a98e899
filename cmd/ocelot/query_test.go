package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/FlightPaperStudio/project-ocelot/internal/board"
	"github.com/FlightPaperStudio/project-ocelot/internal/grid"
	"github.com/FlightPaperStudio/project-ocelot/internal/hex"
	"github.com/FlightPaperStudio/project-ocelot/internal/match"
)

func skirmish(t *testing.T) board.Board {
	t.Helper()
	boards, err := board.Builtin()
	if err != nil {
		t.Fatalf("Builtin() failed: %v", err)
	}
	for _, b := range boards {
		if b.ID == "skirmish" {
			return b
		}
	}
	t.Fatal("skirmish board not found")
	return board.Board{}
}

func skirmishEngine(t *testing.T) *grid.Engine[board.Tile] {
	t.Helper()
	b := skirmish(t)
	e, err := b.Engine()
	if err != nil {
		t.Fatalf("Engine() failed: %v", err)
	}
	return e
}

func TestQueryDistance(t *testing.T) {
	var out bytes.Buffer
	if err := queryDistance(&out, skirmishEngine(t), "0,0", "2,-1"); err != nil {
		t.Fatalf("queryDistance() failed: %v", err)
	}
	if got := out.String(); got != "(0,0) -> (2,-1): 2\n" {
		t.Errorf("output = %q", got)
	}

	if err := queryDistance(&out, skirmishEngine(t), "0,0", "9,9"); err == nil {
		t.Error("expected error for missing cell")
	}
}

func TestQueryNeighbor(t *testing.T) {
	e := skirmishEngine(t)

	var out bytes.Buffer
	if err := queryNeighbor(&out, e, "0,0", "south", 2); err != nil {
		t.Fatalf("queryNeighbor() failed: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "(0,2)    plains" {
		t.Errorf("output = %q", got)
	}

	out.Reset()
	if err := queryNeighbor(&out, e, "0,2", "s", 1); err != nil {
		t.Fatalf("queryNeighbor() failed: %v", err)
	}
	if !strings.Contains(out.String(), "no cell 1 step(s) South of (0,2)") {
		t.Errorf("edge output = %q", out.String())
	}

	out.Reset()
	if err := queryNeighbor(&out, e, "0,0", "", 1); err != nil {
		t.Fatalf("queryNeighbor() failed: %v", err)
	}
	if lines := strings.Count(out.String(), "\n"); lines != 6 {
		t.Errorf("expected 6 neighbours, got %d lines", lines)
	}

	if err := queryNeighbor(&out, e, "0,0", "up", 1); err == nil {
		t.Error("expected error for unknown direction")
	}
}

func TestQueryDiagonal(t *testing.T) {
	e := skirmishEngine(t)

	var out bytes.Buffer
	if err := queryDiagonal(&out, e, "0,0", "north", "northeast"); err != nil {
		t.Fatalf("queryDiagonal() failed: %v", err)
	}
	// North (0,-1) plus Northeast (1,-1)
	if got := strings.TrimSpace(out.String()); got != "(1,-2)   plains" {
		t.Errorf("output = %q", got)
	}

	if err := queryDiagonal(&out, e, "0,0", "north", "south"); err == nil {
		t.Error("expected error for opposite directions")
	}

	out.Reset()
	if err := queryDiagonal(&out, e, "2,-2", "ne", "n"); err != nil {
		t.Fatalf("queryDiagonal() failed: %v", err)
	}
	if !strings.Contains(out.String(), "no cell DiagonalNortheast of (2,-2)") {
		t.Errorf("edge output = %q", out.String())
	}
}

func TestQueryRange(t *testing.T) {
	e := skirmishEngine(t)

	var out bytes.Buffer
	if err := queryRange(&out, e, "0,0", 1, ""); err != nil {
		t.Fatalf("queryRange() failed: %v", err)
	}
	if lines := strings.Count(out.String(), "\n"); lines != 6 {
		t.Errorf("expected 6 cells, got %d lines:\n%s", lines, out.String())
	}

	out.Reset()
	if err := queryRange(&out, e, "0,0", 1, "left-to-right"); err != nil {
		t.Fatalf("queryRange() failed: %v", err)
	}
	got := out.String()
	if !strings.HasPrefix(got, "moving left-to-right, behind is ") {
		t.Errorf("missing header: %q", got)
	}
	if lines := strings.Count(got, "\n"); lines != 5 {
		t.Errorf("expected header plus 4 cells, got %d lines:\n%s", lines, got)
	}

	out.Reset()
	if err := queryRange(&out, e, "0,0", 0, ""); err != nil {
		t.Fatalf("queryRange() failed: %v", err)
	}
	if got := out.String(); got != "  none\n" {
		t.Errorf("radius 0 output = %q", got)
	}

	if err := queryRange(&out, e, "0,0", -1, ""); err == nil {
		t.Error("expected error for negative radius")
	}
	if err := queryRange(&out, e, "0,0", 1, "sideways"); err == nil {
		t.Error("expected error for unknown movement")
	}
}

func TestQueryTeam(t *testing.T) {
	m, err := match.New(skirmish(t), []match.Team{
		{Name: "red", Movement: hex.LeftToRight},
	})
	if err != nil {
		t.Fatalf("match.New() failed: %v", err)
	}

	var out bytes.Buffer
	if err := queryTeam(&out, m, "red", "0,0", 1); err != nil {
		t.Fatalf("queryTeam() failed: %v", err)
	}
	got := out.String()
	for _, want := range []string{"moves (4):", "retreat (2):", "threatened (6):"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	if err := queryTeam(&out, m, "green", "0,0", 1); err == nil {
		t.Error("expected error for unknown team")
	}
}
