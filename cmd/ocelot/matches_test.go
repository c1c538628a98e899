package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/FlightPaperStudio/project-ocelot/internal/hex"
	"github.com/FlightPaperStudio/project-ocelot/internal/match"
)

func TestPrintMatches(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.MustParse("3f2a1b4c-0000-4000-8000-000000000001")
	records := []match.Record{{
		ID:      id,
		BoardID: "ridge",
		Teams: []match.Team{
			{Name: "red", Movement: hex.LeftToRight},
			{Name: "blue", Movement: hex.RightToLeft},
		},
		CreatedAt: now.Add(-2 * time.Hour),
	}}

	var out bytes.Buffer
	printMatches(&out, records, now)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d lines:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "Match     Board") {
		t.Errorf("header = %q", lines[0])
	}
	for _, want := range []string{"3f2a1b4c", "ridge", "red left-to-right, blue right-to-left", "2 hours ago"} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("row missing %q: %q", want, lines[1])
		}
	}
	if shortMatchID(id) != "3f2a1b4c" {
		t.Errorf("shortMatchID() = %q", shortMatchID(id))
	}
}

func TestPrintMatchesEmpty(t *testing.T) {
	var out bytes.Buffer
	printMatches(&out, nil, time.Now())
	if got := out.String(); got != "No matches recorded yet.\n" {
		t.Errorf("output = %q", got)
	}
}
