// Package storage provides SQLite-based persistence for boards and match
// setups. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies, with sqlx for struct scanning.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/FlightPaperStudio/project-ocelot/internal/board"
	"github.com/FlightPaperStudio/project-ocelot/internal/logging"
	"github.com/FlightPaperStudio/project-ocelot/internal/match"
)

// ErrMatchNotFound is returned when no match has the requested ID.
var ErrMatchNotFound = errors.New("storage: match not found")

// Store manages the SQLite database connection.
type Store struct {
	db     *sqlx.DB
	logger *log.Logger
}

// BoardEntry summarizes a stored board.
type BoardEntry struct {
	ID        string
	Name      string
	Cells     int
	UpdatedAt time.Time
}

// boardRow is a full row of the boards table.
type boardRow struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Cells     int    `db:"cells"`
	Body      string `db:"body"`
	UpdatedAt int64  `db:"updated_at"`
}

// matchRow is a full row of the matches table.
type matchRow struct {
	ID        string `db:"id"`
	BoardID   string `db:"board_id"`
	Teams     string `db:"teams"`
	CreatedAt int64  `db:"created_at"`
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// A nil logger discards output.
func Open(dbPath string, logger *log.Logger) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, logger: logging.OrDiscard(logger)}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	store.logger.Debug("database opened", "path", dbPath)
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS boards (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			cells INTEGER NOT NULL,
			body TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS matches (
			id TEXT PRIMARY KEY,
			board_id TEXT NOT NULL,
			teams TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_matches_board_id ON matches(board_id);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveBoard stores a board, replacing any stored board with the same ID.
func (s *Store) SaveBoard(b board.Board) error {
	body, err := b.EncodeYAML()
	if err != nil {
		return fmt.Errorf("storage: cannot encode board %s: %w", b.ID, err)
	}

	_, err = s.db.NamedExec(
		`INSERT INTO boards (id, name, cells, body, updated_at)
		 VALUES (:id, :name, :cells, :body, :updated_at)
		 ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			cells = excluded.cells,
			body = excluded.body,
			updated_at = excluded.updated_at`,
		boardRow{
			ID:        b.ID,
			Name:      b.Name,
			Cells:     len(b.Cells),
			Body:      string(body),
			UpdatedAt: time.Now().UnixNano(),
		},
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save board %s: %w", b.ID, err)
	}

	s.logger.Debug("board saved", "id", b.ID, "cells", len(b.Cells))
	return nil
}

// LoadBoard loads and validates a stored board.
func (s *Store) LoadBoard(id string) (board.Board, error) {
	var row boardRow
	err := s.db.Get(&row, "SELECT id, name, cells, body, updated_at FROM boards WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return board.Board{}, fmt.Errorf("storage: %w: %s", board.ErrBoardNotFound, id)
	}
	if err != nil {
		return board.Board{}, fmt.Errorf("storage: cannot query board %s: %w", id, err)
	}

	b, err := board.ParseYAML([]byte(row.Body))
	if err != nil {
		return board.Board{}, fmt.Errorf("storage: stored board %s is invalid: %w", id, err)
	}
	return b, nil
}

// ListBoards returns a summary of every stored board, ordered by ID.
func (s *Store) ListBoards() ([]BoardEntry, error) {
	var rows []boardRow
	if err := s.db.Select(&rows, "SELECT id, name, cells, updated_at FROM boards ORDER BY id"); err != nil {
		return nil, fmt.Errorf("storage: cannot query boards: %w", err)
	}

	entries := make([]BoardEntry, len(rows))
	for i, r := range rows {
		entries[i] = BoardEntry{
			ID:        r.ID,
			Name:      r.Name,
			Cells:     r.Cells,
			UpdatedAt: time.Unix(0, r.UpdatedAt).UTC(),
		}
	}
	return entries, nil
}

// DeleteBoard removes a stored board. Deleting a missing board is not an error.
func (s *Store) DeleteBoard(id string) error {
	if _, err := s.db.Exec("DELETE FROM boards WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete board %s: %w", id, err)
	}
	return nil
}

// SaveMatch records a match setup.
func (s *Store) SaveMatch(rec match.Record) error {
	teams, err := json.Marshal(rec.Teams)
	if err != nil {
		return fmt.Errorf("storage: cannot encode teams: %w", err)
	}

	_, err = s.db.NamedExec(
		`INSERT INTO matches (id, board_id, teams, created_at)
		 VALUES (:id, :board_id, :teams, :created_at)`,
		matchRow{
			ID:        rec.ID.String(),
			BoardID:   rec.BoardID,
			Teams:     string(teams),
			CreatedAt: rec.CreatedAt.UnixNano(),
		},
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save match %s: %w", rec.ID, err)
	}

	s.logger.Debug("match saved", "id", rec.ID, "board", rec.BoardID, "teams", len(rec.Teams))
	return nil
}

// LoadMatch retrieves a match setup by ID.
func (s *Store) LoadMatch(id uuid.UUID) (match.Record, error) {
	var row matchRow
	err := s.db.Get(&row, "SELECT id, board_id, teams, created_at FROM matches WHERE id = ?", id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return match.Record{}, fmt.Errorf("%w: %s", ErrMatchNotFound, id)
	}
	if err != nil {
		return match.Record{}, fmt.Errorf("storage: cannot query match %s: %w", id, err)
	}
	return row.record()
}

// ListMatches retrieves the most recent match setups, newest first.
// A limit of zero or less defaults to 10.
func (s *Store) ListMatches(limit int) ([]match.Record, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []matchRow
	err := s.db.Select(&rows,
		`SELECT id, board_id, teams, created_at
		 FROM matches
		 ORDER BY created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}

	records := make([]match.Record, 0, len(rows))
	for _, r := range rows {
		rec, err := r.record()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// MatchCount returns the number of stored matches for a board.
// An empty board ID counts every match.
func (s *Store) MatchCount(boardID string) (int, error) {
	var count int
	var err error
	if boardID == "" {
		err = s.db.Get(&count, "SELECT COUNT(*) FROM matches")
	} else {
		err = s.db.Get(&count, "SELECT COUNT(*) FROM matches WHERE board_id = ?", boardID)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count matches: %w", err)
	}
	return count, nil
}

func (r matchRow) record() (match.Record, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return match.Record{}, fmt.Errorf("storage: bad match id %q: %w", r.ID, err)
	}

	var teams []match.Team
	if err := json.Unmarshal([]byte(r.Teams), &teams); err != nil {
		return match.Record{}, fmt.Errorf("storage: cannot decode teams of match %s: %w", r.ID, err)
	}

	return match.Record{
		ID:        id,
		BoardID:   r.BoardID,
		Teams:     teams,
		CreatedAt: time.Unix(0, r.CreatedAt).UTC(),
	}, nil
}
