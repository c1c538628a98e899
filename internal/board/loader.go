package board

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/FlightPaperStudio/project-ocelot/internal/board/formats"
	"github.com/FlightPaperStudio/project-ocelot/internal/logging"
)

// ErrBoardNotFound is returned when no board has the requested ID.
var ErrBoardNotFound = errors.New("board: not found")

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Loader handles loading boards from a directory plus the built-in set.
type Loader struct {
	Root   string // Empty means built-in boards only
	logger *log.Logger
}

// NewLoader creates a new board loader. A nil logger discards output.
func NewLoader(root string, logger *log.Logger) *Loader {
	return &Loader{Root: root, logger: logging.OrDiscard(logger)}
}

// Builtin returns the boards compiled into the binary, sorted by ID.
func Builtin() ([]Board, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, fmt.Errorf("board: reading built-in boards: %w", err)
	}

	boards := make([]Board, 0, len(entries))
	for _, e := range entries {
		name := path.Join("builtin", e.Name())
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("board: reading %s: %w", name, err)
		}
		b, err := parse(data, path.Ext(name))
		if err != nil {
			return nil, fmt.Errorf("board: built-in %s: %w", name, err)
		}
		boards = append(boards, b)
	}

	sortBoards(boards)
	return boards, nil
}

// LoadAll loads the built-in boards and every board file under Root.
// Invalid files are logged and skipped. A file board replaces a built-in
// board with the same ID. Returns boards sorted by ID.
func (l *Loader) LoadAll() ([]Board, error) {
	builtin, err := Builtin()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]Board, len(builtin))
	for _, b := range builtin {
		byID[b.ID] = b
	}

	if l.Root != "" {
		err := filepath.WalkDir(l.Root, func(p string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(p))) {
				return nil
			}

			b, err := l.LoadFile(p)
			if err != nil {
				l.logger.Warn("skipping board file", "path", p, "error", err)
				return nil
			}
			if _, exists := byID[b.ID]; exists {
				l.logger.Debug("board overrides existing definition", "id", b.ID, "path", p)
			}
			byID[b.ID] = b
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
		}
	}

	boards := make([]Board, 0, len(byID))
	for _, b := range byID {
		boards = append(boards, b)
	}
	sortBoards(boards)

	l.logger.Debug("boards loaded", "count", len(boards), "root", l.Root)
	return boards, nil
}

// LoadFile loads and validates a single board file.
func (l *Loader) LoadFile(p string) (Board, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Board{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	b, err := parse(data, strings.ToLower(filepath.Ext(p)))
	if err != nil {
		return Board{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	b.FilePath = p

	l.logger.Debug("board file loaded", "id", b.ID, "cells", len(b.Cells), "path", p)
	return b, nil
}

// LoadByID loads a specific board by ID.
func (l *Loader) LoadByID(id string) (Board, error) {
	boards, err := l.LoadAll()
	if err != nil {
		return Board{}, err
	}

	for _, b := range boards {
		if b.ID == id {
			return b, nil
		}
	}

	return Board{}, fmt.Errorf("%w: %s", ErrBoardNotFound, id)
}

// ListIDs returns all board IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	boards, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(boards))
	for i, b := range boards {
		ids[i] = b.ID
	}
	return ids, nil
}

// ParseYAML parses and validates a board from YAML bytes.
func ParseYAML(data []byte) (Board, error) {
	return parse(data, ".yaml")
}

// parse routes to the correct format parser, converts and validates.
func parse(data []byte, ext string) (Board, error) {
	var parsed formats.Board
	var err error

	switch ext {
	case ".yaml", ".yml":
		parsed, err = formats.ParseYAML(data)
	default:
		return Board{}, fmt.Errorf("unsupported extension: %s", ext)
	}
	if err != nil {
		return Board{}, err
	}

	b, err := fromFormat(parsed)
	if err != nil {
		return Board{}, err
	}
	if err := Validate(&b); err != nil {
		return Board{}, err
	}
	return b, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func sortBoards(boards []Board) {
	sort.Slice(boards, func(i, j int) bool {
		return boards[i].ID < boards[j].ID
	})
}
