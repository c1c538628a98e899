// Package tui provides the Bubble Tea board explorer, the match browser and
// SSH server support via Wish.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/FlightPaperStudio/project-ocelot/internal/board"
	"github.com/FlightPaperStudio/project-ocelot/internal/grid"
	"github.com/FlightPaperStudio/project-ocelot/internal/hex"
	"github.com/FlightPaperStudio/project-ocelot/internal/logging"
	"github.com/FlightPaperStudio/project-ocelot/internal/match"
	"github.com/FlightPaperStudio/project-ocelot/internal/render"
)

// MaxRadius is the largest radius the explorer lets the user select.
const MaxRadius = 9

// ErrNoBoards is returned when the explorer is started without boards.
var ErrNoBoards = errors.New("tui: no boards to explore")

// ErrUnknownMode is returned for a mode name that is not recognised.
var ErrUnknownMode = errors.New("tui: unknown mode")

// Mode selects which query the explorer highlights.
type Mode uint8

const (
	// ModeMovement shows RangeExcludingBackward, with the dropped cells marked.
	ModeMovement Mode = iota
	// ModeRange shows the full Range.
	ModeRange
	// ModeNeighbors shows adjacent cells and diagonals.
	ModeNeighbors
)

func (m Mode) String() string {
	switch m {
	case ModeMovement:
		return "movement"
	case ModeRange:
		return "range"
	case ModeNeighbors:
		return "neighbors"
	default:
		return "unknown"
	}
}

// ParseMode parses "movement", "range" or "neighbors".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movement", "move":
		return ModeMovement, nil
	case "range":
		return ModeRange, nil
	case "neighbors", "neighbours":
		return ModeNeighbors, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// MatchSaver persists match setups started from the explorer.
type MatchSaver interface {
	SaveMatch(rec match.Record) error
}

// ExplorerOptions configures a new explorer.
type ExplorerOptions struct {
	BoardID  string // Empty selects the first board
	Radius   int
	Movement hex.Movement
	Shape    grid.RangeShape
	Teams    []match.Team
	Matches  MatchSaver // Optional
	Logger   *log.Logger
	Width    int
	Height   int
}

// ExplorerModel is the Bubble Tea model for exploring spatial queries on a
// board: a cursor, a radius, a movement orientation and a query mode.
type ExplorerModel struct {
	boards   []board.Board
	boardIdx int
	engine   *grid.Engine[board.Tile]
	cursor   hex.Axial
	radius   int
	movement hex.Movement
	shape    grid.RangeShape
	mode     Mode
	teams    []match.Team
	matches  MatchSaver
	logger   *log.Logger
	keys     ExplorerKeyMap
	help     help.Model
	width    int
	height   int
	status   string
	quitting bool
}

// NewExplorer creates an explorer over boards.
func NewExplorer(boards []board.Board, opts ExplorerOptions) (ExplorerModel, error) {
	if len(boards) == 0 {
		return ExplorerModel{}, ErrNoBoards
	}

	m := ExplorerModel{
		boards:   boards,
		radius:   clampRadius(opts.Radius),
		movement: opts.Movement,
		shape:    opts.Shape,
		teams:    opts.Teams,
		matches:  opts.Matches,
		logger:   logging.OrDiscard(opts.Logger),
		keys:     DefaultExplorerKeyMap(),
		help:     help.New(),
		width:    opts.Width,
		height:   opts.Height,
	}
	m.help.Width = opts.Width

	idx := 0
	if opts.BoardID != "" {
		idx = -1
		for i, b := range boards {
			if b.ID == opts.BoardID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ExplorerModel{}, fmt.Errorf("%w: %s", board.ErrBoardNotFound, opts.BoardID)
		}
	}

	if err := m.selectBoard(idx); err != nil {
		return ExplorerModel{}, err
	}
	return m, nil
}

// selectBoard switches to boards[i] and rebuilds the engine.
func (m *ExplorerModel) selectBoard(i int) error {
	b := m.boards[i]
	engine, err := b.Engine(grid.WithRangeShape(m.shape))
	if err != nil {
		return err
	}

	m.boardIdx = i
	m.engine = engine
	m.cursor = startCell(engine.Index())
	m.logger.Debug("explorer board selected", "id", b.ID, "cells", engine.Index().Len())
	return nil
}

// startCell returns the origin if present, otherwise the first cell.
func startCell(idx *grid.Index[board.Tile]) hex.Axial {
	if idx.Contains(hex.A(0, 0)) {
		return hex.A(0, 0)
	}
	return idx.Cells()[0].Coord()
}

func clampRadius(r int) int {
	return min(max(r, 0), MaxRadius)
}

// Init initializes the explorer.
func (m ExplorerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the explorer.
func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m ExplorerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if d, ok := m.keys.Direction(msg); ok {
		m.move(d)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.RadiusUp):
		m.radius = clampRadius(m.radius + 1)

	case key.Matches(msg, m.keys.RadiusDown):
		m.radius = clampRadius(m.radius - 1)

	case key.Matches(msg, m.keys.NextMovement):
		m.movement = hex.Movements[(int(m.movement)+1)%len(hex.Movements)]

	case key.Matches(msg, m.keys.PrevMovement):
		m.movement = hex.Movements[(int(m.movement)+len(hex.Movements)-1)%len(hex.Movements)]

	case key.Matches(msg, m.keys.Mode):
		m.mode = (m.mode + 1) % 3

	case key.Matches(msg, m.keys.Shape):
		if m.shape == grid.ShapeHex {
			m.shape = grid.ShapeRectangle
		} else {
			m.shape = grid.ShapeHex
		}
		m.engine = grid.NewEngine(m.engine.Index(), grid.WithRangeShape(m.shape))

	case key.Matches(msg, m.keys.NextBoard):
		m.switchBoard(1)

	case key.Matches(msg, m.keys.PrevBoard):
		m.switchBoard(-1)

	case key.Matches(msg, m.keys.StartMatch):
		m.startMatch()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// move steps the cursor one cell in d. It stays put at the board edge.
func (m *ExplorerModel) move(d hex.Direction) {
	center, _ := m.engine.Resolve(m.cursor)
	if next, ok := m.engine.Neighbor(center, d); ok {
		m.cursor = next.Coord()
		m.status = ""
		return
	}
	m.status = fmt.Sprintf("edge of board to the %s", d)
}

func (m *ExplorerModel) switchBoard(step int) {
	n := len(m.boards)
	next := ((m.boardIdx+step)%n + n) % n
	if err := m.selectBoard(next); err != nil {
		m.status = err.Error()
		m.logger.Warn("cannot select board", "id", m.boards[next].ID, "error", err)
		return
	}
	m.status = ""
}

func (m *ExplorerModel) startMatch() {
	if len(m.teams) == 0 {
		m.status = "no teams configured"
		return
	}

	mt, err := match.New(m.Board(), m.teams, grid.WithRangeShape(m.shape))
	if err != nil {
		m.status = err.Error()
		return
	}

	if m.matches != nil {
		if err := m.matches.SaveMatch(mt.Record()); err != nil {
			m.status = fmt.Sprintf("match not saved: %v", err)
			m.logger.Error("cannot save match", "id", mt.ID(), "error", err)
			return
		}
	}

	m.logger.Info("match started", "id", mt.ID(), "board", m.Board().ID, "teams", len(m.teams))
	m.status = fmt.Sprintf("match %s started on %s", shortID(mt.ID().String()), m.Board().ID)
}

// Highlights computes the cells to highlight for the current state.
func (m ExplorerModel) Highlights() (render.Highlights, error) {
	return QueryHighlights(m.engine, m.cursor, m.mode, m.radius, m.movement)
}

// QueryHighlights marks the result of a mode's query around from. The
// center cell is always marked as the cursor.
func QueryHighlights(e *grid.Engine[board.Tile], from hex.Axial, mode Mode, radius int, movement hex.Movement) (render.Highlights, error) {
	center, ok := e.Resolve(from)
	if !ok {
		return nil, fmt.Errorf("cursor %v is not on the board", from)
	}

	h := render.Highlights{}
	switch mode {
	case ModeMovement:
		all, err := e.Range(center, radius)
		if err != nil {
			return nil, err
		}
		h.Mark(render.KindExcluded, all...)

		forward, err := e.RangeExcludingBackward(center, radius, movement)
		if err != nil {
			return nil, err
		}
		h.Mark(render.KindRange, forward...)

	case ModeRange:
		cells, err := e.Range(center, radius)
		if err != nil {
			return nil, err
		}
		h.Mark(render.KindRange, cells...)

	case ModeNeighbors:
		for _, d := range hex.Directions {
			if c, ok := e.Diagonal(center, d, d.Next()); ok {
				h.Mark(render.KindRange, c)
			}
		}
		h.Mark(render.KindNeighbor, e.Neighbors(center)...)

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}

	h.Mark(render.KindCursor, center)
	return h, nil
}

// View renders the explorer.
func (m ExplorerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	bd := m.Board()
	b.WriteString(titleStyle.Render(fmt.Sprintf("OCELOT  %s (%s)", bd.Name, bd.ID)))
	b.WriteString("\n\n")

	h, err := m.Highlights()
	if err != nil {
		return err.Error()
	}
	boardView := render.Board(m.engine.Index(), render.Options{Highlights: h, Color: true})

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		boardView, "   ", panelStyle.Render(m.infoPanel(h))))
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Render(m.status))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// infoPanel describes the cursor cell and the active query.
func (m ExplorerModel) infoPanel(h render.Highlights) string {
	cell, _ := m.engine.Resolve(m.cursor)
	back1, back2 := m.engine.BackDirections(m.movement)

	counts := make(map[render.Kind]int)
	for _, k := range h {
		counts[k]++
	}

	lines := []string{
		fmt.Sprintf("Cursor   %v", m.cursor),
		fmt.Sprintf("Cube     %v", cell.Cube()),
		fmt.Sprintf("Terrain  %s", cell.Value.Terrain),
	}
	if cell.Value.Label != "" {
		lines = append(lines, fmt.Sprintf("Label    %s", cell.Value.Label))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Mode     %s", m.mode),
		fmt.Sprintf("Radius   %d", m.radius),
		fmt.Sprintf("Shape    %s", m.shape),
		fmt.Sprintf("Movement %s", m.movement),
		fmt.Sprintf("Behind   %s, %s", back1, back2),
		"",
		fmt.Sprintf("In range %d", counts[render.KindRange]),
	)
	switch m.mode {
	case ModeMovement:
		lines = append(lines, fmt.Sprintf("Behind   %d", counts[render.KindExcluded]))
	case ModeNeighbors:
		lines = append(lines, fmt.Sprintf("Adjacent %d", counts[render.KindNeighbor]))
	}

	return strings.Join(lines, "\n")
}

// Board returns the board being explored.
func (m ExplorerModel) Board() board.Board { return m.boards[m.boardIdx] }

// Cursor returns the coordinate under the cursor.
func (m ExplorerModel) Cursor() hex.Axial { return m.cursor }

// Radius returns the query radius.
func (m ExplorerModel) Radius() int { return m.radius }

// Movement returns the selected movement orientation.
func (m ExplorerModel) Movement() hex.Movement { return m.movement }

// Shape returns the range shape in use.
func (m ExplorerModel) Shape() grid.RangeShape { return m.shape }

// Mode returns the query mode.
func (m ExplorerModel) Mode() Mode { return m.mode }

// Status returns the last status message.
func (m ExplorerModel) Status() string { return m.status }

// IsQuitting returns true if user wants to quit.
func (m ExplorerModel) IsQuitting() bool { return m.quitting }

// RunExplorer runs the explorer in the current terminal.
func RunExplorer(boards []board.Board, opts ExplorerOptions) error {
	model, err := NewExplorer(boards, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
