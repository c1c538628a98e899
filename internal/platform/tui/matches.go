package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/FlightPaperStudio/project-ocelot/internal/match"
)

// Match browser layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show board list sidebar
	sidebarWidth       = 20  // Width of board list sidebar
	maxMatches         = 100 // Max matches to load
)

// allBoards is the sidebar entry that shows every match.
const allBoards = "all boards"

// MatchLister lists stored match setups, newest first.
type MatchLister interface {
	ListMatches(limit int) ([]match.Record, error)
}

// MatchesModel is the Bubble Tea model for browsing stored match setups.
type MatchesModel struct {
	records     []match.Record
	boards      []string // Sidebar entries; the first is allBoards
	boardCursor int
	visible     []match.Record
	table       table.Model
	help        help.Model
	keys        MatchesKeyMap
	now         func() time.Time
	width       int
	height      int
	err         error
	quitting    bool
	showSidebar bool
}

// NewMatchesModel creates a match browser. A nil lister shows no matches.
func NewMatchesModel(lister MatchLister, width, height int) MatchesModel {
	m := MatchesModel{
		keys:        DefaultMatchesKeyMap(),
		help:        help.New(),
		now:         time.Now,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	if lister != nil {
		m.records, m.err = lister.ListMatches(maxMatches)
	}
	m.boards = boardIDs(m.records)

	m.table = m.createTable()
	m.filter()
	return m
}

// boardIDs returns allBoards followed by the distinct board IDs in records.
func boardIDs(records []match.Record) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, r := range records {
		if !seen[r.BoardID] {
			seen[r.BoardID] = true
			ids = append(ids, r.BoardID)
		}
	}
	sort.Strings(ids)
	return append([]string{allBoards}, ids...)
}

// createTable creates a new table with appropriate columns.
func (m *MatchesModel) createTable() table.Model {
	columns := MatchColumns(m.width)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// MatchColumns returns table columns sized for the given terminal width.
func MatchColumns(width int) []table.Column {
	columns := []table.Column{
		{Title: "Match", Width: 8},
		{Title: "Board", Width: 10},
		{Title: "Teams", Width: 34},
		{Title: "Created", Width: 16},
	}

	tableWidth := width - 4 // Margins
	if width >= minWidthForSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}
	if extra := tableWidth - 76; extra > 0 {
		columns[2].Width += min(extra, 30)
	}
	return columns
}

// MatchRows converts records to table rows. Times are relative to now.
func MatchRows(records []match.Record, now time.Time) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		teams := make([]string, len(r.Teams))
		for j, t := range r.Teams {
			teams[j] = fmt.Sprintf("%s %s", t.Name, t.Movement)
		}
		rows[i] = table.Row{
			shortID(r.ID.String()),
			r.BoardID,
			strings.Join(teams, ", "),
			humanize.RelTime(r.CreatedAt, now, "ago", "from now"),
		}
	}
	return rows
}

// filter shows the matches of the selected board.
func (m *MatchesModel) filter() {
	m.visible = nil
	selected := m.boards[m.boardCursor]
	for _, r := range m.records {
		if selected == allBoards || r.BoardID == selected {
			m.visible = append(m.visible, r)
		}
	}
	m.table.SetRows(MatchRows(m.visible, m.now()))
	m.table.GotoTop()
}

// Init initializes the match browser.
func (m MatchesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the match browser.
func (m MatchesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextBoard):
			m.boardCursor = (m.boardCursor + 1) % len(m.boards)
			m.filter()
			return m, nil

		case key.Matches(msg, m.keys.PrevBoard):
			m.boardCursor--
			if m.boardCursor < 0 {
				m.boardCursor = len(m.boards) - 1
			}
			m.filter()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.filter()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the match browser.
func (m MatchesModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	title := fmt.Sprintf("MATCHES - %s", m.boards[m.boardCursor])
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.tableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", tableRendered))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// sidebar renders the board list.
func (m MatchesModel) sidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var s strings.Builder
	s.WriteString("Boards\n")
	s.WriteString(strings.Repeat("-", sidebarWidth-4))
	s.WriteString("\n")

	for i, id := range m.boards {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.boardCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		maxLen := sidebarWidth - 6
		if len(id) > maxLen {
			id = id[:maxLen-1] + "."
		}
		s.WriteString(style.Render(cursor + id))
		s.WriteString("\n")
	}

	return sidebarStyle.Render(s.String())
}

// tableContent renders the table or an empty message.
func (m MatchesModel) tableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.err != nil {
		return emptyStyle.Render(fmt.Sprintf("Cannot load matches:\n%v", m.err))
	}
	if len(m.visible) == 0 {
		return emptyStyle.Render("No matches recorded yet.\nPress enter in the explorer to start one!")
	}
	return m.table.View()
}

// Visible returns the matches shown for the selected board.
func (m MatchesModel) Visible() []match.Record {
	return m.visible
}

// SelectedBoard returns the sidebar selection.
func (m MatchesModel) SelectedBoard() string {
	return m.boards[m.boardCursor]
}

// IsQuitting returns true if user wants to quit.
func (m MatchesModel) IsQuitting() bool {
	return m.quitting
}

// RunMatches runs the match browser.
func RunMatches(lister MatchLister, width, height int) error {
	p := tea.NewProgram(
		NewMatchesModel(lister, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
