package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/FlightPaperStudio/project-ocelot/internal/board"
)

// Style identifies how a canvas cell is colored.
type Style uint8

const (
	StyleDefault Style = iota
	StylePlains
	StyleForest
	StyleHill
	StyleWater
	StyleRock
	StyleCursor
	StyleRange
	StyleExcluded
	StyleNeighbor
	StyleMuted
)

// styles maps Style to lipgloss styles.
var styles = map[Style]lipgloss.Style{
	StyleDefault:  lipgloss.NewStyle(),
	StylePlains:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	StyleForest:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	StyleHill:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	StyleWater:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	StyleRock:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	StyleCursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("5")).Bold(true),
	StyleRange:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	StyleExcluded: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	StyleNeighbor: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	StyleMuted:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// TerrainStyle returns the style used for a terrain glyph.
func TerrainStyle(t board.Terrain) Style {
	switch t {
	case board.TerrainForest:
		return StyleForest
	case board.TerrainHill:
		return StyleHill
	case board.TerrainWater:
		return StyleWater
	case board.TerrainRock:
		return StyleRock
	default:
		return StylePlains
	}
}

// Styled converts a canvas to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func Styled(c *Canvas) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(c.Width()*c.Height()*2 + c.Height())

	for y := range c.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.Width() {
			start := c.Get(x, y).Style

			// Collect consecutive cells with same style
			var run strings.Builder
			for x < c.Width() {
				cell := c.Get(x, y)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[start]
			if !ok {
				style = styles[StyleDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
