package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/FlightPaperStudio/project-ocelot/internal/hex"
)

// ExplorerKeyMap defines the key bindings for the board explorer.
type ExplorerKeyMap struct {
	North        key.Binding
	Northeast    key.Binding
	Southeast    key.Binding
	South        key.Binding
	Southwest    key.Binding
	Northwest    key.Binding
	RadiusUp     key.Binding
	RadiusDown   key.Binding
	NextMovement key.Binding
	PrevMovement key.Binding
	Mode         key.Binding
	Shape        key.Binding
	NextBoard    key.Binding
	PrevBoard    key.Binding
	StartMatch   key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ExplorerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.RadiusUp, k.RadiusDown, k.NextMovement, k.Mode, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ExplorerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.North, k.Northeast, k.Southeast, k.South, k.Southwest, k.Northwest},
		{k.RadiusUp, k.RadiusDown, k.NextMovement, k.PrevMovement},
		{k.Mode, k.Shape, k.NextBoard, k.PrevBoard},
		{k.StartMatch, k.Help, k.Quit},
	}
}

// Direction returns the hex direction bound to the pressed binding.
func (k ExplorerKeyMap) Direction(msg fmt.Stringer) (hex.Direction, bool) {
	bindings := [6]key.Binding{k.North, k.Northeast, k.Southeast, k.South, k.Southwest, k.Northwest}
	for i, b := range bindings {
		if key.Matches(msg, b) {
			return hex.Directions[i], true
		}
	}
	return 0, false
}

// DefaultExplorerKeyMap returns default key bindings.
// The direction keys form a hex around s: q w e above, a s d below.
func DefaultExplorerKeyMap() ExplorerKeyMap {
	return ExplorerKeyMap{
		North: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/up", "north"),
		),
		Northeast: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "northeast"),
		),
		Southeast: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "southeast"),
		),
		South: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/down", "south"),
		),
		Southwest: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "southwest"),
		),
		Northwest: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "northwest"),
		),
		RadiusUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "radius up"),
		),
		RadiusDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "radius down"),
		),
		NextMovement: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next movement"),
		),
		PrevMovement: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev movement"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "query mode"),
		),
		Shape: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "range shape"),
		),
		NextBoard: key.NewBinding(
			key.WithKeys("]", "n"),
			key.WithHelp("]/n", "next board"),
		),
		PrevBoard: key.NewBinding(
			key.WithKeys("[", "p"),
			key.WithHelp("[/p", "prev board"),
		),
		StartMatch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start match"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// MatchesKeyMap defines the key bindings for the match browser.
type MatchesKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextBoard key.Binding
	PrevBoard key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MatchesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextBoard, k.PrevBoard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MatchesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextBoard, k.PrevBoard},
		{k.Quit},
	}
}

// DefaultMatchesKeyMap returns default key bindings.
func DefaultMatchesKeyMap() MatchesKeyMap {
	return MatchesKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextBoard: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next board"),
		),
		PrevBoard: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev board"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
