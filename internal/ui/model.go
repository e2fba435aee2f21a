package ui

import (
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jaredfiacco2/mahjong-solitaire/internal/game"
)

// cell is an integer grid coordinate in the board's top-down projection.
// Staggered tiles round to the nearest cell.
type cell struct {
	X, Y int
}

// cellOf projects a tile position onto the render grid.
func cellOf(p game.Position) cell {
	return cell{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// Model is the Bubbletea model for the solitaire client.
type Model struct {
	session *game.Session
	layout  game.Layout
	keys    KeyMap

	cursor                 cell
	minX, maxX, minY, maxY int

	hint     *game.Match
	status   string
	quitting bool
}

// NewModel wraps a running session in a TUI model.
func NewModel(session *game.Session) Model {
	m := Model{
		session: session,
		layout:  session.Board.Layout,
		keys:    Keys,
	}
	m.minX, m.maxX, m.minY, m.maxY = gridBounds(m.layout)
	m.cursor = cell{X: (m.minX + m.maxX) / 2, Y: m.maxY}
	if !session.Board.Solvable {
		m.status = "Heads up: this deal carries no solvability guarantee."
	}
	return m
}

func gridBounds(layout game.Layout) (minX, maxX, minY, maxY int) {
	minX, minY = math.MaxInt32, math.MaxInt32
	maxX, maxY = math.MinInt32, math.MinInt32
	for _, p := range layout.Positions {
		c := cellOf(p)
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	return minX, maxX, minY, maxY
}

// topTileAt returns the highest active tile whose position projects onto
// the given cell, or nil.
func topTileAt(b *game.Board, c cell) *game.Tile {
	var top *game.Tile
	for i := range b.Tiles {
		t := &b.Tiles[i]
		if t.Removed || cellOf(t.Pos) != c {
			continue
		}
		if top == nil || t.Pos.Z > top.Pos.Z {
			top = t
		}
	}
	return top
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		m.cursor.Y = max(m.cursor.Y-1, m.minY)
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor.Y = min(m.cursor.Y+1, m.maxY)
	case key.Matches(keyMsg, m.keys.Left):
		m.cursor.X = max(m.cursor.X-1, m.minX)
	case key.Matches(keyMsg, m.keys.Right):
		m.cursor.X = min(m.cursor.X+1, m.maxX)

	case key.Matches(keyMsg, m.keys.Select):
		m.handleSelect()

	case key.Matches(keyMsg, m.keys.Hint):
		if hint, ok := m.session.Hint(); ok {
			m.hint = &hint
			m.status = "Hint highlighted."
		} else {
			m.status = "No moves available."
		}

	case key.Matches(keyMsg, m.keys.Undo):
		m.hint = nil
		if m.session.Undo() {
			m.status = "Move undone."
		} else {
			m.status = "Nothing to undo."
		}

	case key.Matches(keyMsg, m.keys.Shuffle):
		m.hint = nil
		m.session.Shuffle()
		if m.session.Board.Solvable {
			m.status = "Tiles reshuffled."
		} else {
			m.status = "Tiles reshuffled (no solvability guarantee)."
		}

	case key.Matches(keyMsg, m.keys.New):
		m.hint = nil
		m.session.NewGame(m.layout)
		m.status = "New board dealt."
		if !m.session.Board.Solvable {
			m.status = "New board dealt (no solvability guarantee)."
		}
	}

	return m, nil
}

// handleSelect resolves the tile under the cursor and feeds it to the
// session, translating the result into a status message.
func (m *Model) handleSelect() {
	m.hint = nil
	t := topTileAt(m.session.Board, m.cursor)
	if t == nil {
		m.status = "No tile here."
		return
	}

	switch m.session.Select(t.ID) {
	case game.SelectIgnored:
		m.status = "That tile is blocked."
	case game.SelectPicked:
		m.status = "Tile selected — pick its match."
	case game.SelectCleared:
		m.status = "Selection cleared."
	case game.SelectNoMatch:
		m.status = "Types don't match; selection moved."
	case game.SelectMatched:
		switch {
		case m.session.Won():
			m.status = "Board cleared — you win!"
		case m.session.Stuck():
			m.status = "No moves left: shuffle (r) or undo (u)."
		default:
			m.status = "Pair removed."
		}
	}
}

// View renders the board and HUD side by side.
func (m Model) View() string {
	if m.quitting {
		return "Thanks for playing!\n"
	}
	return RenderFrame(m)
}
