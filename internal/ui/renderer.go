package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jaredfiacco2/mahjong-solitaire/internal/game"
)

// Color palette
var (
	// One foreground per suit/color index in the tile catalog.
	suitColors = []lipgloss.Color{
		lipgloss.Color("#ff8866"), // characters
		lipgloss.Color("#66aaff"), // circles
		lipgloss.Color("#66dd88"), // bamboo
		lipgloss.Color("#dddddd"), // winds
		lipgloss.Color("#ff5555"), // dragons
		lipgloss.Color("#ff88dd"), // flowers
		lipgloss.Color("#ffcc55"), // seasons
	}

	tileStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#2d2d44"))

	emptyStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#1a1a2e"))

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#555588")).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#886600")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#226644")).
			Bold(true)

	// HUD styles
	hudBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff8844")).
			Bold(true)

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff88")).
			Bold(true)

	stuckStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Bold(true)

	degradedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaa00"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))
)

// RenderFrame lays the board out next to the HUD.
func RenderFrame(m Model) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		renderBoard(m),
		"  ",
		renderHUD(m),
	) + "\n" + dimStyle.Render(m.status) + "\n"
}

// renderBoard draws the top-down projection: each cell shows the topmost
// active tile, two characters wide like a tile face.
func renderBoard(m Model) string {
	selectedID, hasSel := m.session.Selected()

	var rows []string
	for y := m.minY; y <= m.maxY; y++ {
		var cells []string
		for x := m.minX; x <= m.maxX; x++ {
			c := cell{X: x, Y: y}
			top := topTileAt(m.session.Board, c)
			cells = append(cells, renderCell(m, c, top, selectedID, hasSel))
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	return strings.Join(rows, "\n")
}

// renderCell picks the style for one projected cell.
// Priority: cursor > selection > hint > plain tile.
func renderCell(m Model, c cell, top *game.Tile, selectedID game.TileID, hasSel bool) string {
	if top == nil {
		label := "  "
		if m.cursor == c {
			return cursorStyle.Render(label)
		}
		return emptyStyle.Render(label)
	}

	tt, _ := m.session.Catalog.Type(top.Type)
	label := tt.Glyph
	if len(label) != 2 {
		label = "??"
	}

	fg := suitColors[tt.Color%len(suitColors)]
	switch {
	case m.cursor == c:
		return cursorStyle.Foreground(fg).Render(label)
	case hasSel && top.ID == selectedID:
		return selectedStyle.Foreground(fg).Render(label)
	case m.hint != nil && (top.ID == m.hint.A || top.ID == m.hint.B):
		return hintStyle.Foreground(fg).Render(label)
	default:
		return tileStyle.Foreground(fg).Render(label)
	}
}

// renderHUD shows game status, counters, and the key help.
func renderHUD(m Model) string {
	s := m.session

	var parts []string
	parts = append(parts, titleStyle.Render("🀄 MAHJONG SOLITAIRE"))
	parts = append(parts, dimStyle.Render(m.layout.Name+" layout"))
	parts = append(parts, "")

	switch {
	case s.Won():
		parts = append(parts, winStyle.Render("🏆 BOARD CLEARED!"))
	case s.Stuck():
		parts = append(parts, stuckStyle.Render("✗ NO MOVES LEFT"))
	default:
		parts = append(parts, fmt.Sprintf("Tiles left:   %d", s.TilesLeft()))
		parts = append(parts, fmt.Sprintf("Pairs open:   %d", s.MatchesLeft()))
	}

	parts = append(parts, "")
	parts = append(parts, fmt.Sprintf("Moves:    %d", s.Moves))
	parts = append(parts, fmt.Sprintf("Shuffles: %d", s.Shuffles))
	parts = append(parts, fmt.Sprintf("Hints:    %d", s.Hints))

	if !s.Board.Solvable {
		parts = append(parts, "")
		parts = append(parts, degradedStyle.Render("⚠ deal not guaranteed solvable"))
	}

	parts = append(parts, "")
	parts = append(parts, helpStyle.Render("arrows/wasd: move | enter: select"))
	parts = append(parts, helpStyle.Render("?: hint | u: undo | r: shuffle"))
	parts = append(parts, helpStyle.Render("n: new game | q: quit"))

	return hudBorderStyle.Render(strings.Join(parts, "\n"))
}
