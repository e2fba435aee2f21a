package game

import (
	"fmt"
	"sort"
)

// Layout size tolerance. The classic boards hold 144 tiles; a few shapes
// drop up to four positions to stay centered.
const (
	MinLayoutSize = 140
	MaxLayoutSize = 144
)

// Layout is an identifier plus a fixed, ordered list of tile positions.
// The engine treats the positions as opaque exogenous data.
type Layout struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Positions []Position `json:"positions"`
}

// NewLayout validates a layout at registration time so generation never has
// to deal with a malformed one. The position count must sit in the size
// tolerance and be even, or no pairing of the tile multiset exists.
func NewLayout(id, name string, positions []Position) (Layout, error) {
	n := len(positions)
	if n < MinLayoutSize || n > MaxLayoutSize {
		return Layout{}, fmt.Errorf("layout %s: %d positions, want %d-%d", id, n, MinLayoutSize, MaxLayoutSize)
	}
	if n%2 != 0 {
		return Layout{}, fmt.Errorf("layout %s: odd position count %d cannot hold pairs", id, n)
	}
	seen := make(map[Position]bool, n)
	for _, p := range positions {
		if seen[p] {
			return Layout{}, fmt.Errorf("layout %s: duplicate position (%g,%g,%g)", id, p.X, p.Y, p.Z)
		}
		seen[p] = true
	}
	return Layout{ID: id, Name: name, Positions: positions}, nil
}

var layouts = map[string]Layout{}

// RegisterLayout adds a validated layout to the registry.
func RegisterLayout(l Layout) error {
	if _, exists := layouts[l.ID]; exists {
		return fmt.Errorf("layout %s already registered", l.ID)
	}
	layouts[l.ID] = l
	return nil
}

// LayoutByID looks up a registered layout.
func LayoutByID(id string) (Layout, bool) {
	l, ok := layouts[id]
	return l, ok
}

// LayoutIDs returns the registered layout ids, sorted.
func LayoutIDs() []string {
	ids := make([]string, 0, len(layouts))
	for id := range layouts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func mustLayout(id, name string, positions []Position) Layout {
	l, err := NewLayout(id, name, positions)
	if err != nil {
		panic(err)
	}
	return l
}

func init() {
	for _, l := range []Layout{
		mustLayout("turtle", "Turtle", turtlePositions()),
		mustLayout("fortress", "Fortress", fortressPositions()),
	} {
		if err := RegisterLayout(l); err != nil {
			panic(err)
		}
	}
}
