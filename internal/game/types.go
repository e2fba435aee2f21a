package game

import (
	"github.com/google/uuid"
)

// TileTypeID identifies a tile type in the catalog.
type TileTypeID string

// TileType is a catalog entry. Two instances match iff their types share
// the same non-empty MatchGroup, or — when no group is set — iff they are
// the identical type.
type TileType struct {
	ID         TileTypeID `json:"id"`
	Name       string     `json:"name"`
	Glyph      string     `json:"glyph"`       // two-character label for rendering
	Color      int        `json:"color"`       // suit color index for the renderer
	MatchGroup string     `json:"match_group"` // empty: type matches only itself
}

// Position is a point in the 3D tile grid. Half-integer offsets are allowed
// so layouts can stagger tiles between rows and across layers.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// TileID is unique per board and monotonically assigned.
type TileID int

// Tile is a single placed tile instance. Type and Pos are fixed for the
// instance's lifetime; only Removed ever changes.
type Tile struct {
	ID      TileID     `json:"id"`
	Type    TileTypeID `json:"type"`
	Pos     Position   `json:"pos"`
	Removed bool       `json:"removed"`
}

// Board holds every tile instance for a layout, removed ones included
// (callers keep them around for undo bookkeeping). Solvable reports whether
// the board came out of the reverse-simulation path; a false value marks a
// degraded board with no clear-ability guarantee.
type Board struct {
	ID       uuid.UUID `json:"id"`
	Layout   Layout    `json:"layout"`
	Tiles    []Tile    `json:"tiles"`
	Solvable bool      `json:"solvable"`

	nextID TileID // next tile id to issue; shuffles continue the sequence
}

// ActiveTiles returns the still-present tiles in board order.
func (b *Board) ActiveTiles() []Tile {
	active := make([]Tile, 0, len(b.Tiles))
	for _, t := range b.Tiles {
		if !t.Removed {
			active = append(active, t)
		}
	}
	return active
}

// TileByID returns the tile with the given id, or nil.
func (b *Board) TileByID(id TileID) *Tile {
	for i := range b.Tiles {
		if b.Tiles[i].ID == id {
			return &b.Tiles[i]
		}
	}
	return nil
}

// GenConfig holds tunable parameters for board generation.
type GenConfig struct {
	Retries          int     `json:"retries"`           // full restarts before the degraded fallback
	SpreadTries      int     `json:"spread_tries"`      // random tries to find a well-separated pair
	MinSpread        float64 `json:"min_spread"`        // weighted distance a pair should exceed
	HorizontalWeight float64 `json:"horizontal_weight"` // weight on x/y distance
	LayerWeight      float64 `json:"layer_weight"`      // weight on z distance
}

// DefaultGenConfig returns the tuning used by the shipped game. The spread
// parameters are game-feel knobs; solvability does not depend on them.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Retries:          32,
		SpreadTries:      16,
		MinSpread:        5.0,
		HorizontalWeight: 1.0,
		LayerWeight:      0.5,
	}
}
