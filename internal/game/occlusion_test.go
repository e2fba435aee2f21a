package game

import (
	"testing"
)

func tileAt(id int, typ string, x, y, z float64) Tile {
	return Tile{ID: TileID(id), Type: TileTypeID(typ), Pos: Position{X: x, Y: y, Z: z}}
}

func TestCoveredTileNotFree(t *testing.T) {
	tiles := []Tile{
		tileAt(0, "man1", 0, 0, 0),
		tileAt(1, "man1", 0, 0, 1),
	}
	if IsFree(tiles[0], tiles) {
		t.Error("tile directly under another should not be free")
	}
	if !IsFree(tiles[1], tiles) {
		t.Error("top tile should be free")
	}

	// Half-offset cover still counts as the same cell (|d| < 0.9).
	tiles[1].Pos = Position{X: 0.5, Y: 0.5, Z: 1}
	if IsFree(tiles[0], tiles) {
		t.Error("half-offset cover should still block the tile below")
	}

	// A removed cover never blocks.
	tiles[1].Removed = true
	if !IsFree(tiles[0], tiles) {
		t.Error("removed tile must not block")
	}
}

func TestSideBlocking(t *testing.T) {
	tiles := []Tile{
		tileAt(0, "man1", 0, 0, 0),
		tileAt(1, "man2", 1, 0, 0),
		tileAt(2, "man3", 2, 0, 0),
	}

	if !IsFree(tiles[0], tiles) {
		t.Error("left end of a row should be free")
	}
	if !IsFree(tiles[2], tiles) {
		t.Error("right end of a row should be free")
	}
	if IsFree(tiles[1], tiles) {
		t.Error("tile walled in on both sides should not be free")
	}

	// Freeing one neighbor can only make things freer.
	tiles[2].Removed = true
	if !IsFree(tiles[1], tiles) {
		t.Error("tile with one open side should be free")
	}
	if !IsFree(tiles[0], tiles) {
		t.Error("removing a tile must not un-free another")
	}
}

func TestNeighborOnDifferentLayerDoesNotBlock(t *testing.T) {
	tiles := []Tile{
		tileAt(0, "man1", 0, 0, 0),
		tileAt(1, "man2", 1, 0, 1), // adjacent x, but one layer up and not covering
		tileAt(2, "man3", -1, 0, 0),
	}
	// Tile 0 has a left neighbor at z=0 and something to the upper-right,
	// but the right side at its own layer is open.
	if !IsFree(tiles[0], tiles) {
		t.Error("side blocking only applies at the same z")
	}
}

func TestStaggeredRowBlocking(t *testing.T) {
	// The turtle head sits at y=3.5 and pins the leftmost tiles of both
	// middle rows: dy = 0.5 < 0.9, dx = 1.0 < 1.1.
	tiles := []Tile{
		tileAt(0, "man1", 0, 3.5, 0),
		tileAt(1, "man2", 1, 3, 0),
		tileAt(2, "man3", 2, 3, 0),
	}
	if IsFree(tiles[1], tiles) {
		t.Error("tile between a staggered head and a row neighbor should be blocked")
	}
	if !IsFree(tiles[0], tiles) {
		t.Error("staggered head has an open left side")
	}
}

func TestRemovedTileNeverFree(t *testing.T) {
	lone := tileAt(0, "man1", 0, 0, 0)
	lone.Removed = true
	if IsFree(lone, []Tile{lone}) {
		t.Error("a removed tile can never be free")
	}
}

// TestRowOfFourPlaysOut is the single-row scenario: the two end tiles are
// always free, the middle two are walled in until an end pair comes off.
func TestRowOfFourPlaysOut(t *testing.T) {
	cat := StandardCatalog()
	tiles := []Tile{
		tileAt(0, "man1", 0, 0, 0),
		tileAt(1, "pin1", 1, 0, 0),
		tileAt(2, "pin1", 2, 0, 0),
		tileAt(3, "man1", 3, 0, 0),
	}

	free := FreeTiles(tiles)
	if len(free) != 2 || free[0].ID != 0 || free[1].ID != 3 {
		t.Fatalf("expected exactly the end tiles free, got %v", free)
	}

	matches := FindAllMatches(cat, tiles)
	if len(matches) != 1 || matches[0] != (Match{A: 0, B: 3}) {
		t.Fatalf("expected the single end-pair match, got %v", matches)
	}

	tiles = RemovePair(tiles, 0, 3)
	matches = FindAllMatches(cat, tiles)
	if len(matches) != 1 || matches[0] != (Match{A: 1, B: 2}) {
		t.Fatalf("middle pair should be playable after the ends, got %v", matches)
	}

	tiles = RemovePair(tiles, 1, 2)
	if !CheckWin(tiles) {
		t.Fatal("board should be cleared")
	}
	if CheckStuck(cat, tiles) {
		t.Error("a won board is not stuck")
	}
}
