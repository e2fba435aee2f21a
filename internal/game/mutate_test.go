package game

import (
	"math/rand"
	"testing"
)

func TestRemovePairIsPure(t *testing.T) {
	tiles := []Tile{
		tileAt(0, "man1", 0, 0, 0),
		tileAt(1, "man1", 3, 0, 0),
		tileAt(2, "pin1", 6, 0, 0),
	}
	out := RemovePair(tiles, 0, 1)

	if !out[0].Removed || !out[1].Removed || out[2].Removed {
		t.Errorf("wrong removal flags: %v", out)
	}
	for i, tl := range tiles {
		if tl.Removed {
			t.Errorf("input slice mutated at %d", i)
		}
	}
}

func TestShufflePreservesActiveState(t *testing.T) {
	cat := StandardCatalog()
	layout := mustBuiltin(t, "turtle")
	rng := rand.New(rand.NewSource(4))
	b := GenerateBoard(cat, layout, DefaultGenConfig(), rng)

	// Play a couple of moves so the shuffle has removed tiles to carry.
	for i := 0; i < 3; i++ {
		m, ok := Hint(cat, b.Tiles)
		if !ok {
			t.Fatal("fresh board should have a move")
		}
		b.Tiles = RemovePair(b.Tiles, m.A, m.B)
	}

	oldActive := b.ActiveTiles()
	oldIDs := make(map[TileID]bool, len(oldActive))
	oldPositions := make(map[Position]bool, len(oldActive))
	for _, tl := range oldActive {
		oldIDs[tl.ID] = true
		oldPositions[tl.Pos] = true
	}
	oldCounts := typeCounts(b.Tiles)
	removedBefore := len(b.Tiles) - len(oldActive)

	nb := ShuffleBoard(cat, b, DefaultGenConfig(), rng)

	if !nb.Solvable {
		t.Fatal("shuffling a playable turtle board should re-place, not fall back")
	}

	newActive := nb.ActiveTiles()
	if len(newActive) != len(oldActive) {
		t.Fatalf("active count changed: %d -> %d", len(oldActive), len(newActive))
	}
	newCounts := typeCounts(nb.Tiles)
	for id, n := range oldCounts {
		if newCounts[id] != n {
			t.Errorf("type %s count changed: %d -> %d", id, n, newCounts[id])
		}
	}
	for _, tl := range newActive {
		if !oldPositions[tl.Pos] {
			t.Errorf("shuffle invented position (%g,%g,%g)", tl.Pos.X, tl.Pos.Y, tl.Pos.Z)
		}
		if oldIDs[tl.ID] {
			t.Errorf("tile id %d was not reissued", tl.ID)
		}
	}

	removedAfter := 0
	for _, tl := range nb.Tiles {
		if tl.Removed {
			removedAfter++
		}
	}
	if removedAfter != removedBefore {
		t.Errorf("removed tiles not carried through: %d -> %d", removedBefore, removedAfter)
	}
	if nb.ID != b.ID {
		t.Error("shuffle should keep the board identity")
	}
}

func TestShuffleDegradedFallback(t *testing.T) {
	cat := StandardCatalog()
	// Hand-built board whose active tiles form an unplaceable column.
	b := &Board{
		Layout: Layout{ID: "column"},
		Tiles: []Tile{
			tileAt(0, "man1", 0, 0, 0),
			tileAt(1, "man1", 0, 0, 1),
			tileAt(2, "pin1", 0, 0, 2),
			tileAt(3, "pin1", 0, 0, 3),
		},
		nextID: 4,
	}
	nb := ShuffleBoard(cat, b, DefaultGenConfig(), rand.New(rand.NewSource(5)))

	if nb.Solvable {
		t.Fatal("column shuffle cannot be solvable; expected the permutation fallback")
	}
	if len(nb.ActiveTiles()) != 4 {
		t.Fatalf("fallback must keep all active tiles, got %d", len(nb.ActiveTiles()))
	}
	counts := typeCounts(nb.Tiles)
	if counts["man1"] != 2 || counts["pin1"] != 2 {
		t.Errorf("fallback changed the type multiset: %v", counts)
	}
	for _, tl := range nb.ActiveTiles() {
		if tl.ID < 4 {
			t.Errorf("fallback must also reissue ids, found %d", tl.ID)
		}
	}
}
