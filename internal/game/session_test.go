package game

import (
	"math/rand"
	"testing"
)

func newTestSession(t *testing.T, seed int64) *Session {
	t.Helper()
	layout := mustBuiltin(t, "turtle")
	s := NewSession(layout, DefaultGenConfig(), rand.New(rand.NewSource(seed)))
	if !s.Board.Solvable {
		t.Fatalf("seed %d: expected a solvable board", seed)
	}
	return s
}

func TestSessionSelectFlow(t *testing.T) {
	s := newTestSession(t, 6)

	hint, ok := s.Hint()
	if !ok {
		t.Fatal("fresh board must offer a hint")
	}

	if res := s.Select(hint.A); res != SelectPicked {
		t.Fatalf("selecting a free tile: got %v, want SelectPicked", res)
	}
	if id, has := s.Selected(); !has || id != hint.A {
		t.Fatalf("selection not tracked, got %d/%v", id, has)
	}

	if res := s.Select(hint.A); res != SelectCleared {
		t.Fatalf("re-selecting the same tile: got %v, want SelectCleared", res)
	}

	before := s.TilesLeft()
	s.Select(hint.A)
	if res := s.Select(hint.B); res != SelectMatched {
		t.Fatalf("completing the hint pair: got %v, want SelectMatched", res)
	}
	if s.TilesLeft() != before-2 {
		t.Errorf("match should remove two tiles: %d -> %d", before, s.TilesLeft())
	}
	if s.Moves != 1 {
		t.Errorf("moves = %d, want 1", s.Moves)
	}
}

func TestSessionSelectBlockedTileIgnored(t *testing.T) {
	s := newTestSession(t, 7)

	var blocked *Tile
	for i := range s.Board.Tiles {
		if !IsFree(s.Board.Tiles[i], s.Board.Tiles) {
			blocked = &s.Board.Tiles[i]
			break
		}
	}
	if blocked == nil {
		t.Fatal("a full turtle board always has blocked tiles")
	}
	if res := s.Select(blocked.ID); res != SelectIgnored {
		t.Errorf("selecting a blocked tile: got %v, want SelectIgnored", res)
	}
	if res := s.Select(TileID(99999)); res != SelectIgnored {
		t.Errorf("selecting an unknown id: got %v, want SelectIgnored", res)
	}
}

func TestSessionMismatchMovesSelection(t *testing.T) {
	s := newTestSession(t, 8)

	// Find two free tiles that do not match.
	free := FreeTiles(s.Board.Tiles)
	var a, b *Tile
	for i := range free {
		for j := i + 1; j < len(free); j++ {
			if !s.Catalog.Matches(free[i].Type, free[j].Type) {
				a, b = &free[i], &free[j]
				break
			}
		}
		if a != nil {
			break
		}
	}
	if a == nil {
		t.Skip("no mismatching free pair on this board")
	}

	s.Select(a.ID)
	if res := s.Select(b.ID); res != SelectNoMatch {
		t.Fatalf("mismatching pair: got %v, want SelectNoMatch", res)
	}
	if id, has := s.Selected(); !has || id != b.ID {
		t.Errorf("selection should move to the new tile, got %d/%v", id, has)
	}
}

func TestSessionUndoRestoresPair(t *testing.T) {
	s := newTestSession(t, 9)

	if s.Undo() {
		t.Error("undo with no history must report false")
	}

	hint, _ := s.Hint()
	s.Select(hint.A)
	s.Select(hint.B)
	before := s.TilesLeft()

	if !s.Undo() {
		t.Fatal("undo after a match must succeed")
	}
	if s.TilesLeft() != before+2 {
		t.Errorf("undo should restore both tiles: %d -> %d", before, s.TilesLeft())
	}
	if s.Moves != 0 {
		t.Errorf("moves = %d, want 0 after undo", s.Moves)
	}
	for _, id := range []TileID{hint.A, hint.B} {
		if tl := s.Board.TileByID(id); tl == nil || tl.Removed {
			t.Errorf("tile %d not restored", id)
		}
	}
}

func TestSessionShuffleClearsHistory(t *testing.T) {
	s := newTestSession(t, 10)

	hint, _ := s.Hint()
	s.Select(hint.A)
	s.Select(hint.B)

	s.Shuffle()
	if s.Shuffles != 1 {
		t.Errorf("shuffles = %d, want 1", s.Shuffles)
	}
	if s.Undo() {
		t.Error("undo must not cross a shuffle: the old ids are retired")
	}
	if s.Stuck() {
		t.Error("a reshuffled solvable board should not be stuck")
	}
}
