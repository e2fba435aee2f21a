package game

import (
	"math/rand"
)

// SelectResult tells the caller what a Select call did.
type SelectResult int

const (
	SelectIgnored SelectResult = iota // no such tile, removed, or not free
	SelectPicked                      // tile became the current selection
	SelectCleared                     // same tile picked twice, selection dropped
	SelectMatched                     // pair matched and removed
	SelectNoMatch                     // free tile picked but types differ; selection moved
)

// Session owns one board and serializes all moves on it. Selection
// legality, undo history, and shuffle/hint bookkeeping live here; the
// engine primitives below it stay pure.
type Session struct {
	Catalog *Catalog
	Board   *Board

	cfg GenConfig
	rng *rand.Rand

	selected TileID
	hasSel   bool
	history  []Match // removal order, newest last
	Moves    int
	Shuffles int
	Hints    int
}

// NewSession generates a fresh board for the layout and wraps it in a
// session. The random source drives both generation and later shuffles.
func NewSession(layout Layout, cfg GenConfig, rng *rand.Rand) *Session {
	s := &Session{
		Catalog: StandardCatalog(),
		cfg:     cfg,
		rng:     rng,
	}
	s.NewGame(layout)
	return s
}

// NewGame deals a new board on the session's layout, dropping all history.
func (s *Session) NewGame(layout Layout) {
	s.Board = GenerateBoard(s.Catalog, layout, s.cfg, s.rng)
	s.history = nil
	s.hasSel = false
	s.Moves = 0
	s.Shuffles = 0
	s.Hints = 0
}

// Selected returns the currently selected tile id, if any.
func (s *Session) Selected() (TileID, bool) {
	return s.selected, s.hasSel
}

// Select handles a click on a tile. Only free tiles are selectable; a
// second free tile either completes a match or steals the selection.
func (s *Session) Select(id TileID) SelectResult {
	t := s.Board.TileByID(id)
	if t == nil || !IsFree(*t, s.Board.Tiles) {
		return SelectIgnored
	}

	if !s.hasSel {
		s.selected = id
		s.hasSel = true
		return SelectPicked
	}
	if s.selected == id {
		s.hasSel = false
		return SelectCleared
	}

	prev := s.Board.TileByID(s.selected)
	if prev != nil && s.Catalog.Matches(prev.Type, t.Type) {
		s.Board.Tiles = RemovePair(s.Board.Tiles, prev.ID, t.ID)
		s.history = append(s.history, Match{A: prev.ID, B: t.ID})
		s.Moves++
		s.hasSel = false
		return SelectMatched
	}

	s.selected = id
	return SelectNoMatch
}

// Undo restores the most recently removed pair. This is deliberate history
// manipulation from outside the engine core: the pairing invariant may be
// odd against the hint until the caller plays the pair again.
func (s *Session) Undo() bool {
	if len(s.history) == 0 {
		return false
	}
	m := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	for _, id := range []TileID{m.A, m.B} {
		if t := s.Board.TileByID(id); t != nil {
			t.Removed = false
		}
	}
	s.Moves--
	s.hasSel = false
	return true
}

// Shuffle re-deals the remaining tiles.
func (s *Session) Shuffle() {
	s.Board = ShuffleBoard(s.Catalog, s.Board, s.cfg, s.rng)
	s.history = nil // old ids are retired, the undo stack no longer applies
	s.hasSel = false
	s.Shuffles++
}

// Hint returns the first playable pair, if any.
func (s *Session) Hint() (Match, bool) {
	m, ok := Hint(s.Catalog, s.Board.Tiles)
	if ok {
		s.Hints++
	}
	return m, ok
}

// Won reports whether the board is cleared.
func (s *Session) Won() bool {
	return CheckWin(s.Board.Tiles)
}

// Stuck reports whether tiles remain but no playable pair exists.
func (s *Session) Stuck() bool {
	return CheckStuck(s.Catalog, s.Board.Tiles)
}

// TilesLeft counts the still-active tiles.
func (s *Session) TilesLeft() int {
	return len(s.Board.ActiveTiles())
}

// MatchesLeft counts the currently playable pairs.
func (s *Session) MatchesLeft() int {
	return len(FindAllMatches(s.Catalog, s.Board.Tiles))
}
