package game

import (
	"math/rand"

	"github.com/rs/zerolog/log"
)

// RemovePair returns a copy of tiles with both ids flagged removed. It does
// not re-check freeness or type match: selection logic owns legality, and
// this function trusts its caller.
func RemovePair(tiles []Tile, a, b TileID) []Tile {
	out := make([]Tile, len(tiles))
	copy(out, tiles)
	for i := range out {
		if out[i].ID == a || out[i].ID == b {
			out[i].Removed = true
		}
	}
	return out
}

// ShuffleBoard re-deals the still-active tiles: their positions and type
// multiset are kept, their identities retired, and the reverse-simulation
// placement is re-run over just the active subset. Removed tiles carry
// through unchanged. If every attempt dead-ends the active types are dealt
// as a plain permutation and the board is flagged unsolvable.
func ShuffleBoard(cat *Catalog, b *Board, cfg GenConfig, rng *rand.Rand) *Board {
	var removed []Tile
	var positions []Position
	var types []TileTypeID
	for _, t := range b.Tiles {
		if t.Removed {
			removed = append(removed, t)
			continue
		}
		positions = append(positions, t.Pos)
		types = append(types, t.Type)
	}

	out := &Board{
		ID:     b.ID,
		Layout: b.Layout,
		nextID: b.nextID,
	}

	pairs := pairUpTypes(cat, types, rng)
	for attempt := 0; attempt < cfg.Retries; attempt++ {
		alloc := idAllocator{next: out.nextID}
		rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
		tiles, ok := placePairs(pairs, positions, cfg, rng, &alloc)
		if ok {
			out.Tiles = append(removed, tiles...)
			out.Solvable = true
			out.nextID = alloc.next
			return out
		}
	}

	log.Warn().Str("layout", b.Layout.ID).Int("active", len(positions)).
		Msg("shuffle exhausted retries; dealing a plain permutation without solvability guarantee")

	alloc := idAllocator{next: out.nextID}
	perm := rng.Perm(len(types))
	tiles := make([]Tile, len(types))
	for i, pi := range perm {
		tiles[i] = Tile{ID: alloc.take(), Type: types[i], Pos: positions[pi]}
	}
	out.Tiles = append(removed, tiles...)
	out.Solvable = false
	out.nextID = alloc.next
	return out
}

// pairUpTypes arranges an active type multiset into matching pairs, pairing
// within each match-group or identity class. Active counts group evenly by
// class (the generation invariant), so nothing is left over.
func pairUpTypes(cat *Catalog, types []TileTypeID, rng *rand.Rand) []pair {
	byClass := make(map[string][]TileTypeID)
	var order []string
	for _, id := range types {
		k := cat.matchKey(id)
		if _, seen := byClass[k]; !seen {
			order = append(order, k)
		}
		byClass[k] = append(byClass[k], id)
	}

	pairs := make([]pair, 0, len(types)/2)
	for _, k := range order {
		class := byClass[k]
		rng.Shuffle(len(class), func(i, j int) { class[i], class[j] = class[j], class[i] })
		for i := 0; i+1 < len(class); i += 2 {
			pairs = append(pairs, pair{class[i], class[i+1]})
		}
	}
	return pairs
}
