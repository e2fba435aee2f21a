package game

import (
	"math"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// idAllocator issues tile ids for one board. It is owned by the generation
// call (and carried on the board for later shuffles) so id assignment never
// leans on shared mutable state.
type idAllocator struct {
	next TileID
}

func (a *idAllocator) take() TileID {
	id := a.next
	a.next++
	return id
}

// pair is two tile types intended to be removed together. For standard
// tiles both halves are the same type; bonus pairs mix types within one
// match group.
type pair [2]TileTypeID

// GenerateBoard assigns tile types to every layout position via reverse
// simulation: tiles are placed in the reverse of a legal removal order, so
// the finished board is clearable by construction. If every attempt in the
// retry budget dead-ends, a degraded board is assigned in input order and
// flagged unsolvable rather than failing.
func GenerateBoard(cat *Catalog, layout Layout, cfg GenConfig, rng *rand.Rand) *Board {
	pairs := buildPairs(cat, len(layout.Positions), rng)

	b := &Board{
		ID:     uuid.New(),
		Layout: layout,
	}

	for attempt := 0; attempt < cfg.Retries; attempt++ {
		alloc := idAllocator{}
		rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
		tiles, ok := placePairs(pairs, layout.Positions, cfg, rng, &alloc)
		if ok {
			b.Tiles = tiles
			b.Solvable = true
			b.nextID = alloc.next
			if attempt > 0 {
				log.Debug().Str("layout", layout.ID).Int("attempt", attempt+1).
					Msg("board generation succeeded after retries")
			}
			return b
		}
	}

	log.Warn().Str("layout", layout.ID).Int("retries", cfg.Retries).
		Msg("board generation exhausted retries; assigning tiles without solvability guarantee")

	alloc := idAllocator{}
	b.Tiles = fallbackAssign(pairs, layout.Positions, &alloc)
	b.Solvable = false
	b.nextID = alloc.next
	return b
}

// buildPairs produces the type multiset for a board of n tiles, arranged as
// matching pairs. A full-size board uses every standard type four times and
// each bonus type once (paired within its group). Undersized boards draw
// standard types at random without replacement, four tiles per type (two
// when only two positions remain), recycling the pool once exhausted.
func buildPairs(cat *Catalog, n int, rng *rand.Rand) []pair {
	if n == cat.FullBoardSize() {
		pairs := make([]pair, 0, n/2)
		for _, id := range cat.StandardTypes() {
			pairs = append(pairs, pair{id, id}, pair{id, id})
		}
		return append(pairs, bonusPairs(cat)...)
	}

	pairs := make([]pair, 0, n/2)
	var pool []TileTypeID
	for len(pairs)*2 < n {
		if len(pool) == 0 {
			pool = cat.StandardTypes()
			rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		}
		id := pool[0]
		pool = pool[1:]
		pairs = append(pairs, pair{id, id})
		if len(pairs)*2 < n {
			pairs = append(pairs, pair{id, id})
		}
	}
	return pairs
}

// bonusPairs pairs the bonus types within their match groups, whatever
// order the catalog happens to list them in.
func bonusPairs(cat *Catalog) []pair {
	byGroup := make(map[string][]TileTypeID)
	var order []string
	for _, id := range cat.BonusTypes() {
		k := cat.matchKey(id)
		if _, seen := byGroup[k]; !seen {
			order = append(order, k)
		}
		byGroup[k] = append(byGroup[k], id)
	}

	var pairs []pair
	for _, k := range order {
		g := byGroup[k]
		for i := 0; i+1 < len(g); i += 2 {
			pairs = append(pairs, pair{g[i], g[i+1]})
		}
	}
	return pairs
}

// placePairs runs one reverse-simulation attempt. The placement order is
// found by unwinding a fully occupied layout: pairs of positions that are
// free against everything still standing get peeled off until nothing
// remains, and tiles are then placed in the reverse of that peel. A pair's
// two positions were free against exactly the positions peeled after it —
// the already-placed set during the rebuild — so every pair goes down open
// against only already-placed tiles. Working from the full board down also
// means a peel can only free positions, never seal one the way a free-form
// build can (an interior one-wide gap or a covered cell is unplaceable
// forever). Fails when fewer than two positions are free with pairs still
// unplaced.
func placePairs(pairs []pair, positions []Position, cfg GenConfig, rng *rand.Rand, alloc *idAllocator) ([]Tile, bool) {
	present := make([]bool, len(positions))
	for i := range present {
		present[i] = true
	}

	peel := make([][2]int, 0, len(pairs))
	free := make([]int, 0, len(positions))
	others := make([]Position, 0, len(positions))
	for remaining := len(positions); remaining > 0; remaining -= 2 {
		free = free[:0]
		for i, p := range positions {
			if !present[i] {
				continue
			}
			others = others[:0]
			for j, q := range positions {
				if present[j] && j != i {
					others = append(others, q)
				}
			}
			if openPosition(p, others) {
				free = append(free, i)
			}
		}
		if len(free) < 2 {
			return nil, false
		}

		i, j := pickPairPositions(free, positions, cfg, rng)
		peel = append(peel, [2]int{i, j})
		present[i], present[j] = false, false
	}

	// Rebuild in reverse peel order; ids run in placement order.
	tiles := make([]Tile, 0, len(positions))
	for k := len(peel) - 1; k >= 0; k-- {
		pr := pairs[k]
		tiles = append(tiles,
			Tile{ID: alloc.take(), Type: pr[0], Pos: positions[peel[k][0]]},
			Tile{ID: alloc.take(), Type: pr[1], Pos: positions[peel[k][1]]},
		)
	}
	return tiles, true
}

// pickPairPositions chooses two free positions for one pair, spending the
// try budget on a well-separated pick before settling for an arbitrary one.
// Any two distinct free positions work: each was free with the other still
// standing, so both halves are selectable at the same moment in play.
func pickPairPositions(free []int, positions []Position, cfg GenConfig, rng *rand.Rand) (int, int) {
	for try := 0; try < cfg.SpreadTries; try++ {
		i := free[rng.Intn(len(free))]
		j := free[rng.Intn(len(free))]
		if i != j && spread(positions[i], positions[j], cfg) >= cfg.MinSpread {
			return i, j
		}
	}
	return free[0], free[1]
}

// spread is the weighted distance between two positions. Horizontal
// distance weighs more than layer distance to discourage trivial same-row
// adjacent matches.
func spread(a, b Position, cfg GenConfig) float64 {
	dx := (a.X - b.X) * cfg.HorizontalWeight
	dy := (a.Y - b.Y) * cfg.HorizontalWeight
	dz := (a.Z - b.Z) * cfg.LayerWeight
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// fallbackAssign lays pairs onto positions in input order. The result keeps
// the pairing invariant but carries no solvability guarantee; callers see
// that through Board.Solvable.
func fallbackAssign(pairs []pair, positions []Position, alloc *idAllocator) []Tile {
	tiles := make([]Tile, 0, len(positions))
	for i, pr := range pairs {
		tiles = append(tiles,
			Tile{ID: alloc.take(), Type: pr[0], Pos: positions[2*i]},
			Tile{ID: alloc.take(), Type: pr[1], Pos: positions[2*i+1]},
		)
	}
	return tiles
}
