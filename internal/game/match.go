package game

// Match is a pair of tile ids that are both free and type-matched.
type Match struct {
	A TileID `json:"a"`
	B TileID `json:"b"`
}

// FindAllMatches returns every currently playable pair, in discovery order
// over the free subset (outer then inner index ascending). The order is
// load-bearing: Hint always returns the first entry, so a given board state
// yields a reproducible hint. The match predicate is memoized per type pair
// within the call.
func FindAllMatches(cat *Catalog, tiles []Tile) []Match {
	free := FreeTiles(tiles)
	memo := make(map[[2]TileTypeID]bool)

	var out []Match
	for i := 0; i < len(free); i++ {
		for j := i + 1; j < len(free); j++ {
			key := [2]TileTypeID{free[i].Type, free[j].Type}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			ok, seen := memo[key]
			if !seen {
				ok = cat.Matches(free[i].Type, free[j].Type)
				memo[key] = ok
			}
			if ok {
				out = append(out, Match{A: free[i].ID, B: free[j].ID})
			}
		}
	}
	return out
}

// Hint returns the first playable pair, if any.
func Hint(cat *Catalog, tiles []Tile) (Match, bool) {
	// Same traversal as FindAllMatches, stopping at the first hit.
	free := FreeTiles(tiles)
	for i := 0; i < len(free); i++ {
		for j := i + 1; j < len(free); j++ {
			if cat.Matches(free[i].Type, free[j].Type) {
				return Match{A: free[i].ID, B: free[j].ID}, true
			}
		}
	}
	return Match{}, false
}

// CheckWin reports whether every tile has been removed.
func CheckWin(tiles []Tile) bool {
	for _, t := range tiles {
		if !t.Removed {
			return false
		}
	}
	return true
}

// CheckStuck reports whether tiles remain but no playable pair exists.
func CheckStuck(cat *Catalog, tiles []Tile) bool {
	if CheckWin(tiles) {
		return false
	}
	return len(FindAllMatches(cat, tiles)) == 0
}
