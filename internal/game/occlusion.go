package game

import "math"

// Occlusion tolerances. Layouts may stagger tiles at half-integer offsets,
// so positions within cellTol on an axis count as the same cell and
// positions within adjTol count as adjacent. Exact equality is never
// required.
const (
	cellTol = 0.9
	adjTol  = 1.1
)

// blockedAbove reports whether some occupied position shares p's layer cell
// (both |dx| and |dy| under cellTol) at a strictly greater z.
func blockedAbove(p Position, occupied []Position) bool {
	for _, o := range occupied {
		if o.Z > p.Z && math.Abs(o.X-p.X) < cellTol && math.Abs(o.Y-p.Y) < cellTol {
			return true
		}
	}
	return false
}

// blockedSide reports whether some occupied position sits immediately next
// to p on the given side (dir -1 for left, +1 for right): same z, same row
// within cellTol, and an x-distance in that direction inside (0, adjTol).
func blockedSide(p Position, occupied []Position, dir float64) bool {
	for _, o := range occupied {
		if o.Z != p.Z || math.Abs(o.Y-p.Y) >= cellTol {
			continue
		}
		dx := (o.X - p.X) * dir
		if dx > 0 && dx < adjTol {
			return true
		}
	}
	return false
}

// openPosition reports whether a position is selectable (or placeable,
// during generation) against the given occupied set: not covered from
// above, and open on at least one horizontal side.
func openPosition(p Position, occupied []Position) bool {
	if blockedAbove(p, occupied) {
		return false
	}
	return !blockedSide(p, occupied, -1) || !blockedSide(p, occupied, +1)
}

// IsFree reports whether the tile can currently be selected: it is not
// removed, nothing covers it, and at least one horizontal side is open.
// Removed tiles never block and are never free.
func IsFree(t Tile, tiles []Tile) bool {
	if t.Removed {
		return false
	}
	others := make([]Position, 0, len(tiles))
	for _, o := range tiles {
		if !o.Removed && o.ID != t.ID {
			others = append(others, o.Pos)
		}
	}
	return openPosition(t.Pos, others)
}

// FreeTiles returns the selectable subset of tiles in input order.
func FreeTiles(tiles []Tile) []Tile {
	active := make([]Position, 0, len(tiles))
	for _, t := range tiles {
		if !t.Removed {
			active = append(active, t.Pos)
		}
	}

	var free []Tile
	scratch := make([]Position, 0, len(active))
	idx := 0
	for _, t := range tiles {
		if t.Removed {
			continue
		}
		scratch = scratch[:0]
		scratch = append(scratch, active[:idx]...)
		scratch = append(scratch, active[idx+1:]...)
		if openPosition(t.Pos, scratch) {
			free = append(free, t)
		}
		idx++
	}
	return free
}
