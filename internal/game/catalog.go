package game

import "fmt"

// Match groups for the bonus tiles. Any flower matches any other flower,
// likewise for seasons.
const (
	GroupFlowers = "flowers"
	GroupSeasons = "seasons"
)

// Catalog is the static registry of tile types. Immutable after construction.
type Catalog struct {
	types    map[TileTypeID]TileType
	standard []TileTypeID // used 4x each on a full board
	bonus    []TileTypeID // used 1x each on a full board
}

// StandardCatalog builds the classic 34+8 tile set: three numbered suits,
// four winds, three dragons, plus the flower and season bonus groups.
func StandardCatalog() *Catalog {
	c := &Catalog{types: make(map[TileTypeID]TileType)}

	suits := []struct {
		key   string
		name  string
		label string
		color int
	}{
		{"man", "Character", "M", 0},
		{"pin", "Circle", "P", 1},
		{"sou", "Bamboo", "B", 2},
	}
	for _, s := range suits {
		for v := 1; v <= 9; v++ {
			c.addStandard(TileType{
				ID:    TileTypeID(fmt.Sprintf("%s%d", s.key, v)),
				Name:  fmt.Sprintf("%s %d", s.name, v),
				Glyph: fmt.Sprintf("%s%d", s.label, v),
				Color: s.color,
			})
		}
	}

	winds := []struct{ key, name, glyph string }{
		{"east", "East Wind", "Ea"},
		{"south", "South Wind", "So"},
		{"west", "West Wind", "We"},
		{"north", "North Wind", "No"},
	}
	for _, w := range winds {
		c.addStandard(TileType{ID: TileTypeID(w.key), Name: w.name, Glyph: w.glyph, Color: 3})
	}

	dragons := []struct{ key, name, glyph string }{
		{"red", "Red Dragon", "Rd"},
		{"green", "Green Dragon", "Gd"},
		{"white", "White Dragon", "Wd"},
	}
	for _, d := range dragons {
		c.addStandard(TileType{ID: TileTypeID(d.key), Name: d.name, Glyph: d.glyph, Color: 4})
	}

	flowers := []struct{ key, name, glyph string }{
		{"plum", "Plum Blossom", "f1"},
		{"orchid", "Orchid", "f2"},
		{"mum", "Chrysanthemum", "f3"},
		{"bamboo", "Bamboo Flower", "f4"},
	}
	for _, f := range flowers {
		c.addBonus(TileType{ID: TileTypeID(f.key), Name: f.name, Glyph: f.glyph, Color: 5, MatchGroup: GroupFlowers})
	}

	seasons := []struct{ key, name, glyph string }{
		{"spring", "Spring", "s1"},
		{"summer", "Summer", "s2"},
		{"autumn", "Autumn", "s3"},
		{"winter", "Winter", "s4"},
	}
	for _, s := range seasons {
		c.addBonus(TileType{ID: TileTypeID(s.key), Name: s.name, Glyph: s.glyph, Color: 6, MatchGroup: GroupSeasons})
	}

	return c
}

func (c *Catalog) addStandard(t TileType) {
	c.types[t.ID] = t
	c.standard = append(c.standard, t.ID)
}

func (c *Catalog) addBonus(t TileType) {
	c.types[t.ID] = t
	c.bonus = append(c.bonus, t.ID)
}

// Type looks up a tile type by id.
func (c *Catalog) Type(id TileTypeID) (TileType, bool) {
	t, ok := c.types[id]
	return t, ok
}

// StandardTypes returns the non-bonus type ids in definition order.
func (c *Catalog) StandardTypes() []TileTypeID {
	out := make([]TileTypeID, len(c.standard))
	copy(out, c.standard)
	return out
}

// BonusTypes returns the grouped bonus type ids in definition order.
func (c *Catalog) BonusTypes() []TileTypeID {
	out := make([]TileTypeID, len(c.bonus))
	copy(out, c.bonus)
	return out
}

// FullBoardSize is the tile count a full layout needs: every standard type
// four times plus every bonus type once.
func (c *Catalog) FullBoardSize() int {
	return len(c.standard)*4 + len(c.bonus)
}

// Matches reports whether two tile types pair up: same non-empty match
// group, or the identical type when neither has a group.
func (c *Catalog) Matches(a, b TileTypeID) bool {
	ta, ok := c.types[a]
	if !ok {
		return false
	}
	tb, ok := c.types[b]
	if !ok {
		return false
	}
	if ta.MatchGroup != "" || tb.MatchGroup != "" {
		return ta.MatchGroup == tb.MatchGroup
	}
	return ta.ID == tb.ID
}

// matchKey is the equivalence class a type matches within.
func (c *Catalog) matchKey(id TileTypeID) string {
	if t, ok := c.types[id]; ok && t.MatchGroup != "" {
		return "group:" + t.MatchGroup
	}
	return "type:" + string(id)
}
