package tilemap

// Neighbor bits. A tile's pattern is the OR of the bits for each orthogonal
// neighbor of the same type, which makes it independent of visit order.
const (
	nRight = 1 << iota
	nLeft
	nDown
	nUp
)

var orthogonal = [4]struct {
	off GridPos
	bit int
}{
	{GridPos{1, 0}, nRight},
	{GridPos{-1, 0}, nLeft},
	{GridPos{0, 1}, nDown},
	{GridPos{0, -1}, nUp},
}

// autotileMap maps neighbor patterns to tile variants. Left+up+down maps to 3
// as authored in the tile sheets.
var autotileMap = map[int]int{
	nRight | nDown:               0,
	nRight | nDown | nLeft:       1,
	nLeft | nDown:                2,
	nLeft | nUp | nDown:          3,
	nLeft | nUp:                  4,
	nLeft | nUp | nRight:         5,
	nRight | nUp:                 6,
	nRight | nUp | nDown:         7,
	nRight | nLeft | nDown | nUp: 8,
}

// neighborPattern returns the same-type neighbor bits for the tile at pos.
func (m *Tilemap) neighborPattern(pos GridPos, tileType string) int {
	pattern := 0
	for _, o := range orthogonal {
		if n, ok := m.grid[pos.Add(o.off)]; ok && n.Type == tileType {
			pattern |= o.bit
		}
	}
	return pattern
}

// Autotile recomputes the variant of every autotile-eligible grid tile from
// its same-type neighbors. Patterns without a mapping keep their variant.
func (m *Tilemap) Autotile() {
	for pos, t := range m.grid {
		if !autotileTypes[t.Type] {
			continue
		}
		variant, ok := autotileMap[m.neighborPattern(pos, t.Type)]
		if !ok {
			continue
		}
		t.Variant = variant
		m.grid[pos] = t
	}
}
