package grid

// Bounds is the playable area in world space.
//
// The host recomputes Bounds whenever the playable area changes; lattice
// dimensions derive from it through Dimensions.
type Bounds struct {
	Min, Max Pos
}

// BoundsForMaze returns the bounds for a maze of the given UI-level size:
//
//	Min = (-width*t, -length*t)
//	Max = ((width-1)*t, (length-1)*t)
//
// The lattice spanned by these bounds is (2*width-1) × (2*length-1) tiles
// for any positive tile size; the corners stay tile-aligned, not integral.
func BoundsForMaze(width, length int, tileSize float64) Bounds {
	return Bounds{
		Min: Pos{X: -float64(width) * tileSize, Z: -float64(length) * tileSize},
		Max: Pos{X: float64(width-1) * tileSize, Z: float64(length-1) * tileSize},
	}
}

// Dimensions returns the lattice width and length covered by b at tileSize,
// i.e. round((Max-Min)/tileSize) per axis.
func (b Bounds) Dimensions(tileSize float64) (width, length int) {
	return Round((b.Max.X - b.Min.X) / tileSize), Round((b.Max.Z - b.Min.Z) / tileSize)
}

// Frame returns the Frame anchored at b.Min.
func (b Bounds) Frame(tileSize float64) Frame {
	return Frame{Origin: b.Min, TileSize: tileSize}
}

// Contains reports whether p lies in the half-open box [Min, Max) on both axes.
func (b Bounds) Contains(p Pos) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Z >= b.Min.Z && p.Z < b.Max.Z
}

// ContainsEither applies the per-axis test "x > min OR x < max".
// For any Bounds with Min < Max on an axis the test accepts every value,
// so in practice only the occupancy oracle confines a search.
func (b Bounds) ContainsEither(p Pos) bool {
	inX := p.X > b.Min.X || p.X < b.Max.X
	inZ := p.Z > b.Min.Z || p.Z < b.Max.Z
	return inX && inZ
}

// Center returns the midpoint of b.
func (b Bounds) Center() Pos {
	return Pos{X: (b.Min.X + b.Max.X) / 2, Z: (b.Min.Z + b.Max.Z) / 2}
}
