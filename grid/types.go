package grid

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadTileSize indicates a tile size that is not a positive finite number.
var ErrBadTileSize = errors.New("grid: tile size must be positive and finite")

// DefaultTileSize is the tile edge length used when none is configured.
const DefaultTileSize = 1.0

// Pos is a world position on the ground plane.
type Pos struct {
	X, Z float64
}

// P is shorthand for Pos{X: x, Z: z}.
func P(x, z float64) Pos { return Pos{X: x, Z: z} }

// Add returns p + q.
func (p Pos) Add(q Pos) Pos { return Pos{X: p.X + q.X, Z: p.Z + q.Z} }

// Sub returns p - q.
func (p Pos) Sub(q Pos) Pos { return Pos{X: p.X - q.X, Z: p.Z - q.Z} }

// Manhattan returns |dx| + |dz| between p and q.
func (p Pos) Manhattan(q Pos) float64 {
	return math.Abs(p.X-q.X) + math.Abs(p.Z-q.Z)
}

// String formats p as "(x,z)".
func (p Pos) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Z)
}

// Cell is an integer lattice coordinate.
type Cell struct {
	X, Z int
}

// C is shorthand for Cell{X: x, Z: z}.
func C(x, z int) Cell { return Cell{X: x, Z: z} }

// Add returns c + d.
func (c Cell) Add(d Cell) Cell { return Cell{X: c.X + d.X, Z: c.Z + d.Z} }

// String formats c as "x,z".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Z)
}

// Offsets4 lists the orthogonal neighbor offsets in expansion order:
// +X, -X, +Z, -Z.
var Offsets4 = [4]Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Round rounds v to the nearest integer, halves away from zero.
func Round(v float64) int {
	return int(math.Round(v))
}

// Occupancy reports whether the tile at a world position is blocked.
// Implementations receive tile-aligned positions only.
type Occupancy interface {
	IsOccupied(p Pos) bool
}

// OccupancyFunc adapts a plain function to Occupancy.
type OccupancyFunc func(p Pos) bool

// IsOccupied calls f(p).
func (f OccupancyFunc) IsOccupied(p Pos) bool { return f(p) }

// Free is an Occupancy with no obstacles.
var Free Occupancy = OccupancyFunc(func(Pos) bool { return false })
