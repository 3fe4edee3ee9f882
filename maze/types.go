package maze

import (
	"errors"

	"github.com/katalvlaran/lvmaze/grid"
)

// Sentinel errors for maze generation.
var (
	// ErrBadDimensions indicates a width or length below MinSize.
	ErrBadDimensions = errors.New("maze: width and length must be at least 3")

	// ErrNilRand indicates Generate was called without a random source.
	ErrNilRand = errors.New("maze: random source is nil")

	// ErrBadOrigin indicates a carving origin that is not an in-bounds chamber.
	ErrBadOrigin = errors.New("maze: origin must be an in-bounds chamber cell")
)

// MinSize is the smallest accepted width or length.
const MinSize = 3

// Cell is one lattice position of a generated maze.
type Cell struct {
	X, Z   int  // lattice coordinates, 0 ≤ X < Width, 0 ≤ Z < Length
	IsWall bool // true if the cell blocks movement

	visited bool // carving bookkeeping, never read after Generate returns
}

// Pos returns the lattice coordinate of c.
func (c Cell) Pos() grid.Cell { return grid.Cell{X: c.X, Z: c.Z} }

// IsChamber reports whether c sits on a chamber position (even, even).
func (c Cell) IsChamber() bool { return isChamber(c.X, c.Z) }

func isChamber(x, z int) bool { return x%2 == 0 && z%2 == 0 }

// Options tunes Generate.
type Options struct {
	// Frame maps lattice cells to world positions.
	Frame grid.Frame
	// Origin is the chamber carving starts from.
	Origin grid.Cell
}

// Option configures Generate.
type Option func(*Options)

// DefaultOptions returns Options with the default frame (origin 0, tile 1)
// and carving origin (0,0).
func DefaultOptions() Options {
	return Options{
		Frame:  grid.DefaultFrame(),
		Origin: grid.Cell{},
	}
}

// WithFrame sets the world mapping used for StartPosition and occupancy.
func WithFrame(f grid.Frame) Option {
	return func(o *Options) { o.Frame = f }
}

// WithOrigin sets the chamber carving starts from.
func WithOrigin(c grid.Cell) Option {
	return func(o *Options) { o.Origin = c }
}
