package grid

import (
	"fmt"
	"math"
)

// Frame maps lattice cells to world positions:
//
//	world = Origin + cell*TileSize
//
// The zero Frame is invalid; use NewFrame or DefaultFrame.
type Frame struct {
	Origin   Pos
	TileSize float64
}

// DefaultFrame returns a Frame at the world origin with DefaultTileSize.
func DefaultFrame() Frame {
	return Frame{TileSize: DefaultTileSize}
}

// NewFrame validates tileSize and returns the Frame.
// Returns ErrBadTileSize if tileSize is not a positive finite number.
func NewFrame(origin Pos, tileSize float64) (Frame, error) {
	if err := ValidateTileSize(tileSize); err != nil {
		return Frame{}, err
	}

	return Frame{Origin: origin, TileSize: tileSize}, nil
}

// ValidateTileSize returns ErrBadTileSize unless t > 0 and finite.
func ValidateTileSize(t float64) error {
	if !(t > 0) || math.IsInf(t, 0) || math.IsNaN(t) {
		return fmt.Errorf("%w: got %v", ErrBadTileSize, t)
	}
	return nil
}

// CellOf returns the cell whose tile contains p, rounding to the nearest tile.
// Complexity: O(1).
func (f Frame) CellOf(p Pos) Cell {
	return Cell{
		X: Round((p.X - f.Origin.X) / f.TileSize),
		Z: Round((p.Z - f.Origin.Z) / f.TileSize),
	}
}

// World returns the world position of cell c.
// Complexity: O(1).
func (f Frame) World(c Cell) Pos {
	return Pos{
		X: f.Origin.X + float64(c.X)*f.TileSize,
		Z: f.Origin.Z + float64(c.Z)*f.TileSize,
	}
}

// Snap returns p moved to the nearest tile-aligned position.
func (f Frame) Snap(p Pos) Pos {
	return f.World(f.CellOf(p))
}

// Aligned reports whether p already lies on a tile position.
func (f Frame) Aligned(p Pos) bool {
	return f.Snap(p) == p
}
