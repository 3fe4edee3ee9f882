// Package grid defines the coordinate system shared by the maze generator
// and the pathfinder: world positions, integer lattice cells, the frame that
// maps one onto the other, the playable bounds, and the occupancy contract.
//
// What:
//
//   - Pos is a continuous world position on the ground plane (X, Z).
//   - Cell is an integer lattice coordinate.
//   - Frame converts between them: world = Origin + cell*TileSize, and back
//     by rounding to the nearest tile.
//   - Bounds records the playable area as Min/Max world positions.
//   - Occupancy answers "is this tile blocked?" for a tile-aligned position.
//   - OccupancyMap is a concurrency-safe Occupancy backed by a cell set.
//
// Invariants:
//
//   - Every position crossing a package boundary is tile-aligned; fractional
//     inputs are snapped with Frame.Snap before use.
//   - TileSize is strictly positive and finite.
//
// Complexity:
//
//   - Frame conversions: O(1).
//   - OccupancyMap.IsOccupied: O(1) average, read lock only.
//   - OccupancyMap.Snapshot: O(n) in the number of blocked cells.
//
// Errors:
//
//   - ErrBadTileSize: tile size is zero, negative, NaN or infinite.
package grid
