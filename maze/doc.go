// Package maze generates perfect mazes over a rectangular cell lattice using
// randomized depth-first carving with backtracking.
//
// What:
//
//   - Cells at even X and even Z are chambers; every other cell starts as a wall.
//   - Carving starts at chamber (0,0). At each step the current chamber picks a
//     uniformly random unvisited chamber two cells away (N/E/S/W), opens the
//     wall cell between them and moves on; with no candidates it backtracks.
//   - The result is a spanning tree over the chamber sub-grid: exactly
//     chamberCount-1 connector cells are opened, every chamber reaches every
//     other chamber along exactly one simple path.
//   - After carving, cells are classified into Walls and FreeCells and a
//     uniformly random free cell becomes the StartPosition.
//
// Determinism:
//
//   - Generate consumes draws only from the supplied *rand.Rand, so identical
//     seed and dimensions always give an identical maze.
//
// Complexity:
//
//   - Generate: O(W×L) time and memory.
//   - ReachableChambers: O(W×L).
//
// Errors:
//
//   - ErrBadDimensions: width or length below MinSize.
//   - ErrNilRand: no random source supplied.
//   - ErrBadOrigin: carving origin is not an in-bounds chamber.
//
// A Maze is immutable once returned. Regeneration builds a new Maze; there is
// no incremental mutation.
package maze
