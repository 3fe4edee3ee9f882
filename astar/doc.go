// Package astar finds shortest 4-connected paths between two world points on
// a tile grid, asking an occupancy oracle about obstacles instead of holding
// a grid of its own.
//
// What:
//
//   - Both endpoints are snapped to the nearest tile.
//   - An occupied target fails immediately; no node is expanded.
//   - The search expands the open node with the lowest estimated total cost
//     (cost from origin + Manhattan distance to target). Ties go to the node
//     that entered the open set first.
//   - Neighbors are the four orthogonal tiles one TileSize away. A neighbor is
//     skipped when it falls outside the bounds or the oracle reports it
//     occupied.
//   - Relaxation keeps an open node only if its recorded cost is strictly
//     lower than the new candidate; otherwise the candidate's predecessor and
//     cost overwrite it.
//
// Bounds:
//
//   - BoundsEither (default) applies "x > min OR x < max" per axis, which
//     admits every coordinate when min < max. Searches are then confined by
//     the oracle alone (a maze oracle carries a closed perimeter).
//   - BoundsStrict admits only [min, max) on both axes.
//
// Complexity:
//
//   - Time:  O(N log N) for N expanded tiles (heap-ordered open set).
//   - Space: O(N) for the node arena, open index and closed set.
//
// Errors:
//
//   - ErrNilOccupancy: no occupancy oracle supplied.
//   - ErrOptionViolation: an option carried an invalid value.
//
// "No path" is a normal outcome reported as ok == false, never as an error.
//
// Concurrency:
//
//   - A Finder holds no per-search state; each FindPath call owns its node
//     arena. Concurrent calls are safe as long as the oracle is not mutated
//     during a search (use grid.OccupancyMap.Snapshot).
package astar
