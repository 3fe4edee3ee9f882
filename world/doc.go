// Package world wires a maze, its occupancy and a pathfinder around a single
// agent, replacing process-wide controller singletons with one explicit value.
//
// A World owns:
//
//   - the current bounds, recomputed from the UI-level maze size on Rebuild;
//   - the generated maze and a live occupancy map built from it (walls plus
//     the perimeter ring), to which hosts may add dynamic obstacles;
//   - a pathfinder bound to that occupancy and those bounds;
//   - the agent's position and its current route.
//
// Concurrency: Rebuild and obstacle edits take the write lock; path searches
// run under the read lock so they always see a stable occupancy. A route
// found against a maze that was replaced mid-search is discarded.
package world
