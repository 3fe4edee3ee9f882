// Package lvmaze is a two-stage procedural grid toolkit: a perfect-maze
// generator and an occupancy-driven A* pathfinder that routes an agent
// through whatever the maze (or any other obstacle source) put in the world.
//
// Under the hood, everything is organized under small subpackages:
//
//	grid/   : world positions, lattice cells, tile frames, bounds, occupancy
//	maze/   : randomized depth-first carving of perfect mazes
//	astar/  : 4-connected A* against a live occupancy oracle
//	world/  : maze + occupancy + pathfinder + agent, without singletons
//	config/ : YAML configuration
//
// Quick ASCII example (7×3 maze, S = start, north up):
//
//	.#.....
//	.#.#.##
//	S..#...
//
// The pathfinder never sees the maze array: it only asks grid.Occupancy
// whether a tile is blocked, so obstacles may change between searches.
//
//	go get github.com/katalvlaran/lvmaze
package lvmaze
