package world

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/katalvlaran/lvmaze/astar"
	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
)

// Option configures a World.
type Option func(*World)

// WithRand sets the random source used for every maze generation.
// Without it, a source seeded from the config (or the clock) is used.
func WithRand(rng *rand.Rand) Option {
	return func(w *World) {
		if rng != nil {
			w.rng = rng
		}
	}
}

// WithLogger sets the logger for rebuilds and rejected path requests.
// The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// World is a maze, its occupancy, a pathfinder and one agent.
type World struct {
	mu     sync.RWMutex
	cfg    config.Config
	rng    *rand.Rand
	logger *log.Logger

	gen    uint64 // bumped by every Rebuild
	bounds grid.Bounds
	maze   *maze.Maze
	occ    *grid.OccupancyMap
	finder *astar.Finder

	agent grid.Pos
	route *Route
}

// New validates cfg, builds the first maze at cfg.Maze size and places the
// agent on its start position.
func New(cfg config.Config, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		cfg:    cfg,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		w.rng = rand.New(rand.NewSource(seed))
	}
	if err := w.Rebuild(cfg.Maze.Width, cfg.Maze.Length); err != nil {
		return nil, err
	}

	return w, nil
}

// Rebuild recomputes the bounds for a width × length maze, generates a new
// maze, replaces the occupancy and pathfinder, moves the agent to the new
// start and drops its route.
func (w *World) Rebuild(width, length int) error {
	if err := config.ValidateMazeSize(width, length); err != nil {
		return err
	}
	tile := w.cfg.TileSize
	bounds := grid.BoundsForMaze(width, length, tile)
	frame := bounds.Frame(tile)
	cols, rows := bounds.Dimensions(tile)

	w.mu.Lock()
	defer w.mu.Unlock()

	m, err := maze.Generate(cols, rows, w.rng, maze.WithFrame(frame))
	if err != nil {
		return fmt.Errorf("world: generate maze: %w", err)
	}
	occ := m.OccupancyMap()
	finder, err := astar.NewFinder(occ, bounds,
		astar.WithFrame(frame),
		astar.WithBoundsMode(w.cfg.BoundsMode()),
		astar.WithMaxExpansions(w.cfg.Pathfinder.MaxExpansions),
	)
	if err != nil {
		return fmt.Errorf("world: build pathfinder: %w", err)
	}

	w.gen++
	w.bounds = bounds
	w.maze = m
	w.occ = occ
	w.finder = finder
	w.agent = m.StartPosition
	w.route = nil
	w.cfg.Maze = config.Maze{Width: width, Length: length}
	w.logger.Printf("world: rebuilt %dx%d maze (%d walls), start %v", cols, rows, len(m.Walls()), m.StartPosition)

	return nil
}

// RequestPath searches a path from the agent to target. On success the
// agent's route is replaced and the path returned; otherwise the current
// route and position are kept.
func (w *World) RequestPath(target grid.Pos) (astar.Path, bool) {
	res, ok := w.search(target)
	if !ok {
		w.logger.Printf("world: no path from %v to %v", res.from, target)
		return astar.Path{}, false
	}
	if !w.install(res, target) {
		return astar.Path{}, false
	}

	return res.path, true
}

// searchResult is a finished search and the world state it ran against.
type searchResult struct {
	gen  uint64
	from grid.Pos
	path astar.Path
}

// search runs the pathfinder under the read lock.
func (w *World) search(target grid.Pos) (searchResult, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	res := searchResult{gen: w.gen, from: w.agent}
	path, ok := w.finder.FindPath(res.from, target)
	res.path = path

	return res, ok
}

// install replaces the agent's route with res unless the maze was rebuilt
// or the agent moved since the search started.
func (w *World) install(res searchResult, target grid.Pos) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.gen != res.gen || w.agent != res.from {
		w.logger.Printf("world: discarding stale path to %v", target)
		return false
	}
	w.route = NewRoute(res.path)

	return true
}

// Step moves the agent onto its current waypoint and advances the route.
// It returns the new position and whether the agent moved.
func (w *World) Step() (grid.Pos, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.route == nil {
		return w.agent, false
	}
	n, ok := w.route.Current()
	if !ok {
		w.route = nil
		return w.agent, false
	}
	w.agent = n.Position
	if !w.route.Advance() {
		w.route = nil
	}

	return w.agent, true
}

// ResetRoute drops the agent's route without moving it.
func (w *World) ResetRoute() {
	w.mu.Lock()
	w.route = nil
	w.mu.Unlock()
}

// Block adds dynamic obstacles at the given world positions.
// Positions are snapped to the tile grid.
func (w *World) Block(ps ...grid.Pos) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, p := range ps {
		w.occ.BlockAt(p)
	}
}

// Unblock removes obstacles at the given world positions.
func (w *World) Unblock(ps ...grid.Pos) {
	w.mu.Lock()
	defer w.mu.Unlock()
	frame := w.occ.Frame()
	for _, p := range ps {
		w.occ.Unblock(frame.CellOf(p))
	}
}

// Agent returns the agent position.
func (w *World) Agent() grid.Pos {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.agent
}

// Route returns the remaining waypoints of the agent's route, or nil.
func (w *World) Route() []grid.Pos {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.route == nil {
		return nil
	}
	return w.route.Remaining()
}

// Maze returns the current maze. Mazes are immutable; the pointer stays
// valid after a Rebuild but no longer describes the world.
func (w *World) Maze() *maze.Maze {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.maze
}

// Bounds returns the current playable bounds.
func (w *World) Bounds() grid.Bounds {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.bounds
}

// Occupancy returns a stable snapshot of the current obstacles.
func (w *World) Occupancy() grid.Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.occ.Snapshot()
}

// Config returns the configuration, with Maze reflecting the last Rebuild.
func (w *World) Config() config.Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cfg
}
