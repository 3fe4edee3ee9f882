package maze

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvmaze/grid"
)

// Maze is a generated width × length lattice plus the chosen start.
type Maze struct {
	Width, Length int
	Frame         grid.Frame

	// Start is the lattice cell picked as the agent's start.
	Start grid.Cell
	// StartPosition is the world position of Start.
	StartPosition grid.Pos

	cells []Cell // x-major: index = x*Length + z
	walls []Cell
	free  []Cell
}

// Generate builds a perfect maze of width × length cells.
//
// Behavior:
//  1. Validate dimensions, rng and options.
//  2. Lay out chambers at (even, even); everything else is a wall.
//  3. Carve with randomized DFS from the origin chamber.
//  4. Classify walls and free cells, pick a uniformly random free start.
//
// Returns ErrBadDimensions, ErrNilRand or ErrBadOrigin on invalid input.
// Complexity: O(W×L) time and memory.
func Generate(width, length int, rng *rand.Rand, opts ...Option) (*Maze, error) {
	if width < MinSize || length < MinSize {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, width, length)
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := grid.ValidateTileSize(cfg.Frame.TileSize); err != nil {
		return nil, err
	}
	o := cfg.Origin
	if o.X < 0 || o.X >= width || o.Z < 0 || o.Z >= length || !isChamber(o.X, o.Z) {
		return nil, fmt.Errorf("%w: %v", ErrBadOrigin, o)
	}

	m := &Maze{
		Width:  width,
		Length: length,
		Frame:  cfg.Frame,
		cells:  layout(width, length),
	}
	m.carve(o, rng)
	m.classify()

	m.Start = m.free[rng.Intn(len(m.free))].Pos()
	m.StartPosition = m.Frame.World(m.Start)

	return m, nil
}

// layout allocates the lattice with chambers open and everything else walled.
func layout(width, length int) []Cell {
	cells := make([]Cell, width*length)
	for x := 0; x < width; x++ {
		for z := 0; z < length; z++ {
			cells[x*length+z] = Cell{X: x, Z: z, IsWall: !isChamber(x, z)}
		}
	}

	return cells
}

// carve runs the randomized depth-first backtracker from origin.
// The stack always holds the path from origin to the current chamber;
// the top is the current chamber.
func (m *Maze) carve(origin grid.Cell, rng *rand.Rand) {
	start := m.at(origin.X, origin.Z)
	start.visited = true
	stack := []*Cell{start}
	candidates := make([]*Cell, 0, 4)

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		candidates = m.unvisitedNeighbors(current, candidates[:0])
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := candidates[rng.Intn(len(candidates))]
		m.removeWallBetween(current, next)
		next.visited = true
		stack = append(stack, next)
	}
}

// unvisitedNeighbors appends to buf the unvisited chambers two cells away
// from c, in the order -X, -Z, +X, +Z.
func (m *Maze) unvisitedNeighbors(c *Cell, buf []*Cell) []*Cell {
	x, z := c.X, c.Z
	if x-2 >= 0 {
		if n := m.at(x-2, z); !n.visited {
			buf = append(buf, n)
		}
	}
	if z-2 >= 0 {
		if n := m.at(x, z-2); !n.visited {
			buf = append(buf, n)
		}
	}
	if x+2 <= m.Width-1 {
		if n := m.at(x+2, z); !n.visited {
			buf = append(buf, n)
		}
	}
	if z+2 <= m.Length-1 {
		if n := m.at(x, z+2); !n.visited {
			buf = append(buf, n)
		}
	}

	return buf
}

// removeWallBetween opens the connector cell between two chambers that are
// two cells apart on one axis.
func (m *Maze) removeWallBetween(a, b *Cell) {
	if a.X == b.X {
		m.at(a.X, min(a.Z, b.Z)+1).IsWall = false
		return
	}
	m.at(min(a.X, b.X)+1, a.Z).IsWall = false
}

// classify fills the wall and free lists in x-major, z-minor order.
func (m *Maze) classify() {
	m.walls = make([]Cell, 0, len(m.cells)/2)
	m.free = make([]Cell, 0, len(m.cells)/2)
	for i := range m.cells {
		m.cells[i].visited = false
		if m.cells[i].IsWall {
			m.walls = append(m.walls, m.cells[i])
		} else {
			m.free = append(m.free, m.cells[i])
		}
	}
}

func (m *Maze) at(x, z int) *Cell {
	return &m.cells[x*m.Length+z]
}
