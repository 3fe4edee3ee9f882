package maze

import "github.com/katalvlaran/lvmaze/grid"

// InBounds reports whether (x,z) lies inside the lattice.
// Complexity: O(1).
func (m *Maze) InBounds(x, z int) bool {
	return x >= 0 && x < m.Width && z >= 0 && z < m.Length
}

// Cell returns the cell at (x,z) and whether it exists.
func (m *Maze) Cell(x, z int) (Cell, bool) {
	if !m.InBounds(x, z) {
		return Cell{}, false
	}
	return *m.at(x, z), true
}

// IsWall reports whether c is a wall. Out-of-bounds cells count as walls.
func (m *Maze) IsWall(c grid.Cell) bool {
	if !m.InBounds(c.X, c.Z) {
		return true
	}
	return m.at(c.X, c.Z).IsWall
}

// Walls returns a copy of the wall cells in x-major, z-minor order.
func (m *Maze) Walls() []Cell {
	return append([]Cell(nil), m.walls...)
}

// FreeCells returns a copy of the non-wall cells in x-major, z-minor order.
func (m *Maze) FreeCells() []Cell {
	return append([]Cell(nil), m.free...)
}

// WallPositions returns the world position of every wall cell, in Walls order.
// This is what a renderer instantiates wall objects at.
func (m *Maze) WallPositions() []grid.Pos {
	out := make([]grid.Pos, len(m.walls))
	for i, c := range m.walls {
		out[i] = m.Frame.World(c.Pos())
	}

	return out
}

// ChamberCount returns the number of (even, even) cells.
func (m *Maze) ChamberCount() int {
	return ((m.Width + 1) / 2) * ((m.Length + 1) / 2)
}

// Connectors returns the free cells that are not chambers, i.e. the walls
// opened by carving. A perfect maze has exactly ChamberCount()-1 of them.
func (m *Maze) Connectors() []Cell {
	out := make([]Cell, 0, m.ChamberCount())
	for _, c := range m.free {
		if !c.IsChamber() {
			out = append(out, c)
		}
	}

	return out
}

// Bounds returns the world bounds of the lattice in the half-open form
// [Frame.Origin, Frame.Origin + (Width, Length)*TileSize).
func (m *Maze) Bounds() grid.Bounds {
	return grid.Bounds{
		Min: m.Frame.Origin,
		Max: m.Frame.World(grid.Cell{X: m.Width, Z: m.Length}),
	}
}

// Perimeter returns the ring of cells framing the lattice: column -1 and
// column Width, row -1 and row Length, corners included.
func (m *Maze) Perimeter() []grid.Cell {
	out := make([]grid.Cell, 0, 2*(m.Width+m.Length)+4)
	for x := -1; x <= m.Width; x++ {
		out = append(out, grid.Cell{X: x, Z: -1}, grid.Cell{X: x, Z: m.Length})
	}
	for z := 0; z < m.Length; z++ {
		out = append(out, grid.Cell{X: -1, Z: z}, grid.Cell{X: m.Width, Z: z})
	}

	return out
}

// OccupancyMap returns a fresh, mutable occupancy map holding every wall
// cell plus the perimeter ring, in the maze's frame. Hosts may add dynamic
// obstacles to it.
// Complexity: O(W×L).
func (m *Maze) OccupancyMap() *grid.OccupancyMap {
	occ := grid.NewOccupancyMap(m.Frame)
	cells := make([]grid.Cell, 0, len(m.walls)+2*(m.Width+m.Length)+4)
	for _, c := range m.walls {
		cells = append(cells, c.Pos())
	}
	cells = append(cells, m.Perimeter()...)
	occ.Block(cells...)

	return occ
}

// Occupancy returns an immutable oracle over the walls and perimeter ring.
func (m *Maze) Occupancy() grid.Occupancy {
	return m.OccupancyMap().Snapshot()
}

// FarthestFree returns the world position of the free cell with the largest
// Manhattan distance from from. Ties keep the first cell in x-major order.
func (m *Maze) FarthestFree(from grid.Pos) grid.Pos {
	best, bestD := from, -1.0
	for _, c := range m.free {
		p := m.Frame.World(c.Pos())
		if d := p.Manhattan(from); d > bestD {
			best, bestD = p, d
		}
	}

	return best
}

// ReachableChambers counts the chambers reachable from chamber (0,0) by
// orthogonal moves over free cells.
// Complexity: O(W×L) time and memory.
func (m *Maze) ReachableChambers() int {
	seen := make([]bool, len(m.cells))
	queue := []grid.Cell{{}}
	seen[0] = true
	count := 0
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if isChamber(c.X, c.Z) {
			count++
		}
		for _, d := range grid.Offsets4 {
			n := c.Add(d)
			if m.IsWall(n) {
				continue
			}
			idx := n.X*m.Length + n.Z
			if seen[idx] {
				continue
			}
			seen[idx] = true
			queue = append(queue, n)
		}
	}

	return count
}
