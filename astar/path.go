package astar

import "github.com/katalvlaran/lvmaze/grid"

// NoSource marks a node without predecessor.
const NoSource = -1

// Node is one step of a candidate or final path.
//
// Source indexes the predecessor: inside a search it is an arena id, inside
// a returned Path it is the index of the previous element (NoSource for the
// first one).
type Node struct {
	Position          grid.Pos
	Source            int
	CostFromOrigin    float64
	HeuristicToTarget float64
}

// EstimatedTotalCost returns CostFromOrigin + HeuristicToTarget.
func (n Node) EstimatedTotalCost() float64 {
	return n.CostFromOrigin + n.HeuristicToTarget
}

// Path is a found route in origin-to-goal order. Nodes[0] is the snapped
// origin itself; consumers that only need the steps to take use Steps.
// A Path is immutable once returned.
type Path struct {
	Nodes []Node
}

// Len returns the number of nodes, origin included.
func (p Path) Len() int { return len(p.Nodes) }

// Empty reports whether p holds no nodes.
func (p Path) Empty() bool { return len(p.Nodes) == 0 }

// Positions returns the node positions in order.
func (p Path) Positions() []grid.Pos {
	out := make([]grid.Pos, len(p.Nodes))
	for i, n := range p.Nodes {
		out[i] = n.Position
	}

	return out
}

// Steps returns the nodes after the origin, i.e. the waypoints an agent
// standing on the origin still has to visit.
func (p Path) Steps() []Node {
	if len(p.Nodes) < 2 {
		return nil
	}
	return p.Nodes[1:]
}

// Cost returns the goal's cost from origin, or 0 for an empty path.
func (p Path) Cost() float64 {
	if len(p.Nodes) == 0 {
		return 0
	}
	return p.Nodes[len(p.Nodes)-1].CostFromOrigin
}

// Goal returns the last position and whether p is non-empty.
func (p Path) Goal() (grid.Pos, bool) {
	if len(p.Nodes) == 0 {
		return grid.Pos{}, false
	}
	return p.Nodes[len(p.Nodes)-1].Position, true
}
