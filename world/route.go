package world

import (
	"github.com/katalvlaran/lvmaze/astar"
	"github.com/katalvlaran/lvmaze/grid"
)

// Route walks a Path from its first step. Node 0 of the path is the spot the
// agent already stands on, so the cursor starts at index 1.
type Route struct {
	path astar.Path
	next int
}

// NewRoute returns a cursor over p positioned at its first step.
func NewRoute(p astar.Path) *Route {
	return &Route{path: p, next: 1}
}

// Path returns the underlying path.
func (r *Route) Path() astar.Path { return r.path }

// Done reports whether every step has been visited.
func (r *Route) Done() bool { return r.next >= r.path.Len() }

// Current returns the waypoint the agent is heading to.
func (r *Route) Current() (astar.Node, bool) {
	if r.Done() {
		return astar.Node{}, false
	}
	return r.path.Nodes[r.next], true
}

// Advance moves to the following waypoint and reports whether one remains.
func (r *Route) Advance() bool {
	if !r.Done() {
		r.next++
	}
	return !r.Done()
}

// Remaining returns the positions not yet reached, current waypoint first.
func (r *Route) Remaining() []grid.Pos {
	if r.Done() {
		return nil
	}
	return r.path.Positions()[r.next:]
}
