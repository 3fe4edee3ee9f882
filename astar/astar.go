package astar

import (
	"container/heap"

	"github.com/katalvlaran/lvmaze/grid"
)

// Finder routes between world points against an occupancy oracle and
// declared bounds. It is immutable after NewFinder.
type Finder struct {
	occ    grid.Occupancy
	bounds grid.Bounds
	opts   Options
}

// NewFinder validates occ and the options and returns a Finder.
// Returns ErrNilOccupancy, ErrOptionViolation or grid.ErrBadTileSize.
func NewFinder(occ grid.Occupancy, bounds grid.Bounds, opts ...Option) (*Finder, error) {
	if occ == nil {
		return nil, ErrNilOccupancy
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := grid.ValidateTileSize(o.Frame.TileSize); err != nil {
		return nil, err
	}

	return &Finder{occ: occ, bounds: bounds, opts: o}, nil
}

// FindPath is the one-shot form of NewFinder(...).FindPath(origin, target).
// err is non-nil only for configuration errors; ok reports whether a path
// was found.
func FindPath(origin, target grid.Pos, bounds grid.Bounds, occ grid.Occupancy, opts ...Option) (Path, bool, error) {
	f, err := NewFinder(occ, bounds, opts...)
	if err != nil {
		return Path{}, false, err
	}
	p, ok := f.FindPath(origin, target)

	return p, ok, nil
}

// Bounds returns the declared search bounds.
func (f *Finder) Bounds() grid.Bounds { return f.bounds }

// Options returns a copy of the Finder's options.
func (f *Finder) Options() Options { return f.opts }

// FindPath searches a 4-connected tile path from origin to target.
//
// Behavior:
//  1. Snap target; if it is occupied, return no path without expanding.
//  2. Snap origin and seed the open set with it (cost 0).
//  3. Pop the lowest estimated-total-cost node (first inserted wins ties).
//     If it is the target, reconstruct the chain and return it.
//  4. Close it and relax its four neighbors.
//  5. An exhausted open set, the expansion cap or a cancelled context
//     mean no path.
//
// The occupancy check in step 1 queries the snapped tile position, not the
// raw target, so oracles that are not tile-based see tile centres only.
//
// The returned Path starts with the snapped origin and ends with the
// snapped target.
func (f *Finder) FindPath(origin, target grid.Pos) (Path, bool) {
	frame := f.opts.Frame
	goal := frame.CellOf(target)
	if f.occ.IsOccupied(frame.World(goal)) {
		return Path{}, false
	}

	s := newSearch(f, frame.CellOf(origin), goal)
	idx, ok := s.run()
	if !ok {
		return Path{}, false
	}

	return s.chain(idx), true
}

// search is the state of one FindPath call. It is never shared.
type search struct {
	f         *Finder
	goal      grid.Cell
	goalPos   grid.Pos
	nodes     []Node      // arena; Source holds arena ids
	cells     []grid.Cell // cells[i] is the tile of nodes[i]
	open      openSet
	heapIndex []int // heapIndex[i] is the heap slot of arena id i, -1 once popped
	openID    map[grid.Cell]int
	closed    map[grid.Cell]struct{}
	seq       uint64
}

func newSearch(f *Finder, start, goal grid.Cell) *search {
	s := &search{
		f:       f,
		goal:    goal,
		goalPos: f.opts.Frame.World(goal),
		openID:  make(map[grid.Cell]int),
		closed:  make(map[grid.Cell]struct{}),
	}
	s.open.nodes = &s.nodes
	s.open.index = &s.heapIndex
	heap.Init(&s.open)
	s.push(start, NoSource, 0)

	return s
}

// run drives the main loop and returns the arena id of the goal node.
func (s *search) run() (int, bool) {
	opts := s.f.opts
	expanded := 0
	for s.open.Len() > 0 {
		select {
		case <-opts.Ctx.Done():
			return 0, false
		default:
		}

		id := heap.Pop(&s.open).(openItem).id
		cell := s.cells[id]
		delete(s.openID, cell)
		if cell == s.goal {
			return id, true
		}
		if opts.MaxExpansions > 0 && expanded >= opts.MaxExpansions {
			return 0, false
		}

		s.closed[cell] = struct{}{}
		expanded++
		opts.OnExpand(s.nodes[id].Position)
		s.expand(id)
	}

	return 0, false
}

// expand relaxes the four orthogonal neighbors of arena node id.
func (s *search) expand(id int) {
	frame := s.f.opts.Frame
	cost := s.nodes[id].CostFromOrigin + frame.TileSize
	for _, d := range grid.Offsets4 {
		nc := s.cells[id].Add(d)
		np := frame.World(nc)
		if !s.inBounds(np) || s.f.occ.IsOccupied(np) {
			continue
		}
		if _, done := s.closed[nc]; done {
			continue
		}
		if j, ok := s.openID[nc]; ok {
			if s.nodes[j].CostFromOrigin < cost {
				continue
			}
			// Equal or higher recorded cost: the newer candidate wins.
			s.nodes[j].Source = id
			s.nodes[j].CostFromOrigin = cost
			heap.Fix(&s.open, s.heapIndex[j])
			s.f.opts.OnOpen(np, cost)
			continue
		}
		s.push(nc, id, cost)
	}
}

func (s *search) inBounds(p grid.Pos) bool {
	if s.f.opts.BoundsMode == BoundsStrict {
		return s.f.bounds.Contains(p)
	}
	return s.f.bounds.ContainsEither(p)
}

// push allocates an arena node for c and adds it to the open set.
func (s *search) push(c grid.Cell, source int, cost float64) {
	pos := s.f.opts.Frame.World(c)
	id := len(s.nodes)
	s.nodes = append(s.nodes, Node{
		Position:          pos,
		Source:            source,
		CostFromOrigin:    cost,
		HeuristicToTarget: pos.Manhattan(s.goalPos),
	})
	s.cells = append(s.cells, c)
	s.heapIndex = append(s.heapIndex, -1)
	s.openID[c] = id
	heap.Push(&s.open, openItem{id: id, seq: s.seq})
	s.seq++
	s.f.opts.OnOpen(pos, cost)
}

// chain walks Source links from the goal back to the origin, reverses the
// result and rewrites Source as an index into the returned slice.
func (s *search) chain(goal int) Path {
	var rev []Node
	for at := goal; at != NoSource; at = s.nodes[at].Source {
		rev = append(rev, s.nodes[at])
	}
	out := make([]Node, len(rev))
	for i := range rev {
		n := rev[len(rev)-1-i]
		n.Source = i - 1
		out[i] = n
	}

	return Path{Nodes: out}
}
