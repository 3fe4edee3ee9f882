// File: occupancy.go
// Role: Concurrency-safe obstacle set answering the Occupancy contract.
//
// Determinism:
//   - Cells() returns cells sorted by X, then Z.
//
// Concurrency:
//   - The cell set is protected by mu; IsOccupied takes the read lock only.
//   - Snapshot() hands out an immutable copy so a search can run against a
//     stable view while the live map keeps changing.
package grid

import (
	"sort"
	"sync"
)

// OccupancyMap is a set of blocked cells over a Frame.
// The zero value is not usable; construct with NewOccupancyMap.
type OccupancyMap struct {
	mu      sync.RWMutex      // guards blocked
	frame   Frame             // immutable after construction
	blocked map[Cell]struct{} // blocked cells
}

// NewOccupancyMap creates an empty map over frame.
// Complexity: O(1).
func NewOccupancyMap(frame Frame) *OccupancyMap {
	return &OccupancyMap{
		frame:   frame,
		blocked: make(map[Cell]struct{}),
	}
}

// Frame returns the frame used to map world positions to cells.
func (m *OccupancyMap) Frame() Frame { return m.frame }

// Block marks every given cell as occupied (idempotent).
//
// Implementation:
//   - Stage 1: Acquire the write lock.
//   - Stage 2: Insert each cell into the set.
//
// Complexity:
//   - Time O(k) for k cells, Space O(k).
func (m *OccupancyMap) Block(cells ...Cell) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range cells {
		m.blocked[c] = struct{}{}
	}
}

// BlockAt marks the tile containing p as occupied.
func (m *OccupancyMap) BlockAt(p Pos) {
	m.Block(m.frame.CellOf(p))
}

// Unblock clears every given cell (missing cells are ignored).
func (m *OccupancyMap) Unblock(cells ...Cell) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range cells {
		delete(m.blocked, c)
	}
}

// Clear removes all obstacles.
func (m *OccupancyMap) Clear() {
	m.mu.Lock()
	m.blocked = make(map[Cell]struct{})
	m.mu.Unlock()
}

// Len returns the number of blocked cells.
func (m *OccupancyMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.blocked)
}

// Blocked reports whether cell c is occupied.
func (m *OccupancyMap) Blocked(c Cell) bool {
	m.mu.RLock()
	_, ok := m.blocked[c]
	m.mu.RUnlock()
	return ok
}

// IsOccupied implements Occupancy. p is snapped to the map's frame first.
// Complexity: O(1) average.
func (m *OccupancyMap) IsOccupied(p Pos) bool {
	return m.Blocked(m.frame.CellOf(p))
}

// Snapshot returns a read-only copy of the current obstacle set.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Copy the set into a fresh map.
//
// Behavior highlights:
//   - Later Block/Unblock calls on m are not visible through the snapshot.
//
// Complexity:
//   - Time O(n), Space O(n) for n blocked cells.
func (m *OccupancyMap) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cp := make(map[Cell]struct{}, len(m.blocked))
	for c := range m.blocked {
		cp[c] = struct{}{}
	}

	return Snapshot{frame: m.frame, blocked: cp}
}

// Cells returns all blocked cells sorted by X, then Z.
func (m *OccupancyMap) Cells() []Cell {
	m.mu.RLock()
	out := make([]Cell, 0, len(m.blocked))
	for c := range m.blocked {
		out = append(out, c)
	}
	m.mu.RUnlock()
	sortCells(out)

	return out
}

// Snapshot is an immutable Occupancy captured from an OccupancyMap.
// It needs no locking and is safe to share between goroutines.
type Snapshot struct {
	frame   Frame
	blocked map[Cell]struct{}
}

// IsOccupied implements Occupancy.
func (s Snapshot) IsOccupied(p Pos) bool {
	_, ok := s.blocked[s.frame.CellOf(p)]
	return ok
}

// Len returns the number of blocked cells in the snapshot.
func (s Snapshot) Len() int { return len(s.blocked) }

func sortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].X != cells[j].X {
			return cells[i].X < cells[j].X
		}
		return cells[i].Z < cells[j].Z
	})
}
