package astar

// openItem is an open-set entry. Its priority is read live from the arena so
// that in-place cost updates only need heap.Fix.
type openItem struct {
	id  int    // arena id
	seq uint64 // insertion order, breaks ties
}

// openSet is a min-heap of openItem ordered by (estimated total cost, seq).
// Popping it yields the same node as a stable "first minimal" scan over an
// insertion-ordered list.
type openSet struct {
	items []openItem
	nodes *[]Node // search arena
	index *[]int  // arena id → heap slot
}

// Len returns the number of open nodes.
func (h openSet) Len() int { return len(h.items) }

// Less orders by estimated total cost, then by insertion.
func (h openSet) Less(i, j int) bool {
	fi := (*h.nodes)[h.items[i].id].EstimatedTotalCost()
	fj := (*h.nodes)[h.items[j].id].EstimatedTotalCost()
	if fi != fj {
		return fi < fj
	}
	return h.items[i].seq < h.items[j].seq
}

// Swap swaps two entries and keeps the slot index current.
func (h openSet) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	(*h.index)[h.items[i].id] = i
	(*h.index)[h.items[j].id] = j
}

// Push appends x, which must be an openItem.
func (h *openSet) Push(x interface{}) {
	it := x.(openItem)
	(*h.index)[it.id] = len(h.items)
	h.items = append(h.items, it)
}

// Pop removes and returns the last entry.
func (h *openSet) Pop() interface{} {
	old := h.items
	n := len(old)
	it := old[n-1]
	h.items = old[:n-1]
	(*h.index)[it.id] = -1

	return it
}
