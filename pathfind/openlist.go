package pathfind

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/gridmap"
)

// openItem is one frontier entry: a discovered cell with its accumulated
// cost-so-far (g), heuristic estimate (h, zero when unused), and an
// insertion sequence number for stable tie-breaking.
type openItem struct {
	cell  gridmap.Cell
	g     int64  // accumulated cost from the start
	h     int64  // heuristic estimate to the goal (0 in uninformed mode)
	seq   uint64 // monotonically increasing insertion order
	index int    // heap index, maintained by Swap
}

// rank is the open-list ordering key: cost-so-far plus heuristic.
func (it *openItem) rank() int64 { return it.g + it.h }

// openHeap implements heap.Interface over *openItem, ordered by rank
// ascending with FIFO tie-breaking on seq. Lower seq means inserted
// earlier, so equal-rank candidates keep their first-found order.
type openHeap []*openItem

// Len returns the number of items in the heap.
func (h openHeap) Len() int { return len(h) }

// Less orders by rank ascending, then by insertion sequence ascending.
func (h openHeap) Less(i, j int) bool {
	if h[i].rank() != h[j].rank() {
		return h[i].rank() < h[j].rank()
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two elements and keeps their heap indices current.
func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push adds a new element x onto the heap. Called by heap.Push.
func (h *openHeap) Push(x any) {
	it := x.(*openItem)
	it.index = len(*h)
	*h = append(*h, it)
}

// Pop removes and returns the last element. Called by heap.Pop.
func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return it
}

// openList is the search frontier: an indexed min-heap holding at most one
// entry per cell. The cell index enables the decrease-key replacement the
// goal-directed engine needs, without lazy duplicate entries.
type openList struct {
	items  openHeap
	byCell map[gridmap.Cell]*openItem
	seq    uint64
}

// newOpenList returns an empty frontier with the given initial capacity.
func newOpenList(capacity int) *openList {
	return &openList{
		items:  make(openHeap, 0, capacity),
		byCell: make(map[gridmap.Cell]*openItem, capacity),
	}
}

// Empty reports whether the frontier holds no entries.
func (ol *openList) Empty() bool { return len(ol.items) == 0 }

// Len returns the number of frontier entries.
func (ol *openList) Len() int { return len(ol.items) }

// Get returns the open entry for c, if any.
func (ol *openList) Get(c gridmap.Cell) (*openItem, bool) {
	it, ok := ol.byCell[c]

	return it, ok
}

// PushCell inserts a new entry for c. The cell must not already be open;
// use Update for decrease-key replacement.
func (ol *openList) PushCell(c gridmap.Cell, g, h int64) {
	it := &openItem{cell: c, g: g, h: h, seq: ol.seq}
	ol.seq++
	ol.byCell[c] = it
	heap.Push(&ol.items, it)
}

// Update replaces an existing entry's costs with strictly better ones and
// restores heap order. The entry receives a fresh sequence number: a
// replaced candidate counts as newly inserted among equal ranks, matching
// remove-and-reinsert semantics.
func (ol *openList) Update(it *openItem, g, h int64) {
	it.g = g
	it.h = h
	it.seq = ol.seq
	ol.seq++
	heap.Fix(&ol.items, it.index)
}

// PopMin removes and returns the minimum-ranked entry.
func (ol *openList) PopMin() *openItem {
	it := heap.Pop(&ol.items).(*openItem)
	delete(ol.byCell, it.cell)

	return it
}
