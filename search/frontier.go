package search

import "container/heap"

// frontier is the AStar open set. Selection returns the cell with minimal
// score; among equal scores the one inserted first wins, so both
// implementations pick the same cell.
type frontier interface {
	Len() int
	contains(i int) bool
	push(i int)
	popMin() int
	fix(i int) // score of an open cell changed
}

// newFrontier picks the implementation for n cells scored by score.
func newFrontier(heapBacked bool, n int, score func(int) int) frontier {
	if heapBacked {
		return newHeapFrontier(n, score)
	}
	return newListFrontier(n, score)
}

// listFrontier keeps open cells in insertion order and scans for the first
// strict minimum.
type listFrontier struct {
	cells []int
	open  []bool
	score func(int) int
}

func newListFrontier(n int, score func(int) int) *listFrontier {
	return &listFrontier{cells: make([]int, 0, 16), open: make([]bool, n), score: score}
}

func (l *listFrontier) Len() int            { return len(l.cells) }
func (l *listFrontier) contains(i int) bool { return l.open[i] }
func (l *listFrontier) fix(int)             {}

func (l *listFrontier) push(i int) {
	l.cells = append(l.cells, i)
	l.open[i] = true
}

func (l *listFrontier) popMin() int {
	best, bestF := 0, l.score(l.cells[0])
	for k := 1; k < len(l.cells); k++ {
		if f := l.score(l.cells[k]); f < bestF {
			best, bestF = k, f
		}
	}
	i := l.cells[best]
	l.cells = append(l.cells[:best], l.cells[best+1:]...)
	l.open[i] = false
	return i
}

// heapItem is one open cell with its insertion sequence number.
type heapItem struct {
	cell int
	seq  int
}

// heapFrontier is a min-heap ordered by (score, seq). A cell keeps its seq
// while its score changes in place and gets a new one when re-inserted,
// which mirrors append order in listFrontier.
type heapFrontier struct {
	items []heapItem
	pos   []int // cell → index in items, -1 when not open
	seq   int
	score func(int) int
}

func newHeapFrontier(n int, score func(int) int) *heapFrontier {
	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}
	return &heapFrontier{items: make([]heapItem, 0, 16), pos: pos, score: score}
}

// Len returns the number of items in the heap.
func (h *heapFrontier) Len() int { return len(h.items) }

// Less orders by score, then by insertion sequence.
func (h *heapFrontier) Less(a, b int) bool {
	fa, fb := h.score(h.items[a].cell), h.score(h.items[b].cell)
	if fa != fb {
		return fa < fb
	}
	return h.items[a].seq < h.items[b].seq
}

// Swap swaps two elements and keeps pos in sync.
func (h *heapFrontier) Swap(a, b int) {
	h.items[a], h.items[b] = h.items[b], h.items[a]
	h.pos[h.items[a].cell] = a
	h.pos[h.items[b].cell] = b
}

// Push is called by heap.Push; x must be a heapItem.
func (h *heapFrontier) Push(x any) {
	it := x.(heapItem)
	h.pos[it.cell] = len(h.items)
	h.items = append(h.items, it)
}

// Pop is called by heap.Pop and removes the last element.
func (h *heapFrontier) Pop() any {
	n := len(h.items)
	it := h.items[n-1]
	h.items = h.items[:n-1]
	h.pos[it.cell] = -1
	return it
}

func (h *heapFrontier) contains(i int) bool { return h.pos[i] >= 0 }

func (h *heapFrontier) push(i int) {
	heap.Push(h, heapItem{cell: i, seq: h.seq})
	h.seq++
}

func (h *heapFrontier) popMin() int {
	return heap.Pop(h).(heapItem).cell
}

func (h *heapFrontier) fix(i int) {
	if p := h.pos[i]; p >= 0 {
		heap.Fix(h, p)
	}
}
