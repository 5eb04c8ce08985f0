package search

// RunBFS runs breadth-first search from the source.
//
// The queue is seeded with the source. Each dequeued cell is marked visited
// and compared with the destination; otherwise every unvisited neighbor is
// marked visited at once (so it is never enqueued twice), linked to its
// prefix through the parent table, and enqueued. FIFO order processes cells
// in non-decreasing depth, so a found path is shortest in edge count.
//
// Complexity: O(W·H) time, O(W·H) memory.
func (e *Engine) RunBFS() Result {
	return e.execute(BFS, func(w *walker) bool {
		queue := make([]int, 0, e.topo.Size())
		queue = append(queue, w.src)
		buf := make([]int, 0, 4)

		for head := 0; head < len(queue); head++ {
			cur := queue[head]
			w.visit(cur)
			if cur == w.dst {
				return w.found()
			}
			w.res.Expanded++
			buf = w.st.neighbors(cur, buf[:0])
			for _, nb := range buf {
				w.st.parent[nb] = cur
				w.visit(nb)
				queue = append(queue, nb)
			}
		}
		return false
	})
}
