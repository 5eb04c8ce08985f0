package search

// RunDFS runs depth-first search by direct recursion.
//
// The current cell is marked visited; the run ends successfully when it is
// the destination. Otherwise the search descends into each neighbor, in
// W, S, E, N order, that is still unvisited at the moment of descent. The
// path prefix is the parent chain, which shrinks implicitly on backtrack.
//
// Recursion depth grows with the path length; prefer RunDFSIterative on
// very large grids. Both return identical paths.
//
// Complexity: O(W·H) time, O(W·H) stack.
func (e *Engine) RunDFS() Result {
	return e.execute(DFS, func(w *walker) bool {
		return w.descend(w.src)
	})
}

// descend visits cur and recurses into its unvisited neighbors.
func (w *walker) descend(cur int) bool {
	w.visit(cur)
	if cur == w.dst {
		return w.found()
	}
	w.res.Expanded++
	for _, nb := range w.st.neighbors(cur, make([]int, 0, 4)) {
		if w.st.visited[nb] {
			continue
		}
		w.st.parent[nb] = cur
		if w.descend(nb) {
			return true
		}
	}
	return false
}

// frame is one level of the explicit depth-first stack: a cell, the
// neighbors it had when first expanded, and a cursor into them.
type frame struct {
	cell int
	nbs  [4]int
	n    int
	next int
}

// RunDFSIterative runs depth-first search on an explicit stack of frames.
// Each frame replays what a recursive call would do, so the visiting order
// and the returned path match RunDFS exactly, without recursion-depth
// limits.
//
// Complexity: O(W·H) time, O(W·H) memory.
func (e *Engine) RunDFSIterative() Result {
	return e.execute(DFSIterative, func(w *walker) bool {
		stack := make([]frame, 0, 64)
		var buf [4]int

		// push visits c and, unless it is the destination, opens a frame for it.
		push := func(c int) bool {
			w.visit(c)
			if c == w.dst {
				return true
			}
			w.res.Expanded++
			f := frame{cell: c}
			f.n = copy(f.nbs[:], w.st.neighbors(c, buf[:0]))
			stack = append(stack, f)
			return false
		}

		if push(w.src) {
			return w.found()
		}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == top.n {
				stack = stack[:len(stack)-1] // backtrack
				continue
			}
			nb := top.nbs[top.next]
			top.next++
			if w.st.visited[nb] {
				continue
			}
			w.st.parent[nb] = top.cell
			if push(nb) {
				return w.found()
			}
		}
		return false
	})
}
