package search

import (
	"github.com/zyedidia/generic/mapset"
)

// RunAStar runs best-first search ordered by g+h.
//
// The open set starts with the source (g=0). Each step selects the open cell
// with minimal g+h, ties going to the cell that entered the open set first.
// The destination ends the run and the path is rebuilt from parent links.
// Otherwise the cell moves to the closed set and each unvisited neighbor is
// relaxed with candidate cost g+1:
//
//   - open with g ≤ candidate: skipped
//   - closed with g ≤ candidate: skipped; otherwise moved back to open
//   - unseen: h is computed and the cell joins the open set
//
// Relaxed neighbors take the candidate g, the current cell as parent, and
// are marked visited.
//
// With the default SquaredEuclidean heuristic the estimate is not admissible:
// a found path is valid but not necessarily shortest.
//
// Complexity: O((W·H)²) with the linear scan, O(W·H·log(W·H)) with
// WithHeapFrontier.
func (e *Engine) RunAStar() Result {
	return e.execute(AStar, func(w *walker) bool {
		st := w.st
		h := e.opts.Heuristic
		dst := e.topo.Destination()
		score := func(i int) int { return st.g[i] + st.h[i] }

		open := newFrontier(e.opts.HeapFrontier, e.topo.Size(), score)
		closed := mapset.New[int]()

		st.g[w.src] = 0
		st.h[w.src] = h(e.topo.Source(), dst)
		open.push(w.src)
		buf := make([]int, 0, 4)

		for open.Len() > 0 {
			cur := open.popMin()
			w.visit(cur)
			if cur == w.dst {
				return w.found()
			}
			closed.Put(cur)
			w.res.Expanded++

			candidate := st.g[cur] + 1
			buf = st.neighbors(cur, buf[:0])
			for _, nb := range buf {
				inOpen := open.contains(nb)
				inClosed := !inOpen && closed.Has(nb)
				if (inOpen || inClosed) && st.g[nb] <= candidate {
					continue
				}
				if !inOpen && !inClosed {
					st.h[nb] = h(e.topo.Point(nb), dst)
				}
				st.g[nb] = candidate
				st.parent[nb] = cur
				switch {
				case inOpen:
					open.fix(nb)
				case inClosed:
					closed.Remove(nb)
					open.push(nb)
				default:
					open.push(nb)
				}
				w.visit(nb)
			}
		}
		return false
	})
}
