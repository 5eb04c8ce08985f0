package search

import "github.com/katalvlaran/gridpath/gridmap"

// noParent marks a cell without a predecessor.
const noParent = -1

// Cell is a read-only view of one grid location together with the
// bookkeeping of the current run. Parent is meaningful only when HasParent
// is true; it names a coordinate and never owns the predecessor.
type Cell struct {
	gridmap.Point
	Traversable bool
	Visited     bool
	G, H        int
	Parent      gridmap.Point
	HasParent   bool
}

// State is the per-run mutable table of a search, keyed by row-major cell
// index. The immutable topology stays in gridmap.Topology; a State belongs
// to exactly one Engine.
type State struct {
	topo    *gridmap.Topology
	visited []bool
	g, h    []int
	parent  []int
}

// newState allocates a State for t and resets it.
func newState(t *gridmap.Topology) *State {
	n := t.Size()
	s := &State{
		topo:    t,
		visited: make([]bool, n),
		g:       make([]int, n),
		h:       make([]int, n),
		parent:  make([]int, n),
	}
	s.reset()
	return s
}

// reset restores post-construction bookkeeping: walls visited, everything
// else unvisited with zero costs and no parent. Endpoints are traversable,
// so they always come out unvisited.
func (s *State) reset() {
	for i := range s.visited {
		s.visited[i] = s.topo.Wall(s.topo.Point(i))
		s.g[i] = 0
		s.h[i] = 0
		s.parent[i] = noParent
	}
}

// neighbors appends to buf the unvisited in-bounds orthogonal neighbors of
// cell i, in W, S, E, N order. Walls are excluded because reset marks them
// visited.
func (s *State) neighbors(i int, buf []int) []int {
	p := s.topo.Point(i)
	for _, d := range gridmap.Offsets() {
		q := p.Add(d)
		if !s.topo.InBounds(q) {
			continue
		}
		if j := s.topo.Index(q); !s.visited[j] {
			buf = append(buf, j)
		}
	}
	return buf
}

// Topology returns the grid this state belongs to.
func (s *State) Topology() *gridmap.Topology { return s.topo }

// Visited reports whether p has been marked visited (walls always are).
// Out-of-range points report true.
func (s *State) Visited(p gridmap.Point) bool {
	if !s.topo.InBounds(p) {
		return true
	}
	return s.visited[s.topo.Index(p)]
}

// Neighbors returns the unvisited in-bounds orthogonal neighbors of p in
// W, S, E, N order.
func (s *State) Neighbors(p gridmap.Point) []gridmap.Point {
	if !s.topo.InBounds(p) {
		return nil
	}
	idx := s.neighbors(s.topo.Index(p), make([]int, 0, 4))
	out := make([]gridmap.Point, len(idx))
	for k, i := range idx {
		out[k] = s.topo.Point(i)
	}
	return out
}

// Cell returns a snapshot of p. The second result is false when p lies
// outside the grid.
func (s *State) Cell(p gridmap.Point) (Cell, bool) {
	if !s.topo.InBounds(p) {
		return Cell{}, false
	}
	i := s.topo.Index(p)
	c := Cell{
		Point:       p,
		Traversable: s.topo.Traversable(p),
		Visited:     s.visited[i],
		G:           s.g[i],
		H:           s.h[i],
	}
	if pi := s.parent[i]; pi != noParent {
		c.Parent = s.topo.Point(pi)
		c.HasParent = true
	}
	return c, true
}

// VisitedCount returns the number of visited traversable cells.
func (s *State) VisitedCount() int {
	n := 0
	for i, v := range s.visited {
		if v && !s.topo.Wall(s.topo.Point(i)) {
			n++
		}
	}
	return n
}

// pathTo rebuilds the route ending at dst by following parent links back to
// src, then reverses it. Returns nil if the chain breaks or loops.
func (s *State) pathTo(src, dst int) []gridmap.Point {
	var rev []gridmap.Point
	for cur, steps := dst, 0; ; steps++ {
		if steps > len(s.parent) {
			return nil
		}
		rev = append(rev, s.topo.Point(cur))
		if cur == src {
			break
		}
		cur = s.parent[cur]
		if cur == noParent {
			return nil
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
