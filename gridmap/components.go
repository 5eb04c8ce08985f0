package gridmap

// Components finds all 4-connected regions (“islands”) of traversable cells.
// Returns a slice of components; each component lists its cells in BFS
// discovery order, and components appear in row-major order of their first cell.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for seen flags and output.
func (t *Topology) Components() [][]Point {
	seen := make([]bool, t.Size())
	var comps [][]Point

	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			i0 := y*t.width + x
			if t.walls[i0] || seen[i0] {
				continue
			}
			comps = append(comps, t.flood(i0, seen, func(p Point) bool { return true }))
		}
	}
	return comps
}

// Connected reports whether b is reachable from a through 4-connected,
// traversable cells for which open returns true. The endpoints themselves
// must be traversable but are not tested against open. A nil open admits
// every traversable cell.
//
// Time:   O(W·H·4) worst case.
// Memory: O(W·H).
func (t *Topology) Connected(a, b Point, open func(Point) bool) bool {
	if !t.Traversable(a) || !t.Traversable(b) {
		return false
	}
	if a == b {
		return true
	}
	if open == nil {
		open = func(Point) bool { return true }
	}
	target := t.Index(b)
	admit := func(p Point) bool {
		return t.Index(p) == target || open(p)
	}
	seen := make([]bool, t.Size())
	for _, p := range t.flood(t.Index(a), seen, admit) {
		if p == b {
			return true
		}
	}
	return false
}

// flood collects the region reachable from start over traversable cells
// accepted by admit, marking them in seen.
func (t *Topology) flood(start int, seen []bool, admit func(Point) bool) []Point {
	queue := []int{start}
	seen[start] = true
	var comp []Point

	for qi := 0; qi < len(queue); qi++ {
		u := t.Point(queue[qi])
		comp = append(comp, u)
		for _, d := range offsets4 {
			v := u.Add(d)
			if !t.InBounds(v) {
				continue
			}
			vi := t.Index(v)
			if seen[vi] || t.walls[vi] || !admit(v) {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}
	return comp
}
