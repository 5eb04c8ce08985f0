package search

import "github.com/katalvlaran/gridpath/gridmap"

// SquaredEuclidean returns dx²+dy². It overestimates the 4-connected step
// distance, so AStar guided by it returns a path but not necessarily the
// shortest one.
func SquaredEuclidean(from, to gridmap.Point) int {
	dx, dy := to.X-from.X, to.Y-from.Y
	return dx*dx + dy*dy
}

// Manhattan returns |dx|+|dy|, the exact step distance on an open grid.
// It never overestimates, so AStar guided by it returns shortest paths.
func Manhattan(from, to gridmap.Point) int {
	return from.Manhattan(to)
}
