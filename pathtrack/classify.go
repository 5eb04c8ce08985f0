package pathtrack

import "github.com/katalvlaran/gridpath/gridmap"

// Classify tags every cell of path with its Role: the first and the last
// cell are Endpoint, all others Interior. A one-cell path yields a single
// Endpoint. Empty input yields an empty, non-nil result.
// The input is not modified.
//
// Complexity: O(len(path)).
func Classify(path []gridmap.Point) []Step {
	steps := make([]Step, len(path))
	last := len(path) - 1
	for i, p := range path {
		steps[i] = Step{Point: p, Role: Interior}
		if i == 0 || i == last {
			steps[i].Role = Endpoint
		}
	}
	return steps
}

// Points strips roles and returns the underlying coordinates.
func Points(steps []Step) []gridmap.Point {
	out := make([]gridmap.Point, len(steps))
	for i, s := range steps {
		out[i] = s.Point
	}
	return out
}
