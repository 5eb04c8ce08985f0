// Package pathtrack - route validation.
//
// Validate checks, in order:
//   - non-empty;
//   - starts at the topology source and ends at its destination;
//   - every step in bounds and traversable;
//   - consecutive steps 4-adjacent;
//   - no cell visited twice.
//
// Design:
//   - No logging, no panics on user input; only sentinel errors from types.go,
//     wrapped with the offending position.
//   - O(n) time, O(W·H) bitmap for repeat detection.
package pathtrack

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Validate reports whether path is a well-formed route on t.
// Returns nil if valid; otherwise the first violated rule, wrapped with the
// step index and coordinate.
//
// Complexity: O(len(path)) time, O(W·H) space.
func Validate(t *gridmap.Topology, path []gridmap.Point) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	if first := path[0]; first != t.Source() {
		return fmt.Errorf("%w: starts at %v, source is %v", ErrEndpointMismatch, first, t.Source())
	}
	if last := path[len(path)-1]; last != t.Destination() {
		return fmt.Errorf("%w: ends at %v, destination is %v", ErrEndpointMismatch, last, t.Destination())
	}

	seen := make([]bool, t.Size())
	for i, p := range path {
		if !t.InBounds(p) {
			return fmt.Errorf("%w: step %d at %v", ErrOutOfBounds, i, p)
		}
		if t.Wall(p) {
			return fmt.Errorf("%w: step %d at %v", ErrWallOnPath, i, p)
		}
		if i > 0 && path[i-1].Manhattan(p) != 1 {
			return fmt.Errorf("%w: step %d %v -> %v", ErrNotAdjacent, i, path[i-1], p)
		}
		idx := t.Index(p)
		if seen[idx] {
			return fmt.Errorf("%w: step %d at %v", ErrRepeatedCell, i, p)
		}
		seen[idx] = true
	}
	return nil
}
