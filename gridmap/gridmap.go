// Package gridmap provides the immutable obstacle grid searched by package
// search. It supports:
//
//   - Random per-column wall generation with a reproducible seed
//   - Explicit wall placement and ASCII layouts
//   - Four-connectivity in a fixed W, S, E, N enumeration order
//   - Flood-fill connectivity queries over traversable cells
//
// Source and destination are always traversable.
package gridmap

import (
	"fmt"
	"math/rand"
	"time"
)

// Build constructs a width×height Topology with the given source and destination.
// Walls are drawn column by column: every cell consumes one random draw in
// [0,odds) and becomes a wall when the draw is 0, as long as fewer than the
// per-column cap (width/3 by default) were placed in that column. Explicit
// walls from WithWalls follow, then source and destination are forced
// traversable.
//
// Returns ErrBadDimensions for non-positive sizes and ErrOutOfRange for any
// endpoint or explicit wall outside the grid.
// Complexity: O(W×H) time and memory.
func Build(width, height int, source, destination Point, opts ...Option) (*Topology, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	cfg := newBuildConfig(opts...)

	t := &Topology{
		width:       width,
		height:      height,
		walls:       make([]bool, width*height),
		source:      source,
		destination: destination,
	}
	if !t.InBounds(source) {
		return nil, fmt.Errorf("%w: source %v in %dx%d grid", ErrOutOfRange, source, width, height)
	}
	if !t.InBounds(destination) {
		return nil, fmt.Errorf("%w: destination %v in %dx%d grid", ErrOutOfRange, destination, width, height)
	}

	wallCap := cfg.wallCap
	if wallCap == wallCapAuto {
		wallCap = width / 3
	}
	if wallCap > 0 {
		rng := cfg.rng
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		t.scatterWalls(rng, wallCap, cfg.odds)
	}

	for _, p := range cfg.walls {
		if !t.InBounds(p) {
			return nil, fmt.Errorf("%w: wall %v in %dx%d grid", ErrOutOfRange, p, width, height)
		}
		t.walls[t.Index(p)] = true
	}

	// endpoints override any wall decision
	t.walls[t.Index(source)] = false
	t.walls[t.Index(destination)] = false
	t.countWalls()

	return t, nil
}

// scatterWalls runs the random pass. The cap applies per column scan, not globally.
func (t *Topology) scatterWalls(rng *rand.Rand, wallCap, odds int) {
	for x := 0; x < t.width; x++ {
		placed := 0
		for y := 0; y < t.height; y++ {
			roll := rng.Intn(odds)
			if roll == 0 && placed < wallCap {
				placed++
				t.walls[y*t.width+x] = true
			}
		}
	}
}

func (t *Topology) countWalls() {
	t.wallCount = 0
	for _, w := range t.walls {
		if w {
			t.wallCount++
		}
	}
}

// Width returns the number of columns.
func (t *Topology) Width() int { return t.width }

// Height returns the number of rows.
func (t *Topology) Height() int { return t.height }

// Size returns the number of cells (Width×Height).
func (t *Topology) Size() int { return t.width * t.height }

// Source returns the designated start cell.
func (t *Topology) Source() Point { return t.source }

// Destination returns the designated goal cell.
func (t *Topology) Destination() Point { return t.destination }

// Walls returns the number of wall cells.
func (t *Topology) Walls() int { return t.wallCount }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (t *Topology) InBounds(p Point) bool {
	return p.X >= 0 && p.X < t.width && p.Y >= 0 && p.Y < t.height
}

// Wall reports whether p is a wall. Out-of-range points report true.
func (t *Topology) Wall(p Point) bool {
	if !t.InBounds(p) {
		return true
	}
	return t.walls[t.Index(p)]
}

// Traversable reports whether p is an in-bounds, non-wall cell.
func (t *Topology) Traversable(p Point) bool {
	return !t.Wall(p)
}

// Index maps p to a row-major index: y*Width + x. p must be in bounds.
// Complexity: O(1).
func (t *Topology) Index(p Point) int {
	return p.Y*t.width + p.X
}

// Point converts a row-major index back to its coordinate.
// Complexity: O(1).
func (t *Topology) Point(idx int) Point {
	return Point{X: idx % t.width, Y: idx / t.width}
}

// Adjacent returns the in-bounds orthogonal neighbors of p in W, S, E, N
// order, walls included. Filtering by traversal state is the caller's job.
func (t *Topology) Adjacent(p Point) []Point {
	out := make([]Point, 0, len(offsets4))
	for _, d := range offsets4 {
		if q := p.Add(d); t.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}
