package gridmap

import "math/rand"

// WithSeed creates a deterministic generator for the random wall pass.
// Use this in tests and examples to lock layouts.
func WithSeed(seed int64) Option {
	return func(c *buildConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit generator for the random wall pass.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gridmap: WithRand(nil)")
	}
	return func(c *buildConfig) {
		c.rng = r
	}
}

// WithWallCap sets the maximum number of walls placed per column by the
// random pass. Zero disables random walls. Panics on negative n.
func WithWallCap(n int) Option {
	if n < 0 {
		panic("gridmap: WithWallCap(n<0)")
	}
	return func(c *buildConfig) {
		c.wallCap = n
	}
}

// WithWallOdds sets the per-cell wall chance to 1/n (subject to the column cap).
// Panics if n < 1.
func WithWallOdds(n int) Option {
	if n < 1 {
		panic("gridmap: WithWallOdds(n<1)")
	}
	return func(c *buildConfig) {
		c.odds = n
	}
}

// WithWalls adds explicit walls after the random pass. Points outside the
// grid make Build fail with ErrOutOfRange. Source and destination are still
// forced traversable.
func WithWalls(points ...Point) Option {
	return func(c *buildConfig) {
		c.walls = append(c.walls, points...)
	}
}
