// Package gridmap defines core types, options, and sentinel errors
// for the gridmap subpackage of github.com/katalvlaran/gridpath.
package gridmap

import (
	"errors"
	"math/rand"
)

// Sentinel errors for gridmap operations.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("gridmap: width and height must be positive")
	// ErrOutOfRange indicates a coordinate outside [0,width) × [0,height).
	ErrOutOfRange = errors.New("gridmap: coordinate out of range")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
	// ErrBadGlyph indicates an unknown character in a textual layout.
	ErrBadGlyph = errors.New("gridmap: unknown layout glyph")
	// ErrEndpoints indicates a layout without exactly one source and one destination.
	ErrEndpoints = errors.New("gridmap: layout needs exactly one source and one destination")
)

// Layout glyphs used by FromRows and Topology.String.
const (
	GlyphOpen        = '.'
	GlyphWall        = '#'
	GlyphSource      = 'S'
	GlyphDestination = 'D'
)

// Default random wall generation parameters.
const (
	// DefaultWallOdds: one draw in [0,5) per cell, a wall when the draw is 0.
	DefaultWallOdds = 5
	// wallCapAuto resolves to width/3 walls per column at build time.
	wallCapAuto = -1
)

// Point is a cell coordinate. X is the column, Y is the row.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Manhattan returns the 4-connected step distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// offsets4 lists orthogonal moves in fixed enumeration order: west, south, east, north.
// Every traversal in this module generates neighbors in this order.
var offsets4 = [4]Point{{X: -1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}}

// Offsets returns the 4-connectivity offsets in enumeration order (W, S, E, N).
func Offsets() [4]Point {
	return offsets4
}

// Option configures Build via functional arguments.
type Option func(*buildConfig)

// buildConfig aggregates the knobs used by Build.
type buildConfig struct {
	rng     *rand.Rand // nil → seeded from the clock at build time
	wallCap int        // per-column wall limit; wallCapAuto → width/3
	odds    int        // one random draw in [0,odds) per cell
	walls   []Point    // explicit walls applied after the random pass
}

func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		rng:     nil,
		wallCap: wallCapAuto,
		odds:    DefaultWallOdds,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Topology is an immutable rectangular obstacle grid with one source and one
// destination. Walls are fixed at construction; a Topology may be shared by
// any number of concurrent searches.
type Topology struct {
	width, height int
	walls         []bool // row-major, len = width*height
	wallCount     int
	source        Point
	destination   Point
}
