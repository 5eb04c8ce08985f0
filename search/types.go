// Package search provides tunable options, result types and error
// definitions for route finding over a gridmap.Topology.
package search

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Sentinel errors for search execution.
var (
	// ErrNilTopology is returned when a nil topology is passed to NewEngine.
	ErrNilTopology = errors.New("search: topology is nil")

	// ErrUnknownStrategy is returned for an unrecognised Strategy value or name.
	ErrUnknownStrategy = errors.New("search: unknown strategy")
)

// Strategy selects one of the traversal algorithms.
type Strategy int

const (
	// BFS is breadth-first search; shortest path in edge count.
	BFS Strategy = iota
	// DFS is recursive depth-first search.
	DFS
	// DFSIterative is depth-first search on an explicit frame stack.
	DFSIterative
	// AStar is best-first search ordered by g+h.
	AStar
)

var strategyNames = [...]string{
	BFS:          "bfs",
	DFS:          "dfs",
	DFSIterative: "dfs-iterative",
	AStar:        "astar",
}

// String returns the canonical lower-case name.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// Strategies lists every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{BFS, DFS, DFSIterative, AStar}
}

// ParseStrategy maps a name (case-insensitive; "a*" and "dfs_iterative"
// accepted) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "a*", "a-star":
		return AStar, nil
	case "dfs_iterative", "dfsiterative":
		return DFSIterative, nil
	}
	for i, s := range strategyNames {
		if s == n {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Heuristic estimates the remaining cost from a cell to the destination.
type Heuristic func(from, to gridmap.Point) int

// Observer receives a summary after every run. Implementations must not
// retain or modify res.Path.
type Observer interface {
	ObserveRun(strategy Strategy, res Result, elapsed time.Duration)
}

// Option configures an Engine via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize search execution.
type Options struct {
	// OnVisit is called synchronously right after a cell is marked visited.
	// It must not block for long; the engine ignores it otherwise.
	OnVisit func(p gridmap.Point)

	// Heuristic guides AStar. Defaults to SquaredEuclidean.
	Heuristic Heuristic

	// HeapFrontier backs the AStar open set with a binary heap keyed by
	// (g+h, insertion sequence) instead of a linear scan.
	HeapFrontier bool

	// Logger receives debug-level run logs. Nil means slog.Default().
	Logger *slog.Logger

	// Observer, if non-nil, is notified after each run.
	Observer Observer
}

// DefaultOptions returns Options with:
//   - no visit callback
//   - SquaredEuclidean heuristic
//   - linear-scan open set
//   - default logger, no observer
func DefaultOptions() Options {
	return Options{
		OnVisit:      nil,
		Heuristic:    SquaredEuclidean,
		HeapFrontier: false,
		Logger:       nil,
		Observer:     nil,
	}
}

// WithOnVisit registers a callback invoked once per visited cell.
func WithOnVisit(fn func(p gridmap.Point)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithHeuristic replaces the AStar heuristic. Passing nil keeps the default.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithHeapFrontier switches the AStar open set to a stable binary heap.
// Paths are identical to the linear scan; large open sets select faster.
func WithHeapFrontier() Option {
	return func(o *Options) {
		o.HeapFrontier = true
	}
}

// WithLogger sets the structured logger used for run diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithObserver installs a per-run observer (see package metrics).
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// Result holds the outcome of one run:
//   - Found: whether the destination was reached; check before using Path.
//   - Path: source → destination inclusive, nil when not found.
//   - Visited: cells marked visited by this run.
//   - Expanded: cells whose neighbors were generated.
type Result struct {
	Strategy Strategy
	RunID    uuid.UUID
	Found    bool
	Path     []gridmap.Point
	Visited  int
	Expanded int
}

// Edges returns the path length in steps, or 0 when nothing was found.
func (r Result) Edges() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}
