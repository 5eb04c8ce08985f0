package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Engine binds one Topology and its (source, destination) pair and owns the
// per-run State. Runs are synchronous and an Engine is not safe for
// concurrent use; give each goroutine its own Engine over a shared Topology.
type Engine struct {
	topo  *gridmap.Topology
	src   int
	dst   int
	state *State
	opts  Options
}

// NewEngine creates an Engine over t with a fresh State.
// Returns ErrNilTopology if t is nil.
func NewEngine(t *gridmap.Topology, opts ...Option) (*Engine, error) {
	if t == nil {
		return nil, ErrNilTopology
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		topo:  t,
		src:   t.Index(t.Source()),
		dst:   t.Index(t.Destination()),
		state: newState(t),
		opts:  o,
	}, nil
}

// SetVisitCallback replaces the visit callback; nil disables it.
func (e *Engine) SetVisitCallback(fn func(p gridmap.Point)) {
	e.opts.OnVisit = fn
}

// Topology returns the grid the engine is bound to.
func (e *Engine) Topology() *gridmap.Topology { return e.topo }

// State exposes the per-run bookkeeping for inspection.
func (e *Engine) State() *State { return e.state }

// Reset restores the State to its post-construction form. Call it between
// independent runs; without it a run continues on cells left visited by the
// previous one.
func (e *Engine) Reset() {
	e.state.reset()
}

// Run dispatches to the run operation for s.
// Returns ErrUnknownStrategy for values outside the Strategy constants.
func (e *Engine) Run(s Strategy) (Result, error) {
	switch s {
	case BFS:
		return e.RunBFS(), nil
	case DFS:
		return e.RunDFS(), nil
	case DFSIterative:
		return e.RunDFSIterative(), nil
	case AStar:
		return e.RunAStar(), nil
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
}

// walker carries the mutable state of a single run.
type walker struct {
	st       *State
	src, dst int
	onVisit  func(gridmap.Point)
	res      Result
}

// visit marks cell i visited and fires OnVisit. Already visited cells are
// left untouched so every cell is reported at most once per run.
func (w *walker) visit(i int) {
	if w.st.visited[i] {
		return
	}
	w.st.visited[i] = true
	w.res.Visited++
	if w.onVisit != nil {
		w.onVisit(w.st.topo.Point(i))
	}
}

// found records the path ending at the destination.
func (w *walker) found() bool {
	w.res.Found = true
	w.res.Path = w.st.pathTo(w.src, w.dst)
	return true
}

// execute wraps one strategy body with logging, timing and observation.
func (e *Engine) execute(s Strategy, body func(w *walker) bool) Result {
	w := &walker{
		st:      e.state,
		src:     e.src,
		dst:     e.dst,
		onVisit: e.opts.OnVisit,
		res:     Result{Strategy: s, RunID: uuid.New()},
	}
	log := e.opts.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("run_id", w.res.RunID.String()), slog.String("strategy", s.String()))
	log.LogAttrs(context.Background(), slog.LevelDebug, "search started",
		slog.Any("source", e.topo.Source()),
		slog.Any("destination", e.topo.Destination()))

	start := time.Now()
	if !body(w) {
		w.res.Found = false
		w.res.Path = nil
	}
	elapsed := time.Since(start)

	log.LogAttrs(context.Background(), slog.LevelDebug, "search finished",
		slog.Bool("found", w.res.Found),
		slog.Int("path_cells", len(w.res.Path)),
		slog.Int("visited", w.res.Visited),
		slog.Int("expanded", w.res.Expanded),
		slog.Duration("duration", elapsed))

	if e.opts.Observer != nil {
		e.opts.Observer.ObserveRun(s, w.res, elapsed)
	}
	return w.res
}
