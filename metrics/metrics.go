// Package metrics exports per-run search statistics as Prometheus metrics.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gridpath/search"
)

// Result label values for gridpath_search_runs_total.
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
)

// Recorder implements search.Observer on top of a set of Prometheus
// collectors. It is safe for concurrent use by several engines.
type Recorder struct {
	runs     *prometheus.CounterVec
	visited  *prometheus.HistogramVec
	pathLen  *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

var _ search.Observer = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them with reg.
// Registering twice on the same registry fails with the registry's error.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		// runs counts searches by strategy and outcome
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_search_runs_total",
			Help: "Total search runs by strategy and result",
		}, []string{"strategy", "result"}),

		visited: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_search_visited_cells",
			Help:    "Cells marked visited per run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k cells
		}, []string{"strategy"}),

		// pathLen is observed for found runs only
		pathLen: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_search_path_length",
			Help:    "Cells on the found path",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		}, []string{"strategy"}),

		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Search run duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
		}, []string{"strategy"}),
	}

	for _, c := range []prometheus.Collector{r.runs, r.visited, r.pathLen, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}
	return r, nil
}

// ObserveRun records one finished run.
func (r *Recorder) ObserveRun(strategy search.Strategy, res search.Result, elapsed time.Duration) {
	name := strategy.String()
	outcome := ResultNotFound
	if res.Found {
		outcome = ResultFound
		r.pathLen.WithLabelValues(name).Observe(float64(len(res.Path)))
	}
	r.runs.WithLabelValues(name, outcome).Inc()
	r.visited.WithLabelValues(name).Observe(float64(res.Visited))
	r.duration.WithLabelValues(name).Observe(elapsed.Seconds())
}

// WriteTextfile dumps every metric gathered by g to path in the text
// exposition format, for runs that end before anything could scrape them.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
