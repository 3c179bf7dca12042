// Package observability bundles the Prometheus metrics and OpenTelemetry
// tracing used by the solver, the CLI and the HTTP server.
package observability

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
)

// Run outcomes used as the "outcome" label of lvlarea_runs_total.
const (
	OutcomeFound      = "found"
	OutcomeNoFinite   = "no_finite_region"
	OutcomeEmptyInput = "empty_input"
	OutcomeError      = "error"
)

// SolverCollector bundles Prometheus metrics describing region sweeps.
type SolverCollector struct {
	gatherer prometheus.Gatherer

	Runs          *prometheus.CounterVec
	CellsSwept    prometheus.Counter
	TieCells      prometheus.Counter
	SweepDuration prometheus.Histogram
	LargestArea   prometheus.Gauge
	PointCount    prometheus.Gauge
}

// RunStats is what one sweep reports to the collector.
type RunStats struct {
	Outcome  string
	Points   int
	Cells    uint64
	Ties     uint64
	Area     uint64
	Duration time.Duration
}

// NewSolverCollector registers the solver metrics against reg, defaulting to
// the global Prometheus registry when nil. Registering twice against the same
// registry reuses the existing collectors.
func NewSolverCollector(reg prometheus.Registerer) (*SolverCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	runs, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lvlarea_runs_total",
		Help: "Total number of region sweeps, labeled by outcome.",
	}, []string{"outcome"}), "lvlarea_runs_total")
	if err != nil {
		return nil, err
	}
	cells, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "lvlarea_cells_swept_total",
		Help: "Total number of grid cells resolved across all sweeps.",
	}), "lvlarea_cells_swept_total")
	if err != nil {
		return nil, err
	}
	ties, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "lvlarea_tie_cells_total",
		Help: "Total number of cells equidistant from two or more points.",
	}), "lvlarea_tie_cells_total")
	if err != nil {
		return nil, err
	}
	duration, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "lvlarea_sweep_duration_seconds",
		Help:    "Region sweep latency in seconds.",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}), "lvlarea_sweep_duration_seconds")
	if err != nil {
		return nil, err
	}
	largest, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "lvlarea_last_largest_area",
		Help: "Largest finite area of the most recent successful sweep.",
	}), "lvlarea_last_largest_area")
	if err != nil {
		return nil, err
	}
	points, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "lvlarea_last_point_count",
		Help: "Number of input points in the most recent sweep.",
	}), "lvlarea_last_point_count")
	if err != nil {
		return nil, err
	}

	return &SolverCollector{
		gatherer:      gatherer,
		Runs:          runs,
		CellsSwept:    cells,
		TieCells:      ties,
		SweepDuration: duration,
		LargestArea:   largest,
		PointCount:    points,
	}, nil
}

// ObserveRun records one sweep. A nil collector ignores the call.
func (c *SolverCollector) ObserveRun(s RunStats) {
	if c == nil {
		return
	}
	c.Runs.WithLabelValues(s.Outcome).Inc()
	c.PointCount.Set(float64(s.Points))
	if s.Outcome == OutcomeEmptyInput || s.Outcome == OutcomeError {
		return
	}
	c.CellsSwept.Add(float64(s.Cells))
	c.TieCells.Add(float64(s.Ties))
	c.SweepDuration.Observe(s.Duration.Seconds())
	if s.Outcome == OutcomeFound {
		c.LargestArea.Set(float64(s.Area))
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *SolverCollector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// WriteText dumps every gathered metric family in the Prometheus text format.
func (c *SolverCollector) WriteText(w io.Writer) error {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
