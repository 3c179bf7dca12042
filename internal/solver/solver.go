// Package solver runs region sweeps on behalf of the CLI and the HTTP server,
// adding run ids, structured logs, Prometheus metrics and trace spans around
// the pure computation in package region.
package solver

import (
	"context"
	"errors"
	"runtime"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvlarea/geom"
	"github.com/katalvlaran/lvlarea/internal/config"
	"github.com/katalvlaran/lvlarea/internal/logging"
	"github.com/katalvlaran/lvlarea/internal/observability"
	"github.com/katalvlaran/lvlarea/region"
)

// Solver is safe for concurrent use; it holds no per-run state.
type Solver struct {
	log     logging.Logger
	metrics *observability.SolverCollector
	tracer  trace.Tracer
	workers int
	padding int
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics records every run in c.
func WithMetrics(c *observability.SolverCollector) Option {
	return func(s *Solver) {
		s.metrics = c
	}
}

// WithTracer overrides the tracer; the default is observability.Tracer().
func WithTracer(t trace.Tracer) Option {
	return func(s *Solver) {
		if t != nil {
			s.tracer = t
		}
	}
}

// New builds a Solver from cfg. Workers == 0 means one worker per CPU.
func New(cfg config.SolverConfig, opts ...Option) *Solver {
	s := &Solver{
		log:     logging.Noop(),
		tracer:  observability.Tracer(),
		workers: cfg.Workers,
		padding: cfg.Padding,
	}
	if s.workers <= 0 {
		s.workers = runtime.NumCPU()
	}
	if s.padding < 0 {
		s.padding = 0
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Padding is the number of cells each sweep grows the bounding box by.
func (s *Solver) Padding() int {
	return s.padding
}

// Report describes one finished run.
type Report struct {
	RunID string

	// Found is false when every region touches the box perimeter.
	Found bool
	Area  uint64
	Owner geom.Coordinate

	Points         int
	Box            geom.Box
	Cells          uint64
	TieCells       uint64
	FiniteOwners   int
	InfiniteOwners int
	Duration       time.Duration

	// Analysis is the full sweep result for renderers.
	Analysis *region.Analysis
}

// Solve sweeps points and reports the largest finite region. "No finite
// region" is a normal outcome (Found == false, nil error); an empty point set
// fails with geom.ErrEmptyInput. extra options are applied after the
// configured workers and padding.
func (s *Solver) Solve(ctx context.Context, points []geom.Coordinate, extra ...region.Option) (*Report, error) {
	ctx, log := logging.WithRunLogger(ctx, s.log)
	runID := logging.RunIDFromContext(ctx)

	ctx, span := s.tracer.Start(ctx, "region.sweep", trace.WithAttributes(
		attribute.String("run_id", runID),
		attribute.Int("points", len(points)),
		attribute.Int("workers", s.workers),
		attribute.Int("padding", s.padding),
	))
	defer span.End()

	opts := []region.Option{
		region.WithContext(ctx),
		region.WithWorkers(s.workers),
		region.WithPadding(s.padding),
	}
	opts = append(opts, extra...)

	start := time.Now()
	a, err := region.Sweep(points, opts...)
	elapsed := time.Since(start)
	if err != nil {
		outcome := observability.OutcomeError
		if errors.Is(err, geom.ErrEmptyInput) {
			outcome = observability.OutcomeEmptyInput
		}
		s.metrics.ObserveRun(observability.RunStats{Outcome: outcome, Points: len(points), Duration: elapsed})
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn(ctx, "sweep failed", logging.Int("points", len(points)), logging.Err(err))
		return nil, err
	}

	rep := &Report{
		RunID:          runID,
		Points:         len(points),
		Box:            a.Box,
		Cells:          a.Cells,
		TieCells:       a.TieCells,
		InfiniteOwners: len(a.Infinite),
		Duration:       elapsed,
		Analysis:       a,
	}
	finite := a.Finite()
	rep.FiniteOwners = len(finite)
	rep.Owner, rep.Area, rep.Found = finite.Max()

	outcome := observability.OutcomeNoFinite
	if rep.Found {
		outcome = observability.OutcomeFound
	}
	s.metrics.ObserveRun(observability.RunStats{
		Outcome:  outcome,
		Points:   rep.Points,
		Cells:    rep.Cells,
		Ties:     rep.TieCells,
		Area:     rep.Area,
		Duration: elapsed,
	})
	span.SetAttributes(
		attribute.Bool("found", rep.Found),
		attribute.Int64("area", int64(rep.Area)),
		attribute.Int64("cells", int64(rep.Cells)),
		attribute.Int64("tie_cells", int64(rep.TieCells)),
	)
	log.Info(ctx, "sweep finished",
		logging.Int("points", rep.Points),
		logging.Uint64("cells", rep.Cells),
		logging.Uint64("tie_cells", rep.TieCells),
		logging.Int("finite_owners", rep.FiniteOwners),
		logging.Int("infinite_owners", rep.InfiniteOwners),
		logging.Any("found", rep.Found),
		logging.Uint64("area", rep.Area),
		logging.String("owner", rep.Owner.String()),
		logging.Any("duration", elapsed),
	)
	return rep, nil
}
