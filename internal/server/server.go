// Package server exposes the solver over HTTP.
//
//	POST /v1/area   {"points":[[x,y],...]}  ->  {"found":..,"area":..,"owner":[x,y],...}
//	GET  /healthz
//	GET  /metrics   (when a collector is configured)
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/katalvlaran/lvlarea/geom"
	"github.com/katalvlaran/lvlarea/internal/config"
	"github.com/katalvlaran/lvlarea/internal/logging"
	"github.com/katalvlaran/lvlarea/internal/observability"
	"github.com/katalvlaran/lvlarea/internal/solver"
)

const (
	// bytesPerPoint bounds the request body size relative to max_points.
	bytesPerPoint = 48
	bodySlack     = 1 << 10

	shutdownTimeout = 5 * time.Second
)

// AreaRequest is the body of POST /v1/area.
type AreaRequest struct {
	Points [][]int `json:"points"`
}

// AreaResponse is the answer to POST /v1/area. Owner is null when no finite
// region exists.
type AreaResponse struct {
	RunID          string `json:"run_id"`
	Found          bool   `json:"found"`
	Area           uint64 `json:"area"`
	Owner          []int  `json:"owner"`
	Cells          uint64 `json:"cells"`
	Ties           uint64 `json:"ties"`
	FiniteOwners   int    `json:"finite_owners"`
	InfiniteOwners int    `json:"infinite_owners"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server handles area requests with a shared Solver.
type Server struct {
	cfg         config.ServerConfig
	solver      *solver.Solver
	log         logging.Logger
	metrics     *observability.SolverCollector
	metricsPath string
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics serves c at path.
func WithMetrics(c *observability.SolverCollector, path string) Option {
	return func(s *Server) {
		s.metrics = c
		s.metricsPath = path
	}
}

// New builds a Server around sv.
func New(cfg config.ServerConfig, sv *solver.Solver, opts ...Option) *Server {
	s := &Server{cfg: cfg, solver: sv, log: logging.Noop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/area", s.handleArea)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.metrics != nil && s.metricsPath != "" {
		mux.Handle("GET "+s.metricsPath, s.metrics.Handler())
	}
	return mux
}

// Serve answers requests on lis until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(lis)
	}()
	s.log.Info(ctx, "serving area API", logging.String("addr", lis.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info(context.Background(), "shutting down area API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

// ListenAndServe listens on the configured address and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, lis)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleArea(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if s.cfg.MaxPoints > 0 {
		limit := int64(s.cfg.MaxPoints)*bytesPerPoint + bodySlack
		r.Body = http.MaxBytesReader(w, r.Body, limit)
	}

	var req AreaRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(ctx, w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		s.writeError(ctx, w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	points, status, err := s.validate(req)
	if err != nil {
		s.writeError(ctx, w, status, err.Error())
		return
	}

	rep, err := s.solver.Solve(ctx, points)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.writeError(ctx, w, http.StatusServiceUnavailable, "request cancelled")
		return
	default:
		s.writeError(ctx, w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := AreaResponse{
		RunID:          rep.RunID,
		Found:          rep.Found,
		Area:           rep.Area,
		Cells:          rep.Cells,
		Ties:           rep.TieCells,
		FiniteOwners:   rep.FiniteOwners,
		InfiniteOwners: rep.InfiniteOwners,
	}
	if rep.Found {
		resp.Owner = []int{rep.Owner.X, rep.Owner.Y}
	}
	w.Header().Set("X-Run-Id", rep.RunID)
	s.writeJSON(ctx, w, http.StatusOK, resp)
}

// validate converts the request into points, returning the HTTP status to
// use when it is rejected.
func (s *Server) validate(req AreaRequest) ([]geom.Coordinate, int, error) {
	if len(req.Points) == 0 {
		return nil, http.StatusBadRequest, geom.ErrEmptyInput
	}
	if s.cfg.MaxPoints > 0 && len(req.Points) > s.cfg.MaxPoints {
		return nil, http.StatusRequestEntityTooLarge,
			fmt.Errorf("%d points exceeds the limit of %d", len(req.Points), s.cfg.MaxPoints)
	}

	points := make([]geom.Coordinate, len(req.Points))
	for i, p := range req.Points {
		if len(p) != 2 {
			return nil, http.StatusBadRequest, fmt.Errorf("point %d: want [x,y], got %d values", i, len(p))
		}
		if p[0] < 0 || p[1] < 0 {
			return nil, http.StatusBadRequest, fmt.Errorf("point %d: negative coordinate (%d,%d)", i, p[0], p[1])
		}
		points[i] = geom.C(p[0], p[1])
	}

	// The limit applies to the box the solver actually sweeps, padding included.
	box, err := geom.Bounds(points)
	if err == nil {
		box, err = box.Pad(s.solver.Padding())
	}
	if errors.Is(err, geom.ErrBoxTooLarge) {
		return nil, http.StatusRequestEntityTooLarge, err
	}
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	if cells := box.Cells(); s.cfg.MaxCells > 0 && cells > s.cfg.MaxCells {
		return nil, http.StatusRequestEntityTooLarge,
			fmt.Errorf("bounding box of %d cells exceeds the limit of %d", cells, s.cfg.MaxCells)
	}
	return points, http.StatusOK, nil
}

func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, status int, msg string) {
	s.log.Warn(ctx, "area request rejected", logging.Int("status", status), logging.String("reason", msg))
	s.writeJSON(ctx, w, status, errorResponse{Error: msg})
}

func (s *Server) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn(ctx, "write response", logging.Err(err))
	}
}
