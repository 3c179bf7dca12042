package observability

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestObserveRunRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewSolverCollector(reg)
	if err != nil {
		t.Fatalf("NewSolverCollector: %v", err)
	}

	c.ObserveRun(RunStats{Outcome: OutcomeFound, Points: 6, Cells: 72, Ties: 10, Area: 17, Duration: 3 * time.Millisecond})
	c.ObserveRun(RunStats{Outcome: OutcomeNoFinite, Points: 2, Cells: 4, Ties: 2, Duration: time.Millisecond})
	c.ObserveRun(RunStats{Outcome: OutcomeEmptyInput})

	if got := testutil.ToFloat64(c.Runs.WithLabelValues(OutcomeFound)); got != 1 {
		t.Fatalf("runs{found} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.Runs.WithLabelValues(OutcomeEmptyInput)); got != 1 {
		t.Fatalf("runs{empty_input} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.CellsSwept); got != 76 {
		t.Fatalf("cells swept = %v, want 76", got)
	}
	if got := testutil.ToFloat64(c.TieCells); got != 12 {
		t.Fatalf("tie cells = %v, want 12", got)
	}
	if got := testutil.ToFloat64(c.LargestArea); got != 17 {
		t.Fatalf("largest area = %v, want 17", got)
	}
	if got := testutil.ToFloat64(c.PointCount); got != 0 {
		t.Fatalf("point count = %v, want 0 after the empty run", got)
	}
	if count := histogramSampleCount(t, reg, "lvlarea_sweep_duration_seconds"); count != 2 {
		t.Fatalf("sweep duration sample_count = %d, want 2", count)
	}
}

func TestNewSolverCollectorReusesRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := NewSolverCollector(reg)
	if err != nil {
		t.Fatalf("first NewSolverCollector: %v", err)
	}
	b, err := NewSolverCollector(reg)
	if err != nil {
		t.Fatalf("second NewSolverCollector: %v", err)
	}
	a.ObserveRun(RunStats{Outcome: OutcomeFound, Cells: 5})
	if got := testutil.ToFloat64(b.CellsSwept); got != 5 {
		t.Fatalf("shared counter = %v, want 5", got)
	}
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *SolverCollector
	c.ObserveRun(RunStats{Outcome: OutcomeFound})
}

func TestHandlerAndWriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewSolverCollector(reg)
	if err != nil {
		t.Fatalf("NewSolverCollector: %v", err)
	}
	c.ObserveRun(RunStats{Outcome: OutcomeFound, Points: 6, Cells: 72, Area: 17})

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `lvlarea_runs_total{outcome="found"} 1`) {
		t.Fatalf("handler body missing runs counter:\n%s", rec.Body.String())
	}

	var buf bytes.Buffer
	if err := c.WriteText(&buf); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if !strings.Contains(buf.String(), "lvlarea_last_largest_area 17") {
		t.Fatalf("text dump missing gauge:\n%s", buf.String())
	}
}

func histogramSampleCount(t *testing.T, reg *prometheus.Registry, name string) uint64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name || mf.GetType() != dto.MetricType_HISTOGRAM {
			continue
		}
		for _, m := range mf.GetMetric() {
			return m.GetHistogram().GetSampleCount()
		}
	}
	t.Fatalf("histogram %s not found", name)
	return 0
}
