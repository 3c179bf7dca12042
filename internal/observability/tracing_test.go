package observability

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlarea/internal/config"
	"github.com/katalvlaran/lvlarea/internal/logging"
)

func TestInitTracing_Disabled(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), config.TracingConfig{}, nil, logging.Noop())
	require.NoError(t, err)

	_, span := Tracer().Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid(), "noop provider yields invalid span contexts")
	span.End()
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitTracing_StdoutExporter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.TracingConfig{Enabled: true, Exporter: "stdout", SampleRatio: 1}
	shutdown, err := InitTracing(context.Background(), cfg, &buf, nil)
	require.NoError(t, err)

	_, span := Tracer().Start(context.Background(), "region.sweep")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	ShutdownWithTimeout(context.Background(), shutdown, logging.Noop())
	assert.True(t, strings.Contains(buf.String(), "region.sweep"), "exported spans:\n%s", buf.String())

	// Leave a noop provider behind for other tests.
	_, err = InitTracing(context.Background(), config.TracingConfig{}, nil, nil)
	require.NoError(t, err)
}

func TestInitTracing_UnsupportedExporter(t *testing.T) {
	_, err := InitTracing(context.Background(), config.TracingConfig{Enabled: true, Exporter: "zipkin"}, nil, nil)
	assert.ErrorContains(t, err, "unsupported tracing exporter")
}

func TestShutdownWithTimeout_Nil(t *testing.T) {
	assert.NotPanics(t, func() {
		ShutdownWithTimeout(context.Background(), nil, nil)
	})
}
