package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Format: "json", Output: &buf})

	log.Info(context.Background(), "dropped")
	log.Warn(context.Background(), "kept", Int("cells", 81), String("owner", "(5,5)"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.EqualValues(t, 81, rec["cells"])
	assert.Equal(t, "(5,5)", rec["owner"])
}

func TestNew_TextWith(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Output: &buf}).With(String("component", "solver"))
	log.Info(context.Background(), "hello")
	assert.Contains(t, buf.String(), "component=solver")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestRunIDHelpers(t *testing.T) {
	ctx, id := EnsureRunID(context.Background())
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, RunIDFromContext(ctx))

	again, same := EnsureRunID(ctx)
	assert.Equal(t, id, same)
	assert.Equal(t, ctx, again)

	assert.Empty(t, RunIDFromContext(context.Background()))

	var buf bytes.Buffer
	_, log := WithRunLogger(ctx, New(Config{Output: &buf}))
	log.Info(ctx, "run")
	assert.Contains(t, buf.String(), "run_id="+id)
}

func TestNoop(t *testing.T) {
	log := Noop().With(String("k", "v"))
	assert.NotPanics(t, func() {
		log.Debug(context.Background(), "x")
		log.Error(context.Background(), "y", Err(assert.AnError))
	})
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "debug")
	t.Setenv(EnvFormat, "json")
	assert.Equal(t, Config{Level: "debug", Format: "json"}, ConfigFromEnv())

	t.Setenv(EnvLevel, "")
	t.Setenv(EnvFormat, "")
	assert.Equal(t, Config{}, ConfigFromEnv())
}
