package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvlarea.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, Validate(&cfg))
}

func TestLoadOver_KeepsBaseForAbsentFields(t *testing.T) {
	base := Default()
	base.Logging.Level = "debug"
	base.Logging.Format = "json"

	path := writeConfig(t, "logging:\n  format: text\n")
	cfg, err := LoadOver(base, path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)

	cfg, err = LoadOver(base, "")
	require.NoError(t, err)
	assert.Equal(t, base, cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
solver:
  workers: 4
  padding: 1
logging:
  level: DEBUG
  format: json
tracing:
  enabled: true
  exporter: OTLP
  endpoint: collector:4317
  sample_ratio: 0.5
server:
  max_points: 50
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Solver.Workers)
	assert.Equal(t, 1, cfg.Solver.Padding)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "otlp", cfg.Tracing.Exporter)
	assert.Equal(t, "collector:4317", cfg.Tracing.Endpoint)
	assert.Equal(t, 0.5, cfg.Tracing.SampleRatio)
	assert.Equal(t, "lvlarea", cfg.Tracing.ServiceName, "unset keys keep defaults")
	assert.Equal(t, 50, cfg.Server.MaxPoints)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "solver: [not, a, map]\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"NegativeWorkers", func(c *Config) { c.Solver.Workers = -1 }},
		{"NegativePadding", func(c *Config) { c.Solver.Padding = -2 }},
		{"BadLevel", func(c *Config) { c.Logging.Level = "loud" }},
		{"BadFormat", func(c *Config) { c.Logging.Format = "xml" }},
		{"BadExporter", func(c *Config) { c.Tracing.Exporter = "zipkin" }},
		{"BadRatio", func(c *Config) { c.Tracing.SampleRatio = 1.5 }},
		{"NoPoints", func(c *Config) { c.Server.MaxPoints = 0 }},
		{"BadMetricsPath", func(c *Config) { c.Metrics.Path = "metrics" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, Validate(&cfg), ErrInvalidConfig)
		})
	}
}
