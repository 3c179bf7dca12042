// Package config loads lvlarea.yaml, the optional configuration file shared
// by every command. Flags given on the command line override file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the top-level structure parsed from lvlarea.yaml.
type Config struct {
	// Solver tunes the region sweep.
	Solver SolverConfig `yaml:"solver"`
	// Logging configures the structured logger.
	Logging LoggingConfig `yaml:"logging"`
	// Metrics configures the Prometheus collector.
	Metrics MetricsConfig `yaml:"metrics"`
	// Tracing configures OpenTelemetry spans.
	Tracing TracingConfig `yaml:"tracing"`
	// Server configures `lvlarea serve`.
	Server ServerConfig `yaml:"server"`
}

// SolverConfig tunes the region sweep.
type SolverConfig struct {
	// Workers is the number of goroutines sharing the sweep; 0 means one per CPU.
	Workers int `yaml:"workers"`
	// Padding grows the bounding box on every side before sweeping.
	Padding int `yaml:"padding"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	// Enabled registers the collector.
	Enabled bool `yaml:"enabled"`
	// Path is the HTTP path metrics are served on by `serve`.
	Path string `yaml:"path"`
}

// TracingConfig configures OpenTelemetry tracing.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Exporter    string  `yaml:"exporter"` // stdout | otlp
	Endpoint    string  `yaml:"endpoint"` // used when Exporter == otlp
	ServiceName string  `yaml:"service_name"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`
	// MaxPoints caps the size of a single request's point set.
	MaxPoints int `yaml:"max_points"`
	// MaxCells caps the bounding-box area a single request may sweep.
	MaxCells uint64 `yaml:"max_cells"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Solver:  SolverConfig{Workers: 0, Padding: 0},
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
		Tracing: TracingConfig{
			Enabled:     false,
			Exporter:    "stdout",
			ServiceName: "lvlarea",
			SampleRatio: 1,
		},
		Server: ServerConfig{Addr: ":8080", MaxPoints: 1000, MaxCells: 4_000_000},
	}
}

// Load reads the YAML file at path on top of Default and validates it.
// An empty path returns Default.
func Load(path string) (Config, error) {
	return LoadOver(Default(), path)
}

// LoadOver reads the YAML file at path on top of base and validates it.
// Fields absent from the file keep their base value. An empty path returns
// base unvalidated.
func LoadOver(base Config, path string) (Config, error) {
	cfg := base
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field range and normalises case-insensitive enums.
func Validate(cfg *Config) error {
	if cfg.Solver.Workers < 0 {
		return fmt.Errorf("solver.workers must be >= 0, got %d: %w", cfg.Solver.Workers, ErrInvalidConfig)
	}
	if cfg.Solver.Padding < 0 {
		return fmt.Errorf("solver.padding must be >= 0, got %d: %w", cfg.Solver.Padding, ErrInvalidConfig)
	}

	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)
	switch cfg.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q is not supported: %w", cfg.Logging.Level, ErrInvalidConfig)
	}
	cfg.Logging.Format = strings.ToLower(cfg.Logging.Format)
	switch cfg.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format %q is not supported: %w", cfg.Logging.Format, ErrInvalidConfig)
	}

	cfg.Tracing.Exporter = strings.ToLower(cfg.Tracing.Exporter)
	switch cfg.Tracing.Exporter {
	case "", "stdout", "otlp", "otlpgrpc":
	default:
		return fmt.Errorf("tracing.exporter %q is not supported: %w", cfg.Tracing.Exporter, ErrInvalidConfig)
	}
	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing.sample_ratio must be in [0,1], got %g: %w", cfg.Tracing.SampleRatio, ErrInvalidConfig)
	}

	if cfg.Server.MaxPoints < 1 {
		return fmt.Errorf("server.max_points must be >= 1, got %d: %w", cfg.Server.MaxPoints, ErrInvalidConfig)
	}
	if cfg.Metrics.Path != "" && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path %q must start with '/': %w", cfg.Metrics.Path, ErrInvalidConfig)
	}
	return nil
}
