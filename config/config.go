// Package config loads the runtime settings shared by the nestable
// packages and the demo: the development/production mode, logging and
// the optional metrics endpoint.
//
// Settings come from an optional YAML file, then environment variables:
//
//	NESTABLE_ENV           development | production
//	NESTABLE_LOG_LEVEL     debug | info | warn | error
//	NESTABLE_LOG_FORMAT    text | json
//	NESTABLE_METRICS_ADDR  listen address for /metrics, e.g. ":9090"
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Environment variable names read by [ApplyEnv].
const (
	EnvMode          = "NESTABLE_ENV"
	EnvLogLevel      = "NESTABLE_LOG_LEVEL"
	EnvLogFormat     = "NESTABLE_LOG_FORMAT"
	EnvMetricsAddr   = "NESTABLE_METRICS_ADDR"
	defaultNamespace = "nestable"
)

// ErrInvalidMode is returned when a mode string is neither
// "development" nor "production".
var ErrInvalidMode = errors.New("config: mode must be development or production")

// Mode distinguishes development from production builds. Its only effect
// on the collections is whether the nil-constructor warning is logged.
type Mode string

const (
	Development Mode = "development"
	Production  Mode = "production"
)

// ParseMode accepts the mode names case-insensitively, plus the short
// forms "dev" and "prod". An empty string is development.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "development", "dev":
		return Development, nil
	case "production", "prod":
		return Production, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// IsProduction reports whether m is [Production].
func (m Mode) IsProduction() bool { return m == Production }

// Config is the full set of settings.
type Config struct {
	Mode    Mode          `yaml:"mode"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Defaults to info.
	Level string `yaml:"level"`
	// Format is text or json. Defaults to text.
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus exposition.
type MetricsConfig struct {
	// Addr is the listen address for /metrics. Empty disables the endpoint.
	Addr string `yaml:"addr"`
	// Namespace prefixes every metric name. Defaults to "nestable".
	Namespace string `yaml:"namespace"`
}

// Default returns a [Config] populated with defaults.
func Default() Config {
	return Config{
		Mode: Development,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{Namespace: defaultNamespace},
	}
}

// Load reads the YAML file at path (a missing file, or an empty path,
// yields the defaults), then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := Parse(data, &cfg); err != nil {
				return Config{}, err
			}
		}
	}
	if err := ApplyEnv(&cfg, os.Getenv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes YAML onto cfg. Keys absent from data keep their current
// values.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse: %w", err)
	}
	mode, err := ParseMode(string(cfg.Mode))
	if err != nil {
		return err
	}
	cfg.Mode = mode
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = defaultNamespace
	}
	return nil
}

// ApplyEnv overrides cfg with the NESTABLE_* variables returned by
// getenv. Unset or empty variables leave the field alone.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvMode); v != "" {
		mode, err := ParseMode(v)
		if err != nil {
			return err
		}
		cfg.Mode = mode
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	if v := getenv(EnvMetricsAddr); v != "" {
		cfg.Metrics.Addr = v
	}
	return nil
}

var currentMode = sync.OnceValue(func() Mode {
	mode, err := ParseMode(os.Getenv(EnvMode))
	if err != nil {
		return Development
	}
	return mode
})

// CurrentMode returns the mode named by NESTABLE_ENV, read once per
// process. Unknown values fall back to development so that warnings are
// never silenced by a typo.
func CurrentMode() Mode { return currentMode() }
