package config_test

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hasbyte1/go-nestable/config"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want config.Mode
		err  bool
	}{
		{"", config.Development, false},
		{"dev", config.Development, false},
		{"Development", config.Development, false},
		{" production ", config.Production, false},
		{"PROD", config.Production, false},
		{"staging", "", true},
	}
	for _, tt := range tests {
		got, err := config.ParseMode(tt.in)
		if tt.err {
			if !errors.Is(err, config.ErrInvalidMode) {
				t.Fatalf("ParseMode(%q) err = %v; want ErrInvalidMode", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseMode(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if cfg.Mode != config.Development || cfg.Log.Level != "info" || cfg.Metrics.Namespace != "nestable" {
		t.Fatalf("Default = %+v", cfg)
	}
	if cfg.Mode.IsProduction() {
		t.Fatal("default mode should not be production")
	}
}

func TestParseKeepsAbsentKeys(t *testing.T) {
	cfg := config.Default()
	err := config.Parse([]byte("mode: production\nmetrics:\n  addr: \":9090\"\n"), &cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Mode.IsProduction() || cfg.Metrics.Addr != ":9090" {
		t.Fatalf("Parse = %+v", cfg)
	}
	if cfg.Log.Level != "info" || cfg.Metrics.Namespace != "nestable" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	cfg := config.Default()
	if err := config.Parse([]byte("mode: [oops"), &cfg); err == nil {
		t.Fatal("expected YAML error")
	}
	cfg = config.Default()
	if err := config.Parse([]byte("mode: staging"), &cfg); !errors.Is(err, config.ErrInvalidMode) {
		t.Fatalf("err = %v; want ErrInvalidMode", err)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := config.Default()
	err := config.ApplyEnv(&cfg, envFrom(map[string]string{
		config.EnvMode:        "production",
		config.EnvLogLevel:    "debug",
		config.EnvLogFormat:   "json",
		config.EnvMetricsAddr: ":2112",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Mode.IsProduction() || cfg.Log.Level != "debug" || cfg.Log.Format != "json" || cfg.Metrics.Addr != ":2112" {
		t.Fatalf("ApplyEnv = %+v", cfg)
	}

	if err := config.ApplyEnv(&cfg, envFrom(map[string]string{config.EnvMode: "nope"})); !errors.Is(err, config.ErrInvalidMode) {
		t.Fatalf("err = %v; want ErrInvalidMode", err)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(config.EnvMode, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvMetricsAddr, "")

	dir := t.TempDir()
	path := filepath.Join(dir, "nestable.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("Log.Level = %q; want warn", cfg.Log.Level)
	}

	missing, err := config.Load(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if missing != config.Default() {
		t.Fatalf("missing file = %+v; want defaults", missing)
	}
}

func TestLoadEnvWinsOverFile(t *testing.T) {
	t.Setenv(config.EnvMode, "production")
	path := filepath.Join(t.TempDir(), "nestable.yaml")
	if err := os.WriteFile(path, []byte("mode: development\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Mode.IsProduction() {
		t.Fatalf("Mode = %q; want production", cfg.Mode)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	logger := cfg.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatal("info record passed a warn-level logger")
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"mode":"development"`) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range tests {
		if got := (config.LogConfig{Level: in}).SlogLevel(); got != want {
			t.Fatalf("SlogLevel(%q) = %v; want %v", in, got, want)
		}
	}
}
