package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fractalite/fractalite/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() should validate: %v", err)
	}
	if cfg.Display.DefaultWidth != 80 || cfg.Display.DefaultHeight != 40 {
		t.Errorf("default display = %dx%d, want 80x40", cfg.Display.DefaultWidth, cfg.Display.DefaultHeight)
	}
	if cfg.Fractal.DefaultMaxIterations != 100 {
		t.Errorf("default max iterations = %d, want 100", cfg.Fractal.DefaultMaxIterations)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Display.UseUnicode = false
	cfg.Fractal.DefaultZoom = 42.5
	cfg.Performance.ThreadCount = 4
	cfg.Controls.IterationStep = 25

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeFileNotFound {
		t.Errorf("code = %v, want %v", code, errors.ErrCodeFileNotFound)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	partial := "[fractal]\ndefault_zoom = 8.0\n"
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Fractal.DefaultZoom != 8.0 {
		t.Errorf("default_zoom = %v, want 8.0", cfg.Fractal.DefaultZoom)
	}
	if cfg.Display.DefaultWidth != 80 {
		t.Errorf("unset fields should keep defaults, got width %d", cfg.Display.DefaultWidth)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed TOML")
	}
	if cfg := LoadOrDefault(path); cfg != Default() {
		t.Error("LoadOrDefault should fall back to Default for malformed files")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Display.DefaultWidth = 0 }},
		{"negative height", func(c *Config) { c.Display.DefaultHeight = -1 }},
		{"zero iterations", func(c *Config) { c.Fractal.DefaultMaxIterations = 0 }},
		{"zero zoom step", func(c *Config) { c.Fractal.ZoomStep = 0 }},
		{"zero interval", func(c *Config) { c.Fractal.AutoGenerationIntervalMS = 0 }},
		{"negative threads", func(c *Config) { c.Performance.ThreadCount = -2 }},
		{"negative cache", func(c *Config) { c.Performance.MaxCacheSize = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if code := errors.GetCode(err); code != errors.ErrCodeInvalidConfig {
				t.Errorf("code = %v, want %v", code, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestAutoGenerationInterval(t *testing.T) {
	cfg := Default()
	if got := cfg.AutoGenerationInterval(); got != 2*time.Second {
		t.Errorf("interval = %v, want 2s", got)
	}
}
