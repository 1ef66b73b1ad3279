// Package config loads and persists fractalite settings as TOML.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/fractalite/fractalite/pkg/errors"
)

// Config groups all user-tunable settings. The zero value is not usable;
// start from Default and override.
type Config struct {
	Display     DisplayConfig     `toml:"display"`
	Fractal     FractalConfig     `toml:"fractal"`
	Performance PerformanceConfig `toml:"performance"`
	Controls    ControlsConfig    `toml:"controls"`
}

// DisplayConfig controls how grids are drawn to the terminal.
type DisplayConfig struct {
	UseColors     bool   `toml:"use_colors"`
	UseUnicode    bool   `toml:"use_unicode"`
	DefaultWidth  int    `toml:"default_width"`
	DefaultHeight int    `toml:"default_height"`
	ColorScheme   string `toml:"color_scheme"`
	QualityMode   bool   `toml:"quality_mode"`
	SuperSampling bool   `toml:"super_sampling"`
}

// FractalConfig sets the initial view and navigation step sizes.
type FractalConfig struct {
	DefaultZoom              float64 `toml:"default_zoom"`
	DefaultCenterX           float64 `toml:"default_center_x"`
	DefaultCenterY           float64 `toml:"default_center_y"`
	DefaultMaxIterations     uint32  `toml:"default_max_iterations"`
	AutoGenerationIntervalMS uint64  `toml:"auto_generation_interval_ms"`
	ZoomStep                 float64 `toml:"zoom_step"`
	PanStep                  float64 `toml:"pan_step"`
}

// PerformanceConfig controls parallelism and caching. A ThreadCount of
// zero means one worker per CPU core.
type PerformanceConfig struct {
	UseParallelProcessing bool `toml:"use_parallel_processing"`
	ThreadCount           int  `toml:"thread_count"`
	EnableCaching         bool `toml:"enable_caching"`
	MaxCacheSize          int  `toml:"max_cache_size"`
}

// ControlsConfig tunes interactive key behavior.
type ControlsConfig struct {
	ZoomInKey     string  `toml:"zoom_in_key"`
	ZoomOutKey    string  `toml:"zoom_out_key"`
	PanSpeed      float64 `toml:"pan_speed"`
	ZoomSpeed     float64 `toml:"zoom_speed"`
	IterationStep uint32  `toml:"iteration_step"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			UseColors:     true,
			UseUnicode:    true,
			DefaultWidth:  80,
			DefaultHeight: 40,
			ColorScheme:   "default",
			QualityMode:   false,
			SuperSampling: false,
		},
		Fractal: FractalConfig{
			DefaultZoom:              1.0,
			DefaultCenterX:           -0.5,
			DefaultCenterY:           0.0,
			DefaultMaxIterations:     100,
			AutoGenerationIntervalMS: 2000,
			ZoomStep:                 1.5,
			PanStep:                  0.1,
		},
		Performance: PerformanceConfig{
			UseParallelProcessing: true,
			ThreadCount:           0,
			EnableCaching:         true,
			MaxCacheSize:          100,
		},
		Controls: ControlsConfig{
			ZoomInKey:     "+",
			ZoomOutKey:    "-",
			PanSpeed:      1.0,
			ZoomSpeed:     1.0,
			IterationStep: 10,
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot determine config directory")
	}
	return filepath.Join(dir, "fractalite", "config.toml"), nil
}

// Load reads and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot read config file")
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config file")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault reads a config file, falling back to Default when the
// file is missing or malformed.
func LoadOrDefault(path string) Config {
	cfg, err := Load(path)
	if err != nil {
		return Default()
	}
	return cfg
}

// Save writes the config as TOML, creating parent directories as needed.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot create config directory")
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot encode config")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot write config file")
	}
	return nil
}

// Validate checks the config for values the engine cannot work with.
func (c Config) Validate() error {
	if c.Display.DefaultWidth <= 0 || c.Display.DefaultHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "display dimensions must be greater than 0")
	}
	if c.Fractal.DefaultMaxIterations == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max iterations must be greater than 0")
	}
	if c.Fractal.ZoomStep <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "zoom step must be positive")
	}
	if c.Fractal.AutoGenerationIntervalMS == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "auto generation interval must be greater than 0")
	}
	if c.Performance.ThreadCount < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "thread count cannot be negative")
	}
	if c.Performance.MaxCacheSize < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache size cannot be negative")
	}
	return nil
}

// AutoGenerationInterval returns the auto mode tick period.
func (c Config) AutoGenerationInterval() time.Duration {
	return time.Duration(c.Fractal.AutoGenerationIntervalMS) * time.Millisecond
}
