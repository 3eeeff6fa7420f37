// Package config loads and validates engine configuration from TOML
// files, with environment-variable overrides for scripted and CI use.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Environment variable names recognized by ApplyEnv.
const (
	EnvLogLevel      = "SCENEKIT_LOG_LEVEL"
	EnvSnapEnabled   = "SCENEKIT_SNAP_ENABLED"
	EnvSnapTolerance = "SCENEKIT_SNAP_TOLERANCE"
	EnvHistoryMax    = "SCENEKIT_HISTORY_MAX"
)

// Config is the full engine configuration.
type Config struct {
	Viewport ViewportConfig `toml:"viewport"`
	Camera   CameraConfig   `toml:"camera"`
	Snap     SnapConfig     `toml:"snap"`
	Paste    PasteConfig    `toml:"paste"`
	History  HistoryConfig  `toml:"history"`
	Log      LogConfig      `toml:"log"`
}

// ViewportConfig sets the screen viewport size in pixels.
type ViewportConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// CameraConfig sets the zoom clamp range.
type CameraConfig struct {
	MinZoom float64 `toml:"min_zoom"`
	MaxZoom float64 `toml:"max_zoom"`
}

// SnapConfig controls alignment snapping.
type SnapConfig struct {
	Enabled     bool    `toml:"enabled"`
	TolerancePx float64 `toml:"tolerance_px"`
}

// PasteConfig controls the blind-paste diagonal nudge.
type PasteConfig struct {
	Step      float64 `toml:"step"`
	WrapAfter int     `toml:"wrap_after"`
}

// HistoryConfig bounds the undo stack.
type HistoryConfig struct {
	MaxEntries int `toml:"max_entries"`
}

// LogConfig selects the log level: debug, info, warn, or error.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Viewport: ViewportConfig{Width: 800, Height: 600},
		Camera:   CameraConfig{MinZoom: 0.1, MaxZoom: 8},
		Snap:     SnapConfig{Enabled: true, TolerancePx: 6},
		Paste:    PasteConfig{Step: 16, WrapAfter: 8},
		History:  HistoryConfig{MaxEntries: 1000},
		Log:      LogConfig{Level: "info"},
	}
}

// Load reads a TOML configuration file over the defaults and applies
// environment overrides. A missing file is not an error: defaults plus
// environment apply.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to defaults
		case err != nil:
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, &ParseError{Path: path, Err: err}
			}
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from SCENEKIT_* environment variables.
// Unparseable values are ignored.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvSnapEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Snap.Enabled = b
		}
	}
	if v := os.Getenv(EnvSnapTolerance); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			c.Snap.TolerancePx = f
		}
	}
	if v := os.Getenv(EnvHistoryMax); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.History.MaxEntries = n
		}
	}
}

// Validate checks the configuration for structural errors.
func (c Config) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidViewport, c.Viewport.Width, c.Viewport.Height)
	}
	if c.Camera.MinZoom <= 0 || c.Camera.MaxZoom < c.Camera.MinZoom {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidZoomRange, c.Camera.MinZoom, c.Camera.MaxZoom)
	}
	if c.Snap.TolerancePx <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidSnapTolerance, c.Snap.TolerancePx)
	}
	if c.Paste.Step <= 0 || c.Paste.WrapAfter <= 0 {
		return fmt.Errorf("%w: step %g wrap %d", ErrInvalidPaste, c.Paste.Step, c.Paste.WrapAfter)
	}
	if c.History.MaxEntries <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidHistoryMax, c.History.MaxEntries)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	return nil
}
