// Package config loads smooth-caret settings from a TOML file with
// environment-variable overrides. A missing file is not an error; defaults
// apply and out-of-range values are clamped rather than rejected.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/smooth-caret/caret"
)

// Config is the resolved application configuration.
type Config struct {
	Caret caret.Config
	Audio Audio
	Log   Log
}

// Audio controls the optional typewriter key click.
type Audio struct {
	Enabled bool
	Volume  float64 // 0.0 - 1.0
}

// Log controls frame-loop diagnostics. The terminal runs in raw mode, so
// logs go to a file, never stdout.
type Log struct {
	File  string
	Level string
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Caret: caret.DefaultConfig,
		Audio: Audio{Enabled: false, Volume: 0.5},
		Log:   Log{File: "", Level: "info"},
	}
}

// File is the TOML shape. Pointer fields distinguish "absent" from zero.
type File struct {
	Caret CaretSection `toml:"caret"`
	Audio AudioSection `toml:"audio"`
	Log   LogSection   `toml:"log"`
}

// CaretSection maps the [caret] table.
type CaretSection struct {
	FadePeriodSeconds  *float64 `toml:"fade_period_seconds"`
	FadeDelaySeconds   *float64 `toml:"fade_delay_seconds"`
	MovementDurationMs *float64 `toml:"movement_duration_ms"`
	CaretWidthCells    *float64 `toml:"caret_width_cells"`
}

// AudioSection maps the [audio] table.
type AudioSection struct {
	Enabled *bool    `toml:"enabled"`
	Volume  *float64 `toml:"volume"`
}

// LogSection maps the [log] table.
type LogSection struct {
	File  *string `toml:"file"`
	Level *string `toml:"level"`
}

// Load resolves the configuration: defaults, then the TOML file at path
// (missing file is fine), then environment overrides, then clamping.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		var f File
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &f); err != nil {
				return cfg, fmt.Errorf("failed to decode config: %w", err)
			}
			cfg.apply(f)
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("failed to stat config: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.clamp()
	return cfg, nil
}

func (c *Config) apply(f File) {
	if v := f.Caret.FadePeriodSeconds; v != nil {
		c.Caret.FadePeriodSeconds = *v
	}
	if v := f.Caret.FadeDelaySeconds; v != nil {
		c.Caret.FadeDelaySeconds = *v
	}
	if v := f.Caret.MovementDurationMs; v != nil {
		c.Caret.MovementDurationMs = *v
	}
	if v := f.Caret.CaretWidthCells; v != nil {
		c.Caret.CaretWidthPx = *v
	}
	if v := f.Audio.Enabled; v != nil {
		c.Audio.Enabled = *v
	}
	if v := f.Audio.Volume; v != nil {
		c.Audio.Volume = *v
	}
	if v := f.Log.File; v != nil {
		c.Log.File = *v
	}
	if v := f.Log.Level; v != nil {
		c.Log.Level = *v
	}
}

// applyEnv layers environment overrides on top of the file. Volume is given
// as 0-100 on the environment for easy shell use.
func (c *Config) applyEnv() {
	if enabled := os.Getenv("SMOOTH_CARET_AUDIO"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}
	if volume := os.Getenv("SMOOTH_CARET_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.Volume = float64(val) / 100.0
		}
	}
	if file := os.Getenv("SMOOTH_CARET_LOG"); file != "" {
		c.Log.File = file
	}
}

func (c *Config) clamp() {
	if c.Caret.FadePeriodSeconds <= 0 {
		c.Caret.FadePeriodSeconds = caret.DefaultConfig.FadePeriodSeconds
	}
	if c.Caret.FadeDelaySeconds < 0 {
		c.Caret.FadeDelaySeconds = 0
	}
	if c.Caret.MovementDurationMs < 0 {
		c.Caret.MovementDurationMs = 0
	}
	if c.Caret.CaretWidthPx < 1 {
		c.Caret.CaretWidthPx = 1
	}
	if c.Audio.Volume < 0 {
		c.Audio.Volume = 0
	}
	if c.Audio.Volume > 1 {
		c.Audio.Volume = 1
	}
}
