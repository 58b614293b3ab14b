package alder

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings a host usually wants to load from a
// file: output resolution, scene object budget, producer pacing, and the
// optional background image.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// MaxObjects is the scene registry capacity.
	MaxObjects int `yaml:"max_objects"`

	// TicksPerSecond paces the producer loop; 0 runs it uncapped.
	TicksPerSecond int `yaml:"ticks_per_second"`

	// Background is a path to an image sampled as the frame's initial fill.
	// Empty means the flat default background color.
	Background string `yaml:"background"`

	// ScaleBackground rescales the background image to the resolution when
	// their sizes differ, instead of top-left sampling.
	ScaleBackground bool `yaml:"scale_background"`

	// Window settings, used by the ebiten presentation layer.
	Title       string `yaml:"title"`
	WindowScale int    `yaml:"window_scale"`
	ShowFPS     bool   `yaml:"show_fps"`

	// Debug enables per-pass renderer stats.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Width:       300,
		Height:      300,
		MaxObjects:  DefaultMaxObjects,
		Title:       "alder",
		WindowScale: 2,
	}
}

// LoadConfig reads a YAML config file, applying defaults for absent fields.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config for values the runtime cannot work with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("resolution %dx%d must be positive", c.Width, c.Height)
	}
	if c.MaxObjects <= 0 {
		return fmt.Errorf("max_objects %d must be positive", c.MaxObjects)
	}
	if c.TicksPerSecond < 0 {
		return fmt.Errorf("ticks_per_second %d must not be negative", c.TicksPerSecond)
	}
	if c.WindowScale < 0 {
		return fmt.Errorf("window_scale %d must not be negative", c.WindowScale)
	}
	return nil
}

// Resolution returns the configured output resolution.
func (c Config) Resolution() Resolution {
	return Resolution{Width: c.Width, Height: c.Height}
}
