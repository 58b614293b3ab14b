package alder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "title: demo\n"))
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Title)
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 300, cfg.Height)
	assert.Equal(t, DefaultMaxObjects, cfg.MaxObjects)
	assert.Equal(t, 2, cfg.WindowScale)
	assert.Equal(t, 0, cfg.TicksPerSecond)
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
width: 640
height: 480
max_objects: 32
ticks_per_second: 60
scale_background: true
show_fps: true
debug: true
`))
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, 32, cfg.MaxObjects)
	assert.Equal(t, 60, cfg.TicksPerSecond)
	assert.True(t, cfg.ScaleBackground)
	assert.True(t, cfg.ShowFPS)
	assert.True(t, cfg.Debug)
	assert.Equal(t, Resolution{Width: 640, Height: 480}, cfg.Resolution())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "width: [not a number\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, "must be positive"},
		{"negative height", func(c *Config) { c.Height = -1 }, "must be positive"},
		{"zero max objects", func(c *Config) { c.MaxObjects = 0 }, "max_objects"},
		{"negative tick rate", func(c *Config) { c.TicksPerSecond = -5 }, "ticks_per_second"},
		{"negative window scale", func(c *Config) { c.WindowScale = -1 }, "window_scale"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	assert.NoError(t, DefaultConfig().Validate())
}
