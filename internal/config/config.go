// Package config handles viewer configuration loading and management.
package config

import (
	"image/color"
	"strconv"
	"strings"
	"time"
)

// Config holds all viewer settings.
type Config struct {
	Viewer  ViewerConfig  `yaml:"viewer"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// ViewerConfig holds display and annotation settings.
type ViewerConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	ShowLabels bool   `yaml:"show_labels"`
	ShowLoads  bool   `yaml:"show_loads"`
	FPS        int    `yaml:"fps"`
	Background string `yaml:"background"`
}

// WatchConfig holds file-watching settings.
type WatchConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Debounce time.Duration `yaml:"debounce"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Viewer: ViewerConfig{
			Width:      1024,
			Height:     768,
			ShowLabels: true,
			ShowLoads:  true,
			FPS:        30,
		},
		Watch: WatchConfig{
			Enabled:  true,
			Debounce: 300 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// BackgroundColor parses the "#rrggbb" background setting. An empty or
// malformed value reports ok=false, which keeps the renderer default.
func (v ViewerConfig) BackgroundColor() (c color.RGBA, ok bool) {
	s := strings.TrimPrefix(v.Background, "#")
	if len(s) != 6 {
		return color.RGBA{}, false
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
		A: 255,
	}, true
}

// FrameInterval converts the FPS setting into a frame-loop tick interval.
func (c *Config) FrameInterval() time.Duration {
	fps := c.Viewer.FPS
	if fps <= 0 {
		fps = 30
	}
	return time.Second / time.Duration(fps)
}
