// Package config loads tool settings from defaults, a YAML file and flags.
package config

import (
	"time"

	"mcmodel/pkg/animation"
)

// Config holds all settings shared by the command line tools.
type Config struct {
	Assets    AssetsConfig    `yaml:"assets"`
	Animation AnimationConfig `yaml:"animation"`
	Compile   CompileConfig   `yaml:"compile"`
	Viewer    ViewerConfig    `yaml:"viewer"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// AssetsConfig locates model and texture files. Models are read from
// <path>/models and textures from <path>/textures.
type AssetsConfig struct {
	Path string `yaml:"path"`
}

// AnimationConfig controls atlas animation.
type AnimationConfig struct {
	FrameTime time.Duration `yaml:"frame_time"`
	// Policy is "any" or "all": whether a mesh counts as animated when any
	// or only when all of its bound textures have several frames.
	Policy string `yaml:"policy"`
}

// CompileConfig sizes the batch compile worker pool.
type CompileConfig struct {
	Workers   int `yaml:"workers"`
	QueueSize int `yaml:"queue_size"`
}

// ViewerConfig holds the model viewer window settings.
type ViewerConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
	// FPSLimit caps the frame rate when VSync is off; 0 means unlimited.
	FPSLimit int `yaml:"fps_limit"`
	// SpinSpeed is the turntable speed in degrees per second.
	SpinSpeed float32 `yaml:"spin_speed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Assets: AssetsConfig{
			Path: "assets",
		},
		Animation: AnimationConfig{
			FrameTime: animation.DefaultFrameTime,
			Policy:    "any",
		},
		Compile: CompileConfig{
			Workers:   4,
			QueueSize: 64,
		},
		Viewer: ViewerConfig{
			Width:     900,
			Height:    600,
			VSync:     true,
			FPSLimit:  120,
			SpinSpeed: 30,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Normalize clamps values into usable ranges.
func (c *Config) Normalize() {
	c.Compile.Workers = clamp(c.Compile.Workers, 1, 64)
	c.Compile.QueueSize = clamp(c.Compile.QueueSize, 1, 4096)
	c.Viewer.Width = clamp(c.Viewer.Width, 320, 7680)
	c.Viewer.Height = clamp(c.Viewer.Height, 240, 4320)
	c.Viewer.FPSLimit = clamp(c.Viewer.FPSLimit, 0, 1000)

	if c.Animation.FrameTime < 10*time.Millisecond {
		c.Animation.FrameTime = 10 * time.Millisecond
	}
	if c.Animation.Policy != "all" {
		c.Animation.Policy = "any"
	}
}

// AnimationPolicy maps the configured policy name to animation.Policy.
func (c *Config) AnimationPolicy() animation.Policy {
	if c.Animation.Policy == "all" {
		return animation.AllAnimated
	}
	return animation.AnyAnimated
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
