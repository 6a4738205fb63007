// Package config handles configuration loading and management.
package config

import (
	"fmt"
	"slices"

	"github.com/Faultbox/random-origami/internal/easing"
)

// Timing modes for the fold animation.
const (
	// TimingFrame advances the animation a fixed step every frame.
	TimingFrame = "frame"
	// TimingElapsed scales the step by elapsed time.
	TimingElapsed = "elapsed"
)

// Config holds all settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Paper     PaperConfig     `yaml:"paper"`
	Animation AnimationConfig `yaml:"animation"`
	Audio     AudioConfig     `yaml:"audio"`
	Session   SessionConfig   `yaml:"session"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// PaperConfig holds paper layout settings.
type PaperConfig struct {
	// Scale is the paper side relative to the smaller window dimension.
	Scale float64 `yaml:"scale"`
}

// AnimationConfig holds fold animation settings.
type AnimationConfig struct {
	Step         float64 `yaml:"step"`
	Timing       string  `yaml:"timing"`
	ReferenceFPS float64 `yaml:"reference_fps"`
	Easing       string  `yaml:"easing"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	MasterVolume float64 `yaml:"master_volume"`
	Muted        bool    `yaml:"muted"`
	// SoundFile is a WAV file; empty selects the synthesized rustle.
	SoundFile    string  `yaml:"sound_file"`
	FoldVolume   float64 `yaml:"fold_volume"`
	UnfoldVolume float64 `yaml:"unfold_volume"`
}

// SessionConfig holds per-run settings.
type SessionConfig struct {
	// Seed for shape and sound variation; 0 picks one from the clock.
	Seed          uint64 `yaml:"seed"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   60,
		},
		Paper: PaperConfig{
			Scale: 0.7,
		},
		Animation: AnimationConfig{
			Step:         0.03,
			Timing:       TimingFrame,
			ReferenceFPS: 60,
			Easing:       easing.DefaultCurve,
		},
		Audio: AudioConfig{
			MasterVolume: 1.0,
			Muted:        false,
			SoundFile:    "",
			FoldVolume:   0.35,
			UnfoldVolume: 0.28,
		},
		Session: SessionConfig{
			Seed:          0,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Paper.Scale <= 0 || c.Paper.Scale > 1 {
		return fmt.Errorf("paper: scale %v out of range (0, 1]", c.Paper.Scale)
	}
	if c.Animation.Step <= 0 || c.Animation.Step > 1 {
		return fmt.Errorf("animation: step %v out of range (0, 1]", c.Animation.Step)
	}
	if !slices.Contains([]string{TimingFrame, TimingElapsed}, c.Animation.Timing) {
		return fmt.Errorf("animation: unknown timing %q", c.Animation.Timing)
	}
	if c.Animation.Timing == TimingElapsed && c.Animation.ReferenceFPS <= 0 {
		return fmt.Errorf("animation: reference_fps must be positive for elapsed timing")
	}
	if _, err := easing.Lookup(c.Animation.Easing); err != nil {
		return fmt.Errorf("animation: %w", err)
	}
	return nil
}
