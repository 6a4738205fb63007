package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Paper.Scale != 0.7 {
		t.Errorf("expected paper scale 0.7, got %v", cfg.Paper.Scale)
	}

	if cfg.Animation.Step != 0.03 {
		t.Errorf("expected step 0.03, got %v", cfg.Animation.Step)
	}
	if cfg.Animation.Timing != TimingFrame {
		t.Errorf("expected frame timing, got %s", cfg.Animation.Timing)
	}
	if cfg.Animation.Easing != "quart" {
		t.Errorf("expected quart easing, got %s", cfg.Animation.Easing)
	}

	if cfg.Audio.FoldVolume != 0.35 || cfg.Audio.UnfoldVolume != 0.28 {
		t.Errorf("unexpected cue volumes %v/%v", cfg.Audio.FoldVolume, cfg.Audio.UnfoldVolume)
	}
	if cfg.Audio.SoundFile != "" {
		t.Errorf("expected empty sound file, got %s", cfg.Audio.SoundFile)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }, "graphics"},
		{"scale too big", func(c *Config) { c.Paper.Scale = 1.5 }, "paper"},
		{"negative step", func(c *Config) { c.Animation.Step = -0.1 }, "step"},
		{"unknown timing", func(c *Config) { c.Animation.Timing = "vsync" }, "timing"},
		{"elapsed without fps", func(c *Config) {
			c.Animation.Timing = TimingElapsed
			c.Animation.ReferenceFPS = 0
		}, "reference_fps"},
		{"unknown easing", func(c *Config) { c.Animation.Easing = "wobble" }, "wobble"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  fps_limit: 144

paper:
  scale: 0.5

animation:
  step: 0.05
  timing: elapsed
  reference_fps: 30
  easing: sine

audio:
  master_volume: 0.5
  muted: true
  sound_file: "paper.wav"

session:
  seed: 1234
  screenshot_dir: "/tmp/shots"

logging:
  level: "debug"
  log_file: "origami.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.FPSLimit != 144 {
		t.Errorf("expected fps limit 144, got %d", cfg.Graphics.FPSLimit)
	}
	if cfg.Paper.Scale != 0.5 {
		t.Errorf("expected paper scale 0.5, got %v", cfg.Paper.Scale)
	}
	if cfg.Animation.Timing != TimingElapsed || cfg.Animation.ReferenceFPS != 30 {
		t.Errorf("unexpected animation config %+v", cfg.Animation)
	}
	if cfg.Animation.Easing != "sine" {
		t.Errorf("expected sine easing, got %s", cfg.Animation.Easing)
	}
	if !cfg.Audio.Muted || cfg.Audio.SoundFile != "paper.wav" {
		t.Errorf("unexpected audio config %+v", cfg.Audio)
	}
	// Untouched keys keep their defaults.
	if cfg.Audio.FoldVolume != 0.35 {
		t.Errorf("expected default fold volume, got %v", cfg.Audio.FoldVolume)
	}
	if cfg.Session.Seed != 1234 {
		t.Errorf("expected seed 1234, got %d", cfg.Session.Seed)
	}
	if cfg.Logging.LogFile != "origami.log" {
		t.Errorf("expected log file 'origami.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("paper:\n  scale: 0.6\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "seed flag",
			setup: func() { *flagSeed = 77 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Session.Seed != 77 {
					t.Errorf("expected seed 77, got %d", cfg.Session.Seed)
				}
			},
			teardown: func() { *flagSeed = 0 },
		},
		{
			name: "mute and sound flags",
			setup: func() {
				*flagMute = true
				*flagSound = "rustle.wav"
			},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Audio.Muted {
					t.Error("expected muted with mute flag")
				}
				if cfg.Audio.SoundFile != "rustle.wav" {
					t.Errorf("expected sound file rustle.wav, got %s", cfg.Audio.SoundFile)
				}
			},
			teardown: func() {
				*flagMute = false
				*flagSound = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("animation:\n  easing: wobble\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject unknown easing")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Session.Seed = 99
	cfg.Animation.Easing = "cubic"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	if !strings.HasPrefix(string(data), fileHeader) {
		t.Error("saved config missing header")
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Session.Seed != 99 || loaded.Animation.Easing != "cubic" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestSaveToRejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Paper.Scale = 0
	if err := cfg.SaveTo(filepath.Join(t.TempDir(), "config.yaml")); err == nil {
		t.Error("expected SaveTo to refuse an invalid config")
	}
}
