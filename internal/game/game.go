// Package game wires the window, renderer, audio and state machine into
// the main loop.
package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/random-origami/internal/config"
	"github.com/Faultbox/random-origami/internal/easing"
	"github.com/Faultbox/random-origami/internal/engine/audio"
	"github.com/Faultbox/random-origami/internal/engine/capture"
	"github.com/Faultbox/random-origami/internal/engine/input"
	"github.com/Faultbox/random-origami/internal/engine/renderer"
	"github.com/Faultbox/random-origami/internal/engine/ui2d"
	"github.com/Faultbox/random-origami/internal/engine/window"
	"github.com/Faultbox/random-origami/internal/game/render"
	"github.com/Faultbox/random-origami/internal/game/sfx"
	"github.com/Faultbox/random-origami/internal/game/states"
	"github.com/Faultbox/random-origami/internal/game/ui"
	"github.com/Faultbox/random-origami/internal/logger"
	"github.com/Faultbox/random-origami/internal/origami"
)

const (
	Title = "Random Origami"

	multisamples = 4
)

// Game is the application instance.
type Game struct {
	config  *config.Config
	running bool
	seed    uint64

	window   *window.Window
	renderer *renderer.Renderer
	canvas   *ui2d.Renderer
	input    *input.Input

	audio   *audio.Manager
	machine *states.Machine
	painter *render.Painter
	start   *ui.StartScreen
	shots   *capture.Capturer

	wantScreenshot bool
}

// New creates the window and all subsystems.
func New(cfg *config.Config) (*Game, error) {
	curve, err := easing.Lookup(cfg.Animation.Easing)
	if err != nil {
		return nil, fmt.Errorf("animation easing: %w", err)
	}

	seed := cfg.Session.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	logger.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Uint64("seed", seed),
	)

	g := &Game{
		config: cfg,
		seed:   seed,
		input:  input.New(),
		shots:  capture.New(cfg.Session.ScreenshotDir, "origami"),
	}

	// Window first: it creates the OpenGL context.
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Samples:    multisamples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	dw, dh := g.window.GetDrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:       dw,
		Height:      dh,
		Multisample: true,
	})
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	// Layout and drawing work in window coordinates, the same space as
	// mouse events.
	ww, wh := g.window.GetSize()
	g.canvas, err = ui2d.New(ww, wh)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create 2d renderer: %w", err)
	}

	g.audio = audio.New()
	g.audio.SetMasterVolume(cfg.Audio.MasterVolume)
	g.audio.SetMuted(cfg.Audio.Muted)
	g.loadSound()

	cues := sfx.New(g.audio, rand.New(rand.NewPCG(seed, seed^0xda3e39cb94b95bdb)), sfx.Settings{
		FoldVolume:   cfg.Audio.FoldVolume,
		UnfoldVolume: cfg.Audio.UnfoldVolume,
		Tail:         sfx.DefaultSettings().Tail,
	})

	g.machine = states.New(states.Config{
		Step:         cfg.Animation.Step,
		ReferenceFPS: cfg.Animation.ReferenceFPS,
		PaperHalf:    g.paperHalf(ww, wh),
	}, origami.NewSeededGenerator(seed), cues)

	g.painter = render.NewPainter(g.canvas, curve)
	g.painter.Resize(ww, wh)

	g.start = ui.NewStartScreen(g.begin)
	g.start.Resize(ww, wh)

	logger.Info("initialized")
	return g, nil
}

// loadSound starts loading the sample in the background.
func (g *Game) loadSound() {
	if path := g.config.Audio.SoundFile; path != "" {
		g.audio.LoadFileAsync(path)
		return
	}
	go func() {
		if err := g.audio.LoadRustle(g.seed); err != nil {
			logger.Warn("sound unavailable", zap.Error(err))
		}
	}()
}

// begin runs when the start button is pressed. Opening the audio device
// here ties sound to the first user gesture.
func (g *Game) begin() {
	if err := g.audio.Init(); err != nil {
		logger.Warn("audio disabled", zap.Error(err))
	}
	g.machine.Begin()
}

func (g *Game) paperHalf(width, height int) float64 {
	return float64(min(width, height)) * g.config.Paper.Scale / 2
}

// Run starts the main loop and returns when the window is closed.
func (g *Game) Run() error {
	g.running = true

	var budget time.Duration
	if g.config.Graphics.FPSLimit > 0 {
		budget = time.Second / time.Duration(g.config.Graphics.FPSLimit)
	}

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	logger.Info("starting main loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if g.input.Update() {
			g.running = false
			break
		}
		for _, event := range g.input.Events() {
			g.handleEvent(event)
		}

		// 2. Advance the animation
		g.update(dt)

		// 3. Render
		g.render()
		if g.wantScreenshot {
			g.wantScreenshot = false
			g.screenshot()
		}

		// 4. Present
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if budget > 0 {
			if spent := time.Since(now); spent < budget {
				time.Sleep(budget - spent)
			}
		}
	}

	return nil
}

func (g *Game) handleEvent(e input.Event) {
	switch e.Type {
	case input.EventWindowResize:
		g.resize()

	case input.EventKeyDown:
		switch e.Key {
		case sdl.K_ESCAPE:
			g.running = false
		case sdl.K_F12:
			g.wantScreenshot = true
		}

	case input.EventMouseMove:
		g.start.PointerMove(float64(e.MouseX), float64(e.MouseY))

	case input.EventMouseDown:
		// The start screen sees the press first; if it hides itself the
		// machine receives the same press and swallows it.
		g.start.PointerDown(float64(e.MouseX), float64(e.MouseY))
		g.machine.Click()
	}
}

// resize re-reads both window and drawable sizes; SDL reports one or the
// other depending on the platform.
func (g *Game) resize() {
	ww, wh := g.window.GetSize()
	dw, dh := g.window.GetDrawableSize()

	g.renderer.Resize(dw, dh)
	g.canvas.Resize(ww, wh)
	g.painter.Resize(ww, wh)
	g.start.Resize(ww, wh)
	g.machine.Resize(g.paperHalf(ww, wh))
}

func (g *Game) update(dt float64) {
	if g.config.Animation.Timing == config.TimingElapsed {
		g.machine.Advance(dt)
		return
	}
	g.machine.Tick()
}

func (g *Game) render() {
	g.renderer.Begin(render.ColorBackground)

	g.canvas.Begin()
	g.painter.Draw(g.machine.View())
	g.start.Draw(g.canvas)
	g.canvas.End()
}

func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	if _, err := g.shots.Save(pixels, w, h); err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
	}
}

// Close releases all resources.
func (g *Game) Close() {
	logger.Info("closing")

	if g.audio != nil {
		g.audio.Close()
	}
	if g.canvas != nil {
		g.canvas.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
