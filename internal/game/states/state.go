// Package states implements the fold/unfold state machine.
package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/random-origami/internal/logger"
	"github.com/Faultbox/random-origami/internal/origami"
	gmath "github.com/Faultbox/random-origami/pkg/math"
)

// Phase is the top-level state of the experience.
type Phase int

const (
	// PhaseMenu shows the start screen; clicks on the canvas are ignored.
	PhaseMenu Phase = iota
	// PhaseFlat shows the paper, with creases once the first unfold is done.
	PhaseFlat
	// PhaseTransition animates between flat and folded.
	PhaseTransition
	// PhaseFolded shows the finished form.
	PhaseFolded
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseFlat:
		return "flat"
	case PhaseTransition:
		return "transition"
	case PhaseFolded:
		return "folded"
	default:
		return "unknown"
	}
}

// DefaultStep is the progress added or removed per animation tick.
const DefaultStep = 0.03

// ShapeSource produces the next folded form.
type ShapeSource interface {
	Generate() *origami.Shape
}

// CuePlayer requests the sound cues that accompany a fold or unfold.
type CuePlayer interface {
	Fold()
	Unfold()
}

// Config holds state machine tuning.
type Config struct {
	// Step is the progress change per tick.
	Step float64
	// ReferenceFPS converts elapsed time into ticks for Advance.
	ReferenceFPS float64
	// PaperHalf is the initial half-size of the paper in pixels.
	PaperHalf float64
}

// Machine owns all mutable session state.
type Machine struct {
	cfg    Config
	shapes ShapeSource
	cues   CuePlayer

	phase    Phase
	folding  bool
	progress float64

	shape      *origami.Shape
	creases    []origami.Crease
	hasCreases bool
	// creased is the shape the visible creases were taken from.
	creased *origami.Shape

	// ignoreClick swallows the click that pressed the start button.
	ignoreClick bool

	paperHalf float64
}

// New creates a machine in PhaseMenu with a pre-generated first shape.
// cues may be nil to run silently.
func New(cfg Config, shapes ShapeSource, cues CuePlayer) *Machine {
	if cfg.Step <= 0 {
		cfg.Step = DefaultStep
	}
	if cfg.ReferenceFPS <= 0 {
		cfg.ReferenceFPS = 60
	}
	if cues == nil {
		cues = silentCues{}
	}

	return &Machine{
		cfg:       cfg,
		shapes:    shapes,
		cues:      cues,
		phase:     PhaseMenu,
		folding:   true,
		shape:     shapes.Generate(),
		paperHalf: cfg.PaperHalf,
	}
}

// Begin leaves the start screen. It arms the one-shot click filter so the
// click that pressed the start button does not also fold the paper.
// Begin is a no-op outside PhaseMenu.
func (m *Machine) Begin() {
	if m.phase != PhaseMenu {
		return
	}
	m.ignoreClick = true
	m.setPhase(PhaseFlat)
}

// Click handles a pointer press on the canvas.
func (m *Machine) Click() {
	if m.phase == PhaseMenu {
		return
	}
	if m.ignoreClick {
		m.ignoreClick = false
		logger.Debug("click swallowed after start")
		return
	}

	switch m.phase {
	case PhaseFlat:
		m.folding = true
		m.progress = 0
		m.setPhase(PhaseTransition)
		m.cues.Fold()
	case PhaseFolded:
		m.folding = false
		m.progress = 1
		m.setPhase(PhaseTransition)
		m.cues.Unfold()
	}
}

// Tick advances an active transition by one step.
func (m *Machine) Tick() {
	m.advance(m.cfg.Step)
}

// Advance advances an active transition by elapsed seconds, scaling the
// step so the animation runs at the same speed at any frame rate.
func (m *Machine) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	m.advance(m.cfg.Step * dt * m.cfg.ReferenceFPS)
}

func (m *Machine) advance(step float64) {
	if m.phase != PhaseTransition {
		return
	}

	if m.folding {
		m.progress += step
		if m.progress >= 1 {
			m.progress = 1
			m.setPhase(PhaseFolded)
		}
		return
	}

	m.progress -= step
	if m.progress <= 0 {
		m.progress = 0
		m.finishUnfold()
	}
}

// finishUnfold leaves the outgoing shape's creases on the paper and
// prepares the next form.
func (m *Machine) finishUnfold() {
	m.creased = m.shape
	m.creases = origami.DeriveCreases(m.creased, m.paperHalf)
	m.hasCreases = true
	m.shape = m.shapes.Generate()
	logger.Debug("creases recorded", zap.Int("count", len(m.creases)))
	m.setPhase(PhaseFlat)
}

// Resize updates the paper half-size and re-derives visible creases.
func (m *Machine) Resize(paperHalf float64) {
	m.paperHalf = paperHalf
	if m.hasCreases {
		m.creases = origami.DeriveCreases(m.creased, paperHalf)
	}
}

func (m *Machine) setPhase(p Phase) {
	if m.phase == p {
		return
	}
	logger.Debug("phase changed",
		zap.Stringer("from", m.phase),
		zap.Stringer("to", p),
		zap.Float64("progress", m.progress),
	)
	m.phase = p
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return m.phase }

// Folding reports the direction of the current or last transition.
func (m *Machine) Folding() bool { return m.folding }

// Progress returns the raw transition progress in [0, 1].
func (m *Machine) Progress() float64 { return m.progress }

// Shape returns the current folded form.
func (m *Machine) Shape() *origami.Shape { return m.shape }

// HasCreases reports whether crease memory is visible.
func (m *Machine) HasCreases() bool { return m.hasCreases }

// Creases returns the current crease pattern.
func (m *Machine) Creases() []origami.Crease { return m.creases }

// PaperHalf returns the paper half-size.
func (m *Machine) PaperHalf() float64 { return m.paperHalf }

// View captures everything the renderer needs for one frame.
type View struct {
	Phase      Phase
	Progress   float64
	Shape      *origami.Shape
	Creases    []origami.Crease
	HasCreases bool
	PaperHalf  float64
}

// View returns a snapshot of the frame-relevant state.
func (m *Machine) View() View {
	progress := m.progress
	if m.phase == PhaseFolded {
		progress = 1
	}
	return View{
		Phase:      m.phase,
		Progress:   gmath.Clamp(progress, 0, 1),
		Shape:      m.shape,
		Creases:    m.creases,
		HasCreases: m.hasCreases,
		PaperHalf:  m.paperHalf,
	}
}

type silentCues struct{}

func (silentCues) Fold()   {}
func (silentCues) Unfold() {}
