// Package ui provides the start screen overlay.
package ui

import (
	"github.com/Faultbox/random-origami/internal/engine/colors"
	"github.com/Faultbox/random-origami/internal/game/render"
)

const (
	Title       = "RANDOM ORIGAMI"
	ButtonLabel = "START EXPERIENCE"

	titleScale  = 4
	buttonScale = 2
	buttonW     = 300
	buttonH     = 56
	titleGap    = 48
	borderWidth = 1
)

var (
	overlayColor = colors.RGBA(242, 242, 242, 230)
	inkColor     = colors.MustHex("#333333")
)

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// StartScreen is the modal overlay shown before the first interaction.
// Pressing its button hides it and calls onStart once.
type StartScreen struct {
	onStart func()
	visible bool
	hovered bool
	width   float64
	height  float64
}

// NewStartScreen creates a visible start screen.
func NewStartScreen(onStart func()) *StartScreen {
	return &StartScreen{onStart: onStart, visible: true}
}

// Visible reports whether the overlay is still shown.
func (s *StartScreen) Visible() bool {
	return s.visible
}

// Hovered reports whether the pointer is over the button.
func (s *StartScreen) Hovered() bool {
	return s.hovered
}

// Resize updates the screen size used for layout.
func (s *StartScreen) Resize(width, height int) {
	s.width = float64(width)
	s.height = float64(height)
}

// Button returns the button's screen rectangle.
func (s *StartScreen) Button() Rect {
	return Rect{
		X: (s.width - buttonW) / 2,
		Y: s.height/2 + titleGap/2,
		W: buttonW,
		H: buttonH,
	}
}

// PointerMove updates the hover state.
func (s *StartScreen) PointerMove(x, y float64) {
	s.hovered = s.visible && s.Button().Contains(x, y)
}

// PointerDown handles a press and reports whether the overlay consumed it.
// While visible the overlay is modal, so every press is consumed.
func (s *StartScreen) PointerDown(x, y float64) bool {
	if !s.visible {
		return false
	}
	if s.Button().Contains(x, y) {
		s.visible = false
		s.hovered = false
		if s.onStart != nil {
			s.onStart()
		}
	}
	return true
}

// Draw paints the overlay when visible.
func (s *StartScreen) Draw(c render.Canvas) {
	if !s.visible {
		return
	}

	c.Rect(0, 0, s.width, s.height, overlayColor)

	tw, th := c.MeasureText(Title, titleScale)
	c.Text((s.width-tw)/2, s.height/2-titleGap/2-th, Title, titleScale, inkColor)

	b := s.Button()
	text := inkColor
	if s.hovered {
		c.Rect(b.X, b.Y, b.W, b.H, inkColor)
		text = colors.White
	}
	c.RectOutline(b.X, b.Y, b.W, b.H, borderWidth, inkColor)

	lw, lh := c.MeasureText(ButtonLabel, buttonScale)
	c.Text(b.X+(b.W-lw)/2, b.Y+(b.H-lh)/2, ButtonLabel, buttonScale, text)
}
