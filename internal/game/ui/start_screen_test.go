package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/random-origami/internal/engine/colors"
	gmath "github.com/Faultbox/random-origami/pkg/math"
)

type textCall struct {
	text string
	col  colors.Color
}

type fakeCanvas struct {
	rects    []colors.Color
	outlines int
	texts    []textCall
}

func (c *fakeCanvas) Clear(colors.Color)                                {}
func (c *fakeCanvas) FillPolygon([]gmath.Vec2, colors.Color)            {}
func (c *fakeCanvas) StrokePolygon([]gmath.Vec2, float64, colors.Color) {}
func (c *fakeCanvas) Line(_, _ gmath.Vec2, _ float64, _ colors.Color)   {}
func (c *fakeCanvas) ShadowRect(_, _, _, _, _ float64, _ colors.Color)  {}
func (c *fakeCanvas) RectOutline(_, _, _, _, _ float64, _ colors.Color) { c.outlines++ }
func (c *fakeCanvas) Rect(_, _, _, _ float64, col colors.Color)         { c.rects = append(c.rects, col) }
func (c *fakeCanvas) Text(_, _ float64, text string, _ float64, col colors.Color) {
	c.texts = append(c.texts, textCall{text, col})
}
func (c *fakeCanvas) MeasureText(text string, scale float64) (float64, float64) {
	return float64(len(text)) * 7 * scale, 13 * scale
}

func newScreen(starts *int) *StartScreen {
	s := NewStartScreen(func() { *starts++ })
	s.Resize(800, 600)
	return s
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}

	assert.True(t, r.Contains(10, 20))
	assert.True(t, r.Contains(39, 59))
	assert.False(t, r.Contains(40, 30))
	assert.False(t, r.Contains(9, 30))
}

func TestButtonCentered(t *testing.T) {
	s := newScreen(new(int))
	b := s.Button()

	assert.InDelta(t, 400, b.X+b.W/2, 1e-9)
	assert.Greater(t, b.Y, 300.0)
}

func TestPressOutsideButtonIsSwallowed(t *testing.T) {
	starts := 0
	s := newScreen(&starts)

	assert.True(t, s.PointerDown(5, 5))
	assert.True(t, s.Visible())
	assert.Equal(t, 0, starts)
}

func TestPressButtonStartsOnce(t *testing.T) {
	starts := 0
	s := newScreen(&starts)
	b := s.Button()

	require.True(t, s.PointerDown(b.X+1, b.Y+1))
	assert.False(t, s.Visible())
	assert.Equal(t, 1, starts)

	assert.False(t, s.PointerDown(b.X+1, b.Y+1), "hidden overlay passes presses through")
	assert.Equal(t, 1, starts)
}

func TestHover(t *testing.T) {
	s := newScreen(new(int))
	b := s.Button()

	s.PointerMove(b.X+b.W/2, b.Y+b.H/2)
	assert.True(t, s.Hovered())

	s.PointerMove(0, 0)
	assert.False(t, s.Hovered())
}

func TestDrawInvertsOnHover(t *testing.T) {
	s := newScreen(new(int))

	c := &fakeCanvas{}
	s.Draw(c)
	require.Len(t, c.texts, 2)
	assert.Equal(t, Title, c.texts[0].text)
	assert.Equal(t, ButtonLabel, c.texts[1].text)
	assert.Equal(t, inkColor, c.texts[1].col)
	assert.Len(t, c.rects, 1, "overlay only")
	assert.Equal(t, 1, c.outlines)

	b := s.Button()
	s.PointerMove(b.X+1, b.Y+1)
	c = &fakeCanvas{}
	s.Draw(c)
	require.Len(t, c.rects, 2)
	assert.Equal(t, inkColor, c.rects[1])
	assert.Equal(t, colors.White, c.texts[1].col)
}

func TestDrawHidden(t *testing.T) {
	s := newScreen(new(int))
	b := s.Button()
	s.PointerDown(b.X+1, b.Y+1)

	c := &fakeCanvas{}
	s.Draw(c)
	assert.Empty(t, c.rects)
	assert.Empty(t, c.texts)
}
