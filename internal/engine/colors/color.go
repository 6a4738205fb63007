// Package colors provides the RGBA color type shared by the drawing layers.
package colors

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Predefined colors.
var (
	Transparent = Color{0, 0, 0, 0}
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
)

// RGBA creates a color from 8-bit RGBA values (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

// Gray creates an opaque gray level, like a single-argument fill in a sketch.
func Gray(v uint8) Color {
	return RGBA(v, v, v, 255)
}

// GrayA creates a gray level with alpha.
func GrayA(v, a uint8) Color {
	return RGBA(v, v, v, a)
}

// Hex parses "#RRGGBB" or "#RGB" into an opaque color.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return fromColorful(c, 1), nil
}

// MustHex is like Hex but panics on malformed input. Use for literals only.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return c.toColorful().Hex()
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Lerp blends from c (t=0) to other (t=1) channel by channel in RGB space.
func (c Color) Lerp(other Color, t float64) Color {
	blended := c.toColorful().BlendRgb(other.toColorful(), t)
	alpha := float64(c.A) + (float64(other.A)-float64(c.A))*t
	return fromColorful(blended, float32(alpha))
}

// Darken blends the color toward black by factor.
func (c Color) Darken(factor float64) Color {
	return c.Lerp(Black.WithAlpha(c.A), factor)
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

func fromColorful(c colorful.Color, alpha float32) Color {
	return Color{
		R: float32(c.R),
		G: float32(c.G),
		B: float32(c.B),
		A: alpha,
	}
}
