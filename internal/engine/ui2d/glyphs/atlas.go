// Package glyphs rasterizes a fixed-size bitmap font into a texture atlas.
package glyphs

import (
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Printable ASCII range covered by the atlas.
const (
	FirstRune = ' '
	LastRune  = '~'
	fallback  = '?'
	columns   = 16
)

// Atlas is a grid of equally sized glyph cells.
type Atlas struct {
	Image *image.Alpha
	CellW int
	CellH int
}

// New rasterizes basicfont's 7x13 face.
func New() *Atlas {
	face := basicfont.Face7x13
	cellW := face.Advance
	cellH := face.Height

	count := int(LastRune-FirstRune) + 1
	rows := (count + columns - 1) / columns
	img := image.NewAlpha(image.Rect(0, 0, columns*cellW, rows*cellH))

	d := font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for r := FirstRune; r <= LastRune; r++ {
		col, row := cell(r)
		d.Dot = fixed.P(col*cellW, row*cellH+face.Ascent)
		d.DrawString(string(r))
	}

	return &Atlas{Image: img, CellW: cellW, CellH: cellH}
}

func cell(r rune) (col, row int) {
	i := int(r - FirstRune)
	return i % columns, i / columns
}

// UV returns the texture coordinates of a rune's cell. Runes outside the
// atlas map to '?'.
func (a *Atlas) UV(r rune) (u0, v0, u1, v1 float32) {
	if r < FirstRune || r > LastRune {
		r = fallback
	}
	col, row := cell(r)
	b := a.Image.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())

	u0 = float32(col*a.CellW) / w
	v0 = float32(row*a.CellH) / h
	u1 = float32((col+1)*a.CellW) / w
	v1 = float32((row+1)*a.CellH) / h
	return u0, v0, u1, v1
}

// Measure returns the size of text drawn at scale. Lines are split on '\n'.
func (a *Atlas) Measure(text string, scale float64) (w, h float64) {
	if text == "" {
		return 0, 0
	}
	lines := strings.Split(text, "\n")
	longest := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > longest {
			longest = n
		}
	}
	return float64(longest*a.CellW) * scale, float64(len(lines)*a.CellH) * scale
}
