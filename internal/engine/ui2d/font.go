package ui2d

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/random-origami/internal/engine/ui2d/glyphs"
)

// Font is a bitmap glyph atlas uploaded to a GL texture.
type Font struct {
	atlas   *glyphs.Atlas
	texture uint32
}

// NewFont rasterizes the built-in bitmap font and uploads it.
func NewFont() *Font {
	atlas := glyphs.New()
	b := atlas.Image.Bounds()

	// White texels with the glyph mask in alpha; the text shader tints them.
	pixels := make([]byte, b.Dx()*b.Dy()*4)
	for i, a := range atlas.Image.Pix {
		pixels[i*4+0] = 255
		pixels[i*4+1] = 255
		pixels[i*4+2] = 255
		pixels[i*4+3] = a
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Font{atlas: atlas, texture: tex}
}

// TextureID returns the GL texture holding the atlas.
func (f *Font) TextureID() uint32 {
	return f.texture
}

// GlyphSize returns the size of one glyph cell in pixels.
func (f *Font) GlyphSize() (int, int) {
	return f.atlas.CellW, f.atlas.CellH
}

// GetGlyphUV returns texture coordinates for a character.
func (f *Font) GetGlyphUV(r rune) (u0, v0, u1, v1 float32) {
	return f.atlas.UV(r)
}

// MeasureText returns the size of text drawn at scale.
func (f *Font) MeasureText(text string, scale float64) (float64, float64) {
	return f.atlas.Measure(text, scale)
}

// Close deletes the texture.
func (f *Font) Close() {
	if f.texture != 0 {
		gl.DeleteTextures(1, &f.texture)
		f.texture = 0
	}
}
