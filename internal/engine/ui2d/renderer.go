// Package ui2d is a batching 2D renderer on OpenGL. It implements the
// drawing primitives the origami painter and the start screen use.
package ui2d

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/random-origami/internal/engine/colors"
	"github.com/Faultbox/random-origami/internal/engine/shader"
	gmath "github.com/Faultbox/random-origami/pkg/math"
)

const (
	solidStride = 7 // pos3 + color4
	textStride  = 9 // pos3 + uv2 + color4

	shadowLayers = 8
)

// Renderer queues geometry for a frame and draws it in two batches:
// solid triangles first, then text.
type Renderer struct {
	screenWidth  int
	screenHeight int

	solidShader *shader.Program
	textShader  *shader.Program

	solidVAO uint32
	solidVBO uint32

	textVAO uint32
	textVBO uint32

	// Current draw lists
	solidVertices []float32
	textVertices  []float32

	font *Font
}

// New creates a new 2D renderer. The GL context must be current.
func New(width, height int) (*Renderer, error) {
	r := &Renderer{
		screenWidth:   width,
		screenHeight:  height,
		solidVertices: make([]float32, 0, 8192),
		textVertices:  make([]float32, 0, 4096),
	}

	var err error
	r.solidShader, err = shader.Compile(solidVertexSrc, solidFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("create solid shader: %w", err)
	}

	r.textShader, err = shader.Compile(textVertexSrc, textFragmentSrc)
	if err != nil {
		r.solidShader.Delete()
		return nil, fmt.Errorf("create text shader: %w", err)
	}

	r.createSolidBuffers()
	r.createTextBuffers()

	r.font = NewFont()

	return r, nil
}

// Resize updates the logical screen dimensions used for projection.
func (r *Renderer) Resize(width, height int) {
	r.screenWidth = width
	r.screenHeight = height
}

// Size returns the logical screen dimensions.
func (r *Renderer) Size() (int, int) {
	return r.screenWidth, r.screenHeight
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	r.solidVertices = r.solidVertices[:0]
	r.textVertices = r.textVertices[:0]
}

// End draws everything queued since Begin.
func (r *Renderer) End() {
	var prevBlend int32
	gl.GetIntegerv(gl.BLEND, &prevBlend)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	proj := orthoMatrix(0, float32(r.screenWidth), float32(r.screenHeight), 0, -1, 1)

	if len(r.solidVertices) > 0 {
		r.solidShader.Use()
		r.solidShader.SetMat4("uProjection", &proj)

		gl.BindVertexArray(r.solidVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.solidVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(r.solidVertices)*4, unsafe.Pointer(&r.solidVertices[0]), gl.STREAM_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.solidVertices)/solidStride))
	}

	if len(r.textVertices) > 0 && r.font != nil {
		r.textShader.Use()
		r.textShader.SetMat4("uProjection", &proj)
		r.textShader.SetInt("uTexture", 0)

		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.font.TextureID())

		gl.BindVertexArray(r.textVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(r.textVertices)*4, unsafe.Pointer(&r.textVertices[0]), gl.STREAM_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.textVertices)/textStride))
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)

	if prevBlend == gl.FALSE {
		gl.Disable(gl.BLEND)
	}
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	if r.font != nil {
		r.font.Close()
	}
	if r.solidVAO != 0 {
		gl.DeleteVertexArrays(1, &r.solidVAO)
	}
	if r.solidVBO != 0 {
		gl.DeleteBuffers(1, &r.solidVBO)
	}
	if r.textVAO != 0 {
		gl.DeleteVertexArrays(1, &r.textVAO)
	}
	if r.textVBO != 0 {
		gl.DeleteBuffers(1, &r.textVBO)
	}
	if r.solidShader != nil {
		r.solidShader.Delete()
	}
	if r.textShader != nil {
		r.textShader.Delete()
	}
}

// Clear covers the whole screen with c.
func (r *Renderer) Clear(c colors.Color) {
	r.addQuad(0, 0, float32(r.screenWidth), float32(r.screenHeight), c)
}

// FillPolygon fills a convex polygon as a triangle fan.
func (r *Renderer) FillPolygon(points []gmath.Vec2, c colors.Color) {
	if len(points) < 3 {
		return
	}
	for i := 1; i < len(points)-1; i++ {
		r.addTriangle(points[0], points[i], points[i+1], c)
	}
}

// StrokePolygon outlines a closed polygon.
func (r *Renderer) StrokePolygon(points []gmath.Vec2, width float64, c colors.Color) {
	if len(points) < 2 {
		return
	}
	for i := range points {
		r.Line(points[i], points[(i+1)%len(points)], width, c)
	}
}

// Line draws a segment as a quad. Sub-pixel widths are drawn one pixel
// wide with proportionally reduced alpha.
func (r *Renderer) Line(from, to gmath.Vec2, width float64, c colors.Color) {
	d := to.Sub(from)
	length := d.Length()
	if length == 0 || width <= 0 {
		return
	}
	if width < 1 {
		c = c.WithAlpha(c.A * float32(width))
		width = 1
	}

	n := gmath.Vec2{X: -d.Y, Y: d.X}.Scale(width / 2 / length)
	a, b := from.Add(n), to.Add(n)
	bb, aa := to.Sub(n), from.Sub(n)
	r.addTriangle(a, b, bb, c)
	r.addTriangle(a, bb, aa, c)
}

// Rect fills an axis-aligned rectangle.
func (r *Renderer) Rect(x, y, w, h float64, c colors.Color) {
	r.addQuad(float32(x), float32(y), float32(w), float32(h), c)
}

// RectOutline draws a rectangle outline inside its bounds.
func (r *Renderer) RectOutline(x, y, w, h, width float64, c colors.Color) {
	fx, fy, fw, fh, t := float32(x), float32(y), float32(w), float32(h), float32(width)
	if width < 1 {
		c = c.WithAlpha(c.A * t)
		t = 1
	}
	// Top
	r.addQuad(fx, fy, fw, t, c)
	// Bottom
	r.addQuad(fx, fy+fh-t, fw, t, c)
	// Left
	r.addQuad(fx, fy+t, t, fh-t*2, c)
	// Right
	r.addQuad(fx+fw-t, fy+t, t, fh-t*2, c)
}

// ShadowRect approximates a blurred drop shadow with stacked translucent
// rectangles that grow by blur/shadowLayers each step.
func (r *Renderer) ShadowRect(x, y, w, h, blur float64, c colors.Color) {
	if blur <= 0 {
		r.Rect(x, y, w, h, c)
		return
	}
	layer := c.WithAlpha(c.A / shadowLayers)
	for i := shadowLayers; i >= 1; i-- {
		spread := blur * float64(i) / shadowLayers
		r.Rect(x-spread, y-spread, w+spread*2, h+spread*2, layer)
	}
}

// Text draws text with its top-left corner at (x, y).
func (r *Renderer) Text(x, y float64, text string, scale float64, c colors.Color) {
	if r.font == nil {
		return
	}

	gw, gh := r.font.GlyphSize()
	charW := float32(float64(gw) * scale)
	charH := float32(float64(gh) * scale)

	curX, curY := float32(x), float32(y)
	for _, char := range text {
		if char == '\n' {
			curX = float32(x)
			curY += charH
			continue
		}

		u0, v0, u1, v1 := r.font.GetGlyphUV(char)
		r.addTexturedQuad(curX, curY, charW, charH, u0, v0, u1, v1, c)
		curX += charW
	}
}

// MeasureText returns the width and height of rendered text.
func (r *Renderer) MeasureText(text string, scale float64) (float64, float64) {
	if r.font == nil {
		return 0, 0
	}
	return r.font.MeasureText(text, scale)
}

func (r *Renderer) addTriangle(a, b, c gmath.Vec2, col colors.Color) {
	r.solidVertices = append(r.solidVertices,
		float32(a.X), float32(a.Y), 0, col.R, col.G, col.B, col.A,
		float32(b.X), float32(b.Y), 0, col.R, col.G, col.B, col.A,
		float32(c.X), float32(c.Y), 0, col.R, col.G, col.B, col.A,
	)
}

// addQuad adds a solid color quad to the vertex buffer.
func (r *Renderer) addQuad(x, y, w, h float32, c colors.Color) {
	r.solidVertices = append(r.solidVertices,
		x, y, 0, c.R, c.G, c.B, c.A,
		x+w, y, 0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, c.R, c.G, c.B, c.A,
	)
	r.solidVertices = append(r.solidVertices,
		x, y, 0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, c.R, c.G, c.B, c.A,
		x, y+h, 0, c.R, c.G, c.B, c.A,
	)
}

// addTexturedQuad adds a textured quad to the text vertex buffer.
func (r *Renderer) addTexturedQuad(x, y, w, h float32, u0, v0, u1, v1 float32, c colors.Color) {
	r.textVertices = append(r.textVertices,
		x, y, 0, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y, 0, u1, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, u1, v1, c.R, c.G, c.B, c.A,
	)
	r.textVertices = append(r.textVertices,
		x, y, 0, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, u1, v1, c.R, c.G, c.B, c.A,
		x, y+h, 0, u0, v1, c.R, c.G, c.B, c.A,
	)
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}

func (r *Renderer) createSolidBuffers() {
	gl.GenVertexArrays(1, &r.solidVAO)
	gl.BindVertexArray(r.solidVAO)

	gl.GenBuffers(1, &r.solidVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.solidVBO)

	stride := int32(solidStride * 4)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (r *Renderer) createTextBuffers() {
	gl.GenVertexArrays(1, &r.textVAO)
	gl.BindVertexArray(r.textVAO)

	gl.GenBuffers(1, &r.textVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)

	stride := int32(textStride * 4)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, 5*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}
