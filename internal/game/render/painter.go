package render

import (
	"github.com/Faultbox/random-origami/internal/easing"
	"github.com/Faultbox/random-origami/internal/engine/colors"
	"github.com/Faultbox/random-origami/internal/game/states"
	"github.com/Faultbox/random-origami/internal/origami"
	gmath "github.com/Faultbox/random-origami/pkg/math"
)

// SculptureExtent is the sculpture-space distance that maps onto the paper
// half-size when fully folded.
const SculptureExtent = 200

// HintText is shown in the corner once the experience has started.
const HintText = "Click to fold / unfold"

// Theme colors and sizes.
var (
	ColorBackground = colors.Gray(242)
	ColorGrid       = colors.Gray(220)
	ColorPaper      = colors.White
	ColorShadow     = colors.RGBA(0, 0, 0, 15)
	ColorBorder     = colors.Gray(200)
	ColorCrease     = colors.GrayA(215, 150)
	ColorHint       = colors.GrayA(40, 120)
	ColorEdge       = colors.Gray(40)
)

const (
	gridSpacing   = 100
	shadowBlur    = 20
	creaseWidth   = 0.5
	edgeWidth     = 0.6
	edgeMaxAlpha  = 40.0 / 255.0
	hintMargin    = 24
	hintTextScale = 1
)

// InterpolateVertex moves a vertex from its spot on the flat paper (t=0)
// to its folded position (t=1).
func InterpolateVertex(v origami.Vertex, paperHalf, t float64) gmath.Vec2 {
	flat := v.Dir.Scale(paperHalf)
	folded := v.Pos.Scale(paperHalf / SculptureExtent)
	return flat.Lerp(folded, t)
}

// InterpolateColor blends a part from white paper (t=0) to its shaded base
// color (t=1).
func InterpolateColor(part origami.Part, base colors.Color, t float64) colors.Color {
	shaded := base.Lerp(colors.Black, part.Shade)
	return colors.White.Lerp(shaded, t)
}

// Painter draws frames for the state machine.
type Painter struct {
	canvas Canvas
	curve  easing.Curve

	width, height float64

	// scratch buffers reused across frames
	points [3]gmath.Vec2
}

// NewPainter creates a painter drawing on canvas. A nil curve selects
// easing.EaseInOutQuart.
func NewPainter(canvas Canvas, curve easing.Curve) *Painter {
	if curve == nil {
		curve = easing.EaseInOutQuart
	}
	return &Painter{canvas: canvas, curve: curve}
}

// Resize sets the canvas size in pixels.
func (p *Painter) Resize(width, height int) {
	p.width = float64(width)
	p.height = float64(height)
}

// center returns the screen position of the paper center.
func (p *Painter) center() gmath.Vec2 {
	return gmath.Vec2{X: p.width / 2, Y: p.height / 2}
}

// Draw renders one frame of v.
func (p *Painter) Draw(v states.View) {
	p.canvas.Clear(ColorBackground)

	if v.Phase == states.PhaseMenu {
		p.drawMenuDecoration()
		return
	}

	p.drawHint()

	switch v.Phase {
	case states.PhaseFlat:
		p.drawPaper(v)
	case states.PhaseTransition:
		p.drawShape(v.Shape, v.PaperHalf, p.curve(v.Progress))
	case states.PhaseFolded:
		p.drawShape(v.Shape, v.PaperHalf, 1)
	}
}

func (p *Painter) drawMenuDecoration() {
	for x := 0.0; x < p.width; x += gridSpacing {
		p.canvas.Line(gmath.Vec2{X: x}, gmath.Vec2{X: x, Y: p.height}, 1, ColorGrid)
	}
	for y := 0.0; y < p.height; y += gridSpacing {
		p.canvas.Line(gmath.Vec2{Y: y}, gmath.Vec2{X: p.width, Y: y}, 1, ColorGrid)
	}
}

func (p *Painter) drawHint() {
	_, h := p.canvas.MeasureText(HintText, hintTextScale)
	p.canvas.Text(hintMargin, p.height-hintMargin-h, HintText, hintTextScale, ColorHint)
}

func (p *Painter) drawPaper(v states.View) {
	c := p.center()
	size := v.PaperHalf * 2
	x, y := c.X-v.PaperHalf, c.Y-v.PaperHalf

	p.canvas.ShadowRect(x, y, size, size, shadowBlur, ColorShadow)
	p.canvas.Rect(x, y, size, size, ColorPaper)

	if v.HasCreases {
		for _, cr := range v.Creases {
			p.canvas.Line(c.Add(cr.From), c.Add(cr.To), creaseWidth, ColorCrease)
		}
	}

	p.canvas.RectOutline(x, y, size, size, 1, ColorBorder)
}

// drawShape draws every part at the same eased progress t.
func (p *Painter) drawShape(shape *origami.Shape, paperHalf, t float64) {
	if shape == nil {
		return
	}

	c := p.center()
	edge := ColorEdge.WithAlpha(float32(gmath.Lerp(0, edgeMaxAlpha, t)))

	for _, part := range shape.Parts {
		pts := p.points[:0]
		for _, vert := range part.Vertices {
			pts = append(pts, c.Add(InterpolateVertex(vert, paperHalf, t)))
		}
		p.canvas.FillPolygon(pts, InterpolateColor(part, shape.Color, t))
		p.canvas.StrokePolygon(pts, edgeWidth, edge)
	}
}
