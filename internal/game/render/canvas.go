// Package render turns the state machine's view into drawing calls.
package render

import (
	"github.com/Faultbox/random-origami/internal/engine/colors"
	gmath "github.com/Faultbox/random-origami/pkg/math"
)

// Canvas is the set of drawing primitives the painter needs. Coordinates
// are screen pixels with the origin at the top-left corner.
type Canvas interface {
	// Clear fills the whole canvas.
	Clear(c colors.Color)
	// FillPolygon fills a convex polygon.
	FillPolygon(points []gmath.Vec2, c colors.Color)
	// StrokePolygon outlines a closed polygon.
	StrokePolygon(points []gmath.Vec2, width float64, c colors.Color)
	// Line draws a segment of the given width.
	Line(from, to gmath.Vec2, width float64, c colors.Color)
	// Rect fills an axis-aligned rectangle.
	Rect(x, y, w, h float64, c colors.Color)
	// RectOutline strokes an axis-aligned rectangle.
	RectOutline(x, y, w, h, width float64, c colors.Color)
	// ShadowRect draws a soft drop shadow spreading blur pixels around a rectangle.
	ShadowRect(x, y, w, h, blur float64, c colors.Color)
	// Text draws a single line of text with its top-left corner at (x, y).
	Text(x, y float64, text string, scale float64, c colors.Color)
	// MeasureText returns the size of rendered text.
	MeasureText(text string, scale float64) (w, h float64)
}
