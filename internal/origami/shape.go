// Package origami generates the folded radial forms and the crease
// patterns they leave behind on the flat paper.
package origami

import (
	"github.com/Faultbox/random-origami/internal/engine/colors"
	gmath "github.com/Faultbox/random-origami/pkg/math"
)

// Vertex is a corner of a Part.
type Vertex struct {
	// Pos is the position in the folded form (sculpture space).
	Pos gmath.Vec2
	// Dir is the unit direction from the paper center where this vertex
	// sits before folding. The center vertex has a zero direction.
	Dir gmath.Vec2
}

// Part is one radial wedge triangle of a Shape.
type Part struct {
	Vertices [3]Vertex
	// Shade darkens the base color toward black (0..1).
	Shade float64
}

// Shape is a complete folded form.
type Shape struct {
	Color colors.Color
	Sides int
	Style Style
	Parts []Part
}

// Style selects the radius profile of a Shape.
type Style int

const (
	// StyleFixed uses the same radii for every wedge.
	StyleFixed Style = iota
	// StyleRandom draws radii per wedge.
	StyleRandom
)

func (s Style) String() string {
	switch s {
	case StyleFixed:
		return "fixed"
	case StyleRandom:
		return "random"
	default:
		return "unknown"
	}
}
