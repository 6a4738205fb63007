package origami

import gmath "github.com/Faultbox/random-origami/pkg/math"

// Crease is a line segment on the flat paper, in paper space centered on
// the paper's middle.
type Crease struct {
	From, To gmath.Vec2
}

// BaseCreaseCount is the number of creases every pattern contains.
const BaseCreaseCount = 4

// DeriveCreases returns the crease pattern a Shape leaves on a square paper
// of half-size half: the two diagonals, the two midlines and, for every
// part, a segment from the center to its inner vertex direction and one
// from there to its tip direction.
func DeriveCreases(shape *Shape, half float64) []Crease {
	var parts []Part
	if shape != nil {
		parts = shape.Parts
	}

	creases := make([]Crease, 0, BaseCreaseCount+2*len(parts))
	creases = append(creases,
		Crease{gmath.Vec2{X: -half, Y: -half}, gmath.Vec2{X: half, Y: half}},
		Crease{gmath.Vec2{X: -half, Y: half}, gmath.Vec2{X: half, Y: -half}},
		Crease{gmath.Vec2{X: 0, Y: -half}, gmath.Vec2{X: 0, Y: half}},
		Crease{gmath.Vec2{X: -half, Y: 0}, gmath.Vec2{X: half, Y: 0}},
	)

	for _, p := range parts {
		inner := p.Vertices[1].Dir.Scale(half)
		tip := p.Vertices[2].Dir.Scale(half)
		creases = append(creases,
			Crease{gmath.Vec2{}, inner},
			Crease{inner, tip},
		)
	}
	return creases
}
