package origami

import (
	"testing"

	"github.com/stretchr/testify/assert"

	gmath "github.com/Faultbox/random-origami/pkg/math"
)

func TestDeriveCreasesCount(t *testing.T) {
	g := NewSeededGenerator(3)
	for i := 0; i < 50; i++ {
		s := g.Generate()
		creases := DeriveCreases(s, 250)
		assert.Len(t, creases, BaseCreaseCount+2*len(s.Parts))
	}
}

func TestDeriveCreasesBase(t *testing.T) {
	creases := DeriveCreases(&Shape{}, 100)
	want := []Crease{
		{gmath.Vec2{X: -100, Y: -100}, gmath.Vec2{X: 100, Y: 100}},
		{gmath.Vec2{X: -100, Y: 100}, gmath.Vec2{X: 100, Y: -100}},
		{gmath.Vec2{X: 0, Y: -100}, gmath.Vec2{X: 0, Y: 100}},
		{gmath.Vec2{X: -100, Y: 0}, gmath.Vec2{X: 100, Y: 0}},
	}
	assert.Equal(t, want, creases)
}

func TestDeriveCreasesNilShape(t *testing.T) {
	assert.Len(t, DeriveCreases(nil, 10), BaseCreaseCount)
}

func TestDeriveCreasesFromParts(t *testing.T) {
	part := Part{
		Vertices: [3]Vertex{
			{},
			{Pos: gmath.Vec2{X: 70, Y: 0}, Dir: gmath.Vec2{X: 1, Y: 0}},
			{Pos: gmath.Vec2{X: 0, Y: 175}, Dir: gmath.Vec2{X: 0, Y: 1}},
		},
		Shade: 0.05,
	}
	creases := DeriveCreases(&Shape{Parts: []Part{part}}, 50)

	assert.Len(t, creases, 6)
	assert.Equal(t, Crease{gmath.Vec2{}, gmath.Vec2{X: 50, Y: 0}}, creases[4])
	assert.Equal(t, Crease{gmath.Vec2{X: 50, Y: 0}, gmath.Vec2{X: 0, Y: 50}}, creases[5])
}

func TestDeriveCreasesDeterministic(t *testing.T) {
	s := NewSeededGenerator(11).Generate()
	first := DeriveCreases(s, 312.5)
	second := DeriveCreases(s, 312.5)
	assert.Equal(t, first, second)
}

func TestDeriveCreasesScalesWithHalfSize(t *testing.T) {
	s := NewSeededGenerator(5).Generate()
	small := DeriveCreases(s, 100)
	large := DeriveCreases(s, 200)

	for i := range small {
		assert.InDelta(t, small[i].To.X*2, large[i].To.X, 1e-9)
		assert.InDelta(t, small[i].To.Y*2, large[i].To.Y, 1e-9)
	}
}
