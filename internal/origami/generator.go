package origami

import (
	"math"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/Faultbox/random-origami/internal/engine/colors"
	"github.com/Faultbox/random-origami/internal/logger"
	gmath "github.com/Faultbox/random-origami/pkg/math"
)

// Generation ranges. Upper bounds are exclusive.
const (
	MinSides = 4
	MaxSides = 12

	FixedInnerRadius = 70
	FixedOuterRadius = 175

	MinInnerRadius = 40
	MaxInnerRadius = 90
	MinOuterRadius = 130
	MaxOuterRadius = 190

	// styleChoices is the size of the style selector; only one value maps
	// to StyleFixed.
	styleChoices = 3
)

// Shade pairs per wedge parity: first and second part of the wedge.
var (
	evenShades = [2]float64{0.05, 0.1}
	oddShades  = [2]float64{0.15, 0.2}
)

// Palette is the set of base colors a Shape can take.
var Palette = []colors.Color{
	colors.MustHex("#FFD1DC"),
	colors.MustHex("#B3E5FC"),
	colors.MustHex("#C8E6C9"),
	colors.MustHex("#FFF9C4"),
	colors.MustHex("#F8BBD0"),
	colors.MustHex("#E1BEE7"),
	colors.MustHex("#FFE0B2"),
	colors.MustHex("#AFCBFF"),
}

// Generator builds random Shapes from an injected random source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeededGenerator creates a generator with a deterministic PCG source.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Generate builds a new Shape.
func (g *Generator) Generate() *Shape {
	sides := MinSides + g.rng.IntN(MaxSides-MinSides)
	angleStep := 2 * math.Pi / float64(sides)

	base := Palette[g.rng.IntN(len(Palette))]

	style := StyleRandom
	if g.rng.IntN(styleChoices) == 0 {
		style = StyleFixed
	}

	parts := make([]Part, 0, sides*2)
	for i := 0; i < sides; i++ {
		a1 := float64(i) * angleStep
		a2 := float64(i+1) * angleStep
		midA := (a1 + a2) / 2

		// Both radii are drawn even for the fixed style so the stream of
		// random values does not depend on it.
		innerR := g.uniform(MinInnerRadius, MaxInnerRadius)
		outerR := g.uniform(MinOuterRadius, MaxOuterRadius)
		if style == StyleFixed {
			innerR, outerR = FixedInnerRadius, FixedOuterRadius
		}

		shades := evenShades
		if i%2 == 1 {
			shades = oddShades
		}

		tip := radial(midA, outerR)
		parts = append(parts,
			Part{Vertices: [3]Vertex{{}, radial(a1, innerR), tip}, Shade: shades[0]},
			Part{Vertices: [3]Vertex{{}, radial(a2, innerR), tip}, Shade: shades[1]},
		)
	}

	logger.Debug("shape generated",
		zap.Int("sides", sides),
		zap.Stringer("style", style),
		zap.String("color", base.Hex()),
	)

	return &Shape{
		Color: base,
		Sides: sides,
		Style: style,
		Parts: parts,
	}
}

// uniform returns a value in [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// radial returns a vertex at angle a, radius r in sculpture space.
func radial(a, r float64) Vertex {
	return Vertex{
		Pos: gmath.Polar(a, r),
		Dir: gmath.Polar(a, 1),
	}
}
