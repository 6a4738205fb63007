// Package easing maps linear animation progress onto eased progress.
package easing

import (
	"fmt"
	"math"
	"sort"

	"github.com/tanema/gween/ease"
)

// Curve maps t in [0, 1] to eased progress in [0, 1].
type Curve func(t float64) float64

// DefaultCurve is the name of the curve used when none is configured.
const DefaultCurve = "quart"

// EaseInOutQuart is the quartic ease-in-out curve.
func EaseInOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 4)/2
}

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return t
}

var curves = map[string]Curve{
	"quart":  EaseInOutQuart,
	"linear": Linear,
	"cubic":  fromTween(ease.InOutCubic),
	"quint":  fromTween(ease.InOutQuint),
	"sine":   fromTween(ease.InOutSine),
	"expo":   fromTween(ease.InOutExpo),
	"circ":   fromTween(ease.InOutCirc),
}

// Lookup returns the named curve.
func Lookup(name string) (Curve, error) {
	c, ok := curves[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing curve %q", name)
	}
	return c, nil
}

// Names lists the registered curve names in sorted order.
func Names() []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fromTween adapts a gween (t, begin, change, duration) function to a unit
// Curve, pinning the endpoints so float32 rounding never leaks past them.
func fromTween(fn ease.TweenFunc) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return float64(fn(float32(t), 0, 1, 1))
	}
}
