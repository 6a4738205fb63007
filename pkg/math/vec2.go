// Package math provides small vector helpers for 2D layout and geometry.
package math

import "math"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Polar returns the point at angle a (radians) and distance r from the origin.
func Polar(a, r float64) Vec2 {
	return Vec2{math.Cos(a) * r, math.Sin(a) * r}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the magnitude.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Lerp interpolates linearly from v (t=0) to other (t=1).
func (v Vec2) Lerp(other Vec2, t float64) Vec2 {
	return Vec2{
		X: Lerp(v.X, other.X, t),
		Y: Lerp(v.Y, other.Y, t),
	}
}

// Lerp interpolates linearly between two scalars.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
