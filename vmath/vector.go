package vmath

import "math"

// Vec2 is a 2-D point or offset in world units.
type Vec2 struct {
	X, Y float64
}

// Polar builds a vector from radius and angle (radians, counter-clockwise
// from +X).
func Polar(r, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: r * cos, Y: r * sin}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Len returns the distance from the origin.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Rotate returns v rotated by angle radians about the origin. Both
// components come from the same snapshot, so repeated small rotations
// preserve |v| up to float error.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}
