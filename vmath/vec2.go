package vmath

import "math"

// Vec2 is a float64 2D vector in board-normalized units
// Used for both positions ([0,1]x[0,1]) and velocities (units/sec)
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec2) Mag() float64 {
	return math.Hypot(v.X, v.Y)
}

// ReflectX returns velocity reflected off a vertical wall (left/right edge)
func (v Vec2) ReflectX() Vec2 {
	return Vec2{-v.X, v.Y}
}

// ReflectY returns velocity reflected off a horizontal line (paddle edge)
func (v Vec2) ReflectY() Vec2 {
	return Vec2{v.X, -v.Y}
}

// Lerp interpolates between a and b, t is not clamped
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}
