package vmath

import (
	"math"
)

// Vec2F is a float64 vector on the ground plane
// X is world X, Y is world Z (depth); height is never simulated
type Vec2F struct {
	X, Y float64
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FMagSq(v Vec2F) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Sqrt(V2FMagSq(v))
}

// V2FDist returns planar Euclidean distance between a and b
func V2FDist(a, b Vec2F) float64 {
	return V2FMag(V2FSub(a, b))
}

// V2FNormalize returns the unit vector of v, zero vector for zero input
func V2FNormalize(v Vec2F) Vec2F {
	mag := V2FMag(v)
	if mag == 0 {
		return Vec2F{}
	}
	inv := 1.0 / mag
	return Vec2F{v.X * inv, v.Y * inv}
}

// V2FRotate rotates v counter-clockwise by angle radians
func V2FRotate(v Vec2F, angle float64) Vec2F {
	sin, cos := math.Sincos(angle)
	return Vec2F{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// V2FFromAngle returns the unit vector at angle radians from +X
func V2FFromAngle(angle float64) Vec2F {
	sin, cos := math.Sincos(angle)
	return Vec2F{cos, sin}
}

// V2FYaw returns the heading of dir as a yaw around the vertical axis
// Zero yaw faces +Y (world +Z)
func V2FYaw(dir Vec2F) float64 {
	return math.Atan2(dir.X, dir.Y)
}

// V2FLerp linearly interpolates between a and b
func V2FLerp(a, b Vec2F, t float64) Vec2F {
	return Vec2F{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}
