package gamemath

import "math"

// Vec3 is a position or velocity in arena units. X runs left to right, Y is
// up and Z is depth.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Finite reports whether every component is a finite number.
func (v Vec3) Finite() bool {
	return Finite(v.X) && Finite(v.Y) && Finite(v.Z)
}

// Sanitized returns v with every NaN or infinite component replaced by 0.
func (v Vec3) Sanitized() Vec3 {
	return Vec3{X: Sanitize(v.X), Y: Sanitize(v.Y), Z: Sanitize(v.Z)}
}

// Finite reports whether f is neither NaN nor infinite.
func Finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Sanitize returns 0 for NaN or infinite values and f otherwise.
func Sanitize(f float64) float64 {
	if Finite(f) {
		return f
	}
	return 0
}
