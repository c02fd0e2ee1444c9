// Package geometry provides the scalar, point and rectangle math used by
// the layout resolver and the connection router.
package geometry

import "math"

// Abs returns the absolute value of x.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the minimum of two values.
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two values.
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// ManhattanDistance calculates the Manhattan distance between two points.
func ManhattanDistance(a, b Point) float64 {
	return Abs(b.X-a.X) + Abs(b.Y-a.Y)
}

// EuclideanDistance calculates the straight-line distance between two points.
func EuclideanDistance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// IsHorizontal returns true if the offset from a to b is more horizontal
// than vertical.
func IsHorizontal(a, b Point) bool {
	return Abs(b.X-a.X) > Abs(b.Y-a.Y)
}
