package geometry

import "fmt"

// Point represents a 2D coordinate in absolute canvas units.
type Point struct {
	X, Y float64
}

// Add returns the point translated by the given offsets.
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String returns a compact representation for debugging.
func (p Point) String() string {
	return fmt.Sprintf("(%.1f,%.1f)", p.X, p.Y)
}

// Side represents one of the four cardinal edges of a rectangle, used as a
// connector anchor.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// Sides lists all sides in the fixed iteration order used for deterministic
// tie-breaking during side selection.
var Sides = [4]Side{SideTop, SideRight, SideBottom, SideLeft}

// String returns the string representation of a Side.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideRight:
		return SideLeft
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	default:
		return s
	}
}

// Normal returns the outward unit normal of the side.
func (s Side) Normal() Point {
	switch s {
	case SideTop:
		return Point{X: 0, Y: -1}
	case SideRight:
		return Point{X: 1, Y: 0}
	case SideBottom:
		return Point{X: 0, Y: 1}
	default:
		return Point{X: -1, Y: 0}
	}
}
