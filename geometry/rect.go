package geometry

import "fmt"

// epsilon for boundary comparisons. Touching a rectangle edge is never a
// collision, so all interior tests are strict.
const eps = 1e-9

// Rect is an axis-aligned rectangle in absolute canvas units.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// IsEmpty reports whether the rectangle has no area. Unmeasured items
// resolve to empty rectangles and must be skipped by callers.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inflate returns the rectangle grown by m on every side.
func (r Rect) Inflate(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, Width: r.Width + 2*m, Height: r.Height + 2*m}
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	x := Min(r.X, o.X)
	y := Min(r.Y, o.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  Max(r.Right(), o.Right()) - x,
		Height: Max(r.Bottom(), o.Bottom()) - y,
	}
}

// ContainsStrict reports whether p lies strictly inside the rectangle.
// Points on the edge do not count.
func (r Rect) ContainsStrict(p Point) bool {
	return p.X > r.X+eps && p.X < r.Right()-eps &&
		p.Y > r.Y+eps && p.Y < r.Bottom()-eps
}

// SideMidpoint returns the midpoint of the given edge.
func (r Rect) SideMidpoint(s Side) Point {
	switch s {
	case SideTop:
		return Point{X: r.X + r.Width/2, Y: r.Y}
	case SideRight:
		return Point{X: r.Right(), Y: r.Y + r.Height/2}
	case SideBottom:
		return Point{X: r.X + r.Width/2, Y: r.Bottom()}
	default:
		return Point{X: r.X, Y: r.Y + r.Height/2}
	}
}

// Corners returns the four corner points in clockwise order from top-left.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.X, Y: r.Bottom()},
	}
}

// IntersectsSegment reports whether the segment from a to b passes through
// the strict interior of the rectangle. A segment that only touches an edge
// or a corner does not intersect. Uses Liang-Barsky clipping.
func (r Rect) IntersectsSegment(a, b Point) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y

	t0, t1 := 0.0, 1.0
	clip := func(p, q float64) bool {
		if Abs(p) < eps {
			// Parallel to this boundary: inside only if strictly within.
			return q > eps
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}

	if !clip(-dx, a.X-r.X) {
		return false
	}
	if !clip(dx, r.Right()-a.X) {
		return false
	}
	if !clip(-dy, a.Y-r.Y) {
		return false
	}
	if !clip(dy, r.Bottom()-a.Y) {
		return false
	}

	// A degenerate overlap (corner graze or edge run) is not a collision.
	return t1-t0 > eps
}

// String returns a compact representation for debugging.
func (r Rect) String() string {
	return fmt.Sprintf("{%.1f,%.1f %.1fx%.1f}", r.X, r.Y, r.Width, r.Height)
}
