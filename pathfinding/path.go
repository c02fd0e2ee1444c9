package pathfinding

import "slate/geometry"

// pathLength sums the Manhattan length of every segment.
func pathLength(path []geometry.Point) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		total += geometry.ManhattanDistance(path[i], path[i+1])
	}
	return total
}

// countTurns counts direction changes along the polyline.
func countTurns(path []geometry.Point) int {
	turns := 0
	for i := 1; i+1 < len(path); i++ {
		if !collinear(path[i-1], path[i], path[i+1]) {
			turns++
		}
	}
	return turns
}

// collinear reports whether b lies on the straight line through a and c.
func collinear(a, b, c geometry.Point) bool {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	return geometry.Abs(cross) < 1e-6
}

// SimplifyPath drops intermediate points that are collinear with their
// neighbors, and removes duplicate consecutive points.
func SimplifyPath(path []geometry.Point) []geometry.Point {
	if len(path) <= 2 {
		return path
	}

	simplified := []geometry.Point{path[0]}
	for i := 1; i < len(path)-1; i++ {
		prev := simplified[len(simplified)-1]
		if path[i] == prev {
			continue
		}
		if collinear(prev, path[i], path[i+1]) {
			continue
		}
		simplified = append(simplified, path[i])
	}

	last := path[len(path)-1]
	if simplified[len(simplified)-1] != last {
		simplified = append(simplified, last)
	}
	return simplified
}

// segmentClear reports whether the segment between two points passes
// through no obstacle's strict interior. Touching an edge is not a
// collision.
func segmentClear(a, b geometry.Point, obs []geometry.Rect) bool {
	for _, o := range obs {
		if o.IntersectsSegment(a, b) {
			return false
		}
	}
	return true
}

// lShapedPath is the last-resort fallback: two segments through the corner
// at {start.x, end.y}, emitted even when it crosses an obstacle.
func lShapedPath(start, end geometry.Point) []geometry.Point {
	if start.X == end.X || start.Y == end.Y {
		return []geometry.Point{start, end}
	}
	return []geometry.Point{start, {X: start.X, Y: end.Y}, end}
}
