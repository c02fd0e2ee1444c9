// Package pathfinding computes orthogonal, obstacle-avoiding connector
// paths between two item rectangles, choosing which side of each rectangle
// to exit and enter from.
package pathfinding

import (
	"go.uber.org/zap"

	"slate/config"
	"slate/geometry"
)

// Route is the result of routing one connection.
type Route struct {
	Path     []geometry.Point
	FromSide geometry.Side
	ToSide   geometry.Side
}

// Options constrain a route. A pinned side skips selection for that end.
type Options struct {
	FromSide *geometry.Side
	ToSide   *geometry.Side
}

// Router finds connector paths. Routing never fails: when no clean path
// exists it degrades to a direct or L-shaped fallback rather than omitting
// the connector.
type Router struct {
	cfg config.Routing
	log *zap.Logger
}

// NewRouter creates a router with the given tuning.
func NewRouter(cfg config.Routing) *Router {
	return &Router{cfg: cfg, log: zap.NewNop()}
}

// SetLogger installs a logger for routing diagnostics.
func (r *Router) SetLogger(log *zap.Logger) {
	if log != nil {
		r.log = log
	}
}

// Route picks the best pair of connection sides between from and to and
// returns an orthogonal path that clears the obstacle set. The caller must
// exclude the two endpoints' own rectangles from obstacles beforehand.
func (r *Router) Route(from, to geometry.Rect, obs []geometry.Rect, opts Options) Route {
	best := Route{}
	bestScore := 0.0
	found := false

	for _, fs := range geometry.Sides {
		if opts.FromSide != nil && fs != *opts.FromSide {
			continue
		}
		for _, ts := range geometry.Sides {
			if opts.ToSide != nil && ts != *opts.ToSide {
				continue
			}
			path := r.pathForSides(from, to, fs, ts, obs)
			score := r.score(path, from, to, fs, ts)
			// Strict comparison keeps the first candidate on ties, which
			// makes side selection deterministic.
			if !found || score < bestScore {
				best = Route{Path: path, FromSide: fs, ToSide: ts}
				bestScore = score
				found = true
			}
		}
	}

	best.Path = r.trim(best.Path)
	return best
}

// score rates a candidate path: Manhattan length plus a penalty per turn,
// minus a bonus when the two sides face each other along the dominant
// offset between the rectangles.
func (r *Router) score(path []geometry.Point, from, to geometry.Rect, fs, ts geometry.Side) float64 {
	s := pathLength(path) + r.cfg.TurnPenalty*float64(countTurns(path))
	if sidesFaceEachOther(from, to, fs, ts) {
		s -= r.cfg.FacingBonus
	}
	return s
}

// sidesFaceEachOther reports whether fs/ts are the opposite cardinal pair in
// the direction the two rectangles are predominantly offset.
func sidesFaceEachOther(from, to geometry.Rect, fs, ts geometry.Side) bool {
	fc := from.Center()
	tc := to.Center()
	dx := tc.X - fc.X
	dy := tc.Y - fc.Y

	if geometry.Abs(dx) >= geometry.Abs(dy) {
		if dx >= 0 {
			return fs == geometry.SideRight && ts == geometry.SideLeft
		}
		return fs == geometry.SideLeft && ts == geometry.SideRight
	}
	if dy >= 0 {
		return fs == geometry.SideBottom && ts == geometry.SideTop
	}
	return fs == geometry.SideTop && ts == geometry.SideBottom
}

// pathForSides builds the candidate path for one side pair: connection
// points at the edge midpoints, staging points projected outward by the
// clearance, then the cheapest clean path between the staging points.
func (r *Router) pathForSides(from, to geometry.Rect, fs, ts geometry.Side, obs []geometry.Rect) []geometry.Point {
	start := from.SideMidpoint(fs)
	end := to.SideMidpoint(ts)

	fn := fs.Normal()
	tn := ts.Normal()
	stagingStart := start.Add(fn.X*r.cfg.Clearance, fn.Y*r.cfg.Clearance)
	stagingEnd := end.Add(tn.X*r.cfg.Clearance, tn.Y*r.cfg.Clearance)

	var inner []geometry.Point
	if segmentClear(stagingStart, stagingEnd, obs) {
		inner = []geometry.Point{stagingStart, stagingEnd}
	} else {
		inner = r.search(stagingStart, stagingEnd, obs)
		if inner == nil {
			// Better to render something than to fail silently.
			r.log.Debug("no clean route, using L fallback",
				zap.String("from_side", fs.String()),
				zap.String("to_side", ts.String()))
			inner = lShapedPath(stagingStart, stagingEnd)
		}
	}

	path := make([]geometry.Point, 0, len(inner)+2)
	path = append(path, start)
	path = append(path, inner...)
	path = append(path, end)
	return SimplifyPath(path)
}

// trim shortens the final segment so an arrowhead can be drawn without
// overlapping the target, and offsets the first segment off the source edge.
func (r *Router) trim(path []geometry.Point) []geometry.Point {
	if len(path) < 2 {
		return path
	}
	out := make([]geometry.Point, len(path))
	copy(out, path)

	out[0] = pullToward(out[0], out[1], r.cfg.StartGap)
	n := len(out) - 1
	out[n] = pullToward(out[n], out[n-1], r.cfg.ArrowGap)
	return out
}

// pullToward moves p toward anchor by at most dist, never past the segment
// midpoint.
func pullToward(p, anchor geometry.Point, dist float64) geometry.Point {
	segLen := geometry.EuclideanDistance(p, anchor)
	if segLen == 0 {
		return p
	}
	d := geometry.Min(dist, segLen/2)
	t := d / segLen
	return geometry.Point{
		X: p.X + (anchor.X-p.X)*t,
		Y: p.Y + (anchor.Y-p.Y)*t,
	}
}
