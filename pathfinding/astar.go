package pathfinding

import (
	"container/heap"

	"slate/geometry"
)

// searchNode is one state in the waypoint A* search.
type searchNode struct {
	waypoint int // index into the waypoint set
	gCost    float64
	hCost    float64
	fCost    float64
	parent   *searchNode
	index    int // heap index
}

// nodeQueue is a priority queue of search nodes.
type nodeQueue []*searchNode

func (nq nodeQueue) Len() int { return len(nq) }

func (nq nodeQueue) Less(i, j int) bool {
	if nq[i].fCost != nq[j].fCost {
		return nq[i].fCost < nq[j].fCost
	}
	// Tie-break toward the goal, then by waypoint index for determinism.
	if nq[i].hCost != nq[j].hCost {
		return nq[i].hCost < nq[j].hCost
	}
	return nq[i].waypoint < nq[j].waypoint
}

func (nq nodeQueue) Swap(i, j int) {
	nq[i], nq[j] = nq[j], nq[i]
	nq[i].index = i
	nq[j].index = j
}

func (nq *nodeQueue) Push(x interface{}) {
	n := x.(*searchNode)
	n.index = len(*nq)
	*nq = append(*nq, n)
}

func (nq *nodeQueue) Pop() interface{} {
	old := *nq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*nq = old[:n-1]
	return node
}

// search runs A* over a sparse waypoint graph between the two staging
// points. Waypoints are the staging points, the obstacle corners inflated by
// the clearance, and the axis-alignment points between them; edges exist
// only between waypoints sharing an x or y coordinate with a clear segment.
// Returns nil when no path exists or the node limit is exhausted.
func (r *Router) search(start, goal geometry.Point, obs []geometry.Rect) []geometry.Point {
	points, startIdx, goalIdx := buildWaypoints(start, goal, obs, r.cfg.Clearance)
	if startIdx < 0 || goalIdx < 0 {
		return nil
	}

	open := &nodeQueue{}
	heap.Init(open)
	closed := make(map[int]bool)
	nodes := make(map[int]*searchNode)

	startNode := &searchNode{
		waypoint: startIdx,
		hCost:    geometry.ManhattanDistance(points[startIdx], points[goalIdx]),
	}
	startNode.fCost = startNode.hCost
	heap.Push(open, startNode)
	nodes[startIdx] = startNode

	explored := 0
	for open.Len() > 0 {
		explored++
		if explored > r.cfg.MaxNodes {
			return nil
		}

		current := heap.Pop(open).(*searchNode)
		if current.waypoint == goalIdx {
			return reconstruct(current, points)
		}
		closed[current.waypoint] = true

		cp := points[current.waypoint]
		for i, p := range points {
			if i == current.waypoint || closed[i] {
				continue
			}
			// Orthogonal movement only.
			if geometry.Abs(p.X-cp.X) > 1e-6 && geometry.Abs(p.Y-cp.Y) > 1e-6 {
				continue
			}
			if !segmentClear(cp, p, obs) {
				continue
			}

			g := current.gCost + geometry.ManhattanDistance(cp, p)
			existing, seen := nodes[i]
			if !seen {
				n := &searchNode{
					waypoint: i,
					gCost:    g,
					hCost:    geometry.ManhattanDistance(p, points[goalIdx]),
					parent:   current,
				}
				n.fCost = n.gCost + n.hCost
				heap.Push(open, n)
				nodes[i] = n
			} else if g < existing.gCost {
				existing.gCost = g
				existing.fCost = g + existing.hCost
				existing.parent = current
				if existing.index >= 0 {
					heap.Fix(open, existing.index)
				} else {
					heap.Push(open, existing)
				}
			}
		}
	}

	return nil
}

// buildWaypoints assembles the candidate set: staging points, inflated
// obstacle corners, and the cross-alignment points of their x/y coordinates,
// which biases the search toward clean right-angle turns. Points strictly
// inside an obstacle are excluded. Returns -1 indices when a staging point
// itself is blocked.
func buildWaypoints(start, goal geometry.Point, obs []geometry.Rect, clearance float64) ([]geometry.Point, int, int) {
	xs := []float64{start.X, goal.X}
	ys := []float64{start.Y, goal.Y}
	for _, o := range obs {
		inflated := o.Inflate(clearance)
		xs = append(xs, inflated.X, inflated.Right())
		ys = append(ys, inflated.Y, inflated.Bottom())
	}
	xs = dedupe(xs)
	ys = dedupe(ys)

	type key struct{ x, y int64 }
	quantize := func(p geometry.Point) key {
		return key{int64(p.X * 1024), int64(p.Y * 1024)}
	}

	var points []geometry.Point
	seen := make(map[key]int)
	add := func(p geometry.Point) int {
		k := quantize(p)
		if idx, ok := seen[k]; ok {
			return idx
		}
		for _, o := range obs {
			if o.ContainsStrict(p) {
				seen[k] = -1
				return -1
			}
		}
		points = append(points, p)
		seen[k] = len(points) - 1
		return len(points) - 1
	}

	startIdx := add(start)
	goalIdx := add(goal)
	for _, x := range xs {
		for _, y := range ys {
			add(geometry.Point{X: x, Y: y})
		}
	}

	return points, startIdx, goalIdx
}

// reconstruct walks the parent chain back from the goal.
func reconstruct(goal *searchNode, points []geometry.Point) []geometry.Point {
	var path []geometry.Point
	for n := goal; n != nil; n = n.parent {
		path = append(path, points[n.waypoint])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func dedupe(vals []float64) []float64 {
	out := vals[:0]
	for _, v := range vals {
		dup := false
		for _, u := range out {
			if geometry.Abs(u-v) < 1e-6 {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, v)
		}
	}
	return out
}
