// Package obstacles derives axis-aligned routing obstacles from resolved
// item placements: one rectangle per item, with group rectangles synthesized
// from the recursively resolved bounds of their live descendants.
package obstacles

import (
	"slate/config"
	"slate/document"
	"slate/geometry"
	"slate/resolve"
)

// Obstacle is one routing obstacle with the id of the item it came from, so
// callers can exclude the endpoints of the connection being routed.
type Obstacle struct {
	ID   string
	Rect geometry.Rect
}

// Manager computes obstacle rectangles. It holds no per-tick state; every
// call resolves against the snapshot it is given.
type Manager struct {
	resolver *resolve.Resolver
	cfg      config.Bounds
}

// NewManager creates an obstacle manager on top of a resolver.
func NewManager(resolver *resolve.Resolver, cfg config.Bounds) *Manager {
	return &Manager{resolver: resolver, cfg: cfg}
}

// BoundsForRouting returns the obstacle rectangle for an item, expanded by
// the routing margin, or nil when the item is missing or not yet measured.
func (m *Manager) BoundsForRouting(s resolve.Snapshot, itemID string) *geometry.Rect {
	return m.routingBounds(s, itemID, make(map[string]struct{}))
}

// BoundsForSelection returns the rectangle used for hit-testing connection
// handles. Same shape as the routing bounds, different padding; never used
// as a routing obstacle.
func (m *Manager) BoundsForSelection(s resolve.Snapshot, itemID string) geometry.Rect {
	r := m.routingBounds(s, itemID, make(map[string]struct{}))
	if r == nil {
		return geometry.Rect{}
	}
	// Swap the routing margin for the selection margin.
	return r.Inflate(m.cfg.SelectionMargin - m.cfg.RoutingMargin)
}

// Obstacles returns one rectangle per top-level item or group, each inflated
// by expandBy. Nothing is excluded here: callers filter out the endpoints of
// the connection being routed.
func (m *Manager) Obstacles(s resolve.Snapshot, expandBy float64) []Obstacle {
	var out []Obstacle
	for _, it := range s.Doc.Roots() {
		r := m.BoundsForRouting(s, it.ID)
		if r == nil {
			continue
		}
		out = append(out, Obstacle{ID: it.ID, Rect: r.Inflate(expandBy)})
	}
	return out
}

// routingBounds computes an item's obstacle rectangle with the shared
// visited discipline guarding against cyclic containment.
func (m *Manager) routingBounds(s resolve.Snapshot, itemID string, visited map[string]struct{}) *geometry.Rect {
	if _, seen := visited[itemID]; seen {
		return nil
	}
	visited[itemID] = struct{}{}

	item, ok := s.Doc.Item(itemID)
	if !ok {
		return nil
	}

	if _, isGroup := item.Content.(*document.Group); isGroup {
		return m.groupBounds(s, item, visited)
	}

	tr := m.resolver.Transform(s, item)
	rect := tr.Rect()
	if rect.IsEmpty() {
		// Not yet measured: skip rather than emit a zero-area obstacle.
		return nil
	}
	rect = rect.Inflate(m.cfg.RoutingMargin)
	return &rect
}

// groupBounds unions the routing rectangles of a group's live descendants,
// pads them, and reserves title-bar space above the content. A group with no
// measurable descendants gets a fixed minimum placeholder at its own
// resolved position.
func (m *Manager) groupBounds(s resolve.Snapshot, item *document.Item, visited map[string]struct{}) *geometry.Rect {
	var union *geometry.Rect
	for _, child := range s.Doc.Children(item.ID) {
		r := m.routingBounds(s, child.ID, visited)
		if r == nil {
			continue
		}
		if union == nil {
			u := *r
			union = &u
		} else {
			u := union.Union(*r)
			union = &u
		}
	}

	if union == nil {
		pos := m.resolver.Position(s, item)
		r := geometry.Rect{X: pos.X, Y: pos.Y, Width: m.cfg.EmptyGroupWidth, Height: m.cfg.EmptyGroupHeight}
		return &r
	}

	r := union.Inflate(m.cfg.GroupMargin)
	r.Y -= m.cfg.GroupTitleReserve
	r.Height += m.cfg.GroupTitleReserve
	return &r
}
