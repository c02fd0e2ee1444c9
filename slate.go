// Package slate is the spatial layout and routing core of a collaborative
// diagramming canvas. It resolves the effective placement of items nested in
// groups and subject to in-progress collaborator gestures, derives routing
// obstacles from them, and computes clean orthogonal connector paths.
//
// All computation is synchronous and works against a single consistent
// Snapshot passed in per redraw tick; the engine never retains snapshot
// references across ticks. The only state it owns is the grid alignment
// cache, which the caller can clear at any time.
package slate

import (
	"go.uber.org/zap"

	"slate/config"
	"slate/document"
	"slate/geometry"
	"slate/obstacles"
	"slate/pathfinding"
	"slate/resolve"
)

// Snapshot is the per-tick view the engine computes against.
type Snapshot = resolve.Snapshot

// RoutedConnection pairs a connection with its computed route.
type RoutedConnection struct {
	Connection document.Connection
	Route      pathfinding.Route
}

// Engine binds the geometry resolver, the obstacle model and the routing
// engine behind one facade.
type Engine struct {
	cfg      config.Config
	resolver *resolve.Resolver
	bounds   *obstacles.Manager
	router   *pathfinding.Router
	log      *zap.Logger
}

// NewEngine creates an engine with the given tuning.
func NewEngine(cfg config.Config) *Engine {
	resolver := resolve.New(cfg)
	return &Engine{
		cfg:      cfg,
		resolver: resolver,
		bounds:   obstacles.NewManager(resolver, cfg.Bounds),
		router:   pathfinding.NewRouter(cfg.Routing),
		log:      zap.NewNop(),
	}
}

// SetLogger installs a logger for diagnostics across the core.
func (e *Engine) SetLogger(log *zap.Logger) {
	if log == nil {
		return
	}
	e.log = log
	e.router.SetLogger(log)
}

// ClearCaches drops all derived caches. Safe to call between ticks.
func (e *Engine) ClearCaches() {
	e.resolver.ClearCaches()
}

// ResolveTransform returns the effective placement of an item, used by
// rendering, selection and overlay code.
func (e *Engine) ResolveTransform(s Snapshot, itemID string) (resolve.Transform, bool) {
	it, ok := s.Doc.Item(itemID)
	if !ok {
		return resolve.Transform{}, false
	}
	return e.resolver.Transform(s, it), true
}

// BoundsForRouting returns an item's obstacle rectangle, or nil when the
// item is missing or not yet measured.
func (e *Engine) BoundsForRouting(s Snapshot, itemID string) *geometry.Rect {
	return e.bounds.BoundsForRouting(s, itemID)
}

// BoundsForSelection returns the padded rectangle used for hit-testing
// connection handles.
func (e *Engine) BoundsForSelection(s Snapshot, itemID string) geometry.Rect {
	return e.bounds.BoundsForSelection(s, itemID)
}

// Obstacles returns the full obstacle set, one rectangle per top-level item
// or group, each inflated by expandBy.
func (e *Engine) Obstacles(s Snapshot, expandBy float64) []obstacles.Obstacle {
	return e.bounds.Obstacles(s, expandBy)
}

// RouteConnection routes a single connection. Returns false when either
// endpoint is invalid, unroutable (unmeasured), or the connection crosses
// its own ancestry.
func (e *Engine) RouteConnection(s Snapshot, conn document.Connection) (pathfinding.Route, bool) {
	return e.routeConnection(s, conn, e.bounds.Obstacles(s, 0))
}

// RouteAll routes every visible connection in the document against one
// shared obstacle set, in the document's deterministic connection order.
// Invalid or not-yet-routable connections are skipped.
func (e *Engine) RouteAll(s Snapshot) []RoutedConnection {
	obs := e.bounds.Obstacles(s, 0)
	var out []RoutedConnection
	for _, conn := range s.Doc.Connections() {
		route, ok := e.routeConnection(s, conn, obs)
		if !ok {
			continue
		}
		out = append(out, RoutedConnection{Connection: conn, Route: route})
	}
	return out
}

func (e *Engine) routeConnection(s Snapshot, conn document.Connection, obs []obstacles.Obstacle) (pathfinding.Route, bool) {
	if !e.connectionRoutable(s, conn) {
		return pathfinding.Route{}, false
	}

	from := e.bounds.BoundsForRouting(s, conn.From)
	to := e.bounds.BoundsForRouting(s, conn.To)
	if from == nil || to == nil {
		// Unmeasured endpoints are "not yet routable", not an error.
		return pathfinding.Route{}, false
	}

	// The endpoints and any group containing them never block their own
	// connector.
	var rects []geometry.Rect
	for _, o := range obs {
		if o.ID == conn.From || o.ID == conn.To {
			continue
		}
		if s.Doc.IsAncestor(o.ID, conn.From) || s.Doc.IsAncestor(o.ID, conn.To) {
			continue
		}
		rects = append(rects, o.Rect)
	}

	return e.router.Route(*from, *to, rects, pathfinding.Options{}), true
}

// connectionRoutable applies the topological legality filter: connections
// to self, to a missing item, or between an item and its own ancestor or
// descendant are never routed. The router itself does not validate this.
func (e *Engine) connectionRoutable(s Snapshot, conn document.Connection) bool {
	if conn.From == conn.To {
		return false
	}
	if _, ok := s.Doc.Item(conn.From); !ok {
		return false
	}
	if _, ok := s.Doc.Item(conn.To); !ok {
		return false
	}
	if s.Doc.IsAncestor(conn.From, conn.To) || s.Doc.IsAncestor(conn.To, conn.From) {
		e.log.Debug("skipping connection through own ancestry",
			zap.String("from", conn.From),
			zap.String("to", conn.To))
		return false
	}
	return true
}
