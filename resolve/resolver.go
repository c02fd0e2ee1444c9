// Package resolve computes the effective on-screen placement of items: the
// absolute position, size and rotation of an item given its group ancestry,
// the measurement cache, and any in-progress gestures targeting it.
package resolve

import (
	"slate/config"
	"slate/document"
	"slate/geometry"
)

// Transform is the effective placement of an item at this instant.
// A zero Width/Height means the item has not been measured yet and is not
// routable; callers must skip it rather than treat it as a degenerate box.
type Transform struct {
	Left, Top     float64
	Width, Height float64
	Angle         float64 // degrees
}

// Rect returns the un-rotated bounding rectangle of the transform.
func (t Transform) Rect() geometry.Rect {
	return geometry.Rect{X: t.Left, Y: t.Top, Width: t.Width, Height: t.Height}
}

// Resolver computes effective positions and transforms. It is stateless per
// call apart from the grid alignment cache, which is invalidated by input
// signature and can be cleared by the owner at any time.
type Resolver struct {
	cfg       config.Config
	gridCache map[string]gridEntry
}

// New creates a resolver with the given tuning.
func New(cfg config.Config) *Resolver {
	return &Resolver{
		cfg:       cfg,
		gridCache: make(map[string]gridEntry),
	}
}

// ClearCaches drops all cached grid alignment offsets.
func (r *Resolver) ClearCaches() {
	r.gridCache = make(map[string]gridEntry)
}

// Position returns the effective absolute position of an item.
func (r *Resolver) Position(s Snapshot, item *document.Item) geometry.Point {
	return r.resolvePosition(s, item, make(map[string]struct{}))
}

// resolvePosition is the cycle-guarded recursive resolution. On revisiting
// an id it short-circuits to the raw stored coordinates, which terminates
// malformed (cyclic) ancestries within one pass.
func (r *Resolver) resolvePosition(s Snapshot, item *document.Item, visited map[string]struct{}) geometry.Point {
	if _, seen := visited[item.ID]; seen {
		return geometry.Point{X: item.X, Y: item.Y}
	}
	visited[item.ID] = struct{}{}

	// An active gesture is authoritative regardless of ancestry.
	if ov, ok := s.Gestures.DragFor(item.ID); ok {
		return geometry.Point{X: ov.X, Y: ov.Y}
	}
	if rz, ok := s.Gestures.ResizeFor(item.ID); ok {
		return geometry.Point{X: rz.X, Y: rz.Y}
	}

	parentID, ok := s.Doc.Parent(item.ID)
	if !ok {
		return geometry.Point{X: item.X, Y: item.Y}
	}
	parent, ok := s.Doc.Item(parentID)
	if !ok {
		return geometry.Point{X: item.X, Y: item.Y}
	}

	base := r.resolvePosition(s, parent, visited)

	if g, isGroup := parent.Content.(*document.Group); isGroup && g.Grid {
		off := r.gridOffset(s, parent, g, item.ID)
		return base.Add(off.X, off.Y)
	}
	return base.Add(item.X, item.Y)
}

// Transform returns the full effective placement of an item: position from
// the ancestry/gesture resolution, size from the measurement cache (falling
// back to the content's declared size), and rotation with the suppression
// rules for non-rotatable kinds and grid children.
func (r *Resolver) Transform(s Snapshot, item *document.Item) Transform {
	pos := r.Position(s, item)

	t := Transform{Left: pos.X, Top: pos.Y}

	if m, ok := s.Measured[item.ID]; ok {
		t.Width = m.Width()
		t.Height = m.Height()
	} else if w, h, ok := item.Content.IntrinsicSize(); ok {
		t.Width = w
		t.Height = h
	}

	if rz, ok := s.Gestures.ResizeFor(item.ID); ok {
		t.Left = rz.X
		t.Top = rz.Y
		t.Width = rz.Width
		t.Height = rz.Height
	}

	t.Angle = item.Rotation
	if ov, ok := s.Gestures.DragFor(item.ID); ok && ov.HasRotation {
		t.Angle = ov.Rotation
	}
	if !item.Content.CanRotate() {
		t.Angle = 0
	}
	if r.inGridLayout(s, item.ID) {
		// Grid cells are always axis-aligned.
		t.Angle = 0
	}

	return t
}

// inGridLayout reports whether the item's effective parent group is in grid
// layout.
func (r *Resolver) inGridLayout(s Snapshot, itemID string) bool {
	parentID, ok := s.Doc.Parent(itemID)
	if !ok {
		return false
	}
	parent, ok := s.Doc.Item(parentID)
	if !ok {
		return false
	}
	g, isGroup := parent.Content.(*document.Group)
	return isGroup && g.Grid
}
