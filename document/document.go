// Package document models the collaborative canvas document: an arena of
// items addressed by id, group containment, and the connections stored on
// target items. The document is read-only to the layout and routing core;
// mutation happens through the editing operations here, driven by callers.
package document

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID returns a fresh unique item id.
func NewID() string {
	return uuid.NewString()
}

// Item is a single element on the canvas. X/Y are stored relative to the
// item's immediate container (the canvas root or a group).
type Item struct {
	ID       string
	X, Y     float64
	Rotation float64 // degrees
	Content  Content

	// Sources is the set of item ids with connections pointing into this
	// item. Stored on the target so each connection exists exactly once.
	Sources map[string]struct{}
}

// Connection is a directed edge between two items, derived from the
// per-target source sets.
type Connection struct {
	From, To string
}

// Document is the arena of items plus the containment structure. Every item
// has exactly one container: the canvas root list or exactly one group.
type Document struct {
	items  map[string]*Item
	roots  []string          // ordered top-level item ids
	parent map[string]string // child id -> hosting group item id
}

// New creates an empty document.
func New() *Document {
	return &Document{
		items:  make(map[string]*Item),
		parent: make(map[string]string),
	}
}

// Item returns the item with the given id.
func (d *Document) Item(id string) (*Item, bool) {
	it, ok := d.items[id]
	return it, ok
}

// Roots returns the ordered top-level items.
func (d *Document) Roots() []*Item {
	out := make([]*Item, 0, len(d.roots))
	for _, id := range d.roots {
		out = append(out, d.items[id])
	}
	return out
}

// Parent returns the id of the group item containing id, if any.
func (d *Document) Parent(id string) (string, bool) {
	p, ok := d.parent[id]
	return p, ok
}

// Children returns the ordered child items of a group item. Non-group items
// have no children.
func (d *Document) Children(groupID string) []*Item {
	it, ok := d.items[groupID]
	if !ok {
		return nil
	}
	g, ok := it.Content.(*Group)
	if !ok {
		return nil
	}
	out := make([]*Item, 0, len(g.Children))
	for _, cid := range g.Children {
		if c, ok := d.items[cid]; ok {
			out = append(out, c)
		}
	}
	return out
}

// AddItem places a new item at the canvas root. The id must be unique.
func (d *Document) AddItem(it *Item) error {
	if it.ID == "" {
		it.ID = NewID()
	}
	if _, exists := d.items[it.ID]; exists {
		return fmt.Errorf("item %s already exists", it.ID)
	}
	if it.Sources == nil {
		it.Sources = make(map[string]struct{})
	}
	d.items[it.ID] = it
	d.roots = append(d.roots, it.ID)
	return nil
}

// AddToGroup places a new item inside the given group. The group item must
// exist and carry group content.
func (d *Document) AddToGroup(it *Item, groupID string) error {
	g, err := d.groupContent(groupID)
	if err != nil {
		return err
	}
	if err := d.AddItem(it); err != nil {
		return err
	}
	d.removeRoot(it.ID)
	g.Children = append(g.Children, it.ID)
	d.parent[it.ID] = groupID
	return nil
}

// Reparent moves an item to a new container. An empty groupID moves it to
// the canvas root.
func (d *Document) Reparent(id, groupID string) error {
	it, ok := d.items[id]
	if !ok {
		return fmt.Errorf("item %s not found", id)
	}
	// Detach from the current container.
	if pid, ok := d.parent[id]; ok {
		if g, err := d.groupContent(pid); err == nil {
			g.Children = removeID(g.Children, id)
		}
		delete(d.parent, id)
	} else {
		d.removeRoot(id)
	}
	if groupID == "" {
		d.roots = append(d.roots, it.ID)
		return nil
	}
	g, err := d.groupContent(groupID)
	if err != nil {
		// Do not lose the item on failure.
		d.roots = append(d.roots, it.ID)
		return err
	}
	g.Children = append(g.Children, id)
	d.parent[id] = groupID
	return nil
}

// Remove deletes an item, its containment entry, and any connections that
// reference it. Children of a removed group are lifted to the canvas root.
func (d *Document) Remove(id string) {
	it, ok := d.items[id]
	if !ok {
		return
	}
	if g, isGroup := it.Content.(*Group); isGroup {
		for _, cid := range g.Children {
			delete(d.parent, cid)
			if _, ok := d.items[cid]; ok {
				d.roots = append(d.roots, cid)
			}
		}
	}
	if pid, ok := d.parent[id]; ok {
		if g, err := d.groupContent(pid); err == nil {
			g.Children = removeID(g.Children, id)
		}
		delete(d.parent, id)
	} else {
		d.removeRoot(id)
	}
	for _, other := range d.items {
		delete(other.Sources, id)
	}
	delete(d.items, id)
}

// Connect records a connection from source to target. Connections are a set:
// connecting twice is a no-op. Groups cannot be endpoints, and neither can an
// item connect to itself or to one of its own ancestors or descendants.
func (d *Document) Connect(sourceID, targetID string) error {
	if sourceID == targetID {
		return fmt.Errorf("item %s cannot connect to itself", sourceID)
	}
	src, ok := d.items[sourceID]
	if !ok {
		return fmt.Errorf("source %s not found", sourceID)
	}
	dst, ok := d.items[targetID]
	if !ok {
		return fmt.Errorf("target %s not found", targetID)
	}
	if src.Content.Kind() == KindGroup || dst.Content.Kind() == KindGroup {
		return fmt.Errorf("connections cannot target group content")
	}
	if d.IsAncestor(sourceID, targetID) || d.IsAncestor(targetID, sourceID) {
		return fmt.Errorf("connection between %s and %s crosses its own ancestry", sourceID, targetID)
	}
	dst.Sources[sourceID] = struct{}{}
	return nil
}

// Disconnect removes the connection from source to target, if present.
func (d *Document) Disconnect(sourceID, targetID string) {
	if dst, ok := d.items[targetID]; ok {
		delete(dst.Sources, sourceID)
	}
}

// Connections enumerates every connection in the document. Order follows the
// containment order of the target items for determinism.
func (d *Document) Connections() []Connection {
	var out []Connection
	var walk func(ids []string)
	walk = func(ids []string) {
		for _, id := range ids {
			it, ok := d.items[id]
			if !ok {
				continue
			}
			for _, src := range sortedIDs(it.Sources) {
				out = append(out, Connection{From: src, To: id})
			}
			if g, isGroup := it.Content.(*Group); isGroup {
				walk(g.Children)
			}
		}
	}
	walk(d.roots)
	return out
}

// IsAncestor reports whether ancestorID appears on id's containment chain.
// The walk is cycle-guarded: a malformed document terminates rather than
// recursing forever.
func (d *Document) IsAncestor(ancestorID, id string) bool {
	visited := make(map[string]struct{})
	cur := id
	for {
		pid, ok := d.parent[cur]
		if !ok {
			return false
		}
		if pid == ancestorID {
			return true
		}
		if _, seen := visited[pid]; seen {
			return false
		}
		visited[pid] = struct{}{}
		cur = pid
	}
}

func (d *Document) groupContent(groupID string) (*Group, error) {
	it, ok := d.items[groupID]
	if !ok {
		return nil, fmt.Errorf("group %s not found", groupID)
	}
	g, ok := it.Content.(*Group)
	if !ok {
		return nil, fmt.Errorf("item %s is not a group", groupID)
	}
	return g, nil
}

func (d *Document) removeRoot(id string) {
	d.roots = removeID(d.roots, id)
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
