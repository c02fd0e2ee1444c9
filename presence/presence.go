// Package presence models the ephemeral gesture state broadcast by
// collaborators: in-progress drags and resizes that have not been committed
// to the document yet. The layout core receives a snapshot per redraw tick
// and never retains it; a gesture that is never committed simply stops
// appearing in the next snapshot.
package presence

// Branch tags which document branch a collaborator's gestures belong to.
type Branch string

// Mainline is the primary document branch.
const Mainline Branch = "main"

// Offset is a relative displacement applied to items dragged as part of a
// multi-item selection.
type Offset struct {
	DX, DY float64
}

// Drag is an in-progress move/rotate gesture. X/Y/Rotation are absolute and
// authoritative for the target item while the gesture is active.
type Drag struct {
	ItemID   string
	X, Y     float64
	Rotation float64
	// Selection carries the other selected items moving with the drag,
	// keyed by item id, each offset relative to the drag position.
	Selection map[string]Offset
}

// Resize is an in-progress resize gesture.
type Resize struct {
	ItemID        string
	X, Y          float64
	Width, Height float64
}

// Collaborator is one participant's active gesture state. Each collaborator
// has at most one active drag and one active resize at a time.
type Collaborator struct {
	ID     string
	Branch Branch
	Drag   *Drag
	Resize *Resize
}

// Snapshot is the full gesture state at one instant. Local and remote
// collaborators are treated identically; gestures on non-mainline branches
// are ignored when MainlineOnly is set.
type Snapshot struct {
	Collaborators []Collaborator
	MainlineOnly  bool
}

// Override is the effect of an active drag on one item's position.
type Override struct {
	X, Y        float64
	Rotation    float64
	HasRotation bool
}

// DragFor returns the position override for an item, whether it is the
// direct target of a drag or a member of a dragged selection. The first
// matching collaborator in snapshot order wins.
func (s *Snapshot) DragFor(itemID string) (Override, bool) {
	if s == nil {
		return Override{}, false
	}
	for _, c := range s.Collaborators {
		if s.MainlineOnly && c.Branch != Mainline {
			continue
		}
		d := c.Drag
		if d == nil {
			continue
		}
		if d.ItemID == itemID {
			return Override{X: d.X, Y: d.Y, Rotation: d.Rotation, HasRotation: true}, true
		}
		if off, ok := d.Selection[itemID]; ok {
			return Override{X: d.X + off.DX, Y: d.Y + off.DY}, true
		}
	}
	return Override{}, false
}

// ResizeFor returns the active resize gesture targeting an item, if any.
func (s *Snapshot) ResizeFor(itemID string) (*Resize, bool) {
	if s == nil {
		return nil, false
	}
	for _, c := range s.Collaborators {
		if s.MainlineOnly && c.Branch != Mainline {
			continue
		}
		if c.Resize != nil && c.Resize.ItemID == itemID {
			return c.Resize, true
		}
	}
	return nil, false
}
