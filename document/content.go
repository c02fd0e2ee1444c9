package document

// Kind identifies the content type of an item.
type Kind string

const (
	KindShape Kind = "shape"
	KindNote  Kind = "note"
	KindText  Kind = "text"
	KindTable Kind = "table"
	KindGroup Kind = "group"
)

// Content is the closed set of payloads an item can carry. The kind decides
// whether the item can be resized or rotated and whether it has an analytic
// size to fall back on when no measurement is available.
type Content interface {
	Kind() Kind
	CanResize() bool
	CanRotate() bool
	// IntrinsicSize returns the declared width/height of the content, or
	// ok=false when the content has no analytic size and must be measured
	// by the rendering layer.
	IntrinsicSize() (w, h float64, ok bool)
}

// Shape is a geometric primitive with declared dimensions.
type Shape struct {
	ShapeType     string // "rectangle", "ellipse", "diamond", ...
	Width, Height float64
}

func (s *Shape) Kind() Kind      { return KindShape }
func (s *Shape) CanResize() bool { return true }
func (s *Shape) CanRotate() bool { return true }

func (s *Shape) IntrinsicSize() (float64, float64, bool) {
	return s.Width, s.Height, true
}

// Note is a sticky note whose size comes from measurement.
type Note struct {
	Text string
}

func (n *Note) Kind() Kind      { return KindNote }
func (n *Note) CanResize() bool { return true }
func (n *Note) CanRotate() bool { return true }

func (n *Note) IntrinsicSize() (float64, float64, bool) { return 0, 0, false }

// Text is a free-standing text block.
type Text struct {
	Text string
}

func (t *Text) Kind() Kind      { return KindText }
func (t *Text) CanResize() bool { return true }
func (t *Text) CanRotate() bool { return true }

func (t *Text) IntrinsicSize() (float64, float64, bool) { return 0, 0, false }

// Table is tabular content. Tables never rotate.
type Table struct {
	Rows, Cols int
}

func (t *Table) Kind() Kind      { return KindTable }
func (t *Table) CanResize() bool { return true }
func (t *Table) CanRotate() bool { return false }

func (t *Table) IntrinsicSize() (float64, float64, bool) { return 0, 0, false }

// Group is a named container holding an ordered list of child items. When
// Grid is set the children's effective offsets are computed from their index
// rather than their stored positions.
type Group struct {
	Name     string
	Grid     bool
	Children []string
}

func (g *Group) Kind() Kind      { return KindGroup }
func (g *Group) CanResize() bool { return false }
func (g *Group) CanRotate() bool { return false }

func (g *Group) IntrinsicSize() (float64, float64, bool) { return 0, 0, false }
