package resolve

import (
	"fmt"
	"math"
	"strings"

	"slate/document"
	"slate/geometry"
)

// gridEntry caches the alignment offset for one group, keyed by a signature
// of the inputs that affect it. A signature mismatch silently recomputes.
type gridEntry struct {
	signature string
	offset    geometry.Point
}

// gridColumns returns the fixed column count for n children.
func gridColumns(n int) int {
	if n <= 1 {
		return 1
	}
	return int(math.Ceil(math.Sqrt(float64(n))))
}

// gridOffset returns the group-local offset of a grid child. Cells are laid
// out row-major; the whole grid is translated so its horizontal center and
// top edge match where the children's stored positions would have placed
// them, keeping the grid visually stable near the pre-grid layout.
func (r *Resolver) gridOffset(s Snapshot, groupItem *document.Item, g *document.Group, childID string) geometry.Point {
	children := s.Doc.Children(groupItem.ID)

	idx := -1
	for i, c := range children {
		if c.ID == childID {
			idx = i
			break
		}
	}
	if idx < 0 {
		// Not a live child; fall back to the raw cell at index 0.
		idx = 0
	}

	cols := gridColumns(len(children))
	row := idx / cols
	col := idx % cols

	gc := r.cfg.Grid
	cell := geometry.Point{
		X: gc.Padding + float64(col)*(gc.CellWidth+gc.Gap),
		Y: gc.Padding + float64(row)*(gc.CellHeight+gc.Gap),
	}

	align := r.gridAlignment(groupItem.ID, children)
	return cell.Add(align.X, align.Y)
}

// gridAlignment computes (and caches) the grid translation for a group.
func (r *Resolver) gridAlignment(groupID string, children []*document.Item) geometry.Point {
	sig := r.gridSignature(children)
	if e, ok := r.gridCache[groupID]; ok && e.signature == sig {
		return e.offset
	}

	offset := r.computeGridAlignment(children)
	r.gridCache[groupID] = gridEntry{signature: sig, offset: offset}
	return offset
}

// computeGridAlignment measures the extent the children's stored positions
// would occupy (each treated as one cell-sized box) and returns the offset
// aligning the grid's horizontal center and top edge with that extent.
func (r *Resolver) computeGridAlignment(children []*document.Item) geometry.Point {
	if len(children) == 0 {
		return geometry.Point{}
	}

	gc := r.cfg.Grid

	minX := children[0].X
	maxX := children[0].X + gc.CellWidth
	minY := children[0].Y
	for _, c := range children[1:] {
		minX = geometry.Min(minX, c.X)
		maxX = geometry.Max(maxX, c.X+gc.CellWidth)
		minY = geometry.Min(minY, c.Y)
	}

	cols := gridColumns(len(children))
	gridWidth := float64(cols)*gc.CellWidth + float64(cols-1)*gc.Gap
	gridCenterX := gc.Padding + gridWidth/2
	gridTop := gc.Padding

	storedCenterX := (minX + maxX) / 2
	return geometry.Point{
		X: storedCenterX - gridCenterX,
		Y: minY - gridTop,
	}
}

// gridSignature fingerprints everything the alignment depends on: the grid
// config and each child's id and stored position.
func (r *Resolver) gridSignature(children []*document.Item) string {
	gc := r.cfg.Grid
	var b strings.Builder
	fmt.Fprintf(&b, "%v,%v,%v,%v", gc.CellWidth, gc.CellHeight, gc.Gap, gc.Padding)
	for _, c := range children {
		fmt.Fprintf(&b, ";%s:%v:%v", c.ID, c.X, c.Y)
	}
	return b.String()
}
