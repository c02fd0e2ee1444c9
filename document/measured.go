package document

import "sort"

// MeasuredRect is the last-measured on-screen rectangle of an item in
// un-rotated, un-scaled content units. Populated by the rendering layer;
// read-only to the layout core.
type MeasuredRect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the measured width.
func (m MeasuredRect) Width() float64 {
	return m.Right - m.Left
}

// Height returns the measured height.
func (m MeasuredRect) Height() float64 {
	return m.Bottom - m.Top
}

// MeasuredBounds maps item ids to their last-measured rectangles.
type MeasuredBounds map[string]MeasuredRect

func sortedIDs(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
