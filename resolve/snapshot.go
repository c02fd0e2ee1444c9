package resolve

import (
	"slate/document"
	"slate/presence"
)

// Snapshot is the single consistent view of the world for one redraw tick:
// the document, the externally owned measurement cache, and the gesture
// state. The resolver never retains a snapshot across calls.
type Snapshot struct {
	Doc      *document.Document
	Measured document.MeasuredBounds
	Gestures *presence.Snapshot
}
