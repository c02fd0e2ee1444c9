package resolve

import (
	"testing"

	"slate/config"
	"slate/document"
)

func gridGroup(t *testing.T, n int) (*document.Document, *document.Item) {
	t.Helper()
	doc := document.New()
	g := &document.Item{ID: "g", X: 100, Y: 50, Content: &document.Group{Name: "g", Grid: true}}
	if err := doc.AddItem(g); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		c := shape(string(rune('a'+i)), float64(i*10), float64(i*7))
		if err := doc.AddToGroup(c, "g"); err != nil {
			t.Fatal(err)
		}
	}
	return doc, g
}

func TestGridColumns(t *testing.T) {
	tests := []struct {
		n, cols int
	}{
		{1, 1}, {2, 2}, {4, 2}, {5, 3}, {9, 3}, {10, 4}, {16, 4}, {17, 5},
	}
	for _, tt := range tests {
		if got := gridColumns(tt.n); got != tt.cols {
			t.Errorf("gridColumns(%d) = %d, want %d", tt.n, got, tt.cols)
		}
	}
}

func TestGridCellPlacement(t *testing.T) {
	doc, _ := gridGroup(t, 5)
	s := snapshot(doc)
	r := New(config.Default())
	gc := r.cfg.Grid

	kids := doc.Children("g")
	positions := make(map[string]struct{ x, y float64 })
	for _, c := range kids {
		p := r.Position(s, c)
		positions[c.ID] = struct{ x, y float64 }{p.X, p.Y}
	}

	// 5 children: 3 columns, row-major. Index 3 sits at row 1, column 0,
	// i.e. directly below index 0 and one row down.
	a, d := positions["a"], positions["d"]
	if d.x != a.x {
		t.Errorf("index 3 column: x=%v, want %v (same column as index 0)", d.x, a.x)
	}
	if got, want := d.y-a.y, gc.CellHeight+gc.Gap; got != want {
		t.Errorf("index 3 row offset = %v, want %v", got, want)
	}

	// Index 1 is one cell to the right of index 0.
	b := positions["b"]
	if got, want := b.x-a.x, gc.CellWidth+gc.Gap; got != want {
		t.Errorf("index 1 column offset = %v, want %v", got, want)
	}
	if b.y != a.y {
		t.Errorf("index 1 row: y=%v, want %v", b.y, a.y)
	}

	// Stored coordinates never leak into grid placement: children at
	// different stored positions in the same row still share a y.
	c := positions["c"]
	if c.y != a.y {
		t.Errorf("row 0 not axis-aligned: %v vs %v", c.y, a.y)
	}
}

func TestGridTopAlignment(t *testing.T) {
	doc, g := gridGroup(t, 4)
	s := snapshot(doc)
	r := New(config.Default())

	// The grid's top edge aligns with the topmost stored child position.
	minStoredY := doc.Children("g")[0].Y
	for _, c := range doc.Children("g") {
		if c.Y < minStoredY {
			minStoredY = c.Y
		}
	}

	topRow := r.Position(s, doc.Children("g")[0])
	if want := g.Y + minStoredY; topRow.Y != want {
		t.Errorf("grid top = %v, want %v", topRow.Y, want)
	}
}

func TestGridAlignmentCacheInvalidation(t *testing.T) {
	doc, _ := gridGroup(t, 4)
	s := snapshot(doc)
	r := New(config.Default())

	kids := doc.Children("g")
	before := r.Position(s, kids[0])

	// Unchanged input hits the cache and yields identical output.
	if again := r.Position(s, kids[0]); again != before {
		t.Errorf("cached position differs: %v != %v", again, before)
	}
	if len(r.gridCache) != 1 {
		t.Fatalf("expected one cache entry, got %d", len(r.gridCache))
	}
	sig := r.gridCache["g"].signature

	// Moving a stored position changes the signature and recomputes.
	kids[1].X += 500
	after := r.Position(s, kids[0])
	if r.gridCache["g"].signature == sig {
		t.Error("signature did not change after a stored position changed")
	}
	if after == before {
		t.Error("alignment offset did not react to stored position change")
	}

	r.ClearCaches()
	if len(r.gridCache) != 0 {
		t.Error("ClearCaches left entries behind")
	}
}
