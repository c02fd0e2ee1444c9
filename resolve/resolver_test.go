package resolve

import (
	"testing"

	"slate/config"
	"slate/document"
	"slate/presence"
)

func shape(id string, x, y float64) *document.Item {
	return &document.Item{
		ID: id, X: x, Y: y,
		Content: &document.Shape{ShapeType: "rectangle", Width: 100, Height: 60},
	}
}

func snapshot(doc *document.Document) Snapshot {
	return Snapshot{Doc: doc, Measured: document.MeasuredBounds{}, Gestures: &presence.Snapshot{}}
}

func TestPositionRootItem(t *testing.T) {
	doc := document.New()
	a := shape("a", 10, 20)
	if err := doc.AddItem(a); err != nil {
		t.Fatal(err)
	}

	r := New(config.Default())
	pos := r.Position(snapshot(doc), a)
	if pos.X != 10 || pos.Y != 20 {
		t.Errorf("Position = %v, want (10,20)", pos)
	}
}

func TestPositionNestedGroups(t *testing.T) {
	doc := document.New()
	outer := &document.Item{ID: "outer", X: 100, Y: 100, Content: &document.Group{Name: "outer"}}
	inner := &document.Item{ID: "inner", X: 10, Y: 10, Content: &document.Group{Name: "inner"}}
	leaf := shape("leaf", 5, 5)

	if err := doc.AddItem(outer); err != nil {
		t.Fatal(err)
	}
	if err := doc.AddToGroup(inner, "outer"); err != nil {
		t.Fatal(err)
	}
	if err := doc.AddToGroup(leaf, "inner"); err != nil {
		t.Fatal(err)
	}

	r := New(config.Default())
	pos := r.Position(snapshot(doc), leaf)
	if pos.X != 115 || pos.Y != 115 {
		t.Errorf("Position = %v, want (115,115)", pos)
	}
}

func TestGestureOverrideIsAuthoritative(t *testing.T) {
	doc := document.New()
	group := &document.Item{ID: "g", X: 500, Y: 500, Content: &document.Group{Name: "g"}}
	if err := doc.AddItem(group); err != nil {
		t.Fatal(err)
	}
	x := shape("x", 1, 2)
	x.Rotation = 90
	if err := doc.AddToGroup(x, "g"); err != nil {
		t.Fatal(err)
	}

	s := snapshot(doc)
	s.Gestures = &presence.Snapshot{
		Collaborators: []presence.Collaborator{
			{ID: "remote", Branch: presence.Mainline, Drag: &presence.Drag{ItemID: "x", X: 50, Y: 60, Rotation: 30}},
		},
	}

	r := New(config.Default())
	tr := r.Transform(s, x)
	if tr.Left != 50 || tr.Top != 60 || tr.Angle != 30 {
		t.Errorf("Transform = %+v, want left=50 top=60 angle=30", tr)
	}
}

func TestSelectionMembersFollowDrag(t *testing.T) {
	doc := document.New()
	a := shape("a", 0, 0)
	b := shape("b", 10, 10)
	if err := doc.AddItem(a); err != nil {
		t.Fatal(err)
	}
	if err := doc.AddItem(b); err != nil {
		t.Fatal(err)
	}

	s := snapshot(doc)
	s.Gestures = &presence.Snapshot{
		Collaborators: []presence.Collaborator{
			{ID: "local", Branch: presence.Mainline, Drag: &presence.Drag{
				ItemID: "a", X: 100, Y: 100,
				Selection: map[string]presence.Offset{"b": {DX: 30, DY: 40}},
			}},
		},
	}

	r := New(config.Default())
	pos := r.Position(s, b)
	if pos.X != 130 || pos.Y != 140 {
		t.Errorf("Position = %v, want (130,140)", pos)
	}
}

func TestResizeOverridesTransform(t *testing.T) {
	doc := document.New()
	a := shape("a", 0, 0)
	if err := doc.AddItem(a); err != nil {
		t.Fatal(err)
	}

	s := snapshot(doc)
	s.Measured["a"] = document.MeasuredRect{Left: 0, Top: 0, Right: 100, Bottom: 60}
	s.Gestures = &presence.Snapshot{
		Collaborators: []presence.Collaborator{
			{ID: "local", Branch: presence.Mainline, Resize: &presence.Resize{ItemID: "a", X: 5, Y: 6, Width: 200, Height: 150}},
		},
	}

	r := New(config.Default())
	tr := r.Transform(s, a)
	if tr.Left != 5 || tr.Top != 6 || tr.Width != 200 || tr.Height != 150 {
		t.Errorf("Transform = %+v", tr)
	}
}

func TestTransformSizeFallbacks(t *testing.T) {
	doc := document.New()
	sh := shape("shape", 0, 0)
	note := &document.Item{ID: "note", Content: &document.Note{Text: "hi"}}
	if err := doc.AddItem(sh); err != nil {
		t.Fatal(err)
	}
	if err := doc.AddItem(note); err != nil {
		t.Fatal(err)
	}

	s := snapshot(doc)
	r := New(config.Default())

	// Shapes without a measurement fall back to their declared size.
	tr := r.Transform(s, sh)
	if tr.Width != 100 || tr.Height != 60 {
		t.Errorf("shape fallback size = %vx%v, want 100x60", tr.Width, tr.Height)
	}

	// Unmeasured notes have no analytic size: zero means not yet routable.
	tr = r.Transform(s, note)
	if tr.Width != 0 || tr.Height != 0 {
		t.Errorf("unmeasured note size = %vx%v, want 0x0", tr.Width, tr.Height)
	}

	// A measurement takes precedence over the declared size.
	s.Measured["shape"] = document.MeasuredRect{Left: 0, Top: 0, Right: 140, Bottom: 90}
	tr = r.Transform(s, sh)
	if tr.Width != 140 || tr.Height != 90 {
		t.Errorf("measured size = %vx%v, want 140x90", tr.Width, tr.Height)
	}
}

func TestRotationSuppression(t *testing.T) {
	doc := document.New()
	table := &document.Item{ID: "t", Rotation: 45, Content: &document.Table{Rows: 2, Cols: 2}}
	if err := doc.AddItem(table); err != nil {
		t.Fatal(err)
	}

	grid := &document.Item{ID: "g", Content: &document.Group{Name: "g", Grid: true}}
	if err := doc.AddItem(grid); err != nil {
		t.Fatal(err)
	}
	rotated := shape("r", 0, 0)
	rotated.Rotation = 30
	if err := doc.AddToGroup(rotated, "g"); err != nil {
		t.Fatal(err)
	}

	s := snapshot(doc)
	r := New(config.Default())

	if a := r.Transform(s, table).Angle; a != 0 {
		t.Errorf("table angle = %v, want 0", a)
	}
	if a := r.Transform(s, rotated).Angle; a != 0 {
		t.Errorf("grid child angle = %v, want 0", a)
	}
}

func TestTransformIdempotent(t *testing.T) {
	doc := document.New()
	g := &document.Item{ID: "g", X: 40, Y: 40, Content: &document.Group{Name: "g", Grid: true}}
	if err := doc.AddItem(g); err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"a", "b", "c"} {
		if err := doc.AddToGroup(shape(id, 0, 0), "g"); err != nil {
			t.Fatal(err)
		}
	}

	s := snapshot(doc)
	r := New(config.Default())
	items := append(doc.Children("g"), g)
	for _, it := range items {
		first := r.Transform(s, it)
		second := r.Transform(s, it)
		if first != second {
			t.Errorf("Transform(%s) not idempotent: %+v != %+v", it.ID, first, second)
		}
	}
}

func TestCycleSafety(t *testing.T) {
	doc := document.New()
	g1 := &document.Item{ID: "g1", X: 1, Y: 1, Content: &document.Group{Name: "g1"}}
	g2 := &document.Item{ID: "g2", X: 2, Y: 2, Content: &document.Group{Name: "g2"}}
	if err := doc.AddItem(g1); err != nil {
		t.Fatal(err)
	}
	if err := doc.AddToGroup(g2, "g1"); err != nil {
		t.Fatal(err)
	}
	// Malform the document: g1 now lives inside its own descendant.
	if err := doc.Reparent("g1", "g2"); err != nil {
		t.Fatal(err)
	}

	r := New(config.Default())
	pos := r.Position(snapshot(doc), g1)
	// The guard short-circuits the revisit of g1 to its stored coordinates:
	// g1 -> g2 -> g1(stored 1,1) gives (1+2)+1 on each axis.
	if pos.X != 4 || pos.Y != 4 {
		t.Errorf("cyclic resolution = %v, want (4,4)", pos)
	}
}
