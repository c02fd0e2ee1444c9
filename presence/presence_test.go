package presence

import "testing"

func TestDragFor(t *testing.T) {
	snap := &Snapshot{
		Collaborators: []Collaborator{
			{
				ID:     "remote-1",
				Branch: Mainline,
				Drag: &Drag{
					ItemID:   "a",
					X:        50,
					Y:        60,
					Rotation: 30,
					Selection: map[string]Offset{
						"b": {DX: 10, DY: -5},
					},
				},
			},
			{
				ID:     "remote-2",
				Branch: Branch("experiment"),
				Drag:   &Drag{ItemID: "c", X: 1, Y: 2},
			},
		},
	}

	ov, ok := snap.DragFor("a")
	if !ok {
		t.Fatal("expected drag override for direct target")
	}
	if ov.X != 50 || ov.Y != 60 || !ov.HasRotation || ov.Rotation != 30 {
		t.Errorf("unexpected override: %+v", ov)
	}

	ov, ok = snap.DragFor("b")
	if !ok {
		t.Fatal("expected drag override for selection member")
	}
	if ov.X != 60 || ov.Y != 55 {
		t.Errorf("selection offset not applied: %+v", ov)
	}
	if ov.HasRotation {
		t.Error("selection members must not inherit the drag rotation")
	}

	if _, ok := snap.DragFor("c"); !ok {
		t.Error("alternate-branch gestures are visible by default")
	}

	snap.MainlineOnly = true
	if _, ok := snap.DragFor("c"); ok {
		t.Error("alternate-branch gesture visible with MainlineOnly set")
	}
	if _, ok := snap.DragFor("a"); !ok {
		t.Error("mainline gesture filtered out")
	}
}

func TestResizeFor(t *testing.T) {
	snap := &Snapshot{
		Collaborators: []Collaborator{
			{ID: "local", Branch: Mainline, Resize: &Resize{ItemID: "a", X: 5, Y: 6, Width: 120, Height: 80}},
		},
	}

	r, ok := snap.ResizeFor("a")
	if !ok || r.Width != 120 || r.Height != 80 {
		t.Errorf("ResizeFor = %+v, %v", r, ok)
	}
	if _, ok := snap.ResizeFor("b"); ok {
		t.Error("unexpected resize for untargeted item")
	}

	var nilSnap *Snapshot
	if _, ok := nilSnap.DragFor("a"); ok {
		t.Error("nil snapshot must report no gestures")
	}
}
