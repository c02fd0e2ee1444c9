package export

import (
	"os"
	"path/filepath"
	"testing"

	"slate/geometry"
	"slate/obstacles"
	"slate/pathfinding"
)

func TestToPNG(t *testing.T) {
	scene := Scene{
		Obstacles: []obstacles.Obstacle{
			{ID: "a", Rect: geometry.Rect{X: 0, Y: 0, Width: 120, Height: 80}},
			{ID: "b", Rect: geometry.Rect{X: 300, Y: 200, Width: 120, Height: 80}},
		},
		Routes: []pathfinding.Route{
			{Path: []geometry.Point{{X: 120, Y: 40}, {X: 200, Y: 40}, {X: 200, Y: 240}, {X: 300, Y: 240}}},
		},
		Labels: map[string]string{"a": "source", "b": "target"},
	}

	path := filepath.Join(t.TempDir(), "scene.png")
	if err := ToPNG(path, scene); err != nil {
		t.Fatalf("ToPNG: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("empty PNG written")
	}
}

func TestToPNGEmptyScene(t *testing.T) {
	if err := ToPNG(filepath.Join(t.TempDir(), "x.png"), Scene{}); err == nil {
		t.Error("expected error for empty scene")
	}
}
