package pathfinding

import (
	"testing"

	"slate/geometry"
)

func TestSimplifyPath(t *testing.T) {
	tests := []struct {
		name string
		in   []geometry.Point
		want int
	}{
		{
			name: "three collinear points collapse to two",
			in:   []geometry.Point{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 100, Y: 0}},
			want: 2,
		},
		{
			name: "vertical collinear run",
			in:   []geometry.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 0, Y: 20}, {X: 0, Y: 30}},
			want: 2,
		},
		{
			name: "turns are preserved",
			in:   []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}},
			want: 3,
		},
		{
			name: "duplicate points removed",
			in:   []geometry.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 100, Y: 0}},
			want: 2,
		},
		{
			name: "mixed run",
			in:   []geometry.Point{{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 80, Y: 0}, {X: 80, Y: 50}, {X: 80, Y: 100}, {X: 160, Y: 100}},
			want: 4,
		},
		{
			name: "two points untouched",
			in:   []geometry.Point{{X: 0, Y: 0}, {X: 5, Y: 5}},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SimplifyPath(tt.in)
			if len(got) != tt.want {
				t.Errorf("SimplifyPath(%v) = %v, want %d points", tt.in, got, tt.want)
			}
			if got[0] != tt.in[0] || got[len(got)-1] != tt.in[len(tt.in)-1] {
				t.Errorf("endpoints changed: %v", got)
			}
		})
	}
}

func TestCountTurns(t *testing.T) {
	tests := []struct {
		name string
		in   []geometry.Point
		want int
	}{
		{"straight", []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}, 0},
		{"one turn", []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}}, 1},
		{"u shape", []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}, 2},
		{"collinear middle", []geometry.Point{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 100, Y: 0}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countTurns(tt.in); got != tt.want {
				t.Errorf("countTurns = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLShapedPath(t *testing.T) {
	p := lShapedPath(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 100, Y: 50})
	if len(p) != 3 {
		t.Fatalf("expected 3 points, got %v", p)
	}
	// The corner sits at {start.x, end.y}.
	if p[1].X != 0 || p[1].Y != 50 {
		t.Errorf("corner = %v, want (0,50)", p[1])
	}

	aligned := lShapedPath(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 100, Y: 0})
	if len(aligned) != 2 {
		t.Errorf("aligned endpoints need no corner: %v", aligned)
	}
}

func TestSegmentClear(t *testing.T) {
	obs := []geometry.Rect{{X: 40, Y: 40, Width: 20, Height: 20}}

	if segmentClear(geometry.Point{X: 0, Y: 50}, geometry.Point{X: 100, Y: 50}, obs) {
		t.Error("segment through obstacle reported clear")
	}
	if !segmentClear(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 100, Y: 0}, obs) {
		t.Error("clear segment reported blocked")
	}
	// Touching the edge is not a collision.
	if !segmentClear(geometry.Point{X: 0, Y: 40}, geometry.Point{X: 100, Y: 40}, obs) {
		t.Error("edge-touching segment must not count as a collision")
	}
}
