package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slate/document"
)

func TestBuildSnapshot(t *testing.T) {
	sf := sceneFile{
		Items: []sceneItem{
			{ID: "g", Kind: "group", Name: "cluster", Grid: true, X: 100, Y: 100},
			{ID: "a", Kind: "shape", Shape: "rectangle", Width: 120, Height: 80},
			{ID: "b", Kind: "shape", Width: 120, Height: 80, X: 400, Parent: "g"},
			{ID: "n", Kind: "note", Text: "todo", X: 50, Y: 300},
		},
		Connections: []sceneConnection{{From: "a", To: "n"}},
		Measured: map[string]sceneRect{
			"n": {Left: 0, Top: 0, Right: 90, Bottom: 40},
		},
		Gestures: []sceneGesture{
			{Collaborator: "u1", Drag: &sceneDrag{Item: "a", X: 10, Y: 20}},
		},
	}

	s, err := buildSnapshot(sf)
	require.NoError(t, err)

	pid, ok := s.Doc.Parent("b")
	require.True(t, ok)
	assert.Equal(t, "g", pid)

	conns := s.Doc.Connections()
	require.Len(t, conns, 1)
	assert.Equal(t, document.Connection{From: "a", To: "n"}, conns[0])

	assert.Equal(t, 90.0, s.Measured["n"].Right)

	ov, ok := s.Gestures.DragFor("a")
	require.True(t, ok)
	assert.Equal(t, 10.0, ov.X)
	assert.Equal(t, 20.0, ov.Y)
}

func TestBuildSnapshotDefaults(t *testing.T) {
	sf := sceneFile{
		Items: []sceneItem{{ID: "a", Width: 50, Height: 50}},
	}
	s, err := buildSnapshot(sf)
	require.NoError(t, err)

	it, ok := s.Doc.Item("a")
	require.True(t, ok)
	shape, ok := it.Content.(*document.Shape)
	require.True(t, ok, "kindless items default to shapes")
	assert.Equal(t, "rectangle", shape.ShapeType)
}

func TestBuildSnapshotRejectsUnknownKind(t *testing.T) {
	sf := sceneFile{Items: []sceneItem{{ID: "a", Kind: "widget"}}}
	_, err := buildSnapshot(sf)
	assert.Error(t, err)
}

func TestItemLabels(t *testing.T) {
	sf := sceneFile{
		Items: []sceneItem{
			{ID: "g", Kind: "group", Name: "services"},
			{ID: "n", Kind: "note", Text: "hello", Parent: "g"},
			{ID: "s", Kind: "shape", Width: 10, Height: 10},
		},
	}
	s, err := buildSnapshot(sf)
	require.NoError(t, err)

	labels := itemLabels(s)
	assert.Equal(t, "services", labels["g"])
	assert.Equal(t, "hello", labels["n"])
	_, hasShape := labels["s"]
	assert.False(t, hasShape, "shapes have no text label")
}
