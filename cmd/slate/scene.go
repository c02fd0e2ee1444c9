package main

import (
	"encoding/json"
	"fmt"
	"os"

	"slate"
	"slate/document"
	"slate/presence"
)

// sceneFile is the on-disk JSON description of a canvas snapshot: items,
// connections, measurements and in-progress gestures.
type sceneFile struct {
	Items       []sceneItem          `json:"items"`
	Connections []sceneConnection    `json:"connections"`
	Measured    map[string]sceneRect `json:"measured,omitempty"`
	Gestures    []sceneGesture       `json:"gestures,omitempty"`
}

type sceneItem struct {
	ID       string  `json:"id"`
	Kind     string  `json:"kind"` // shape, note, text, table, group
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation,omitempty"`
	Parent   string  `json:"parent,omitempty"`

	// shape fields
	Shape  string  `json:"shape,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// note/text fields
	Text string `json:"text,omitempty"`

	// table fields
	Rows int `json:"rows,omitempty"`
	Cols int `json:"cols,omitempty"`

	// group fields
	Name string `json:"name,omitempty"`
	Grid bool   `json:"grid,omitempty"`
}

type sceneConnection struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type sceneRect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

type sceneGesture struct {
	Collaborator string       `json:"collaborator"`
	Branch       string       `json:"branch,omitempty"`
	Drag         *sceneDrag   `json:"drag,omitempty"`
	Resize       *sceneResize `json:"resize,omitempty"`
}

type sceneDrag struct {
	Item      string                `json:"item"`
	X         float64               `json:"x"`
	Y         float64               `json:"y"`
	Rotation  float64               `json:"rotation,omitempty"`
	Selection map[string][2]float64 `json:"selection,omitempty"`
}

type sceneResize struct {
	Item   string  `json:"item"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// loadScene reads a scene file and builds the per-tick snapshot.
func loadScene(filename string) (slate.Snapshot, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return slate.Snapshot{}, fmt.Errorf("read scene: %w", err)
	}
	var sf sceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return slate.Snapshot{}, fmt.Errorf("parse scene: %w", err)
	}
	return buildSnapshot(sf)
}

func buildSnapshot(sf sceneFile) (slate.Snapshot, error) {
	doc := document.New()

	// Create all items first so parents can be attached in file order.
	for _, si := range sf.Items {
		content, err := buildContent(si)
		if err != nil {
			return slate.Snapshot{}, err
		}
		it := &document.Item{ID: si.ID, X: si.X, Y: si.Y, Rotation: si.Rotation, Content: content}
		if err := doc.AddItem(it); err != nil {
			return slate.Snapshot{}, err
		}
	}
	for _, si := range sf.Items {
		if si.Parent == "" {
			continue
		}
		if err := doc.Reparent(si.ID, si.Parent); err != nil {
			return slate.Snapshot{}, fmt.Errorf("item %s: %w", si.ID, err)
		}
	}
	for _, c := range sf.Connections {
		if err := doc.Connect(c.From, c.To); err != nil {
			return slate.Snapshot{}, err
		}
	}

	measured := document.MeasuredBounds{}
	for id, r := range sf.Measured {
		measured[id] = document.MeasuredRect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
	}

	gestures := &presence.Snapshot{}
	for _, g := range sf.Gestures {
		branch := presence.Mainline
		if g.Branch != "" {
			branch = presence.Branch(g.Branch)
		}
		collab := presence.Collaborator{ID: g.Collaborator, Branch: branch}
		if g.Drag != nil {
			drag := &presence.Drag{ItemID: g.Drag.Item, X: g.Drag.X, Y: g.Drag.Y, Rotation: g.Drag.Rotation}
			if len(g.Drag.Selection) > 0 {
				drag.Selection = make(map[string]presence.Offset, len(g.Drag.Selection))
				for id, off := range g.Drag.Selection {
					drag.Selection[id] = presence.Offset{DX: off[0], DY: off[1]}
				}
			}
			collab.Drag = drag
		}
		if g.Resize != nil {
			collab.Resize = &presence.Resize{ItemID: g.Resize.Item, X: g.Resize.X, Y: g.Resize.Y, Width: g.Resize.Width, Height: g.Resize.Height}
		}
		gestures.Collaborators = append(gestures.Collaborators, collab)
	}

	return slate.Snapshot{Doc: doc, Measured: measured, Gestures: gestures}, nil
}

func buildContent(si sceneItem) (document.Content, error) {
	switch si.Kind {
	case "shape", "":
		shape := si.Shape
		if shape == "" {
			shape = "rectangle"
		}
		return &document.Shape{ShapeType: shape, Width: si.Width, Height: si.Height}, nil
	case "note":
		return &document.Note{Text: si.Text}, nil
	case "text":
		return &document.Text{Text: si.Text}, nil
	case "table":
		return &document.Table{Rows: si.Rows, Cols: si.Cols}, nil
	case "group":
		return &document.Group{Name: si.Name, Grid: si.Grid}, nil
	default:
		return nil, fmt.Errorf("item %s: unknown kind %q", si.ID, si.Kind)
	}
}

// itemLabels maps item ids to display names for the exporters.
func itemLabels(s slate.Snapshot) map[string]string {
	labels := make(map[string]string)
	var walk func(items []*document.Item)
	walk = func(items []*document.Item) {
		for _, it := range items {
			switch c := it.Content.(type) {
			case *document.Group:
				labels[it.ID] = c.Name
				walk(s.Doc.Children(it.ID))
			case *document.Note:
				labels[it.ID] = c.Text
			case *document.Text:
				labels[it.ID] = c.Text
			}
		}
	}
	walk(s.Doc.Roots())
	return labels
}
