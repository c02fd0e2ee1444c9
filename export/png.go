// Package export renders obstacle sets and routed connectors to PNG images.
// Used by the debug CLI to validate routing tuning visually.
package export

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"slate/geometry"
	"slate/obstacles"
	"slate/pathfinding"
)

// Scene is everything the exporter draws.
type Scene struct {
	Obstacles []obstacles.Obstacle
	Routes    []pathfinding.Route
	// Labels maps obstacle ids to display names. Missing entries fall back
	// to the id.
	Labels map[string]string
}

const (
	scenePadding = 40.0
	fontSize     = 12.0
	arrowSize    = 8.0
)

// ToPNG renders the scene at 1 canvas unit per pixel and writes it to
// filename.
func ToPNG(filename string, sc Scene) error {
	bounds, ok := sceneBounds(sc)
	if !ok {
		return fmt.Errorf("nothing to export")
	}
	bounds = bounds.Inflate(scenePadding)

	dc := gg.NewContext(int(bounds.Width), int(bounds.Height))
	dc.SetColor(color.White)
	dc.Clear()

	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttf, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	for _, o := range sc.Obstacles {
		drawObstacle(dc, o, sc.Labels, bounds)
	}
	for _, r := range sc.Routes {
		drawRoute(dc, r, bounds)
	}

	return dc.SavePNG(filename)
}

func drawObstacle(dc *gg.Context, o obstacles.Obstacle, labels map[string]string, bounds geometry.Rect) {
	x := o.Rect.X - bounds.X
	y := o.Rect.Y - bounds.Y

	dc.SetRGBA(0.9, 0.92, 0.96, 1)
	dc.DrawRectangle(x, y, o.Rect.Width, o.Rect.Height)
	dc.Fill()

	dc.SetLineWidth(1)
	dc.SetRGBA(0.3, 0.35, 0.45, 1)
	dc.DrawRectangle(x, y, o.Rect.Width, o.Rect.Height)
	dc.Stroke()

	label := labels[o.ID]
	if label == "" {
		label = o.ID
	}
	dc.SetColor(color.Black)
	dc.DrawStringAnchored(label, x+o.Rect.Width/2, y+o.Rect.Height/2, 0.5, 0.5)
}

func drawRoute(dc *gg.Context, r pathfinding.Route, bounds geometry.Rect) {
	if len(r.Path) < 2 {
		return
	}

	dc.SetLineWidth(1.5)
	dc.SetRGBA(0.75, 0.2, 0.2, 1)
	for i := 0; i+1 < len(r.Path); i++ {
		a := r.Path[i]
		b := r.Path[i+1]
		dc.DrawLine(a.X-bounds.X, a.Y-bounds.Y, b.X-bounds.X, b.Y-bounds.Y)
		dc.Stroke()
	}

	drawArrowhead(dc, r.Path[len(r.Path)-2], r.Path[len(r.Path)-1], bounds)
}

func drawArrowhead(dc *gg.Context, from, to geometry.Point, bounds geometry.Rect) {
	length := geometry.EuclideanDistance(from, to)
	if length < 0.1 {
		return
	}
	dx := (to.X - from.X) / length
	dy := (to.Y - from.Y) / length

	tipX := to.X - bounds.X
	tipY := to.Y - bounds.Y

	dc.MoveTo(tipX, tipY)
	dc.LineTo(tipX-arrowSize*dx+arrowSize*dy*0.5, tipY-arrowSize*dy-arrowSize*dx*0.5)
	dc.LineTo(tipX-arrowSize*dx-arrowSize*dy*0.5, tipY-arrowSize*dy+arrowSize*dx*0.5)
	dc.ClosePath()
	dc.Fill()
}

func sceneBounds(sc Scene) (geometry.Rect, bool) {
	var (
		r   geometry.Rect
		has bool
	)
	grow := func(x, y float64) {
		if !has {
			r = geometry.Rect{X: x, Y: y}
			has = true
			return
		}
		nx := geometry.Min(r.X, x)
		ny := geometry.Min(r.Y, y)
		r = geometry.Rect{
			X: nx, Y: ny,
			Width:  geometry.Max(r.Right(), x) - nx,
			Height: geometry.Max(r.Bottom(), y) - ny,
		}
	}
	for _, o := range sc.Obstacles {
		grow(o.Rect.X, o.Rect.Y)
		grow(o.Rect.Right(), o.Rect.Bottom())
	}
	for _, rt := range sc.Routes {
		for _, p := range rt.Path {
			grow(p.X, p.Y)
		}
	}
	return r, has
}
