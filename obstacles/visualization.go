package obstacles

import (
	"math"
	"strings"

	"slate/geometry"
)

// Visualizer renders obstacles and routed paths as ASCII art for debugging.
// Canvas units are scaled down by CellWidth/CellHeight per character cell.
type Visualizer struct {
	CellWidth  float64
	CellHeight float64
}

// NewVisualizer returns a visualizer with a terminal-friendly cell aspect.
func NewVisualizer() *Visualizer {
	return &Visualizer{CellWidth: 16, CellHeight: 32}
}

// Render draws the obstacle set and the routed paths into a text grid.
func (v *Visualizer) Render(obs []Obstacle, paths [][]geometry.Point) string {
	bounds := v.contentBounds(obs, paths)
	if bounds.IsEmpty() {
		return ""
	}

	cols := int(math.Ceil(bounds.Width/v.CellWidth)) + 1
	rows := int(math.Ceil(bounds.Height/v.CellHeight)) + 1

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	set := func(x, y float64, ch rune) {
		cx := int((x - bounds.X) / v.CellWidth)
		cy := int((y - bounds.Y) / v.CellHeight)
		if cy >= 0 && cy < rows && cx >= 0 && cx < cols {
			grid[cy][cx] = ch
		}
	}

	for _, o := range obs {
		for y := o.Rect.Y; y <= o.Rect.Bottom(); y += v.CellHeight {
			for x := o.Rect.X; x <= o.Rect.Right(); x += v.CellWidth {
				set(x, y, '█')
			}
		}
	}

	for _, path := range paths {
		for i := 0; i+1 < len(path); i++ {
			v.drawSegment(set, path[i], path[i+1])
		}
		if len(path) > 0 {
			set(path[0].X, path[0].Y, '●')
			set(path[len(path)-1].X, path[len(path)-1].Y, '►')
		}
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteString("\n")
	}
	return b.String()
}

// Legend explains the visualization symbols.
func (v *Visualizer) Legend() string {
	return strings.Join([]string{
		"Legend:",
		"  █ - obstacle rectangle",
		"  · - routed path",
		"  ● - path start",
		"  ► - path end",
	}, "\n")
}

func (v *Visualizer) drawSegment(set func(x, y float64, ch rune), a, b geometry.Point) {
	step := geometry.Min(v.CellWidth, v.CellHeight) / 2
	dist := geometry.EuclideanDistance(a, b)
	if dist < step {
		set(a.X, a.Y, '·')
		return
	}
	n := int(dist / step)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		set(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t, '·')
	}
}

func (v *Visualizer) contentBounds(obs []Obstacle, paths [][]geometry.Point) geometry.Rect {
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
	for _, o := range obs {
		grow(o.Rect.X, o.Rect.Y)
		grow(o.Rect.Right(), o.Rect.Bottom())
	}
	for _, p := range paths {
		for _, pt := range p {
			grow(pt.X, pt.Y)
		}
	}
	if !has {
		return geometry.Rect{}
	}
	// A row or column of points still needs one drawable cell.
	if r.Width <= 0 {
		r.Width = v.CellWidth
	}
	if r.Height <= 0 {
		r.Height = v.CellHeight
	}
	return r
}
