package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"slate/geometry"
	"slate/obstacles"
)

// viewer is a small tcell-based scene inspector. It projects canvas units
// onto terminal cells at the same scale as the ASCII visualizer and lets
// the user pan around and toggle layers.
type viewer struct {
	screen tcell.Screen
	obs    []obstacles.Obstacle
	paths  [][]geometry.Point

	// pan offset in canvas units
	offsetX float64
	offsetY float64

	cellW float64
	cellH float64

	showObstacles bool
	showPaths     bool
}

func runViewer(obs []obstacles.Obstacle, paths [][]geometry.Point) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	v := &viewer{
		screen:        screen,
		obs:           obs,
		paths:         paths,
		cellW:         16,
		cellH:         32,
		showObstacles: true,
		showPaths:     true,
	}
	v.centerOnContent()
	v.loop()
	return nil
}

func (v *viewer) loop() {
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return
			}
		}
	}
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	panStep := v.cellW * 4

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		v.offsetX -= panStep
	case tcell.KeyRight:
		v.offsetX += panStep
	case tcell.KeyUp:
		v.offsetY -= v.cellH * 2
	case tcell.KeyDown:
		v.offsetY += v.cellH * 2
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'h':
			v.offsetX -= panStep
		case 'l':
			v.offsetX += panStep
		case 'k':
			v.offsetY -= v.cellH * 2
		case 'j':
			v.offsetY += v.cellH * 2
		case 'o':
			v.showObstacles = !v.showObstacles
		case 'p':
			v.showPaths = !v.showPaths
		case 'c':
			v.centerOnContent()
		}
	}
	return true
}

func (v *viewer) draw() {
	v.screen.Clear()

	obstacleStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	pathStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)
	endpointStyle := pathStyle.Bold(true)

	if v.showObstacles {
		for _, o := range v.obs {
			for y := o.Rect.Y; y <= o.Rect.Bottom(); y += v.cellH {
				for x := o.Rect.X; x <= o.Rect.Right(); x += v.cellW {
					v.set(x, y, '█', obstacleStyle)
				}
			}
		}
	}

	if v.showPaths {
		for _, path := range v.paths {
			for i := 0; i+1 < len(path); i++ {
				v.drawSegment(path[i], path[i+1], pathStyle)
			}
			if len(path) > 0 {
				v.set(path[0].X, path[0].Y, '●', endpointStyle)
				v.set(path[len(path)-1].X, path[len(path)-1].Y, '►', endpointStyle)
			}
		}
	}

	v.drawStatusBar()
	v.screen.Show()
}

func (v *viewer) drawSegment(a, b geometry.Point, style tcell.Style) {
	step := geometry.Min(v.cellW, v.cellH) / 2
	dist := geometry.EuclideanDistance(a, b)
	if dist < step {
		v.set(a.X, a.Y, '·', style)
		return
	}
	n := int(dist / step)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		v.set(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t, '·', style)
	}
}

// set plots a canvas-space point onto the screen, honoring the pan offset.
func (v *viewer) set(x, y float64, ch rune, style tcell.Style) {
	w, h := v.screen.Size()
	cx := int((x - v.offsetX) / v.cellW)
	cy := int((y - v.offsetY) / v.cellH)
	if cx < 0 || cx >= w || cy < 0 || cy >= h-1 {
		return
	}
	v.screen.SetContent(cx, cy, ch, nil, style)
}

func (v *viewer) drawStatusBar() {
	w, h := v.screen.Size()
	style := tcell.StyleDefault.Reverse(true)

	status := fmt.Sprintf(" %d obstacles, %d paths | arrows/hjkl: pan  o: obstacles  p: paths  c: center  q: quit ",
		len(v.obs), len(v.paths))

	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(status) {
			ch = rune(status[x])
		}
		v.screen.SetContent(x, h-1, ch, nil, style)
	}
}

// centerOnContent positions the viewport over the scene's top-left corner.
func (v *viewer) centerOnContent() {
	first := true
	for _, o := range v.obs {
		if first || o.Rect.X < v.offsetX {
			v.offsetX = o.Rect.X
		}
		if first || o.Rect.Y < v.offsetY {
			v.offsetY = o.Rect.Y
		}
		first = false
	}
	for _, p := range v.paths {
		for _, pt := range p {
			if first || pt.X < v.offsetX {
				v.offsetX = pt.X
			}
			if first || pt.Y < v.offsetY {
				v.offsetY = pt.Y
			}
			first = false
		}
	}
	// A cell of breathing room.
	v.offsetX -= v.cellW
	v.offsetY -= v.cellH
}
