// Package vis implements a Gio-based viewer that replays grid searches
// probe by probe.
package vis

import (
	"image"
	"image/color"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Viewer colors.
var (
	background = color.NRGBA{R: 30, G: 30, B: 35, A: 255}
	pathFill   = color.NRGBA{R: 220, G: 60, B: 60, A: 255}
	startFill  = color.NRGBA{R: 60, G: 90, B: 220, A: 255}
)

// fillOf maps a terrain class to its cell color.
func fillOf(t gridmap.Terrain) color.NRGBA {
	switch t {
	case gridmap.Wall:
		return color.NRGBA{R: 45, G: 45, B: 50, A: 255}
	case gridmap.Grass:
		return color.NRGBA{R: 120, G: 200, B: 80, A: 255}
	case gridmap.Sand:
		return color.NRGBA{R: 235, G: 200, B: 120, A: 255}
	case gridmap.Water:
		return color.NRGBA{R: 80, G: 140, B: 235, A: 255}
	case gridmap.Target:
		return color.NRGBA{G: 155, A: 255}
	default: // Floor
		return color.NRGBA{R: 225, G: 225, B: 225, A: 255}
	}
}

// App is the viewer application: one grid, a sequence of probes, and a
// playback cursor over them.
type App struct {
	grid     *gridmap.Grid
	probes   []Probe
	playback *Playback
}

// NewApp creates a viewer over the given grid and probe sequence.
func NewApp(g *gridmap.Grid, probes []Probe) *App {
	return &App{
		grid:     g,
		probes:   probes,
		playback: NewPlayback(len(probes), 15),
	}
}

// Run starts the application event loop.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops

	// Event filter tag for keyboard input
	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(ke)
				}
			}

			// Request focus for keyboard input
			event.Op(gtx.Ops, tag)

			a.layout(gtx)
			e.Frame(gtx.Ops)

			if a.playback.Playing() {
				a.playback.Advance()
				w.Invalidate()
			}
		}
	}
}

func (a *App) handleKeyEvent(e key.Event) {
	switch e.Name {
	case key.NameSpace:
		a.playback.TogglePlay()
	case key.NameLeftArrow:
		a.playback.StepBack()
	case key.NameRightArrow:
		a.playback.StepForward()
	case key.NameHome:
		a.playback.Reset()
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.Fill(gtx.Ops, background)

	// Fit the grid into the window with a small margin.
	margin := 16
	availX := gtx.Constraints.Max.X - 2*margin
	availY := gtx.Constraints.Max.Y - 2*margin
	cellPx := min(availX/a.grid.Width(), availY/a.grid.Height())
	if cellPx < 1 {
		cellPx = 1
	}

	offX := (gtx.Constraints.Max.X - cellPx*a.grid.Width()) / 2
	offY := (gtx.Constraints.Max.Y - cellPx*a.grid.Height()) / 2

	// 1) Terrain layer.
	gap := cellPx / 10
	for y := 0; y < a.grid.Height(); y++ {
		for x := 0; x < a.grid.Width(); x++ {
			t := a.grid.Classify(gridmap.Cell{X: x, Y: y})
			a.fillCell(gtx, offX, offY, cellPx, gap, x, y, fillOf(t))
		}
	}

	// 2) Current probe overlay.
	if len(a.probes) > 0 {
		probe := a.probes[a.playback.Index()]
		inset := cellPx / 4
		for i, c := range probe.Path {
			fill := pathFill
			if i == 0 {
				fill = startFill
			}
			a.fillCell(gtx, offX, offY, cellPx, inset, c.X, c.Y, fill)
		}
	}

	return layout.Dimensions{Size: gtx.Constraints.Max}
}

// fillCell paints one grid cell shrunk by inset pixels on each side.
func (a *App) fillCell(gtx layout.Context, offX, offY, cellPx, inset, cx, cy int, fill color.NRGBA) {
	rect := image.Rect(
		offX+cx*cellPx+inset,
		offY+cy*cellPx+inset,
		offX+(cx+1)*cellPx-inset,
		offY+(cy+1)*cellPx-inset,
	)
	paint.FillShape(gtx.Ops, fill, clip.Rect(rect).Op())
}
