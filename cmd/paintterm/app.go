package main

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/rawpaint"
	"github.com/gogpu/rawpaint/area"
	"github.com/gogpu/rawpaint/internal/imageio"
	"github.com/gogpu/rawpaint/preset"
)

const (
	canvasArea = 1
	frameTime  = 16 * time.Millisecond
	halfBlock  = '▀'
)

// app owns all painter state. Every method runs on the main loop goroutine.
type app struct {
	screen  tcell.Screen
	canvas  *rawpaint.Canvas
	painter *rawpaint.Painter
	handler *area.Handler

	presets *preset.File
	current int
	name    string

	saveDir string
	state   area.State
	status  string
	dirty   bool
}

func newApp(s tcell.Screen, c *rawpaint.Canvas, f *preset.File, saveDir string) *app {
	a := &app{
		screen:  s,
		canvas:  c,
		handler: area.NewHandler(),
		saveDir: saveDir,
		dirty:   true,
	}
	a.painter = rawpaint.NewPainter(c,
		rawpaint.WithAreaID(canvasArea),
		rawpaint.WithOnChange(func() { a.dirty = true }),
	)
	_ = a.handler.Add(canvasArea, area.Rect{})
	a.handler.Subscribe(a.painter)

	a.setPresets(f)
	a.resize()
	return a
}

func (a *app) run(ctx context.Context, reloads <-chan *preset.File) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	go pollEvents(ctx, a.screen, events)

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-events:
			if !a.handle(ev) {
				return
			}

		case f := <-reloads:
			a.setPresets(f)
			a.status = "presets reloaded"

		case <-ticker.C:
			if a.dirty {
				a.draw()
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or ctx
// is done.
func pollEvents(ctx context.Context, s tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// handle processes one terminal event and reports whether to keep running.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	}
	return true
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'c':
		a.painter.Reset()
		a.status = "cleared"
	case 's':
		a.save()
	case '[':
		a.cyclePreset(-1)
	case ']':
		a.cyclePreset(1)
	}
	a.dirty = true
	return true
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	btn := ev.Buttons()

	// A cell covers pixel rows 2y and 2y+1; the pointer sits between them.
	a.state.Pos = area.Vec{X: float32(x) + 0.5, Y: float32(y)*2 + 1}
	a.state.Buttons = 0
	if btn&tcell.Button1 != 0 {
		a.state.Buttons |= area.Buttons(area.Left)
	}
	if btn&tcell.Button2 != 0 {
		a.state.Buttons |= area.Buttons(area.Right)
	}
	if btn&tcell.Button3 != 0 {
		a.state.Buttons |= area.Buttons(area.Middle)
	}

	a.state.Scroll = 0
	switch {
	case btn&tcell.WheelUp != 0:
		a.state.Scroll = 1
	case btn&tcell.WheelDown != 0:
		a.state.Scroll = -1
	}

	a.state.Mods = 0
	mods := ev.Modifiers()
	if mods&tcell.ModCtrl != 0 {
		a.state.Mods |= area.ModCtrl
	}
	if mods&tcell.ModShift != 0 {
		a.state.Mods |= area.ModShift
	}
	if mods&tcell.ModAlt != 0 {
		a.state.Mods |= area.ModAlt
	}

	a.handler.Update(a.state)
	a.dirty = true
}

// resize fits the canvas area to the screen, leaving the last row for the
// status line.
func (a *app) resize() {
	w, h := a.screen.Size()
	rows := max(h-1, 0)
	bounds := area.Rect{W: float32(w), H: float32(rows * 2)}
	_ = a.handler.SetBounds(canvasArea, bounds)
	a.painter.SetDisplaySize(bounds.W, bounds.H)
	a.dirty = true
}

func (a *app) setPresets(f *preset.File) {
	if f == nil {
		f = &preset.File{}
	}
	a.presets = f

	sel := f.Selected()
	if a.name != "" {
		if p, err := f.Lookup(a.name); err == nil {
			sel = p
		}
	}
	a.current = 0
	for i, p := range f.Presets {
		if p.Name == sel.Name {
			a.current = i
		}
	}
	a.applyPreset(sel)
}

func (a *app) cyclePreset(delta int) {
	n := len(a.presets.Presets)
	if n == 0 {
		return
	}
	a.current = ((a.current+delta)%n + n) % n
	a.applyPreset(a.presets.Presets[a.current])
}

func (a *app) applyPreset(p preset.Preset) {
	a.name = p.Name
	a.painter.SetBrush(p.Brush)
	a.painter.SetStroke(p.Color, p.Operation)
	a.dirty = true
}

func (a *app) save() {
	path, err := imageio.SaveAuto(a.saveDir, "paint", a.canvas.ToImage(), imageio.PNG)
	if err != nil {
		a.status = err.Error()
		rawpaint.Logger().Error("save failed", "err", err)
		return
	}
	a.status = "saved " + path
	rawpaint.Logger().Info("image saved", "path", path)
}

func (a *app) draw() {
	a.dirty = false
	w, h := a.screen.Size()
	rows := h - 1
	a.screen.Clear()

	if w > 0 && rows > 0 {
		img := a.canvas.Scaled(w, rows*2)
		for y := 0; y < rows; y++ {
			for x := 0; x < w; x++ {
				style := tcell.StyleDefault.
					Foreground(cellColor(img.NRGBAAt(x, 2*y))).
					Background(cellColor(img.NRGBAAt(x, 2*y+1)))
				a.screen.SetContent(x, y, halfBlock, nil, style)
			}
		}
	}

	if ind := a.painter.Indicator(); ind.Visible {
		cx, cy := int(ind.X), int(ind.Y)/2
		_, _, style, _ := a.screen.GetContent(cx, cy)
		a.screen.SetContent(cx, cy, '+', nil, style)
	}

	if h > 0 {
		line := fmt.Sprintf(" %s  size %.0f  %s", a.name, a.painter.Brush().Size, a.status)
		x := 0
		for _, r := range line {
			if x >= w {
				break
			}
			a.screen.SetContent(x, h-1, r, nil, tcell.StyleDefault.Reverse(true))
			x++
		}
	}
	a.screen.Show()
}

// cellColor composites c over black.
func cellColor(c color.NRGBA) tcell.Color {
	a := int32(c.A)
	return tcell.NewRGBColor(int32(c.R)*a/255, int32(c.G)*a/255, int32(c.B)*a/255)
}
