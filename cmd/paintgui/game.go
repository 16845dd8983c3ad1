package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/draw"

	"github.com/gogpu/rawpaint"
	"github.com/gogpu/rawpaint/area"
	"github.com/gogpu/rawpaint/internal/imageio"
	"github.com/gogpu/rawpaint/preset"
)

const (
	paintArea = 1
	graphArea = 2
)

// view is a canvas shown in a screen rectangle, with the texture it is
// uploaded to.
type view struct {
	canvas *rawpaint.Canvas
	bounds area.Rect
	img    *ebiten.Image
	dirty  bool
}

type game struct {
	handler *area.Handler
	painter *rawpaint.Painter
	graph   *rawpaint.GraphPainter

	paint, plot view

	saveDir string
	status  string
	width   int
	height  int
}

func newGame(size int, p preset.Preset, saveDir string) *game {
	g := &game{
		handler: area.NewHandler(),
		saveDir: saveDir,
		paint:   view{canvas: rawpaint.NewCanvas(size, size), dirty: true},
		plot:    view{canvas: rawpaint.NewCanvas(size, size), dirty: true},
	}

	g.painter = rawpaint.NewPainter(g.paint.canvas,
		rawpaint.WithBrush(p.Brush),
		rawpaint.WithStroke(p.Color, p.Operation),
		rawpaint.WithAreaID(paintArea),
		rawpaint.WithOnChange(func() { g.paint.dirty = true }),
	)
	g.graph = rawpaint.NewGraphPainter(g.plot.canvas,
		rawpaint.WithAreaID(graphArea),
		rawpaint.WithOnChange(func() { g.plot.dirty = true }),
	)
	g.graph.Reset()

	_ = g.handler.Add(paintArea, area.Rect{})
	_ = g.handler.Add(graphArea, area.Rect{})
	g.handler.Subscribe(g.painter)
	g.handler.Subscribe(g.graph)
	return g
}

// layoutAreas splits the window into two halves and keeps the painter's
// brush scale in sync with the on-screen canvas size.
func (g *game) layoutAreas(w, h int) {
	if w == g.width && h == g.height {
		return
	}
	g.width, g.height = w, h

	half := float32(w) / 2
	g.paint.bounds = area.Rect{W: half, H: float32(h)}
	g.plot.bounds = area.Rect{X: half, W: float32(w) - half, H: float32(h)}
	_ = g.handler.SetBounds(paintArea, g.paint.bounds)
	_ = g.handler.SetBounds(graphArea, g.plot.bounds)
	g.painter.SetDisplaySize(g.paint.bounds.W, g.paint.bounds.H)
}

// Update implements ebiten.Game.
func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.painter.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		g.graph.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		g.paint.canvas.Blur(1.5)
		g.paint.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.paint.canvas.Damp(0.5, false)
		g.paint.canvas.Damp(0.5, true)
		g.paint.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.save()
	}

	g.handler.Update(readPointer())
	return nil
}

func readPointer() area.State {
	x, y := ebiten.CursorPosition()
	_, wheel := ebiten.Wheel()

	var buttons area.ButtonSet
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		buttons |= area.Buttons(area.Left)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		buttons |= area.Buttons(area.Right)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		buttons |= area.Buttons(area.Middle)
	}

	var mods area.Modifier
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= area.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= area.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= area.ModAlt
	}

	return area.State{
		Pos:     area.Vec{X: float32(x), Y: float32(y)},
		Buttons: buttons,
		Scroll:  float32(wheel),
		Mods:    mods,
	}
}

func (g *game) save() {
	path, err := imageio.SaveAuto(g.saveDir, "paint", g.paint.canvas.ToImage(), imageio.PNG)
	if err != nil {
		g.status = err.Error()
		rawpaint.Logger().Error("save failed", "err", err)
		return
	}
	g.status = "saved " + path
	rawpaint.Logger().Info("image saved", "path", path)
}

// Draw implements ebiten.Game.
func (g *game) Draw(screen *ebiten.Image) {
	g.paint.draw(screen)
	g.plot.draw(screen)

	if ind := g.painter.Indicator(); ind.Visible {
		vector.StrokeCircle(screen, ind.X, ind.Y, indicatorRadius(ind), 1, color.NRGBA{R: 255, G: 200, A: 200}, true)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("brush %.0f  %s", g.painter.Brush().Size, g.status))
}

// indicatorRadius is the on-screen brush radius. Indicator sizes are
// already in window units.
func indicatorRadius(ind rawpaint.Indicator) float32 {
	return ind.Size / 2
}

// Layout implements ebiten.Game.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layoutAreas(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (v *view) draw(screen *ebiten.Image) {
	if v.canvas.Empty() || v.bounds.W <= 0 || v.bounds.H <= 0 {
		return
	}
	if v.img == nil {
		v.img = ebiten.NewImage(v.canvas.Width(), v.canvas.Height())
		v.dirty = true
	}
	if v.dirty {
		v.img.WritePixels(premultiplied(v.canvas).Pix)
		v.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(v.bounds.W)/float64(v.canvas.Width()), float64(v.bounds.H)/float64(v.canvas.Height()))
	op.GeoM.Translate(float64(v.bounds.X), float64(v.bounds.Y))
	screen.DrawImage(v.img, op)
}

// premultiplied converts the canvas to the alpha-premultiplied layout
// ebiten textures expect.
func premultiplied(c *rawpaint.Canvas) *image.RGBA {
	dst := image.NewRGBA(c.Bounds())
	draw.Draw(dst, dst.Bounds(), c.ToImage(), image.Point{}, draw.Src)
	return dst
}
