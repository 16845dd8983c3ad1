package rawpaint

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/rawpaint/area"
)

// GraphPainter edits a function graph stored as one y value per canvas
// column. The canvas shows the graph as a single lit pixel per column on a
// black background.
//
// As an area.Listener, a left press sets the value under the pointer, a
// left drag draws a graph line from the previous pointer position and the
// middle button resets the graph to the identity diagonal.
//
// A GraphPainter is not safe for concurrent use.
type GraphPainter struct {
	canvas   *Canvas
	graph    []int
	onChange []ChangeFunc
	areaID   int
	last     area.Vec
}

// NewGraphPainter creates a graph painter over c. The graph starts at zero
// in every column; call Reset to draw the identity diagonal.
func NewGraphPainter(c *Canvas, opts ...Option) *GraphPainter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g := &GraphPainter{
		canvas:   c,
		onChange: o.onChange,
		areaID:   o.areaID,
	}
	g.ensureGraph()
	return g
}

// Canvas returns the canvas the graph is drawn into.
func (g *GraphPainter) Canvas() *Canvas {
	return g.canvas
}

// AreaID returns the pointer area the graph painter responds to.
func (g *GraphPainter) AreaID() int {
	return g.areaID
}

// Values returns a copy of the graph, one y value per column.
func (g *GraphPainter) Values() []int {
	out := make([]int, len(g.graph))
	copy(out, g.graph)
	return out
}

// Value returns the graph value at column x, or 0 and false when x is
// outside the graph.
func (g *GraphPainter) Value(x int) (int, bool) {
	if x < 0 || x >= len(g.graph) {
		return 0, false
	}
	return g.graph[x], true
}

// ensureGraph allocates the graph when it is missing or no longer matches
// the canvas width. It reports whether a usable graph exists.
func (g *GraphPainter) ensureGraph() bool {
	if g.canvas.Empty() {
		return false
	}
	if len(g.graph) != g.canvas.width {
		g.graph = make([]int, g.canvas.width)
	}
	return true
}

// Reset clears the canvas and sets the graph to the identity diagonal
// y = x, drawn in white.
func (g *GraphPainter) Reset() {
	if !g.ensureGraph() {
		Logger().Warn("rawpaint: graph reset skipped, empty canvas")
		return
	}
	g.canvas.Reset()
	for i := range g.graph {
		if i < g.canvas.height {
			g.graph[i] = i
			g.canvas.SetPixel(i, i, White)
		} else {
			g.graph[i] = 0
		}
	}
	g.changed()
}

// DrawValue sets the graph at column x to y and redraws that column.
// Both coordinates are clamped into the canvas.
func (g *GraphPainter) DrawValue(x, y int, c RGBA) {
	if !g.ensureGraph() {
		Logger().Warn("rawpaint: graph value skipped, empty canvas")
		return
	}
	x, y = g.canvas.Clamp(x, y)
	g.setColumn(x, y, c)
	g.changed()
}

// DrawValueUV is DrawValue in normalized canvas coordinates.
func (g *GraphPainter) DrawValueUV(u, v float32, c RGBA) {
	if g.canvas.Empty() {
		Logger().Warn("rawpaint: graph value skipped, empty canvas")
		return
	}
	x, y := uvToPixel(g.canvas, u, v)
	g.DrawValue(x, y, c)
}

// DrawGraphLine sets every column between x0 and x1 to the value linearly
// interpolated between y0 and y1, rounded to the nearest row.
func (g *GraphPainter) DrawGraphLine(x0, y0, x1, y1 int, c RGBA) {
	if !g.ensureGraph() {
		Logger().Warn("rawpaint: graph line skipped, empty canvas")
		return
	}
	if x0 > x1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	x0, y0 = g.canvas.Clamp(x0, y0)
	x1, y1 = g.canvas.Clamp(x1, y1)

	for x := x0; x <= x1; x++ {
		var t float32
		if x1 != x0 {
			t = float32(x-x0) / float32(x1-x0)
		}
		y := int(math32.Round(float32(y0) + float32(y1-y0)*t))
		_, y = g.canvas.Clamp(x, y)
		g.setColumn(x, y, c)
	}
	g.changed()
}

// DrawGraphLineUV is DrawGraphLine in normalized canvas coordinates.
func (g *GraphPainter) DrawGraphLineUV(u0, v0, u1, v1 float32, c RGBA) {
	if g.canvas.Empty() {
		Logger().Warn("rawpaint: graph line skipped, empty canvas")
		return
	}
	x0, y0 := uvToPixel(g.canvas, u0, v0)
	x1, y1 := uvToPixel(g.canvas, u1, v1)
	g.DrawGraphLine(x0, y0, x1, y1, c)
}

// DrawLine draws a one-pixel Bresenham line without touching the graph.
func (g *GraphPainter) DrawLine(x0, y0, x1, y1 int, c RGBA) {
	if g.canvas.Empty() {
		Logger().Warn("rawpaint: draw line skipped, empty canvas")
		return
	}
	x0, y0 = g.canvas.Clamp(x0, y0)
	x1, y1 = g.canvas.Clamp(x1, y1)
	WalkLine(x0, y0, x1, y1, func(x, y int) {
		g.canvas.SetPixel(x, y, c)
	})
}

// DrawLineUV is DrawLine in normalized canvas coordinates.
func (g *GraphPainter) DrawLineUV(u0, v0, u1, v1 float32, c RGBA) {
	if g.canvas.Empty() {
		Logger().Warn("rawpaint: draw line skipped, empty canvas")
		return
	}
	x0, y0 := uvToPixel(g.canvas, u0, v0)
	x1, y1 := uvToPixel(g.canvas, u1, v1)
	g.DrawLine(x0, y0, x1, y1, c)
}

func (g *GraphPainter) setColumn(x, y int, c RGBA) {
	g.graph[x] = y
	for j := 0; j < g.canvas.height; j++ {
		if j == y {
			g.canvas.SetPixel(x, j, c)
		} else {
			g.canvas.SetPixel(x, j, Black)
		}
	}
}

func (g *GraphPainter) changed() {
	for _, fn := range g.onChange {
		fn()
	}
}

// OnHover implements area.Listener.
func (g *GraphPainter) OnHover(area.Info) {}

// OnDown implements area.Listener.
func (g *GraphPainter) OnDown(info area.Info, b area.Button) {
	if !g.ours(info) {
		return
	}
	switch b {
	case area.Left:
		g.DrawValueUV(info.Normalized.X, info.Normalized.Y, White)
		g.last = info.Normalized
	case area.Middle:
		g.Reset()
	}
}

// OnUp implements area.Listener.
func (g *GraphPainter) OnUp(area.Info, area.Button, area.Info) {}

// OnDrag implements area.Listener. Drags that started outside the graph's
// area are ignored.
func (g *GraphPainter) OnDrag(info area.Info, b area.Button, down area.Info) {
	if !g.ours(info) || down.ID != g.areaID || b != area.Left {
		return
	}
	n := info.Normalized
	g.DrawGraphLineUV(g.last.X, g.last.Y, n.X, n.Y, White)
	g.last = n
}

// OnScroll implements area.Listener.
func (g *GraphPainter) OnScroll(area.Info, float32) {}

func (g *GraphPainter) ours(info area.Info) bool {
	return info.Valid() && info.ID == g.areaID
}

var _ area.Listener = (*GraphPainter)(nil)
