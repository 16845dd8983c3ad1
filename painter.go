package rawpaint

import (
	"math/rand/v2"

	"github.com/chewxy/math32"

	"github.com/gogpu/rawpaint/area"
	"github.com/gogpu/rawpaint/internal/cache"
)

// Painter draws brush strokes into a Canvas.
//
// Every point of a line is stamped with the brush footprint (see Kernel),
// and each footprint pixel is combined with the canvas through an
// Operation. A Painter also implements area.Listener, so a host can feed it
// pointer events: the left button paints the stroke color with the stroke
// operation (white and Add by default) and the right button undoes it. Ctrl
// turns either button into a Replace with white or black. The middle button
// clears the canvas and the scroll wheel resizes the brush.
//
// A Painter is not safe for concurrent use.
type Painter struct {
	canvas *Canvas
	brush  Brush
	color  RGBA
	op     Operation

	displayW, displayH float32
	scaleX, scaleY     float32

	rng      *rand.Rand
	kernels  *cache.Cache[KernelParams, *Kernel]
	refSums  *cache.Cache[KernelParams, float32]
	onChange []ChangeFunc

	areaID    int
	last      area.Vec
	indicator Indicator
}

// Indicator describes the brush outline a host may draw under the pointer.
type Indicator struct {
	Visible bool

	// X and Y are the pointer position in host coordinates.
	X, Y float32

	// Size is the brush diameter in host units.
	Size float32
}

// NewPainter creates a painter drawing into c.
func NewPainter(c *Canvas, opts ...Option) *Painter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // brush noise, not crypto
	}

	p := &Painter{
		canvas:   c,
		rng:      rng,
		kernels:  cache.New[KernelParams, *Kernel](o.kernelCapacity),
		refSums:  cache.New[KernelParams, float32](o.kernelCapacity),
		onChange: o.onChange,
		areaID:   o.areaID,
		scaleX:   1,
		scaleY:   1,
	}
	p.SetBrush(o.brush)
	p.SetStroke(o.strokeColor, o.strokeOp)
	p.SetDisplaySize(o.displayW, o.displayH)
	return p
}

// Canvas returns the canvas the painter draws into.
func (p *Painter) Canvas() *Canvas {
	return p.canvas
}

// Brush returns the current brush.
func (p *Painter) Brush() Brush {
	return p.brush
}

// SetBrush replaces the brush. Out-of-range fields are clamped.
func (p *Painter) SetBrush(b Brush) {
	p.brush = b.Validate()
	p.indicator.Size = p.brush.Size
}

// Stroke returns the color and operation the left button paints with.
func (p *Painter) Stroke() (RGBA, Operation) {
	return p.color, p.op
}

// SetStroke sets the color and operation the left button paints with. An
// invalid operation falls back to Add.
func (p *Painter) SetStroke(c RGBA, op Operation) {
	if !op.Valid() {
		op = Add
	}
	p.color, p.op = c, op
}

// ScrollBrush resizes the brush by a scroll-wheel delta.
func (p *Painter) ScrollBrush(delta float32) {
	p.SetBrush(p.brush.Scrolled(delta))
}

// AreaID returns the pointer area the painter responds to.
func (p *Painter) AreaID() int {
	return p.areaID
}

// Indicator returns the brush outline state.
func (p *Painter) Indicator() Indicator {
	return p.indicator
}

// SetDisplaySize records the on-screen size of the canvas and updates the
// per-axis brush scale canvas/display. Non-positive sizes reset the scale to 1.
func (p *Painter) SetDisplaySize(width, height float32) {
	p.displayW, p.displayH = width, height
	p.scaleX, p.scaleY = 1, 1
	if p.canvas.Empty() {
		return
	}
	if width > 0 {
		p.scaleX = float32(p.canvas.Width()) / width
	}
	if height > 0 {
		p.scaleY = float32(p.canvas.Height()) / height
	}
}

// BrushScale returns the per-axis factors mapping brush space to canvas pixels.
func (p *Painter) BrushScale() (sx, sy float32) {
	return p.scaleX, p.scaleY
}

// Kernel returns the footprint of the current brush at the current scale.
func (p *Painter) Kernel() *Kernel {
	return p.kernelFor(p.kernelParams(p.brush.Size))
}

func (p *Painter) kernelParams(size float32) KernelParams {
	return KernelParams{
		Size:   size,
		ScaleX: p.scaleX,
		ScaleY: p.scaleY,
		Smooth: p.brush.Smooth,
		Coarse: p.brush.Coarse,
	}
}

func (p *Painter) kernelFor(kp KernelParams) *Kernel {
	return p.kernels.GetOrCreate(kp, func() *Kernel {
		k := BuildKernel(kp)
		Logger().Debug("rawpaint: built brush kernel",
			"size", kp.Size, "scaleX", kp.ScaleX, "scaleY", kp.ScaleY,
			"smooth", kp.Smooth, "taps", len(k.taps))
		return k
	})
}

// energyScale returns the factor that makes a stamp of k deposit as much
// total intensity as the same brush at MaxBrushSize. The reference footprint
// is only summed, never built.
func (p *Painter) energyScale(k *Kernel) float32 {
	ref := p.kernelParams(MaxBrushSize)
	refSum := p.refSums.GetOrCreate(ref, func() float32 {
		return referenceSum(ref)
	})
	if k.sum <= 0 {
		return 1
	}
	return refSum / k.sum
}

// Stamp applies one brush footprint centered at (x, y) and returns the
// number of canvas samples written. Footprint pixels outside the canvas
// are skipped.
func (p *Painter) Stamp(x, y int, c RGBA, op Operation) int {
	if p.canvas.Empty() {
		Logger().Warn("rawpaint: stamp skipped, empty canvas")
		return 0
	}
	return p.stamp(p.Kernel(), x, y, c, op)
}

func (p *Painter) stamp(k *Kernel, x, y int, c RGBA, op Operation) int {
	if p.brush.EnergyConservative {
		c = c.Scale(p.energyScale(k))
	}
	drop := p.brush.Noise * p.brush.Noise

	w, h := p.canvas.width, p.canvas.height
	pix := p.canvas.pix
	n := 0
	for _, t := range k.taps {
		if drop > 0 && p.rng.Float32() < drop {
			continue
		}
		px, py := x+t.DX, y+t.DY
		if px < 0 || px >= w || py < 0 || py >= h {
			continue
		}
		i := py*w + px
		pix[i] = op.Apply(pix[i], c.Scale(t.Weight))
		n++
	}
	return n
}

// DrawLine stamps the brush at every pixel of the line from (x0, y0) to
// (x1, y1). Endpoints are clamped into the canvas first.
func (p *Painter) DrawLine(x0, y0, x1, y1 int, c RGBA, op Operation) {
	if p.canvas.Empty() {
		Logger().Warn("rawpaint: draw line skipped, empty canvas")
		return
	}

	x0, y0 = p.canvas.Clamp(x0, y0)
	x1, y1 = p.canvas.Clamp(x1, y1)

	k := p.Kernel()
	WalkLine(x0, y0, x1, y1, func(x, y int) {
		p.stamp(k, x, y, c, op)
	})
	p.changed()
}

// DrawLineUV is DrawLine in normalized canvas coordinates. Coordinates are
// clamped to [0, 1] and mapped to pixels by rounding u·width and v·height.
func (p *Painter) DrawLineUV(u0, v0, u1, v1 float32, c RGBA, op Operation) {
	if p.canvas.Empty() {
		Logger().Warn("rawpaint: draw line skipped, empty canvas")
		return
	}
	x0, y0 := uvToPixel(p.canvas, u0, v0)
	x1, y1 := uvToPixel(p.canvas, u1, v1)
	p.DrawLine(x0, y0, x1, y1, c, op)
}

// DrawBrushLine paints a stroke the way an interactive brush does:
//
//   - left button: the stroke operation with color·Intensity, or the plain
//     color for Replace (Ctrl: Replace with White)
//   - right button: the inverse operation (Ctrl: Replace with Black)
//
// The inverse of Add is Subtract and vice versa; the inverse of Replace is
// Replace with Black.
//
// It reports whether a stroke was drawn.
func (p *Painter) DrawBrushLine(u0, v0, u1, v1 float32, b area.Button, mods area.Modifier) bool {
	ctrl := mods.Has(area.ModCtrl)
	switch b {
	case area.Left:
		if ctrl {
			p.DrawLineUV(u0, v0, u1, v1, White, Replace)
		} else {
			p.DrawLineUV(u0, v0, u1, v1, p.strokeColor(), p.op)
		}
	case area.Right:
		if ctrl {
			p.DrawLineUV(u0, v0, u1, v1, Black, Replace)
		} else {
			c, op := p.undo()
			p.DrawLineUV(u0, v0, u1, v1, c, op)
		}
	default:
		return false
	}
	return true
}

// strokeColor is the stroke color scaled by the brush intensity. Replace
// strokes use the color as is.
func (p *Painter) strokeColor() RGBA {
	if p.op == Replace {
		return p.color
	}
	return p.color.Scale(p.brush.Intensity)
}

// undo returns the color and operation that reverse a left-button stroke.
func (p *Painter) undo() (RGBA, Operation) {
	c := p.strokeColor()
	switch p.op {
	case Add:
		return c, Subtract
	case Subtract:
		return c, Add
	default:
		return Black, Replace
	}
}

// Reset clears the canvas to transparent black.
func (p *Painter) Reset() {
	if p.canvas.Empty() {
		Logger().Warn("rawpaint: reset skipped, empty canvas")
		return
	}
	p.canvas.Reset()
	Logger().Info("rawpaint: canvas reset", "width", p.canvas.width, "height", p.canvas.height)
	p.changed()
}

func (p *Painter) changed() {
	for _, fn := range p.onChange {
		fn()
	}
}

// OnHover implements area.Listener. It moves the brush indicator, hiding
// it outside the painter's area.
func (p *Painter) OnHover(info area.Info) {
	if !p.ours(info) {
		p.indicator.Visible = false
		return
	}
	p.indicator.Visible = true
	p.indicator.X = info.Screen.X
	p.indicator.Y = info.Screen.Y
}

// OnDown implements area.Listener.
func (p *Painter) OnDown(info area.Info, b area.Button) {
	if !p.ours(info) {
		return
	}
	n := info.Normalized
	if p.DrawBrushLine(n.X, n.Y, n.X, n.Y, b, info.Mods) {
		p.last = n
	}
	if b == area.Middle {
		p.Reset()
	}
}

// OnUp implements area.Listener.
func (p *Painter) OnUp(area.Info, area.Button, area.Info) {}

// OnDrag implements area.Listener. It continues the stroke from the last
// painted position, as long as the drag started inside the painter's area.
func (p *Painter) OnDrag(info area.Info, b area.Button, down area.Info) {
	if !p.ours(info) || down.ID != p.areaID {
		return
	}
	n := info.Normalized
	if p.DrawBrushLine(p.last.X, p.last.Y, n.X, n.Y, b, info.Mods) {
		p.last = n
	}
}

// OnScroll implements area.Listener. It resizes the brush.
func (p *Painter) OnScroll(info area.Info, delta float32) {
	if !p.ours(info) {
		return
	}
	p.ScrollBrush(delta)
}

func (p *Painter) ours(info area.Info) bool {
	return info.Valid() && info.ID == p.areaID
}

func uvToPixel(c *Canvas, u, v float32) (int, int) {
	x := int(math32.Round(clamp01(u) * float32(c.width)))
	y := int(math32.Round(clamp01(v) * float32(c.height)))
	return c.Clamp(x, y)
}

var _ area.Listener = (*Painter)(nil)
