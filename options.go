package rawpaint

import (
	"math/rand/v2"

	"github.com/gogpu/rawpaint/area"
	"github.com/gogpu/rawpaint/internal/cache"
)

// Option configures a Painter or GraphPainter during creation.
//
// Example:
//
//	p := rawpaint.NewPainter(canvas,
//	    rawpaint.WithBrush(rawpaint.Brush{Size: 40, Intensity: 0.2, Coarse: 2, Smooth: true}),
//	    rawpaint.WithDisplaySize(1280, 720),
//	)
type Option func(*options)

// ChangeFunc is called after a painter has modified its canvas.
type ChangeFunc func()

type options struct {
	brush          Brush
	strokeColor    RGBA
	strokeOp       Operation
	displayW       float32
	displayH       float32
	rng            *rand.Rand
	areaID         int
	onChange       []ChangeFunc
	kernelCapacity int
}

func defaultOptions() options {
	return options{
		brush:          DefaultBrush(),
		strokeColor:    White,
		strokeOp:       Add,
		areaID:         area.InvalidID,
		kernelCapacity: cache.DefaultCapacity,
	}
}

// WithBrush sets the initial brush. The brush is validated.
func WithBrush(b Brush) Option {
	return func(o *options) {
		o.brush = b
	}
}

// WithStroke sets the color and operation the left button paints with.
// Painters default to White and Add.
func WithStroke(c RGBA, op Operation) Option {
	return func(o *options) {
		o.strokeColor = c
		o.strokeOp = op
	}
}

// WithDisplaySize sets the size of the on-screen rectangle the canvas is
// shown in. The brush footprint is scaled by canvas/display per axis so a
// brush looks round on screen. Zero leaves the scale at 1.
func WithDisplaySize(width, height float32) Option {
	return func(o *options) {
		o.displayW = width
		o.displayH = height
	}
}

// WithRand sets the random source used for brush noise.
// Tests pass a seeded source to make noisy strokes reproducible.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithAreaID sets the pointer area the painter responds to.
// Pointer events from other areas are ignored.
func WithAreaID(id int) Option {
	return func(o *options) {
		o.areaID = id
	}
}

// WithOnChange registers a callback fired after the canvas changes.
// It may be given more than once.
func WithOnChange(fn ChangeFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.onChange = append(o.onChange, fn)
		}
	}
}

// WithKernelCacheSize sets how many brush kernels the painter keeps.
func WithKernelCacheSize(n int) Option {
	return func(o *options) {
		o.kernelCapacity = n
	}
}
