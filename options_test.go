package rawpaint

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/rawpaint/area"
	"github.com/gogpu/rawpaint/internal/cache"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	assert.Equal(t, DefaultBrush(), o.brush)
	assert.Equal(t, area.InvalidID, o.areaID)
	assert.Equal(t, cache.DefaultCapacity, o.kernelCapacity)
	assert.Nil(t, o.rng)
	assert.Empty(t, o.onChange)
	assert.Equal(t, White, o.strokeColor)
	assert.Equal(t, Add, o.strokeOp)
}

func TestOptions_Apply(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	o := defaultOptions()
	for _, opt := range []Option{
		WithBrush(Brush{Size: 3}),
		WithDisplaySize(640, 480),
		WithRand(rng),
		WithAreaID(4),
		WithOnChange(func() {}),
		WithOnChange(nil),
		WithOnChange(func() {}),
		WithKernelCacheSize(2),
	} {
		opt(&o)
	}

	assert.Equal(t, float32(3), o.brush.Size)
	assert.Equal(t, float32(640), o.displayW)
	assert.Equal(t, float32(480), o.displayH)
	assert.Same(t, rng, o.rng)
	assert.Equal(t, 4, o.areaID)
	assert.Len(t, o.onChange, 2, "nil callbacks are dropped")
	assert.Equal(t, 2, o.kernelCapacity)
}

func TestWithKernelCacheSize_Evicts(t *testing.T) {
	p := NewPainter(NewCanvas(16, 16), WithKernelCacheSize(1))
	first := p.Kernel()

	b := p.Brush()
	b.Size = 5
	p.SetBrush(b)
	p.Kernel()

	p.SetBrush(DefaultBrush())
	assert.NotSame(t, first, p.Kernel())
	assert.Equal(t, first.Taps(), p.Kernel().Taps())
}
