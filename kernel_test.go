package rawpaint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildKernel_SinglePixel(t *testing.T) {
	for _, smooth := range []bool{false, true} {
		k := BuildKernel(KernelParams{Size: 1, ScaleX: 1, ScaleY: 1, Smooth: smooth, Coarse: 1})
		require.Len(t, k.Taps(), 1)
		assert.Equal(t, Tap{DX: 0, DY: 0, Weight: 1}, k.Taps()[0])
		assert.Equal(t, float32(1), k.Sum())
	}
}

func TestBuildKernel_HardDisc(t *testing.T) {
	k := BuildKernel(KernelParams{Size: 5, ScaleX: 1, ScaleY: 1, Coarse: 1})

	// Offsets within distance 2.5 of the center on a 5×5 grid.
	assert.Len(t, k.Taps(), 21)
	assert.Equal(t, float32(21), k.Sum())
	for _, tap := range k.Taps() {
		assert.Equal(t, float32(1), tap.Weight)
		assert.LessOrEqual(t, tap.DX*tap.DX+tap.DY*tap.DY, 6)
	}
}

func TestBuildKernel_SmoothFalloff(t *testing.T) {
	k := BuildKernel(KernelParams{Size: 21, ScaleX: 1, ScaleY: 1, Smooth: true, Coarse: 2})

	weights := make(map[[2]int]float32, len(k.Taps()))
	var sum float32
	for _, tap := range k.Taps() {
		assert.GreaterOrEqual(t, tap.Weight, float32(0))
		assert.LessOrEqual(t, tap.Weight, float32(1))
		weights[[2]int{tap.DX, tap.DY}] = tap.Weight
		sum += tap.Weight
	}
	assert.Equal(t, float32(1), weights[[2]int{0, 0}])
	assert.Greater(t, weights[[2]int{2, 0}], weights[[2]int{5, 0}])
	assert.InDelta(t, sum, k.Sum(), 1e-3)

	// Odd footprints are symmetric about the center.
	for off, w := range weights {
		assert.Equal(t, w, weights[[2]int{-off[0], off[1]}])
		assert.Equal(t, w, weights[[2]int{off[0], -off[1]}])
	}
}

func TestBuildKernel_CoarseSharpens(t *testing.T) {
	soft := BuildKernel(KernelParams{Size: 15, ScaleX: 1, ScaleY: 1, Smooth: true, Coarse: 1})
	sharp := BuildKernel(KernelParams{Size: 15, ScaleX: 1, ScaleY: 1, Smooth: true, Coarse: 4})
	assert.Less(t, sharp.Sum(), soft.Sum())
}

func TestBuildKernel_Scale(t *testing.T) {
	extent := func(k *Kernel) (w, h int) {
		minX, maxX, minY, maxY := 0, 0, 0, 0
		for _, tap := range k.Taps() {
			minX, maxX = min(minX, tap.DX), max(maxX, tap.DX)
			minY, maxY = min(minY, tap.DY), max(maxY, tap.DY)
		}
		return maxX - minX + 1, maxY - minY + 1
	}

	w1, h1 := extent(BuildKernel(KernelParams{Size: 9, ScaleX: 1, ScaleY: 1}))
	w2, h2 := extent(BuildKernel(KernelParams{Size: 9, ScaleX: 2, ScaleY: 1}))
	assert.Equal(t, w1, h1)
	assert.Greater(t, w2, w1)
	assert.Equal(t, h1, h2)
}

func TestBuildKernel_NonPositiveScale(t *testing.T) {
	p := KernelParams{Size: 7, ScaleX: 0, ScaleY: -2, Smooth: true, Coarse: 1}
	k := BuildKernel(p)
	ref := BuildKernel(KernelParams{Size: 7, ScaleX: 1, ScaleY: 1, Smooth: true, Coarse: 1})
	assert.Equal(t, ref.Taps(), k.Taps())
	assert.Equal(t, float32(1), k.Params().ScaleX)
}

func TestReferenceSum(t *testing.T) {
	for _, kp := range []KernelParams{
		{Size: MaxBrushSize, ScaleX: 1, ScaleY: 1},
		{Size: MaxBrushSize, ScaleX: 2, ScaleY: 1.5},
		{Size: MaxBrushSize, ScaleX: 1, ScaleY: 1, Smooth: true, Coarse: 1},
		{Size: MaxBrushSize, ScaleX: 2, ScaleY: 2, Smooth: true, Coarse: 4},
	} {
		exact := BuildKernel(kp).Sum()
		assert.InDelta(t, exact, referenceSum(kp), 1e-3*float64(exact), "%+v", kp)
		assert.InEpsilon(t, exact, approxKernelSum(kp), 0.02, "%+v", kp)
	}
}

func TestReferenceSum_LargeFootprint(t *testing.T) {
	kp := KernelParams{Size: MaxBrushSize, ScaleX: 64, ScaleY: 64, Smooth: true, Coarse: 2}
	xs, ys := kp.extent()
	require.Greater(t, xs*ys, maxExactFootprint)
	assert.Equal(t, approxKernelSum(kp), referenceSum(kp))
}
