package rawpaint

import (
	"math"

	"github.com/chewxy/math32"
)

// KernelParams identifies one brush footprint. It is comparable and used
// as the kernel cache key.
type KernelParams struct {
	// Size is the brush diameter in brush space.
	Size float32

	// ScaleX and ScaleY map brush space to canvas pixels. They compensate
	// for a canvas displayed at a different aspect ratio.
	ScaleX, ScaleY float32

	// Smooth selects the radial falloff; Coarse is its exponent.
	Smooth bool
	Coarse float32
}

// Tap is one footprint pixel, relative to the stamp center.
type Tap struct {
	DX, DY int
	Weight float32
}

// Kernel is the precomputed footprint of a brush.
type Kernel struct {
	params KernelParams
	taps   []Tap
	sum    float32
}

// Params returns the parameters the kernel was built from.
func (k *Kernel) Params() KernelParams { return k.params }

// Taps returns the footprint pixels. The slice must not be modified.
func (k *Kernel) Taps() []Tap { return k.taps }

// Sum returns the total weight of all taps.
func (k *Kernel) Sum() float32 { return k.sum }

// maxExactFootprint bounds the number of footprint cells referenceSum
// visits; larger footprints use the continuous disc integral.
const maxExactFootprint = 1 << 20

// BuildKernel computes the footprint for p.
//
// The footprint spans round(Size·ScaleX) × round(Size·ScaleY) pixels (at
// least one each way). A pixel belongs to it when its distance to the
// center, measured in brush space, does not exceed Size/2. Hard brushes
// weigh every tap 1; smooth brushes weigh (1 - d/(Size/2))^Coarse.
func BuildKernel(p KernelParams) *Kernel {
	p = p.normalized()
	xs, ys := p.extent()
	k := &Kernel{params: p, taps: make([]Tap, 0, xs*ys)}
	var sum float64
	p.walk(func(dx, dy int, w float32) {
		k.taps = append(k.taps, Tap{DX: dx, DY: dy, Weight: w})
		sum += float64(w)
	})
	k.sum = float32(sum)
	return k
}

// referenceSum returns the total weight of the footprint for p without
// materializing its taps. Footprints above maxExactFootprint cells are
// approximated by integrating the falloff over the ellipse they cover.
func referenceSum(p KernelParams) float32 {
	p = p.normalized()
	xs, ys := p.extent()
	if xs*ys > maxExactFootprint {
		return approxKernelSum(p)
	}
	var sum float64
	p.walk(func(_, _ int, w float32) {
		sum += float64(w)
	})
	return float32(sum)
}

// approxKernelSum integrates the brush falloff over a disc of radius Size/2
// in brush space, scaled to canvas pixels by ScaleX·ScaleY.
func approxKernelSum(p KernelParams) float32 {
	p = p.normalized()
	r := float64(p.Size) * 0.5
	area := math.Pi * r * r
	if p.Smooth {
		c := float64(p.Coarse)
		area = 2 * math.Pi * r * r / ((c + 1) * (c + 2))
	}
	return float32(area * float64(p.ScaleX) * float64(p.ScaleY))
}

func (p KernelParams) normalized() KernelParams {
	if p.ScaleX <= 0 {
		p.ScaleX = 1
	}
	if p.ScaleY <= 0 {
		p.ScaleY = 1
	}
	return p
}

func (p KernelParams) extent() (xs, ys int) {
	xs = max(1, int(math32.Round(p.Size*p.ScaleX)))
	ys = max(1, int(math32.Round(p.Size*p.ScaleY)))
	return xs, ys
}

// walk calls fn for every footprint pixel with its offset and weight.
func (p KernelParams) walk(fn func(dx, dy int, w float32)) {
	half := p.Size * 0.5
	xs, ys := p.extent()
	hx := xs >> 1
	hy := ys >> 1

	for j := 0; j < ys; j++ {
		dy := j - hy
		ydiff := float32(dy) / p.ScaleY
		ydiff *= ydiff

		for i := 0; i < xs; i++ {
			dx := i - hx
			xdiff := float32(dx) / p.ScaleX
			xdiff *= xdiff

			dist := math32.Sqrt(xdiff + ydiff)
			if dist > half {
				continue
			}

			w := float32(1)
			if p.Smooth && half > 0 {
				w = math32.Pow(1-clamp01(dist/half), p.Coarse)
			}
			fn(dx, dy, w)
		}
	}
}
