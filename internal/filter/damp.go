package filter

import "github.com/gogpu/rawpaint/internal/parallel"

// Direction selects the axis Damp smooths along.
type Direction uint8

const (
	// Horizontal smooths every row.
	Horizontal Direction = iota

	// Vertical smooths every column.
	Vertical
)

// Damp smooths a planar float buffer in place along rows or columns.
//
// Each line is filtered twice, forward then backward, with
// acc = v + (acc - v)·amount starting from acc = 0, which spreads energy
// both ways along the line. amount is clamped to [0, 1); 0 leaves the data unchanged.
// stride is the number of channels per sample; every channel is filtered
// independently.
func Damp(data []float32, width, height, stride int, amount float32, dir Direction) {
	if width <= 0 || height <= 0 || stride <= 0 || len(data) < width*height*stride {
		return
	}
	if amount <= 0 {
		return
	}
	if amount >= 1 {
		amount = 0.999
	}

	lines, length := height, width
	step, lineStep := stride, width*stride
	if dir == Vertical {
		lines, length = width, height
		step, lineStep = width*stride, stride
	}

	parallel.For(lines, func(lo, hi int) {
		for l := lo; l < hi; l++ {
			dampLine(data, l*lineStep, length, step, stride, amount)
		}
	})
}

// dampLine filters one line starting at base, whose samples are step apart.
func dampLine(data []float32, base, length, step, stride int, amount float32) {
	for ch := 0; ch < stride; ch++ {
		var acc float32
		for i := 0; i < length; i++ {
			p := base + i*step + ch
			acc = data[p] + (acc-data[p])*amount
			data[p] = acc
		}
		acc = 0
		for i := length - 1; i >= 0; i-- {
			p := base + i*step + ch
			acc = data[p] + (acc-data[p])*amount
			data[p] = acc
		}
	}
}
