package rawpaint

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/draw"

	"github.com/gogpu/rawpaint/internal/filter"
	"github.com/gogpu/rawpaint/internal/imageio"
	"github.com/gogpu/rawpaint/internal/parallel"
)

// Canvas is a width×height grid of float RGBA samples addressed by integer
// (x, y), with (0, 0) at the top-left corner. It is the paint buffer that
// Painter and GraphPainter draw into.
//
// A Canvas is not safe for concurrent mutation; it assumes a single writer.
type Canvas struct {
	width  int
	height int
	pix    []RGBA
}

// NewCanvas creates a transparent canvas with the given dimensions.
// Negative dimensions are treated as zero, which yields an empty canvas.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]RGBA, width*height),
	}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Empty reports whether the canvas is nil or has no samples.
func (c *Canvas) Empty() bool {
	return c == nil || c.width == 0 || c.height == 0
}

// Pixels returns the backing sample slice in row-major order.
func (c *Canvas) Pixels() []RGBA {
	return c.pix
}

// In reports whether (x, y) addresses a sample of the canvas.
func (c *Canvas) In(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Clamp restricts (x, y) to [0, width-1] × [0, height-1].
func (c *Canvas) Clamp(x, y int) (int, int) {
	return clampInt(x, 0, c.width-1), clampInt(y, 0, c.height-1)
}

// SetPixel sets the color of a single sample. Out-of-bounds writes are ignored.
func (c *Canvas) SetPixel(x, y int, col RGBA) {
	if !c.In(x, y) {
		return
	}
	c.pix[y*c.width+x] = col
}

// GetPixel returns the color of a single sample, or Transparent out of bounds.
func (c *Canvas) GetPixel(x, y int) RGBA {
	if !c.In(x, y) {
		return Transparent
	}
	return c.pix[y*c.width+x]
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col RGBA) {
	for i := range c.pix {
		c.pix[i] = col
	}
}

// Reset sets every sample to transparent black.
func (c *Canvas) Reset() {
	clear(c.pix)
}

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	out := &Canvas{width: c.width, height: c.height, pix: make([]RGBA, len(c.pix))}
	copy(out.pix, c.pix)
	return out
}

// Sum returns the channel-wise sum of all samples. It measures the total
// intensity deposited into the canvas.
func (c *Canvas) Sum() RGBA {
	var r, g, b, a float64
	for _, p := range c.pix {
		r += float64(p.R)
		g += float64(p.G)
		b += float64(p.B)
		a += float64(p.A)
	}
	return RGBA{R: float32(r), G: float32(g), B: float32(b), A: float32(a)}
}

// ToImage converts the canvas to an image.NRGBA, clamping every channel.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	parallel.For(c.height, func(lo, hi int) {
		for i := lo * c.width; i < hi*c.width; i++ {
			n := c.pix[i].NRGBA()
			o := i * 4
			img.Pix[o+0] = n.R
			img.Pix[o+1] = n.G
			img.Pix[o+2] = n.B
			img.Pix[o+3] = n.A
		}
	})
	return img
}

// FromImage creates a canvas from an image.
func FromImage(img image.Image) *Canvas {
	bounds := img.Bounds()
	c := NewCanvas(bounds.Dx(), bounds.Dy())
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.pix[y*c.width+x] = FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return c
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.GetPixel(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// Scaled resamples the canvas to width×height with a Catmull-Rom filter.
// It is used to fit the buffer to a display whose aspect ratio differs
// from the canvas.
func (c *Canvas) Scaled(width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	if c.Empty() || dst.Rect.Empty() {
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), c.ToImage(), c.Bounds(), draw.Src, nil)
	return dst
}

// Blur applies a Gaussian blur with the given radius in place.
// Samples are quantized to 8 bits and clamped to [0, 1] on the way through.
// A non-positive radius leaves the canvas untouched.
func (c *Canvas) Blur(radius float64) {
	if c.Empty() || radius <= 0 {
		return
	}
	c.load(filter.Gaussian(c.ToImage(), radius))
}

// BoxBlur is Blur with a box filter.
func (c *Canvas) BoxBlur(radius float64) {
	if c.Empty() || radius <= 0 {
		return
	}
	c.load(filter.Box(c.ToImage(), radius))
}

// load replaces the samples with img, which must match the canvas size.
func (c *Canvas) load(img *image.RGBA) {
	b := img.Bounds()
	parallel.For(c.height, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			for x := 0; x < c.width; x++ {
				c.pix[y*c.width+x] = FromColor(img.RGBAAt(b.Min.X+x, b.Min.Y+y))
			}
		}
	})
}

// Damp applies a directional forward-backward exponential smoothing with
// the given amount in [0, 1) along rows (vertical false) or columns.
// Unlike Blur it works on the float samples and does not clamp.
func (c *Canvas) Damp(amount float32, vertical bool) {
	if c.Empty() {
		return
	}
	buf := make([]float32, len(c.pix)*4)
	for i, p := range c.pix {
		buf[i*4+0], buf[i*4+1], buf[i*4+2], buf[i*4+3] = p.R, p.G, p.B, p.A
	}
	dir := filter.Horizontal
	if vertical {
		dir = filter.Vertical
	}
	filter.Damp(buf, c.width, c.height, 4, amount, dir)
	for i := range c.pix {
		c.pix[i] = RGBA{R: buf[i*4+0], G: buf[i*4+1], B: buf[i*4+2], A: buf[i*4+3]}
	}
}

// Save writes the canvas to path, picking the format from the extension.
func (c *Canvas) Save(path string) error {
	if c.Empty() {
		return ErrEmptyCanvas
	}
	return imageio.Save(path, c.ToImage())
}

// Encode writes the canvas to w in the given format ("png", "jpeg", "bmp", "tiff").
func (c *Canvas) Encode(w io.Writer, format string) error {
	if c.Empty() {
		return ErrEmptyCanvas
	}
	f, err := imageio.ParseFormat(format)
	if err != nil {
		return err
	}
	return imageio.Encode(w, c.ToImage(), f)
}

// LoadCanvas reads an image file into a new canvas.
func LoadCanvas(path string) (*Canvas, error) {
	img, err := imageio.Load(path)
	if err != nil {
		return nil, fmt.Errorf("rawpaint: load canvas: %w", err)
	}
	return FromImage(img), nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
