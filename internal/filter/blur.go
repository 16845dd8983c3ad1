package filter

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
)

// Gaussian returns a Gaussian-blurred copy of src. A non-positive radius
// returns an unmodified copy.
func Gaussian(src image.Image, radius float64) *image.RGBA {
	if radius <= 0 {
		return clone(src)
	}
	return blur.Gaussian(src, radius)
}

// Box returns a box-blurred copy of src. A non-positive radius returns an
// unmodified copy.
func Box(src image.Image, radius float64) *image.RGBA {
	if radius <= 0 {
		return clone(src)
	}
	return blur.Box(src, radius)
}

func clone(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(x, y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}
