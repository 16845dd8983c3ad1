// Package rawpaint paints into a raw floating-point pixel buffer.
//
// # Overview
//
// rawpaint keeps an image as a grid of float32 RGBA samples (Canvas) and
// draws into it with brushes. Samples are never clamped while painting, so
// adding a stroke and subtracting the same stroke restores the buffer.
// Clamping happens only when the canvas is converted to an image.
//
// # Quick Start
//
//	import "github.com/gogpu/rawpaint"
//
//	c := rawpaint.NewCanvas(512, 512)
//	p := rawpaint.NewPainter(c, rawpaint.WithBrush(rawpaint.DefaultBrush()))
//
//	p.DrawLine(40, 40, 470, 300, rawpaint.White.Scale(0.2), rawpaint.Add)
//	c.Save("out.png")
//
// # Brushes
//
// A Brush is stamped at every pixel of a Bresenham line. Its footprint is a
// disc of diameter Size, either hard (every tap weighs 1) or smooth with
// falloff (1 - d/r)^Coarse. Energy-conservative brushes deposit the same
// total intensity at every size. Noise drops taps at random.
//
// # Pointer Input
//
// Painter and GraphPainter implement area.Listener. A host registers screen
// rectangles with an area.Handler, feeds it the pointer state once per
// frame and subscribes the painters; each painter only reacts to events in
// its own area.
//
// # Coordinate System
//
// Canvas coordinates put (0, 0) at the top-left, with x increasing right and
// y increasing down. The UV variants take coordinates normalized to [0, 1]
// across the canvas.
//
// # Logging
//
// rawpaint is silent by default. See SetLogger.
package rawpaint

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
