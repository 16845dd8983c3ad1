package rawpaint

import "image"

// WalkLine visits every pixel of the integer Bresenham line between
// (x0, y0) and (x1, y1), both endpoints included, each exactly once.
//
// The endpoints are put in a canonical order before walking, so swapping
// them visits the same set of pixels. Visit order follows the canonical
// direction, not the argument order.
func WalkLine(x0, y0, x1, y1 int, visit func(x, y int)) {
	if x1 < x0 || (x1 == x0 && y1 < y0) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	dx := x1 - x0
	dy := y1 - y0
	sy := 1
	if dy < 0 {
		dy = -dy
		sy = -1
	}

	// dx >= 0 after canonicalization; error term doubled to stay integral.
	err := dx - dy
	x, y := x0, y0
	for {
		visit(x, y)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x++
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// LinePoints returns the pixels visited by WalkLine in visit order.
func LinePoints(x0, y0, x1, y1 int) []image.Point {
	n := max(abs(x1-x0), abs(y1-y0)) + 1
	pts := make([]image.Point, 0, n)
	WalkLine(x0, y0, x1, y1, func(x, y int) {
		pts = append(pts, image.Pt(x, y))
	})
	return pts
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
