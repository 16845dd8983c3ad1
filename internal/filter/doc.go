// Package filter provides image filters applied to a whole canvas.
//
// Gaussian and box blur come from github.com/anthonynsimon/bild. Damp is a
// recursive forward-backward exponential smoothing along rows or columns,
// which gives a cheap directional blur whose strength is a single
// amount in [0, 1).
package filter
