// Package preset loads brush presets and stroke scripts from TOML files.
//
// A preset file names brushes so a host can switch between them:
//
//	default = "soft"
//
//	[[preset]]
//	name = "soft"
//	operation = "add"
//	color = "#ffffff"
//	[preset.brush]
//	size = 40
//	intensity = 0.05
//	smooth = true
//	coarse = 2
//
// Fields left out of a [preset.brush] table take their values from
// rawpaint.DefaultBrush. Watch reloads a preset file whenever it changes
// on disk.
//
// A stroke script (see Script) lists polylines to paint onto a canvas and
// is what cmd/rawpaint renders.
package preset
