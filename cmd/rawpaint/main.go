// Command rawpaint replays a TOML stroke script onto a canvas and writes the
// result as an image.
//
// Usage:
//
//	rawpaint -script strokes.toml -output out.png
//
// The output format follows the file extension (png, jpg, bmp, tif).
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/rawpaint"
	"github.com/gogpu/rawpaint/preset"
)

func main() {
	var (
		script  = flag.String("script", "", "stroke script (TOML)")
		width   = flag.Int("width", 0, "canvas width, overrides the script")
		height  = flag.Int("height", 0, "canvas height, overrides the script")
		output  = flag.String("output", "rawpaint.png", "output image file")
		blur    = flag.Float64("blur", 0, "Gaussian blur radius applied after painting")
		damp    = flag.Float64("damp", 0, "horizontal then vertical damping amount in [0, 1)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	rawpaint.SetLogger(log)

	if *script == "" {
		fmt.Fprintln(os.Stderr, "rawpaint: -script is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*script, *output, *width, *height, *blur, float32(*damp)); err != nil {
		log.Error("rawpaint failed", "err", err)
		os.Exit(1)
	}
}

func run(scriptPath, output string, width, height int, blur float64, damp float32) error {
	s, err := preset.LoadScript(scriptPath)
	if err != nil {
		return err
	}
	if width > 0 {
		s.Width = width
	}
	if height > 0 {
		s.Height = height
	}

	c := s.Render()
	if damp > 0 {
		c.Damp(damp, false)
		c.Damp(damp, true)
	}
	if blur > 0 {
		c.Blur(blur)
	}

	if err := c.Save(output); err != nil {
		return fmt.Errorf("rawpaint: save %s: %w", output, err)
	}
	rawpaint.Logger().Info("image saved",
		"path", output, "width", c.Width(), "height", c.Height(), "strokes", len(s.Strokes))
	return nil
}
