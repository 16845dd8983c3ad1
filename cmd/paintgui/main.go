// Command paintgui opens a window with a brush canvas on the left and a
// function graph on the right, both driven by one pointer handler.
//
// Canvas: left drag adds, right drag subtracts, Ctrl replaces, middle clears,
// the wheel resizes the brush. Graph: left sets values, middle resets.
// Keys: C clears the canvas, G resets the graph, B blurs, D damps,
// S saves the canvas, Esc quits.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/rawpaint"
	"github.com/gogpu/rawpaint/preset"
)

func main() {
	var (
		size    = flag.Int("size", 256, "canvas and graph resolution")
		presets = flag.String("presets", "", "preset file (TOML)")
		saveDir = flag.String("dir", ".", "directory for saved images")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	rawpaint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	p := preset.Default()
	if *presets != "" {
		f, err := preset.Load(*presets)
		if err != nil {
			fmt.Fprintf(os.Stderr, "paintgui: %v\n", err)
			os.Exit(1)
		}
		p = f.Selected()
	}

	g := newGame(*size, p, *saveDir)

	ebiten.SetWindowSize(1024, 512)
	ebiten.SetWindowTitle("rawpaint")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		rawpaint.Logger().Error("paintgui failed", "err", err)
		os.Exit(1)
	}
}
