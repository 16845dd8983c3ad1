// Command paintterm is an interactive painter for the terminal.
//
// Each terminal cell shows two canvas pixels stacked with a half-block
// glyph. Left drag adds, right drag subtracts, Ctrl turns either into a
// replace, the middle button clears and the wheel resizes the brush.
//
// Keys: c clears, s saves a PNG, [ and ] cycle presets, q or Esc quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/rawpaint"
	"github.com/gogpu/rawpaint/preset"
)

func main() {
	var (
		width   = flag.Int("width", 256, "canvas width")
		height  = flag.Int("height", 256, "canvas height")
		presets = flag.String("presets", "", "preset file (TOML), reloaded on change")
		saveDir = flag.String("dir", ".", "directory for saved images")
		logFile = flag.String("log", "", "write logs to this file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "paintterm: open log: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()
		level := slog.LevelInfo
		if *verbose {
			level = slog.LevelDebug
		}
		rawpaint.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	}

	file := &preset.File{}
	if *presets != "" {
		f, err := preset.Load(*presets)
		if err != nil {
			fmt.Fprintf(os.Stderr, "paintterm: %v\n", err)
			os.Exit(1)
		}
		file = f
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "paintterm: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "paintterm: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	a := newApp(screen, rawpaint.NewCanvas(*width, *height), file, *saveDir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloads := make(chan *preset.File, 1)
	if *presets != "" {
		go func() {
			err := preset.Watch(ctx, *presets, func(f *preset.File, err error) {
				if err != nil {
					return
				}
				select {
				case reloads <- f:
				case <-ctx.Done():
				}
			})
			if err != nil {
				rawpaint.Logger().Error("preset watcher stopped", "err", err)
			}
		}()
	}

	a.run(ctx, reloads)
	screen.Fini()
}
