package preset

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/rawpaint"
)

// Watch reloads the preset file at path whenever it is written, created or
// renamed into place, and calls fn with the result. Load errors are passed
// to fn as well so the caller can keep its previous presets.
//
// The directory is watched rather than the file so that editors which save
// by renaming a temporary file are picked up. Watch blocks until ctx is
// cancelled and returns nil, or returns an error if the watcher fails.
func Watch(ctx context.Context, path string, fn func(*File, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("preset: create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("preset: resolve path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("preset: watch %s: %w", filepath.Dir(abs), err)
	}

	log := rawpaint.Logger()
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			f, err := Load(abs)
			if err != nil {
				log.Warn("preset: reload failed", "path", abs, "err", err)
			} else {
				log.Debug("preset: reloaded", "path", abs, "presets", len(f.Presets))
			}
			fn(f, err)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("preset: watcher: %w", err)
		}
	}
}
