package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/garrettladley/wellscore/internal/wellness"
	"github.com/garrettladley/wellscore/internal/xslog"
)

// WatchWeights reloads path on every write and hands valid weights to
// onChange. It blocks until ctx is done. A failed reload is logged and the
// previous weights stay active.
//
// The parent directory is watched rather than the file, so saves that
// rename a temp file over path keep being seen.
func WatchWeights(ctx context.Context, path string, onChange func(wellness.Weights)) error {
	path = filepath.Clean(path)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("weights file: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close() //nolint:errcheck

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	logger := xslog.FromContext(ctx)
	logger.InfoContext(ctx, "watching weights file", xslog.Path(path))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			// a rename over path arrives as Create
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			w, err := LoadWeights(path)
			if err != nil {
				logger.ErrorContext(ctx, "weights reload failed, keeping previous weights",
					xslog.Path(path), xslog.Error(err))
				continue
			}

			logger.InfoContext(ctx, "weights reloaded",
				xslog.Path(path),
				slog.Float64("metabolic", w.Metabolic),
				slog.Float64("vo2max", w.VO2Max),
				slog.Float64("grip_strength", w.GripStrength),
				slog.Float64("body_composition", w.BodyComposition),
			)
			onChange(w)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.ErrorContext(ctx, "weights watcher error", xslog.Error(err))
		}
	}
}
