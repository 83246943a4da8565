// Package watch re-runs a callback whenever a sequence file changes.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/arthur-debert/sweeps/pkg/errors"
	"github.com/arthur-debert/sweeps/pkg/logging"
	"github.com/fsnotify/fsnotify"
)

// File watches path and calls onChange after each burst of writes settles
// for debounce. The parent directory is watched so atomic saves that
// replace the file are seen. It runs until ctx is cancelled.
func File(ctx context.Context, path string, debounce time.Duration, onChange func()) error {
	logger := logging.GetLogger("watch")

	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrWatch, "cannot resolve %s", path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrWatch, "cannot create file watcher")
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.Wrapf(err, errors.ErrWatch, "cannot watch %s", filepath.Dir(abs)).
			WithDetail("path", abs)
	}

	logger.Info().Str("path", abs).Dur("debounce", debounce).Msg("Watching for changes")

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

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
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			logger.Trace().Str("op", event.Op.String()).Msg("File event")

			if debounce <= 0 {
				onChange()
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Stop()
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			logger.Debug().Str("path", abs).Msg("File changed")
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return errors.Wrap(err, errors.ErrWatch, "file watcher failed").WithDetail("path", abs)
		}
	}
}
